package core

import (
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
)

// Clock abstracts the wall-clock read so consumers can be tested with a
// controlled time source instead of calling temporal.Now directly
type Clock interface {
	// Now returns the current instant
	Now() temporal.Instant
}
