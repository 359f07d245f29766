package search

import (
	"testing"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
	"github.com/stretchr/testify/assert"
)

func TestSearchConfigValidate(t *testing.T) {
	t.Run("valid configuration passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Addresses = []string{"http://localhost:9200"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("no addresses is rejected", func(t *testing.T) {
		assert.ErrorIs(t, DefaultConfig().Validate(), errs.ErrInvalidConfig)
	})

	t.Run("zero dial timeout is rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Addresses = []string{"http://localhost:9200"}
		cfg.DialTimeout = temporal.OfSeconds(0)

		assert.ErrorIs(t, cfg.Validate(), errs.ErrInvalidConfig)
	})
}
