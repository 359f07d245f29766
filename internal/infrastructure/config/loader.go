package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(ConfigPaths...)
}

// LoadConfigFrom loads configuration looking for the environment's yaml file
// in the given directories
func LoadConfigFrom(paths ...string) (*Config, error) {
	// Environment variables from a .env file are loaded first so they can
	// participate in overrides
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Environment variables override file values, e.g. CK_DATABASE_PASSWORD
	v.SetEnvPrefix("CK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastErr error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				lastErr = err
				continue
			}
			return nil
		}
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("no .env file found")
}

// getEnvironment returns the runtime environment, defaulting to development
func getEnvironment() string {
	env := strings.ToLower(os.Getenv("CK_ENVIRONMENT"))
	switch env {
	case Production, Test:
		return env
	default:
		return Development
	}
}

// setDefaults sets default values for non-critical settings
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetimeMinutes", 5)
	v.SetDefault("database.connMaxIdleTimeMinutes", 5)
	v.SetDefault("database.dialTimeoutSeconds", 5)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.poolSize", 10)
	v.SetDefault("cache.dialTimeoutSeconds", 5)
	v.SetDefault("cache.readTimeoutSeconds", 3)
	v.SetDefault("cache.writeTimeoutSeconds", 3)

	v.SetDefault("broker.enabled", false)
	v.SetDefault("broker.driver", "kafka")
	v.SetDefault("broker.dialTimeoutSeconds", 5)

	v.SetDefault("search.enabled", false)
	v.SetDefault("search.dialTimeoutSeconds", 5)
}
