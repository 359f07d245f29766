package config

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Database    DatabaseConfig `mapstructure:"database"`
	Cache       CacheConfig    `mapstructure:"cache"`
	Broker      BrokerConfig   `mapstructure:"broker"`
	Search      SearchConfig   `mapstructure:"search"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// DatabaseConfig contains relational store connection settings.
// Timeout fields carry their unit in the name and are converted to
// temporal durations by the consumer.
type DatabaseConfig struct {
	Enabled                bool   `mapstructure:"enabled"`
	Host                   string `mapstructure:"host"`
	Port                   int    `mapstructure:"port"`
	Username               string `mapstructure:"username"`
	Password               string `mapstructure:"password"`
	Database               string `mapstructure:"database"`
	SSLMode                string `mapstructure:"sslMode"`
	MaxOpenConns           int    `mapstructure:"maxOpenConns"`
	MaxIdleConns           int    `mapstructure:"maxIdleConns"`
	ConnMaxLifetimeMinutes int64  `mapstructure:"connMaxLifetimeMinutes"`
	ConnMaxIdleTimeMinutes int64  `mapstructure:"connMaxIdleTimeMinutes"`
	DialTimeoutSeconds     int64  `mapstructure:"dialTimeoutSeconds"`
}

// CacheConfig contains cache connection settings
type CacheConfig struct {
	Enabled             bool     `mapstructure:"enabled"`
	Addresses           []string `mapstructure:"addresses"`
	Password            string   `mapstructure:"password"`
	DB                  int      `mapstructure:"db"`
	ClusterMode         bool     `mapstructure:"clusterMode"`
	PoolSize            int      `mapstructure:"poolSize"`
	DialTimeoutSeconds  int64    `mapstructure:"dialTimeoutSeconds"`
	ReadTimeoutSeconds  int64    `mapstructure:"readTimeoutSeconds"`
	WriteTimeoutSeconds int64    `mapstructure:"writeTimeoutSeconds"`
}

// BrokerConfig contains message broker connection settings
type BrokerConfig struct {
	Enabled            bool     `mapstructure:"enabled"`
	Driver             string   `mapstructure:"driver"`
	Brokers            []string `mapstructure:"brokers"`
	URL                string   `mapstructure:"url"`
	GroupID            string   `mapstructure:"groupId"`
	DialTimeoutSeconds int64    `mapstructure:"dialTimeoutSeconds"`
}

// SearchConfig contains search engine connection settings
type SearchConfig struct {
	Enabled            bool     `mapstructure:"enabled"`
	Addresses          []string `mapstructure:"addresses"`
	Username           string   `mapstructure:"username"`
	Password           string   `mapstructure:"password"`
	DialTimeoutSeconds int64    `mapstructure:"dialTimeoutSeconds"`
}
