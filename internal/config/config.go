package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Rates  RatesConfig  `mapstructure:"rates"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// RatesConfig contains the exchange-rate service settings. The API key
// is deliberately not required at load time: every other conversion
// category works without it, and currency conversions report a missing
// credential per request instead of blocking startup.
type RatesConfig struct {
	APIKey          string `mapstructure:"api_key"`
	BaseURL         string `mapstructure:"base_url"          validate:"required,url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"   validate:"required,gt=0,lte=120"`
	CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes" validate:"gte=0"`
}
