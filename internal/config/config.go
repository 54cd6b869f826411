package config

import (
	"time"
)

type Config struct {
	Server         ServerConfig
	Telegram       TelegramConfig
	Storage        StorageConfig
	Storefront     StorefrontConfig
	RateLimit      RateLimitConfig
	CircuitBreaker CircuitBreakerConfig
	Logging        LoggingConfig
}

type ServerConfig struct {
	Port                int      `mapstructure:"port"`
	ReadTimeoutSeconds  int      `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int      `mapstructure:"write_timeout_seconds"`
	CORSOrigins         []string `mapstructure:"cors_origins"`
}

type TelegramConfig struct {
	Token              string        `mapstructure:"token"`
	AdminChatID        int64         `mapstructure:"admin_chat_id"`
	PollTimeoutSeconds int           `mapstructure:"poll_timeout_seconds"`
	Startup            StartupConfig `mapstructure:"startup"`
}

// StartupConfig shapes the backoff used for the initial Telegram handshake.
type StartupConfig struct {
	MaxAttempts     int           `mapstructure:"max_attempts"`
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	Multiplier      float64       `mapstructure:"multiplier"`
}

type StorageConfig struct {
	DataDir      string `mapstructure:"data_dir"`
	MessagesFile string `mapstructure:"messages_file"`
	OrdersFile   string `mapstructure:"orders_file"`
}

// StorefrontConfig holds the shop URLs embedded in bot replies.
type StorefrontConfig struct {
	StoreURL  string `mapstructure:"store_url"`
	WebAppURL string `mapstructure:"webapp_url"`
}

type RateLimitConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	RPS             float64 `mapstructure:"rps"`
	Burst           int     `mapstructure:"burst"`
	CleanupInterval int     `mapstructure:"cleanup_interval"`
	MaxAge          int     `mapstructure:"max_age"`
}

type CircuitBreakerConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	MaxRequests  uint32        `mapstructure:"max_requests"`
	Interval     time.Duration `mapstructure:"interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
	FailureRatio float64       `mapstructure:"failure_ratio"`
	MinRequests  uint32        `mapstructure:"min_requests"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load(configFile string) (*Config, error) {
	return LoadConfig(configFile)
}
