package config

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func ValidateStatic(cfg *Config) error {
	var errors []error

	if err := validateServer(cfg.Server); err != nil {
		errors = append(errors, err)
	}

	if err := validateTelegram(cfg.Telegram); err != nil {
		errors = append(errors, err)
	}

	if err := validateStorage(cfg.Storage); err != nil {
		errors = append(errors, err)
	}

	if err := validateRateLimit(cfg.RateLimit); err != nil {
		errors = append(errors, err)
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}

func validateServer(cfg ServerConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return &ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("port must be between 1 and 65535, got %d", cfg.Port),
		}
	}

	if cfg.ReadTimeoutSeconds <= 0 {
		return &ValidationError{
			Field:   "server.read_timeout_seconds",
			Message: "read timeout must be positive",
		}
	}

	if cfg.WriteTimeoutSeconds <= 0 {
		return &ValidationError{
			Field:   "server.write_timeout_seconds",
			Message: "write timeout must be positive",
		}
	}

	for i, origin := range cfg.CORSOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return &ValidationError{
				Field:   fmt.Sprintf("server.cors_origins[%d]", i),
				Message: fmt.Sprintf("origin must start with http:// or https://, got %q", origin),
			}
		}
	}

	return nil
}

func validateTelegram(cfg TelegramConfig) error {
	if cfg.Token == "" {
		return &ValidationError{
			Field:   "telegram.token",
			Message: "bot token is required",
		}
	}

	if cfg.AdminChatID == 0 {
		return &ValidationError{
			Field:   "telegram.admin_chat_id",
			Message: "admin chat ID is required",
		}
	}

	if cfg.PollTimeoutSeconds <= 0 {
		return &ValidationError{
			Field:   "telegram.poll_timeout_seconds",
			Message: "poll timeout must be positive",
		}
	}

	if cfg.Startup.MaxAttempts < 0 {
		return &ValidationError{
			Field:   "telegram.startup.max_attempts",
			Message: "max_attempts must be non-negative",
		}
	}

	if cfg.Startup.InitialInterval < 0 || cfg.Startup.MaxInterval < 0 {
		return &ValidationError{
			Field:   "telegram.startup",
			Message: "backoff intervals must be non-negative",
		}
	}

	if cfg.Startup.MaxInterval > 0 && cfg.Startup.InitialInterval > 0 && cfg.Startup.MaxInterval < cfg.Startup.InitialInterval {
		return &ValidationError{
			Field:   "telegram.startup.max_interval",
			Message: "max_interval must be greater than or equal to initial_interval",
		}
	}

	return nil
}

func validateStorage(cfg StorageConfig) error {
	if cfg.DataDir == "" {
		return &ValidationError{
			Field:   "storage.data_dir",
			Message: "data directory is required",
		}
	}

	if cfg.MessagesFile == "" || cfg.OrdersFile == "" {
		return &ValidationError{
			Field:   "storage",
			Message: "messages_file and orders_file are required",
		}
	}

	if cfg.MessagesFile == cfg.OrdersFile {
		return &ValidationError{
			Field:   "storage.orders_file",
			Message: "collections must use distinct files",
		}
	}

	return nil
}

func validateRateLimit(cfg RateLimitConfig) error {
	if !cfg.Enabled {
		return nil
	}

	if cfg.RPS <= 0 {
		return &ValidationError{
			Field:   "rate_limit.rps",
			Message: "rps must be positive when rate limiting is enabled",
		}
	}

	if cfg.Burst <= 0 {
		return &ValidationError{
			Field:   "rate_limit.burst",
			Message: "burst must be positive when rate limiting is enabled",
		}
	}

	return nil
}
