package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"avery/internal/constants"
)

func LoadConfig(configFile string) (*Config, error) {
	viper.Reset()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(configFile)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	bindEnvVariables()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateStatic(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func bindEnvVariables() {
	// Env names kept from the storefront's original deployment.
	viper.BindEnv("telegram.token", "TELEGRAM_BOT_TOKEN")
	viper.BindEnv("telegram.admin_chat_id", "TELEGRAM_USER_ID")

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout_seconds", "SERVER_READ_TIMEOUT_SECONDS")
	viper.BindEnv("server.write_timeout_seconds", "SERVER_WRITE_TIMEOUT_SECONDS")

	viper.BindEnv("storage.data_dir", "STORAGE_DATA_DIR")

	viper.BindEnv("logging.level", "LOGGING_LEVEL")
	viper.BindEnv("logging.format", "LOGGING_FORMAT")
}

func setDefaults() {
	viper.SetDefault("server.port", constants.DefaultServerPort)
	viper.SetDefault("server.read_timeout_seconds", 15)
	viper.SetDefault("server.write_timeout_seconds", 15)
	viper.SetDefault("telegram.poll_timeout_seconds", constants.DefaultPollTimeoutSeconds)
	viper.SetDefault("telegram.startup.max_attempts", 5)
	viper.SetDefault("telegram.startup.initial_interval", "1s")
	viper.SetDefault("telegram.startup.max_interval", "30s")
	viper.SetDefault("telegram.startup.multiplier", 2.0)
	viper.SetDefault("storage.data_dir", constants.DefaultDataDir)
	viper.SetDefault("storage.messages_file", constants.DefaultMessagesFile)
	viper.SetDefault("storage.orders_file", constants.DefaultOrdersFile)
	viper.SetDefault("storefront.store_url", "avery.com.ua")
	viper.SetDefault("storefront.webapp_url", "https://avery.com.ua")
	viper.SetDefault("logging.level", "info")
}
