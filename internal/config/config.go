package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment      string        `mapstructure:"ENVIRONMENT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	DBSource         string        `mapstructure:"DB_SOURCE"`
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	HTTPReadTimeout  time.Duration `mapstructure:"HTTP_READ_TIMEOUT"`
	HTTPWriteTimeout time.Duration `mapstructure:"HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout  time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"ENVIRONMENT":        "production",
	"LOG_LEVEL":          "info",
	"DB_SOURCE":          "",
	"SERVER_ADDRESS":     ":8080",
	"HTTP_READ_TIMEOUT":  "5s",
	"HTTP_WRITE_TIMEOUT": "10s",
	"SHUTDOWN_TIMEOUT":   "10s",
}

// LoadConfig reads app.env from path if it exists. Environment variables
// override values from the file.
func LoadConfig(path string) (Config, error) {
	var config Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if config.DBSource == "" {
		return config, errors.New("config: DB_SOURCE is required")
	}

	return config, nil
}
