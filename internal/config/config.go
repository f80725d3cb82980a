package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the cementchat client.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig points the client at the RAG backend.
type ServerConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// HTTPConfig holds transport configuration.
type HTTPConfig struct {
	// Timeout bounds each request. Zero means no client-side timeout;
	// the client then relies on the transport's own failure signaling.
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds terminal UI configuration.
type UIConfig struct {
	Theme          string `mapstructure:"theme"` // light, dark
	WelcomeMessage string `mapstructure:"welcome_message"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
	// File receives log output while the interactive UI owns the
	// terminal. Empty means stderr.
	File string `mapstructure:"file"`
}

// Load loads configuration from file and environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if specified
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("CEMENTCHAT")
	v.AutomaticEnv()

	// Read config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.base_url", "http://localhost:5000")

	v.SetDefault("http.timeout", time.Duration(0))

	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.welcome_message",
		"Hello! I'm your cement industry assistant. Ask me anything about cement production, quality control, or plant operations.")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}
