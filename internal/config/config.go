package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/viper"
)

// Config holds the application's configuration values.
type Config struct {
	AnthropicAPIKey string
	Model           string
	MaxTokens       int
	LogLevel        string
	LogFormat       string
	LogOutput       string
	LogFile         string
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
//
// The API key check is the one validation gate before any other work: a
// missing ANTHROPIC_API_KEY fails here, before any subprocess or network
// call is attempted.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetDefault("MODEL", "claude-haiku-4-5")
	viper.SetDefault("MAX_TOKENS", 4000)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "file")
	viper.SetDefault("LOG_FILE", "code_review.log")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine; env vars alone are a valid setup.
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	if viper.GetString("ANTHROPIC_API_KEY") == "" {
		return nil, errors.New(
			"ANTHROPIC_API_KEY not found; set it as an environment variable:\n  export ANTHROPIC_API_KEY='your-api-key-here'")
	}

	maxTokens := viper.GetInt("MAX_TOKENS")
	if maxTokens <= 0 {
		return nil, fmt.Errorf("MAX_TOKENS must be positive, got %d", maxTokens)
	}

	return &Config{
		AnthropicAPIKey: viper.GetString("ANTHROPIC_API_KEY"),
		Model:           viper.GetString("MODEL"),
		MaxTokens:       maxTokens,
		LogLevel:        viper.GetString("LOG_LEVEL"),
		LogFormat:       viper.GetString("LOG_FORMAT"),
		LogOutput:       viper.GetString("LOG_OUTPUT"),
		LogFile:         viper.GetString("LOG_FILE"),
	}, nil
}
