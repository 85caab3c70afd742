package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "Missing API key fails fast",
			env:     map[string]string{"ANTHROPIC_API_KEY": ""},
			wantErr: "ANTHROPIC_API_KEY",
		},
		{
			name: "Defaults applied",
			env:  map[string]string{"ANTHROPIC_API_KEY": "sk-test-key"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "sk-test-key", cfg.AnthropicAPIKey)
				assert.Equal(t, "claude-haiku-4-5", cfg.Model)
				assert.Equal(t, 4000, cfg.MaxTokens)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "file", cfg.LogOutput)
				assert.Equal(t, "code_review.log", cfg.LogFile)
			},
		},
		{
			name: "Environment overrides defaults",
			env: map[string]string{
				"ANTHROPIC_API_KEY": "sk-test-key",
				"MODEL":             "claude-sonnet-4-5",
				"MAX_TOKENS":        "8000",
				"LOG_LEVEL":         "debug",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "claude-sonnet-4-5", cfg.Model)
				assert.Equal(t, 8000, cfg.MaxTokens)
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		{
			name: "Non-positive MAX_TOKENS rejected",
			env: map[string]string{
				"ANTHROPIC_API_KEY": "sk-test-key",
				"MAX_TOKENS":        "-5",
			},
			wantErr: "MAX_TOKENS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
