package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ProviderGroq, cfg.LLMProvider)
	assert.Equal(t, "mixtral-8x7b-32768", cfg.GroqModel)
	assert.Equal(t, "legal_advisor_session", cfg.SessionCookie)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, 2*time.Hour, cfg.SessionIdleTimeout)
	assert.Equal(t, 10000, cfg.MaxSessions)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("SESSION_IDLE_TIMEOUT", "45m")
	t.Setenv("MAX_SESSIONS", "500")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "gsk-test", cfg.GroqAPIKey)
	assert.True(t, cfg.HasActiveAPIKey())
	assert.Equal(t, 45*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, 500, cfg.MaxSessions)
}

func TestLoadLayering(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
port: 7000
llm_provider: gemini
gemini_model: gemini-1.5-pro
log_format: console
session_idle_timeout: 90m
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("PORT", "7100")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 7100, cfg.Port, "env overrides file")
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 90*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, "GEMINI_API_KEY", cfg.ActiveAPIKeyName())
}

func TestLoadIgnoresKeysInFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("groq_api_key: from-file\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Empty(t, cfg.GroqAPIKey)
	assert.False(t, cfg.HasActiveAPIKey())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid defaults", mutate: func(*Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Port = 0 }, wantErr: "invalid port"},
		{name: "unknown provider", mutate: func(c *Config) { c.LLMProvider = "openai" }, wantErr: "unknown llm provider"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "invalid log level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "invalid log format"},
		{name: "bad gin mode", mutate: func(c *Config) { c.GinMode = "prod" }, wantErr: "invalid gin mode"},
		{name: "empty cookie", mutate: func(c *Config) { c.SessionCookie = "" }, wantErr: "session cookie"},
		{name: "short idle timeout", mutate: func(c *Config) { c.SessionIdleTimeout = time.Second }, wantErr: "session idle timeout"},
		{name: "no session cap", mutate: func(c *Config) { c.MaxSessions = 0 }, wantErr: "invalid max sessions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
