// Package config loads server and CLI configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. API keys are only ever read from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config holds all application configuration
type Config struct {
	Port    int    `envconfig:"PORT" yaml:"port"`
	GinMode string `envconfig:"GIN_MODE" yaml:"gin_mode"`

	LogLevel  string `envconfig:"LOG_LEVEL" yaml:"log_level"`
	LogFormat string `envconfig:"LOG_FORMAT" yaml:"log_format"`

	LLMProvider string `envconfig:"LLM_PROVIDER" yaml:"llm_provider"`

	GroqAPIKey  string `envconfig:"GROQ_API_KEY" yaml:"-"`
	GroqBaseURL string `envconfig:"GROQ_BASE_URL" yaml:"groq_base_url"`
	GroqModel   string `envconfig:"GROQ_MODEL" yaml:"groq_model"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" yaml:"-"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" yaml:"gemini_model"`

	SessionCookie      string        `envconfig:"SESSION_COOKIE" yaml:"session_cookie"`
	SessionIdleTimeout time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" yaml:"session_idle_timeout"`
	MaxSessions        int           `envconfig:"MAX_SESSIONS" yaml:"max_sessions"`
}

// Load reads configuration from configPath (optional) and the environment
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from defaults and environment variables only
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *Config) {
	cfg.Port = 8080
	cfg.GinMode = "release"
	cfg.LogLevel = "info"
	cfg.LogFormat = "json"
	cfg.LLMProvider = ProviderGroq
	cfg.GroqBaseURL = "https://api.groq.com/openai/v1"
	cfg.GroqModel = "mixtral-8x7b-32768"
	cfg.GeminiModel = "gemini-1.5-flash"
	cfg.SessionCookie = "legal_advisor_session"
	cfg.SessionIdleTimeout = 2 * time.Hour
	cfg.MaxSessions = 10000
}

// Validate checks settings that would otherwise fail later in confusing ways.
// A missing API key is not an error here.
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}

	switch strings.ToLower(c.LLMProvider) {
	case ProviderGroq, ProviderGemini:
		c.LLMProvider = strings.ToLower(c.LLMProvider)
	default:
		errs = append(errs, fmt.Errorf("unknown llm provider: %q", c.LLMProvider))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		errs = append(errs, fmt.Errorf("invalid log level: %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("invalid log format: %q", c.LogFormat))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("invalid gin mode: %q", c.GinMode))
	}

	if c.SessionCookie == "" {
		errs = append(errs, errors.New("session cookie name must not be empty"))
	}
	if c.SessionIdleTimeout < time.Minute {
		errs = append(errs, fmt.Errorf("session idle timeout must be at least 1m: %s", c.SessionIdleTimeout))
	}
	if c.MaxSessions <= 0 {
		errs = append(errs, fmt.Errorf("invalid max sessions: %d", c.MaxSessions))
	}

	return errors.Join(errs...)
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ActiveAPIKeyName returns the environment variable holding the selected provider's key
func (c *Config) ActiveAPIKeyName() string {
	if c.LLMProvider == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "GROQ_API_KEY"
}

// HasActiveAPIKey reports whether the selected provider has a key configured
func (c *Config) HasActiveAPIKey() bool {
	if c.LLMProvider == ProviderGemini {
		return c.GeminiAPIKey != ""
	}
	return c.GroqAPIKey != ""
}
