package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

type Config struct {
	GeminiApiKey   string
	ModelName      string
	GeminiEndpoint string
	ModelTimeout   time.Duration

	HTTPAddr       string
	AllowedOrigins []string
	RequestTimeout time.Duration

	LogCalls bool

	TelegramToken       string
	TelegramPollTimeout time.Duration
}

// NewConfig reads configuration from the given .env file, if it exists, and
// from the environment. Environment variables win over the file.
func NewConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-pro")
	v.SetDefault("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com")
	v.SetDefault("MODEL_TIMEOUT", "60s")
	v.SetDefault("HTTP_ADDR", ":8000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REQUEST_TIMEOUT", "90s")
	v.SetDefault("LLM_LOG_CALLS", true)
	v.SetDefault("TELEGRAM_POLL_TIMEOUT", "10s")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{
		GeminiApiKey:        v.GetString("GEMINI_API_KEY"),
		ModelName:           v.GetString("GEMINI_MODEL"),
		GeminiEndpoint:      v.GetString("GEMINI_ENDPOINT"),
		ModelTimeout:        v.GetDuration("MODEL_TIMEOUT"),
		HTTPAddr:            v.GetString("HTTP_ADDR"),
		AllowedOrigins:      splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RequestTimeout:      v.GetDuration("REQUEST_TIMEOUT"),
		LogCalls:            v.GetBool("LLM_LOG_CALLS"),
		TelegramToken:       v.GetString("TELEGRAM_TOKEN"),
		TelegramPollTimeout: v.GetDuration("TELEGRAM_POLL_TIMEOUT"),
	}
	return cfg, nil
}

// Validate reports configuration that makes serving any request impossible.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GeminiApiKey) == "" {
		return ErrMissingAPIKey
	}
	if c.ModelTimeout <= 0 {
		return fmt.Errorf("MODEL_TIMEOUT must be positive, got %s", c.ModelTimeout)
	}
	return nil
}

// ValidateBot additionally requires the Telegram token.
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.TelegramToken == "" {
		return errors.New("TELEGRAM_TOKEN is not set")
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
