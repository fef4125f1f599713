package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultTokenTTL = 30 * time.Minute

// Config holds the credentials of the authenticated API variant.
type Config struct {
	SecretKey    string
	ClientID     string
	ClientSecret string
	TokenTTL     time.Duration
}

// NewConfig loads auth settings from the given env file (if present) and the
// process environment, the latter taking precedence.
func NewConfig(path string) (*Config, error) {
	fileEnv := map[string]string{}
	if path != "" {
		env, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if env != nil {
			fileEnv = env
		}
	}
	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileEnv[key]
	}

	cfg := &Config{
		SecretKey:    get("AUTH_SECRET_KEY"),
		ClientID:     get("AUTH_CLIENT_ID"),
		ClientSecret: get("AUTH_CLIENT_SECRET"),
		TokenTTL:     defaultTokenTTL,
	}
	if v := get("AUTH_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid AUTH_TOKEN_TTL %q", v)
		}
		cfg.TokenTTL = d
	}
	return cfg, nil
}

// Enabled reports whether the API should require bearer tokens.
func (c *Config) Enabled() bool {
	return c.SecretKey != ""
}

// Validate requires the client credentials once authentication is enabled.
func (c *Config) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.ClientID == "" || c.ClientSecret == "" {
		return errors.New("AUTH_CLIENT_ID and AUTH_CLIENT_SECRET are required when AUTH_SECRET_KEY is set")
	}
	return nil
}
