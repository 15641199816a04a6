package userservice

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	goerrors "github.com/goliatone/go-errors"
)

// DefaultTokenExpiration is the token lifetime in hours. One hour is the
// conservative default; deployments override it via config.
const DefaultTokenExpiration = 1

// AppConfig is the process wide configuration. The signing key is loaded
// once at startup and shared read only; it must never be echoed in logs,
// errors, or responses.
type AppConfig struct {
	SigningKey      string   `toml:"-"`
	TokenExpiration int      `toml:"token_expiration"`
	Issuer          string   `toml:"issuer"`
	Audience        []string `toml:"audience"`
	ContextKey      string   `toml:"context_key"`
	TokenLookup     string   `toml:"token_lookup"`
	AuthScheme      string   `toml:"auth_scheme"`

	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`

	Database struct {
		DSN string `toml:"dsn"`
	} `toml:"database"`

	Debug bool `toml:"debug"`
}

// LoadConfig reads the optional TOML file at path and applies environment
// overrides. The signing key is environment only so it never lands in a
// checked-in file.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		TokenExpiration: DefaultTokenExpiration,
		ContextKey:      "user",
		AuthScheme:      "Bearer",
	}
	cfg.Server.Addr = ":8080"
	cfg.Database.DSN = "file:userservice.db?cache=shared"

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse config file")
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("AUTH_SIGNING_KEY"); v != "" {
		c.SigningKey = v
	}
	if v := os.Getenv("AUTH_TOKEN_EXPIRATION"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			c.TokenExpiration = hours
		}
	}
	if v := os.Getenv("AUTH_ISSUER"); v != "" {
		c.Issuer = v
	}
	if v := os.Getenv("AUTH_AUDIENCE"); v != "" {
		c.Audience = splitAndTrim(v)
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.Database.DSN = v
	}
}

// Validate enforces the invariants the auth core relies on
func (c *AppConfig) Validate() error {
	if c.SigningKey == "" {
		return goerrors.New("signing key is required, set AUTH_SIGNING_KEY", goerrors.CategoryBadInput)
	}
	if c.TokenExpiration <= 0 {
		return goerrors.New("token expiration must be a positive number of hours", goerrors.CategoryBadInput)
	}
	return nil
}

func (c *AppConfig) GetSigningKey() string {
	return c.SigningKey
}

func (c *AppConfig) GetTokenExpiration() int {
	return c.TokenExpiration
}

func (c *AppConfig) GetIssuer() string {
	return c.Issuer
}

func (c *AppConfig) GetAudience() []string {
	return c.Audience
}

func (c *AppConfig) GetContextKey() string {
	return c.ContextKey
}

func (c *AppConfig) GetTokenLookup() string {
	return c.TokenLookup
}

func (c *AppConfig) GetAuthScheme() string {
	return c.AuthScheme
}

var _ Config = (*AppConfig)(nil)

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
