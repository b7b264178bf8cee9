package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// MinJWTSecretLen is the shortest signing key accepted at startup.
const MinJWTSecretLen = 32

type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Authentication & Security Configuration
	JWT        JWTConfig
	Password   PasswordConfig
	Cookie     CookieConfig
	Login      LoginConfig
	Revocation RevocationConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"development"`
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"APP_PORT" envDefault:"8080"`
	Mode string `env:"API_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// CORSConfig lists origins allowed to send credentialed requests.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// PostgresConfig is the configuration for the credential store
type PostgresConfig struct {
	DatabaseURL     string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// RedisConfig is the configuration for the revocation denylist store
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// JWTConfig is the configuration for token signing.
// PreviousKeys is "kid:secret,kid:secret" and only verifies.
type JWTConfig struct {
	SecretKey    string            `env:"JWT_SECRET_KEY"`
	KeyID        string            `env:"JWT_KEY_ID" envDefault:"v1"`
	PreviousKeys map[string]string `env:"JWT_PREVIOUS_KEYS" envKeyValSeparator:":"`
}

// PasswordConfig is the configuration for password hashing
type PasswordConfig struct {
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

// CookieConfig is the configuration for HttpOnly cookie authentication
type CookieConfig struct {
	Name           string `env:"COOKIE_NAME" envDefault:"jwt_token"`
	Domain         string `env:"COOKIE_DOMAIN"`
	Secure         bool   `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite       string `env:"COOKIE_SAMESITE" envDefault:"Lax"`
	MaxAge         int    `env:"COOKIE_MAX_AGE" envDefault:"86400"`
	MaxAgeRemember int    `env:"COOKIE_MAX_AGE_REMEMBER" envDefault:"604800"`
}

// LoginConfig is the configuration for the browser login flow
type LoginConfig struct {
	PagePath    string `env:"LOGIN_PAGE_PATH"`
	LandingPath string `env:"LOGIN_LANDING_PATH" envDefault:"/balance"`
}

// RevocationConfig toggles the Redis-backed token denylist
type RevocationConfig struct {
	Enabled bool `env:"REVOCATION_ENABLED" envDefault:"false"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Postgres.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < MinJWTSecretLen {
		return fmt.Errorf("JWT_SECRET_KEY must be at least %d characters", MinJWTSecretLen)
	}
	for kid, secret := range cfg.JWT.PreviousKeys {
		if kid == "" || kid == cfg.JWT.KeyID {
			return fmt.Errorf("JWT_PREVIOUS_KEYS has an invalid key id %q", kid)
		}
		if len(secret) < MinJWTSecretLen {
			return fmt.Errorf("JWT_PREVIOUS_KEYS entry %q must be at least %d characters", kid, MinJWTSecretLen)
		}
	}

	switch strings.ToLower(cfg.Cookie.SameSite) {
	case "lax", "strict":
	case "none":
		if !cfg.Cookie.Secure {
			return fmt.Errorf("COOKIE_SAMESITE=None requires COOKIE_SECURE=true")
		}
	default:
		return fmt.Errorf("COOKIE_SAMESITE must be one of Lax, Strict, None")
	}
	if cfg.Cookie.Name == "" {
		return fmt.Errorf("COOKIE_NAME is required")
	}
	if cfg.Cookie.MaxAge <= 0 || cfg.Cookie.MaxAgeRemember <= 0 {
		return fmt.Errorf("COOKIE_MAX_AGE and COOKIE_MAX_AGE_REMEMBER must be positive")
	}

	if cfg.Revocation.Enabled && cfg.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required when REVOCATION_ENABLED=true")
	}
	return nil
}
