package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"NumeraAI"`
		Port     int    `envconfig:"PORT" default:"8080"`
		Language string `envconfig:"APP_LANGUAGE" default:"en"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"numera"`
	}

	Storage struct {
		// Driver is "postgres" or "memory".
		Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Coach struct {
		URL       string        `envconfig:"COACH_URL" default:"https://unwarned-nonspheric-georgeanna.ngrok-free.dev/ask"`
		TypingMin time.Duration `envconfig:"COACH_TYPING_MIN" default:"1s"`
		TypingMax time.Duration `envconfig:"COACH_TYPING_MAX" default:"3s"`
	}

	ImageGen struct {
		BaseURL string `envconfig:"IMAGEGEN_BASE_URL" default:"https://image.pollinations.ai"`
		Width   int    `envconfig:"IMAGEGEN_WIDTH" default:"400"`
		Height  int    `envconfig:"IMAGEGEN_HEIGHT" default:"400"`
	}

	Auth struct {
		Secret string        `envconfig:"AUTH_SECRET" required:"true"`
		TTL    time.Duration `envconfig:"AUTH_TTL" default:"720h"`
	}

	Alerts struct {
		Cron    string `envconfig:"ALERTS_CRON" default:"*/30 * * * *"`
		Enabled bool   `envconfig:"ALERTS_ENABLED" default:"true"`
	}
}

// minSecretLen keeps HS256 session keys out of guessable territory.
const minSecretLen = 32

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// UseMemory reports whether persistence should stay in process.
func (c *Config) UseMemory() bool {
	return c.Storage.Driver == "memory"
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.App.Language != "en" && cfg.App.Language != "sw" {
		return nil, fmt.Errorf("unsupported APP_LANGUAGE %q", cfg.App.Language)
	}

	switch cfg.Storage.Driver {
	case "postgres", "memory":
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	if len(cfg.Auth.Secret) < minSecretLen {
		return nil, fmt.Errorf("AUTH_SECRET must be at least %d characters", minSecretLen)
	}

	if cfg.Coach.TypingMax < cfg.Coach.TypingMin {
		return nil, fmt.Errorf("COACH_TYPING_MAX %s is below COACH_TYPING_MIN %s", cfg.Coach.TypingMax, cfg.Coach.TypingMin)
	}

	return &cfg, nil
}
