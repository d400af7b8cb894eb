package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	TransportConsole  = "console"
	TransportTelegram = "telegram"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
		Transport string `env:"APP_TRANSPORT" env-default:"console" env-description:"Line source and output sink: console or telegram"`
	}
	Telegram struct {
		User         int64         `env:"TELEGRAM_USER" env-description:"Chat allowed to send commands; also receives every output line"`
		Token        string        `env:"TELEGRAM_TOKEN"`
		RateRequests int           `env:"TELEGRAM_RATE_REQUESTS" env-default:"5"`
		RatePer      time.Duration `env:"TELEGRAM_RATE_PER" env-default:"10s"`
		RateBurst    int           `env:"TELEGRAM_RATE_BURST" env-default:"3"`
	}
	Link struct {
		QueueSize int `env:"LINK_QUEUE_SIZE" env-default:"64"`
	}
	Scheduler struct {
		Interval time.Duration `env:"SCHEDULER_INTERVAL" env-default:"1m"`
		Lines    []string      `env:"SCHEDULER_LINES" env-separator:";" env-description:"Command lines pushed to the link on every tick"`
	}
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// New reads the environment once and returns the shared configuration.
func New() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = Load()
	})
	return cfg, loadErr
}

// Load reads and validates a fresh configuration from the environment.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) validate() error {
	switch c.App.Transport {
	case TransportConsole:
	case TransportTelegram:
		if c.Telegram.Token == "" {
			return fmt.Errorf("TELEGRAM_TOKEN is required for the %s transport", TransportTelegram)
		}
		if c.Telegram.User == 0 {
			return fmt.Errorf("TELEGRAM_USER is required for the %s transport", TransportTelegram)
		}
	default:
		return fmt.Errorf("unknown transport %q", c.App.Transport)
	}

	if c.Link.QueueSize < 1 {
		return fmt.Errorf("LINK_QUEUE_SIZE must be positive, got %d", c.Link.QueueSize)
	}

	return nil
}
