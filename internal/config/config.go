package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Local secrets (fill up for local development)
	APIBaseURL  string `envconfig:"API_BASE_URL" required:"true"`
	AccessToken string `envconfig:"ACCESS_TOKEN" required:"true"`
	JWTSecret   string `envconfig:"JWT_SECRET"`
	Environment string `envconfig:"ENV" default:"development"`

	RequestTimeoutSec   int `envconfig:"REQUEST_TIMEOUT_SEC" default:"10"`
	NotificationPollSec int `envconfig:"NOTIFICATION_POLL_SEC" default:"60"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RequestTimeout returns the per-request timeout for backend calls.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// NotificationPollInterval returns the interval of the notification feed poller.
func (c *Config) NotificationPollInterval() time.Duration {
	return time.Duration(c.NotificationPollSec) * time.Second
}
