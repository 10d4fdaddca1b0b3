package config

import (
	"fmt"
	"time"
)

type QueueConfig struct {
	User          string        `mapstructure:"user"`
	Password      string        `mapstructure:"password"`
	URL           string        `mapstructure:"url"`
	Exchange      string        `mapstructure:"exchange"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.User == "" {
		return fmt.Errorf("missing queue user")
	}
	if cfg.Password == "" {
		return fmt.Errorf("missing queue password")
	}
	if cfg.URL == "" {
		return fmt.Errorf("missing queue url")
	}
	if cfg.Exchange == "" {
		return fmt.Errorf("missing queue exchange")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("queue max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("queue retry-interval must be positive")
	}
	return nil
}
