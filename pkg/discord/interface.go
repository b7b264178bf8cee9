package discord

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"auth-srv/pkg/log"
)

// IDiscord reports server faults to a Discord channel.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// DefaultConfig returns the default Discord config.
func DefaultConfig() Config {
	return Config{
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
		Username:   DefaultUsername,
	}
}

// New validates webhookURL (https://discord.com/api/webhooks/{id}/{token}) and returns a reporter.
func New(l log.Logger, webhookURL string) (IDiscord, error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		return nil, errWebhookRequired
	}
	if err := validateWebhookURL(webhookURL); err != nil {
		return nil, err
	}
	return newImpl(l, webhookURL, DefaultConfig()), nil
}

func validateWebhookURL(webhookURL string) error {
	if !strings.HasPrefix(webhookURL, webhookPrefix) {
		return fmt.Errorf("discord: invalid webhook URL format")
	}
	parts := strings.SplitN(strings.TrimPrefix(webhookURL, webhookPrefix), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("discord: webhook URL must be .../webhooks/{id}/{token}")
	}
	return nil
}

func newImpl(l log.Logger, webhookURL string, cfg Config) *discordImpl {
	return &discordImpl{
		l:          l,
		webhookURL: webhookURL,
		config:     cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        4,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}
