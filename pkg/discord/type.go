package discord

import (
	"errors"
	"net/http"
	"time"

	"auth-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook URL is required")

// Config controls delivery of webhook messages.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

type discordImpl struct {
	l          log.Logger
	webhookURL string
	config     Config
	client     *http.Client
}

type embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

type webhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds,omitempty"`
}
