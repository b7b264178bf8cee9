package http

import (
	"net/http"

	"auth-srv/internal/auth"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/log"
)

// CookieConfig describes the session cookie written by the form login.
type CookieConfig struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// Config holds the browser flow locations. LoginPage is a file path and may be empty.
type Config struct {
	Cookie      CookieConfig
	LoginPage   string
	LoginPath   string
	LandingPath string
}

type Handler struct {
	l       log.Logger
	uc      auth.UseCase
	cfg     Config
	discord discord.IDiscord
}

func New(l log.Logger, uc auth.UseCase, cfg Config, d discord.IDiscord) *Handler {
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.LandingPath == "" {
		cfg.LandingPath = "/balance"
	}
	if cfg.Cookie.SameSite == 0 {
		cfg.Cookie.SameSite = http.SameSiteLaxMode
	}
	return &Handler{
		l:       l,
		uc:      uc,
		cfg:     cfg,
		discord: d,
	}
}
