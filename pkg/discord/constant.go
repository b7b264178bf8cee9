package discord

import "time"

const (
	webhookPrefix = "https://discord.com/api/webhooks/"

	ColorError = 15158332

	MaxDescriptionLen = 4096

	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond

	DefaultUsername = "Auth Service"
	UserAgent       = "Auth-Service-Bot/1.0"
	ReportBugTitle  = "Auth Service Error Report"
)
