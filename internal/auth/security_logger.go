package auth

import (
	"context"

	"auth-srv/pkg/log"
)

// SecurityEventType represents the type of security event
type SecurityEventType string

const (
	SecurityEventLoginFailure  SecurityEventType = "login_failure"
	SecurityEventTokenRejected SecurityEventType = "token_rejected"
	SecurityEventForbidden     SecurityEventType = "forbidden"
	SecurityEventTokenRevoked  SecurityEventType = "token_revoked"
)

// SecurityLogger writes security-relevant events at Warn. It never logs tokens or passwords.
type SecurityLogger struct {
	logger log.Logger
}

// NewSecurityLogger creates a new SecurityLogger
func NewSecurityLogger(logger log.Logger) *SecurityLogger {
	return &SecurityLogger{logger: logger}
}

// LogLoginFailure records a rejected login. reason is an error, never the submitted password.
func (sl *SecurityLogger) LogLoginFailure(ctx context.Context, email string, reason error) {
	sl.logger.Warnf(ctx, "SECURITY: %s - email=%s reason=%v", SecurityEventLoginFailure, email, reason)
}

// LogTokenRejected records a presented credential that failed verification.
func (sl *SecurityLogger) LogTokenRejected(ctx context.Context, path string, reason error) {
	sl.logger.Warnf(ctx, "SECURITY: %s - path=%s reason=%v", SecurityEventTokenRejected, path, reason)
}

// LogForbidden records an authenticated caller reaching an admin-only resource.
func (sl *SecurityLogger) LogForbidden(ctx context.Context, userID, path string) {
	sl.logger.Warnf(ctx, "SECURITY: %s - user=%s path=%s", SecurityEventForbidden, userID, path)
}

// LogTokenRevoked records a logout that placed a token id on the denylist.
func (sl *SecurityLogger) LogTokenRevoked(ctx context.Context, userID, tokenID string) {
	sl.logger.Infof(ctx, "SECURITY: %s - user=%s jti=%s", SecurityEventTokenRevoked, userID, tokenID)
}
