package httpserver

import "time"

const (
	serviceName    = "auth-srv"
	serviceVersion = "1.0.0"
	loginPath      = "/login"

	defaultShutdownTimeout = 10 * time.Second
	healthCheckTimeout     = 2 * time.Second

	errCodeDependencyDown = 503
)
