package httpserver

import (
	"context"
	"net/http"

	"auth-srv/pkg/errors"
	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// dependencies pings the credential store and, when revocation is on, Redis.
func (srv *HTTPServer) dependencies(ctx context.Context) (gin.H, error) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	status := gin.H{"postgres": "connected", "redis": "disabled"}
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.dependencies.postgres: %v", err)
		return nil, errors.NewHTTPError(errCodeDependencyDown, "PostgreSQL connection failed", http.StatusServiceUnavailable)
	}
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			srv.l.Errorf(ctx, "internal.httpserver.dependencies.redis: %v", err)
			return nil, errors.NewHTTPError(errCodeDependencyDown, "Redis connection failed", http.StatusServiceUnavailable)
		}
		status["redis"] = "connected"
	}
	return status, nil
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the authentication service and its stores are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Failure 503 {object} response.Resp "A dependency is down"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	deps, err := srv.dependencies(c.Request.Context())
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, gin.H{
		"status":       "healthy",
		"service":      serviceName,
		"version":      serviceVersion,
		"dependencies": deps,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if _, err := srv.dependencies(c.Request.Context()); err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
		"version": serviceVersion,
	})
}
