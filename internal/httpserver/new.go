package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"auth-srv/config"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/encrypter"
	"auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
	pkgRedis "auth-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for serving and shutdown.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	shutdownTimeout time.Duration

	// Database Configuration
	postgresDB *sql.DB

	// Authentication & Security Configuration
	jwtMgr         jwt.Manager
	hasher         encrypter.Hasher
	cookieCfg      config.CookieConfig
	loginCfg       config.LoginConfig
	allowedOrigins []string

	// Revocation store, nil unless REVOCATION_ENABLED=true
	redis pkgRedis.IRedis

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server Configuration
	Host string
	Port int
	Mode string

	// Database Configuration
	PostgresDB *sql.DB

	// Authentication & Security Configuration
	JWTManager     jwt.Manager
	Hasher         encrypter.Hasher
	Cookie         config.CookieConfig
	Login          config.LoginConfig
	AllowedOrigins []string

	// Redis enables token revocation when non-nil.
	Redis pkgRedis.IRedis

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start serving. Use (*HTTPServer).Run() for that.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		// Server configuration
		gin:             gin.New(),
		l:               l,
		host:            cfg.Host,
		port:            cfg.Port,
		shutdownTimeout: defaultShutdownTimeout,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Authentication & Security Configuration
		jwtMgr:         cfg.JWTManager,
		hasher:         cfg.Hasher,
		cookieCfg:      cfg.Cookie,
		loginCfg:       cfg.Login,
		allowedOrigins: cfg.AllowedOrigins,

		redis:   cfg.Redis,
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("PostgresDB is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if srv.hasher == nil {
		return errors.New("Hasher is required")
	}
	if srv.cookieCfg.Name == "" {
		return errors.New("cookie name is required")
	}

	return nil
}
