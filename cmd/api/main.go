package main

import (
	"context"
	"fmt"

	"auth-srv/config"
	"auth-srv/config/postgre"
	configRedis "auth-srv/config/redis"
	"auth-srv/internal/httpserver"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/encrypter"
	"auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
	pkgRedis "auth-srv/pkg/redis"
)

// @title Auth Service API
// @description Session-token issuing and verification service.
// @version 1
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name jwt_token
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// Initialize token manager
	jwtManager, err := jwt.New(jwt.Config{
		SecretKey:    cfg.JWT.SecretKey,
		KeyID:        cfg.JWT.KeyID,
		PreviousKeys: cfg.JWT.PreviousKeys,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer func() {
		if err := postgre.Disconnect(postgresDB); err != nil {
			logger.Error(ctx, "Failed to disconnect PostgreSQL: ", err)
		}
	}()
	logger.Info(ctx, "PostgreSQL connected successfully")

	// Initialize Redis only when revocation is enabled
	var redisClient pkgRedis.IRedis
	if cfg.Revocation.Enabled {
		redisClient, err = configRedis.Connect(cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer redisClient.Close()
		logger.Infof(ctx, "Redis connected successfully to %s:%d, token revocation enabled", cfg.Redis.Host, cfg.Redis.Port)
	}

	// Initialize Discord
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer discordClient.Close()
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host: cfg.HTTPServer.Host,
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		// Database Configuration
		PostgresDB: postgresDB,

		// Authentication & Security Configuration
		JWTManager:     jwtManager,
		Hasher:         encrypter.New(cfg.Password.BcryptCost),
		Cookie:         cfg.Cookie,
		Login:          cfg.Login,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Redis:          redisClient,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
