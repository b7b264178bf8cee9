package httpserver

import (
	"net/http"
	"strings"
	"time"

	authHTTP "auth-srv/internal/auth/delivery/http"
	authRepo "auth-srv/internal/auth/repository"
	authRedis "auth-srv/internal/auth/repository/redis"
	authUC "auth-srv/internal/auth/usecase"
	"auth-srv/internal/middleware"
	userHTTP "auth-srv/internal/user/delivery/http"
	userPostgre "auth-srv/internal/user/repository/postgre"
	userUC "auth-srv/internal/user/usecase"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "auth-srv/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	// Repositories
	userRepo := userPostgre.New(srv.l, srv.postgresDB)
	var denylist authRepo.Denylist
	if srv.redis != nil {
		denylist = authRedis.New(srv.l, srv.redis)
	}

	// Usecases
	userUsecase := userUC.New(srv.l, userRepo)
	authUsecase := authUC.New(srv.l, userUsecase, srv.hasher, srv.jwtMgr, authUC.Config{
		Lifetime:         time.Duration(srv.cookieCfg.MaxAge) * time.Second,
		RememberLifetime: time.Duration(srv.cookieCfg.MaxAgeRemember) * time.Second,
		Denylist:         denylist,
	})

	// Middleware
	mw := middleware.New(srv.l, srv.jwtMgr, middleware.Config{
		CookieName: srv.cookieCfg.Name,
		LoginPath:  loginPath,
		Denylist:   denylist,
		Discord:    srv.discord,
	})

	srv.gin.Use(
		mw.Recovery(),
		mw.RequestLogger(),
		middleware.CORS(middleware.NewCORSConfig(srv.allowedOrigins)),
		mw.Locale(),
		mw.Unauthorized(),
	)

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Delivery
	authHandler := authHTTP.New(srv.l, authUsecase, authHTTP.Config{
		Cookie: authHTTP.CookieConfig{
			Name:     srv.cookieCfg.Name,
			Domain:   srv.cookieCfg.Domain,
			Secure:   srv.cookieCfg.Secure,
			SameSite: parseSameSite(srv.cookieCfg.SameSite),
		},
		LoginPage:   srv.loginCfg.PagePath,
		LoginPath:   loginPath,
		LandingPath: srv.loginCfg.LandingPath,
	}, srv.discord)
	authHandler.RegisterRoutes(srv.gin)

	userHandler := userHTTP.New(srv.l, userUsecase, srv.discord)
	userHandler.RegisterRoutes(srv.gin, mw)

	return nil
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
