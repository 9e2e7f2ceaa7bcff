package app

import (
	"context"
	"net/http"

	"go-yourtask/internal/auth"
	"go-yourtask/internal/bootstrap"
	"go-yourtask/internal/dashboard"
	"go-yourtask/internal/middleware"
	"go-yourtask/internal/rbac"
	"go-yourtask/internal/rbac/infra"
	"go-yourtask/internal/session"
	"go-yourtask/internal/shared/config"
	"go-yourtask/internal/sheetcheck"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	stack SheetStack,
	rdb *redis.Client,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) error {
	// --- Session ---
	store := session.NewRedisStore(rdb, cfg.Session.TTL, logger)
	issuer := session.NewTokenIssuer(cfg.Session.Secret, cfg.Session.TTL)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultPolicy)
	if err != nil {
		return err
	}

	// --- Services ---
	// state dashboard tidak perlu hidup lebih lama dari session-nya
	idleTTL := cfg.Dashboard.IdleTTL
	if cfg.Session.TTL > 0 && (idleTTL <= 0 || cfg.Session.TTL < idleTTL) {
		idleTTL = cfg.Session.TTL
	}
	dashboardRegistry := dashboard.NewRegistry(idleTTL, logger)
	go dashboardRegistry.Run(context.Background(), cfg.Dashboard.SweepInterval)

	dashboardService := dashboard.NewService(dashboardRegistry, stack.Tasks, stack.Attendance, logger)
	authService := auth.NewService(stack.Accounts, stack.Tasks, store, issuer, dashboardService, audit, logger)
	sheetcheckService := sheetcheck.NewService(stack.Fetcher, stack.Layout, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure: cfg.IsProduction(),
		MaxAge: cfg.Session.TTL,
	}, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	sheetcheckHandler := sheetcheck.NewHandler(sheetcheckService)
	rbacHandler := rbac.NewHandler(rbacService)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authenticate := middleware.AuthMiddleware(issuer, store, dashboardService.Close)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	{
		auth.RegisterRoutes(api, authHandler, authenticate)

		private := api.Group("")
		private.Use(authenticate, middleware.ContextLogger(logger))
		dashboard.RegisterRoutes(private, dashboardHandler, rbacService, rdb)
		sheetcheck.RegisterRoutes(private, sheetcheckHandler, rbacService)
		rbac.RegisterRoutes(private, rbacHandler)
	}

	return nil
}
