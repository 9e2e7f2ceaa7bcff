package app

import (
	"errors"
	"net/http"

	"go-yourtask/internal/account"
	"go-yourtask/internal/attendance"
	"go-yourtask/internal/bootstrap"
	"go-yourtask/internal/shared/config"
	"go-yourtask/internal/shared/connection"
	"go-yourtask/internal/sheet"
	"go-yourtask/internal/task"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const devSecret = "yourtask-dev-secret"

// SheetStack adalah semua yang dibutuhkan untuk membaca spreadsheet.
// Dipakai bersama oleh server API dan CLI.
type SheetStack struct {
	Layout     sheet.Layout
	Fetcher    sheet.Fetcher
	Accounts   account.Repository
	Tasks      task.Repository
	Attendance attendance.Repository
}

func NewSheetStack(cfg config.SheetConfig, logger *zap.Logger) (SheetStack, error) {
	layout, err := sheet.LoadLayout(cfg.LayoutFile)
	if err != nil {
		return SheetStack{}, err
	}
	if cfg.SheetID != "" {
		layout.SheetID = cfg.SheetID
	}

	client := &http.Client{Timeout: cfg.ClientTimeout}
	fetcher := sheet.NewHTTPFetcher(client, cfg.BaseURL, layout.SheetID, logger)

	accounts, err := account.NewRepository(fetcher, layout)
	if err != nil {
		return SheetStack{}, err
	}
	tasks, err := task.NewRepository(fetcher, layout, logger)
	if err != nil {
		return SheetStack{}, err
	}
	att, err := attendance.NewRepository(fetcher, layout)
	if err != nil {
		return SheetStack{}, err
	}

	return SheetStack{
		Layout:     layout,
		Fetcher:    fetcher,
		Accounts:   accounts,
		Tasks:      tasks,
		Attendance: att,
	}, nil
}

func BuildApp(router *gin.Engine, cfg config.Config, audit bootstrap.AuditLogger) error {
	logger := zap.L()

	if cfg.Session.Secret == "" {
		if cfg.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		logger.Warn("JWT_SECRET not set, using development secret")
		cfg.Session.Secret = devSecret
	}

	// 1. Setup Infrastructure
	stack, err := NewSheetStack(cfg.Sheet, logger)
	if err != nil {
		return err
	}
	logger.Info("sheet layout loaded", zap.String("sheet_id", stack.Layout.SheetID))

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}

	// 2. Register Modules & Routes
	return registerModules(router, cfg, stack, redisClient, audit, logger)
}
