package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arifrizal16/sahasrara/internal/config"
	httpx "github.com/arifrizal16/sahasrara/internal/http"
	"github.com/arifrizal16/sahasrara/internal/http/handlers"
	"github.com/arifrizal16/sahasrara/internal/http/middleware"
	"github.com/arifrizal16/sahasrara/internal/infrastructure/auth"
	"github.com/arifrizal16/sahasrara/internal/infrastructure/database"
	"github.com/arifrizal16/sahasrara/internal/infrastructure/repositories"
	"github.com/arifrizal16/sahasrara/internal/services"
)

func Run(cfg *config.Config) error {
	logger, err := newLogger(cfg.GinMode)
	if err != nil {
		return err
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	gin.SetMode(cfg.GinMode)

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rc := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rc.Ping(context.Background()); err != nil {
		return err
	}
	rdb := rc.Client

	// Initialize infrastructure services
	pinSvc := auth.NewPinService()
	codec := auth.NewSessionCodec(cfg.SessionSecret, cfg.SessionIssuer)

	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(gdb)
	txRepo := repositories.NewTransactionRepository(gdb)

	if err := database.SeedAccounts(context.Background(), accountRepo, pinSvc, cfg.DefaultPIN); err != nil {
		return err
	}

	// Initialize services
	lockoutSvc := services.NewLockoutService(rdb, services.LockoutConfig{
		MaxAttempts: cfg.LockoutMaxAttempts,
		Window:      cfg.LockoutWindow,
	})
	authSvc := services.NewAuthService(accountRepo, pinSvc, codec, lockoutSvc, services.SessionTTLConfig{
		TTL:         cfg.SessionTTL,
		RememberTTL: cfg.RememberTTL,
	})
	txSvc := services.NewTransactionService(txRepo)
	reportSvc := services.NewReportService(txRepo)

	// Initialize handlers
	authH := handlers.NewAuthHandlers(authSvc, accountRepo, cfg.CookieSecure)
	txH := handlers.NewTransactionHandlers(txSvc)
	reportH := handlers.NewReportHandlers(reportSvc)

	// Build router
	gate := middleware.NewSessionGate(codec)
	r := httpx.BuildRouter(authH, txH, reportH, gate, middleware.RequestLogger(sugar))

	addr := ":" + cfg.Port
	sugar.Infow("listening", "addr", addr)
	return http.ListenAndServe(addr, r)
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
