package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/bizmaster/backend/internal/application/identity"
	ledgerapp "github.com/bizmaster/backend/internal/application/ledger"
	"github.com/bizmaster/backend/internal/domain/ledger"
	"github.com/bizmaster/backend/internal/infrastructure/auth"
	"github.com/bizmaster/backend/internal/infrastructure/config"
	"github.com/bizmaster/backend/internal/infrastructure/logger"
	"github.com/bizmaster/backend/internal/infrastructure/persistence"
	"github.com/bizmaster/backend/internal/interfaces/http/handler"
	"github.com/bizmaster/backend/internal/interfaces/http/middleware"
	"github.com/bizmaster/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting BizMaster backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// User accounts live in SQLite; the ledger itself is in-memory
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	userRepo := persistence.NewGormUserRepository(db.DB)
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo, log)

	if err := userService.EnsureAdmin(context.Background(), cfg.Admin); err != nil {
		log.Fatal("Failed to ensure admin account", zap.Error(err))
	}

	seed := ledger.DefaultSeed()
	if cfg.Seed.StartingCash > 0 {
		seed.StartingCash = decimal.NewFromFloat(cfg.Seed.StartingCash)
	}
	if cfg.Seed.StartingPrice > 0 {
		seed.StartingPrice = decimal.NewFromFloat(cfg.Seed.StartingPrice)
	}
	store, err := ledger.NewStore(seed)
	if err != nil {
		log.Fatal("Failed to seed ledger", zap.Error(err))
	}

	ops := ledger.NewService(store)
	valuation := ledger.NewValuationService(store)
	equity := ledger.NewEquityService(store)
	summaries := ledger.NewSummaryService(store)

	inventoryService := ledgerapp.NewInventoryService(store, ops, valuation)
	financeService := ledgerapp.NewFinanceService(store, ops, valuation)
	partnerService := ledgerapp.NewPartnerService(store, ops, equity)
	marketService := ledgerapp.NewMarketService(store, ops)
	reportService := ledgerapp.NewReportService(store, summaries)
	systemService := ledgerapp.NewSystemService(store)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(cfg.HTTP)))

	engine.GET("/health", healthHandler(db))

	authHandler := handler.NewAuthHandler(authService, userService)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuth(jwtService))
	r.RegisterPublic(router.RegistrarFunc(authHandler.RegisterPublicRoutes))
	r.Register(authHandler).
		Register(handler.NewUserHandler(userService)).
		Register(handler.NewInventoryHandler(inventoryService)).
		Register(handler.NewFinanceHandler(financeService)).
		Register(handler.NewPartnerHandler(partnerService)).
		Register(handler.NewMarketHandler(marketService)).
		Register(handler.NewReportHandler(reportService)).
		Register(handler.NewSystemHandler(systemService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
