package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"loadtracker/internal/core/cache"
	"loadtracker/internal/core/config"
	"loadtracker/internal/core/logger"
	"loadtracker/internal/core/server"
	loadadapter "loadtracker/internal/features/loads/adapters"
	loadhandler "loadtracker/internal/features/loads/handler"
	loadservice "loadtracker/internal/features/loads/service"
	usageadapter "loadtracker/internal/features/usage/adapters"
	usagedomain "loadtracker/internal/features/usage/domain"
	usagehandler "loadtracker/internal/features/usage/handler"
	usageservice "loadtracker/internal/features/usage/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// @title Load Tracker API
// @version 1.0
// @description Load status lifecycle rules and usage overage billing.
// @contact.name API Support
// @contact.email support@loadtracker.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	policy, err := billingPolicy(cfg.Billing)
	if err != nil {
		l.Fatal("Invalid billing configuration", zap.Error(err))
	}

	// Redis backs usage counters and tier assignments
	redisAdapter, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisAdapter.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = redisAdapter.Ping(pingCtx)
	cancel()
	if err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Load Adapter and run Health Check
	loadAPI := loadadapter.NewLoadAPIAdapter(cfg.LoadAPI)
	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = loadAPI.HealthCheck(checkCtx)
	cancel()
	if err != nil {
		l.Fatal("Load API Health Check Failed", zap.Error(err))
	}
	l.Info("Load API connection verified")

	loadSvc := loadservice.NewLoadService(loadAPI)
	loadHdl := loadhandler.NewLoadHandler(loadSvc)

	catalog := usageadapter.NewStaticTierCatalog(usagedomain.DefaultTiers())
	if _, ok := catalog.Tier(policy.DefaultTier); !ok {
		l.Fatal("Default tier is not in the catalog", zap.String("tier", policy.DefaultTier))
	}

	usageSvc := usageservice.NewUsageService(
		usageadapter.NewRedisUsageRepository(redisAdapter),
		usageadapter.NewRedisSubscriptionRepository(redisAdapter),
		catalog,
		policy,
	)
	usageHdl := usagehandler.NewUsageHandler(usageSvc)

	srv := server.New(cfg)
	srv.AddHealthCheck("redis", redisAdapter.Ping)
	srv.AddHealthCheck("load_api", loadAPI.HealthCheck)

	// Register Routes
	srv.App.Get("/statuses", loadHdl.ListStatuses)
	srv.App.Get("/statuses/describe", loadHdl.DescribeStatus)
	srv.App.Get("/statuses/next", loadHdl.NextAction)
	srv.App.Get("/statuses/progress", loadHdl.Progress)
	srv.App.Get("/loads/:id/status", loadHdl.GetLoadStatus)
	srv.App.Post("/loads/:id/advance", loadHdl.AdvanceLoad)
	srv.App.Post("/loads/:id/force-advance", loadHdl.ForceAdvanceLoad)

	srv.App.Get("/tiers", usageHdl.ListTiers)
	srv.App.Post("/usage/:account/events", usageHdl.RecordEvent)
	srv.App.Get("/usage/:account/bill", usageHdl.GetBill)
	srv.App.Put("/usage/:account/tier", usageHdl.AssignTier)
	srv.App.Delete("/usage/:account", usageHdl.ResetUsage)

	go func() {
		<-ctx.Done()
		l.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error("Graceful shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

func billingPolicy(cfg config.BillingConfig) (usageservice.BillingPolicy, error) {
	fee, err := decimal.NewFromString(cfg.AdminFee)
	if err != nil {
		return usageservice.BillingPolicy{}, fmt.Errorf("BILLING_ADMIN_FEE: %w", err)
	}
	if fee.IsNegative() {
		return usageservice.BillingPolicy{}, errors.New("BILLING_ADMIN_FEE must not be negative")
	}

	mode, err := usagedomain.ParseAdminFeeMode(cfg.AdminFeeMode)
	if err != nil {
		return usageservice.BillingPolicy{}, fmt.Errorf("BILLING_ADMIN_FEE_MODE: %w", err)
	}

	return usageservice.BillingPolicy{
		DefaultTier: cfg.DefaultTier,
		Rates:       usagedomain.DefaultRates(),
		AdminFee:    usagedomain.AdminFee{Amount: fee, Mode: mode},
	}, nil
}
