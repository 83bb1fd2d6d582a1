package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agency-content-ops/config"
	_ "agency-content-ops/docs" // Swagger docs
	biPlatform "agency-content-ops/internal/bulkimport/repository/platform"
	biUsecase "agency-content-ops/internal/bulkimport/usecase"
	"agency-content-ops/internal/httpserver"
	"agency-content-ops/internal/middleware"
	recPlatform "agency-content-ops/internal/recurring/repository/platform"
	recUsecase "agency-content-ops/internal/recurring/usecase"
	"agency-content-ops/pkg/log"
)

// @title       Agency Content Ops API
// @description Recurring content scheduling and bulk task imports for agency workspaces.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agency Content Ops API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Platform URL: %s", cfg.Platform.URL)

	// 3. Recurring domain
	recClient := recPlatform.NewClient(cfg.Platform.URL, cfg.Platform.AccessToken)
	recRepo, err := recPlatform.New(recClient, cfg.Platform.CacheSize, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize recurring repository: ", err)
		return
	}
	recUC := recUsecase.New(logger, recRepo)

	// 4. Bulk import domain
	biClient := biPlatform.NewClient(cfg.Platform.URL, cfg.Platform.AccessToken)
	biRepo := biPlatform.New(biClient, logger)
	biUC := biUsecase.New(logger, biRepo, cfg.Scheduler.Timezone)

	// 5. HTTP Server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		RecurringUC:  recUC,
		BulkImportUC: biUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
