package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agency-content-ops/config"
	"agency-content-ops/internal/generator"
	recPlatform "agency-content-ops/internal/recurring/repository/platform"
	"agency-content-ops/pkg/gcalendar"
	"agency-content-ops/pkg/log"
)

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

	logger.Info(ctx, "Starting generation worker...")
	logger.Infof(ctx, "Platform URL: %s", cfg.Platform.URL)

	if !cfg.Scheduler.Enabled {
		logger.Warn(ctx, "Scheduler is disabled, exiting")
		return
	}

	// 3. Recurring repository
	client := recPlatform.NewClient(cfg.Platform.URL, cfg.Platform.AccessToken)
	repo, err := recPlatform.New(client, cfg.Platform.CacheSize, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize recurring repository: ", err)
		return
	}

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Generator
	gen, err := generator.New(logger, repo, calendarClient, generator.Config{
		Interval:   cfg.Scheduler.Interval,
		Timezone:   cfg.Scheduler.Timezone,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize generator: ", err)
		return
	}

	if err := gen.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start generator: ", err)
		return
	}

	<-ctx.Done()
	gen.Stop()
	logger.Info(ctx, "Generation worker stopped gracefully")
}
