package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"item-gallery/config"
	_ "item-gallery/docs" // Swagger docs
	"item-gallery/internal/httpserver"
	"item-gallery/pkg/log"
	"item-gallery/pkg/transport"
)

// @title       Item Gallery
// @description Web client for the items API: item grid with create, edit, delete and image upload.
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
	logger, err := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	if err != nil {
		fmt.Println("Failed to init logger: ", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Item Gallery...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Items API: %s (images from %s)", cfg.API.URL, cfg.API.BaseURL)

	// 3. Items API transport
	tr, err := transport.New(transport.Config{
		Kind:    cfg.API.Transport,
		Timeout: cfg.API.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create transport: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		APIURL:          cfg.API.URL,
		BaseURL:         cfg.API.BaseURL,
		Transport:       tr,
		RefreshTimeout:  cfg.API.RefreshTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
