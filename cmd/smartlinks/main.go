// Package main provides the entry point for the SmartLinks go-link service.
//
//	@title			SmartLinks API
//	@version		1.0.0
//	@description	Team-internal go-link redirector with click analytics and AI-assisted link creation.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
package main

import (
	"context"
	lg "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "smartlinks/docs" // Import swagger docs
	"smartlinks/internal/analytics"
	"smartlinks/internal/config"
	"smartlinks/internal/database"
	httpHandler "smartlinks/internal/handler/http"
	"smartlinks/internal/repository/postgres"
	"smartlinks/internal/service"
	"smartlinks/internal/suggest"
	"smartlinks/pkg/logger"
	"smartlinks/pkg/useragent"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	defer func() {
		if err := log.Sync(); err != nil {
			lg.Printf("ERROR: failed to sync zap logger: %v\n", err)
		}
	}()

	log.Info("starting smartlinks service",
		zap.String("env", cfg.Env),
		zap.String("suggest_mode", cfg.Suggest.Mode))

	db, err := database.NewConnection(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, log); err != nil {
			log.Error("failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		log.Info("running database migrations")
		if err := database.AutoMigrate(db, log); err != nil {
			log.Fatal("failed to run database migrations", zap.Error(err))
		}
	}

	if cfg.Database.SeedData {
		log.Info("seeding database with sample links")
		if err := database.SeedData(db, log); err != nil {
			log.Fatal("failed to seed database", zap.Error(err))
		}
	}

	uaParser, err := useragent.New("", log)
	if err != nil {
		log.Fatal("failed to initialize User-Agent parser", zap.Error(err))
	}

	storage := postgres.New(db, log)
	analyzer := suggest.New(&cfg.Suggest, log)
	linkService := service.NewLink(storage, analyzer, log)
	smartCreate := service.NewSmartCreate(storage, analyzer, log)
	aggregator := analytics.NewAggregator(storage, uaParser, log)

	server := httpHandler.NewServer(storage, linkService, smartCreate, aggregator, analyzer, cfg, log)

	httpServer := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      server.SetupRoutes(),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting HTTP server", zap.String("address", cfg.HTTPServer.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down smartlinks service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown HTTP server", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}
}
