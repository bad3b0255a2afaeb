// Package main provides the entry point for the ShortURL backend service.
//
//	@title			ShortURL API
//	@version		1.0.0
//	@description	A minimalistic URL shortener service with click analytics.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
package main

import (
	"ShortURL-Backend/internal/config"
	"ShortURL-Backend/internal/database"
	httpHandler "ShortURL-Backend/internal/handler/http"
	"ShortURL-Backend/internal/repository"
	"ShortURL-Backend/internal/repository/memory"
	"ShortURL-Backend/internal/repository/postgres"
	"ShortURL-Backend/internal/service"
	"ShortURL-Backend/pkg/logger"
	"context"
	"fmt"
	lg "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "ShortURL-Backend/docs" // Import swagger docs
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	defer func() {
		if err := log.Sync(); err != nil {
			lg.Printf("ERROR: failed to sync zap logger: %v\n", err)
		}
	}()

	log.Info("starting ShortURL backend", zap.String("env", cfg.Env), zap.String("storage", cfg.Storage))

	var storage repository.Storage

	switch cfg.Storage {
	case "memory":
		// Хранилище в памяти для локального запуска без PostgreSQL
		storage = memory.New()
		log.Warn("using in-memory storage, data will not survive restarts")
	default:
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
			log.Info("running database migrations (auto_migrate: true)")
			if err := database.AutoMigrate(db, log); err != nil {
				log.Fatal("failed to run database migrations", zap.Error(err))
			}
		} else {
			log.Info("skipping database migrations (auto_migrate: false)")
		}

		storage = postgres.New(db, log)
	}

	urlShortenerService := service.NewURLShortener(storage, &cfg.URLShortener)

	httpAPIServer := httpHandler.NewServer(
		storage,
		urlShortenerService,
		log,
		cfg.URLShortener.BaseURL,
	)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPServer.Port),
		Handler:      httpAPIServer.SetupRoutes(),
		ReadTimeout:  time.Duration(cfg.HTTPServer.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPServer.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPServer.IdleTimeout) * time.Second,
	}

	log.Info("starting HTTP server", zap.String("address", httpServer.Addr))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down ShortURL backend...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown HTTP server", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}
}
