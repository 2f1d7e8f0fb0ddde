package main

import (
	"Corexus/internal/config"
	"Corexus/internal/handlers"
	"Corexus/internal/logger"
	"Corexus/internal/middleware"
	"Corexus/internal/repo"
	"Corexus/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("Corexus server\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	sugar, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		panic(err)
	}
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(sugar); err != nil {
			fmt.Fprintln(os.Stderr, "failed to sync logger:", err)
		}
	}()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	userRepo := repo.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)

	h := handlers.NewHandler(userService, sugar, cfg)

	if cfg.AuthSecret == config.DefaultAuthSecret {
		sugar.Warnw("AUTH_SECRET is not set, using development secret")
	}
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"TokenTTL", cfg.TokenTTL,
		"CORSOrigins", cfg.CORSOrigins,
	)
	sugar.Infow("Starting server", "addr", cfg.BaseURL)

	server := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		sugar.Infow("Received shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		sugar.Infow("Server stopped")
		return nil
	case err := <-serverErrCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
