package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/tubesense/config"
	"github.com/spacesedan/tubesense/internal/api"
	"github.com/spacesedan/tubesense/internal/clients"
	"github.com/spacesedan/tubesense/internal/db"
	"github.com/spacesedan/tubesense/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if os.Getenv("DB_HOST") != "" {
		if err := db.InitDB(); err != nil {
			slog.Error("Failed to initialize PostgreSQL", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.CloseDB()
	} else {
		slog.Warn("DB_HOST not set, persistence disabled")
	}

	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		if err := clients.InitValkey(); err != nil {
			slog.Warn("Valkey unavailable, summary caching disabled", slog.String("error", err.Error()))
		} else {
			defer clients.CloseValkey()
		}
	} else {
		slog.Warn("VALKEY_INIT_ADDRESS not set, summary caching disabled")
	}

	engine := api.NewServer(api.NewHandler())

	port := config.GetEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	go func() {
		slog.Info("Starting HTTP server", slog.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	<-stopChan

	slog.Info("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}
