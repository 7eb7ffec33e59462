// Package main is the entry point for the timezone map API server.
// Its sole responsibility is wiring dependencies together and starting the server.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/JamesDimonaco/timezone-map/internal/config"
	"github.com/JamesDimonaco/timezone-map/internal/handler"
	"github.com/JamesDimonaco/timezone-map/internal/middleware"
	"github.com/JamesDimonaco/timezone-map/internal/registry"
	"github.com/JamesDimonaco/timezone-map/internal/repo"
	"github.com/JamesDimonaco/timezone-map/internal/service"
	"github.com/JamesDimonaco/timezone-map/internal/slug"
	"github.com/JamesDimonaco/timezone-map/internal/sweeper"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Registry ---------------------------------------------------------
	// A slug collision makes a city unreachable, so refuse to start.
	reg, err := registry.Default()
	if err != nil {
		slog.Error("failed to load city registry", "error", err)
		os.Exit(1)
	}
	codec, err := slug.NewCodec(reg.Cities())
	if err != nil {
		slog.Error("failed to index city slugs", "error", err)
		os.Exit(1)
	}
	slog.Info("registry loaded", "cities", reg.Len())

	// --- Presence store ---------------------------------------------------
	ctx := context.Background()
	var presenceRepo repo.PresenceRepo
	if cfg.DatabaseURL != "" {
		pool, err := openDatabase(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		presenceRepo = repo.NewPresenceRepo(pool)
	} else {
		// Entries outlive the ttl so the sweeper, not otter, decides when
		// a session is gone.
		presenceRepo = repo.NewMemoryPresenceRepo(2 * cfg.PresenceTTL)
		slog.Warn("DATABASE_URL not set; presence kept in memory")
	}

	times := service.NewTimeService(reg, codec)
	presence := service.NewPresenceService(presenceRepo, cfg.PresenceTTL, time.Now)

	sweep, err := sweeper.New(presence, cfg.SweepSchedule, logger)
	if err != nil {
		slog.Error("invalid sweep schedule", "error", err)
		os.Exit(1)
	}
	sweep.Start()

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → SlogLogger → Recoverer → CORS, then the API routes.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))

	api := handler.NewServer(times, presence, handler.Options{
		BaseURL: cfg.BaseURL,
		Logger:  logger,
	})
	r.Mount("/", api.Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	sweep.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
