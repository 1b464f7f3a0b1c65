// Package main is the entry point for the Wander API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderhq/wander/backend/internal/config"
	"github.com/wanderhq/wander/backend/internal/handler"
	"github.com/wanderhq/wander/backend/internal/middleware"
	"github.com/wanderhq/wander/backend/internal/repo"
	"github.com/wanderhq/wander/backend/internal/seed"
	"github.com/wanderhq/wander/backend/internal/service"
)

// maxRequestBody caps incoming request bodies. Trip payloads are small; 1 MiB
// is generous headroom while still bounding memory per request.
const maxRequestBody = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// Every setting has a default, so Load cannot fail.
	cfg := config.Load()

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// Connect does not dial eagerly, so ping to verify the deployment is
	// reachable before accepting traffic. An unreachable store at startup is
	// fatal; failures after startup surface as 500s per request instead.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		cancel()
		slog.Error("failed to create mongo client", "error", err)
		os.Exit(1)
	}
	if err := client.Ping(ctx, nil); err != nil {
		cancel()
		slog.Error("failed to connect to mongo", "error", err, "uri", cfg.MongoURI)
		os.Exit(1)
	}
	cancel()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()
	slog.Info("database connection established", "database", cfg.Database)

	db := client.Database(cfg.Database)
	if err := repo.EnsureIndexes(context.Background(), db); err != nil {
		slog.Error("failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	// --- Repositories & services -----------------------------------------
	destinationRepo := repo.NewDestinationRepo(db)
	tripRepo := repo.NewTripRepo(db)

	// Seed the catalog before serving so the first request never sees an
	// empty store. Run is a no-op when destinations already exist.
	if err := seed.Run(context.Background(), destinationRepo); err != nil {
		slog.Error("failed to seed destinations", "error", err)
		os.Exit(1)
	}

	destinationService := service.NewDestinationService(destinationRepo)
	tripService := service.NewTripService(tripRepo)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBody))

	r.Mount("/", handler.NewServer(destinationService, tripService).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
