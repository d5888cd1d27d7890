package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/garnizeh/jobfinder/api"
	"github.com/garnizeh/jobfinder/internal/config"
	"github.com/garnizeh/jobfinder/internal/repository/kv"
	"github.com/garnizeh/jobfinder/internal/store"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	logger.Info("starting jobfinder server",
		slog.String("version", version),
		slog.String("buildTime", buildTime),
	)

	ctx := context.Background()

	s, err := store.Open(ctx, cfg.DatabasePath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	repo := kv.New(s, logger)
	if err := repo.EnsureUsersAndResumes(ctx); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	reseeded, err := repo.EnsureJobs(ctx)
	if err != nil {
		log.Fatalf("Failed to seed jobs: %v", err)
	}
	if reseeded {
		// A fresh catalog makes old applications point at dead job ids.
		if err := repo.ClearApplications(ctx); err != nil {
			log.Fatalf("Failed to clear applications: %v", err)
		}
		logger.Info("job catalog reseeded, applications cleared")
	}

	handler, err := api.SetupRoutes(cfg, version, buildTime, s)
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := s.Close(); err != nil {
		logger.Error("error closing store", slog.Any("err", err))
	}

	logger.Info("server exited")
}
