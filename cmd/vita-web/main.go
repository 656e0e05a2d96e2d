package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/me/vita/internal/api"
	"github.com/me/vita/internal/config"
	"github.com/me/vita/internal/credstore"
	"github.com/me/vita/internal/logging"
	"github.com/me/vita/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	flag.StringVar(&cfg.APIBaseURL, "server", cfg.APIBaseURL, "Vita API base URL")
	flag.StringVar(&cfg.CredentialsPath, "credentials", cfg.CredentialsPath, "Credentials database path (default ~/.vita/credentials.db)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	flag.Parse()

	if *debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	credPath, err := cfg.ResolveCredentialsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve credentials path: %v\n", err)
		os.Exit(1)
	}
	store, err := credstore.NewSQLiteStore(credPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open credential store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("credential store ready", "path", credPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := api.New(cfg.APIBaseURL, store, logger)
	client.Initialize(ctx)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	ui.New(client, logger).RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		logger.Info("web ui starting", "addr", cfg.Addr, "api", cfg.APIBaseURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
