package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"chapel/internal/platform/config"
	"chapel/internal/platform/httpserver"
	"chapel/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, serves the router and keeps the server
// lifecycle small. Feature logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg, log, time.Now())
	if err != nil {
		log.Error("failed to initialise", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := a.close(); err != nil {
			log.Warn("closing redis", "error", err)
		}
	}()

	if cfg.Environment == config.EnvProduction && cfg.AdminToken == "" {
		log.Warn("ADMIN_TOKEN is not set; FAQ writes are disabled")
	}

	srv := httpserver.New(cfg.Addr, a.handler)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting chapel", "addr", cfg.Addr, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return a.sweepLimits(gctx, log)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
