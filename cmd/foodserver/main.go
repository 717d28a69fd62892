package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodadmin/internal/config"
	"foodadmin/internal/food"
	"foodadmin/internal/foodserver"
	"foodadmin/internal/logging"
	"foodadmin/internal/telemetry"

	log "github.com/sirupsen/logrus"
)

func parseFlags(cfg *config.ServerConfig) {
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, `seed file: a JSON array of foods or {"foods":[...]}`)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: foodserver [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Development REST server for the /foods resource, kept in memory.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
}

func run() error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.StandardLogger()
	if _, err := logging.Setup(logger, cfg.LogLevel, ""); err != nil {
		return err
	}

	tp, err := telemetry.Setup(context.Background(), "foodserver")
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("telemetry shutdown failed")
		}
	}()

	seed := foodserver.DefaultMenu()
	if cfg.SeedFile != "" {
		var err error
		if seed, err = foodserver.LoadSeed(cfg.SeedFile); err != nil {
			return err
		}
	}
	store, err := foodserver.NewStore(seed)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	srv := foodserver.NewServer(cfg.Addr, store, logger)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	logger.WithFields(log.Fields{
		"addr":  srv.Addr(),
		"foods": store.Len(),
		"seed":  seedName(cfg.SeedFile, seed),
	}).Info("food server listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down food server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("food server stopped")
	return nil
}

func seedName(path string, seed []food.Food) string {
	if path == "" {
		return fmt.Sprintf("built-in menu (%d)", len(seed))
	}
	return path
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
