package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"foodadmin/internal/api"
	"foodadmin/internal/config"
	"foodadmin/internal/dashboard"
	"foodadmin/internal/logging"
	"foodadmin/internal/telemetry"
	"foodadmin/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

func parseFlags(cfg *config.Config) {
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "base URL of the foods API")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path (the terminal belongs to the UI)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: foodadmin [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Terminal dashboard for listing, adding, editing and deleting foods.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.StandardLogger()
	closer, err := logging.Setup(logger, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := telemetry.Setup(ctx, "foodadmin")
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

	client := api.New(cfg.APIURL,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithTracer(tp.Tracer("foodadmin/api")),
		api.WithLogger(logger),
	)
	state := dashboard.New(client, dashboard.Options{
		DeletePolicy: cfg.DeletePolicy,
		Logger:       logger,
	})
	logger.WithFields(log.Fields{
		"api_url":       client.BaseURL(),
		"delete_policy": cfg.DeletePolicy,
		"tracing":       tp.Enabled(),
	}).Info("foodadmin starting")

	app := ui.NewAppModel(state, ui.Options{
		Context:       ctx,
		CloseOnSubmit: cfg.CloseOnSubmit,
		Logger:        logger,
	})
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
