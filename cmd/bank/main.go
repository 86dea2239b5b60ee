package main

import (
	"log/slog"
	"os"

	"mybank/internal/config"
	"mybank/internal/menu"
	"mybank/internal/services"
)

func main() {
	cfg := config.Load()
	logger := setupLogger(cfg)

	metrics := services.NewPrometheusMetrics()
	bank := services.NewBankService(logger, metrics)

	if cfg.DemoCustomers > 0 {
		seeder := services.NewDemoSeeder(bank, logger)
		if err := seeder.Seed(cfg.DemoCustomers); err != nil {
			logger.Error("demo seeding failed", "error", err.Error())
		}
	}

	if cfg.MetricsAddr != "" {
		metrics.StartMetricsServer(cfg.MetricsAddr)
		logger.Info("metrics server started", "addr", cfg.MetricsAddr)
	}

	menu.New(bank, os.Stdin, os.Stdout, logger).Run()
}

// setupLogger writes structured logs to stderr so the menu on stdout stays
// clean.
func setupLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
