package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/config"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/dashboard"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/logging"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"data_path", cfg.Data.Path,
		"histogram_bins", cfg.Data.HistogramBins,
		"fill_year_gaps", cfg.Data.FillYearGaps,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)
	slog.Debug("configuration", "config", cfg.String())

	opts, err := dashboard.OptionsFromConfig(cfg)
	if err != nil {
		slog.Error("failed to load line colours", "error", err)
		os.Exit(1)
	}

	// The file is read on every page load; a missing file is reported per
	// request, not here.
	if _, err := os.Stat(cfg.Data.Path); err != nil {
		slog.Warn("data file not readable yet", "path", cfg.Data.Path, "error", err)
	}

	server := web.NewServer(dashboard.NewBuilder(opts), cfg)

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		slog.Error("failed to listen", "addr", cfg.Server.Addr(), "error", err)
		os.Exit(1)
	}

	// Run returns after shutdown has drained in-flight requests and builds.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("server starting", "addr", ln.Addr().String())
	if err := server.Run(ctx, ln); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
