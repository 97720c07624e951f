// Command fireviz opens an interactive view of California wildfire-season
// statistics for 2008-2020, plus linearly extrapolated seasons beyond.
//
// Configuration comes from FIREVIZ_* environment variables; see
// internal/config. Left/right arrows change seasons, the wheel or up/down
// scrolls, hovering a county marker shows its fires, and escape or q quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/firesight/fireviz/internal/app"
	"github.com/firesight/fireviz/internal/config"
	"github.com/firesight/fireviz/internal/countymap"
	"github.com/firesight/fireviz/internal/forecast"
	"github.com/firesight/fireviz/internal/loader"
	"github.com/firesight/fireviz/internal/observability"
	"github.com/firesight/fireviz/internal/render"
	"github.com/firesight/fireviz/internal/termui"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fireviz",
		Short: "Interactive California wildfire season viewer",
		Long: `fireviz displays California wildfire-season severity from 2008 onward,
with future seasons extrapolated by linear regression. All settings come
from FIREVIZ_* environment variables.`,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return run()
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	seasons, err := loader.Load(cfg.DataPath)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", "path", cfg.DataPath, "seasons", len(seasons))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	forecaster := forecast.New(rand.New(rand.NewSource(seed)), logger, metrics)
	if err := forecaster.Extend(seasons, cfg.ForecastYears); err != nil {
		return fmt.Errorf("forecast: %w", err)
	}

	driver, err := termui.New()
	if err != nil {
		return err
	}
	defer driver.Close()

	theme := render.DefaultPalette()
	theme.Small, theme.Label = driver.Fonts()

	viewer, err := app.New(app.Options{
		Seasons:      seasons,
		Surface:      driver,
		Input:        driver,
		Theme:        theme,
		Table:        countymap.Default(),
		MapImagePath: cfg.MapImage,
		ScrollStep:   cfg.ScrollStep,
		ScrollMax:    cfg.ScrollMax,
		FPS:          cfg.FPS,
		Logger:       logger,
		Metrics:      metrics,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		srv := observability.NewDebugServer(cfg.MetricsAddr, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("debug metrics server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("debug metrics server shutdown error", "error", err)
			}
		}()
	}

	return viewer.Run(ctx)
}
