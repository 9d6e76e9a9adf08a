// Command server exposes the chart engine over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/jyotish/internal/config"
	"github.com/aristath/jyotish/internal/modules/chart"
	"github.com/aristath/jyotish/internal/scheduler"
	"github.com/aristath/jyotish/internal/server"
	"github.com/aristath/jyotish/pkg/logger"
)

// main loads configuration, starts the optional dasha watch and the HTTP
// server, then blocks until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting jyotish")

	chartService := chart.NewService(cfg.DefaultDivision, log)

	serverCfg := server.Config{
		Log:          log,
		Port:         cfg.Port,
		DevMode:      cfg.DevMode,
		ChartService: chartService,
	}

	var sched *scheduler.Scheduler
	if cfg.Natal != nil {
		watch := scheduler.NewDashaWatchJob(cfg.Natal.MoonLongitude, cfg.Natal.Birth, log)
		sched = scheduler.New(log)
		if err := sched.AddJob(cfg.DashaWatchSchedule, watch); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.DashaWatchSchedule).Msg("Failed to register dasha watch")
		}
		sched.RunNow(watch)
		sched.Start()
		serverCfg.DashaWatch = watch
	} else {
		log.Info().Msg("No natal profile configured, dasha watch disabled")
	}

	srv := server.New(serverCfg)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	// In-flight requests get 10 seconds to finish
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
