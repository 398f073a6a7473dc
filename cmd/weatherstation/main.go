package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"weathermon/internal/config"
	"weathermon/internal/generator"
	"weathermon/internal/logging"
	"weathermon/internal/scheduler"
	"weathermon/internal/views"
	"weathermon/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(0, "dev").Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.AppEnv)

	temp, err := generator.New(cfg.Temperature.Base, cfg.Temperature.Delta)
	if err != nil {
		log.Error("invalid temperature range", "error", err)
		os.Exit(1)
	}
	humid, err := generator.New(cfg.Humidity.Base, cfg.Humidity.Delta)
	if err != nil {
		log.Error("invalid humidity range", "error", err)
		os.Exit(1)
	}
	press, err := generator.New(cfg.Pressure.Base, cfg.Pressure.Delta)
	if err != nil {
		log.Error("invalid pressure range", "error", err)
		os.Exit(1)
	}

	station := weather.NewStation(temp, humid, press, log)

	current := views.NewCurrentView("current reading", os.Stdout)
	stats, err := views.NewStatisticsView("rolling statistics", cfg.HistoryLength, os.Stdout)
	if err != nil {
		log.Error("failed to build statistics view", "error", err)
		os.Exit(1)
	}

	station.Register(current)
	station.Register(stats)
	log.Info("station ready", "listeners", station.Len())

	if cfg.RefreshInterval > 0 {
		runInterval(station, cfg, log)
		return
	}

	for i := 0; i < cfg.RefreshCount; i++ {
		if err := station.Refresh(); err != nil {
			log.Warn("refresh completed with delivery errors", "cycle", i+1, "error", err)
		}
	}
	log.Info("done", "cycles", cfg.RefreshCount)
}

func runInterval(station *weather.Station, cfg *config.Config, log *slog.Logger) {
	sched := scheduler.New(station, cfg.RefreshInterval, log)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info("shutting down")
}
