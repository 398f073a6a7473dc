package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"weathermon/internal/weather"
)

// Scheduler refreshes the station on a fixed interval. Listener failures
// are logged and never stop the schedule; the station's own breakers keep a
// persistently failing listener from being retried on every tick.
type Scheduler struct {
	scheduler *gocron.Scheduler
	station   *weather.Station
	interval  time.Duration
	log       *slog.Logger
}

// New creates a Scheduler driving the given station.
func New(station *weather.Station, interval time.Duration, log *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		station:   station,
		interval:  interval,
		log:       log,
	}
}

// Start schedules the periodic refresh and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", s.interval)
	}

	// Singleton mode keeps a slow delivery pass from stacking further
	// ticks behind the station lock.
	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(func() {
		if err := s.station.Refresh(); err != nil {
			s.log.Warn("refresh completed with delivery errors", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.log.Info("scheduler started", "interval", s.interval)
	return nil
}

// Stop stops the scheduler and cancels any future refreshes.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
