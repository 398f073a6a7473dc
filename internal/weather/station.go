package weather

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sony/gobreaker"
)

var (
	// ErrListenerSuspended is reported for a delivery that was skipped
	// because the listener's circuit breaker is open.
	ErrListenerSuspended = errors.New("listener suspended after repeated failures")
)

// registration pairs a listener with its delivery circuit breaker.
// The breaker belongs to the registration, not the listener: re-registering
// a listener starts it with a closed breaker again.
type registration struct {
	listener Listener
	breaker  *gobreaker.CircuitBreaker
}

// Station owns three measurement sources and the set of registered
// listeners. On Refresh it draws one value from each source, assembles a
// Record and delivers it synchronously to every listener.
//
// Registration, removal and notification may be called from different
// goroutines (the interval scheduler drives Refresh from its own), so all
// access to the listener map goes through the station's lock. A full
// delivery pass holds the lock exclusively: passes never overlap, and
// listeners are never added or removed mid-notification.
type Station struct {
	mu sync.RWMutex

	temperature Source
	humidity    Source
	pressure    Source

	listeners map[string]*registration
	log       *slog.Logger
}

var _ Subject = (*Station)(nil)

// NewStation creates a station reading from the given sources, in the fixed
// order temperature, humidity, pressure on every refresh.
func NewStation(temperature, humidity, pressure Source, log *slog.Logger) *Station {
	return &Station{
		temperature: temperature,
		humidity:    humidity,
		pressure:    pressure,
		listeners:   make(map[string]*registration),
		log:         log,
	}
}

// Register inserts the listener under its self-declared name and returns
// that name for later removal. Registering a second listener under a name
// already in use replaces the first one, which then receives no further
// notifications (last-registered-wins).
func (s *Station) Register(l Listener) string {
	name := l.Name()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.listeners[name]; exists {
		s.log.Warn("replacing listener registered under the same name", "listener", name)
	}

	s.listeners[name] = &registration{
		listener: l,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Interval:    1 * time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}

	s.log.Debug("listener registered", "listener", name, "total", len(s.listeners))
	return name
}

// Remove deletes the listener registered under name. Removing an unknown
// name is a no-op.
func (s *Station) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.listeners[name]; exists {
		delete(s.listeners, name)
		s.log.Debug("listener removed", "listener", name, "remaining", len(s.listeners))
	}
}

// Len returns the number of registered listeners.
func (s *Station) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.listeners)
}

// Refresh draws one value from each source, builds a Record and notifies
// all registered listeners. The draws and the delivery pass happen under the
// station's exclusive lock: the sources are not thread-safe, and two
// overlapping passes must never interleave on listener state. The returned
// error aggregates every delivery failure of the pass; a nil error means
// every listener processed the record.
func (s *Station) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		Temperature: s.temperature.Next(),
		Humidity:    s.humidity.Next(),
		Pressure:    s.pressure.Next(),
	}
	return s.notifyLocked(rec)
}

// Notify delivers the record to every registered listener, synchronously
// and in map iteration order (no relative order between listeners is
// guaranteed). The station's exclusive lock is held for the whole delivery
// pass, so listeners must not call Register, Remove or Notify from inside
// OnUpdate. A failing listener does not abort the pass: its error is
// collected and delivery continues with the next listener. A listener whose
// breaker has opened is skipped until the breaker cools down; the skip is
// reported in the aggregate as ErrListenerSuspended.
func (s *Station) Notify(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.notifyLocked(rec)
}

func (s *Station) notifyLocked(rec Record) error {
	var result *multierror.Error
	for name, reg := range s.listeners {
		_, err := reg.breaker.Execute(func() (interface{}, error) {
			return nil, reg.listener.OnUpdate(rec)
		})
		if err == nil {
			continue
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			s.log.Warn("skipping suspended listener", "listener", name)
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, ErrListenerSuspended))
			continue
		}

		s.log.Error("listener update failed", "listener", name, "error", err)
		result = multierror.Append(result, fmt.Errorf("listener %s: %w", name, err))
	}

	return result.ErrorOrNil()
}
