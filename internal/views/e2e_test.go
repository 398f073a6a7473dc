package views_test

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weathermon/internal/views"
	"weathermon/internal/weather"
)

type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Next() int {
	if s.next >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.next]
	s.next++
	return v
}

type fixedSource int

func (f fixedSource) Next() int { return int(f) }

// TestStationDeliversToBothViews walks the full pipeline: scripted
// temperature source, four refresh cycles, a current view and a capacity-3
// statistics view registered on the same station.
func TestStationDeliversToBothViews(t *testing.T) {
	temp := &scriptedSource{values: []int{10, 20, 30, 40}}
	station := weather.NewStation(temp, fixedSource(50), fixedSource(700), slog.New(slog.NewTextHandler(io.Discard, nil)))

	var statsOut bytes.Buffer
	current := views.NewCurrentView("C", io.Discard)
	stats, err := views.NewStatisticsView("S", 3, &statsOut)
	require.NoError(t, err)

	station.Register(current)
	station.Register(stats)

	for i := 0; i < 4; i++ {
		require.NoError(t, station.Refresh())
	}

	assert.Equal(t, 40, current.Current().Temperature)

	assert.Equal(t, []int{20, 30, 40}, stats.TemperatureHistory())
	assert.Equal(t, []int{50, 50, 50}, stats.HumidityHistory())
	assert.Equal(t, []int{700, 700, 700}, stats.PressureHistory())

	statsOut.Reset()
	require.NoError(t, stats.Display())
	assert.Contains(t, statsOut.String(), "Temperature (min/max/avg)\t: 20 / 40 / 30")
}

// slowWriter stretches every render so overlapping delivery passes would
// be caught interleaving on the view's histories.
type slowWriter struct{}

func (slowWriter) Write(p []byte) (int, error) {
	time.Sleep(50 * time.Microsecond)
	return len(p), nil
}

func TestConcurrentRefreshesKeepStatisticsConsistent(t *testing.T) {
	station := weather.NewStation(fixedSource(10), fixedSource(50), fixedSource(700), slog.New(slog.NewTextHandler(io.Discard, nil)))

	const capacity = 10
	stats, err := views.NewStatisticsView("S", capacity, slowWriter{})
	require.NoError(t, err)
	station.Register(stats)

	const (
		goroutines = 4
		refreshes  = 50
	)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < refreshes; i++ {
				assert.NoError(t, station.Refresh())
			}
		}()
	}
	wg.Wait()

	// 200 serialized updates through a capacity-10 window.
	assert.Len(t, stats.TemperatureHistory(), capacity)
	assert.Len(t, stats.HumidityHistory(), capacity)
	assert.Len(t, stats.PressureHistory(), capacity)

	require.NoError(t, stats.Display())
}

func TestTwoViewsRegisteredUnderUniqueNamesCoexist(t *testing.T) {
	station := weather.NewStation(fixedSource(10), fixedSource(50), fixedSource(700), slog.New(slog.NewTextHandler(io.Discard, nil)))

	a := views.NewCurrentView(views.UniqueName("current"), io.Discard)
	b := views.NewCurrentView(views.UniqueName("current"), io.Discard)
	station.Register(a)
	station.Register(b)

	require.NoError(t, station.Refresh())

	assert.Equal(t, 2, station.Len())
	assert.Equal(t, 10, a.Current().Temperature)
	assert.Equal(t, 10, b.Current().Temperature)
}
