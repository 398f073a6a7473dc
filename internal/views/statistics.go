package views

import (
	"fmt"
	"io"

	"weathermon/internal/history"
	"weathermon/internal/weather"
)

// DefaultHistoryLength is the statistics window capacity used when callers
// have no reason to pick another one.
const DefaultHistoryLength = 10

// ErrEmptyHistory is returned when statistics are rendered before any
// update has been received.
var ErrEmptyHistory = fmt.Errorf("statistics view: %w", history.ErrEmpty)

// StatisticsView keeps one bounded history per measurement and renders
// min/max/average over the retained window on every update. All three
// histories share one capacity and are pushed together, so their lengths
// stay in lockstep; each measurement's average is nevertheless computed
// from its own window.
type StatisticsView struct {
	name string
	out  io.Writer

	temperature *history.Window
	humidity    *history.Window
	pressure    *history.Window
}

var _ weather.Listener = (*StatisticsView)(nil)

// NewStatisticsView creates a view retaining the last capacity readings of
// each measurement, writing to out.
func NewStatisticsView(name string, capacity int, out io.Writer) (*StatisticsView, error) {
	temp, err := history.NewWindow(capacity)
	if err != nil {
		return nil, err
	}
	humid, err := history.NewWindow(capacity)
	if err != nil {
		return nil, err
	}
	press, err := history.NewWindow(capacity)
	if err != nil {
		return nil, err
	}

	return &StatisticsView{
		name:        name,
		out:         out,
		temperature: temp,
		humidity:    humid,
		pressure:    press,
	}, nil
}

// Name returns the view's registration name.
func (v *StatisticsView) Name() string { return v.name }

// TemperatureHistory returns the retained temperature values, oldest first.
func (v *StatisticsView) TemperatureHistory() []int { return v.temperature.Values() }

// HumidityHistory returns the retained humidity values, oldest first.
func (v *StatisticsView) HumidityHistory() []int { return v.humidity.Values() }

// PressureHistory returns the retained pressure values, oldest first.
func (v *StatisticsView) PressureHistory() []int { return v.pressure.Values() }

// OnUpdate appends the record's fields to their histories (evicting the
// oldest entries once capacity is reached) and renders the refreshed
// statistics.
func (v *StatisticsView) OnUpdate(rec weather.Record) error {
	v.temperature.Push(rec.Temperature)
	v.humidity.Push(rec.Humidity)
	v.pressure.Push(rec.Pressure)
	return v.Display()
}

// Display renders min/max/average per measurement over the retained
// windows without mutating them. Calling Display before any update has
// arrived returns ErrEmptyHistory.
func (v *StatisticsView) Display() error {
	tempStats, err := v.temperature.Stats()
	if err != nil {
		return ErrEmptyHistory
	}
	humidStats, err := v.humidity.Stats()
	if err != nil {
		return ErrEmptyHistory
	}
	pressStats, err := v.pressure.Stats()
	if err != nil {
		return ErrEmptyHistory
	}

	if _, err := fmt.Fprintf(v.out, "%s\n", v.name); err != nil {
		return err
	}
	for _, line := range []struct {
		label string
		stats history.Stats
	}{
		{"Temperature", tempStats},
		{"Humidity", humidStats},
		{"Pressure", pressStats},
	} {
		_, err := fmt.Fprintf(v.out, "\t%s (min/max/avg)\t: %d / %d / %g\n",
			line.label, line.stats.Min, line.stats.Max, line.stats.Avg)
		if err != nil {
			return err
		}
	}
	return nil
}
