package history

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when statistics are requested before any value
	// has been recorded.
	ErrEmpty = errors.New("no values in history")
)

// Window is a bounded, oldest-evicted sequence of integer measurements.
// Capacity is fixed at construction; once full, pushing a new value drops
// the oldest one in the same step.
type Window struct {
	values   []int
	capacity int
}

// NewWindow creates a Window retaining at most capacity values.
func NewWindow(capacity int) (*Window, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("window capacity must be at least 1, got %d", capacity)
	}
	return &Window{
		values:   make([]int, 0, capacity),
		capacity: capacity,
	}, nil
}

// Push appends v, evicting from the front first if the window is full.
func (w *Window) Push(v int) {
	if len(w.values) >= w.capacity {
		over := len(w.values) - w.capacity + 1
		w.values = w.values[over:]
	}
	w.values = append(w.values, v)
}

// Len returns the number of retained values.
func (w *Window) Len() int {
	return len(w.values)
}

// Cap returns the window capacity.
func (w *Window) Cap() int {
	return w.capacity
}

// Values returns a copy of the retained values, oldest first.
func (w *Window) Values() []int {
	out := make([]int, len(w.values))
	copy(out, w.values)
	return out
}

// Stats summarizes a window: min, max and integer sum over the retained
// values, plus the floating-point average over the current window length.
type Stats struct {
	Min int
	Max int
	Sum int
	Avg float64
}

// Stats computes min/max/sum in one linear scan over the retained values and
// divides the sum by the current window length for the average.
func (w *Window) Stats() (Stats, error) {
	if len(w.values) == 0 {
		return Stats{}, ErrEmpty
	}

	first := w.values[0]
	s := Stats{Min: first, Max: first, Sum: first}
	for _, v := range w.values[1:] {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Sum += v
	}
	s.Avg = float64(s.Sum) / float64(len(w.values))
	return s, nil
}
