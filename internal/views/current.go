package views

import (
	"fmt"
	"io"

	"weathermon/internal/weather"
)

// CurrentView renders the most recent record on every update.
type CurrentView struct {
	name    string
	current weather.Record
	out     io.Writer
}

var _ weather.Listener = (*CurrentView)(nil)

// NewCurrentView creates a view writing to out. Before the first update the
// view holds the zero placeholder record.
func NewCurrentView(name string, out io.Writer) *CurrentView {
	return &CurrentView{
		name: name,
		out:  out,
	}
}

// Name returns the view's registration name.
func (v *CurrentView) Name() string { return v.name }

// Current returns the last record received, or the zero record before any
// update.
func (v *CurrentView) Current() weather.Record { return v.current }

// OnUpdate stores the record and renders it.
func (v *CurrentView) OnUpdate(rec weather.Record) error {
	v.current = rec
	return v.display()
}

func (v *CurrentView) display() error {
	_, err := fmt.Fprintf(v.out,
		"%s\n\tTemperature\t: %d\n\tHumidity\t: %d\n\tPressure\t: %d\n",
		v.name, v.current.Temperature, v.current.Humidity, v.current.Pressure)
	return err
}
