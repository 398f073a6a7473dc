package weather

// Temperature, Humidity and Pressure are measured in whole units
// (degrees, percent, hPa) as delivered by the simulated sensors.
type (
	Temperature = int
	Humidity    = int
	Pressure    = int
)

// Record is one complete reading of all three measurements. Records are
// plain values: they are copied on every notification, so a listener can
// never mutate station state through one. The zero Record is the
// placeholder a view holds before any reading arrives.
type Record struct {
	Temperature Temperature
	Humidity    Humidity
	Pressure    Pressure
}
