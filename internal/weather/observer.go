package weather

// Source abstracts a stream of simulated measurement values
// (e.g. a random range generator, or a scripted sequence in tests).
type Source interface {
	Next() int
}

// Listener receives records pushed by a Subject. Implementations declare
// their own name, which the subject uses as the registration key.
type Listener interface {
	Name() string
	OnUpdate(Record) error
}

// Subject is the contract the station (and any future record publisher)
// must satisfy.
type Subject interface {
	Register(Listener) string
	Remove(name string)
	Notify(Record) error
}
