package generator

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInvalidRange is returned when a generator is configured with a
	// non-positive range width.
	ErrInvalidRange = errors.New("range width must be at least 1")
)

// Generator produces an infinite sequence of integers drawn uniformly from
// [base, base+delta). Each generator owns its own randomness source, so
// independently constructed generators make no ordering guarantees relative
// to each other. The sequence is not restartable: there is no way to rewind
// or reproduce a prior draw.
type Generator struct {
	base  int
	delta int
	rng   *rand.Rand
}

// New creates a Generator for the half-open interval [base, base+delta).
func New(base, delta int) (*Generator, error) {
	if delta < 1 {
		return nil, fmt.Errorf("%w: got delta %d", ErrInvalidRange, delta)
	}
	// Seed from the auto-seeded global source; wall-clock seeds can
	// collide for generators constructed back-to-back.
	return &Generator{
		base:  base,
		delta: delta,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}, nil
}

// MustNew is New for wiring code with static literals; it panics on an
// invalid range.
func MustNew(base, delta int) *Generator {
	g, err := New(base, delta)
	if err != nil {
		panic(err)
	}
	return g
}

// Next draws one value. It never fails and never terminates the sequence.
func (g *Generator) Next() int {
	return g.base + g.rng.Intn(g.delta)
}
