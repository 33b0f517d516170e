package game

import (
	"math/rand"
	"time"
)

// Source supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a generator seeded from the clock
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
