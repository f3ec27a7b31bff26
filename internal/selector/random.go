package selector

import (
	"math/rand"
	"time"
)

// Source supplies the randomness for Pick. A Source is selected once
// per invocation and passed in explicitly; there is no hidden global
// generator.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

// NewSeededSource returns a reproducible Source: the same seed over the
// same input sequence always yields the same selection, bit for bit.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewSource(int64(seed)))
}

// NewEntropySource returns a non-deterministic Source for unseeded runs.
func NewEntropySource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
