package testutil

import (
	"math/rand/v2"
	"strconv"
	"sync"
)

// RNG is a seeded random source for reproducible tests and examples.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: newRand(seed),
		seed: seed,
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) // nolint gosec
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = newRand(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Shuffle pseudo-randomizes the order of n elements.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}

// Record is a small struct record used by tests and examples.
type Record struct {
	ID    string  `json:"id"`
	Group string  `json:"group"`
	Value float64 `json:"value"`
}

// Records builds n records with ids prefix-0..prefix-(n-1), groups cycling
// through groups (if any) and values in [0, 100).
func (r *RNG) Records(prefix string, n int, groups ...string) []*Record {
	out := make([]*Record, n)
	for i := range out {
		rec := &Record{
			ID:    prefix + "-" + strconv.Itoa(i),
			Value: r.Float64() * 100,
		}
		if len(groups) > 0 {
			rec.Group = groups[i%len(groups)]
		}
		out[i] = rec
	}
	return out
}
