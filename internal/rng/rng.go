// Package rng provides the deterministic random number generator used by the
// dungeon. It reproduces the classic DOS Rogue generator exactly, so a seed
// always yields the same levels.
package rng

import "time"

const (
	multiplier = 125
	modulus    = 2796203
	mask       = 0x7fffffff
)

// State is the complete generator state: the current seed and the seed the
// generator was started with.
type State struct {
	Seed    int64 `json:"seed"`
	Initial int64 `json:"initial"`
}

// RNG is a linear-congruential generator. It is not safe for concurrent use;
// the game advances it from a single goroutine.
type RNG struct {
	seed    int64
	initial int64
}

// New returns a generator seeded with seed.
func New(seed int64) *RNG {
	r := &RNG{}
	r.Seed(seed)
	return r
}

// NewFromTime returns a generator seeded with the current wall-clock second.
func NewFromTime() *RNG {
	return New(time.Now().Unix())
}

// Seed resets both the current and the initial seed.
func (r *RNG) Seed(seed int64) {
	r.seed = seed
	r.initial = seed
}

// State returns the (current, initial) seed pair.
func (r *RNG) State() State {
	return State{Seed: r.seed, Initial: r.initial}
}

// SetState restores a pair previously returned by State.
func (r *RNG) SetState(s State) {
	r.seed = s.Seed
	r.initial = s.Initial
}

// next advances the generator one step. The modulo is floored, so negative
// seeds stay in [0, modulus).
func (r *RNG) next() int64 {
	s := r.seed % modulus
	if s < 0 {
		s += modulus
	}
	r.seed = (s * multiplier) % modulus
	return r.seed
}

// Rnd returns a value in [0, n). For n < 1 it returns 0.
func (r *RNG) Rnd(n int) int {
	if n < 1 {
		return 0
	}
	a := r.next()
	b := r.next()
	return int(((a + b) & mask) % int64(n))
}

// Spread returns n +/- 10%, in [n - n/10, n + n/10).
func (r *RNG) Spread(n int) int {
	return n - n/10 + r.Rnd(n/5)
}

// Roll sums number rolls of a sides-sided die.
func (r *RNG) Roll(number, sides int) int {
	total := 0
	for i := 0; i < number; i++ {
		total += r.Rnd(sides) + 1
	}
	return total
}

// Between returns a value in [lo, hi).
func (r *RNG) Between(lo, hi int) int {
	return lo + r.Rnd(hi-lo)
}

// Chance reports true with a pct percent probability.
func (r *RNG) Chance(pct int) bool {
	return r.Rnd(100) < pct
}
