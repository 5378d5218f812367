// Package generator synthesizes plausible monitoring history for children:
// sessions with nested activities, the progress records they imply and
// safety alerts. Generation is pure; persistence lives in the service layer.
package generator

import (
	"math/rand/v2"
	"time"
)

// Random is the single source of randomness for the synthesizer.
// Seed it to make a run reproducible.
type Random struct {
	rng *rand.Rand
	now func() time.Time
}

// New returns a Random seeded from entropy. A nil now uses time.Now.
func New(now func() time.Time) *Random {
	return NewSeeded(rand.Uint64(), now)
}

// NewSeeded returns a deterministic Random for the given seed
func NewSeeded(seed uint64, now func() time.Time) *Random {
	if now == nil {
		now = time.Now
	}
	return &Random{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: now,
	}
}

// Int returns a uniform integer in [min, max]
func (r *Random) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.IntN(max-min+1)
}

// Chance returns true with probability p
func (r *Random) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// Pick returns a uniformly chosen element. It panics on an empty slice.
func Pick[T any](r *Random, items []T) T {
	if len(items) == 0 {
		panic("generator: Pick called with no items")
	}
	return items[r.rng.IntN(len(items))]
}

// Awake hours for synthetic activity
const (
	earliestHour = 8
	latestHour   = 20
)

// PastDate returns a moment daysAgo days before now, moved to a random
// hour in [8,20] and minute in [0,59] with seconds zeroed
func (r *Random) PastDate(daysAgo int) time.Time {
	day := r.now().Add(-time.Duration(daysAgo) * 24 * time.Hour)
	return time.Date(day.Year(), day.Month(), day.Day(),
		r.Int(earliestHour, latestHour), r.Int(0, 59), 0, 0, day.Location())
}
