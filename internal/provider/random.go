package provider

import (
	"math/rand/v2"
	"time"

	"github.com/sjoshi/digitdrill/internal/problemgen"
)

// Random serves uniform samples from the pool without immediate repeats.
// A pool of one question is re-served indefinitely.
type Random struct {
	pool   []problemgen.Question
	rng    *rand.Rand
	lastID string
}

var _ Provider = (*Random)(nil)

// NewRandom creates a random provider with a time-seeded source.
func NewRandom() *Random {
	return NewRandomWithSeed(uint64(time.Now().UnixNano()))
}

// NewRandomWithSeed creates a random provider with a fixed seed.
func NewRandomWithSeed(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed<<1|1))}
}

func (r *Random) Initialize(questions []problemgen.Question) {
	r.pool = questions
	r.lastID = ""
}

func (r *Random) Next() *problemgen.Question {
	if len(r.pool) == 0 {
		return nil
	}

	idx := r.rng.IntN(len(r.pool))
	if len(r.pool) > 1 {
		for r.pool[idx].ID == r.lastID {
			idx = r.rng.IntN(len(r.pool))
		}
	}

	q := &r.pool[idx]
	r.lastID = q.ID
	return q
}

// HasMore is true whenever the pool is non-empty; random practice never
// exhausts.
func (r *Random) HasMore() bool {
	return len(r.pool) > 0
}
