package provider

import (
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

const (
	// masteredWeight is the floor weight for questions at full mastery.
	masteredWeight = 0.1

	// errorBoost is added while a question's streak is broken.
	errorBoost = 1.0

	// stalenessStep nudges priority toward least-recently-served
	// questions, breaking ties between equal weights.
	stalenessStep = 0.01
)

// Adaptive biases selection toward questions with low mastery or recent
// errors and away from mastered ones. Ties resolve to the question served
// longest ago.
type Adaptive struct {
	pool     []problemgen.Question
	progress map[string]*session.ProgressEntry
	served   map[string]int // serial of last serve per question id
	serial   int
	lastID   string
}

var _ Provider = (*Adaptive)(nil)
var _ ProgressObserver = (*Adaptive)(nil)

// NewAdaptive creates an uninitialized adaptive provider.
func NewAdaptive() *Adaptive {
	return &Adaptive{}
}

func (a *Adaptive) Initialize(questions []problemgen.Question) {
	a.pool = questions
	a.progress = nil
	a.served = make(map[string]int, len(questions))
	a.serial = 0
	a.lastID = ""
}

// ObserveProgress installs the latest progress map. The engine calls this
// after every recorded attempt.
func (a *Adaptive) ObserveProgress(progress map[string]*session.ProgressEntry) {
	a.progress = progress
}

// Next picks the highest-priority question. Priority is the mastery/error
// weight plus a small staleness increment per question served since this
// one was last seen.
func (a *Adaptive) Next() *problemgen.Question {
	if len(a.pool) == 0 {
		return nil
	}

	a.serial++

	best := -1
	bestScore := 0.0
	for i := range a.pool {
		q := &a.pool[i]
		if len(a.pool) > 1 && q.ID == a.lastID {
			continue
		}
		score := a.weight(q.ID) + stalenessStep*float64(a.serial-a.served[q.ID])
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	q := &a.pool[best]
	a.served[q.ID] = a.serial
	a.lastID = q.ID
	return q
}

func (a *Adaptive) HasMore() bool {
	return len(a.pool) > 0
}

// weight grows with missing mastery and recent errors, and collapses to a
// floor once a question is fully mastered.
func (a *Adaptive) weight(id string) float64 {
	entry := a.progress[id]
	if entry == nil {
		// Unseen questions score as zero mastery.
		return 1 + 2
	}
	if entry.Mastery >= 1 {
		return masteredWeight
	}
	w := 1 + 2*(1-entry.Mastery)
	if entry.IncorrectCount > 0 && entry.Streak == 0 {
		w += errorBoost
	}
	return w
}
