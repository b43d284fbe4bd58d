package tracker

import (
	"time"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

const (
	// DefaultMasteryThreshold is the per-question mastery needed for a
	// question to count as mastered.
	DefaultMasteryThreshold = 0.8

	// DefaultRequiredMastered is how many distinct questions must be
	// mastered before the session stops.
	DefaultRequiredMastered = 5
)

// Mastery stops once enough distinct questions cross the mastery
// threshold. Used by practice, accuracy and fluency modes.
type Mastery struct {
	recorder
	threshold float64
	required  int
}

var _ Tracker = (*Mastery)(nil)

// NewMastery creates a mastery tracker. Non-positive arguments fall back
// to the defaults (0.8, 5).
func NewMastery(plugin domain.Plugin, threshold float64, required int) *Mastery {
	if threshold <= 0 {
		threshold = DefaultMasteryThreshold
	}
	if required <= 0 {
		required = DefaultRequiredMastered
	}
	return &Mastery{
		recorder:  newRecorder(plugin, threshold),
		threshold: threshold,
		required:  required,
	}
}

func (t *Mastery) Reset() { t.reset() }

func (t *Mastery) RecordAttempt(q *problemgen.Question, answer session.Answer, correct bool, timeSpent time.Duration) {
	t.record(q, answer, correct, timeSpent)
}

func (t *Mastery) Summary() session.Summary { return t.summary() }

func (t *Mastery) ShouldContinue() bool {
	return t.masteredCount() < t.required
}
