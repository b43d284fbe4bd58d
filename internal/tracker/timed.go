package tracker

import (
	"time"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

// DefaultTimedDuration is the session length when none is configured.
const DefaultTimedDuration = 60 * time.Second

// Timed stops when the wall-clock session duration elapses.
type Timed struct {
	recorder
	duration time.Duration
}

var _ Tracker = (*Timed)(nil)

// NewTimed creates a timed tracker. A non-positive duration falls back to
// the 60 s default.
func NewTimed(plugin domain.Plugin, duration time.Duration) *Timed {
	if duration <= 0 {
		duration = DefaultTimedDuration
	}
	return &Timed{
		recorder: newRecorder(plugin, 1.0),
		duration: duration,
	}
}

func (t *Timed) Reset() { t.reset() }

func (t *Timed) RecordAttempt(q *problemgen.Question, answer session.Answer, correct bool, timeSpent time.Duration) {
	t.record(q, answer, correct, timeSpent)
}

func (t *Timed) Summary() session.Summary { return t.summary() }

func (t *Timed) ShouldContinue() bool {
	return t.now().Sub(t.start) < t.duration
}
