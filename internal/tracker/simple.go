package tracker

import (
	"time"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

// Simple stops once every question in the pool has been attempted once.
// Used by learn mode.
type Simple struct {
	recorder
	poolSize int
}

var _ Tracker = (*Simple)(nil)

// NewSimple creates a simple tracker for a pool of poolSize questions.
func NewSimple(plugin domain.Plugin, poolSize int) *Simple {
	return &Simple{
		recorder: newRecorder(plugin, 1.0),
		poolSize: poolSize,
	}
}

func (t *Simple) Reset() { t.reset() }

func (t *Simple) RecordAttempt(q *problemgen.Question, answer session.Answer, correct bool, timeSpent time.Duration) {
	t.record(q, answer, correct, timeSpent)
}

func (t *Simple) Summary() session.Summary { return t.summary() }

func (t *Simple) ShouldContinue() bool {
	return t.attempted < t.poolSize
}
