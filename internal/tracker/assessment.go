package tracker

import (
	"math"
	"time"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

const (
	// DefaultAssessmentMin is the minimum attempts before the estimate
	// is consulted.
	DefaultAssessmentMin = 10

	// DefaultAssessmentMax is the hard stop.
	DefaultAssessmentMax = 20

	// estimateWindow is how far back the stability comparison reaches.
	estimateWindow = 5

	// estimateStability is the maximum accuracy drift over the window
	// for the estimate to count as stable.
	estimateStability = 0.1
)

// Assessment stops when the running accuracy estimate settles after a
// minimum number of attempts, or at a hard maximum. Skipping is forbidden
// in assessment mode; the engine enforces that.
type Assessment struct {
	recorder
	minQuestions int
	maxQuestions int

	// estimates holds the running accuracy after each attempt.
	estimates []float64
}

var _ Tracker = (*Assessment)(nil)

// NewAssessment creates an assessment tracker. Non-positive bounds fall
// back to the defaults (10, 20).
func NewAssessment(plugin domain.Plugin, minQuestions, maxQuestions int) *Assessment {
	if minQuestions <= 0 {
		minQuestions = DefaultAssessmentMin
	}
	if maxQuestions < minQuestions {
		maxQuestions = DefaultAssessmentMax
	}
	return &Assessment{
		recorder:     newRecorder(plugin, 1.0),
		minQuestions: minQuestions,
		maxQuestions: maxQuestions,
	}
}

func (t *Assessment) Reset() {
	t.reset()
	t.estimates = nil
}

func (t *Assessment) RecordAttempt(q *problemgen.Question, answer session.Answer, correct bool, timeSpent time.Duration) {
	t.record(q, answer, correct, timeSpent)
	t.estimates = append(t.estimates, float64(t.correct)/float64(t.attempted))
}

func (t *Assessment) Summary() session.Summary { return t.summary() }

func (t *Assessment) ShouldContinue() bool {
	if t.attempted < t.minQuestions {
		return true
	}
	if t.attempted >= t.maxQuestions {
		return false
	}
	return !t.estimateStable()
}

// estimateStable compares the current accuracy estimate with the one from
// estimateWindow attempts ago.
func (t *Assessment) estimateStable() bool {
	n := len(t.estimates)
	if n <= estimateWindow {
		return false
	}
	drift := math.Abs(t.estimates[n-1] - t.estimates[n-1-estimateWindow])
	return drift < estimateStability
}
