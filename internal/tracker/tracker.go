package tracker

import (
	"sort"
	"time"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

// Tracker records attempts, derives the session summary and decides when
// the session ends. Mutation of tracker state is confined to Reset and
// RecordAttempt.
type Tracker interface {
	// Reset clears all state and starts a fresh session clock.
	Reset()

	// RecordAttempt folds one attempt into the progress map and the
	// attempt log. Mastery is recomputed through the domain plugin.
	RecordAttempt(q *problemgen.Question, answer session.Answer, correct bool, timeSpent time.Duration)

	// Summary derives the aggregate view of the session so far.
	Summary() session.Summary

	// ShouldContinue reports whether another question should be served.
	ShouldContinue() bool
}

// recorder is the attempt bookkeeping shared by all tracker variants.
type recorder struct {
	plugin    domain.Plugin
	entries   map[string]*session.ProgressEntry
	details   []session.AttemptDetail
	attempted int
	correct   int
	totalTime time.Duration
	start     time.Time

	// masteryThreshold marks entries as achieved in the summary.
	// Defaults to full mastery; the mastery tracker lowers it.
	masteryThreshold float64

	now func() time.Time
}

func newRecorder(plugin domain.Plugin, threshold float64) recorder {
	r := recorder{
		plugin:           plugin,
		masteryThreshold: threshold,
		now:              time.Now,
	}
	r.reset()
	return r
}

func (r *recorder) reset() {
	r.entries = make(map[string]*session.ProgressEntry)
	r.details = nil
	r.attempted = 0
	r.correct = 0
	r.totalTime = 0
	r.start = r.now()
}

func (r *recorder) record(q *problemgen.Question, answer session.Answer, correct bool, timeSpent time.Duration) {
	entry := r.entries[q.ID]
	if entry == nil {
		entry = &session.ProgressEntry{QuestionID: q.ID}
		r.entries[q.ID] = entry
	}

	at := r.now()
	entry.Record(correct, float64(timeSpent.Milliseconds()), at)
	entry.Mastery = r.plugin.CalculateMastery(entry)

	r.attempted++
	if correct {
		r.correct++
	}
	r.totalTime += timeSpent
	r.details = append(r.details, session.AttemptDetail{
		QuestionID: q.ID,
		Answer:     answer,
		Correct:    correct,
		TimeSpent:  timeSpent,
		Timestamp:  at,
	})
}

func (r *recorder) summary() session.Summary {
	s := session.Summary{
		QuestionsAttempted: r.attempted,
		QuestionsCorrect:   r.correct,
		Duration:           r.now().Sub(r.start),
		Progress:           r.entries,
		AttemptDetails:     r.details,
	}
	if r.attempted > 0 {
		s.Accuracy = float64(r.correct) / float64(r.attempted)
		s.AverageResponseTime = float64(r.totalTime.Milliseconds()) / float64(r.attempted)
	}
	for id, entry := range r.entries {
		if entry.Mastery >= r.masteryThreshold {
			s.MasteryAchieved = append(s.MasteryAchieved, id)
		}
	}
	sort.Strings(s.MasteryAchieved)
	return s
}

// masteredCount returns the number of distinct questions at or above the
// tracker's mastery threshold.
func (r *recorder) masteredCount() int {
	n := 0
	for _, entry := range r.entries {
		if entry.Mastery >= r.masteryThreshold {
			n++
		}
	}
	return n
}
