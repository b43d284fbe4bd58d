package session

import "time"

// ProgressEntry tracks cumulative results for one question id within a
// session. Entries are created on first attempt and mutated only by the
// progress tracker.
type ProgressEntry struct {
	QuestionID     string
	Attempts       int
	CorrectCount   int
	IncorrectCount int

	// AverageTime is the mean response time in milliseconds over all attempts.
	AverageTime float64

	// LastAttempt is the timestamp of the most recent attempt.
	LastAttempt time.Time

	// Streak is the current run of consecutive correct attempts.
	// Reset to zero on any incorrect attempt.
	Streak int

	// Mastery is the plugin-computed score in [0, 1].
	Mastery float64
}

// Record folds one attempt into the entry. The response time feeds the
// incremental mean; mastery is recomputed separately by the tracker.
func (p *ProgressEntry) Record(correct bool, timeSpentMs float64, at time.Time) {
	p.Attempts++
	if correct {
		p.CorrectCount++
		p.Streak++
	} else {
		p.IncorrectCount++
		p.Streak = 0
	}
	p.AverageTime += (timeSpentMs - p.AverageTime) / float64(p.Attempts)
	p.LastAttempt = at
}

// Accuracy returns CorrectCount / Attempts, or 0 before any attempt.
func (p *ProgressEntry) Accuracy() float64 {
	if p.Attempts == 0 {
		return 0
	}
	return float64(p.CorrectCount) / float64(p.Attempts)
}
