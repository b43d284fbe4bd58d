package session

import "time"

// AttemptDetail records a single attempt for the session log.
type AttemptDetail struct {
	QuestionID string
	Answer     Answer
	Correct    bool
	TimeSpent  time.Duration
	Timestamp  time.Time
}

// Summary is the derived aggregate view of a session. It is computed on
// demand by the progress tracker; the engine never mutates it.
type Summary struct {
	QuestionsAttempted int
	QuestionsCorrect   int

	// Accuracy is QuestionsCorrect / QuestionsAttempted, 0 when nothing
	// has been attempted.
	Accuracy float64

	// AverageResponseTime is the mean response time in milliseconds
	// across all attempts.
	AverageResponseTime float64

	// Duration is the elapsed time since session start.
	Duration time.Duration

	// MasteryAchieved lists question ids whose mastery has reached the
	// tracker's threshold.
	MasteryAchieved []string

	// Progress maps question id to its progress entry.
	Progress map[string]*ProgressEntry

	// AttemptDetails is the chronological attempt log.
	AttemptDetails []AttemptDetail
}
