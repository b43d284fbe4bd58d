package engine

import (
	"fmt"
	"time"
)

// Mode selects the strategy bundle and pacing for a session.
type Mode string

const (
	ModeLearn      Mode = "learn"
	ModePractice   Mode = "practice"
	ModeTimed      Mode = "timed"
	ModeAccuracy   Mode = "accuracy"
	ModeFluency    Mode = "fluency"
	ModeAssessment Mode = "assessment"
)

// Modes lists all valid modes in menu order.
func Modes() []Mode {
	return []Mode{ModeLearn, ModePractice, ModeTimed, ModeAccuracy, ModeFluency, ModeAssessment}
}

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	switch m {
	case ModeLearn, ModePractice, ModeTimed, ModeAccuracy, ModeFluency, ModeAssessment:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// FeedbackInterval is the pause between recording an answer and advancing
// to the next question.
func (m Mode) FeedbackInterval() time.Duration {
	switch m {
	case ModeTimed:
		return 500 * time.Millisecond
	case ModeAssessment:
		return time.Second
	default:
		return 1500 * time.Millisecond
	}
}

// AllowsSkip reports whether skipping questions is permitted.
func (m Mode) AllowsSkip() bool {
	return m != ModeAssessment
}
