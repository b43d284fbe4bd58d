package practice

import (
	"time"

	"github.com/sjoshi/digitdrill/internal/problemgen"
	sess "github.com/sjoshi/digitdrill/internal/session"
)

// questionMsg is sent when the engine serves a new question.
type questionMsg struct {
	Question *problemgen.Question
}

// answerMsg is sent when the engine has judged a submitted answer.
type answerMsg struct {
	Answer  sess.Answer
	Correct bool
}

// progressMsg carries the refreshed summary after each attempt.
type progressMsg struct {
	Summary sess.Summary
}

// completeMsg is sent when the session ends.
type completeMsg struct {
	Summary sess.Summary
}

// clockTickMsg refreshes the on-screen timers.
type clockTickMsg time.Time
