package engine

import (
	"log/slog"
	"time"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/input"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/provider"
	"github.com/sjoshi/digitdrill/internal/session"
	"github.com/sjoshi/digitdrill/internal/tracker"
)

// Listeners are the engine's outgoing event callbacks. All are optional;
// a panicking listener is logged and never corrupts engine state.
type Listeners struct {
	// OnQuestionChange fires when a new question becomes current.
	OnQuestionChange func(q *problemgen.Question)

	// OnAnswerSubmit fires after an answer is validated and recorded.
	OnAnswerSubmit func(answer session.Answer, correct bool)

	// OnProgressUpdate fires after OnAnswerSubmit with the fresh summary.
	OnProgressUpdate func(summary session.Summary)

	// OnSessionComplete fires exactly once per session, after all
	// per-question events.
	OnSessionComplete func(summary session.Summary)
}

// Config assembles an engine. Zero strategy fields fall back to the mode
// defaults from DefaultConfig.
type Config struct {
	Mode     Mode
	Plugin   domain.Plugin
	Provider provider.Provider
	Tracker  tracker.Tracker
	Input    input.Handler

	Listeners Listeners

	// FeedbackInterval overrides the mode default when positive.
	FeedbackInterval time.Duration

	// TimedDuration configures the timed tracker default when the
	// tracker field is left nil. Zero means 60 s.
	TimedDuration time.Duration

	Logger *slog.Logger
}

// Update is a partial configuration applied to a live engine. Strategy
// swaps are rejected while a session is running; only listeners and the
// input handler may be replaced mid-session.
type Update struct {
	Listeners *Listeners
	Input     input.Handler
	Provider  provider.Provider
	Tracker   tracker.Tracker
}
