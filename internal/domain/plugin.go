package domain

import (
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

// Plugin is the capability set that specializes the practice engine for a
// question domain. The engine itself stays generic: everything
// domain-specific — parsing, validation, mastery scoring, hinting — goes
// through this interface.
type Plugin interface {
	// Name identifies the plugin.
	Name() string

	// QuestionTypes lists the question type tags this plugin handles.
	QuestionTypes() []string

	// ValidateAnswer reports whether value matches correct within the
	// domain's tolerance. It never panics on ordinary input.
	ValidateAnswer(value, correct float64) bool

	// ValidateAnswerWithQuestion is the richer form the engine prefers.
	// Implementations that need nothing beyond the scalar delegate to
	// ValidateAnswer.
	ValidateAnswerWithQuestion(value float64, q *problemgen.Question) bool

	// ParseAnswer converts a raw input string into the domain value.
	// Returns false for empty or unparseable input.
	ParseAnswer(raw string) (float64, bool)

	// CalculateMastery scores a progress entry in [0, 1].
	CalculateMastery(entry *session.ProgressEntry) float64

	// Hint returns a hint for the given attempt number (1-based). Later
	// attempts get progressively more revealing hints.
	Hint(q *problemgen.Question, attempt int) string

	// Explanation returns the canonical worked answer for a question.
	Explanation(q *problemgen.Question) string

	// FormatAnswer renders a domain value for display.
	FormatAnswer(value float64) string

	// RenderQuestion returns a display string for a question. Opaque to
	// the engine; consumed by the render layer.
	RenderQuestion(q *problemgen.Question) string
}
