package provider

import (
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

// Provider supplies the next question of a session.
//
// Consistency contract: when HasMore reports false, Next must return nil;
// when Next returns nil, HasMore must already have been false. The engine
// treats a disagreement as a provider fault and ends the session.
type Provider interface {
	// Initialize installs the question pool. Must be called before Next.
	Initialize(questions []problemgen.Question)

	// Next returns the next question, or nil when the provider is
	// exhausted.
	Next() *problemgen.Question

	// HasMore reports whether a subsequent Next could return non-nil.
	HasMore() bool
}

// ProgressObserver is implemented by providers that adapt their selection
// to the learner's progress. The engine feeds progress after every
// recorded attempt.
type ProgressObserver interface {
	ObserveProgress(progress map[string]*session.ProgressEntry)
}
