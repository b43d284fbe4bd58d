package input

import (
	"sync"

	"github.com/sjoshi/digitdrill/internal/session"
)

// Handler collects user input on one channel and forwards parsed answers
// to a single sink. Handlers start disabled; the engine toggles them
// around question boundaries. Events arriving while disabled are dropped,
// not queued.
type Handler interface {
	// Enable opens the handler for input.
	Enable()

	// Disable closes the handler; subsequent events are dropped.
	Disable()

	// Enabled reports the current gate state.
	Enabled() bool

	// Bind installs the submit sink. Only one sink is active at a time.
	Bind(submit func(session.Answer))

	// Method identifies the channel this handler captures.
	Method() session.InputMethod
}

// gate is the shared enable/disable and sink state embedded by every
// handler implementation.
type gate struct {
	mu      sync.Mutex
	enabled bool
	submit  func(session.Answer)
}

func (g *gate) Enable() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enabled = true
}

func (g *gate) Disable() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enabled = false
}

func (g *gate) Enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled
}

func (g *gate) Bind(submit func(session.Answer)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.submit = submit
}

// emit forwards an answer to the sink iff the gate is open.
func (g *gate) emit(a session.Answer) {
	g.mu.Lock()
	submit := g.submit
	open := g.enabled
	g.mu.Unlock()

	if open && submit != nil {
		submit(a)
	}
}
