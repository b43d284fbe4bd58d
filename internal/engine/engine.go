package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/provider"
	"github.com/sjoshi/digitdrill/internal/session"
	"github.com/sjoshi/digitdrill/internal/tracker"
)

// State is the engine lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateStopped
)

// Engine runs the per-question practice lifecycle: it pulls questions
// from the provider, gates the input handler, validates answers through
// the domain plugin, feeds the tracker and emits events to listeners.
//
// The engine surfaces nothing by throwing: recoverable anomalies become
// incorrect attempts or a clean session end.
type Engine struct {
	mu sync.Mutex

	cfg       Config
	pool      []problemgen.Question
	listeners Listeners
	log       *slog.Logger

	state         State
	sessionID     string
	current       *problemgen.Question
	questionStart time.Time
	sessionStart  time.Time
	sessionEnd    time.Time
	inputEnabled  bool

	// pendingAdvance is set when the feedback delay fires (or would
	// fire) while paused; resume then advances instead of re-arming the
	// current question.
	pendingAdvance bool

	// generation invalidates timers and late callbacks from a previous
	// session after stop/start.
	generation uint64
	timer      *time.Timer
}

// New builds an engine from cfg, filling any nil strategy from the mode
// defaults, and installs the question pool.
func New(cfg Config, pool []problemgen.Question) *Engine {
	defaults := DefaultConfig(cfg.Mode, cfg.Plugin, len(pool))
	if cfg.Provider == nil {
		cfg.Provider = defaults.Provider
	}
	if cfg.Tracker == nil {
		if cfg.Mode == ModeTimed && cfg.TimedDuration > 0 {
			cfg.Tracker = tracker.NewTimed(cfg.Plugin, cfg.TimedDuration)
		} else {
			cfg.Tracker = defaults.Tracker
		}
	}
	if cfg.Input == nil {
		cfg.Input = defaults.Input
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	e := &Engine{
		cfg:       cfg,
		pool:      pool,
		listeners: cfg.Listeners,
		log:       cfg.Logger.With("component", "engine", "mode", string(cfg.Mode)),
	}
	cfg.Provider.Initialize(pool)
	cfg.Input.Bind(e.submit)
	return e
}

// SessionID returns the id of the current (or last) session.
func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessionID
}

// CurrentState returns the lifecycle state.
func (e *Engine) CurrentState() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// CurrentQuestion returns the question being displayed, nil between
// questions and outside a session.
func (e *Engine) CurrentQuestion() *problemgen.Question {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Start begins a session. Calling Start on a running or paused engine is
// a no-op; after a stop, Start begins a fresh session.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.state == StateRunning || e.state == StatePaused {
		e.mu.Unlock()
		return
	}
	e.generation++
	gen := e.generation
	e.sessionID = uuid.NewString()
	e.cfg.Tracker.Reset()
	e.cfg.Provider.Initialize(e.pool)
	e.sessionStart = time.Now()
	e.sessionEnd = time.Time{}
	e.state = StateRunning
	e.current = nil
	e.pendingAdvance = false
	e.mu.Unlock()

	e.advance(gen)
}

// Stop ends the session, cancels any pending feedback delay and fires the
// completion callback. A second Stop is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.state != StateRunning && e.state != StatePaused {
		e.mu.Unlock()
		return
	}
	summary := e.completeLocked()
	e.mu.Unlock()

	e.emitSessionComplete(summary)
}

// Pause suspends the session, disabling input and freezing the lifecycle.
// The current question stays displayed.
func (e *Engine) Pause() {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return
	}
	e.state = StatePaused
	if e.timer != nil {
		// A feedback delay was pending; advance on resume instead.
		e.pendingAdvance = true
	}
	e.cancelTimerLocked()
	e.setInputLocked(false)
	e.mu.Unlock()
}

// Resume restarts a paused session. The question clock resets to now, so
// time spent thinking while paused earns no credit. If the feedback delay
// elapsed during the pause, the engine advances to the next question.
func (e *Engine) Resume() {
	e.mu.Lock()
	if e.state != StatePaused {
		e.mu.Unlock()
		return
	}
	e.state = StateRunning
	gen := e.generation
	if e.pendingAdvance || e.current == nil {
		e.pendingAdvance = false
		e.mu.Unlock()
		e.advance(gen)
		return
	}
	e.questionStart = time.Now()
	e.setInputLocked(true)
	e.mu.Unlock()
}

// SkipQuestion records a skip (an incorrect attempt with no value and
// zero time) and advances. Ignored with a warning in assessment mode, and
// outside a running session.
func (e *Engine) SkipQuestion() {
	e.mu.Lock()
	if e.state != StateRunning || e.current == nil {
		e.mu.Unlock()
		return
	}
	if !e.cfg.Mode.AllowsSkip() {
		e.mu.Unlock()
		e.log.Warn("skip rejected", "reason", "not allowed in assessment mode")
		return
	}
	answer := session.SkipAnswer(e.cfg.Input.Method())
	e.resolveLocked(answer, false, 0)
}

// CurrentQuestionTime returns the elapsed time on the current question
// while running, and zero otherwise.
func (e *Engine) CurrentQuestionTime() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateRunning || e.current == nil {
		return 0
	}
	return time.Since(e.questionStart)
}

// Session returns a snapshot record of the current (or last) session.
func (e *Engine) Session() session.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return session.Session{
		ID:        e.sessionID,
		Mode:      string(e.cfg.Mode),
		StartedAt: e.sessionStart,
		EndedAt:   e.sessionEnd,
		Questions: e.pool,
		Progress:  e.cfg.Tracker.Summary().Progress,
	}
}

// Summary derives the current session summary from the tracker.
func (e *Engine) Summary() session.Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.Tracker.Summary()
}

// UpdateConfig applies a partial configuration. Provider and tracker
// swaps are rejected with a warning while a session is running or paused.
// Listeners and the input handler may be replaced at any time; rebinding
// the input handler re-wires the submit sink.
func (e *Engine) UpdateConfig(u Update) {
	e.mu.Lock()
	defer e.mu.Unlock()

	inSession := e.state == StateRunning || e.state == StatePaused

	if u.Provider != nil {
		if inSession {
			e.log.Warn("config update rejected", "field", "provider", "reason", "session running")
		} else {
			e.cfg.Provider = u.Provider
			e.cfg.Provider.Initialize(e.pool)
		}
	}
	if u.Tracker != nil {
		if inSession {
			e.log.Warn("config update rejected", "field", "tracker", "reason", "session running")
		} else {
			e.cfg.Tracker = u.Tracker
		}
	}
	if u.Listeners != nil {
		e.listeners = *u.Listeners
	}
	if u.Input != nil {
		wasEnabled := e.inputEnabled
		e.setInputLocked(false)
		e.cfg.Input.Bind(nil)
		e.cfg.Input = u.Input
		e.cfg.Input.Bind(e.submit)
		if wasEnabled {
			e.setInputLocked(true)
		}
	}
}

// advance runs one iteration of the question lifecycle: consult the
// tracker, pull the next question, open input and announce the question.
func (e *Engine) advance(gen uint64) {
	e.mu.Lock()
	if e.generation != gen {
		e.mu.Unlock()
		return
	}
	if e.state == StatePaused {
		e.pendingAdvance = true
		e.mu.Unlock()
		return
	}
	if e.state != StateRunning {
		e.mu.Unlock()
		return
	}

	if !e.cfg.Tracker.ShouldContinue() {
		summary := e.completeLocked()
		e.mu.Unlock()
		e.emitSessionComplete(summary)
		return
	}

	q := e.cfg.Provider.Next()
	if q == nil {
		if e.cfg.Provider.HasMore() {
			e.log.Warn("provider inconsistency", "detail", "Next returned nil while HasMore is true")
		}
		summary := e.completeLocked()
		e.mu.Unlock()
		e.emitSessionComplete(summary)
		return
	}

	e.current = q
	e.questionStart = time.Now()
	e.setInputLocked(true)
	e.mu.Unlock()

	e.emitQuestionChange(q)
}

// submit is the input handler sink. Answers are dropped unless a session
// is running with a current question.
func (e *Engine) submit(answer session.Answer) {
	e.mu.Lock()
	if e.state != StateRunning || e.current == nil {
		e.mu.Unlock()
		return
	}
	timeSpent := time.Since(e.questionStart)
	correct := e.validate(answer, e.current)
	e.resolveLocked(answer, correct, timeSpent)
}

// resolveLocked records an attempt and schedules the next advance. The
// caller holds e.mu; resolveLocked releases it.
func (e *Engine) resolveLocked(answer session.Answer, correct bool, timeSpent time.Duration) {
	q := e.current
	e.cfg.Tracker.RecordAttempt(q, answer, correct, timeSpent)

	if obs, ok := e.cfg.Provider.(provider.ProgressObserver); ok {
		obs.ObserveProgress(e.cfg.Tracker.Summary().Progress)
	}

	summary := e.cfg.Tracker.Summary()
	gen := e.generation
	e.setInputLocked(false)
	e.current = nil
	e.mu.Unlock()

	e.emitAnswerSubmit(answer, correct)

	// A listener may stop the engine from OnAnswerSubmit; the completion
	// event must then stay last.
	e.mu.Lock()
	stopped := e.generation != gen || e.state == StateStopped
	e.mu.Unlock()
	if !stopped {
		e.emitProgressUpdate(summary)
	}

	e.mu.Lock()
	if e.generation == gen {
		switch e.state {
		case StateRunning:
			e.timer = time.AfterFunc(e.feedbackInterval(), func() { e.advance(gen) })
		case StatePaused:
			e.pendingAdvance = true
		}
	}
	e.mu.Unlock()
}

// completeLocked transitions to Stopped and returns the final summary.
// The caller holds e.mu and fires the completion callback after
// unlocking.
func (e *Engine) completeLocked() session.Summary {
	e.state = StateStopped
	e.sessionEnd = time.Now()
	e.cancelTimerLocked()
	e.setInputLocked(false)
	e.current = nil
	return e.cfg.Tracker.Summary()
}

func (e *Engine) cancelTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) setInputLocked(enabled bool) {
	e.inputEnabled = enabled
	if enabled {
		e.cfg.Input.Enable()
	} else {
		e.cfg.Input.Disable()
	}
}

func (e *Engine) feedbackInterval() time.Duration {
	if e.cfg.FeedbackInterval > 0 {
		return e.cfg.FeedbackInterval
	}
	return e.cfg.Mode.FeedbackInterval()
}

// validate asks the plugin whether the answer is correct. A panicking
// plugin is logged and the attempt treated as incorrect; skips never
// validate.
func (e *Engine) validate(answer session.Answer, q *problemgen.Question) (correct bool) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("plugin validation fault", "question", q.ID, "panic", r)
			correct = false
		}
	}()
	if answer.Type == session.AnswerSkip || answer.Value == nil {
		return false
	}
	return e.cfg.Plugin.ValidateAnswerWithQuestion(*answer.Value, q)
}

func (e *Engine) emitQuestionChange(q *problemgen.Question) {
	e.safeEmit("question change", func(l Listeners) {
		if l.OnQuestionChange != nil {
			l.OnQuestionChange(q)
		}
	})
}

func (e *Engine) emitAnswerSubmit(answer session.Answer, correct bool) {
	e.safeEmit("answer submit", func(l Listeners) {
		if l.OnAnswerSubmit != nil {
			l.OnAnswerSubmit(answer, correct)
		}
	})
}

func (e *Engine) emitProgressUpdate(summary session.Summary) {
	e.safeEmit("progress update", func(l Listeners) {
		if l.OnProgressUpdate != nil {
			l.OnProgressUpdate(summary)
		}
	})
}

func (e *Engine) emitSessionComplete(summary session.Summary) {
	e.safeEmit("session complete", func(l Listeners) {
		if l.OnSessionComplete != nil {
			l.OnSessionComplete(summary)
		}
	})
}

// safeEmit isolates listener panics from engine state.
func (e *Engine) safeEmit(event string, fire func(Listeners)) {
	e.mu.Lock()
	listeners := e.listeners
	e.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("listener fault", "event", event, "panic", r)
		}
	}()
	fire(listeners)
}
