package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/sjoshi/digitdrill/internal/engine"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

// SessionRecorder persists engine events. Attempts are copied out of the
// summary carried by progress events, tracked by a cursor, so attempts
// fired before Begin (the engine assigns the session id during Start)
// are caught up on the next event.
type SessionRecorder struct {
	store *Store
	log   *slog.Logger

	mu          sync.Mutex
	sessionID   string
	written     int
	expressions map[string]string
}

// NewSessionRecorder creates a recorder writing to store. Persistence
// failures are logged, never surfaced to the session.
func NewSessionRecorder(s *Store, logger *slog.Logger) *SessionRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionRecorder{
		store:       s,
		log:         logger.With("component", "recorder"),
		expressions: make(map[string]string),
	}
}

// Begin opens the session row. Call it right after Engine.Start, once the
// session id is known.
func (r *SessionRecorder) Begin(sessionID, mode string, startedAt time.Time) {
	r.mu.Lock()
	r.sessionID = sessionID
	r.written = 0
	r.expressions = make(map[string]string)
	r.mu.Unlock()

	if err := r.store.BeginSession(sessionID, mode, startedAt); err != nil {
		r.log.Warn("begin session", "session", sessionID, "error", err)
	}
}

// Wrap chains persistence onto the given listeners.
func (r *SessionRecorder) Wrap(next engine.Listeners) engine.Listeners {
	return engine.Listeners{
		OnQuestionChange: func(q *problemgen.Question) {
			r.mu.Lock()
			r.expressions[q.ID] = q.Content.Expression
			r.mu.Unlock()
			if next.OnQuestionChange != nil {
				next.OnQuestionChange(q)
			}
		},
		OnAnswerSubmit: next.OnAnswerSubmit,
		OnProgressUpdate: func(s session.Summary) {
			r.flush(s)
			if next.OnProgressUpdate != nil {
				next.OnProgressUpdate(s)
			}
		},
		OnSessionComplete: func(s session.Summary) {
			r.complete(s)
			if next.OnSessionComplete != nil {
				next.OnSessionComplete(s)
			}
		},
	}
}

// flush writes every attempt detail past the cursor.
func (r *SessionRecorder) flush(s session.Summary) {
	r.mu.Lock()
	sessionID := r.sessionID
	written := r.written
	r.mu.Unlock()

	if sessionID == "" || written >= len(s.AttemptDetails) {
		return
	}
	for _, d := range s.AttemptDetails[written:] {
		r.mu.Lock()
		expression := r.expressions[d.QuestionID]
		r.mu.Unlock()

		err := r.store.RecordAttempt(sessionID, d.QuestionID, expression, d.Answer, d.Correct, d.TimeSpent)
		if err != nil {
			r.log.Warn("record attempt", "session", sessionID, "question", d.QuestionID, "error", err)
		}
	}

	r.mu.Lock()
	if len(s.AttemptDetails) > r.written {
		r.written = len(s.AttemptDetails)
	}
	r.mu.Unlock()
}

func (r *SessionRecorder) complete(s session.Summary) {
	r.flush(s)

	r.mu.Lock()
	sessionID := r.sessionID
	r.sessionID = ""
	r.written = 0
	r.mu.Unlock()

	if sessionID == "" {
		return
	}
	if err := r.store.CompleteSession(sessionID, s, time.Now()); err != nil {
		r.log.Warn("complete session", "session", sessionID, "error", err)
	}
}
