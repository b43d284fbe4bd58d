package store

import (
	"database/sql"
	"time"

	"github.com/sjoshi/digitdrill/internal/session"
)

// SessionRecord is a persisted practice session.
type SessionRecord struct {
	ID                 string
	Mode               string
	StartedAt          time.Time
	EndedAt            sql.NullTime
	QuestionsAttempted int
	QuestionsCorrect   int
	Accuracy           float64
	AverageResponseMs  float64
	DurationMs         int64
}

// AttemptRecord is a persisted answer attempt.
type AttemptRecord struct {
	ID          int64
	SessionID   string
	QuestionID  string
	Expression  string
	AnswerRaw   string
	AnswerValue sql.NullFloat64
	AnswerType  string
	InputMethod string
	Correct     bool
	TimeSpentMs int64
	CreatedAt   time.Time
}

// BeginSession inserts a new session row.
func (s *Store) BeginSession(id, mode string, startedAt time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, mode, started_at) VALUES (?, ?, ?)`,
		id, mode, startedAt,
	)
	return err
}

// RecordAttempt appends an attempt to a session.
func (s *Store) RecordAttempt(sessionID, questionID, expression string, a session.Answer, correct bool, timeSpent time.Duration) error {
	var value sql.NullFloat64
	if a.Value != nil {
		value = sql.NullFloat64{Float64: *a.Value, Valid: true}
	}
	correctInt := 0
	if correct {
		correctInt = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO attempts (session_id, question_id, expression, answer_raw, answer_value, answer_type, input_method, correct, time_spent_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, questionID, expression, a.Raw, value, string(a.Type), string(a.Method), correctInt, timeSpent.Milliseconds(), time.Now(),
	)
	return err
}

// CompleteSession writes the final counters onto the session row.
func (s *Store) CompleteSession(id string, summary session.Summary, endedAt time.Time) error {
	_, err := s.db.Exec(
		`UPDATE sessions
		 SET ended_at = ?, questions_attempted = ?, questions_correct = ?, accuracy = ?, average_response_ms = ?, duration_ms = ?
		 WHERE id = ?`,
		endedAt, summary.QuestionsAttempted, summary.QuestionsCorrect, summary.Accuracy,
		summary.AverageResponseTime, summary.Duration.Milliseconds(), id,
	)
	return err
}

// GetSession returns a session by id.
func (s *Store) GetSession(id string) (SessionRecord, error) {
	var r SessionRecord
	err := s.db.QueryRow(
		`SELECT id, mode, started_at, ended_at, questions_attempted, questions_correct, accuracy, average_response_ms, duration_ms
		 FROM sessions WHERE id = ?`, id,
	).Scan(&r.ID, &r.Mode, &r.StartedAt, &r.EndedAt, &r.QuestionsAttempted, &r.QuestionsCorrect, &r.Accuracy, &r.AverageResponseMs, &r.DurationMs)
	return r, err
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, started_at, ended_at, questions_attempted, questions_correct, accuracy, average_response_ms, duration_ms
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sessions []SessionRecord
	for rows.Next() {
		var r SessionRecord
		if err := rows.Scan(&r.ID, &r.Mode, &r.StartedAt, &r.EndedAt, &r.QuestionsAttempted, &r.QuestionsCorrect, &r.Accuracy, &r.AverageResponseMs, &r.DurationMs); err != nil {
			return nil, err
		}
		sessions = append(sessions, r)
	}
	return sessions, rows.Err()
}

// SessionAttempts returns the attempts of a session in submission order.
func (s *Store) SessionAttempts(sessionID string) ([]AttemptRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, question_id, expression, answer_raw, answer_value, answer_type, input_method, correct, time_spent_ms, created_at
		 FROM attempts WHERE session_id = ? ORDER BY id`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var attempts []AttemptRecord
	for rows.Next() {
		var a AttemptRecord
		var correct int
		if err := rows.Scan(&a.ID, &a.SessionID, &a.QuestionID, &a.Expression, &a.AnswerRaw, &a.AnswerValue, &a.AnswerType, &a.InputMethod, &correct, &a.TimeSpentMs, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Correct = correct != 0
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// OverallStats aggregates attempt history across all sessions.
type OverallStats struct {
	Sessions      int
	Attempts      int
	Correct       int
	Accuracy      float64
	AverageTimeMs float64
}

// Stats computes lifetime aggregates.
func (s *Store) Stats() (OverallStats, error) {
	var st OverallStats
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&st.Sessions); err != nil {
		return st, err
	}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(correct), 0), COALESCE(AVG(time_spent_ms), 0) FROM attempts`,
	).Scan(&st.Attempts, &st.Correct, &st.AverageTimeMs)
	if err != nil {
		return st, err
	}
	if st.Attempts > 0 {
		st.Accuracy = float64(st.Correct) / float64(st.Attempts)
	}
	return st, nil
}
