package engine

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/input"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
	"github.com/sjoshi/digitdrill/internal/tracker"
)

const testFeedback = 5 * time.Millisecond

func testPool(n int) []problemgen.Question {
	qs := make([]problemgen.Question, n)
	for i := range qs {
		qs[i] = problemgen.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Type:          problemgen.TypeMath,
			CorrectAnswer: float64(2 + i),
			Content: problemgen.Content{
				Operand1:   2,
				Operand2:   i,
				Operator:   problemgen.OpAdd,
				Expression: fmt.Sprintf("2 + %d", i),
			},
		}
	}
	return qs
}

// trace collects engine events for ordering assertions.
type trace struct {
	mu        sync.Mutex
	events    []string
	questions chan *problemgen.Question
	answers   chan bool
	complete  chan session.Summary
}

func newTrace() *trace {
	return &trace{
		questions: make(chan *problemgen.Question, 64),
		answers:   make(chan bool, 64),
		complete:  make(chan session.Summary, 4),
	}
}

func (tr *trace) listeners() Listeners {
	return Listeners{
		OnQuestionChange: func(q *problemgen.Question) {
			tr.add("question:" + q.ID)
			tr.questions <- q
		},
		OnAnswerSubmit: func(a session.Answer, correct bool) {
			tr.add(fmt.Sprintf("answer:%v", correct))
			tr.answers <- correct
		},
		OnProgressUpdate: func(s session.Summary) {
			tr.add("progress")
		},
		OnSessionComplete: func(s session.Summary) {
			tr.add("complete")
			tr.complete <- s
		},
	}
}

func (tr *trace) add(e string) {
	tr.mu.Lock()
	tr.events = append(tr.events, e)
	tr.mu.Unlock()
}

func (tr *trace) log() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]string(nil), tr.events...)
}

func waitQuestion(t *testing.T, tr *trace) *problemgen.Question {
	t.Helper()
	select {
	case q := <-tr.questions:
		return q
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for question")
		return nil
	}
}

func waitComplete(t *testing.T, tr *trace) session.Summary {
	t.Helper()
	select {
	case s := <-tr.complete:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session completion")
		return session.Summary{}
	}
}

func answerValue(v float64) session.Answer {
	return session.NumberAnswer(v, fmt.Sprintf("%g", v), session.InputKeyboard)
}

func newTestEngine(t *testing.T, mode Mode, pool []problemgen.Question) (*Engine, *trace) {
	t.Helper()
	tr := newTrace()
	cfg := Config{
		Mode:             mode,
		Plugin:           domain.NewArithmetic(),
		Listeners:        tr.listeners(),
		FeedbackInterval: testFeedback,
	}
	return New(cfg, pool), tr
}

func TestEngine_CorrectAnswerSession(t *testing.T) {
	e, tr := newTestEngine(t, ModeLearn, testPool(1))

	e.Start()
	q := waitQuestion(t, tr)
	if q.ID != "q1" {
		t.Fatalf("question = %q, want q1", q.ID)
	}

	e.submit(answerValue(2)) // 2 + 0

	s := waitComplete(t, tr)
	if s.QuestionsAttempted != 1 {
		t.Errorf("QuestionsAttempted = %d, want 1", s.QuestionsAttempted)
	}
	if s.QuestionsCorrect != 1 {
		t.Errorf("QuestionsCorrect = %d, want 1", s.QuestionsCorrect)
	}
	if s.Accuracy != 1 {
		t.Errorf("Accuracy = %f, want 1", s.Accuracy)
	}
	if e.CurrentState() != StateStopped {
		t.Errorf("state = %v, want stopped", e.CurrentState())
	}

	rec := e.Session()
	if rec.ID == "" {
		t.Error("session record has no id")
	}
	if rec.EndedAt.IsZero() || rec.EndedAt.Before(rec.StartedAt) {
		t.Errorf("session times = %v..%v", rec.StartedAt, rec.EndedAt)
	}
	if len(rec.Questions) != 1 {
		t.Errorf("len(Questions) = %d, want 1", len(rec.Questions))
	}
}

func TestEngine_IncorrectAnswerSession(t *testing.T) {
	e, tr := newTestEngine(t, ModeLearn, testPool(1))

	e.Start()
	waitQuestion(t, tr)
	e.submit(answerValue(99))

	s := waitComplete(t, tr)
	if s.QuestionsCorrect != 0 {
		t.Errorf("QuestionsCorrect = %d, want 0", s.QuestionsCorrect)
	}
	if s.Accuracy != 0 {
		t.Errorf("Accuracy = %f, want 0", s.Accuracy)
	}
}

func TestEngine_EventOrdering(t *testing.T) {
	e, tr := newTestEngine(t, ModeLearn, testPool(2))

	e.Start()
	waitQuestion(t, tr)
	e.submit(answerValue(2))
	waitQuestion(t, tr)
	e.submit(answerValue(3))
	waitComplete(t, tr)

	want := []string{
		"question:q1", "answer:true", "progress",
		"question:q2", "answer:true", "progress",
		"complete",
	}
	got := tr.log()
	if len(got) != len(want) {
		t.Fatalf("event log = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event[%d] = %q, want %q (log %v)", i, got[i], want[i], got)
		}
	}
}

func TestEngine_EmptyPoolCompletesImmediately(t *testing.T) {
	e, tr := newTestEngine(t, ModeLearn, nil)

	e.Start()

	s := waitComplete(t, tr)
	if s.QuestionsAttempted != 0 || s.QuestionsCorrect != 0 {
		t.Errorf("counters = %d/%d, want zeros", s.QuestionsAttempted, s.QuestionsCorrect)
	}
	if len(tr.questions) != 0 {
		t.Error("question event fired for empty pool")
	}
}

func TestEngine_StartIsIdempotent(t *testing.T) {
	e, tr := newTestEngine(t, ModeLearn, testPool(1))

	e.Start()
	waitQuestion(t, tr)
	id := e.SessionID()

	e.Start()

	if e.SessionID() != id {
		t.Error("re-entrant Start began a new session")
	}
	if len(tr.questions) != 0 {
		t.Error("re-entrant Start emitted a question event")
	}
}

func TestEngine_StopTwiceOneCompletion(t *testing.T) {
	e, tr := newTestEngine(t, ModePractice, testPool(3))

	e.Start()
	waitQuestion(t, tr)

	e.Stop()
	e.Stop()

	waitComplete(t, tr)
	select {
	case <-tr.complete:
		t.Fatal("second completion event fired")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEngine_SkipRecordsIncorrect(t *testing.T) {
	e, tr := newTestEngine(t, ModeLearn, testPool(2))

	e.Start()
	waitQuestion(t, tr)

	e.SkipQuestion()

	select {
	case correct := <-tr.answers:
		if correct {
			t.Error("skip recorded as correct")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("skip emitted no answer event")
	}

	s := e.Summary()
	if s.QuestionsAttempted != 1 {
		t.Errorf("QuestionsAttempted = %d, want 1", s.QuestionsAttempted)
	}
	entry := s.Progress["q1"]
	if entry == nil || entry.IncorrectCount != 1 {
		t.Errorf("skip did not record an incorrect attempt: %+v", entry)
	}
	detail := s.AttemptDetails[0]
	if detail.Answer.Type != session.AnswerSkip || detail.Answer.Value != nil {
		t.Errorf("skip detail = %+v, want skip answer with nil value", detail.Answer)
	}
	if detail.TimeSpent != 0 {
		t.Errorf("skip TimeSpent = %v, want 0", detail.TimeSpent)
	}
}

func TestEngine_SkipForbiddenInAssessment(t *testing.T) {
	e, tr := newTestEngine(t, ModeAssessment, testPool(3))

	e.Start()
	waitQuestion(t, tr)

	e.SkipQuestion()

	if len(tr.answers) != 0 {
		t.Error("assessment skip emitted an answer event")
	}
	s := e.Summary()
	if s.QuestionsAttempted != 0 {
		t.Errorf("QuestionsAttempted = %d, want 0 after rejected skip", s.QuestionsAttempted)
	}
	if e.CurrentQuestion() == nil {
		t.Error("assessment skip cleared the current question")
	}
}

func TestEngine_PauseDropsInputAndResetsClock(t *testing.T) {
	e, tr := newTestEngine(t, ModeLearn, testPool(1))

	e.Start()
	waitQuestion(t, tr)

	e.Pause()
	if e.CurrentState() != StatePaused {
		t.Fatalf("state = %v, want paused", e.CurrentState())
	}
	if e.CurrentQuestionTime() != 0 {
		t.Error("CurrentQuestionTime != 0 while paused")
	}

	// Input submitted while paused is ignored.
	e.submit(answerValue(2))
	if len(tr.answers) != 0 {
		t.Error("answer accepted while paused")
	}

	e.Resume()
	if e.CurrentState() != StateRunning {
		t.Fatalf("state = %v, want running", e.CurrentState())
	}
	if e.CurrentQuestionTime() > 100*time.Millisecond {
		t.Error("question clock not reset on resume")
	}

	e.submit(answerValue(2))
	waitComplete(t, tr)
}

func TestEngine_PauseDuringFeedbackAdvancesOnResume(t *testing.T) {
	e, tr := newTestEngine(t, ModeLearn, testPool(2))
	e.cfg.FeedbackInterval = 200 * time.Millisecond

	e.Start()
	waitQuestion(t, tr)
	e.submit(answerValue(2))
	<-tr.answers

	e.Pause()
	e.Resume()

	q := waitQuestion(t, tr)
	if q.ID != "q2" {
		t.Errorf("resumed on %q, want q2", q.ID)
	}
}

type inconsistentProvider struct{}

func (p *inconsistentProvider) Initialize([]problemgen.Question) {}
func (p *inconsistentProvider) Next() *problemgen.Question      { return nil }
func (p *inconsistentProvider) HasMore() bool                   { return true }

func TestEngine_ProviderInconsistencyStopsCleanly(t *testing.T) {
	tr := newTrace()
	cfg := Config{
		Mode:             ModePractice,
		Plugin:           domain.NewArithmetic(),
		Provider:         &inconsistentProvider{},
		Listeners:        tr.listeners(),
		FeedbackInterval: testFeedback,
	}
	e := New(cfg, testPool(3))

	e.Start()

	waitComplete(t, tr)
	if e.CurrentState() != StateStopped {
		t.Errorf("state = %v, want stopped", e.CurrentState())
	}
}

type panickyPlugin struct {
	*domain.Arithmetic
}

func (p *panickyPlugin) ValidateAnswerWithQuestion(float64, *problemgen.Question) bool {
	panic("validation exploded")
}

func TestEngine_PluginPanicTreatedAsIncorrect(t *testing.T) {
	tr := newTrace()
	cfg := Config{
		Mode:             ModeLearn,
		Plugin:           &panickyPlugin{domain.NewArithmetic()},
		Listeners:        tr.listeners(),
		FeedbackInterval: testFeedback,
	}
	e := New(cfg, testPool(1))

	e.Start()
	waitQuestion(t, tr)
	e.submit(answerValue(2))

	s := waitComplete(t, tr)
	if s.QuestionsCorrect != 0 {
		t.Errorf("QuestionsCorrect = %d, want 0 after plugin fault", s.QuestionsCorrect)
	}
	if s.QuestionsAttempted != 1 {
		t.Errorf("QuestionsAttempted = %d, want 1", s.QuestionsAttempted)
	}
}

func TestEngine_ListenerPanicDoesNotCorruptState(t *testing.T) {
	tr := newTrace()
	listeners := tr.listeners()
	inner := listeners.OnQuestionChange
	listeners.OnQuestionChange = func(q *problemgen.Question) {
		inner(q)
		panic("listener exploded")
	}
	cfg := Config{
		Mode:             ModeLearn,
		Plugin:           domain.NewArithmetic(),
		Listeners:        listeners,
		FeedbackInterval: testFeedback,
	}
	e := New(cfg, testPool(1))

	e.Start()
	waitQuestion(t, tr)
	e.submit(answerValue(2))

	s := waitComplete(t, tr)
	if s.QuestionsCorrect != 1 {
		t.Errorf("QuestionsCorrect = %d, want 1 despite listener fault", s.QuestionsCorrect)
	}
}

func TestEngine_UpdateConfigRejectsStrategySwapMidSession(t *testing.T) {
	e, tr := newTestEngine(t, ModePractice, testPool(3))

	e.Start()
	waitQuestion(t, tr)

	before := e.cfg.Provider
	e.UpdateConfig(Update{Provider: &inconsistentProvider{}})
	if e.cfg.Provider != before {
		t.Error("provider swapped during running session")
	}

	e.Stop()
	waitComplete(t, tr)

	e.UpdateConfig(Update{Provider: &inconsistentProvider{}})
	if e.cfg.Provider == before {
		t.Error("provider not swapped after stop")
	}
}

func TestEngine_UpdateConfigRebindsInputHandler(t *testing.T) {
	e, tr := newTestEngine(t, ModeLearn, testPool(1))

	e.Start()
	waitQuestion(t, tr)

	k := input.NewKeyboard()
	e.UpdateConfig(Update{Input: k})

	if !k.Enabled() {
		t.Fatal("replacement handler not enabled for the current question")
	}

	k.Type('2')
	k.Submit()

	s := waitComplete(t, tr)
	if s.QuestionsCorrect != 1 {
		t.Errorf("QuestionsCorrect = %d, want 1 via rebound handler", s.QuestionsCorrect)
	}
}

func TestEngine_TimedSessionCompletes(t *testing.T) {
	tr := newTrace()
	cfg := Config{
		Mode:             ModeTimed,
		Plugin:           domain.NewArithmetic(),
		Listeners:        tr.listeners(),
		FeedbackInterval: testFeedback,
		TimedDuration:    60 * time.Millisecond,
	}
	e := New(cfg, testPool(100))

	e.Start()

	answered := 0
	for {
		select {
		case q := <-tr.questions:
			answered++
			e.submit(answerValue(q.CorrectAnswer))
		case s := <-tr.complete:
			if s.QuestionsAttempted != answered {
				t.Errorf("QuestionsAttempted = %d, want %d", s.QuestionsAttempted, answered)
			}
			if answered == 0 {
				t.Error("no questions answered before the deadline")
			}
			return
		case <-time.After(2 * time.Second):
			t.Fatal("timed session never completed")
		}
	}
}

func TestEngine_CurrentQuestionTime(t *testing.T) {
	e, tr := newTestEngine(t, ModeLearn, testPool(1))

	if e.CurrentQuestionTime() != 0 {
		t.Error("CurrentQuestionTime != 0 before start")
	}

	e.Start()
	waitQuestion(t, tr)
	time.Sleep(10 * time.Millisecond)

	if e.CurrentQuestionTime() < 10*time.Millisecond {
		t.Error("CurrentQuestionTime did not advance")
	}

	e.Stop()
	waitComplete(t, tr)
	if e.CurrentQuestionTime() != 0 {
		t.Error("CurrentQuestionTime != 0 after stop")
	}
}

func TestEngine_MasterySessionScenario(t *testing.T) {
	tr := newTrace()
	plugin := domain.NewArithmetic()
	cfg := Config{
		Mode:             ModePractice,
		Plugin:           plugin,
		Tracker:          tracker.NewMastery(plugin, 0.8, 2),
		Listeners:        tr.listeners(),
		FeedbackInterval: testFeedback,
	}
	e := New(cfg, testPool(2))

	e.Start()

	// Answer everything correctly until the tracker is satisfied.
	for {
		select {
		case q := <-tr.questions:
			e.submit(answerValue(q.CorrectAnswer))
		case s := <-tr.complete:
			if len(s.MasteryAchieved) < 2 {
				t.Errorf("MasteryAchieved = %v, want both questions", s.MasteryAchieved)
			}
			for id, entry := range s.Progress {
				if entry.Mastery < 0.8 {
					t.Errorf("%s mastery = %f, want >= 0.8", id, entry.Mastery)
				}
			}
			return
		case <-time.After(5 * time.Second):
			t.Fatal("mastery session never completed")
		}
	}
}
