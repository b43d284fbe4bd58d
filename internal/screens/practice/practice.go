package practice

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/engine"
	"github.com/sjoshi/digitdrill/internal/input"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/router"
	"github.com/sjoshi/digitdrill/internal/screen"
	"github.com/sjoshi/digitdrill/internal/screens/summary"
	sess "github.com/sjoshi/digitdrill/internal/session"
	"github.com/sjoshi/digitdrill/internal/store"
	"github.com/sjoshi/digitdrill/internal/ui/components"
	"github.com/sjoshi/digitdrill/internal/ui/layout"
)

const clockInterval = 500 * time.Millisecond

// eventBuffer bounds the engine-to-UI channel. Engine callbacks must
// never block, so overflow events are dropped with a warning.
const eventBuffer = 64

// Options carries the dependencies for a practice session screen.
type Options struct {
	Mode     engine.Mode
	Plugin   domain.Plugin
	Pool     []problemgen.Question
	Store    *store.Store
	Duration time.Duration
	Logger   *slog.Logger
}

// PracticeScreen drives an engine session. Engine events arrive on a
// channel and are re-emitted as Bubble Tea messages.
type PracticeScreen struct {
	opts     Options
	engine   *engine.Engine
	keyboard *input.Keyboard
	recorder *store.SessionRecorder
	events   chan tea.Msg
	log      *slog.Logger

	field       components.TextInput
	current     *problemgen.Question
	summary     sess.Summary
	feedback    *answerMsg
	hintText    string
	hintStage   int
	paused      bool
	confirmQuit bool
	done        bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.ScoreProvider = (*PracticeScreen)(nil)

// New builds the screen and its engine. The engine is not started until
// Init runs.
func New(opts Options) *PracticeScreen {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &PracticeScreen{
		opts:     opts,
		keyboard: input.NewKeyboard(),
		events:   make(chan tea.Msg, eventBuffer),
		log:      opts.Logger.With("component", "practice"),
		field:    components.NewTextInput("Your answer...", true, 12),
	}

	listeners := engine.Listeners{
		OnQuestionChange:  func(q *problemgen.Question) { s.emit(questionMsg{Question: q}) },
		OnAnswerSubmit:    func(a sess.Answer, correct bool) { s.emit(answerMsg{Answer: a, Correct: correct}) },
		OnProgressUpdate:  func(sm sess.Summary) { s.emit(progressMsg{Summary: sm}) },
		OnSessionComplete: func(sm sess.Summary) { s.emit(completeMsg{Summary: sm}) },
	}
	if opts.Store != nil {
		s.recorder = store.NewSessionRecorder(opts.Store, opts.Logger)
		listeners = s.recorder.Wrap(listeners)
	}

	s.engine = engine.New(engine.Config{
		Mode:          opts.Mode,
		Plugin:        opts.Plugin,
		Input:         s.keyboard,
		Listeners:     listeners,
		TimedDuration: opts.Duration,
		Logger:        opts.Logger,
	}, opts.Pool)

	return s
}

func (s *PracticeScreen) emit(msg tea.Msg) {
	select {
	case s.events <- msg:
	default:
		s.log.Warn("event dropped", "reason", "ui channel full")
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	s.engine.Start()
	if s.recorder != nil {
		s.recorder.Begin(s.engine.SessionID(), string(s.opts.Mode), time.Now())
	}
	return tea.Batch(s.waitForEvent(), s.tick(), s.field.Init())
}

func (s *PracticeScreen) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-s.events
	}
}

func (s *PracticeScreen) tick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (s *PracticeScreen) Title() string {
	return "Practice · " + string(s.opts.Mode)
}

// Score feeds the header counters.
func (s *PracticeScreen) Score() (int, int) {
	return s.summary.QuestionsCorrect, s.summary.QuestionsAttempted
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.paused {
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "H", Description: "Hint"},
	}
	if s.opts.Mode.AllowsSkip() {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Skip"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "P", Description: "Pause"},
		layout.KeyHint{Key: "Esc", Description: "Quit"},
	)
	return hints
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionMsg:
		s.current = msg.Question
		s.feedback = nil
		s.hintText = ""
		s.hintStage = 0
		s.field.Reset()
		return s, s.waitForEvent()

	case answerMsg:
		s.feedback = &msg
		s.field.Submit(msg.Correct)
		return s, s.waitForEvent()

	case progressMsg:
		s.summary = msg.Summary
		return s, s.waitForEvent()

	case completeMsg:
		s.done = true
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.Summary, string(s.opts.Mode))}
		}

	case clockTickMsg:
		if s.done {
			return s, nil
		}
		return s, s.tick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			s.engine.Stop()
			return s, nil
		case "n", "N", "esc":
			s.confirmQuit = false
			if s.paused {
				return s, nil
			}
			s.engine.Resume()
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		s.engine.Pause()
		return s, nil
	case "p", "P":
		if s.paused {
			s.paused = false
			s.engine.Resume()
		} else {
			s.paused = true
			s.engine.Pause()
		}
		return s, nil
	}

	if s.paused {
		return s, nil
	}

	switch key {
	case "enter":
		s.submitAnswer()
		return s, nil
	case "h", "H":
		s.requestHint()
		return s, nil
	case "s", "S":
		if s.opts.Mode.AllowsSkip() {
			s.engine.SkipQuestion()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	return s, cmd
}

// submitAnswer replays the visible buffer through the keyboard handler,
// which parses and forwards it to the engine. The handler's enable gate
// still applies: a submit between questions is dropped.
func (s *PracticeScreen) submitAnswer() {
	value := s.field.Value()
	if value == "" {
		return
	}
	s.keyboard.Clear()
	for _, r := range value {
		s.keyboard.Type(r)
	}
	s.keyboard.Submit()
}

func (s *PracticeScreen) requestHint() {
	if s.current == nil {
		return
	}
	s.hintStage++
	s.hintText = s.opts.Plugin.Hint(s.current, s.hintStage)
}
