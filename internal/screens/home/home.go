package home

import (
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/engine"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/router"
	"github.com/sjoshi/digitdrill/internal/screen"
	"github.com/sjoshi/digitdrill/internal/screens/practice"
	"github.com/sjoshi/digitdrill/internal/store"
	"github.com/sjoshi/digitdrill/internal/ui/components"
	"github.com/sjoshi/digitdrill/internal/ui/layout"
	"github.com/sjoshi/digitdrill/internal/ui/theme"
)

// Options carries the shared dependencies handed to each session.
type Options struct {
	Plugin    domain.Plugin
	Generator *problemgen.Generator
	Store     *store.Store
	PoolSize  int
	Duration  time.Duration
	Logger    *slog.Logger
}

// HomeScreen is the mode selection menu.
type HomeScreen struct {
	opts Options
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with one menu entry per practice mode.
func New(opts Options) *HomeScreen {
	s := &HomeScreen{opts: opts}

	items := make([]components.MenuItem, 0, len(engine.Modes())+1)
	for _, mode := range engine.Modes() {
		mode := mode
		items = append(items, components.MenuItem{
			Label:  modeLabel(mode),
			Action: func() tea.Cmd { return s.startSession(mode) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	s.menu = components.NewMenu(items)
	return s
}

func modeLabel(mode engine.Mode) string {
	switch mode {
	case engine.ModeLearn:
		return "Learn        · work through every question in order"
	case engine.ModePractice:
		return "Practice     · random questions until mastery"
	case engine.ModeTimed:
		return "Timed        · beat the clock"
	case engine.ModeAccuracy:
		return "Accuracy     · precision over speed"
	case engine.ModeFluency:
		return "Fluency      · adaptive drills, spoken answers"
	case engine.ModeAssessment:
		return "Assessment   · measure your level"
	}
	return string(mode)
}

func (s *HomeScreen) startSession(mode engine.Mode) tea.Cmd {
	pool := s.opts.Generator.GenerateN(s.opts.PoolSize)
	ps := practice.New(practice.Options{
		Mode:     mode,
		Plugin:   s.opts.Plugin,
		Pool:     pool,
		Store:    s.opts.Store,
		Duration: s.opts.Duration,
		Logger:   s.opts.Logger,
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: ps}
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("DigitDrill") + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("%d questions per session", s.opts.PoolSize)) + "\n\n"

	return layout.Center(title+s.menu.View(), width, height)
}
