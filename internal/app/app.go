package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sjoshi/digitdrill/internal/engine"
	"github.com/sjoshi/digitdrill/internal/router"
	"github.com/sjoshi/digitdrill/internal/screen"
	"github.com/sjoshi/digitdrill/internal/screens/home"
	"github.com/sjoshi/digitdrill/internal/screens/practice"
	"github.com/sjoshi/digitdrill/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel builds the screen stack. With a start mode, a session is
// pushed on top of home so finishing it lands back on the menu.
func newAppModel(opts home.Options, startMode engine.Mode) AppModel {
	r := router.New(home.New(opts))

	var initCmd tea.Cmd
	if startMode != "" {
		pool := opts.Generator.GenerateN(opts.PoolSize)
		initCmd = r.Push(practice.New(practice.Options{
			Mode:     startMode,
			Plugin:   opts.Plugin,
			Pool:     pool,
			Store:    opts.Store,
			Duration: opts.Duration,
			Logger:   opts.Logger,
		}))
	}

	return AppModel{
		router:  r,
		initCmd: initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	correct, attempted := 0, 0
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.ScoreProvider); ok {
			correct, attempted = sp.Score()
		}
	}

	header := layout.RenderHeader(title, correct, attempted, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. An empty startMode opens the home
// menu; otherwise the session begins immediately.
func Run(opts home.Options, startMode engine.Mode) error {
	p := tea.NewProgram(newAppModel(opts, startMode))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
