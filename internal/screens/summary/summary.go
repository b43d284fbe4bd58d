package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sjoshi/digitdrill/internal/router"
	"github.com/sjoshi/digitdrill/internal/screen"
	"github.com/sjoshi/digitdrill/internal/session"
	"github.com/sjoshi/digitdrill/internal/ui/layout"
	"github.com/sjoshi/digitdrill/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary session.Summary
	mode    string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary session.Summary, mode string) *SummaryScreen {
	return &SummaryScreen{summary: summary, mode: mode}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(centered(width, theme.TextDim,
		fmt.Sprintf("%s session · %d:%02d", s.mode, mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		sum.QuestionsAttempted, sum.QuestionsCorrect, sum.Accuracy*100)
	b.WriteString(centered(width, theme.Text, statsLine))
	b.WriteString("\n")

	if sum.QuestionsAttempted > 0 {
		b.WriteString(centered(width, theme.TextDim,
			fmt.Sprintf("Average response: %.1fs", sum.AverageResponseTime/1000)))
		b.WriteString("\n")
	}

	if len(sum.MasteryAchieved) > 0 {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Success,
			fmt.Sprintf("★ Mastered %d question(s)", len(sum.MasteryAchieved))))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func centered(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}
