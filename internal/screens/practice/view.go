package practice

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/sjoshi/digitdrill/internal/ui/components"
	"github.com/sjoshi/digitdrill/internal/ui/layout"
	"github.com/sjoshi/digitdrill/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.confirmQuit {
		return s.renderQuitConfirm(width, height)
	}
	if s.paused {
		return layout.Center(theme.Title.Render("Paused")+"\n\n"+theme.Hint.Render("Press P to resume"), width, height)
	}
	if s.feedback != nil {
		return s.renderFeedback(width, height)
	}
	if s.current == nil {
		return layout.Center(theme.Hint.Render("Loading..."), width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *PracticeScreen) renderQuestion(width, height int) string {
	question := theme.Question.Render(s.opts.Plugin.RenderQuestion(s.current))

	card := theme.Card.Width(min(width-4, 44)).Render(
		question + "\n\n" + s.field.View(),
	)

	parts := card

	if s.hintText != "" {
		parts += "\n\n" + theme.Hint.Render("Hint: "+s.hintText)
	}

	if len(s.opts.Pool) > 0 {
		bar := components.ProgressBar{
			Label:   "Progress",
			Percent: float64(s.summary.QuestionsAttempted) / float64(len(s.opts.Pool)),
			Width:   min(width-8, 40),
		}
		parts += "\n\n" + bar.View()
	}

	elapsed := s.engine.CurrentQuestionTime()
	parts += "\n" + theme.Hint.Render(fmt.Sprintf("%.0fs on this question", elapsed.Seconds()))

	return layout.Center(parts, width, height)
}

func (s *PracticeScreen) renderFeedback(width, height int) string {
	var banner string
	if s.feedback.Correct {
		banner = theme.Correct.Render("✓ Correct!")
	} else {
		banner = theme.Incorrect.Render("✗ Not quite")
		// The screen keeps the answered question until the next
		// questionMsg replaces it.
		if s.current != nil {
			banner += "\n\n" + theme.Body.Render(s.opts.Plugin.Explanation(s.current))
		}
	}
	return layout.Center(banner, width, height)
}

func (s *PracticeScreen) renderQuitConfirm(width, height int) string {
	msg := theme.Title.Render("End this session?") + "\n\n" +
		theme.Body.Render("Progress so far will be saved.") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("[Y] yes   [N] no")
	return layout.Center(msg, width, height)
}
