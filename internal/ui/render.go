package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizpad/internal/app"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
	colorCorrect = lipgloss.Color("34")
	colorWrong   = lipgloss.Color("160")
	colorNotice  = lipgloss.Color("214")
)

func renderQuiz(m Model) string {
	view := m.workspace.Session().View()
	if view.Empty {
		return lipgloss.JoinVertical(lipgloss.Left,
			stylize("Welcome to Quiz Generator", m.opts.NoColor, colorTitle, true),
			"",
			"Press y to copy a quiz prompt for your LLM, then p to paste the JSON response.",
			"",
			renderFooter(m),
		)
	}

	lines := []string{
		renderHeader(view, m.opts.NoColor),
		"",
		renderQuestionTitle(view, m.opts.NoColor),
		wrap(view.Question.Text, m.width),
		"",
	}
	lines = append(lines, renderChoices(view, m.opts.NoColor)...)
	if view.Answered {
		lines = append(lines, "",
			stylize("Explanation:", m.opts.NoColor, colorMuted, true),
			wrap(view.Question.Explanation, m.width),
		)
	}
	lines = append(lines, "", renderNavigation(view, m.opts.NoColor), renderFooter(m))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHeader(view app.View, noColor bool) string {
	position := fmt.Sprintf("Question %d of %d", view.Position, view.Total)
	score := fmt.Sprintf("Score: %d/%d", view.Score, view.Total)
	scoreColor := colorMuted
	if view.Perfect {
		scoreColor = colorCorrect
	}
	return stylize("Quiz Questions", noColor, colorTitle, true) + "  " +
		stylize(position, noColor, colorMuted, false) + "  " +
		stylize(score, noColor, scoreColor, true)
}

func renderQuestionTitle(view app.View, noColor bool) string {
	title := stylize(fmt.Sprintf("Question %d", view.Position), noColor, colorTitle, true)
	if !view.Answered {
		return title
	}
	if view.Correct {
		return title + "  " + stylize("[Correct]", noColor, colorCorrect, true)
	}
	return title + "  " + stylize("[Wrong]", noColor, colorWrong, true)
}

func renderChoices(view app.View, noColor bool) []string {
	lines := make([]string, 0, len(view.Question.Choices))
	for i, choice := range view.Question.Choices {
		marker := " "
		if view.Selected == i {
			marker = ">"
		}
		line := fmt.Sprintf("%s %c. %s", marker, rune('A'+i), choice)
		switch {
		case view.Answered && i == view.Question.CorrectIndex:
			line = stylize(line+"  ✓", noColor, colorCorrect, false)
		case view.Answered && i == view.Selected:
			line = stylize(line+"  ✗", noColor, colorWrong, false)
		}
		lines = append(lines, line)
	}
	return lines
}

func renderNavigation(view app.View, noColor bool) string {
	parts := make([]string, 0, 3)
	if view.CanPrevious {
		parts = append(parts, "← Previous")
	}
	if view.CanNext {
		parts = append(parts, "Next →")
	}
	if view.CanRestart {
		parts = append(parts, "r Restart Quiz")
	}
	return stylize(strings.Join(parts, "   "), noColor, colorMuted, false)
}

func renderFooter(m Model) string {
	lines := make([]string, 0, 2)
	if m.feedback != "" {
		lines = append(lines, stylize(m.feedback, m.opts.NoColor, colorNotice, false))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func renderPaste(m Model) string {
	lines := []string{
		stylize("Paste Quiz JSON", m.opts.NoColor, colorTitle, true),
		"",
		m.paste.View(),
	}
	if m.loadErr != "" {
		lines = append(lines, stylize(m.loadErr, m.opts.NoColor, colorWrong, false))
	}
	lines = append(lines, stylize("ctrl+s load • esc cancel", m.opts.NoColor, colorMuted, false))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// wrap soft-wraps text to the terminal width when it is known.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color, bold bool) string {
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}
