package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"pronoms/internal/game"
	"pronoms/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	switch {
	case p.loading:
		return p.renderLoading(width, height)
	case p.loadErr != "":
		return p.renderLoadError(width, height)
	case p.state == nil:
		return ""
	}
	return p.renderQuestion(width, height)
}

func (p *PlayScreen) renderLoading(width, height int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Carregant el joc...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func (p *PlayScreen) renderLoadError(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("No s'ha pogut començar")

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(p.loadErr)

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Prem enter per reintentar, esc per tornar")

	card := theme.Card.BorderForeground(theme.Error).
		Render(title + "\n\n" + body + "\n\n" + hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (p *PlayScreen) renderQuestion(width, height int) string {
	st := p.state
	var b strings.Builder

	// Difficulty badge and progress line.
	diffStyle := lipgloss.NewStyle().
		Foreground(theme.DifficultyColor(string(st.CurrentItem.Difficulty))).
		Bold(true)
	left := "  " + diffStyle.Render(st.CurrentItem.Difficulty.Label())

	var right string
	if st.TotalItems > 0 {
		right = fmt.Sprintf("Frase %d de %d", st.CurrentItem.ID, st.TotalItems)
	} else {
		right = fmt.Sprintf("Frase %d", st.CurrentItem.ID)
	}
	right = lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	line := left
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// The sentence to transform.
	sentenceStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(sentenceStyle.Render(st.CurrentItem.FullForm))
	b.WriteString("\n\n")

	// Input line.
	inputLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(p.input.View())
	b.WriteString(inputLine)
	b.WriteString("\n")

	if p.busy {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Comprovant..."))
		b.WriteString("\n")
	}

	if hints := p.renderHints(width); hints != "" {
		b.WriteString("\n")
		b.WriteString(hints)
	}

	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(p.errMsg))
		b.WriteString("\n")
	}

	if panel := p.renderFeedback(width); panel != "" {
		b.WriteString("\n")
		b.WriteString(panel)
	}

	attempts := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\nIntents: %d", st.CurrentAttempts()))
	b.WriteString(attempts)

	return b.String()
}

// renderHints shows the hints revealed so far for the current sentence.
func (p *PlayScreen) renderHints(width int) string {
	h := p.state.Hints
	if len(h.Revealed) == 0 {
		return ""
	}

	head := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Pistes")
	lines := []string{head}
	for i, text := range h.Revealed {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%d. %s", i+1, text)))
	}
	if h.Exhausted() {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No queden més pistes."))
	}

	block := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(block)
}

// renderFeedback shows the result panel after a graded submission or a
// revealed solution.
func (p *PlayScreen) renderFeedback(width int) string {
	st := p.state

	var lines []string
	switch st.Feedback {
	case game.FeedbackCorrect:
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("Correcte!"))
	case game.FeedbackIncorrect:
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("Incorrecte. Torna-ho a provar!"))
	case game.FeedbackSolution:
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("Solució"))
	default:
		return ""
	}

	if st.ShortForm != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(st.ShortForm))
	}
	if st.Explanation != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(st.Explanation))
	}

	switch st.Feedback {
	case game.FeedbackCorrect:
		lines = append(lines, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Prem enter per a la següent frase"))
	case game.FeedbackIncorrect, game.FeedbackSolution:
		lines = append(lines, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Prem enter per tornar-ho a provar"))
	}

	panel := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(panel)
}
