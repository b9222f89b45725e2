// Package instructions shows the how-to-play text.
package instructions

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pronoms/internal/router"
	"pronoms/internal/screen"
	"pronoms/internal/ui/layout"
	"pronoms/internal/ui/theme"
)

// InstructionsScreen is a static help screen. Any key returns to the
// previous screen.
type InstructionsScreen struct{}

var _ screen.Screen = (*InstructionsScreen)(nil)
var _ screen.KeyHintProvider = (*InstructionsScreen)(nil)

// New creates an InstructionsScreen.
func New() *InstructionsScreen {
	return &InstructionsScreen{}
}

func (i *InstructionsScreen) Init() tea.Cmd {
	return nil
}

func (i *InstructionsScreen) Title() string {
	return "Com es juga?"
}

func (i *InstructionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "qualsevol tecla", Description: "tornar"},
	}
}

func (i *InstructionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return i, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return i, nil
}

func (i *InstructionsScreen) View(width, height int) string {
	head := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	steps := []string{
		head.Render("Passos"),
		body.Render("1. Llegeix la frase amb els complements destacats."),
		body.Render("2. Reescriu-la substituint els complements pels"),
		body.Render("   pronoms febles corresponents."),
		body.Render("3. Prem enter per comprovar la resposta."),
		body.Render("4. Si falles, torna-ho a provar o demana una pista."),
	}

	example := []string{
		head.Render("Exemple"),
		body.Render("Frase:    Dóna la pilota a mi"),
		body.Render("Resposta: Dóna-me-la"),
	}

	tips := []string{
		head.Render("Consells"),
		dim.Render("• Fixa't en el gènere i el nombre del complement."),
		dim.Render("• L'ordre dels pronoms combinats importa."),
		dim.Render("• Recorda els guionets i els apòstrofs."),
	}

	levels := []string{
		head.Render("Nivells"),
		lipgloss.NewStyle().Foreground(theme.DifficultyColor("easy")).Render("Fàcil") +
			dim.Render("   un sol pronom"),
		lipgloss.NewStyle().Foreground(theme.DifficultyColor("medium")).Render("Mitjà") +
			dim.Render("   pronoms combinats"),
		lipgloss.NewStyle().Foreground(theme.DifficultyColor("hard")).Render("Difícil") +
			dim.Render(" combinacions i apostrofació"),
	}

	sections := []string{
		strings.Join(steps, "\n"),
		strings.Join(example, "\n"),
	}
	// On short terminals keep only the essentials so the card fits.
	if height >= 26 {
		sections = append(sections, strings.Join(tips, "\n"))
	}
	sections = append(sections, strings.Join(levels, "\n"))

	content := theme.Card.Render(strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
