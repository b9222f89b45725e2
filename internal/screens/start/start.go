// Package start is the entry screen: title, feature list, and the main
// navigation menu.
package start

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pronoms/internal/provider"
	"pronoms/internal/router"
	"pronoms/internal/screen"
	"pronoms/internal/screens/instructions"
	"pronoms/internal/screens/play"
	"pronoms/internal/store"
	"pronoms/internal/ui/components"
	"pronoms/internal/ui/layout"
	"pronoms/internal/ui/theme"
)

// StartScreen is the landing screen.
type StartScreen struct {
	menu components.Menu
	prov provider.Provider
	repo store.SavedGameRepo
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen. The provider and repo are handed through
// to the play screen when the player starts a game.
func New(prov provider.Provider, repo store.SavedGameRepo) *StartScreen {
	items := []components.MenuItem{
		{Label: "Començar a jugar", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(prov, repo)}
			}
		}},
		{Label: "Com es juga?", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: instructions.New()}
			}
		}},
		{Label: "Sortir", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &StartScreen{
		menu: components.NewMenu(items),
		prov: prov,
		repo: repo,
	}
}

func (s *StartScreen) Init() tea.Cmd {
	return nil
}

func (s *StartScreen) Title() string {
	return "Inici"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "moure"},
		{Key: "enter", Description: "seleccionar"},
		{Key: "ctrl+c", Description: "sortir"},
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *StartScreen) View(width, height int) string {
	title := theme.Title.Render("Joc dels Pronoms Febles")
	subtitle := theme.Subtitle.Render("Substitueix els complements pel pronom feble correcte")

	features := []string{
		"✓ Múltiples nivells de dificultat",
		"✓ Pistes quan et quedis encallat",
		"✓ Explicacions per a cada frase",
		"✓ El progrés es guarda durant el dia",
	}
	featStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	var featLines []string
	for _, f := range features {
		featLines = append(featLines, featStyle.Render(f))
	}

	card := theme.Card.Render(strings.Join(featLines, "\n"))

	content := strings.Join([]string{
		title,
		subtitle,
		"",
		card,
		"",
		s.menu.View(),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
