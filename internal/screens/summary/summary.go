// Package summary shows the end-of-session recap with per-sentence
// attempt counts.
package summary

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pronoms/internal/game"
	"pronoms/internal/router"
	"pronoms/internal/screen"
	"pronoms/internal/ui/layout"
	"pronoms/internal/ui/theme"
)

// SummaryScreen recaps a completed session.
type SummaryScreen struct {
	state   *game.State
	restart func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen over a completed session. The restart
// factory produces a fresh play screen for a same-day rematch.
func New(state *game.State, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{state: state, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Resum"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "tornar a jugar"},
		{Key: "esc", Description: "inici"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		if s.restart != nil {
			fresh := s.restart()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: fresh}
			}
		}
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Enhorabona! Has completat totes les frases!")

	var ids []int
	for id := range s.state.Attempts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	rowStyle := lipgloss.NewStyle().Foreground(theme.Text)
	var rows []string
	total := 0
	for _, id := range ids {
		n := s.state.Attempts[id]
		total += n
		label := "intents"
		if n == 1 {
			label = "intent"
		}
		rows = append(rows, rowStyle.Render(fmt.Sprintf("Frase %d: %d %s", id, n, label)))
	}
	rows = append(rows, "", lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Total d'intents: %d", total)))

	card := theme.Card.Render(strings.Join(rows, "\n"))

	footer := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Torna demà per a una nova partida!")

	content := strings.Join([]string{title, "", card, "", footer}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
