package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"pronoms/internal/game"
	"pronoms/internal/router"
	"pronoms/internal/screen"
)

type doneScreen struct{}

func (doneScreen) Init() tea.Cmd                             { return nil }
func (d doneScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return d, nil }
func (doneScreen) View(int, int) string                      { return "" }
func (doneScreen) Title() string                             { return "done" }

func completedState() *game.State {
	return &game.State{
		Phase:      game.PhaseComplete,
		SessionID:  "sess-1",
		TotalItems: 3,
		Attempts:   map[int]int{1: 1, 2: 4, 3: 2},
		CreatedOn:  "2026-03-14",
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(completedState(), nil)
	view := s.View(80, 24)

	for _, want := range []string{"Frase 1: 1 intent", "Frase 2: 4 intents", "Total d'intents: 7"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_RestartReplaces(t *testing.T) {
	s := New(completedState(), func() screen.Screen { return doneScreen{} })

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want ReplaceScreenMsg", msg)
	}
	if _, ok := rep.Screen.(doneScreen); !ok {
		t.Errorf("replacement = %T, want doneScreen", rep.Screen)
	}
}

func TestSummaryScreen_EscPops(t *testing.T) {
	s := New(completedState(), nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
