package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"pronoms/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPushAndPop(t *testing.T) {
	s1 := &stubScreen{title: "start"}
	r := New(s1)

	s2 := &stubScreen{title: "play"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "play" {
		t.Errorf("active = %q, want play", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("Init() did not run on pushed screen")
	}

	r.Pop()
	if r.Depth() != 1 || r.Active().Title() != "start" {
		t.Errorf("after pop: depth %d, active %q", r.Depth(), r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "start"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "start"})
	r.Push(&stubScreen{title: "play"})

	summary := &stubScreen{title: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Depth() != 2 {
		t.Errorf("depth = %d after replace, want 2", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("active = %q, want summary", r.Active().Title())
	}
	if !summary.initRan {
		t.Error("Init() did not run via ReplaceScreenMsg")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "start"})

	play := &stubScreen{title: "play"}
	r.Update(PushScreenMsg{Screen: play})
	if r.Active().Title() != "play" {
		t.Fatalf("active = %q after push msg", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "start" {
		t.Fatalf("active = %q after pop msg", r.Active().Title())
	}
}
