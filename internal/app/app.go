// Package app wires the screens, router, and frame into the root
// Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pronoms/internal/provider"
	"pronoms/internal/router"
	"pronoms/internal/screen"
	"pronoms/internal/screens/start"
	"pronoms/internal/store"
	"pronoms/internal/ui/layout"
)

// Options carries the data dependencies the screens need.
type Options struct {
	Provider   provider.Provider
	SavedGames store.SavedGameRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	startScreen := start.New(opts.Provider, opts.SavedGames)
	return AppModel{
		router: router.New(startScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Screens own esc themselves (some persist before leaving);
		// only the hard quit is global.
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
	var title, info string
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.HeaderInfoProvider); ok {
			info = hp.HeaderInfo()
		}
	}

	header := layout.RenderHeader(title, info, m.width)

	footerHints := []layout.KeyHint{
		{Key: "ctrl+c", Description: "sortir"},
	}
	if khp, ok := active.(screen.KeyHintProvider); ok {
		if hints := khp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
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

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
