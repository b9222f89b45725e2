// Package play is the main game screen: it drives the session state
// machine against the active provider and persists a snapshot after
// every transition that changes it.
package play

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"pronoms/internal/game"
	"pronoms/internal/provider"
	"pronoms/internal/router"
	"pronoms/internal/screen"
	"pronoms/internal/screens/summary"
	"pronoms/internal/store"
	"pronoms/internal/ui/components"
	"pronoms/internal/ui/layout"
)

const requestTimeout = 20 * time.Second

// PlayScreen runs a game session.
type PlayScreen struct {
	prov provider.Provider
	repo store.SavedGameRepo

	state   *game.State
	input   components.TextInput
	loading bool
	busy    bool
	loadErr string
	errMsg  string

	// forceNew skips the saved-game restore, for same-day restarts.
	forceNew bool

	now func() time.Time
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.HeaderInfoProvider = (*PlayScreen)(nil)

// New creates a PlayScreen that restores today's saved session when one
// exists.
func New(prov provider.Provider, repo store.SavedGameRepo) *PlayScreen {
	return &PlayScreen{
		prov:    prov,
		repo:    repo,
		input:   components.NewTextInput("Escriu la frase amb pronoms...", 120),
		loading: true,
		now:     time.Now,
	}
}

// NewForced creates a PlayScreen that always starts a fresh session.
func NewForced(prov provider.Provider, repo store.SavedGameRepo) *PlayScreen {
	p := New(prov, repo)
	p.forceNew = true
	return p
}

func (p *PlayScreen) Init() tea.Cmd {
	return tea.Batch(p.input.Init(), p.load())
}

func (p *PlayScreen) Title() string {
	return "Joc dels Pronoms Febles"
}

func (p *PlayScreen) HeaderInfo() string {
	if p.state == nil || p.state.Phase != game.PhasePlaying {
		return ""
	}
	if p.state.TotalItems > 0 {
		return fmt.Sprintf("Frase %d de %d · Intents: %d",
			p.state.CurrentItem.ID, p.state.TotalItems, p.state.CurrentAttempts())
	}
	return fmt.Sprintf("Frase %d · Intents: %d",
		p.state.CurrentItem.ID, p.state.CurrentAttempts())
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.loadErr != "" {
		return []layout.KeyHint{
			{Key: "enter", Description: "reintentar"},
			{Key: "esc", Description: "tornar"},
		}
	}
	if p.state == nil {
		return nil
	}
	switch p.state.Feedback {
	case game.FeedbackCorrect:
		return []layout.KeyHint{{Key: "enter", Description: "següent frase"}}
	case game.FeedbackIncorrect, game.FeedbackSolution:
		return []layout.KeyHint{{Key: "enter", Description: "tornar-ho a provar"}}
	}

	hints := []layout.KeyHint{{Key: "enter", Description: "comprovar"}}
	if p.hinter() != nil && p.state.CanRequestHint() {
		hints = append(hints, layout.KeyHint{Key: "ctrl+e", Description: "pista"})
	}
	if p.revealer() != nil {
		hints = append(hints, layout.KeyHint{Key: "ctrl+r", Description: "solució"})
	}
	hints = append(hints, layout.KeyHint{Key: "esc", Description: "sortir"})
	return hints
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return p.handleLoaded(msg)
	case submitResultMsg:
		return p.handleSubmitResult(msg)
	case hintResultMsg:
		return p.handleHintResult(msg)
	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// load restores today's saved session, or fetches a fresh one. A stale
// (previous-day) or malformed snapshot is ignored, never an error.
func (p *PlayScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		today := game.Today(p.now())

		if !p.forceNew {
			if saved, err := p.repo.Load(ctx); err == nil && saved != nil {
				if st := game.Restore(saved.State, saved.Date, today); st != nil {
					if r, ok := p.prov.(provider.Resumer); ok {
						if err := r.Resume(st.SessionID, st.CurrentItem); err == nil {
							return loadedMsg{State: st}
						}
					} else {
						return loadedMsg{State: st}
					}
				}
			}
		}

		res, err := p.prov.FetchNext(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{State: game.NewState(*res, today)}
	}
}

func (p *PlayScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	p.loading = false
	if msg.Err != nil {
		p.loadErr = friendlyError(msg.Err)
		return p, nil
	}
	p.loadErr = ""
	p.state = msg.State
	p.persist()
	return p, nil
}

func (p *PlayScreen) handleSubmitResult(msg submitResultMsg) (screen.Screen, tea.Cmd) {
	p.busy = false
	p.input.Unlock()

	if msg.Err != nil {
		// The attempt stays counted; only the grading was lost.
		p.errMsg = friendlyError(msg.Err)
		return p, nil
	}

	p.state.ApplyResult(*msg.Res)
	p.input.Submit(msg.Res.Correct)

	if p.state.Phase == game.PhaseComplete {
		// The day is done; a relaunch should not restore a finished
		// session.
		_ = p.repo.Clear(context.Background())
		final := p.state
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(final, p.restartFactory())}
		}
	}

	p.persist()
	return p, nil
}

func (p *PlayScreen) handleHintResult(msg hintResultMsg) (screen.Screen, tea.Cmd) {
	p.busy = false
	p.input.Unlock()

	if msg.Err != nil {
		p.errMsg = friendlyError(msg.Err)
		return p, nil
	}

	p.state.ApplyHint(*msg.Res)
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if p.loading || p.busy {
		return p, nil
	}

	if p.loadErr != "" {
		switch msg.String() {
		case "enter", "r":
			p.loadErr = ""
			p.loading = true
			return p, p.load()
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}

	if p.state == nil {
		return p, nil
	}

	switch p.state.Feedback {
	case game.FeedbackCorrect:
		if msg.String() == "enter" {
			p.state.Advance()
			p.input.Reset()
			p.errMsg = ""
			p.persist()
		}
		return p, nil

	case game.FeedbackIncorrect, game.FeedbackSolution:
		if msg.String() == "enter" {
			p.state.Retry()
			p.input.Reset()
			p.errMsg = ""
		}
		return p, nil
	}

	switch msg.String() {
	case "enter":
		return p.submit()
	case "ctrl+e":
		return p.requestHint()
	case "ctrl+r":
		return p.revealSolution()
	case "esc":
		// Progress is already persisted; just leave.
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	sub, ok := p.state.BeginSubmit(p.input.Value())
	if !ok {
		return p, nil
	}

	p.persist()
	p.busy = true
	p.errMsg = ""
	p.input.Lock()

	req := provider.SubmitRequest{
		SessionID: sub.SessionID,
		ItemID:    sub.ItemID,
		Answer:    sub.Answer,
		Attempts:  sub.Attempts,
	}
	return p, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := p.prov.SubmitAnswer(ctx, req)
		if err != nil {
			return submitResultMsg{Err: err}
		}
		return submitResultMsg{Res: res}
	}
}

func (p *PlayScreen) requestHint() (screen.Screen, tea.Cmd) {
	h := p.hinter()
	if h == nil || !p.state.CanRequestHint() {
		return p, nil
	}

	p.busy = true
	p.errMsg = ""
	p.input.Lock()

	req := provider.HintRequest{
		ItemID: p.state.CurrentItem.ID,
		Cursor: p.state.Hints.Cursor,
	}
	return p, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := h.RequestHint(ctx, req)
		if err != nil {
			return hintResultMsg{Err: err}
		}
		return hintResultMsg{Res: res}
	}
}

func (p *PlayScreen) revealSolution() (screen.Screen, tea.Cmd) {
	r := p.revealer()
	if r == nil || !p.state.AwaitingAnswer() {
		return p, nil
	}
	short, explanation, ok := r.Solution(p.state.CurrentItem.ID)
	if !ok {
		return p, nil
	}
	p.state.RevealSolution(short, explanation)
	return p, nil
}

func (p *PlayScreen) hinter() provider.Hinter {
	if h, ok := p.prov.(provider.Hinter); ok {
		return h
	}
	return nil
}

func (p *PlayScreen) revealer() provider.Revealer {
	if r, ok := p.prov.(provider.Revealer); ok {
		return r
	}
	return nil
}

func (p *PlayScreen) restartFactory() func() screen.Screen {
	prov, repo := p.prov, p.repo
	return func() screen.Screen {
		return NewForced(prov, repo)
	}
}

// persist writes the current snapshot, keyed to the session's creation
// date. Persistence failures never interrupt play.
func (p *PlayScreen) persist() {
	if p.state == nil || p.state.Phase != game.PhasePlaying {
		return
	}
	data, err := p.state.MarshalSnapshot()
	if err != nil {
		return
	}
	_ = p.repo.Save(context.Background(), &store.SavedGame{
		State: data,
		Date:  p.state.CreatedOn,
	})
}

// friendlyError maps provider errors to player-facing text.
func friendlyError(err error) string {
	var unreachable *provider.UnreachableError
	if errors.As(err, &unreachable) {
		return "No s'ha pogut connectar amb el servidor. Comprova la connexió."
	}
	var server *provider.ServerError
	if errors.As(err, &server) {
		return fmt.Sprintf("El servidor ha respost amb un error (%d).", server.StatusCode)
	}
	var validation *provider.ValidationError
	if errors.As(err, &validation) {
		return "La resposta del servidor no és vàlida."
	}
	return "S'ha produït un error inesperat."
}
