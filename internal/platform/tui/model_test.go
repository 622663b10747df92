package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets  int
	closed  bool
	inputs  []map[core.Action]bool
	state   core.GameState
	events  []core.Notification
	clicked [][2]int
}

func (g *stubGame) ID() string            { return "stub" }
func (g *stubGame) Title() string         { return "Stub" }
func (g *stubGame) Rules() []string       { return nil }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Close()                { g.closed = true }

func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	// The model reuses its frame, so keep a copy
	actions := make(map[core.Action]bool, len(in.Actions))
	for a, v := range in.Actions {
		actions[a] = v
	}
	g.inputs = append(g.inputs, actions)
	if x, y, ok := in.Clicked(); ok {
		g.clicked = append(g.clicked, [2]int{x, y})
	}
	events := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: events}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func newTestModel(t *testing.T, g *stubGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelForwardsKeys(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, keyMsg("right"))
	m = update(t, m, keyMsg("enter"))
	update(t, m, TickMsg{})

	if len(g.inputs) != 1 {
		t.Fatalf("Step called %d times, expected 1", len(g.inputs))
	}
	in := g.inputs[0]
	if !in[core.ActionRight] || !in[core.ActionSelect] {
		t.Errorf("frame = %v, expected right and select", in)
	}
}

func TestModelClearsInputAfterTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, keyMsg("r"))
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if g.inputs[1][core.ActionRestart] {
		t.Error("input leaked into the next tick")
	}
}

func TestModelForwardsClicks(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionMotion})
	update(t, m, TickMsg{})

	if len(g.clicked) != 1 || g.clicked[0] != [2]int{7, 3} {
		t.Errorf("clicks = %v, expected one at (7,3)", g.clicked)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("game reset %d times, expected only the initial reset", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelShowsToasts(t *testing.T) {
	g := &stubGame{events: []core.Notification{{Title: "Match!", Severity: core.SeveritySuccess}}}
	m := newTestModel(t, g, nil)

	m = update(t, m, TickMsg{})

	if m.toasts.Len() != 1 {
		t.Fatalf("toasts = %d, expected 1", m.toasts.Len())
	}
	if !strings.Contains(m.View(), "Match!") {
		t.Error("view should show the toast")
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := newTestModel(t, g, store)

	g.state = core.GameState{Score: 8, Moves: 11, GameOver: true, Won: true}
	for range 5 {
		m = update(t, m, TickMsg{})
	}

	results, _ := store.TopResults("stub", 10)
	if len(results) != 1 {
		t.Fatalf("saved %d results, expected 1", len(results))
	}
	if results[0].Moves != 11 || !results[0].Won {
		t.Errorf("result = %+v", results[0])
	}

	// A new game after a reset is recorded again
	g.state = core.GameState{}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 2, GameOver: true}
	update(t, m, TickMsg{})

	results, _ = store.TopResults("stub", 10)
	if len(results) != 2 {
		t.Errorf("saved %d results, expected 2", len(results))
	}
}

func TestModelBackAndQuit(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	next, cmd := m.Update(keyMsg("esc"))
	if !next.(Model).GoingBack() || cmd == nil {
		t.Error("esc should leave the game")
	}
	if !g.closed {
		t.Error("game should be closed on leave")
	}

	g2 := &stubGame{}
	m2 := newTestModel(t, g2, nil)
	next, cmd = m2.Update(keyMsg("q"))
	if next.(Model).GoingBack() || cmd == nil {
		t.Error("q should quit, not go back")
	}
	if !g2.closed {
		t.Error("game should be closed on quit")
	}
}
