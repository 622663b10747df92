package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if len(m.items) == 0 {
		t.Fatal("menu should list registered games")
	}

	next, _ := m.Update(keyMsg("up"))
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top", m.cursor)
	}

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(MenuModel)
	if m.Selected() == nil || cmd == nil {
		t.Fatal("enter should select a game and leave the menu")
	}
	if m.Selected().GameID != m.items[0].GameID {
		t.Errorf("selected %q", m.Selected().GameID)
	}
}

func TestMenuScoreboardKey(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(keyMsg("tab"))
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestMenuShowsBestResult(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveResult(storage.Result{GameID: "stub", Score: 5}) //nolint:errcheck

	m := NewMenuModel(store, core.DefaultConfig())
	if !strings.Contains(m.View(), "best: 5") {
		t.Error("menu should show this session's best result")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("a\nbbb", 5); got != "  a\n bbb" {
		t.Errorf("centerText = %q", got)
	}
}

func TestScoreboardLoadsResults(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveResult(storage.Result{GameID: "stub", Score: 3, Moves: 4, Won: true}) //nolint:errcheck

	sb := NewScoreboardModel(store, 100, 30)
	for i, g := range sb.games {
		if g.ID == "stub" {
			sb.gameCursor = i
			sb.loadResults(g.ID)
		}
	}

	if len(sb.results) != 1 {
		t.Fatalf("results = %d, expected 1", len(sb.results))
	}
	if !strings.Contains(sb.statsLine(), "Played: 1") {
		t.Errorf("statsLine() = %q", sb.statsLine())
	}
}
