package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func TestToasterExpiry(t *testing.T) {
	var ts Toaster
	ts.Push(core.Notification{Title: "Match!", Severity: core.SeveritySuccess})

	ts.Advance(toastTTL - time.Millisecond)
	if ts.Len() != 1 {
		t.Fatal("toast expired early")
	}

	ts.Advance(time.Millisecond)
	if ts.Len() != 0 {
		t.Error("toast should expire after its TTL")
	}
	if ts.View(80) != "" {
		t.Error("empty toaster should render nothing")
	}
}

func TestToasterKeepsNewest(t *testing.T) {
	var ts Toaster
	for i := 0; i < maxToasts+2; i++ {
		ts.Push(core.Notification{Title: string(rune('A' + i))})
	}

	if ts.Len() != maxToasts {
		t.Errorf("Len() = %d, expected %d", ts.Len(), maxToasts)
	}
	latest, ok := ts.Latest()
	if !ok || latest.Title != string(rune('A'+maxToasts+1)) {
		t.Errorf("Latest() = %+v", latest)
	}
}

func TestToasterView(t *testing.T) {
	var ts Toaster
	ts.Push(core.Notification{
		Title:       "Game Over!",
		Description: "You hit a wall. Final score: 3",
		Severity:    core.SeverityDestructive,
	})

	view := ts.View(80)
	if !strings.Contains(view, "Game Over!") || !strings.Contains(view, "Final score: 3") {
		t.Errorf("View() = %q", view)
	}
}
