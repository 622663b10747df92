package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Toast display
const (
	toastTTL  = 2500 * time.Millisecond
	maxToasts = 3
)

var toastStyles = map[core.Severity]lipgloss.Style{
	core.SeverityDefault: lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("238")).
		Padding(0, 1),
	core.SeveritySuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("42")).
		Padding(0, 1),
	core.SeverityDestructive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("160")).
		Padding(0, 1),
}

type toast struct {
	note core.Notification
	ttl  time.Duration
}

// Toaster keeps the notifications currently on display. Each one expires
// after a fixed time; only the newest few are kept.
type Toaster struct {
	toasts []toast
}

// Push shows a notification.
func (t *Toaster) Push(n core.Notification) {
	t.toasts = append(t.toasts, toast{note: n, ttl: toastTTL})
	if len(t.toasts) > maxToasts {
		t.toasts = t.toasts[len(t.toasts)-maxToasts:]
	}
}

// Advance ages every toast by dt and drops the expired ones.
func (t *Toaster) Advance(dt time.Duration) {
	kept := t.toasts[:0]
	for _, ts := range t.toasts {
		ts.ttl -= dt
		if ts.ttl > 0 {
			kept = append(kept, ts)
		}
	}
	t.toasts = kept
}

// Len returns the number of toasts on display.
func (t *Toaster) Len() int {
	return len(t.toasts)
}

// Latest returns the newest toast still on display.
func (t *Toaster) Latest() (core.Notification, bool) {
	if len(t.toasts) == 0 {
		return core.Notification{}, false
	}
	return t.toasts[len(t.toasts)-1].note, true
}

// View renders the newest toast as a single styled line no wider than
// width, or "" when there is none.
func (t *Toaster) View(width int) string {
	n, ok := t.Latest()
	if !ok {
		return ""
	}
	style, ok := toastStyles[n.Severity]
	if !ok {
		style = toastStyles[core.SeverityDefault]
	}
	text := n.Title
	if n.Description != "" {
		text += " " + n.Description
	}
	return style.MaxWidth(width).Render(text)
}
