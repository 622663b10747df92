// Package memory implements the memory match game: find every pair of
// symbols on a shuffled board, two cards at a time.
package memory

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// Card layout on screen
const (
	cardW     = 5
	cardH     = 3
	gapX      = 1
	gapY      = 1
	hudHeight = 2
)

var configPath string

// SetConfigPath sets a custom config file for new games.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the memory Engine to the arcade: it maps input to card
// selection, tracks the cursor, and renders the board.
type Game struct {
	cfg    config.MemoryConfig
	engine *Engine
	tick   uint64
	dt     time.Duration
	cursor int

	// Size of the last rendered screen, used for mouse hit-testing
	screenW int
	screenH int
}

// New creates a new memory match game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory Match"
}

// Rules returns how to play.
func (g *Game) Rules() []string {
	return []string{
		"Flip a card to reveal its symbol",
		"Only two cards can be face-up at a time",
		"If the two cards match, they stay face-up",
		"If they don't match, they flip back",
		"Find every pair in as few moves as possible",
	}
}

// Reset starts a new game with a freshly shuffled board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadMemory(configPath)
	if err != nil {
		cfg = config.DefaultMemoryConfig()
	}
	g.cfg = cfg

	if g.engine != nil {
		g.engine.Close()
	}
	g.engine = NewEngine(cfg, runtime.Seed)
	g.dt = runtime.TickInterval()
	g.tick = 0
	g.cursor = 0
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}
	g.tick++

	if in.Has(core.ActionRestart) {
		g.engine.Restart()
		g.cursor = 0
	}

	for _, dir := range in.Directions {
		g.moveCursor(dir)
	}

	if in.Has(core.ActionSelect) {
		g.engine.Select(g.cursor)
	}

	if x, y, ok := in.Clicked(); ok {
		if id, hit := g.cardAt(x, y); hit {
			g.cursor = id
			g.engine.Select(id)
		}
	}

	g.engine.Advance(g.dt)

	return core.StepResult{State: g.State(), Events: g.engine.Events()}
}

// moveCursor moves the selection one card in the given direction,
// stopping at the board edges.
func (g *Game) moveCursor(dir core.Action) {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols
	row, col := g.cursor/cols, g.cursor%cols

	switch dir {
	case core.ActionUp:
		row--
	case core.ActionDown:
		row++
	case core.ActionLeft:
		col--
	case core.ActionRight:
		col++
	}

	row = core.Clamp(row, 0, rows-1)
	col = core.Clamp(col, 0, cols-1)
	g.cursor = row*cols + col
}

// boardOrigin returns the top-left corner of the card grid for a screen
// size, and whether the grid fits.
func (g *Game) boardOrigin(w, h int) (x, y int, fits bool) {
	boardW := g.cfg.Board.Cols*(cardW+gapX) - gapX
	boardH := g.cfg.Board.Rows*(cardH+gapY) - gapY

	// HUD, a blank line, the board, a blank line and the status line
	requiredH := hudHeight + 1 + boardH + 2
	if w < boardW+2 || h < requiredH {
		return 0, 0, false
	}
	return (w - boardW) / 2, hudHeight + 1, true
}

// cardRect returns the screen rectangle of a card.
func (g *Game) cardRect(id, originX, originY int) core.Rect {
	row, col := id/g.cfg.Board.Cols, id%g.cfg.Board.Cols
	return core.NewRect(
		originX+col*(cardW+gapX),
		originY+row*(cardH+gapY),
		cardW, cardH,
	)
}

// cardAt maps a screen position to the card drawn there.
func (g *Game) cardAt(x, y int) (int, bool) {
	ox, oy, fits := g.boardOrigin(g.screenW, g.screenH)
	if !fits {
		return 0, false
	}
	for id := 0; id < g.cfg.Cards(); id++ {
		if g.cardRect(id, ox, oy).Contains(x, y) {
			return id, true
		}
	}
	return 0, false
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW = dst.Width()
	g.screenH = dst.Height()

	snap := g.Snapshot()
	g.renderHUD(dst, snap)

	ox, oy, fits := g.boardOrigin(dst.Width(), dst.Height())
	if !fits {
		dst.DrawOverlay("Window too small", "Resize to continue", core.ColorYellow)
		return
	}

	for id, card := range snap.Cards {
		g.renderCard(dst, g.cardRect(id, ox, oy), card, id == snap.Cursor)
	}

	statusY := oy + snap.Rows*(cardH+gapY) + 1
	dst.DrawTextCenteredColor(statusY, g.statusLine(snap), core.ColorGray)

	if snap.Over {
		dst.DrawOverlay("All pairs found!",
			fmt.Sprintf("%d moves, %d seconds", snap.Moves, snap.Seconds),
			core.ColorBrightGreen)
	}
}

// renderHUD draws the counters and a separator.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Memory Match | Moves: %d  Time: %ds  Pairs: %d/%d",
		snap.Moves, snap.Seconds, snap.Matched, snap.Pairs)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderCard draws one card with its face and the cursor marker.
func (g *Game) renderCard(dst *core.Screen, r core.Rect, card CardView, selected bool) {
	color := core.ColorGray
	symbol := "?"
	switch card.Face {
	case FaceOpen:
		color = core.ColorYellow
		symbol = card.Symbol
	case FaceMatched:
		color = core.ColorGreen
		symbol = card.Symbol
	}

	frame := color
	if selected {
		frame = core.ColorCyan
	}
	dst.DrawBox(r, frame)

	cx, cy := r.Center()
	dst.DrawTextColor(cx, cy, symbol, color)

	if selected {
		dst.SetColor(r.X-1, cy, '▸', core.ColorCyan)
		dst.SetColor(r.Right(), cy, '◂', core.ColorCyan)
	}
}

// statusLine returns the hint shown under the board.
func (g *Game) statusLine(snap Snapshot) string {
	switch {
	case snap.Over:
		return "Press R to play again"
	case snap.Resolving:
		return "Checking pair..."
	case !snap.Started:
		return "Arrows: move  Enter/Space/Click: flip  R: reset"
	default:
		return "Find the matching pairs"
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	b := g.engine.Board()
	return core.GameState{
		Score:    b.MatchedPairs,
		Moves:    b.Moves,
		Elapsed:  g.engine.Elapsed(),
		GameOver: b.Over,
		Won:      b.Over,
	}
}

// Close drops any pending pair resolution.
func (g *Game) Close() {
	if g.engine != nil {
		g.engine.Close()
	}
}
