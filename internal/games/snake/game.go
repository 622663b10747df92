// Package snake implements the classic snake game on a fixed grid: steer
// the snake to the food and avoid the walls and your own tail.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// hudHeight is the status line above the playfield; the frame of the
// field serves as separator.
const hudHeight = 1

var configPath string

// SetConfigPath sets a custom config file for new games.
func SetConfigPath(path string) {
	configPath = path
}

// Game drives a snake State from the arcade loop: it turns input into
// Turn/TogglePause calls and moves the snake on a fixed interval.
type Game struct {
	cfg     config.SnakeConfig
	rng     *rand.Rand
	state   State
	mover   core.Interval
	tick    uint64
	dt      time.Duration
	elapsed time.Duration
	moves   int
}

// New creates a new snake game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Rules returns how to play.
func (g *Game) Rules() []string {
	return []string{
		"Steer the snake with the arrow keys",
		"Eat the food to grow and score a point",
		"The snake cannot turn straight back",
		"Hitting a wall or your own body ends the game",
		"Space or P pauses, R starts over",
	}
}

// Reset loads the config and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.dt = runtime.TickInterval()
	g.tick = 0
	g.restart()
}

// restart deals a new snake from the current rng.
func (g *Game) restart() {
	g.state = NewState(g.cfg, g.rng)
	g.mover = core.NewInterval(g.cfg.Timing.MoveInterval)
	g.elapsed = 0
	g.moves = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.rng == nil {
		g.Reset(core.DefaultConfig())
	}
	g.tick++

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.state = TogglePause(g.state)
	}

	for _, a := range in.Directions {
		if d, ok := FromAction(a); ok {
			g.state = Turn(g.state, d)
		}
	}

	if g.state.Paused || g.state.Over {
		return core.StepResult{State: g.State()}
	}

	g.elapsed += g.dt
	var events []core.Notification
	for n := g.mover.Advance(g.dt); n > 0 && !g.state.Over; n-- {
		var evs []core.Notification
		g.state, evs = Tick(g.state, g.rng)
		events = append(events, evs...)
		if !g.state.Over {
			g.moves++
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// fieldRect returns the framed playfield for a screen size, and whether
// it fits.
func (g *Game) fieldRect(w, h int) (core.Rect, bool) {
	fw, fh := g.state.Width+2, g.state.Height+2
	if w < fw || h < hudHeight+fh {
		return core.Rect{}, false
	}
	return core.NewRect((w-fw)/2, hudHeight, fw, fh), true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	field, fits := g.fieldRect(dst.Width(), dst.Height())
	if !fits {
		dst.DrawOverlay("Window too small", "Resize to continue", core.ColorYellow)
		return
	}

	dst.DrawBox(field, core.ColorGray)
	ox, oy := field.X+1, field.Y+1

	if !g.state.Cleared {
		dst.SetColor(ox+g.state.Food.X, oy+g.state.Food.Y, '*', core.ColorRed)
	}
	for i, seg := range g.state.Snake {
		if i == 0 {
			dst.SetColor(ox+seg.X, oy+seg.Y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColor(ox+seg.X, oy+seg.Y, 'o', core.ColorGreen)
		}
	}

	switch {
	case g.state.Cleared:
		dst.DrawOverlay("Board cleared!", fmt.Sprintf("Final Score: %d", g.state.Score), core.ColorBrightGreen)
	case g.state.Over:
		dst.DrawOverlay("Game Over", "Press R to restart", core.ColorBrightRed)
	case g.state.Paused:
		dst.DrawOverlay("Paused", "Press P to continue", core.ColorYellow)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d", g.state.Score, len(g.state.Snake))
	dst.DrawText(0, 0, hud)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Moves:    g.moves,
		Elapsed:  g.elapsed,
		GameOver: g.state.Over,
		Won:      g.state.Cleared,
		Paused:   g.state.Paused,
	}
}

// Close has nothing to release; the snake moves only when stepped.
func (g *Game) Close() {}
