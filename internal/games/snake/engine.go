package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Position is a cell on the grid.
type Position struct {
	X, Y int
}

// Add returns p moved by one step in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is the way the snake is heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector of the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a config name to a direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirRight, fmt.Errorf("snake: unknown direction %q", s)
	}
}

// FromAction maps an arrow action to a direction.
func FromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// State is one snake game. Transitions return a new State and leave the
// receiver's segments untouched.
type State struct {
	Width, Height int
	Snake         []Position // Head first
	Food          Position
	Dir           Direction // Heading of the last move
	Next          Direction // Heading of the next move
	Score         int
	Paused        bool
	Over          bool
	Cleared       bool // Ended because no free cell was left for food
}

// NewState returns a fresh game: a single segment at the start position heading
// the configured way, with food placed on a free cell.
func NewState(cfg config.SnakeConfig, rng *rand.Rand) State {
	dir, err := ParseDirection(cfg.Start.Direction)
	if err != nil {
		dir = DirRight
	}
	s := State{
		Width:  cfg.Grid.Width,
		Height: cfg.Grid.Height,
		Snake:  []Position{{X: cfg.Start.X, Y: cfg.Start.Y}},
		Dir:    dir,
		Next:   dir,
	}
	if food, ok := placeFood(s, rng); ok {
		s.Food = food
	} else {
		s.Over, s.Cleared = true, true
	}
	return s
}

// Head returns the first segment.
func (s State) Head() Position {
	return s.Snake[0]
}

// Inside reports whether p is on the grid.
func (s State) Inside(p Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Occupied reports whether a segment covers p.
func (s State) Occupied(p Position) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Turn buffers the heading for the next move. Turning straight back is
// rejected, as is any turn while paused or over.
func Turn(s State, d Direction) State {
	if s.Paused || s.Over || d == s.Dir.Opposite() {
		return s
	}
	s.Next = d
	return s
}

// TogglePause suspends or resumes the game. A finished game stays as is.
func TogglePause(s State) State {
	if !s.Over {
		s.Paused = !s.Paused
	}
	return s
}

// Tick moves the snake one cell. A wall or self collision ends the game
// without moving the snake. Eating grows the snake and relocates the food.
func Tick(s State, rng *rand.Rand) (State, []core.Notification) {
	if s.Paused || s.Over {
		return s, nil
	}

	s.Dir = s.Next
	head := s.Head().Add(s.Dir)

	if !s.Inside(head) {
		s.Over = true
		return s, []core.Notification{gameOver("You hit a wall", s.Score)}
	}
	if s.Occupied(head) {
		s.Over = true
		return s, []core.Notification{gameOver("You hit yourself", s.Score)}
	}

	body := make([]Position, 0, len(s.Snake)+1)
	body = append(body, head)
	body = append(body, s.Snake...)

	if head != s.Food {
		s.Snake = body[:len(body)-1]
		return s, nil
	}

	s.Snake = body
	s.Score++
	events := []core.Notification{{
		Title:       "Yum!",
		Description: "Food eaten!",
		Severity:    core.SeveritySuccess,
	}}

	food, ok := placeFood(s, rng)
	if !ok {
		s.Over, s.Cleared = true, true
		events = append(events, core.Notification{
			Title:       "Board cleared",
			Description: fmt.Sprintf("The snake fills the grid. Final score: %d", s.Score),
			Severity:    core.SeveritySuccess,
		})
		return s, events
	}
	s.Food = food
	return s, events
}

func gameOver(reason string, score int) core.Notification {
	return core.Notification{
		Title:       "Game Over!",
		Description: fmt.Sprintf("%s. Final score: %d", reason, score),
		Severity:    core.SeverityDestructive,
	}
}

// placeFood picks a uniformly random free cell. It samples cells until one
// is free, falling back to a pick among the enumerated free cells when the
// snake covers most of the grid. It returns false when no cell is free.
func placeFood(s State, rng *rand.Rand) (Position, bool) {
	cells := s.Width * s.Height
	if len(s.Snake) >= cells {
		return Position{}, false
	}

	occupied := make(map[Position]bool, len(s.Snake))
	for _, seg := range s.Snake {
		occupied[seg] = true
	}

	for range cells * 4 {
		p := Position{X: rng.Intn(s.Width), Y: rng.Intn(s.Height)}
		if !occupied[p] {
			return p, true
		}
	}

	free := make([]Position, 0, cells-len(occupied))
	for y := range s.Height {
		for x := range s.Width {
			if p := (Position{X: x, Y: y}); !occupied[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{}, false
	}
	return free[rng.Intn(len(free))], true
}
