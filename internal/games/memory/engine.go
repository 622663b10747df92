package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Engine owns a memory board and applies the rules to it. Pair resolution
// runs on a scheduler so a flipped pair stays visible for a moment; Reset
// invalidates anything still pending.
type Engine struct {
	cfg    config.MemoryConfig
	rng    *rand.Rand
	sched  *core.Scheduler
	clock  core.Interval
	outbox core.Outbox
	board  Board
}

// NewEngine creates an engine with a freshly shuffled board.
func NewEngine(cfg config.MemoryConfig, seed int64) *Engine {
	e := &Engine{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		sched: core.NewScheduler(),
	}
	e.Reset()
	return e
}

// Reset deals a new board and drops pending pair resolutions.
func (e *Engine) Reset() {
	e.sched.Invalidate()
	e.clock = core.NewInterval(time.Second)
	e.board = NewBoard(e.cfg.Symbols, e.rng)
}

// Restart resets the board and tells the player about it.
func (e *Engine) Restart() {
	e.Reset()
	e.outbox.Post("Game reset", "Start a new game!", core.SeverityDefault)
}

// Close drops pending callbacks. The engine stays readable.
func (e *Engine) Close() {
	e.sched.Invalidate()
}

// Select flips the card with the given id. It is a no-op, returning false,
// when the game is over, a pair is already face-up, the id is out of range,
// or the card is already face-up or matched.
func (e *Engine) Select(id int) bool {
	b := &e.board
	if b.Over || len(b.FaceUp) >= 2 || id < 0 || id >= len(b.Cards) {
		return false
	}
	card := &b.Cards[id]
	if card.Flipped || card.Matched {
		return false
	}

	if !b.Started {
		b.Started = true
		e.clock.Reset()
	}

	card.Flipped = true
	b.FaceUp = append(b.FaceUp, id)

	if len(b.FaceUp) == 2 {
		b.Moves++
		first, second := b.FaceUp[0], b.FaceUp[1]
		if b.Cards[first].Value == b.Cards[second].Value {
			e.sched.After(e.cfg.Timing.MatchDelay, func() { e.resolveMatch(first, second) })
		} else {
			e.sched.After(e.cfg.Timing.MismatchDelay, func() { e.resolveMismatch(first, second) })
		}
	}
	return true
}

// resolveMatch locks a matching pair in and checks for completion.
func (e *Engine) resolveMatch(first, second int) {
	b := &e.board
	b.Cards[first].Matched = true
	b.Cards[second].Matched = true
	b.FaceUp = b.FaceUp[:0]
	b.MatchedPairs++

	e.outbox.Post("Match!", "You found a matching pair!", core.SeveritySuccess)

	if b.MatchedPairs == b.Pairs() {
		b.Over = true
		e.outbox.Post("Congratulations!",
			fmt.Sprintf("You finished the game in %d moves and %d seconds!", b.Moves, b.Seconds),
			core.SeveritySuccess)
	}
}

// resolveMismatch turns a non-matching pair face-down again.
func (e *Engine) resolveMismatch(first, second int) {
	b := &e.board
	b.Cards[first].Flipped = false
	b.Cards[second].Flipped = false
	b.FaceUp = b.FaceUp[:0]
}

// Advance moves the game clock forward: the elapsed counter ticks while a
// game is running and pending pair resolutions fire when due.
func (e *Engine) Advance(dt time.Duration) {
	if e.board.Started && !e.board.Over {
		e.board.Seconds += e.clock.Advance(dt)
	}
	e.sched.Advance(dt)
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

// Resolving reports whether a pair is waiting to be resolved.
func (e *Engine) Resolving() bool {
	return e.sched.Pending() > 0
}

// Events drains the notifications raised since the last call.
func (e *Engine) Events() []core.Notification {
	return e.outbox.Drain()
}

// Elapsed returns the play time as counted by the game clock.
func (e *Engine) Elapsed() time.Duration {
	return time.Duration(e.board.Seconds) * time.Second
}
