package snake

// Snapshot captures the game for rendering and determinism tests.
type Snapshot struct {
	Tick    uint64
	Width   int
	Height  int
	Snake   []Position // Head first
	Food    Position
	Dir     Direction
	Score   int
	Paused  bool
	Over    bool
	Cleared bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Width:   g.state.Width,
		Height:  g.state.Height,
		Snake:   append([]Position(nil), g.state.Snake...),
		Food:    g.state.Food,
		Dir:     g.state.Dir,
		Score:   g.state.Score,
		Paused:  g.state.Paused,
		Over:    g.state.Over,
		Cleared: g.state.Cleared,
	}
}
