package memory

// Face is how a card is presented.
type Face string

const (
	FaceHidden  Face = "hidden"
	FaceOpen    Face = "open"
	FaceMatched Face = "matched"
)

// CardView is the render model of one card.
type CardView struct {
	Symbol string // Empty while hidden
	Face   Face
}

// Snapshot is the render model of the whole game: everything a view needs
// to draw a frame, and nothing it could use to peek at hidden cards.
type Snapshot struct {
	Tick      uint64
	Rows      int
	Cols      int
	Cards     []CardView
	Cursor    int
	Moves     int
	Seconds   int
	Matched   int
	Pairs     int
	Started   bool
	Resolving bool
	Over      bool
}

// Snapshot returns the current render model.
func (g *Game) Snapshot() Snapshot {
	b := g.engine.Board()

	cards := make([]CardView, len(b.Cards))
	for i, c := range b.Cards {
		switch {
		case c.Matched:
			cards[i] = CardView{Symbol: c.Value, Face: FaceMatched}
		case c.Flipped:
			cards[i] = CardView{Symbol: c.Value, Face: FaceOpen}
		default:
			cards[i] = CardView{Face: FaceHidden}
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Rows:      g.cfg.Board.Rows,
		Cols:      g.cfg.Board.Cols,
		Cards:     cards,
		Cursor:    g.cursor,
		Moves:     b.Moves,
		Seconds:   b.Seconds,
		Matched:   b.MatchedPairs,
		Pairs:     b.Pairs(),
		Started:   b.Started,
		Resolving: g.engine.Resolving(),
		Over:      b.Over,
	}
}
