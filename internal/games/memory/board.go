package memory

import "math/rand"

// Card is one tile of the memory board.
type Card struct {
	ID      int    // Position on the board, row-major
	Value   string // Symbol shown when face-up
	Flipped bool   // Face-up, either waiting in the pair-window or matched
	Matched bool   // Part of a found pair
}

// Open reports whether the card is face-up but not yet matched.
func (c Card) Open() bool {
	return c.Flipped && !c.Matched
}

// Board is the state of one memory game.
type Board struct {
	Cards        []Card
	FaceUp       []int // Ids in the current pair-window, in flip order
	MatchedPairs int
	Moves        int
	Seconds      int
	Started      bool // Set by the first flip; starts the clock
	Over         bool
}

// NewBoard deals every symbol twice and shuffles the deck with rng.
func NewBoard(symbols []string, rng *rand.Rand) Board {
	values := make([]string, 0, len(symbols)*2)
	values = append(values, symbols...)
	values = append(values, symbols...)
	shuffle(values, rng)

	cards := make([]Card, len(values))
	for i, v := range values {
		cards[i] = Card{ID: i, Value: v}
	}
	return Board{Cards: cards}
}

// shuffle permutes values uniformly at random. rand.Shuffle walks the slice
// from the end, swapping each element with a uniformly chosen earlier one
// (Fisher-Yates), so every permutation is equally likely.
func shuffle(values []string, rng *rand.Rand) {
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}

// Pairs returns the number of distinct symbols on the board.
func (b Board) Pairs() int {
	return len(b.Cards) / 2
}

// OpenCount returns how many cards are face-up but unmatched.
func (b Board) OpenCount() int {
	n := 0
	for _, c := range b.Cards {
		if c.Open() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := b
	out.Cards = append([]Card(nil), b.Cards...)
	out.FaceUp = append([]int(nil), b.FaceUp...)
	return out
}
