package testutil

import (
	"testing"

	"schach/internal/chess"
)

// Sq parses an algebraic square such as "e4", failing the test on bad
// input.
func Sq(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("bad test square: %v", err)
	}
	return sq
}

// Position builds a position from piece placements keyed by algebraic
// square, with the given side to move. The board starts empty; tests
// place exactly the pieces they need.
func Position(t *testing.T, toMove chess.Colour, pieces map[string]chess.Piece) *chess.Position {
	t.Helper()
	b := chess.NewBoard()
	for name, p := range pieces {
		b.Set(Sq(t, name), p)
	}
	return &chess.Position{Board: b, ToMove: toMove}
}

// MoveSet reduces moves to the set of their coordinate strings, for
// order-insensitive comparison: the engine's generation order is
// unspecified.
func MoveSet(moves []chess.Move) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m.String()] = true
	}
	return set
}
