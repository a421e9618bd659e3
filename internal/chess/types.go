// Package chess provides the core data model for the rules engine:
// colours, pieces, squares, the board, positions and moves.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the rank delta a pawn of this colour advances by.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRank returns the rank pawns of this colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

// Kind identifies a piece type.
type Kind int

const (
	NoPiece Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a piece kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is an immutable (kind, colour) pair. The zero value marks an
// empty square; moves replace occupants, they never mutate a Piece.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// IsEmpty reports whether p marks an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// String returns e.g. "White Pawn", or "Empty" for the zero Piece.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// W creates a white piece of the given kind.
func W(k Kind) Piece {
	return Piece{Kind: k, Colour: White}
}

// B creates a black piece of the given kind.
func B(k Kind) Piece {
	return Piece{Kind: k, Colour: Black}
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
