package chess

// Board is an 8x8 grid of optional piece occupants, stored as a flat
// fixed-size array indexed by file then rank. It is pure data: all rule
// knowledge lives in the engine package.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition arranges the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[file][0] = W(backRank[file])
		b.squares[file][1] = W(Pawn)
		b.squares[file][6] = B(Pawn)
		b.squares[file][7] = B(backRank[file])
	}
}

// Get returns the occupant of sq, or the empty Piece. It never fails;
// off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b.squares[sq.File][sq.Rank]
}

// Set places p on sq. Setting the zero Piece clears the square.
// Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.OnBoard() {
		b.squares[sq.File][sq.Rank] = p
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Equal reports whether both boards hold the same occupants. go-cmp
// uses it in tests.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.squares == o.squares
}

// KingSquare returns the square of colour's king and reports whether
// one was found. Exactly one king per colour is a board invariant
// during play; absence indicates engine corruption, not a legal
// position.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	king := Piece{Kind: King, Colour: colour}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.squares[file][rank] == king {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return Square{}, false
}

// Count returns the number of pieces matching p on the board.
func (b *Board) Count(p Piece) int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.squares[file][rank] == p {
				n++
			}
		}
	}
	return n
}
