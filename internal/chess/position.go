package chess

// LastMove records the most recently applied move. It carries enough to
// recognize a pawn double-push, the hook a future en passant rule needs.
type LastMove struct {
	From Square
	To   Square
	Kind Kind
}

// DoublePawnPush reports whether the recorded move was a pawn advancing
// two ranks.
func (l LastMove) DoublePawnPush() bool {
	return l.Kind == Pawn && abs(l.To.Rank-l.From.Rank) == 2
}

// Position is a board plus the side to move and minimal move history.
// The Position exclusively owns its Board; it is created at the standard
// starting arrangement and mutated only by applying one validated move
// at a time.
type Position struct {
	Board    *Board
	ToMove   Colour
	LastMove LastMove
	Ply      int // half-moves applied so far; LastMove is valid when Ply > 0
}

// NewPosition returns the standard starting position with White to move.
func NewPosition() *Position {
	b := NewBoard()
	b.SetupInitialPosition()
	return &Position{Board: b, ToMove: White}
}

// Copy returns a deep copy sharing no state with the original.
func (p *Position) Copy() *Position {
	np := *p
	np.Board = p.Board.Copy()
	return &np
}

// PieceAt returns the occupant of sq, or the empty Piece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Board.Get(sq)
}

// SideToMove returns the colour whose turn it is.
func (p *Position) SideToMove() Colour {
	return p.ToMove
}
