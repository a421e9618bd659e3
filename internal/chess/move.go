package chess

// Move is a value describing a single move: source, destination, the
// moving piece and the captured piece, if any. It references squares,
// never board storage, so a Move stays meaningful after the board has
// changed.
type Move struct {
	From     Square
	To       Square
	Piece    Piece
	Captured Piece // zero when the destination was empty
}

// IsCapture reports whether this move captures a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsDoublePawnPush reports whether this move advances a pawn two ranks
// from its starting rank.
func (m Move) IsDoublePawnPush() bool {
	return m.Piece.Kind == Pawn && abs(m.To.Rank-m.From.Rank) == 2
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
