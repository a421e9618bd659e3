package chess

import "fmt"

// Square identifies a board coordinate. File and Rank are in [0,7];
// file 0 is the a-file and rank 0 is White's back rank. Off-board
// locations are represented by the ok results of NewSquare and Offset,
// never by an in-range sentinel value.
type Square struct {
	File int
	Rank int
}

// NewSquare returns the square at (file, rank) and reports whether the
// coordinates are on the board.
func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return Square{}, false
	}
	return Square{File: file, Rank: rank}, true
}

// Offset returns the square displaced by (df, dr) files and ranks,
// reporting whether it remains on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	return NewSquare(s.File+df, s.Rank+dr)
}

// OnBoard reports whether both coordinates are in range.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// String returns the algebraic form of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare converts algebraic coordinates ("a1" through "h8") to a
// Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	sq, ok := NewSquare(file, rank)
	if !ok {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	return sq, nil
}
