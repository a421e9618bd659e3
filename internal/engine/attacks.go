package engine

import "schach/internal/chess"

// IsSquareAttacked reports whether sq is attacked by any piece of the
// given colour. It scans outward from the target square and is
// independent of whose turn it is, so it answers for either side at any
// time. Pawn attack squares count even when empty: a pawn attacks its
// capture diagonals whether or not a piece stands there.
func IsSquareAttacked(b *chess.Board, sq chess.Square, by chess.Colour) bool {
	// A pawn attacking sq sits one rank behind it, on either diagonal.
	pawn := chess.Piece{Kind: chess.Pawn, Colour: by}
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(df, -by.PawnDirection()); ok && b.Get(from) == pawn {
			return true
		}
	}

	knight := chess.Piece{Kind: chess.Knight, Colour: by}
	for _, off := range knightOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && b.Get(from) == knight {
			return true
		}
	}

	king := chess.Piece{Kind: chess.King, Colour: by}
	for _, off := range kingOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && b.Get(from) == king {
			return true
		}
	}

	bishop := chess.Piece{Kind: chess.Bishop, Colour: by}
	rook := chess.Piece{Kind: chess.Rook, Colour: by}
	queen := chess.Piece{Kind: chess.Queen, Colour: by}

	for _, dir := range diagonalDirs {
		for from, ok := sq.Offset(dir[0], dir[1]); ok; from, ok = from.Offset(dir[0], dir[1]) {
			piece := b.Get(from)
			if piece.IsEmpty() {
				continue
			}
			if piece == bishop || piece == queen {
				return true
			}
			break // Blocked
		}
	}

	for _, dir := range straightDirs {
		for from, ok := sq.Offset(dir[0], dir[1]); ok; from, ok = from.Offset(dir[0], dir[1]) {
			piece := b.Get(from)
			if piece.IsEmpty() {
				continue
			}
			if piece == rook || piece == queen {
				return true
			}
			break // Blocked
		}
	}

	return false
}

// AttackedSquares returns the set of squares attacked by colour.
func AttackedSquares(b *chess.Board, by chess.Colour) map[chess.Square]bool {
	attacked := make(map[chess.Square]bool)
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Square{File: file, Rank: rank}
			if IsSquareAttacked(b, sq, by) {
				attacked[sq] = true
			}
		}
	}
	return attacked
}

// IsInCheck reports whether colour's king is attacked by the opponent.
// A board with no king of that colour is engine corruption, not user
// input, and panics.
func IsInCheck(b *chess.Board, colour chess.Colour) bool {
	kingSq, ok := b.KingSquare(colour)
	if !ok {
		panic("engine: no " + colour.String() + " king on the board")
	}
	return IsSquareAttacked(b, kingSq, colour.Opposite())
}
