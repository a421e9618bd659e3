package engine

import "schach/internal/chess"

// LegalMoves narrows the pseudo-legal moves for the side to move to
// those that do not leave the mover's own king attacked. Ordering of
// the result is deterministic but unspecified; callers must not rely
// on it.
func LegalMoves(pos *chess.Position) []chess.Move {
	pseudo := PseudoLegalMoves(pos)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !leavesKingInCheck(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves whose source square is from.
func LegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	var legal []chess.Move
	for _, m := range PseudoLegalMovesFrom(pos, from) {
		if !leavesKingInCheck(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, stopping at the first one found.
func HasLegalMoves(pos *chess.Position) bool {
	for _, m := range PseudoLegalMoves(pos) {
		if !leavesKingInCheck(pos, m) {
			return true
		}
	}
	return false
}

// leavesKingInCheck simulates m on a scratch copy of the board and
// reports whether the mover's own king ends up attacked. The live
// position is never mutated: copy, simulate, discard.
func leavesKingInCheck(pos *chess.Position, m chess.Move) bool {
	scratch := pos.Board.Copy()
	scratch.Clear(m.From)
	scratch.Set(m.To, m.Piece)
	return IsInCheck(scratch, m.Piece.Colour)
}
