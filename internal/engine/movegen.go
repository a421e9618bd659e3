// Package engine implements the chess rules: move generation, attack
// detection, legality filtering and the game state machine.
package engine

import "schach/internal/chess"

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoLegalMoves produces every move for the side to move that
// satisfies piece geometry and blocking/capture rules, ignoring whether
// the mover's own king ends up attacked. Pin detection is the legality
// filter's job, not the generator's.
func PseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			from := chess.Square{File: file, Rank: rank}
			piece := pos.Board.Get(from)
			if piece.IsEmpty() || piece.Colour != pos.ToMove {
				continue
			}
			moves = pseudoLegalFrom(pos.Board, from, piece, moves)
		}
	}
	return moves
}

// PseudoLegalMovesFrom produces the pseudo-legal moves of the piece on
// from. It returns nil when the square is empty or holds an opponent of
// the side to move.
func PseudoLegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.Board.Get(from)
	if piece.IsEmpty() || piece.Colour != pos.ToMove {
		return nil
	}
	return pseudoLegalFrom(pos.Board, from, piece, nil)
}

func pseudoLegalFrom(b *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(b, from, piece, moves)
	case chess.Knight:
		return offsetMoves(b, from, piece, knightOffsets[:], moves)
	case chess.King:
		return offsetMoves(b, from, piece, kingOffsets[:], moves)
	case chess.Bishop:
		return slidingMoves(b, from, piece, diagonalDirs[:], moves)
	case chess.Rook:
		return slidingMoves(b, from, piece, straightDirs[:], moves)
	case chess.Queen:
		moves = slidingMoves(b, from, piece, diagonalDirs[:], moves)
		return slidingMoves(b, from, piece, straightDirs[:], moves)
	}
	return moves
}

// pawnMoves generates forward pushes and diagonal captures. A pawn may
// advance one square onto an empty square, two squares from its
// starting rank when both are empty, and captures only diagonally onto
// an opposing piece. Promotion and en passant are not modelled.
func pawnMoves(b *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	dir := piece.Colour.PawnDirection()
	if to, ok := from.Offset(0, dir); ok && b.Get(to).IsEmpty() {
		moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
		if from.Rank == piece.Colour.PawnRank() {
			if to2, ok := from.Offset(0, 2*dir); ok && b.Get(to2).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to2, Piece: piece})
			}
		}
	}
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := b.Get(to)
		if !target.IsEmpty() && target.Colour != piece.Colour {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}

// offsetMoves generates the fixed-offset moves of knights and kings:
// destination empty or holding an opponent, never a friendly piece.
func offsetMoves(b *chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		target := b.Get(to)
		if target.IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
		} else if target.Colour != piece.Colour {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}

// slidingMoves walks each ray until the first occupied square. An
// opposing occupant ends the ray as a capture; a friendly occupant is
// excluded; nothing past the blocker is reachable.
func slidingMoves(b *chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		for to, ok := from.Offset(dir[0], dir[1]); ok; to, ok = to.Offset(dir[0], dir[1]) {
			target := b.Get(to)
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
				continue
			}
			if target.Colour != piece.Colour {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
			}
			break
		}
	}
	return moves
}
