package engine

import "schach/internal/chess"

// ApplyMove mutates pos by executing m: the destination takes the
// moving piece, the source empties, the last-move record is updated
// and the turn flips. m must already have been validated; the Game
// state machine is the production caller.
func ApplyMove(pos *chess.Position, m chess.Move) {
	pos.Board.Clear(m.From)
	pos.Board.Set(m.To, m.Piece)
	pos.LastMove = chess.LastMove{From: m.From, To: m.To, Kind: m.Piece.Kind}
	pos.Ply++
	pos.ToMove = pos.ToMove.Opposite()
}
