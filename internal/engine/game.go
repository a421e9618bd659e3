package engine

import (
	"schach/internal/chess"
	"schach/internal/errors"
)

// Game is the state machine owning a Position and its derived status.
// ApplyMove is the only mutator; every other method is a read-only
// query. A Game is a single mutable resource: callers serialize
// ApplyMove, and concurrent readers must work on Position snapshots,
// not on the live Game.
type Game struct {
	pos    *chess.Position
	status chess.GameStatus
}

// NewGame starts a game from the standard position with White to move.
// No side can be in check from the initial arrangement.
func NewGame() *Game {
	return &Game{
		pos:    chess.NewPosition(),
		status: chess.GameStatus{Status: chess.InProgress, Colour: chess.White},
	}
}

// Position returns a read-only snapshot of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// Turn returns the colour whose turn it is.
func (g *Game) Turn() chess.Colour {
	return g.pos.ToMove
}

// Status returns the current game status.
func (g *Game) Status() chess.GameStatus {
	return g.status
}

// LegalMoves returns every legal move for the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return LegalMoves(g.pos)
}

// LegalMovesFrom returns the legal moves of the piece on from, for
// highlighting a selected piece's destinations. Empty squares and
// opponent pieces yield no moves.
func (g *Game) LegalMovesFrom(from chess.Square) []chess.Move {
	return LegalMovesFrom(g.pos, from)
}

// ApplyMove validates candidate against the legal-move set for the
// current position and side to move, executes it, and returns the
// recomputed status. Illegal candidates and moves after the game has
// ended leave the position unchanged and return an error satisfying
// errors.Is against ErrIllegalMove or ErrGameOver.
func (g *Game) ApplyMove(candidate chess.Move) (chess.GameStatus, error) {
	if g.status.Terminal() {
		return g.status, &errors.MoveError{
			Err:    errors.ErrGameOver,
			Move:   candidate.String(),
			Turn:   g.pos.ToMove.String(),
			Reason: g.status.String(),
		}
	}

	m, ok := g.findLegal(candidate)
	if !ok {
		return g.status, &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Move: candidate.String(),
			Turn: g.pos.ToMove.String(),
		}
	}

	ApplyMove(g.pos, m)
	g.status = ComputeStatus(g.pos)
	return g.status, nil
}

// findLegal matches candidate by source and destination square; with
// castling and promotion out of scope those identify a legal move
// uniquely. The generator's own move record is the one executed, so a
// candidate carrying a stale Piece or Captured field cannot corrupt
// the board.
func (g *Game) findLegal(candidate chess.Move) (chess.Move, bool) {
	if !candidate.From.OnBoard() || !candidate.To.OnBoard() {
		return chess.Move{}, false
	}
	for _, m := range LegalMovesFrom(g.pos, candidate.From) {
		if m.To == candidate.To {
			return m, true
		}
	}
	return chess.Move{}, false
}

// ComputeStatus derives the game status for pos's side to move as a
// pure function of the position: in check with no legal moves is
// checkmate, no legal moves without check is stalemate. Recomputing
// from scratch each turn rules out stale-status bugs.
func ComputeStatus(pos *chess.Position) chess.GameStatus {
	colour := pos.ToMove
	inCheck := IsInCheck(pos.Board, colour)
	hasMoves := HasLegalMoves(pos)

	switch {
	case inCheck && !hasMoves:
		return chess.GameStatus{Status: chess.Checkmate, Colour: colour}
	case inCheck:
		return chess.GameStatus{Status: chess.Check, Colour: colour}
	case !hasMoves:
		return chess.GameStatus{Status: chess.Stalemate, Colour: colour}
	default:
		return chess.GameStatus{Status: chess.InProgress, Colour: colour}
	}
}
