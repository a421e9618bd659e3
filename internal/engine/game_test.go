package engine

import (
	stderrors "errors"
	"testing"

	"schach/internal/chess"
	"schach/internal/errors"
	"schach/internal/testutil"
)

// play applies a sequence of coordinate moves such as "e2e4", failing
// the test if any of them is rejected.
func play(t *testing.T, g *Game, moves ...string) chess.GameStatus {
	t.Helper()
	var status chess.GameStatus
	for _, mv := range moves {
		from := testutil.Sq(t, mv[:2])
		to := testutil.Sq(t, mv[2:])
		var err error
		status, err = g.ApplyMove(chess.Move{From: from, To: to})
		if err != nil {
			t.Fatalf("move %s rejected: %v", mv, err)
		}
	}
	return status
}

// gameFrom wraps an arbitrary position in a state machine with its
// status freshly derived.
func gameFrom(pos *chess.Position) *Game {
	return &Game{pos: pos, status: ComputeStatus(pos)}
}

func TestNewGame(t *testing.T) {
	g := NewGame()
	testutil.AssertEqual(t, g.Turn(), chess.White)
	testutil.AssertEqual(t, g.Status(), chess.GameStatus{Status: chess.InProgress, Colour: chess.White})
	testutil.AssertEqual(t, len(g.LegalMoves()), 20, "legal moves for White at the start")
}

func TestTurnAlternation(t *testing.T) {
	g := NewGame()

	status := play(t, g, "e2e4")
	testutil.AssertEqual(t, g.Turn(), chess.Black)
	testutil.AssertEqual(t, status, chess.GameStatus{Status: chess.InProgress, Colour: chess.Black})
	testutil.AssertEqual(t, len(g.LegalMoves()), 20, "legal replies for Black after 1.e4")

	play(t, g, "e7e5")
	testutil.AssertEqual(t, g.Turn(), chess.White)
}

func TestApplyMoveUpdatesBoard(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4")

	pos := g.Position()
	testutil.AssertTrue(t, pos.PieceAt(testutil.Sq(t, "e2")).IsEmpty(), "source square vacated")
	testutil.AssertEqual(t, pos.PieceAt(testutil.Sq(t, "e4")), chess.W(chess.Pawn), "destination occupied")
	testutil.AssertEqual(t, pos.Ply, 1)
	testutil.AssertTrue(t, pos.LastMove.DoublePawnPush())
}

func TestApplyMoveCapture(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "d7d5", "e4d5")

	pos := g.Position()
	testutil.AssertEqual(t, pos.PieceAt(testutil.Sq(t, "d5")), chess.W(chess.Pawn), "capturer replaces the captured piece")
	testutil.AssertEqual(t, pos.Board.Count(chess.B(chess.Pawn)), 7, "black pawn removed from play")
}

func TestApplyMoveRejectsIllegal(t *testing.T) {
	g := NewGame()
	before := g.Position()

	tests := []struct {
		name string
		move chess.Move
	}{
		{"no piece on source", chess.Move{From: testutil.Sq(t, "e4"), To: testutil.Sq(t, "e5")}},
		{"opponent piece on source", chess.Move{From: testutil.Sq(t, "e7"), To: testutil.Sq(t, "e5")}},
		{"geometry violation", chess.Move{From: testutil.Sq(t, "a1"), To: testutil.Sq(t, "b3")}},
		{"blocked destination", chess.Move{From: testutil.Sq(t, "d1"), To: testutil.Sq(t, "d3")}},
		{"off-board destination", chess.Move{From: testutil.Sq(t, "e2"), To: chess.Square{File: 4, Rank: 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.ApplyMove(tt.move)
			testutil.AssertError(t, err)
			testutil.AssertTrue(t, stderrors.Is(err, errors.ErrIllegalMove), "error chain carries ErrIllegalMove")
		})
	}

	// Rejections leave the position untouched.
	testutil.AssertEqual(t, g.Position().Board, before.Board)
	testutil.AssertEqual(t, g.Turn(), chess.White)
}

// A candidate only needs From and To; whatever it claims about the
// moving or captured piece is ignored in favour of the generator's own
// record.
func TestApplyMoveIgnoresStaleCandidateFields(t *testing.T) {
	g := NewGame()
	candidate := chess.Move{
		From:     testutil.Sq(t, "e2"),
		To:       testutil.Sq(t, "e4"),
		Piece:    chess.B(chess.Queen),
		Captured: chess.W(chess.King),
	}
	_, err := g.ApplyMove(candidate)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Position().PieceAt(testutil.Sq(t, "e4")), chess.W(chess.Pawn))
}

func TestFoolsMate(t *testing.T) {
	g := NewGame()
	status := play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	testutil.AssertEqual(t, status, chess.GameStatus{Status: chess.Checkmate, Colour: chess.White})
	testutil.AssertTrue(t, status.Terminal())
	testutil.AssertEqual(t, len(g.LegalMoves()), 0)
}

func TestScholarsMate(t *testing.T) {
	g := NewGame()
	status := play(t, g, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")

	testutil.AssertEqual(t, status, chess.GameStatus{Status: chess.Checkmate, Colour: chess.Black})
}

func TestMovesAfterGameOver(t *testing.T) {
	g := NewGame()
	play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	_, err := g.ApplyMove(chess.Move{From: testutil.Sq(t, "a2"), To: testutil.Sq(t, "a3")})
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrGameOver), "error chain carries ErrGameOver")
	testutil.AssertEqual(t, g.Status().Status, chess.Checkmate, "status survives the rejected move")
}

func TestCheckStatus(t *testing.T) {
	g := NewGame()
	// 1.e4 e5 2.Qh5 Nc6 3.Qxf7+ is check but not mate: the king takes.
	status := play(t, g, "e2e4", "e7e5", "d1h5", "b8c6", "h5f7")

	testutil.AssertEqual(t, status, chess.GameStatus{Status: chess.Check, Colour: chess.Black})
	testutil.AssertFalse(t, status.Terminal())

	got := testutil.MoveSet(g.LegalMoves())
	testutil.AssertEqual(t, got, map[string]bool{"e8f7": true}, "only capturing the queen resolves the check")
}

func TestStalemate(t *testing.T) {
	pos := testutil.Position(t, chess.White, map[string]chess.Piece{
		"a1": chess.W(chess.King),
		"c2": chess.B(chess.King),
		"b3": chess.B(chess.Queen),
	})
	g := gameFrom(pos)

	testutil.AssertEqual(t, g.Status(), chess.GameStatus{Status: chess.Stalemate, Colour: chess.White})
	testutil.AssertTrue(t, g.Status().Terminal())

	_, err := g.ApplyMove(chess.Move{From: testutil.Sq(t, "a1"), To: testutil.Sq(t, "a2")})
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrGameOver))
}

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name   string
		toMove chess.Colour
		pieces map[string]chess.Piece
		want   chess.GameStatus
	}{
		{
			name:   "in progress",
			toMove: chess.White,
			pieces: map[string]chess.Piece{
				"e1": chess.W(chess.King),
				"e8": chess.B(chess.King),
			},
			want: chess.GameStatus{Status: chess.InProgress, Colour: chess.White},
		},
		{
			name:   "check with escapes",
			toMove: chess.White,
			pieces: map[string]chess.Piece{
				"e1": chess.W(chess.King),
				"e8": chess.B(chess.King),
				"e4": chess.B(chess.Rook),
			},
			want: chess.GameStatus{Status: chess.Check, Colour: chess.White},
		},
		{
			name:   "back-rank checkmate",
			toMove: chess.Black,
			pieces: map[string]chess.Piece{
				"g8": chess.B(chess.King),
				"f7": chess.B(chess.Pawn), "g7": chess.B(chess.Pawn), "h7": chess.B(chess.Pawn),
				"a8": chess.W(chess.Rook),
				"e1": chess.W(chess.King),
			},
			want: chess.GameStatus{Status: chess.Checkmate, Colour: chess.Black},
		},
		{
			name:   "cornered king stalemate",
			toMove: chess.Black,
			pieces: map[string]chess.Piece{
				"h8": chess.B(chess.King),
				"f7": chess.W(chess.Queen),
				"e1": chess.W(chess.King),
			},
			want: chess.GameStatus{Status: chess.Stalemate, Colour: chess.Black},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.Position(t, tt.toMove, tt.pieces)
			testutil.AssertEqual(t, ComputeStatus(pos), tt.want)
		})
	}
}

func TestPositionSnapshotIsACopy(t *testing.T) {
	g := NewGame()
	snap := g.Position()
	snap.Board.Clear(testutil.Sq(t, "e2"))
	snap.ToMove = chess.Black

	testutil.AssertEqual(t, g.Position().PieceAt(testutil.Sq(t, "e2")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, g.Turn(), chess.White)
}

func TestLegalMovesAreDeterministic(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "c7c5", "g1f3")

	first := testutil.MoveSet(g.LegalMoves())
	second := testutil.MoveSet(g.LegalMoves())
	testutil.AssertEqual(t, first, second)
}

// Both kings stay on the board through any legal game: kings cannot be
// captured because no move leaving one attacked is ever legal.
func TestKingsSurviveLegalPlay(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "b5c6", "d7c6", "f3e5", "d8d4")

	pos := g.Position()
	testutil.AssertEqual(t, pos.Board.Count(chess.W(chess.King)), 1)
	testutil.AssertEqual(t, pos.Board.Count(chess.B(chess.King)), 1)
}
