package chess

import "testing"

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite is not an involution")
	}
	if White.PawnDirection() != 1 || Black.PawnDirection() != -1 {
		t.Error("pawn directions wrong")
	}
	if White.PawnRank() != 1 || Black.PawnRank() != 6 {
		t.Error("pawn start ranks wrong")
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Error("colour strings wrong")
	}
}

func TestPiece(t *testing.T) {
	if !(Piece{}).IsEmpty() {
		t.Error("zero Piece should be empty")
	}
	if W(Pawn).IsEmpty() {
		t.Error("white pawn should not be empty")
	}
	if got := B(Knight).String(); got != "Black Knight" {
		t.Errorf("String() = %q", got)
	}
	if got := (Piece{}).String(); got != "Empty" {
		t.Errorf("zero Piece String() = %q", got)
	}
	if Queen.Letter() != 'Q' || Pawn.Letter() != 'P' {
		t.Error("piece letters wrong")
	}
}

func TestMove(t *testing.T) {
	e2, e4 := Square{4, 1}, Square{4, 3}

	push := Move{From: e2, To: e4, Piece: W(Pawn)}
	if push.IsCapture() {
		t.Error("quiet move reported as capture")
	}
	if !push.IsDoublePawnPush() {
		t.Error("e2e4 should be a double pawn push")
	}
	if got := push.String(); got != "e2e4" {
		t.Errorf("String() = %q; want e2e4", got)
	}

	capture := Move{From: Square{3, 3}, To: Square{4, 4}, Piece: W(Pawn), Captured: B(Pawn)}
	if !capture.IsCapture() {
		t.Error("capture not reported")
	}
	if capture.IsDoublePawnPush() {
		t.Error("diagonal capture reported as double push")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status   GameStatus
		terminal bool
		str      string
	}{
		{GameStatus{InProgress, White}, false, "InProgress"},
		{GameStatus{Check, Black}, false, "Check (Black)"},
		{GameStatus{Checkmate, White}, true, "Checkmate (White)"},
		{GameStatus{Stalemate, Black}, true, "Stalemate"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.status.Terminal(); got != tt.terminal {
				t.Errorf("Terminal() = %v; want %v", got, tt.terminal)
			}
			if got := tt.status.String(); got != tt.str {
				t.Errorf("String() = %q; want %q", got, tt.str)
			}
		})
	}
}
