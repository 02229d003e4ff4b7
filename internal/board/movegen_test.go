package board

import "testing"

// TestManMustJumpAndCaptureMaximal exercises the S2-style scenario: a lone
// White Man faces a lone Black Man positioned to capture it. Black to
// move has exactly one legal move, the jump.
func TestManMustJumpAndCaptureMaximal(t *testing.T) {
	b := emptyBoard()
	b.SetPiece(5, 4, WhiteMan)
	b.SetPiece(6, 5, BlackMan)
	b.side = Black

	moves := b.LegalMoves(Black)
	if len(moves) != 1 {
		t.Fatalf("expected exactly one legal move, got %d: %v", len(moves), moves)
	}
	m := moves[0]
	if m.StartRow != 6 || m.StartCol != 5 || m.EndRow != 4 || m.EndCol != 3 {
		t.Fatalf("expected jump 6,5 -> 4,3, got %+v", m)
	}
	if len(m.Captured) != 1 || m.Captured[0] != (Square{Row: 5, Col: 4}) {
		t.Fatalf("expected capture of (5,4), got %v", m.Captured)
	}

	b.Apply(m)
	white, black := b.CountPieces()
	if white != 0 || black != 1 {
		t.Fatalf("expected 0 white/1 black piece after capture, got %d/%d", white, black)
	}
	if b.PieceAt(4, 3) != BlackMan {
		t.Fatalf("expected a Black Man (no promotion) at (4,3), got %v", b.PieceAt(4, 3))
	}
}

// TestKingMandatoryMaximumDoubleCapture exercises the S3-style scenario:
// mandatory maximum capture forces a King to take a two-piece sequence
// over any available single-piece capture. (The exact squares in spec.md's
// S3 illustration sit on light squares, which violates invariant 1; this
// test reproduces the same shape — a King facing a capturable piece whose
// landing zone leads to a second capturable piece on a different diagonal
// — using dark-square coordinates. See DESIGN.md.)
func TestKingMandatoryMaximumDoubleCapture(t *testing.T) {
	b := emptyBoard()
	b.SetPiece(4, 5, WhiteKing)
	b.SetPiece(5, 6, BlackMan)
	b.SetPiece(7, 6, BlackMan)
	b.side = White

	moves := b.LegalMoves(White)
	if len(moves) == 0 {
		t.Fatal("expected at least one legal move")
	}
	for _, m := range moves {
		if len(m.Captured) != 2 {
			t.Fatalf("expected every legal move to capture 2 pieces (max), got %d for %+v", len(m.Captured), m)
		}
	}
}

// TestDrawByRepetition exercises the S4 scenario: a four-ply shuffle cycle
// repeated three times triggers the repetition draw.
func TestDrawByRepetition(t *testing.T) {
	b := emptyBoard()
	b.SetPiece(0, 1, WhiteKing)
	b.SetPiece(9, 8, BlackKing)
	b.side = White

	cycle := []struct {
		mover          Color
		sr, sc, er, ec int
	}{
		{White, 0, 1, 1, 2},
		{Black, 9, 8, 8, 7},
		{White, 1, 2, 0, 1},
		{Black, 8, 7, 9, 8},
	}

	for i := 0; i < 3; i++ {
		for _, step := range cycle {
			if b.SideToMove() != step.mover {
				t.Fatalf("iteration %d: expected %v to move, got %v", i, step.mover, b.SideToMove())
			}
			b.Apply(Move{StartRow: step.sr, StartCol: step.sc, EndRow: step.er, EndCol: step.ec})
			b.SetSideToMove(step.mover.Other())
		}
	}

	if !b.IsDraw() {
		t.Fatal("expected IsDraw() true after the cycle recurs three times")
	}
	if b.Winner() != "d" {
		t.Fatalf("expected Winner()==\"d\", got %q", b.Winner())
	}
}

// TestDrawByQuietMoves exercises the S5 scenario: the 25-quiet-move counter
// alone triggers a draw in a king-vs-king endgame.
func TestDrawByQuietMoves(t *testing.T) {
	b := emptyBoard()
	b.SetPiece(0, 1, WhiteKing)
	b.SetPiece(9, 8, BlackKing)
	b.side = White
	b.quietCount = 24

	b.Apply(Move{StartRow: 0, StartCol: 1, EndRow: 1, EndCol: 2})

	if b.quietCount < 25 {
		t.Fatalf("expected quiet counter >= 25, got %d", b.quietCount)
	}
	if !b.IsDraw() {
		t.Fatal("expected IsDraw() true once the quiet counter reaches 25")
	}
}

func TestLegalMovesTerminalMatchesNoMoves(t *testing.T) {
	b := emptyBoard()
	// A White Man boxed in on the back corner with Black Men controlling
	// both forward diagonals and no capture available.
	b.SetPiece(0, 1, WhiteMan)
	b.SetPiece(1, 0, BlackMan)
	b.SetPiece(1, 2, BlackMan)
	b.SetPiece(2, 3, BlackKing)
	b.side = White

	if len(b.LegalMoves(White)) != 0 {
		t.Skip("constructed position unexpectedly has legal moves; geometry assumption invalid")
	}
	if !b.TerminalNoMoves() {
		t.Fatal("expected TerminalNoMoves() true when LegalMoves is empty")
	}
}
