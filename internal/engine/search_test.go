package engine

import (
	"math/rand"
	"testing"

	"github.com/hailam/draughts/internal/board"
)

// TestBestMoveFromInitialPositionDepthOne exercises the S1 scenario: Expert
// profile, depth 1, White to move from the initial position returns a
// legal single-step advance of a White Man from row 3 to row 4, and visits
// at least as many nodes as there are root moves.
func TestBestMoveFromInitialPositionDepthOne(t *testing.T) {
	b := board.NewBoard()
	s := NewMinimaxSearcher(board.White, 1, "Expert", rand.New(rand.NewSource(1)))

	move, ok := s.BestMove(b)
	if !ok {
		t.Fatal("expected a move from the initial position")
	}
	if move.StartRow != 3 || move.EndRow != 4 {
		t.Fatalf("expected a Man advancing from row 3 to row 4, got %+v", move)
	}
	if move.IsCapture() {
		t.Fatal("expected no captures to exist from the initial position")
	}

	rootMoves := len(b.LegalMoves(board.White))
	if int(s.Nodes()) < rootMoves {
		t.Fatalf("expected nodes (%d) >= root move count (%d)", s.Nodes(), rootMoves)
	}
}

func TestBestMoveReturnsNoneOnTerminalPosition(t *testing.T) {
	b := emptyTestBoard()
	b.SetPiece(0, 1, board.WhiteMan)
	b.SetPiece(1, 0, board.BlackMan)
	b.SetPiece(1, 2, board.BlackMan)
	b.SetPiece(2, 3, board.BlackKing)
	b.SetSideToMove(board.White)

	s := NewMinimaxSearcher(board.White, 3, "Expert", nil)
	_, ok := s.BestMove(b)
	if ok {
		t.Fatal("expected no move on a terminal position")
	}
}

func TestDepthZeroScoreEqualsStaticEvaluation(t *testing.T) {
	b := board.NewBoard()
	w := WeightsForProfile("Expert", nil)
	s := &MinimaxSearcher{engineColor: board.Black, maxDepth: 0, weights: w, tt: NewTranspositionTable(), rnd: rand.New(rand.NewSource(1))}

	score, _, hasMove := s.search(b, 0, negInf, posInf, true)
	if hasMove {
		t.Fatal("depth 0 should not report a move")
	}
	want := Evaluate(b, board.Black, w)
	if score != want {
		t.Fatalf("expected depth-0 score to equal static evaluation %d, got %d", want, score)
	}
}

func TestBestMoveIsAlwaysLegal(t *testing.T) {
	b := board.NewBoard()
	s := NewMinimaxSearcher(board.White, 2, "Balanced", rand.New(rand.NewSource(7)))

	move, ok := s.BestMove(b)
	if !ok {
		t.Fatal("expected a move")
	}
	legal := b.LegalMoves(board.White)
	found := false
	for _, m := range legal {
		if m.Equal(move) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("returned move %+v is not among legal moves %v", move, legal)
	}
}

func TestTranspositionTableClearedBetweenDecisions(t *testing.T) {
	b := board.NewBoard()
	s := NewMinimaxSearcher(board.White, 2, "Expert", rand.New(rand.NewSource(3)))

	s.BestMove(b)
	if len(s.tt.entries) == 0 {
		t.Fatal("expected the transposition table to hold entries after a search")
	}

	s.BestMove(b)
	if s.tt.probes == 0 {
		t.Fatal("expected probes to be counted again after clearing")
	}
	if s.tt.probes != s.Nodes() {
		t.Fatalf("expected probes (%d) to count only the latest decision's %d nodes", s.tt.probes, s.Nodes())
	}
}
