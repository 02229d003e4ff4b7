package montecarlo

import (
	"math/rand"
	"testing"

	"github.com/hailam/draughts/internal/board"
)

// TestDeterministicUpToSeed exercises the S6 scenario: with the same seed
// and simulation count, the searcher returns the same move twice in a row
// from the initial position.
func TestDeterministicUpToSeed(t *testing.T) {
	b := board.NewBoard()

	s1 := NewSearcher(board.White, 300, rand.New(rand.NewSource(42)))
	move1, ok1 := s1.BestMove(b)
	if !ok1 {
		t.Fatal("expected a move from the initial position")
	}

	s2 := NewSearcher(board.White, 300, rand.New(rand.NewSource(42)))
	move2, ok2 := s2.BestMove(b)
	if !ok2 {
		t.Fatal("expected a move from the initial position")
	}

	if !move1.Equal(move2) {
		t.Fatalf("expected the same move for the same seed, got %+v and %+v", move1, move2)
	}
}

func TestBestMoveIsLegal(t *testing.T) {
	b := board.NewBoard()
	s := NewSearcher(board.White, 50, rand.New(rand.NewSource(1)))

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
		t.Fatalf("returned move %+v is not among legal moves", move)
	}
}

func TestBestMoveReturnsFalseWithNoLegalMoves(t *testing.T) {
	b := board.NewBoard()
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			b.SetPiece(r, c, board.NoPiece)
		}
	}
	b.SetPiece(0, 1, board.WhiteMan)
	b.SetPiece(1, 0, board.BlackMan)
	b.SetPiece(1, 2, board.BlackMan)
	b.SetPiece(2, 3, board.BlackKing)
	b.SetSideToMove(board.White)

	s := NewSearcher(board.White, 20, rand.New(rand.NewSource(1)))
	if _, ok := s.BestMove(b); ok {
		t.Fatal("expected no move when the side to move has no legal moves")
	}
}

func TestCallerBoardIsNeverMutated(t *testing.T) {
	b := board.NewBoard()
	before := b.Copy()

	s := NewSearcher(board.White, 100, rand.New(rand.NewSource(5)))
	s.BestMove(b)

	if b.Hash() != before.Hash() {
		t.Fatal("expected the caller's board to be unchanged after BestMove")
	}
	if b.SideToMove() != before.SideToMove() {
		t.Fatal("expected side to move to be unchanged after BestMove")
	}
}
