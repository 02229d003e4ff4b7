package engine

import (
	"math/rand"

	"github.com/hailam/draughts/internal/board"
)

const (
	negInf = -1 << 30
	posInf = 1 << 30
)

// MinimaxSearcher runs depth-limited alpha-beta minimax with iterative
// deepening over the nine-term weighted Evaluator. Grounded in shape on the
// teacher's Searcher/TranspositionTable/MoveOrderer trio — counters, a TT
// owned by the searcher, a separate ordering pass — but not in the
// teacher's negamax recursion: spec.md's algorithm is stated as an explicit
// two-branch maximizing/minimizing minimax with the maximizing flag baked
// into the transposition key, which negamax's symmetric recursion would not
// preserve.
type MinimaxSearcher struct {
	engineColor board.Color
	maxDepth    int
	weights     Weights
	profile     string

	tt  *TranspositionTable
	rnd *rand.Rand

	nodes     uint64
	cacheHits uint64
	alphaCuts uint64
	betaCuts  uint64
}

// NewMinimaxSearcher constructs a searcher for engineColor, bounded to
// maxDepth plies, evaluating with profileName's weight vector. If
// profileName is "RandomWeights" the vector is sampled here, once, from
// rnd — never re-sampled per evaluation. rnd is also the source for the
// searcher's uniform tie-breaks; pass a seeded *rand.Rand for reproducible
// tests, or nil to fall back to a source with the fixed seed 1.
func NewMinimaxSearcher(engineColor board.Color, maxDepth int, profileName string, rnd *rand.Rand) *MinimaxSearcher {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	return &MinimaxSearcher{
		engineColor: engineColor,
		maxDepth:    maxDepth,
		weights:     WeightsForProfile(profileName, rnd),
		profile:     profileName,
		tt:          NewTranspositionTable(),
		rnd:         rnd,
	}
}

// Profile returns the profile name the searcher was constructed with.
func (s *MinimaxSearcher) Profile() string { return s.profile }

// Nodes, CacheHits, AlphaCutoffs and BetaCutoffs are monotonic per decision,
// reset by BestMove's next call; exposed for logging and aggregation.
func (s *MinimaxSearcher) Nodes() uint64        { return s.nodes }
func (s *MinimaxSearcher) CacheHits() uint64    { return s.cacheHits }
func (s *MinimaxSearcher) AlphaCutoffs() uint64 { return s.alphaCuts }
func (s *MinimaxSearcher) BetaCutoffs() uint64  { return s.betaCuts }

// HitRate returns the transposition table's probe hit rate as a percentage
// for the most recent BestMove call.
func (s *MinimaxSearcher) HitRate() float64 { return s.tt.HitRate() }

// BestMove resets every counter and clears the transposition table — it is
// not retained between decisions — then runs iterative deepening
// d = 1..maxDepth with the root as a maximizing node over (-inf, +inf),
// returning the move from the last depth that produced one. It reports
// false if the position already has no legal moves.
func (s *MinimaxSearcher) BestMove(b *board.Board) (board.Move, bool) {
	s.nodes, s.cacheHits, s.alphaCuts, s.betaCuts = 0, 0, 0, 0
	s.tt.Clear()

	if b.TerminalNoMoves() {
		return board.Move{}, false
	}

	var best board.Move
	found := false
	for depth := 1; depth <= s.maxDepth; depth++ {
		_, move, ok := s.search(b, depth, negInf, posInf, true)
		if ok {
			best = move
			found = true
		}
	}
	return best, found
}

// search implements the alpha-beta routine of spec.md §4.E, returning
// (score, chosenMove, hasMove).
func (s *MinimaxSearcher) search(b *board.Board, depth int, alpha, beta int, maximizing bool) (int, board.Move, bool) {
	s.nodes++

	key := ttKey{hash: b.Hash(), depth: depth, maximizing: maximizing, engineColor: s.engineColor}
	if e, ok := s.tt.Probe(key); ok {
		s.cacheHits++
		return e.score, e.move, e.has
	}

	if depth == 0 || b.TerminalNoMoves() {
		return Evaluate(b, s.engineColor, s.weights), board.Move{}, false
	}

	moves := b.LegalMoves(b.SideToMove())
	if len(moves) == 0 {
		return Evaluate(b, s.engineColor, s.weights), board.Move{}, false
	}

	s.orderMoves(b, moves, depth-1, !maximizing)

	best := negInf
	if !maximizing {
		best = posInf
	}
	var bestMoves []board.Move

	for _, m := range moves {
		side := b.SideToMove()
		tok := b.Make(m)
		b.SetSideToMove(side.Other())
		score, _, _ := s.search(b, depth-1, alpha, beta, !maximizing)
		b.SetSideToMove(side)
		b.Undo(tok)

		if maximizing {
			switch {
			case score > best:
				best = score
				bestMoves = []board.Move{m}
			case score == best:
				bestMoves = append(bestMoves, m)
			}
			if best > alpha {
				alpha = best
			}
		} else {
			switch {
			case score < best:
				best = score
				bestMoves = []board.Move{m}
			case score == best:
				bestMoves = append(bestMoves, m)
			}
			if best < beta {
				beta = best
			}
		}
		if beta <= alpha {
			if maximizing {
				s.alphaCuts++
			} else {
				s.betaCuts++
			}
			break
		}
	}

	chosen := bestMoves[s.rnd.Intn(len(bestMoves))]
	s.tt.Store(key, ttEntry{score: best, move: chosen, has: true})
	return best, chosen, true
}
