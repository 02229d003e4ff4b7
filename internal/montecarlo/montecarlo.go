// Package montecarlo implements the flat (non-tree) Monte-Carlo move
// evaluator: uniform-random playouts per candidate root move, averaged into
// a mean score per move. Enriched from the retrieval pack's Connect6 MCTS
// searcher (uniform move sampling, win/loss backup), simplified from that
// file's UCB tree search down to the flat one-ply shape this engine calls
// for — there is no node expansion or exploration constant here, only a
// prior visit per root move and a rollout to a ply cap.
package montecarlo

import (
	"math"
	"math/rand"

	"github.com/hailam/draughts/internal/board"
)

// maxRolloutPlies bounds a single rollout; reaching it without a winner is
// scored a draw. Only the no-moves terminal is checked inside a rollout —
// not the repetition/quiet-move draw — because purely random play would
// otherwise drift into long draws that contaminate the statistics; the ply
// cap already bounds the cost of that drift.
const maxRolloutPlies = 400

// Searcher picks a root move by running uniform-random rollouts and
// selecting whichever move has the best mean result for engineColor.
type Searcher struct {
	engineColor board.Color
	simulations int
	rnd         *rand.Rand
}

// NewSearcher constructs a Searcher for engineColor running simulations
// rollouts in total. Pass a seeded rnd for reproducible tests, or nil to
// fall back to a source with the fixed seed 1.
func NewSearcher(engineColor board.Color, simulations int, rnd *rand.Rand) *Searcher {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	return &Searcher{engineColor: engineColor, simulations: simulations, rnd: rnd}
}

// BestMove picks a legal move from b uniformly at random, simulations
// times, rolls out the resulting position, and returns whichever move
// attained the highest mean result, breaking ties uniformly at random. Each
// move starts with a prior of one visit and zero score so that a move
// never sampled still has a defined mean. It reports false if b has no
// legal moves.
func (s *Searcher) BestMove(b *board.Board) (board.Move, bool) {
	side := b.SideToMove()
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return board.Move{}, false
	}

	score := make([]float64, len(moves))
	count := make([]int, len(moves))
	for i := range moves {
		count[i] = 1
	}

	for i := 0; i < s.simulations; i++ {
		idx := s.rnd.Intn(len(moves))

		child := b.Copy()
		child.Apply(moves[idx])
		child.SetSideToMove(side.Other())

		score[idx] += s.rollout(child)
		count[idx]++
	}

	best := math.Inf(-1)
	var bestIdx []int
	for i := range moves {
		mean := score[i] / float64(count[i])
		switch {
		case mean > best:
			best = mean
			bestIdx = []int{i}
		case mean == best:
			bestIdx = append(bestIdx, i)
		}
	}
	return moves[bestIdx[s.rnd.Intn(len(bestIdx))]], true
}

// rollout plays uniformly-random legal moves from b, alternating sides,
// for up to maxRolloutPlies, and returns the result from engineColor's
// perspective: +1 win, -1 loss, 0 for a draw or for hitting the ply cap.
func (s *Searcher) rollout(b *board.Board) float64 {
	for ply := 0; ply < maxRolloutPlies; ply++ {
		if b.TerminalNoMoves() {
			loser := b.SideToMove()
			if loser == s.engineColor {
				return -1
			}
			return 1
		}

		moves := b.LegalMoves(b.SideToMove())
		m := moves[s.rnd.Intn(len(moves))]
		side := b.SideToMove()
		b.Apply(m)
		b.SetSideToMove(side.Other())
	}
	return 0
}
