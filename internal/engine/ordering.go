package engine

import (
	"sort"

	"github.com/hailam/draughts/internal/board"
)

// captureOrderWeight is the per-captured-piece bonus moves get in the
// ordering key, ahead of whatever the table already knows about them.
const captureOrderWeight = 50

// orderMoves sorts moves in place, descending, by a capture-biased + cached-
// score key: captures add captureOrderWeight per captured piece, then the
// move is tentatively made and the child's transposition key is peeked for a
// cached score to fold in. This is what makes iterative deepening pay —
// shallower iterations populate the table, so deeper ones see best-looking
// moves first and prune harder. Grounded on the teacher's MoveOrderer.
// ScoreMoves pass, collapsed from killer/history/counter-move tables (which
// have no draughts analogue here) down to capture-count plus TT score.
func (s *MinimaxSearcher) orderMoves(b *board.Board, moves []board.Move, childDepth int, childMaximizing bool) {
	type scored struct {
		m   board.Move
		key int
	}
	list := make([]scored, len(moves))
	for i, m := range moves {
		key := captureOrderWeight * m.CaptureCount()

		side := b.SideToMove()
		tok := b.Make(m)
		b.SetSideToMove(side.Other())
		childKey := ttKey{hash: b.Hash(), depth: childDepth, maximizing: childMaximizing, engineColor: s.engineColor}
		if e, ok := s.tt.Peek(childKey); ok {
			key += e.score
		}
		b.SetSideToMove(side)
		b.Undo(tok)

		list[i] = scored{m, key}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].key > list[j].key })
	for i, sc := range list {
		moves[i] = sc.m
	}
}
