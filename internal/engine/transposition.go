package engine

import "github.com/hailam/draughts/internal/board"

// ttKey is the transposition key: spec.md requires depth and the maximizing
// flag to be part of the key because a stored score is depth-bounded and
// side-relative — mixing maximizing states would produce unsound cutoffs.
type ttKey struct {
	hash        uint64
	depth       int
	maximizing  bool
	engineColor board.Color
}

type ttEntry struct {
	score int
	move  board.Move
	has   bool
}

// TranspositionTable is a plain map cleared at the start of every bestMove
// call. Grounded in shape on the teacher's TranspositionTable (Probe/Store/
// Clear, probe/hit counters) but not in its fixed-size age-replacement
// policy: spec.md calls for a table scoped to a single decision, sized by
// whatever hash map the host language provides.
type TranspositionTable struct {
	entries map[ttKey]ttEntry
	probes  uint64
	hits    uint64
}

// NewTranspositionTable returns an empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[ttKey]ttEntry)}
}

// Clear discards all entries and resets the hit-rate counters.
func (tt *TranspositionTable) Clear() {
	tt.entries = make(map[ttKey]ttEntry)
	tt.probes = 0
	tt.hits = 0
}

// Probe looks up k, counting the probe and any hit toward the table's own
// hit-rate statistics. Used by the search routine proper.
func (tt *TranspositionTable) Probe(k ttKey) (ttEntry, bool) {
	tt.probes++
	e, ok := tt.entries[k]
	if ok {
		tt.hits++
	}
	return e, ok
}

// Peek looks up k without affecting the hit-rate counters. Used by move
// ordering, which consults the table speculatively for every candidate move
// and must not inflate the reported cache-hit count.
func (tt *TranspositionTable) Peek(k ttKey) (ttEntry, bool) {
	e, ok := tt.entries[k]
	return e, ok
}

// Store records e under k, overwriting any existing entry.
func (tt *TranspositionTable) Store(k ttKey, e ttEntry) {
	tt.entries[k] = e
}

// HitRate returns the probe hit rate as a percentage.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}
