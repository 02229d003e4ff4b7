// Package engine implements the nine-term weighted evaluator, the named
// style-profile registry, and the depth-limited alpha-beta minimax searcher
// built on top of internal/board.
package engine

import "math/rand"

// Weights holds the nine heuristic coefficients an Evaluator combines into a
// single score. Field order matches the profile table: material, central,
// structure, mobility, king activity, promotion potential, piece safety,
// tempo, locks.
type Weights struct {
	Material           int
	Central            int
	Structure          int
	Mobility           int
	KingActivity       int
	PromotionPotential int
	PieceSafety        int
	Tempo              int
	Locks              int
}

// MonteCarlo is the sentinel profile name: it carries no weight vector and
// routes decision-making to the montecarlo package instead of this one.
const MonteCarlo = "MonteCarlo"

// randomWeightsProfile is the profile name that draws a fresh weight vector
// at construction time rather than returning a fixed table entry.
const randomWeightsProfile = "RandomWeights"

var namedProfiles = map[string]Weights{
	"Losing":       {Material: 1, Central: 1, Structure: 5, Mobility: 7, KingActivity: 1, PromotionPotential: 1, PieceSafety: 10, Tempo: 1, Locks: 2},
	"Intermediate": {Material: 15, Central: 15, Structure: 15, Mobility: 15, KingActivity: 20, PromotionPotential: 20, PieceSafety: 10, Tempo: 20, Locks: 15},
	"Expert":       {Material: 60, Central: 25, Structure: 30, Mobility: 20, KingActivity: 45, PromotionPotential: 45, PieceSafety: 10, Tempo: 40, Locks: 35},
	"Aggressive":   {Material: 100, Central: 25, Structure: 8, Mobility: 35, KingActivity: 95, PromotionPotential: 50, PieceSafety: 12, Tempo: 20, Locks: 15},
	"Defensive":    {Material: 50, Central: 12, Structure: 45, Mobility: 20, KingActivity: 30, PromotionPotential: 10, PieceSafety: 50, Tempo: 1, Locks: 25},
	"Balanced":     {Material: 10, Central: 10, Structure: 10, Mobility: 10, KingActivity: 10, PromotionPotential: 10, PieceSafety: 10, Tempo: 10, Locks: 10},
	"RandomPlay":   {},
}

// WeightsForProfile returns the weight vector for name. RandomWeights draws
// a fresh uniform [0,50] vector from rnd; callers must request it only once
// per searcher lifetime, at construction, not per evaluation. Unknown names
// silently fall back to Expert. A nil rnd defaults to a fixed-seed source,
// the same fallback NewMinimaxSearcher applies.
func WeightsForProfile(name string, rnd *rand.Rand) Weights {
	if name == randomWeightsProfile {
		if rnd == nil {
			rnd = rand.New(rand.NewSource(1))
		}
		return Weights{
			Material:           rnd.Intn(51),
			Central:            rnd.Intn(51),
			Structure:          rnd.Intn(51),
			Mobility:           rnd.Intn(51),
			KingActivity:       rnd.Intn(51),
			PromotionPotential: rnd.Intn(51),
			PieceSafety:        rnd.Intn(51),
			Tempo:              rnd.Intn(51),
			Locks:              rnd.Intn(51),
		}
	}
	if w, ok := namedProfiles[name]; ok {
		return w
	}
	return namedProfiles["Expert"]
}

// IsMonteCarlo reports whether name is the Monte-Carlo sentinel profile.
func IsMonteCarlo(name string) bool {
	return name == MonteCarlo
}
