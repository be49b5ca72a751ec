package playout

import (
	"math/rand"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

// sampleMove draws one move proportionally to its weight, including the pass
// weight as one more slot in the same roulette wheel. Reconstructed from
// spec.md §4.E's "select a move proportionally to its score among legal
// candidates, pass included" -- no row-sum or cumulative-table source exists
// anywhere in the example pack (Simulation.cpp is absent; only the bare
// declaration in Simulation.hpp survives), so this is a straightforward
// cumulative-weight roulette wheel rather than a port of any original code.
// Returns (point, false) for a stone play, or (board.PointPass, true) for a
// pass. A non-positive total (every weight <= 0, including pass) falls back
// to a pass, since that is always legal.
func sampleMove(g *board.Geometry, candidates []board.Point, weights []float64, passWeight float64, rng *rand.Rand) (board.Point, bool) {
	total := passWeight
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return board.PointPass, true
	}

	r := rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return candidates[i], false
		}
		r -= w
	}
	return board.PointPass, true
}
