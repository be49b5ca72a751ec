// Package playout implements the heavy-playout simulation engine of §4.E: feature
// refresh, lightweight gamma-product scoring, proportional sampling and fast move
// application to a terminal position, scored under Chinese area rules.
//
// No Simulation.cpp/MinorizationMaximization row-sum source exists in the example
// pack (only the declaration in include/mcts/Simulation.hpp and the parallel
// SIM_* feature-id enumeration in SimulationFeature.hpp/.cpp, which this package
// does not duplicate -- see the package-level Open Question note in DESIGN.md).
// The playout loop below is therefore reconstructed from spec.md's §4.E prose
// rather than ported, reusing pkg/feature's single tactical-feature-id system and
// pkg/score.Scorer (built from a sim_params/-loaded, first-order-only Tables)
// instead of a second, simulation-only feature/scoring stack.
package playout

import (
	"math/rand"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/feature"
	"github.com/kobanium/Ray-sub001/pkg/score"
)

// Result is the outcome of one playout to terminal.
type Result struct {
	Territory board.Territory
	// Winner is the color with the larger score (Black wins ties, matching
	// Chinese-rules komi placement putting the tie-break on White's side via
	// Komi already); RootWin reports whether Winner == the playout's root
	// color.
	Winner  board.Color
	RootWin bool
	// Ownership is the terminal per-point area assignment (+1 Black, -1
	// White, 0 dame), for the MCTS backprop's ownership/criticality
	// accumulation of §4.G.
	Ownership map[board.Point]float64
}

// MaxMoves bounds a playout's length (the move-count ceiling of §4.E), sized
// generously relative to the largest supported board's point count.
const MaxMoves = board.MaxSize * board.MaxSize * 3

// Run simulates pos to a terminal position starting with toMove to play,
// using sc to score candidates (normally a Scorer built from a sim_params/
// Tables). pos is mutated in place -- callers simulate on a Fork(), exactly
// as the MCTS descent of §4.G does before calling into this package. rootColor
// is the color Result.RootWin is computed relative to, per §4.E's "assign
// winner relative to the root's color."
func Run(pos *board.Position, toMove, rootColor board.Color, sc *score.Scorer, rng *rand.Rand) Result {
	g := pos.Geometry()

	for i := 0; i < MaxMoves && pos.PassCount() < 2; i++ {
		feature.RefreshAfterMove(pos, toMove)

		var candidates []board.Point
		for _, p := range g.Points() {
			if !pos.IsLegalNotEye(p, toMove) {
				continue
			}
			if !feature.CheckSelfAtari(pos, toMove, p) {
				continue // large, non-vital self-atari: not a playout candidate
			}
			feature.CheckCapture(pos, toMove, p)
			feature.CheckAtari(pos, toMove, p)
			candidates = append(candidates, p)
		}

		distanceIndex := feature.CheckFeaturesAroundLastMove(pos)
		weights := make([]float64, len(candidates))
		for i, p := range candidates {
			weights[i] = sc.MoveScore(pos, p, distanceIndex)
		}
		passWeight := sc.MoveScore(pos, board.PointPass, distanceIndex)

		move, isPass := sampleMove(g, candidates, weights, passWeight, rng)
		if isPass {
			pos.Pass(toMove)
		} else if err := pos.PlaceStone(move, toMove, true); err != nil {
			// A candidate that IsLegalNotEye accepted should never fail to place;
			// fall back to a pass rather than leaving the playout stuck.
			pos.Pass(toMove)
		}
		toMove = toMove.Opponent()
	}

	t := pos.CalculateScore()
	winner := board.Black
	if t.Score < 0 {
		winner = board.White
	}
	return Result{Territory: t, Winner: winner, RootWin: winner == rootColor, Ownership: pos.Ownership()}
}
