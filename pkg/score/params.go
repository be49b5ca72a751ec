// Package score computes move-evaluation priors for search-tree children and
// playout candidates: a first-order gamma-product (Bradley-Terry) term plus a
// second-order factorization-machine pairwise term, combined exactly as
// CalculateMoveScoreWithBTFM (original_source/src/mcts/UctRating.cpp) does --
// gamma-product plus pairwise-product, not gamma times pairwise.
//
// Tables are read from <workdir>/uct_params/ (tree scoring, full first- and
// second-order) and <workdir>/sim_params/ (playout scoring, first-order only,
// per §6 of SPEC_FULL.md).
package score

import "github.com/kobanium/Ray-sub001/pkg/feature"

// Dimension is the factorization-machine latent-vector width (BTFM_DIMENSION).
const Dimension = 5

// Param is one trained feature's first- and second-order weight, grounded on
// fm_t (original_source/include/mcts/UctRating.hpp).
type Param struct {
	W float64
	V [Dimension]float64
}

// Sizes of the per-family parameter arrays, derived from the last id in each
// feature-family enumeration (pkg/feature/ids.go) rather than re-stated as
// separate magic numbers.
const (
	CaptureMax       = int(feature.SaveCaptureSelfAtari) + 1
	SaveExtensionMax = int(feature.LadderExtension) + 1
	AtariMax         = int(feature.TwoPointCAtariLL) + 1
	ExtensionMax     = int(feature.TwoPointExtensionIncrease) + 1
	DameMax          = int(feature.ThreePointDameLL) + 1
	ConnectMax       = int(feature.KoConnection) + 1
	ThrowInMax       = int(feature.ThrowIn2) + 1
	PassMax          = int(feature.PassAfterPass) + 1

	// Pat3Max is the dense 3x3 pattern table size: 2 bits x 8 cells.
	Pat3Max = 1 << 16
)

// gamma multiplies the first-order weight of every active feature (Gamma, in
// original_source/src/mcts/UctRating.cpp).
func gamma(active []*Param) float64 {
	g := 1.0
	for _, p := range active {
		g *= p.W
	}
	return g
}

// theta computes the average inner product of two features' latent vectors
// (Theta, same file).
func theta(a, b *Param) float64 {
	var sum float64
	for k := 0; k < Dimension; k++ {
		sum += a.V[k] * b.V[k]
	}
	return sum / float64(Dimension)
}

// pairwiseProduct multiplies theta(i,j) over every unordered pair of active
// features, starting from 1.0 if there are at least two (matching the
// original's "theta = feature_num > 1 ? 1.0 : 0.0" seed exactly -- a single
// active feature contributes no second-order term at all).
func pairwiseProduct(active []*Param) float64 {
	if len(active) <= 1 {
		return 0
	}
	p := 1.0
	for i := 0; i < len(active)-1; i++ {
		for j := i + 1; j < len(active); j++ {
			p *= theta(active[i], active[j])
		}
	}
	return p
}
