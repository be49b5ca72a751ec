package score

import (
	"github.com/kobanium/Ray-sub001/pkg/feature"
	"github.com/kobanium/Ray-sub001/pkg/pattern"
)

// Tables holds one full set of trained parameters -- either the tree scorer's
// uct_params/ (first- and second-order) or the playout scorer's sim_params/
// (first-order only, second-order left zero so pairwiseProduct's theta terms
// are simply absent). Grounded on the static uct_* arrays at the top of
// original_source/src/mcts/UctRating.cpp.
type Tables struct {
	Pass    [PassMax]Param
	KoExist Param

	Capture       [CaptureMax]Param
	SaveExtension [SaveExtensionMax]Param
	Atari         [AtariMax]Param
	Extension     [ExtensionMax]Param
	Dame          [DameMax]Param
	Connect       [ConnectMax]Param
	ThrowIn       [ThrowInMax]Param

	// MoveDistance[k] holds the distance-from-k-plies-ago table, indexed by
	// distanceIndex+bucket (distanceIndex comes from the per-move urgency
	// status feature.CheckFeaturesAroundLastMove returns, bucket is the
	// clamped move distance). Each is feature.MoveDistanceMax*4 long, per
	// uct_move_distance_{1..4}.
	MoveDistance [4][feature.MoveDistanceMax * 4]Param

	PosID [PosIDMax]Param
	Pat3  [Pat3Max]Param

	// MD2..MD5 are sparse, keyed by the 16-fold canonical form of the ring
	// code (pattern.Canonical16) -- a Go map standing in for the original's
	// hand-rolled open-addressed index_hash_t probe table (md2_index/
	// md3_index/md4_index/md5_index), which exists only to work around C++'s
	// lack of a built-in hash map for this hot path.
	MD2 map[pattern.Code]*Param
	MD3 map[pattern.Code]*Param
	MD4 map[pattern.Code]*Param
	MD5 map[pattern.Code]*Param
}

// PosIDMax and feature import alias kept local to avoid a stutter; see
// params.go/loader.go.
const PosIDMax = feature.PosIDMax

// NewTables returns an empty, zero-weighted parameter set: every gamma is 0
// and every pairwise vector is 0, so MoveScore degenerates to 0 for every
// candidate until LoadUCTParams/LoadSimParams (or a test's own fixture)
// populates it. Exported so callers that need a default before trained
// parameters are available (or tests in other packages) don't need their own
// Tables constructor.
func NewTables() *Tables {
	return &Tables{
		MD2: map[pattern.Code]*Param{},
		MD3: map[pattern.Code]*Param{},
		MD4: map[pattern.Code]*Param{},
		MD5: map[pattern.Code]*Param{},
	}
}
