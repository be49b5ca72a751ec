// Package feature extracts the tactical move features of §4.C: per-intersection
// capture/save-extension/atari/extension/dame/connect/throw-in ids assigned around
// the last move played, plus the ko-recapture/ko-connection/remove-2-stones checks
// and the self-atari/ladder/nakade classifiers those ids depend on.
//
// Ids within a family are ordered weakest-to-strongest and written through
// board.Position's SetIfStronger, matching the original engine's compare-and-swap
// discipline: a later, weaker check never overwrites an earlier, stronger one.
package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// Capture family ids, grounded on UCT_CAPTURE_FEATURE
// (original_source/include/feature/UctFeature.hpp).
const (
	CaptureNone uint16 = iota
	SelfAtariSmall
	SelfAtariNakade
	SelfAtariLarge
	Capture
	SemeaiCapture
	KoRecapture
	CaptureAfterKo
	ThreePointCaptureSS
	TwoPointCaptureSS
	ThreePointCaptureSL
	TwoPointCaptureSL
	ThreePointCaptureLS
	TwoPointCaptureLS
	TwoPointCaptureLL
	ThreePointCaptureLL
	SemeaiCaptureSelfAtari
	SaveCapture11
	SaveCapture12
	SaveCapture13
	SaveCapture21
	SaveCapture22
	SaveCapture23
	SaveCapture31
	SaveCapture32
	SaveCapture33
	SaveCaptureSelfAtari
)

// Save-extension family ids, grounded on UCT_SAVE_EXTENSION_FEATURE.
const (
	SaveExtensionNone uint16 = iota
	SaveExtension1
	SaveExtension2
	SaveExtension3
	LadderExtension
)

// Atari family ids, grounded on UCT_ATARI_FEATURE.
const (
	AtariNone uint16 = iota
	Atari
	ThreePointAtariSS
	TwoPointAtariSS
	ThreePointAtariSL
	TwoPointAtariSL
	ThreePointAtariLS
	TwoPointAtariLS
	ThreePointAtariLL
	TwoPointAtariLL
	ThreePointCAtariSS
	TwoPointCAtariSS
	ThreePointCAtariSL
	TwoPointCAtariSL
	ThreePointCAtariLS
	TwoPointCAtariLS
	ThreePointCAtariLL
	TwoPointCAtariLL
)

// Extension family ids, grounded on UCT_EXTENSION_FEATURE.
const (
	ExtensionNone uint16 = iota
	ThreePointExtensionDecrease
	TwoPointExtensionDecrease
	ThreePointExtensionEven
	TwoPointExtensionEven
	ThreePointExtensionIncrease
	TwoPointExtensionIncrease
)

// Dame family ids, grounded on UCT_DAME_FEATURE.
const (
	DameNone uint16 = iota
	ThreePointDameSS
	ThreePointDameSL
	ThreePointDameLS
	ThreePointDameLL
)

// Connect family ids, grounded on UCT_CONNECT_FEATURE.
const (
	ConnectNone uint16 = iota
	KoConnection
)

// Throw-in family ids, grounded on UCT_THROW_IN_FEATURE.
const (
	ThrowInNone uint16 = iota
	ThrowIn2
)

// Pass features are not part of board.Features (they describe the PASS pseudo-move,
// not a board point) and are tracked separately by whatever calls into this package
// around a pass decision. Grounded on PASS_FEATURES.
const (
	PassAfterMove uint16 = iota
	PassAfterPass
)

// MoveDistanceMax is the largest distinguished move-distance bucket (MOVE_DISTANCE_MAX).
const MoveDistanceMax = 16

// PosIDMax is the largest distinguished board-position-id bucket (POS_ID_MAX).
const PosIDMax = 64

// compareSwap is a small wrapper over board.Position.SetIfStronger so the family
// check functions below read the same way the original's CompareSwapFeature call
// sites do.
func compareSwap(pos *board.Position, p board.Point, fam board.FeatureFamily, id uint16) {
	pos.SetIfStronger(p, fam, id)
}
