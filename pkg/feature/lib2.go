package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// checkFeaturesLib2 assigns extension/capture/atari-family ids around a string
// reduced to two liberties, grounded on CheckFeaturesLib2ForTree
// (original_source/src/feature/UctFeature.cpp).
func checkFeaturesLib2(pos *board.Position, color board.Color, id board.StringID) {
	s := pos.String(id)
	if s == nil || s.NumLiberties() != 2 {
		return
	}
	libs := s.Libs.Values(board.PointNone)
	lib1, lib2 := libs[0], libs[1]

	applyExtensionState(pos, color, id, lib1, board.FamilyExtension, TwoPointExtensionDecrease, TwoPointExtensionEven, TwoPointExtensionIncrease)
	applyExtensionState(pos, color, id, lib2, board.FamilyExtension, TwoPointExtensionDecrease, TwoPointExtensionEven, TwoPointExtensionIncrease)

	small := s.Size <= 2
	for _, nid := range s.Nbrs.Values(board.NoString) {
		n := pos.String(nid)
		if n == nil || !n.Exists {
			continue
		}
		switch n.NumLiberties() {
		case 1:
			nlib := n.Libs.First()
			assignTwoPointCapture(pos, nlib, small, n.Size <= 2)
		case 2:
			nlibs := n.Libs.Values(board.PointNone)
			assignTwoPointAtari(pos, color, nlibs[0], n.Origin, small, n.Size <= 2)
			assignTwoPointAtari(pos, color, nlibs[1], n.Origin, small, n.Size <= 2)
		}
	}
}

func applyExtensionState(pos *board.Position, color board.Color, id board.StringID, lib board.Point, fam board.FeatureFamily, dec, even, inc uint16) {
	switch checkLibertyState(pos, lib, color, id) {
	case libDecrease:
		compareSwap(pos, lib, fam, dec)
	case libEven:
		compareSwap(pos, lib, fam, even)
	case libIncrease:
		compareSwap(pos, lib, fam, inc)
	}
}

func assignTwoPointCapture(pos *board.Position, lib board.Point, ownSmall, enemySmall bool) {
	switch {
	case ownSmall && enemySmall:
		compareSwap(pos, lib, board.FamilyCapture, TwoPointCaptureSS)
	case ownSmall && !enemySmall:
		compareSwap(pos, lib, board.FamilyCapture, TwoPointCaptureSL)
	case !ownSmall && enemySmall:
		compareSwap(pos, lib, board.FamilyCapture, TwoPointCaptureLS)
	default:
		compareSwap(pos, lib, board.FamilyCapture, TwoPointCaptureLL)
	}
}

func assignTwoPointAtari(pos *board.Position, attacker board.Color, lib, origin board.Point, ownSmall, enemySmall bool) {
	capturable := isCapturableAtari(pos, lib, attacker, origin)
	switch {
	case ownSmall && enemySmall:
		if capturable {
			compareSwap(pos, lib, board.FamilyAtari, TwoPointCAtariSS)
		} else {
			compareSwap(pos, lib, board.FamilyAtari, TwoPointAtariSS)
		}
	case ownSmall && !enemySmall:
		if capturable {
			compareSwap(pos, lib, board.FamilyAtari, TwoPointCAtariSL)
		} else {
			compareSwap(pos, lib, board.FamilyAtari, TwoPointAtariSL)
		}
	case !ownSmall && enemySmall:
		if capturable {
			compareSwap(pos, lib, board.FamilyAtari, TwoPointCAtariLS)
		} else {
			compareSwap(pos, lib, board.FamilyAtari, TwoPointAtariLS)
		}
	default:
		if capturable {
			compareSwap(pos, lib, board.FamilyAtari, TwoPointCAtariLL)
		} else {
			compareSwap(pos, lib, board.FamilyAtari, TwoPointAtariLL)
		}
	}
}
