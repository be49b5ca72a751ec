package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// checkFeaturesLib3 assigns extension/capture/atari/dame-family ids around a string
// reduced to three liberties, grounded on CheckFeaturesLib3ForTree
// (original_source/src/feature/UctFeature.cpp).
func checkFeaturesLib3(pos *board.Position, color board.Color, id board.StringID) {
	s := pos.String(id)
	if s == nil || s.NumLiberties() != 3 {
		return
	}
	libs := s.Libs.Values(board.PointNone)

	for _, lib := range libs {
		applyExtensionState(pos, color, id, lib, board.FamilyExtension, ThreePointExtensionDecrease, ThreePointExtensionEven, ThreePointExtensionIncrease)
	}

	small := s.Size <= 2
	for _, nid := range s.Nbrs.Values(board.NoString) {
		n := pos.String(nid)
		if n == nil || !n.Exists {
			continue
		}
		switch n.NumLiberties() {
		case 1:
			nlib := n.Libs.First()
			assignThreePointCapture(pos, nlib, small, n.Size <= 2)
		case 2:
			nlibs := n.Libs.Values(board.PointNone)
			assignThreePointAtari(pos, color, nlibs[0], n.Origin, small, n.Size <= 2)
			assignThreePointAtari(pos, color, nlibs[1], n.Origin, small, n.Size <= 2)
		case 3:
			nlibs := n.Libs.Values(board.PointNone)
			dame := ThreePointDameSL
			switch {
			case small && n.Size <= 2:
				dame = ThreePointDameSS
			case !small && n.Size <= 2:
				dame = ThreePointDameLS
			case !small && n.Size > 2:
				dame = ThreePointDameLL
			}
			for _, lib := range nlibs {
				compareSwap(pos, lib, board.FamilyDame, dame)
			}
		}
	}
}

func assignThreePointCapture(pos *board.Position, lib board.Point, ownSmall, enemySmall bool) {
	switch {
	case ownSmall && enemySmall:
		compareSwap(pos, lib, board.FamilyCapture, ThreePointCaptureSS)
	case ownSmall && !enemySmall:
		compareSwap(pos, lib, board.FamilyCapture, ThreePointCaptureSL)
	case !ownSmall && enemySmall:
		compareSwap(pos, lib, board.FamilyCapture, ThreePointCaptureLS)
	default:
		compareSwap(pos, lib, board.FamilyCapture, ThreePointCaptureLL)
	}
}

func assignThreePointAtari(pos *board.Position, attacker board.Color, lib, origin board.Point, ownSmall, enemySmall bool) {
	capturable := isCapturableAtari(pos, lib, attacker, origin)
	switch {
	case ownSmall && enemySmall:
		if capturable {
			compareSwap(pos, lib, board.FamilyAtari, ThreePointCAtariSS)
		} else {
			compareSwap(pos, lib, board.FamilyAtari, ThreePointAtariSS)
		}
	case ownSmall && !enemySmall:
		if capturable {
			compareSwap(pos, lib, board.FamilyAtari, ThreePointCAtariSL)
		} else {
			compareSwap(pos, lib, board.FamilyAtari, ThreePointAtariSL)
		}
	case !ownSmall && enemySmall:
		if capturable {
			compareSwap(pos, lib, board.FamilyAtari, ThreePointCAtariLS)
		} else {
			compareSwap(pos, lib, board.FamilyAtari, ThreePointAtariLS)
		}
	default:
		if capturable {
			compareSwap(pos, lib, board.FamilyAtari, ThreePointCAtariLL)
		} else {
			compareSwap(pos, lib, board.FamilyAtari, ThreePointAtariLL)
		}
	}
}
