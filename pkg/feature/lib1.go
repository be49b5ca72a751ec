package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// checkFeaturesLib1 assigns save-extension and capture-family ids around a string
// reduced to one liberty, grounded on CheckFeaturesLib1ForTree
// (original_source/src/feature/UctFeature.cpp).
func checkFeaturesLib1(pos *board.Position, color board.Color, id board.StringID, ladder bool) {
	s := pos.String(id)
	if s == nil || s.NumLiberties() != 1 {
		return
	}
	lib := s.Libs.First()

	switch {
	case ladder:
		compareSwap(pos, lib, board.FamilySaveExtension, LadderExtension)
	case s.Size == 1:
		compareSwap(pos, lib, board.FamilySaveExtension, SaveExtension1)
	case s.Size == 2:
		compareSwap(pos, lib, board.FamilySaveExtension, SaveExtension2)
	default:
		compareSwap(pos, lib, board.FamilySaveExtension, SaveExtension3)
	}

	for _, nid := range s.Nbrs.Values(board.NoString) {
		n := pos.String(nid)
		if n == nil || !n.Exists || n.NumLiberties() != 1 {
			continue
		}
		nlib := n.Libs.First()

		switch {
		case s.Size == 1:
			switch {
			case n.Size == 1:
				compareSwap(pos, nlib, board.FamilyCapture, SaveCapture11)
			case n.Size == 2:
				compareSwap(pos, nlib, board.FamilyCapture, SaveCapture12)
			default:
				compareSwap(pos, nlib, board.FamilyCapture, SaveCapture13)
			}
		case s.Size == 2:
			switch {
			case n.Size == 1:
				if isSelfAtariCapture(pos, nlib, color) {
					compareSwap(pos, nlib, board.FamilyCapture, SaveCaptureSelfAtari)
				} else {
					compareSwap(pos, nlib, board.FamilyCapture, SaveCapture21)
				}
			case n.Size == 2:
				compareSwap(pos, nlib, board.FamilyCapture, SaveCapture22)
			default:
				compareSwap(pos, nlib, board.FamilyCapture, SaveCapture23)
			}
		default:
			switch {
			case n.Size == 1:
				if isSelfAtariCapture(pos, nlib, color) {
					compareSwap(pos, nlib, board.FamilyCapture, SaveCaptureSelfAtari)
				} else {
					compareSwap(pos, nlib, board.FamilyCapture, SaveCapture31)
				}
			case n.Size == 2:
				compareSwap(pos, nlib, board.FamilyCapture, SaveCapture32)
			default:
				compareSwap(pos, nlib, board.FamilyCapture, SaveCapture33)
			}
		}
	}
}
