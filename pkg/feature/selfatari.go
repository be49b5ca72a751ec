package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// CheckSelfAtari classifies whether playing color at p is a self-atari, assigns the
// matching capture-family id, and reports whether the move should still be kept as
// a playout/search candidate. Grounded on CheckSelfAtariForTree
// (original_source/src/feature/UctFeature.cpp): true means "not a self-atari, or a
// small/nakade self-atari still worth considering"; false means "a large, non-vital
// self-atari that candidate generation should discard."
func CheckSelfAtari(pos *board.Position, color board.Color, p board.Point) bool {
	g := pos.Geometry()
	other := color.Opponent()
	neighbors := g.Neighbors4(p)

	libCandidates := map[board.Point]bool{}
	for _, n := range neighbors {
		if g.OnBoard(n) && pos.Stone(n) == board.EmptyStone {
			libCandidates[n] = true
		}
	}
	if len(libCandidates) >= 2 {
		return true
	}

	checked := map[*board.Str]bool{}
	size := 0
	for _, n := range neighbors {
		if !g.OnBoard(n) {
			continue
		}
		switch {
		case pos.Stone(n) == board.StoneOf(color):
			s := pos.StringAt(n)
			if s == nil || checked[s] {
				continue
			}
			checked[s] = true
			if s.NumLiberties() > 2 {
				return true
			}
			for _, lib := range s.Libs.Values(board.PointNone) {
				if lib != p {
					libCandidates[lib] = true
				}
			}
			size += s.Size
			if len(libCandidates) >= 2 {
				return true
			}
		case pos.Stone(n) == board.StoneOf(other):
			if s := pos.StringAt(n); s != nil && s.NumLiberties() == 1 {
				return true
			}
		}
	}

	switch {
	case size < 2:
		compareSwap(pos, p, board.FamilyCapture, SelfAtariSmall)
		return true
	case size < 6:
		if isNakadeShape(pos, p, color) {
			compareSwap(pos, p, board.FamilyCapture, SelfAtariNakade)
			return true
		}
		compareSwap(pos, p, board.FamilyCapture, SelfAtariLarge)
		return false
	default:
		compareSwap(pos, p, board.FamilyCapture, SelfAtariLarge)
		return false
	}
}
