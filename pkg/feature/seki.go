package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// CheckSeki scans the position for seki (mutual life) shapes, grounded on
// CheckSeki (original_source/src/feature/Seki.cpp): find every two-liberty
// string of size < 6 whose two liberties are each a mutual self-atari point
// for both colors, then confirm the shape by looking at what lies just
// beyond each liberty. Returns the set of points the original's bool[]
// output array would mark true -- the two mutual-self-atari liberties plus
// whatever eye point(s) confirm the seki.
//
// The original indexes each neighboring string's liberty list by raw array
// position (`string[id].lib[0]`, then `lib[lib[0]]`) to pull out "the other
// liberty," an artifact of its C liberty representation (a next-pointer
// array doubling as both a linked list and an index space). This package's
// board.Str keeps liberties in a linkedSet instead, so the same step here is
// "the neighbor string's liberties, minus the two seki liberties" -- same
// algorithmic intent (find the point just past the shared liberty), adapted
// to a different underlying data structure rather than ported line for line.
func CheckSeki(pos *board.Position) map[board.Point]bool {
	g := pos.Geometry()
	seki := make(map[board.Point]bool)

	candidate := make(map[board.Point]bool)
	for _, p := range g.Points() {
		if isSelfAtariRaw(pos, board.Black, p) && isSelfAtariRaw(pos, board.White, p) {
			candidate[p] = true
		}
	}

	for id := board.StringID(0); id < board.StringID(g.MaxStrings()); id++ {
		s := pos.String(id)
		if s == nil || !s.Exists || s.NumLiberties() != 2 || s.Size >= 6 {
			continue
		}
		libs := s.Libs.Values(board.PointNone)
		lib1, lib2 := libs[0], libs[1]
		if !candidate[lib1] || !candidate[lib2] {
			continue
		}

		nbr1 := neighborStringIDs(pos, lib1, id)
		nbr2 := neighborStringIDs(pos, lib2, id)
		if len(nbr1) != 1 || len(nbr2) != 1 {
			continue
		}

		other1, ok1 := otherLiberty(pos, nbr1[0], lib1, lib2)
		other2, ok2 := otherLiberty(pos, nbr2[0], lib1, lib2)
		if !ok1 || !ok2 {
			continue
		}

		if other1 == other2 {
			if pos.IsSimpleEye(other1, board.Black) || pos.IsSimpleEye(other1, board.White) {
				seki[lib1], seki[lib2], seki[other1] = true, true, true
			}
			continue
		}

		if isHalfEye(pos, other1) && isHalfEye(pos, other2) {
			if sameOuterNeighbor(pos, other1, nbr1[0], nbr2[0]) == sameOuterNeighbor(pos, other2, nbr1[0], nbr2[0]) {
				seki[lib1], seki[lib2] = true, true
				seki[other1], seki[other2] = true, true
			}
		}
	}
	return seki
}

// isSelfAtariRaw reports whether color playing at p (if legal at all) would
// leave the resulting string with exactly one liberty, the bare predicate
// CheckSeki's own IsSelfAtari call needs -- distinct from CheckSelfAtari's
// nakade-aware, MCTS-candidate-filtering classification in selfatari.go.
func isSelfAtariRaw(pos *board.Position, color board.Color, p board.Point) bool {
	if !pos.IsLegal(p, color) {
		return false
	}
	trial := pos.Fork()
	if err := trial.PlaceStone(p, color, true); err != nil {
		return false
	}
	s := trial.StringAt(p)
	return s != nil && s.NumLiberties() == 1
}

// neighborStringIDs returns the distinct string ids (other than exclude)
// adjacent to p.
func neighborStringIDs(pos *board.Position, p board.Point, exclude board.StringID) []board.StringID {
	seen := map[board.StringID]bool{}
	var out []board.StringID
	for _, n := range pos.Geometry().Neighbors4(p) {
		id := pos.StringIDAt(n)
		if id == board.NoString || id == exclude || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// otherLiberty returns nbr's liberty other than lib1/lib2, if nbr has
// exactly one such liberty remaining.
func otherLiberty(pos *board.Position, nbr board.StringID, lib1, lib2 board.Point) (board.Point, bool) {
	s := pos.String(nbr)
	if s == nil {
		return board.PointNone, false
	}
	var other board.Point
	found := 0
	for _, l := range s.Libs.Values(board.PointNone) {
		if l == lib1 || l == lib2 {
			continue
		}
		other = l
		found++
	}
	return other, found == 1
}

// isHalfEye reports whether p is a "complete half-eye": eye-like for one
// color or the other (our isEyeLike classification does not distinguish
// "complete" half-eyes from ordinary ones beyond that; see CheckSeki's doc
// comment on the adaptation this entails).
func isHalfEye(pos *board.Position, p board.Point) bool {
	return pos.IsSimpleEye(p, board.Black) || pos.IsSimpleEye(p, board.White)
}

// sameOuterNeighbor returns the one string id adjacent to p that is neither
// excl1 nor excl2, or NoString if there isn't exactly one such id.
func sameOuterNeighbor(pos *board.Position, p board.Point, excl1, excl2 board.StringID) board.StringID {
	ids := neighborStringIDs(pos, p, board.NoString)
	var out board.StringID = board.NoString
	found := 0
	for _, id := range ids {
		if id == excl1 || id == excl2 {
			continue
		}
		out = id
		found++
	}
	if found != 1 {
		return board.NoString
	}
	return out
}
