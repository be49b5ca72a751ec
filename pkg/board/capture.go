package board

import "github.com/kobanium/Ray-sub001/pkg/pattern"

// removeString implements string_remove of §4.A: lifts every stone of id off the
// board, restores the vacated points as liberties to neighboring strings, updates
// the rolling hash and pattern state, and records the capture for ko/feature
// bookkeeping.
func (pos *Position) removeString(id StringID, by Color) {
	s := pos.pool[id]
	members := pos.StringMembers(id)

	for _, p := range members {
		pos.hashCur ^= pos.zt.Stone(s.Color, p)
		pos.posHash ^= pos.zt.Stone(s.Color, p)

		pos.cell[p] = EmptyStone
		pos.strID[p] = NoString
		pos.updatePatterns(p, pattern.CellEmpty)
		pos.clearFeatures(p)
		pos.markDirtyAround(p)
	}
	for _, p := range members {
		pos.addLibertyToNeighbors(p)
	}
	for _, nb := range s.Nbrs.Values(NoString) {
		if n := pos.pool[nb]; n != nil && n.Exists {
			n.Nbrs.Remove(id, NoString)
		}
	}

	pos.capturesBy[by] += len(members)
	pos.capturedThisMove[by] = append(pos.capturedThisMove[by], members...)

	pos.freeString(id)
}

// markDirtyAround records p and its on-board neighbors as needing feature
// recomputation (the move-local invalidation window of §4.C).
func (pos *Position) markDirtyAround(p Point) {
	pos.MarkDirty(p)
	for _, n := range pos.geom.Neighbors4(p) {
		if pos.geom.OnBoard(n) {
			pos.MarkDirty(n)
		}
	}
}

// captureZeroLibertyNeighbors removes every enemy string adjacent to the just-played
// stone at p that has been reduced to zero liberties. Returns the single captured
// point if exactly one stone was taken (a ko candidate), else PointNone.
func (pos *Position) captureZeroLibertyNeighbors(p Point, mover Color) Point {
	var koCandidate Point = PointNone
	captured := 0
	seen := map[StringID]bool{}

	for _, n := range pos.geom.Neighbors4(p) {
		if !pos.geom.OnBoard(n) {
			continue
		}
		id := pos.strID[n]
		if id == NoString || seen[id] {
			continue
		}
		s := pos.pool[id]
		if s.Color == mover {
			continue
		}
		seen[id] = true
		if s.NumLiberties() == 0 {
			if s.Size == 1 {
				koCandidate = s.Origin
			}
			captured += s.Size
			pos.removeString(id, mover)
		}
	}
	if captured == 1 {
		return koCandidate
	}
	return PointNone
}
