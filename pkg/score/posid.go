package score

import "github.com/kobanium/Ray-sub001/pkg/board"

// SymmetryClass assigns each on-board point a board_pos_id-style symmetry
// class: points related by the board's 8-fold dihedral symmetry share a
// class, walking from the corner (class 1) inward to the center in the same
// order as the original's one-octant-at-a-time fill. Grounded directly on the board_pos_id
// construction loop in original_source/src/board/GoBoard.cpp, generalized
// from the hardcoded 19x19 table to Geometry.Size. Class 0 is never assigned
// (reserved, matching the original's std::fill_n(..., 0) default for any
// point the octant walk misses -- none should on an odd board, but the
// original keeps the slot reserved and so do we).
func SymmetryClass(g *board.Geometry) []int {
	ids := make(map[board.Point]int, len(g.Points()))

	center := board.Border + g.Size/2
	id := 1
	for y := board.Border; y <= center; y++ {
		for x := board.Border; x <= y; x++ {
			for _, p := range symmetricImages(g, x, y) {
				if _, ok := ids[p]; !ok {
					ids[p] = id
				}
			}
			id++
		}
	}

	maxPoint := 0
	for p := range ids {
		if int(p) > maxPoint {
			maxPoint = int(p)
		}
	}
	table := make([]int, maxPoint+1)
	for p, c := range ids {
		table[p] = c
	}
	return table
}

// symmetricImages returns the (up to) 8 points the board's dihedral symmetry
// maps (x,y) to, mirroring board_pos_id's eight POS(...) assignments per
// octant cell.
func symmetricImages(g *board.Geometry, x, y int) []board.Point {
	end := board.Border + g.Size - 1
	mirror := func(v int) int { return end + board.Border - v }

	seen := map[[2]int]bool{}
	var out []board.Point
	add := func(xx, yy int) {
		k := [2]int{xx, yy}
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, g.Point(xx, yy))
	}

	add(x, y)
	add(mirror(x), y)
	add(y, x)
	add(y, mirror(x))
	add(x, mirror(y))
	add(mirror(x), mirror(y))
	add(mirror(y), x)
	add(mirror(y), mirror(x))
	return out
}
