package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// maxNakadeSize is the largest group the classic nakade catalog covers (straight
// three through rabbity six), per NAKADE_QUEUE_SIZE's bound in
// original_source/include/feature/Nakade.hpp.
const maxNakadeSize = 6

// isNakadeShape approximates IsUctNakadeSelfAtari/IsNakadeSelfAtari: the original
// engine matches the enclosed empty region against a precomputed hash table of the
// dozen-or-so classic dead shapes (straight three, T/square four, cross/bulky five,
// rabbity six). That shape catalog itself is not part of this pack, so this is
// reconstructed from the shared property those shapes all have: a small, compact
// (near-square) connected empty region with p as one of its points. See DESIGN.md.
func isNakadeShape(pos *board.Position, p board.Point, color board.Color) bool {
	region := emptyRegion(pos, p, maxNakadeSize)
	if len(region) == 0 || len(region) > maxNakadeSize {
		return false
	}

	minX, maxX, minY, maxY := region[0].x, region[0].x, region[0].y, region[0].y
	for _, r := range region[1:] {
		if r.x < minX {
			minX = r.x
		}
		if r.x > maxX {
			maxX = r.x
		}
		if r.y < minY {
			minY = r.y
		}
		if r.y > maxY {
			maxY = r.y
		}
	}
	w, h := maxX-minX+1, maxY-minY+1
	if w > 3 || h > 3 {
		return false
	}
	// at most two points of the bounding box may lie outside the region; what
	// occupies those points (own stones, enemy stones or other empty points) is
	// not checked.
	slack := w*h - len(region)
	return slack <= 2
}

type xy struct{ x, y int }

// emptyRegion flood-fills the connected empty region containing p, stopping early
// (returning a partial, over-limit slice) once it exceeds limit points.
func emptyRegion(pos *board.Position, p board.Point, limit int) []xy {
	g := pos.Geometry()
	seen := map[board.Point]bool{p: true}
	queue := []board.Point{p}
	var out []xy
	for len(queue) > 0 && len(out) <= limit {
		cur := queue[0]
		queue = queue[1:]
		x, y := g.XY(cur)
		out = append(out, xy{x, y})
		for _, n := range g.Neighbors4(cur) {
			if !g.OnBoard(n) || seen[n] || pos.Stone(n) != board.EmptyStone {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return out
}
