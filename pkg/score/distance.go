package score

import (
	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/feature"
)

// moveDistance is the octile-ish board distance the original's move-distance
// feature buckets on: dx+dy+max(dx,dy), clamped to MoveDistanceMax-1.
// Grounded on the DIS/move_dis macros in
// original_source/include/board/GoBoard.hpp and
// original_source/src/board/GoBoard.cpp.
func moveDistance(g *board.Geometry, p1, p2 board.Point) int {
	x1, y1 := g.XY(p1)
	x2, y2 := g.XY(p2)
	dx := abs(x1 - x2)
	dy := abs(y1 - y2)
	d := dx + dy
	if dx > dy {
		d += dx
	} else {
		d += dy
	}
	if d >= feature.MoveDistanceMax {
		d = feature.MoveDistanceMax - 1
	}
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
