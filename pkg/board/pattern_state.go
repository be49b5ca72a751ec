package board

import "github.com/kobanium/Ray-sub001/pkg/pattern"

// patternDelta is one pattern.Offset translated into this Geometry's Point arithmetic:
// if a stone changes at point q, every center p with p+Delta==q must update the
// named ring/slot. Precomputed once per Geometry at NewPosition time.
type patternDelta struct {
	Delta Point
	Ring  pattern.Ring
	Slot  int
}

func buildPatternDeltas(g *Geometry) []patternDelta {
	out := make([]patternDelta, 0, len(pattern.Offsets()))
	for _, o := range pattern.Offsets() {
		out = append(out, patternDelta{
			Delta: g.Point(Border+o.DX, Border+o.DY) - g.Point(Border, Border),
			Ring:  o.Ring,
			Slot:  o.Slot,
		})
	}
	return out
}

// initPatterns marks every on-board point's permanently off-board neighborhood
// slots. On-board slots default to CellEmpty (the zero value) and are touched only
// as stones come and go.
func (pos *Position) initPatterns() {
	for _, p := range pos.geom.Points() {
		for _, d := range pos.deltas {
			q := p + d.Delta
			if !pos.geom.OnBoard(q) {
				pos.pat[p].Set(d.Ring, d.Slot, pattern.CellOff)
			}
		}
	}
}

// updatePatterns propagates a cell change at q (now holding cell) to every on-board
// neighbor within radius 5, via the precomputed incremental masks.
func (pos *Position) updatePatterns(q Point, cell pattern.Cell) {
	for _, d := range pos.deltas {
		p := q - d.Delta
		if pos.geom.OnBoard(p) {
			pos.pat[p].Set(d.Ring, d.Slot, cell)
		}
	}
}

func stoneToCell(s Stone) pattern.Cell {
	switch s {
	case BlackStone:
		return pattern.CellBlack
	case WhiteStone:
		return pattern.CellWhite
	case OffBoardStone:
		return pattern.CellOff
	default:
		return pattern.CellEmpty
	}
}

// Pattern returns the neighborhood pattern state centered at p.
func (pos *Position) Pattern(p Point) pattern.State {
	return pos.pat[p]
}
