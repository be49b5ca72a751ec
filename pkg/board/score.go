package board

// Territory is the result of CalculateScore: stones plus surrounded empty territory,
// per color, under Chinese (area) rules.
type Territory struct {
	BlackArea int
	WhiteArea int
	// Score is BlackArea - WhiteArea - Komi, from Black's perspective: positive
	// favors Black.
	Score float64
}

// CalculateScore implements the calculate_score operation of §4.A: Chinese-area
// scoring (stones + surrounded empty points) with the bent-four-in-the-corner
// correction, per SUPPLEMENTED FEATURES.
func (pos *Position) CalculateScore() Territory {
	t, _ := pos.scoreAndOwnership()
	return t
}

// Ownership returns, for every playable point, +1 if the final area assigns
// it to Black, -1 if to White, and 0 for a dame/neutral point -- the
// per-intersection signal pkg/mcts accumulates across playout outcomes into
// each node's running ownership/criticality estimate (§4.G). Shares the same
// flood fill CalculateScore uses so a caller that wants both (as a playout's
// terminal evaluation does) should prefer scoreAndOwnership-style callers
// over calling CalculateScore and Ownership separately.
func (pos *Position) Ownership() map[Point]float64 {
	_, ownership := pos.scoreAndOwnership()
	return ownership
}

// scoreAndOwnership runs the flood fill once and returns both the aggregate
// Territory and the per-point ownership map, so playout's terminal
// evaluation (which wants both) does the work exactly once.
func (pos *Position) scoreAndOwnership() (Territory, map[Point]float64) {
	owner := pos.floodFillTerritory()
	pos.correctBentFourInCorner(owner)

	var t Territory
	ownership := make(map[Point]float64, len(pos.geom.Points()))
	for _, p := range pos.geom.Points() {
		switch owner[p] {
		case ownerBlack:
			t.BlackArea++
			ownership[p] = 1
		case ownerWhite:
			t.WhiteArea++
			ownership[p] = -1
		default:
			ownership[p] = 0
		}
	}
	t.Score = float64(t.BlackArea) - float64(t.WhiteArea) - pos.cfg.Komi
	return t, ownership
}

type territoryOwner uint8

const (
	ownerNone territoryOwner = iota
	ownerBlack
	ownerWhite
	ownerDame // empty, bordering both colors: counts for neither
)

// floodFillTerritory assigns every point a stone color (from pos.cell) or, for
// empty regions, the single bordering color if the whole connected empty region
// touches exactly one color (else ownerDame).
func (pos *Position) floodFillTerritory() []territoryOwner {
	owner := make([]territoryOwner, pos.geom.Len)
	visited := make([]bool, pos.geom.Len)

	for _, p := range pos.geom.Points() {
		if c, ok := pos.cell[p].Color(); ok {
			if c == Black {
				owner[p] = ownerBlack
			} else {
				owner[p] = ownerWhite
			}
		}
	}

	for _, start := range pos.geom.Points() {
		if pos.cell[start] != EmptyStone || visited[start] {
			continue
		}
		region := []Point{start}
		visited[start] = true
		touchesBlack, touchesWhite := false, false

		for i := 0; i < len(region); i++ {
			cur := region[i]
			for _, n := range pos.geom.Neighbors4(cur) {
				if !pos.geom.OnBoard(n) {
					continue
				}
				switch pos.cell[n] {
				case EmptyStone:
					if !visited[n] {
						visited[n] = true
						region = append(region, n)
					}
				case BlackStone:
					touchesBlack = true
				case WhiteStone:
					touchesWhite = true
				}
			}
		}

		var result territoryOwner
		switch {
		case touchesBlack && !touchesWhite:
			result = ownerBlack
		case touchesWhite && !touchesBlack:
			result = ownerWhite
		default:
			result = ownerDame
		}
		for _, p := range region {
			owner[p] = result
		}
	}
	return owner
}

// correctBentFourInCorner is the engine's pre-counting corner correction: at each
// corner it looks at the 2x2 block of points touching the corner point, and when
// those four points hold one four-stone string with exactly two liberties, the
// stones and both liberties are reassigned to the opposing color's area. The
// bent-four shape itself (a bent line of four eye points in the corner) is not
// recognised, and where the two liberties lie is not checked. Boards smaller than
// 4x4 are skipped.
func (pos *Position) correctBentFourInCorner(owner []territoryOwner) {
	if pos.geom.Size < 4 {
		return
	}
	corners := [4][2]int{
		{Border, Border},
		{Border + pos.geom.Size - 1, Border},
		{Border, Border + pos.geom.Size - 1},
		{Border + pos.geom.Size - 1, Border + pos.geom.Size - 1},
	}
	for _, c := range corners {
		pos.correctBentFourAtCorner(owner, c[0], c[1])
	}
}

// correctBentFourAtCorner checks the single corner whose outer point is (cx, cy)
// for one four-stone string filling the 2x2 block at that corner and, if it has
// exactly two liberties, reassigns its stones and liberties to the opposing color.
func (pos *Position) correctBentFourAtCorner(owner []territoryOwner, cx, cy int) {
	dx, dy := 1, 1
	if cx > Border {
		dx = -1
	}
	if cy > Border {
		dy = -1
	}
	shape := [4][2]int{
		{cx, cy}, {cx + dx, cy}, {cx, cy + dy}, {cx + dx, cy + dy},
	}

	var id StringID = NoString
	var color Color
	for i, c := range shape {
		p := pos.geom.Point(c[0], c[1])
		s, ok := pos.cell[p].Color()
		if !ok {
			return
		}
		sid := pos.strID[p]
		if i == 0 {
			id, color = sid, s
		} else if sid != id {
			return // not all one string
		}
	}

	s := pos.pool[id]
	if s.Size != 4 || s.NumLiberties() != 2 {
		return
	}

	enclosing := ownerBlack
	if color == Black {
		enclosing = ownerWhite
	}
	for _, lib := range s.Libs.Values(PointNone) {
		owner[lib] = enclosing
	}
	for _, c := range shape {
		owner[pos.geom.Point(c[0], c[1])] = enclosing
	}
}
