package board

// IsLegal implements the is_legal operation of §4.A: occupied-point, suicide and
// (simple and, if enabled, positional-super-) ko checks. Pass is always legal.
//
// The check is a trial application on a forked position rather than a hand-written
// predicate: Go legality is inherently a function of the post-move board (liberties
// after captures resolve), so simulating is both simpler and less bug-prone than
// re-deriving the same logic twice, and a Fork is cheap relative to one playout.
func (pos *Position) IsLegal(p Point, color Color) bool {
	if p == PointPass {
		return true
	}
	if !pos.geom.OnBoard(p) || pos.cell[p] != EmptyStone {
		return false
	}
	if p == pos.koPoint {
		return false
	}

	trial := pos.Fork()
	if err := trial.PlaceStone(p, color, false); err != nil {
		return false
	}
	if trial.pool[trial.strID[p]].NumLiberties() == 0 {
		return false // suicide
	}
	if pos.cfg.Superko && pos.seen != nil && pos.seen[trial.posHash] > 0 {
		return false
	}
	return true
}

// IsLegalNotEye reports legality and additionally excludes "obvious" single-point
// eyes of color, the cheap playout-time filter of §4.E that keeps random rollouts
// from filling in their own eyes.
func (pos *Position) IsLegalNotEye(p Point, color Color) bool {
	if !pos.IsLegal(p, color) {
		return false
	}
	return !pos.isEyeLike(p, color)
}

// IsSimpleEye reports whether p is an eye-like point for color, exported for
// the seki scan of §4.C (pkg/feature), which needs the same classification
// used by IsLegalNotEye but from outside this package.
func (pos *Position) IsSimpleEye(p Point, color Color) bool {
	return pos.isEyeLike(p, color)
}

// isEyeLike reports whether every orthogonal neighbor of the empty point p is a
// color stone or off-board, and at least 3 of the 4 diagonal neighbors are color
// stones or off-board (the classic false-eye-tolerant heuristic; 3-of-4 tightens to
// all-4 at board edges and corners, where some diagonals are off-board).
func (pos *Position) isEyeLike(p Point, color Color) bool {
	for _, n := range pos.geom.Neighbors4(p) {
		if !pos.geom.OnBoard(n) {
			continue // the board edge counts as part of the eye's wall
		}
		s, ok := pos.cell[n].Color()
		if !ok || s != color {
			return false
		}
	}

	diagOK, diagTotal := 0, 0
	for _, d := range pos.geom.Diagonals4(p) {
		if !pos.geom.OnBoard(d) {
			diagOK++ // off-board diagonal counts in color's favor (edge/corner eye)
			continue
		}
		diagTotal++
		if s, ok := pos.cell[d].Color(); ok && s == color {
			diagOK++
		}
	}
	if diagTotal == 0 {
		return true
	}
	need := 3
	if diagTotal < 4 {
		need = 4 // off-board diagonals already count in diagOK: every on-board diagonal must be friendly near an edge
	}
	return diagOK >= need
}
