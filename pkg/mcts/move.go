package mcts

import "github.com/kobanium/Ray-sub001/pkg/board"

// ResignThreshold is the win-rate below which BestMove reports Resign, per
// §4.G's "if its win-rate < resign threshold, return a resign sentinel."
// original_source/src/mcts/UctSearch.cpp compares against a RESIGN_THRESHOLD
// constant whose own definition isn't among the captured original_source
// headers (only its use site at UctSearch.cpp:1654 is); 0.10 is the
// conventional resign cutoff for engines of this lineage and is treated as
// an Open Question decision (see DESIGN.md).
const ResignThreshold = 0.10

// Result is the outcome of one completed search, per §4.G's move-selection
// and ownership-export rules.
type Result struct {
	Move      board.Point
	Resign    bool
	Visits    int64
	WinRate   float64
	Ownership map[board.Point]float64
}

// BestMove picks the root child with the most visits and reports whether its
// win rate falls below ResignThreshold, per §4.G's move-selection rule. Ties
// keep the child that comes first in root.Children: NewNode puts PASS first
// and the candidates after it by descending prior, and progressive widening
// may reorder them later.
func (t *Tree) BestMove() Result {
	root := t.RootNode()
	if root == nil || len(root.Children) == 0 {
		return Result{Move: board.PointPass}
	}

	var best *Child
	for _, c := range root.Children {
		if best == nil || c.Visits.Load() > best.Visits.Load() {
			best = c
		}
	}

	visits := best.Visits.Load()
	winRate := 0.0
	if visits > 0 {
		winRate = best.WinSum.Load() / float64(visits)
	}

	return Result{
		Move:      best.Move,
		Resign:    visits > 0 && winRate < ResignThreshold,
		Visits:    visits,
		WinRate:   winRate,
		Ownership: t.Ownership(),
	}
}

// Ownership returns the root's per-point black-ownership estimate in
// [-1, 1], averaged over every terminal position reached by a playout
// through the root so far, per §4.G's "ownership map... exported for
// cleanup endgame play."
func (t *Tree) Ownership() map[board.Point]float64 {
	root := t.RootNode()
	if root == nil {
		return nil
	}

	g := t.rootGeometry()
	out := make(map[board.Point]float64, len(g.Points()))
	for _, p := range g.Points() {
		out[p] = root.OwnershipOf(p)
	}
	return out
}

// rootGeometry returns the geometry of the current root position.
func (t *Tree) rootGeometry() *board.Geometry {
	t.rootMu.RLock()
	defer t.rootMu.RUnlock()
	return t.rootPos.Geometry()
}
