package mcts

import (
	"math/rand"
	"sync"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/feature"
	"github.com/kobanium/Ray-sub001/pkg/playout"
	"github.com/kobanium/Ray-sub001/pkg/score"
	"github.com/kobanium/Ray-sub001/pkg/tt"
)

// virtualLoss is the per-descent penalty applied to a child/node while a
// worker is still below it, so concurrent workers spread out across the
// tree instead of all picking the current best child, per §5.
const virtualLoss = 3

// Tree owns one search's node pool, transposition store and the two
// parameter sets (tree prior vs. playout rating) the original splits across
// uct_params/ and sim_params/. One Tree instance is reused across a whole
// game via SetRoot's subtree-reuse pruning, mirroring §4.F/§5.
type Tree struct {
	pool          *Pool
	tt            *tt.Table
	treeScorer    *score.Scorer
	rolloutScorer *score.Scorer

	expMu sync.Mutex

	rootMu  sync.RWMutex
	rootIdx int32
	rootPos *board.Position // immutable snapshot; every descent forks it
}

// NewTree builds a Tree with a node pool of nodeCapacity and a transposition
// store of at least ttCapacity slots. treeScorer must be built from a
// uct_params/ Tables (the selection prior); rolloutScorer from a sim_params/
// Tables (playout.Run's candidate rating).
func NewTree(nodeCapacity, ttCapacity int, treeScorer, rolloutScorer *score.Scorer) *Tree {
	return &Tree{
		pool:          NewPool(nodeCapacity),
		tt:            tt.New(ttCapacity),
		treeScorer:    treeScorer,
		rolloutScorer: rolloutScorer,
	}
}

// SetRoot points the tree at pos: reuses the matching transposition-table
// entry if pos was already reached by a previous search (subtree reuse,
// §4.F), else expands a fresh root node. Either way, every node/tt slot not
// reachable from the new root is pruned by mark-and-sweep afterward.
//
// Callers must ensure every Simulate worker from the previous search has
// returned before calling SetRoot: pruning frees pool slots for reuse, and a
// worker still mid-descent through the old tree holds only a plain node
// index, not a lock on the slot it points at. This matches §5's search
// lifecycle -- the harness's Halt completes before the next SetRoot, exactly
// as the teacher's Launcher/Handle stops a search before starting the next.
func (t *Tree) SetRoot(pos *board.Position) {
	t.rootMu.Lock()
	defer t.rootMu.Unlock()

	snapshot := pos.Fork()
	hash, color, moves := snapshot.MoveHash(), snapshot.Turn(), snapshot.MoveCount()

	idx, ok := t.tt.Find(hash, color, moves)
	if !ok {
		node := t.buildNode(snapshot)
		idx, ok = t.pool.Alloc(node)
		if !ok {
			// Pool exhausted with no reusable root: the mark-and-sweep below
			// has nothing to save yet, so a full clear is the only way
			// forward, matching §5's "no-subtree-reuse full clear" path.
			t.pool.Reset()
			t.tt.Clear()
			idx, _ = t.pool.Alloc(node)
		}
		t.tt.Reserve(hash, color, moves, idx)
	}

	t.rootIdx = idx
	t.rootPos = snapshot

	keep := t.reachable(idx)
	t.pool.Retain(keep)
	t.tt.Retain(keep)
}

// reachable walks every node reachable from root via expanded children and
// returns their pool indices, for Pool.Retain/tt.Table.Retain.
func (t *Tree) reachable(root int32) map[int32]bool {
	keep := map[int32]bool{root: true}
	queue := []int32{root}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		node := t.pool.Get(idx)
		if node == nil {
			continue
		}
		for _, c := range node.Children {
			if childIdx, ok := c.NodeIndex(); ok && !keep[childIdx] {
				keep[childIdx] = true
				queue = append(queue, childIdx)
			}
		}
	}
	return keep
}

// buildNode expands pos into a fresh Node: refreshes the move-dependent
// tactical features, assembles legal non-eye non-unmeaningful-self-atari
// candidates, scores them (plus pass) with the tree prior, and records the
// seki shapes live in the position, exactly mirroring playout.Run's
// candidate-building loop but scoring with treeScorer instead of sampling.
func (t *Tree) buildNode(pos *board.Position) *Node {
	color := pos.Turn()
	feature.RefreshAfterMove(pos, color)

	g := pos.Geometry()
	var candidates []board.Point
	for _, p := range g.Points() {
		if !pos.IsLegalNotEye(p, color) {
			continue
		}
		if !feature.CheckSelfAtari(pos, color, p) {
			continue
		}
		feature.CheckCapture(pos, color, p)
		feature.CheckAtari(pos, color, p)
		candidates = append(candidates, p)
	}

	priors := t.treeScorer.Analyze(pos, color, candidates)
	n := NewNode(color, pos.LastMove(), pos.PreviousMove(), candidates, priors)
	n.Seki = feature.CheckSeki(pos)
	return n
}

// applyMove plays move (board.PointPass included) by color onto pos.
func applyMove(pos *board.Position, color board.Color, move board.Point) {
	if move == board.PointPass {
		pos.Pass(color)
		return
	}
	// A child's move came from buildNode's own legality scan of this exact
	// position, so PlaceStone cannot fail here; pos.Pass as a last resort
	// only guards against that invariant somehow not holding.
	if err := pos.PlaceStone(move, color, true); err != nil {
		pos.Pass(color)
	}
}

// step is one edge traversed during a descent, kept so backprop can update
// every node/child along the path once the playout result is known.
type step struct {
	node  *Node
	child *Child
}

// Simulate runs one full MCTS iteration from the current root: select down
// through expanded nodes with UCB1-Tuned + prior bonus, applying virtual
// loss as it goes; once it reaches an unexpanded child, either run a
// playout.Run rollout from there (below the expansion-visit threshold) or
// expand a new node and keep descending one more level, then backpropagate
// the result (win/visit counts and ownership/criticality stats) up the
// path. rng is per-worker and must not be shared across concurrent callers.
func (t *Tree) Simulate(rng *rand.Rand) {
	t.rootMu.RLock()
	rootIdx := t.rootIdx
	pos := t.rootPos.Fork()
	t.rootMu.RUnlock()

	rootColor := pos.Turn()
	nodeIdx := rootIdx
	var path []step

	for {
		node := t.pool.Get(nodeIdx)
		if node == nil {
			t.undoVirtualLoss(path)
			return
		}

		child := selectChild(node, rng)
		if child == nil {
			t.undoVirtualLoss(path)
			return
		}

		child.VirtualLoss.Add(virtualLoss)
		node.VirtualLoss.Add(virtualLoss)
		path = append(path, step{node: node, child: child})

		applyMove(pos, node.ToMove, child.Move)

		if pos.PassCount() >= 2 {
			t.backprop(path, terminalResult(pos, rootColor))
			return
		}

		if childIdx, ok := child.NodeIndex(); ok {
			nodeIdx = childIdx
			continue
		}

		threshold := expansionThreshold(pos.Geometry().Size, false)
		if child.Visits.Load() < threshold {
			t.backprop(path, t.rollout(pos, rootColor, rng))
			return
		}

		idx, expanded := t.expandChild(pos, child)
		if !expanded {
			// Node store full mid-search (§7): fall back to a rollout from
			// here rather than blocking the descent on free capacity.
			t.backprop(path, t.rollout(pos, rootColor, rng))
			return
		}
		nodeIdx = idx
	}
}

// rollout dispatches into pkg/playout from pos (already forked/mutated by
// this descent), scoring candidates with the tree's sim_params/ scorer.
func (t *Tree) rollout(pos *board.Position, rootColor board.Color, rng *rand.Rand) playout.Result {
	return playout.Run(pos, pos.Turn(), rootColor, t.rolloutScorer, rng)
}

// terminalResult scores a position the tree itself walked to two
// consecutive passes, without entering pkg/playout at all, packaged as the
// same Result shape a rollout would have produced so backprop has one
// uniform path.
func terminalResult(pos *board.Position, rootColor board.Color) playout.Result {
	terr := pos.CalculateScore()
	winner := board.Black
	if terr.Score < 0 {
		winner = board.White
	}
	return playout.Result{
		Territory: terr,
		Winner:    winner,
		RootWin:   winner == rootColor,
		Ownership: pos.Ownership(),
	}
}

// expandChild allocates (or reuses, via the transposition store) the
// successor node for child once it has crossed the expansion-visit
// threshold, under the global expansion mutex per §5's "node allocation and
// transposition-store lookup happen under one global lock."
func (t *Tree) expandChild(pos *board.Position, child *Child) (int32, bool) {
	t.expMu.Lock()
	defer t.expMu.Unlock()

	if idx, ok := child.NodeIndex(); ok {
		// Another worker won this expansion while we waited for the lock.
		return idx, true
	}

	hash, color, moves := pos.MoveHash(), pos.Turn(), pos.MoveCount()
	if idx, ok := t.tt.Find(hash, color, moves); ok {
		child.trySetNodeIndex(idx)
		return idx, true
	}

	node := t.buildNode(pos)
	idx, ok := t.pool.Alloc(node)
	if !ok {
		return 0, false
	}
	child.trySetNodeIndex(idx)
	t.tt.Reserve(hash, color, moves, idx)
	return idx, true
}

// backprop updates every node/child visited during a descent with the
// playout outcome (win/visit counts, ownership/criticality stats), releases
// the virtual loss the descent applied, and runs progressive widening's
// visit-threshold and periodic re-sort checks, per §4.G/§5.
func (t *Tree) backprop(path []step, result playout.Result) {
	for _, st := range path {
		win := 0.0
		if result.Winner == st.node.ToMove {
			win = 1.0
		}

		st.child.WinSum.Add(win)
		st.child.Visits.Add(1)
		st.child.VirtualLoss.Add(-virtualLoss)

		st.node.WinSum.Add(win)
		st.node.Visits.Add(1)
		st.node.VirtualLoss.Add(-virtualLoss)
		st.node.addPlayoutStats(result.Ownership, result.Winner)

		n := st.node
		maybeWiden(n,
			func(p board.Point) float64 { return OwnerBonus(n, p) },
			func(p board.Point) float64 { return CriticalityBonus(n, p) },
		)
	}
}

// undoVirtualLoss releases virtual loss applied along path without a
// completed result, for the defensive bail-out when selection unexpectedly
// finds no open child.
func (t *Tree) undoVirtualLoss(path []step) {
	for _, st := range path {
		st.child.VirtualLoss.Add(-virtualLoss)
		st.node.VirtualLoss.Add(-virtualLoss)
	}
}

// RootNode returns the current root's Node, for callers (pkg/mcts/searchctl,
// pkg/engine) that need to read its children's visit counts to pick a move
// or report analysis.
func (t *Tree) RootNode() *Node {
	t.rootMu.RLock()
	defer t.rootMu.RUnlock()
	return t.pool.Get(t.rootIdx)
}

// Pool exposes the tree's node pool, for callers that want utilization
// (§7's pool-fullness monitoring).
func (t *Tree) Pool() *Pool { return t.pool }

// TT exposes the tree's transposition store, for the same reason.
func (t *Tree) TT() *tt.Table { return t.tt }
