// Package mcts implements the parallel Monte-Carlo tree search core of
// MODULE G: pooled nodes, UCB1-Tuned + prior-bonus selection with
// progressive widening, virtual-loss parallel descent/backprop, and
// ownership/criticality accumulation from simulation outcomes.
//
// Grounded throughout on the teacher's own iterative-deepening search
// harness (pkg/search/iterative.go, pkg/search/searchctl) for the
// Launcher/Handle channel-driven shape, and on
// original_source/include/mcts/MCTSNode.hpp / src/mcts/UctSearch.cpp for the
// MCTS-specific node/child layout and the selection formula itself -- an
// algorithm the chess teacher has no equivalent of (alpha-beta has no
// visit-count tree to walk), so this part is necessarily new rather than
// adapted, built in the teacher's concurrency idiom (go.uber.org/atomic
// counters plus a small per-node sync.Mutex, exactly as
// pkg/search/iterative.go's handle already combines the two).
package mcts

import (
	"sort"
	"sync"

	"go.uber.org/atomic"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

// UnexpandedChild is the Child.node sentinel meaning "no successor node
// allocated yet."
const UnexpandedChild int32 = -1

// Child is one MCTS child edge: a candidate move plus its own visit
// statistics and, once expanded, the pool index of its successor Node.
// Fields not on the Visits/VirtualLoss/WinSum hot path are plain values
// guarded by the parent Node's mutex, per §5: "per-node mutex... held
// briefly during selection and virtual-loss increment."
type Child struct {
	Move board.Point

	Visits      atomic.Int64
	VirtualLoss atomic.Int64
	WinSum      atomic.Float64
	node        atomic.Int32 // pool index, or UnexpandedChild

	Prior float64 // set once at expansion time, read-only after

	// Open is whether this child is currently eligible for selection
	// (progressive widening has opened it, or it is forced open -- PASS is
	// always forced open, matching §4.G's "always a PASS child").
	Open bool
	// Forced marks a child that progressive widening must never close back
	// off (currently only PASS).
	Forced bool
	// LadderCapturable is recomputed on root reuse (§4.G: "recompute ladder
	// flags... of candidates that have become ladder-capturable").
	LadderCapturable bool
}

func newChild(move board.Point, prior float64, forced bool) *Child {
	c := &Child{Move: move, Prior: prior, Forced: forced, Open: forced}
	c.node.Store(UnexpandedChild)
	return c
}

// NodeIndex returns the pool index of this child's successor node, or
// (UnexpandedChild, false) if not yet expanded.
func (c *Child) NodeIndex() (int32, bool) {
	idx := c.node.Load()
	return idx, idx != UnexpandedChild
}

// trySetNodeIndex atomically claims this child's expansion slot: returns
// true only for the caller that wins the race (others observe the winner's
// index instead of allocating a second node for the same child).
func (c *Child) trySetNodeIndex(idx int32) bool {
	return c.node.CAS(UnexpandedChild, idx)
}

// Node is one MCTS tree node: move context, aggregate visit/win statistics,
// progressive-widening state, children, and per-intersection seki/ownership
// accumulators, per §3's "MCTS node" field list.
type Node struct {
	mu sync.Mutex

	PrevMove  board.Point // the move that led to this node
	Move2Ago  board.Point // the move before that
	ToMove    board.Color // color to move at this node

	Visits      atomic.Int64
	WinSum      atomic.Float64
	VirtualLoss atomic.Int64

	width int // progressive-widening currently-open child count; under mu

	Children []*Child

	// Seki holds the per-intersection seki flags computed at expansion time
	// (feature.CheckSeki's output, keyed by board.Point).
	Seki map[board.Point]bool

	// stats[p] accumulates, across every playout reaching this node, how
	// often p finished Black's, how often White's, and how often p's final
	// color matched that playout's winner -- the raw counts
	// CalculateOwnerIndex/CalculateCriticalityIndex (criticality.go) turn
	// into the owner/criticality re-sort bonuses of §4.G.
	stats map[board.Point]*pointStat
}

// pointStat is one point's running playout-outcome tally within a node.
type pointStat struct {
	black, white int64
	// winner counts playouts where this point's final owner matched that
	// playout's overall winner (original_source's statistic[pos].colors[0]).
	winner int64
}

// NewNode allocates a node's children from candidates (always including
// PASS, forced open per §4.G) plus the prior score map Analyze produced.
// Candidates are sorted by descending prior so the initial width opens the
// strongest real move alongside PASS rather than leaving the node unable to
// select anything but PASS until the first progressive-widening step.
func NewNode(toMove board.Color, prevMove, move2Ago board.Point, candidates []board.Point, priors map[board.Point]float64) *Node {
	n := &Node{
		ToMove:   toMove,
		PrevMove: prevMove,
		Move2Ago: move2Ago,
		stats:    make(map[board.Point]*pointStat),
	}

	sorted := append([]board.Point(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priors[sorted[i]] > priors[sorted[j]]
	})

	n.Children = make([]*Child, 0, len(sorted)+1)
	n.Children = append(n.Children, newChild(board.PointPass, priors[board.PointPass], true))
	for _, p := range sorted {
		n.Children = append(n.Children, newChild(p, priors[p], false))
	}

	n.width = 1
	if len(n.Children) > 1 {
		n.Children[1].Open = true
		n.width = 2
	}
	return n
}

// Width returns the current progressive-widening open-child count.
func (n *Node) Width() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.width
}

// OwnershipOf returns the running black-ownership estimate for p in [-1, 1],
// averaged over every playout's outcome reaching this node so far.
func (n *Node) OwnershipOf(p board.Point) float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	visits := n.Visits.Load()
	s := n.stats[p]
	if visits == 0 || s == nil {
		return 0
	}
	return float64(s.black-s.white) / float64(visits)
}

// addPlayoutStats records one playout's terminal ownership outcome against
// every point, plus whether that point's owner matched the playout's overall
// winner, called once per completed descent under n.mu.
func (n *Node) addPlayoutStats(ownership map[board.Point]float64, winner board.Color) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for p, v := range ownership {
		s := n.stats[p]
		if s == nil {
			s = &pointStat{}
			n.stats[p] = s
		}
		switch {
		case v > 0:
			s.black++
			if winner == board.Black {
				s.winner++
			}
		case v < 0:
			s.white++
			if winner == board.White {
				s.winner++
			}
		}
	}
}

// Pool is the fixed-capacity MCTS node pool of §3/§5: nodes are allocated
// from a free list backed by a single preallocated slice, so capacity never
// grows at runtime and a freed (mark-and-swept) slot is reused rather than
// left to the garbage collector -- the closest idiomatic Go match to the
// original's hand-managed node arena.
type Pool struct {
	mu    sync.Mutex
	nodes []*Node
	used  []bool
	free  []int32
	next  int32
}

// NewPool allocates a pool with room for exactly capacity nodes.
func NewPool(capacity int) *Pool {
	return &Pool{
		nodes: make([]*Node, capacity),
		used:  make([]bool, capacity),
	}
}

// Capacity returns the pool's fixed node count.
func (p *Pool) Capacity() int {
	return len(p.nodes)
}

// Alloc reserves a slot for n and returns its pool index, or ok=false if the
// pool is exhausted -- the node-store-full condition of §7, which callers
// must treat as "skip expansion for this descent" rather than an error.
func (p *Pool) Alloc(n *Node) (int32, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if l := len(p.free); l > 0 {
		idx := p.free[l-1]
		p.free = p.free[:l-1]
		p.nodes[idx] = n
		p.used[idx] = true
		return idx, true
	}
	if int(p.next) >= len(p.nodes) {
		return 0, false
	}
	idx := p.next
	p.next++
	p.nodes[idx] = n
	p.used[idx] = true
	return idx, true
}

// Get returns the node stored at idx.
func (p *Pool) Get(idx int32) *Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nodes[idx]
}

// Retain is the node-pool half of mark-and-sweep subtree reuse: every
// currently-used slot whose index is not in keep is released back to the
// free list (its Node dropped so the pool holds no reference past the
// sweep, letting the GC reclaim it once pkg/tt's own Retain has dropped the
// matching transposition-store entry too).
func (p *Pool) Retain(keep map[int32]bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := int32(0); i < p.next; i++ {
		if !p.used[i] || keep[i] {
			continue
		}
		p.used[i] = false
		p.nodes[i] = nil
		p.free = append(p.free, i)
	}
}

// Reset releases every node back to the pool, for the no-subtree-reuse
// full-clear path of §5.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.nodes {
		p.nodes[i] = nil
	}
	for i := range p.used {
		p.used[i] = false
	}
	p.free = p.free[:0]
	p.next = 0
}

// Used returns the fraction of the pool currently allocated.
func (p *Pool) Used() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return float64(p.next-int32(len(p.free))) / float64(len(p.nodes))
}
