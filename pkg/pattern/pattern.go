// Package pattern implements the neighborhood pattern codes (3x3 and MD2..MD5) used
// to key the move-scoring parameter tables: incremental masked updates as stones are
// placed/removed, plus 8-fold dihedral and 16-fold (dihedral x color-flip) canonical
// form computation.
//
// Each ring is kept in its own bit-packed Code so that the "prefer MD5 if the target
// table lists it, else MD4, MD3, MD2, else 3x3" fallback of the move scorer can be
// expressed as literal table lookups on progressively smaller codes, rather than on
// progressively wider prefixes of one cumulative code.
package pattern

// Cell is the two-bit encoding of a single neighborhood position: empty, a color
// (absolute Black/White, not "own/enemy" -- perspective is normalized by ColorFlip),
// or off-board.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
	CellOff
)

// Code is a bit-packed ring pattern: two bits per ring position.
type Code uint64

// Ring identifies one of the five concentric neighborhood rings.
type Ring int

const (
	RingPat3 Ring = iota // Chebyshev distance 1: the 8 cells of the classic 3x3 pattern.
	RingMD2              // Manhattan distance exactly 2, excluding the 4 already in Pat3.
	RingMD3              // Manhattan distance exactly 3.
	RingMD4              // Manhattan distance exactly 4.
	RingMD5              // Manhattan distance exactly 5.
	NumRings
)

// Offset is one relative neighborhood position and its bit slot within its ring.
type Offset struct {
	DX, DY int
	Ring   Ring
	Slot   int // bit-pair index within the ring, in canonical (rotation-table) order
}

// offsets enumerates, in a fixed canonical order per ring, every relative position
// that contributes to one of the five rings. Built once at init time: purely
// combinatorial, independent of board size.
var offsets []Offset

// ringSize is the number of slots (2-bit fields) in each ring.
var ringSize [NumRings]int

func init() {
	add := func(dx, dy int, r Ring) {
		offsets = append(offsets, Offset{DX: dx, DY: dy, Ring: r, Slot: ringSize[r]})
		ringSize[r]++
	}

	// Pat3: Chebyshev distance 1, canonical clockwise order N,NE,E,SE,S,SW,W,NW.
	pat3Dirs := [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	for _, d := range pat3Dirs {
		add(d[0], d[1], RingPat3)
	}

	// MD2..MD5: Manhattan distance exactly k, excluding cells already claimed by
	// Pat3 (the four Manhattan-2 diagonals). Canonical order: by angle, starting
	// from the top (-y axis) and sweeping clockwise.
	for k := 2; k <= 5; k++ {
		ring := ringOf(k)
		for _, d := range manhattanRing(k) {
			if k == 2 && abs(d[0]) == 1 && abs(d[1]) == 1 {
				continue // already in Pat3
			}
			add(d[0], d[1], ring)
		}
	}
}

func ringOf(k int) Ring {
	switch k {
	case 2:
		return RingMD2
	case 3:
		return RingMD3
	case 4:
		return RingMD4
	default:
		return RingMD5
	}
}

// manhattanRing returns, in clockwise angular order starting from (0,-k), every
// (dx,dy) with |dx|+|dy| == k.
func manhattanRing(k int) [][2]int {
	var out [][2]int
	for dx := 0; dx <= k; dx++ {
		dy := k - dx
		out = append(out, [2]int{dx, -dy})
	}
	for dy := 1; dy <= k; dy++ {
		dx := k - dy
		out = append(out, [2]int{dx, dy})
	}
	for dx := k - 1; dx >= -k; dx-- {
		dy := k - abs(dx)
		out = append(out, [2]int{dx, dy})
	}
	for dx := -k + 1; dx < 0; dx++ {
		dy := -(k - abs(dx))
		out = append(out, [2]int{dx, dy})
	}
	// Deduplicate while preserving order (corners are emitted twice by construction).
	seen := map[[2]int]bool{}
	var dedup [][2]int
	for _, d := range out {
		if seen[d] {
			continue
		}
		seen[d] = true
		dedup = append(dedup, d)
	}
	return dedup
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Offsets returns the full neighborhood-offset catalog.
func Offsets() []Offset {
	return offsets
}

// RingSize returns the number of 2-bit slots in ring r.
func RingSize(r Ring) int {
	return ringSize[r]
}

// State is a point's neighborhood-pattern state: one Code per ring.
type State struct {
	Rings [NumRings]Code
}

// Set writes a cell value into ring r, slot i (two-bit field), leaving other slots
// untouched -- the masked update of §4.B.
func (s *State) Set(r Ring, slot int, c Cell) {
	shift := uint(slot * 2)
	mask := Code(0x3) << shift
	s.Rings[r] = (s.Rings[r] &^ mask) | (Code(c) << shift)
}

// Get reads the cell value at ring r, slot i.
func (s *State) Get(r Ring, slot int) Cell {
	shift := uint(slot * 2)
	return Cell((s.Rings[r] >> shift) & 0x3)
}

// Key returns the canonical storage key (smallest of the 16 dihedral x color-flip
// forms) of ring r's code.
func (s *State) Key(r Ring) Code {
	return Canonical16(s.Rings[r], r)
}
