package board

import "math/rand"

// ZobristHash is a position hash based on stone placement. Position uses three
// rolling hashes (current, previous-1, previous-2) for ko bookkeeping, a positional
// hash (current board without ko bits) for superko detection, and a separate
// move-sequence hash (path-dependent) used as the transposition-store key.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// maxHashedPlies bounds the move-index dimension of the move-sequence hash table.
// Move indices beyond this wrap modulo maxHashedPlies: the path-dependent hash
// remains a valid (if coarser, beyond very long games) transposition-store key.
const maxHashedPlies = 1 << 11

// ZobristTable is the pseudo-randomized hash table for one Config (board size).
type ZobristTable struct {
	stone  [NumColors][]ZobristHash // [color][point]
	ko     []ZobristHash            // [point], mixed in when a point is the ko point
	pass   ZobristHash
	moves  [maxHashedPlies][NumColors][]ZobristHash // move_bit[move_index][color][point]
	geom   *Geometry
}

// NewZobristTable builds a hash table for the given geometry and seed. A fixed seed
// yields deterministic, reproducible search (required by the §8 test scenarios).
func NewZobristTable(geom *Geometry, seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))

	t := &ZobristTable{geom: geom}
	for c := Color(0); c < NumColors; c++ {
		t.stone[c] = make([]ZobristHash, geom.Len)
		for p := 0; p < geom.Len; p++ {
			t.stone[c][p] = ZobristHash(r.Uint64())
		}
	}
	t.ko = make([]ZobristHash, geom.Len)
	for p := 0; p < geom.Len; p++ {
		t.ko[p] = ZobristHash(r.Uint64())
	}
	t.pass = ZobristHash(r.Uint64())

	for ply := 0; ply < maxHashedPlies; ply++ {
		for c := Color(0); c < NumColors; c++ {
			t.moves[ply][c] = make([]ZobristHash, geom.Len)
			for p := 0; p < geom.Len; p++ {
				t.moves[ply][c][p] = ZobristHash(r.Uint64())
			}
		}
	}
	return t
}

// Stone returns the hash bit for a stone of the given color at p.
func (t *ZobristTable) Stone(c Color, p Point) ZobristHash {
	return t.stone[c][p]
}

// Ko returns the hash bit mixed in when p is the (new) ko point.
func (t *ZobristTable) Ko(p Point) ZobristHash {
	if !p.IsReal() {
		return 0
	}
	return t.ko[p]
}

// Pass returns the hash bit mixed in on a pass move.
func (t *ZobristTable) Pass() ZobristHash {
	return t.pass
}

// MoveBit returns move_bit[move_index][point][color], used by the move-sequence hash.
func (t *ZobristTable) MoveBit(moveIndex int, c Color, p Point) ZobristHash {
	if !p.IsReal() {
		p = 0
	}
	return t.moves[moveIndex%maxHashedPlies][c][p]
}
