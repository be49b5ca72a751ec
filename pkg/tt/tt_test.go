package tt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

func TestCapacityRoundsUpToPowerOfTwo(t *testing.T) {
	tbl := New(10)
	require.Equal(t, 16, tbl.Capacity())
}

func TestReserveThenFind(t *testing.T) {
	tbl := New(8)
	ok := tbl.Reserve(board.ZobristHash(42), board.Black, 3, 7)
	require.True(t, ok)

	node, found := tbl.Find(board.ZobristHash(42), board.Black, 3)
	require.True(t, found)
	require.EqualValues(t, 7, node)
}

func TestFindMissesOnDiscriminatorMismatch(t *testing.T) {
	tbl := New(8)
	require.True(t, tbl.Reserve(board.ZobristHash(42), board.Black, 3, 7))

	_, found := tbl.Find(board.ZobristHash(42), board.White, 3)
	require.False(t, found)

	_, found = tbl.Find(board.ZobristHash(42), board.Black, 4)
	require.False(t, found)
}

func TestReserveOverwritesMatchingKeyInPlace(t *testing.T) {
	tbl := New(8)
	require.True(t, tbl.Reserve(board.ZobristHash(1), board.Black, 1, 5))
	require.True(t, tbl.Reserve(board.ZobristHash(1), board.Black, 1, 9))

	node, found := tbl.Find(board.ZobristHash(1), board.Black, 1)
	require.True(t, found)
	require.EqualValues(t, 9, node)
	require.Equal(t, 1, int(tbl.Used()*float64(tbl.Capacity())))
}

func TestCollidingHashesProbeToDistinctSlots(t *testing.T) {
	tbl := New(4)
	// All four keys collide on slot 0 mod 4: linear probing must still find
	// each of them on its own chain.
	require.True(t, tbl.Reserve(board.ZobristHash(0), board.Black, 0, 1))
	require.True(t, tbl.Reserve(board.ZobristHash(4), board.Black, 0, 2))
	require.True(t, tbl.Reserve(board.ZobristHash(8), board.Black, 0, 3))
	require.True(t, tbl.Reserve(board.ZobristHash(12), board.Black, 0, 4))

	for hash, want := range map[board.ZobristHash]int32{0: 1, 4: 2, 8: 3, 12: 4} {
		node, found := tbl.Find(hash, board.Black, 0)
		require.True(t, found)
		require.Equal(t, want, node)
	}
}

func TestReserveFailsWhenTableFull(t *testing.T) {
	tbl := New(2)
	require.True(t, tbl.Reserve(board.ZobristHash(0), board.Black, 0, 1))
	require.True(t, tbl.Reserve(board.ZobristHash(1), board.Black, 0, 2))

	ok := tbl.Reserve(board.ZobristHash(2), board.Black, 0, 3)
	require.False(t, ok)
}

func TestRetainSweepsUnreachableSlots(t *testing.T) {
	tbl := New(8)
	require.True(t, tbl.Reserve(board.ZobristHash(1), board.Black, 1, 10))
	require.True(t, tbl.Reserve(board.ZobristHash(2), board.Black, 1, 20))
	require.True(t, tbl.Reserve(board.ZobristHash(3), board.Black, 1, 30))

	tbl.Retain(map[int32]bool{20: true})

	_, found := tbl.Find(board.ZobristHash(1), board.Black, 1)
	require.False(t, found)
	node, found := tbl.Find(board.ZobristHash(2), board.Black, 1)
	require.True(t, found)
	require.EqualValues(t, 20, node)
	_, found = tbl.Find(board.ZobristHash(3), board.Black, 1)
	require.False(t, found)
}

func TestClearResetsEveryEntry(t *testing.T) {
	tbl := New(8)
	require.True(t, tbl.Reserve(board.ZobristHash(1), board.Black, 1, 10))
	tbl.Clear()

	_, found := tbl.Find(board.ZobristHash(1), board.Black, 1)
	require.False(t, found)
	require.Equal(t, 0.0, tbl.Used())
}
