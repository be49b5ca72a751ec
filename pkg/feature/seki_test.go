package feature

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

func TestCheckSekiEmptyBoardReturnsEmpty(t *testing.T) {
	pos := newTestPosition(t, 9)
	seki := CheckSeki(pos)
	require.Empty(t, seki)
}

func TestIsSelfAtariRawDetectsOneLibertyResult(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	pt := func(x, y int) board.Point { return g.Point(board.Border+x, board.Border+y) }

	// Surround (4,4) on three sides with black, leaving one liberty once
	// black plays the fourth: self-atari for black at (4,3).
	require.NoError(t, pos.PlaceStone(pt(3, 4), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(5, 4), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(4, 5), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(3, 3), board.White, false))
	require.NoError(t, pos.PlaceStone(pt(5, 3), board.White, false))
	require.NoError(t, pos.PlaceStone(pt(4, 2), board.White, false))

	require.True(t, isSelfAtariRaw(pos, board.Black, pt(4, 3)))
}

func TestNeighborStringIDsExcludesGivenString(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	pt := func(x, y int) board.Point { return g.Point(board.Border+x, board.Border+y) }

	require.NoError(t, pos.PlaceStone(pt(4, 4), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(4, 3), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(3, 4), board.White, false))

	selfID := pos.StringIDAt(pt(4, 4))
	ids := neighborStringIDs(pos, pt(4, 4), selfID)
	require.Len(t, ids, 1)
	require.Equal(t, pos.StringIDAt(pt(3, 4)), ids[0])
}
