package feature

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

func newTestPosition(t *testing.T, size int) *board.Position {
	cfg, err := board.NewConfig(size, 7.5, true)
	require.NoError(t, err)
	zt := board.NewZobristTable(board.NewGeometry(cfg), 1)
	return board.NewPosition(cfg, zt)
}

func TestCheckAtariAssignsAtariFeature(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	pt := func(x, y int) board.Point { return g.Point(board.Border+x, board.Border+y) }

	// A white string of two stones with exactly two liberties.
	require.NoError(t, pos.PlaceStone(pt(4, 4), board.White, false))
	require.NoError(t, pos.PlaceStone(pt(4, 5), board.White, false))
	require.NoError(t, pos.PlaceStone(pt(3, 4), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(3, 5), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(5, 4), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(5, 5), board.Black, false))
	// remaining liberties: (4,3) and (4,6)

	CheckAtari(pos, board.Black, pt(4, 3))
	require.Equal(t, Atari, pos.Feature(pt(4, 3), board.FamilyAtari))
}

func TestCheckCaptureAssignsCaptureFeature(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	pt := func(x, y int) board.Point { return g.Point(board.Border+x, board.Border+y) }

	require.NoError(t, pos.PlaceStone(pt(4, 4), board.White, false))
	require.NoError(t, pos.PlaceStone(pt(3, 4), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(4, 3), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(5, 4), board.Black, false))
	// white's sole liberty is (4,5)

	CheckCapture(pos, board.Black, pt(4, 5))
	require.Equal(t, Capture, pos.Feature(pt(4, 5), board.FamilyCapture))
}

func TestCheckSelfAtariSafeWithTwoEmptyNeighbors(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	p := g.Point(board.Border+4, board.Border+4)

	keep := CheckSelfAtari(pos, board.Black, p)
	require.True(t, keep)
	require.Equal(t, uint16(0), pos.Feature(p, board.FamilyCapture))
}

func TestCheckKoConnectionMarksFeatureTwoPliesLater(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	pt := func(x, y int) board.Point { return g.Point(board.Border+x, board.Border+y) }

	capturedPoint := pt(3, 3)
	koPlayPoint := pt(2, 3)

	require.NoError(t, pos.PlaceStone(capturedPoint, board.White, false))
	require.NoError(t, pos.PlaceStone(pt(3, 2), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(3, 4), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(4, 3), board.Black, false))
	require.NoError(t, pos.PlaceStone(pt(2, 2), board.White, false))
	require.NoError(t, pos.PlaceStone(pt(2, 4), board.White, false))
	require.NoError(t, pos.PlaceStone(pt(1, 3), board.White, false))

	require.NoError(t, pos.PlaceStone(koPlayPoint, board.Black, false))
	require.Equal(t, capturedPoint, pos.KoPoint())

	require.NoError(t, pos.PlaceStone(pt(8, 8), board.White, false))
	require.NoError(t, pos.PlaceStone(pt(8, 7), board.Black, false))

	CheckKoConnection(pos)
	require.Equal(t, KoConnection, pos.Feature(capturedPoint, board.FamilyConnect))
}
