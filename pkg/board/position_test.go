package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPosition(t *testing.T, size int) *Position {
	cfg, err := NewConfig(size, 7.5, true)
	require.NoError(t, err)
	zt := NewZobristTable(NewGeometry(cfg), 1)
	return NewPosition(cfg, zt)
}

func TestPassClearsKoAndFlipsTurn(t *testing.T) {
	pos := newTestPosition(t, 9)
	pos.Pass(Black)
	require.Equal(t, White, pos.Turn())
	require.Equal(t, PointNone, pos.KoPoint())
	require.Equal(t, 1, pos.PassCount())
}

func TestBasicCaptureRemovesStone(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()

	center := g.Point(Border+4, Border+4)
	up := g.Point(Border+4, Border+3)
	down := g.Point(Border+4, Border+5)
	left := g.Point(Border+3, Border+4)
	right := g.Point(Border+5, Border+4)

	require.NoError(t, pos.PlaceStone(center, White, false))
	require.NoError(t, pos.PlaceStone(up, Black, false))
	require.NoError(t, pos.PlaceStone(down, Black, false))
	require.NoError(t, pos.PlaceStone(left, Black, false))
	require.Equal(t, WhiteStone, pos.Stone(center))

	require.NoError(t, pos.PlaceStone(right, Black, false))
	require.Equal(t, EmptyStone, pos.Stone(center))
	require.Equal(t, 1, pos.Captures(Black))
}

func TestKoPointSetAfterSingleStoneRecapture(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	pt := func(x, y int) Point { return g.Point(Border+x, Border+y) }

	capturedPoint := pt(3, 3)
	koPlayPoint := pt(2, 3)

	require.NoError(t, pos.PlaceStone(capturedPoint, White, false))
	require.NoError(t, pos.PlaceStone(pt(3, 2), Black, false))
	require.NoError(t, pos.PlaceStone(pt(3, 4), Black, false))
	require.NoError(t, pos.PlaceStone(pt(4, 3), Black, false))
	// capturedPoint is now in atari, its sole liberty is koPlayPoint.

	require.NoError(t, pos.PlaceStone(pt(2, 2), White, false))
	require.NoError(t, pos.PlaceStone(pt(2, 4), White, false))
	require.NoError(t, pos.PlaceStone(pt(1, 3), White, false))
	// koPlayPoint's only empty neighbor, once played, will be capturedPoint itself.

	require.NoError(t, pos.PlaceStone(koPlayPoint, Black, false))

	require.Equal(t, EmptyStone, pos.Stone(capturedPoint))
	require.Equal(t, BlackStone, pos.Stone(koPlayPoint))
	require.Equal(t, 1, pos.Captures(Black))
	require.Equal(t, capturedPoint, pos.KoPoint())
	require.False(t, pos.IsLegal(capturedPoint, White))
}

func TestChineseAreaScoreEmptyBoardIsKomi(t *testing.T) {
	pos := newTestPosition(t, 9)
	sc := pos.CalculateScore()
	require.Equal(t, 0, sc.BlackArea)
	require.Equal(t, 0, sc.WhiteArea)
	require.Equal(t, -7.5, sc.Score)
}

func TestForkIsIndependent(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	p := g.Point(Border+2, Border+2)

	fork := pos.Fork()
	require.NoError(t, fork.PlaceStone(p, Black, false))

	require.Equal(t, EmptyStone, pos.Stone(p))
	require.Equal(t, BlackStone, fork.Stone(p))
}
