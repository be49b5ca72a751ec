package mcts

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/score"
)

func newTestTreePosition(t *testing.T, size int) *board.Position {
	cfg, err := board.NewConfig(size, 7.5, true)
	require.NoError(t, err)
	zt := board.NewZobristTable(board.NewGeometry(cfg), 1)
	return board.NewPosition(cfg, zt)
}

// uniformScorer gives every candidate and pass the same weight, so tree
// behavior in tests is driven by the search machinery rather than any
// trained preference.
func uniformScorer(g *board.Geometry) *score.Scorer {
	tb := score.NewTables()
	tb.Pass[0].W, tb.Pass[1].W = 1.0, 1.0
	for i := range tb.Capture {
		tb.Capture[i].W = 1.0
	}
	for i := range tb.Atari {
		tb.Atari[i].W = 1.0
	}
	for i := range tb.SaveExtension {
		tb.SaveExtension[i].W = 1.0
	}
	for i := range tb.Extension {
		tb.Extension[i].W = 1.0
	}
	for i := range tb.Dame {
		tb.Dame[i].W = 1.0
	}
	for i := range tb.Connect {
		tb.Connect[i].W = 1.0
	}
	for i := range tb.ThrowIn {
		tb.ThrowIn[i].W = 1.0
	}
	for k := range tb.MoveDistance {
		for i := range tb.MoveDistance[k] {
			tb.MoveDistance[k][i].W = 1.0
		}
	}
	for i := range tb.PosID {
		tb.PosID[i].W = 1.0
	}
	for i := range tb.Pat3 {
		tb.Pat3[i].W = 1.0
	}
	tb.KoExist.W = 1.0
	return score.NewScorer(g, tb)
}

func newTestTree(t *testing.T, size int) (*Tree, *board.Position) {
	pos := newTestTreePosition(t, size)
	g := pos.Geometry()
	sc := uniformScorer(g)
	return NewTree(4096, 4096, sc, sc), pos
}

func TestSetRootBuildsRootNode(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)

	root := tr.RootNode()
	require.NotNil(t, root)
	require.Equal(t, board.Black, root.ToMove)
	require.True(t, root.Children[0].Open)
	require.Equal(t, board.PointPass, root.Children[0].Move)
}

func TestSetRootReusesSamePositionAcrossCalls(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)
	root1 := tr.RootNode()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		tr.Simulate(rng)
	}
	require.Greater(t, root1.Visits.Load(), int64(0))

	tr.SetRoot(pos)
	root2 := tr.RootNode()
	require.Same(t, root1, root2)
	require.Greater(t, root2.Visits.Load(), int64(0))
}

func TestSetRootPrunesUnreachableEntries(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)

	hash0, color0, moves0 := pos.MoveHash(), pos.Turn(), pos.MoveCount()
	require.True(t, tr.TT().Used() > 0)

	next := pos.Fork()
	require.NoError(t, next.PlaceStone(next.Geometry().Point(board.Border, board.Border), board.Black, true))
	tr.SetRoot(next)

	_, found := tr.TT().Find(hash0, color0, moves0)
	require.False(t, found)
}

func TestSimulateAdvancesRootAndChildVisits(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)
	root := tr.RootNode()

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		tr.Simulate(rng)
	}

	require.EqualValues(t, 20, root.Visits.Load())
	require.Zero(t, root.VirtualLoss.Load())

	var childVisits int64
	for _, c := range root.Children {
		childVisits += c.Visits.Load()
		require.Zero(t, c.VirtualLoss.Load())
	}
	require.EqualValues(t, 20, childVisits)
}

func TestSimulateExpandsNodesPastThreshold(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)
	afterRootOnly := tr.Pool().Used()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		tr.Simulate(rng)
	}

	require.Greater(t, tr.Pool().Used(), afterRootOnly)
}

func TestTerminalResultMatchesCalculateScore(t *testing.T) {
	pos := newTestTreePosition(t, 5)
	pos.Pass(board.Black)
	pos.Pass(board.White)

	res := terminalResult(pos, board.Black)
	terr := pos.CalculateScore()
	require.Equal(t, terr.Score, res.Territory.Score)
	if terr.Score < 0 {
		require.Equal(t, board.White, res.Winner)
	} else {
		require.Equal(t, board.Black, res.Winner)
	}
}
