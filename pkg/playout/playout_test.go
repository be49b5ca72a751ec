package playout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/score"
)

func newTestPosition(t *testing.T, size int) *board.Position {
	cfg, err := board.NewConfig(size, 7.5, true)
	require.NoError(t, err)
	zt := board.NewZobristTable(board.NewGeometry(cfg), 1)
	return board.NewPosition(cfg, zt)
}

// uniformScorer scores every candidate and pass equally, so the playout is
// driven purely by legality rather than any trained preference.
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

func TestRunTerminatesOnDoublePass(t *testing.T) {
	pos := newTestPosition(t, 5)
	g := pos.Geometry()
	sc := uniformScorer(g)
	rng := rand.New(rand.NewSource(1))

	res := Run(pos, board.Black, board.Black, sc, rng)

	require.Equal(t, 2, pos.PassCount())
	require.True(t, res.Winner == board.Black || res.Winner == board.White)
}

func TestRunStopsWithinMoveCeiling(t *testing.T) {
	pos := newTestPosition(t, 5)
	g := pos.Geometry()
	sc := uniformScorer(g)
	rng := rand.New(rand.NewSource(2))

	Run(pos, board.White, board.White, sc, rng)

	require.LessOrEqual(t, pos.MoveCount(), MaxMoves)
}

func TestRunResultMatchesTerritoryScore(t *testing.T) {
	pos := newTestPosition(t, 5)
	g := pos.Geometry()
	sc := uniformScorer(g)
	rng := rand.New(rand.NewSource(3))

	res := Run(pos, board.Black, board.White, sc, rng)

	if res.Territory.Score < 0 {
		require.Equal(t, board.White, res.Winner)
	} else {
		require.Equal(t, board.Black, res.Winner)
	}
	require.Equal(t, res.Winner == board.White, res.RootWin)
	require.Len(t, res.Ownership, len(g.Points()))
}

func TestSampleMoveFallsBackToPassWhenAllWeightsNonPositive(t *testing.T) {
	pos := newTestPosition(t, 5)
	g := pos.Geometry()
	rng := rand.New(rand.NewSource(4))

	p, isPass := sampleMove(g, []board.Point{g.Point(board.Border, board.Border)}, []float64{0}, 0, rng)
	require.True(t, isPass)
	require.Equal(t, board.PointPass, p)
}

func TestSampleMovePicksSoleWeightedCandidate(t *testing.T) {
	pos := newTestPosition(t, 5)
	g := pos.Geometry()
	rng := rand.New(rand.NewSource(5))

	target := g.Point(board.Border+1, board.Border+1)
	p, isPass := sampleMove(g, []board.Point{target}, []float64{5.0}, 0, rng)
	require.False(t, isPass)
	require.Equal(t, target, p)
}
