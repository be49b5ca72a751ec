package score

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

func uniformTables() *Tables {
	t := NewTables()
	set := func(p *Param, w float64) {
		p.W = w
		for k := range p.V {
			p.V[k] = 0.1
		}
	}
	for i := range t.Pass {
		set(&t.Pass[i], 1.0)
	}
	set(&t.KoExist, 1.0)
	for i := range t.Capture {
		set(&t.Capture[i], 1.0)
	}
	for i := range t.SaveExtension {
		set(&t.SaveExtension[i], 1.0)
	}
	for i := range t.Atari {
		set(&t.Atari[i], 1.0)
	}
	for i := range t.Extension {
		set(&t.Extension[i], 1.0)
	}
	for i := range t.Dame {
		set(&t.Dame[i], 1.0)
	}
	for i := range t.Connect {
		set(&t.Connect[i], 1.0)
	}
	for i := range t.ThrowIn {
		set(&t.ThrowIn[i], 1.0)
	}
	for k := range t.MoveDistance {
		for i := range t.MoveDistance[k] {
			set(&t.MoveDistance[k][i], 1.0)
		}
	}
	for i := range t.PosID {
		set(&t.PosID[i], 1.0)
	}
	for i := range t.Pat3 {
		set(&t.Pat3[i], 1.0)
	}
	return t
}

func TestGammaMultipliesFirstOrderWeights(t *testing.T) {
	a, b := &Param{W: 2.0}, &Param{W: 3.0}
	require.Equal(t, 6.0, gamma([]*Param{a, b}))
}

func TestPairwiseProductSingleFeatureIsZero(t *testing.T) {
	a := &Param{W: 1.0, V: [Dimension]float64{1, 1, 1, 1, 1}}
	require.Equal(t, 0.0, pairwiseProduct([]*Param{a}))
}

func TestPairwiseProductTwoFeatures(t *testing.T) {
	a := &Param{V: [Dimension]float64{1, 1, 1, 1, 1}}
	b := &Param{V: [Dimension]float64{2, 2, 2, 2, 2}}
	// theta = (1*2)*5 / 5 = 2
	require.InDelta(t, 2.0, pairwiseProduct([]*Param{a, b}), 1e-9)
}

func TestMoveScorePassAfterMoveVsAfterPass(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	tb := NewTables()
	tb.Pass[0].W = 3.0 // PassAfterMove
	tb.Pass[1].W = 7.0 // PassAfterPass
	s := NewScorer(g, tb)

	require.InDelta(t, 3.0, s.MoveScore(pos, board.PointPass, 0), 1e-9)

	// A pass scored right after the very first move is still "pass after
	// move" (moves==1, not >1, matching the original's `moves > 1` guard);
	// only once at least two plies have passed, the most recent being a
	// pass, does "pass after pass" apply.
	require.NoError(t, pos.PlaceStone(g.Point(board.Border+2, board.Border+2), board.Black, false))
	pos.Pass(board.White)
	require.InDelta(t, 7.0, s.MoveScore(pos, board.PointPass, 0), 1e-9)
}

func TestAnalyzeNormalizesToOne(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	tb := uniformTables()
	s := NewScorer(g, tb)

	var candidates []board.Point
	for _, p := range g.Points() {
		candidates = append(candidates, p)
	}

	out := s.Analyze(pos, board.Black, candidates)
	var total float64
	for _, sc := range out {
		total += sc
	}
	require.InDelta(t, 1.0, total, 1e-6)
}

func TestSymmetryClassSharesIdAcrossReflections(t *testing.T) {
	pos := newTestPosition(t, 9)
	g := pos.Geometry()
	sym := SymmetryClass(g)

	corner := g.Point(board.Border, board.Border)
	otherCorner := g.Point(board.Border+8, board.Border+8)
	require.Equal(t, sym[corner], sym[otherCorner])

	center := g.Point(board.Border+4, board.Border+4)
	require.NotEqual(t, sym[corner], sym[center])
}

func TestMoveDistanceClampsAtMax(t *testing.T) {
	pos := newTestPosition(t, 19)
	g := pos.Geometry()
	near := g.Point(board.Border, board.Border)
	far := g.Point(board.Border+18, board.Border+18)
	require.Equal(t, 15, moveDistance(g, near, far))
}
