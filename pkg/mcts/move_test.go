package mcts

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

func TestBestMovePicksMostVisitedChild(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)

	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		tr.Simulate(rng)
	}

	root := tr.RootNode()
	var want *Child
	for _, c := range root.Children {
		if want == nil || c.Visits.Load() > want.Visits.Load() {
			want = c
		}
	}

	res := tr.BestMove()
	require.Equal(t, want.Move, res.Move)
	require.Equal(t, want.Visits.Load(), res.Visits)
	require.Len(t, res.Ownership, len(pos.Geometry().Points()))
}

func TestBestMoveResignsBelowThreshold(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)

	root := tr.RootNode()
	root.Children[0].Visits.Store(100)
	root.Children[0].WinSum.Store(1) // win rate 0.01, far below ResignThreshold

	res := tr.BestMove()
	require.Equal(t, board.PointPass, res.Move)
	require.True(t, res.Resign)
}

func TestOwnershipEmptyBeforeAnySimulation(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)

	own := tr.Ownership()
	require.Len(t, own, len(pos.Geometry().Points()))
	for _, v := range own {
		require.Zero(t, v)
	}
}
