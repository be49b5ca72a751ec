package mcts

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

func newTestRootNode() *Node {
	candidates := []board.Point{10, 11, 12, 13}
	priors := map[board.Point]float64{10: 0.4, 11: 0.3, 12: 0.2, 13: 0.1}
	return NewNode(board.Black, board.PointNone, board.PointNone, candidates, priors)
}

func TestSelectChildPrefersUnvisitedWithFPU(t *testing.T) {
	n := newTestRootNode()
	n.width = len(n.Children)
	for _, c := range n.Children {
		c.Open = true
	}
	rng := rand.New(rand.NewSource(1))
	c := selectChild(n, rng)
	require.NotNil(t, c)
	require.Zero(t, c.Visits.Load())
}

func TestSelectChildSkipsUnopenedChildren(t *testing.T) {
	n := newTestRootNode()
	// NewNode opens PASS (forced) plus the single highest-prior candidate;
	// every other candidate stays closed until progressive widening opens it.
	require.Equal(t, 2, n.Width())
	c := selectChild(n, rand.New(rand.NewSource(2)))
	require.True(t, c.Move == board.PointPass || c.Move == board.Point(10))
}

func TestSelectChildPrefersHigherWinRateAmongVisited(t *testing.T) {
	n := newTestRootNode()
	n.width = len(n.Children)
	for _, c := range n.Children {
		c.Open = true
		c.Visits.Store(100)
		c.WinSum.Store(50)
	}
	n.Visits.Store(400)
	best := n.Children[2]
	best.WinSum.Store(90)

	c := selectChild(n, rand.New(rand.NewSource(3)))
	require.Equal(t, best.Move, c.Move)
}

func TestProgressiveWidthIncreasesWithK(t *testing.T) {
	require.Less(t, progressiveWidth(0), progressiveWidth(1))
	require.Less(t, progressiveWidth(1), progressiveWidth(2))
	require.Equal(t, int64(40), progressiveWidth(0))
}

func TestMaybeWidenOpensChildPastThreshold(t *testing.T) {
	n := newTestRootNode()
	require.Equal(t, 2, n.Width())

	n.Visits.Store(progressiveWidth(1))
	owner := func(board.Point) float64 { return 1 }
	crit := func(board.Point) float64 { return 1 }
	maybeWiden(n, owner, crit)
	require.Equal(t, 3, n.Width())
}

func TestMaybeWidenDoesNotExceedChildCount(t *testing.T) {
	n := newTestRootNode()
	n.Visits.Store(1 << 30)
	owner := func(board.Point) float64 { return 1 }
	crit := func(board.Point) float64 { return 1 }
	maybeWiden(n, owner, crit)
	require.Equal(t, len(n.Children), n.Width())
}

func TestResortChildrenKeepsForcedPassOpen(t *testing.T) {
	n := newTestRootNode()
	n.width = 2
	owner := func(board.Point) float64 { return 1 }
	crit := func(p board.Point) float64 {
		if p == board.Point(11) {
			return 100
		}
		return 1
	}
	n.mu.Lock()
	resortChildren(n, owner, crit)
	n.mu.Unlock()

	require.True(t, n.Children[0].Open)
	require.Equal(t, board.PointPass, n.Children[0].Move)
}

func TestExpansionThresholdVariesByBoardSize(t *testing.T) {
	require.Equal(t, int64(40), expansionThreshold(9, false))
	require.Equal(t, int64(50), expansionThreshold(13, false))
	require.Equal(t, int64(70), expansionThreshold(19, false))
	require.Greater(t, expansionThreshold(19, true), int64(1<<40))
}
