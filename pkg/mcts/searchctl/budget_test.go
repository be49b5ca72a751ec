package searchctl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/mcts"
	"github.com/kobanium/Ray-sub001/pkg/score"
)

func newTestTree(t *testing.T, size int) (*mcts.Tree, *board.Position) {
	cfg, err := board.NewConfig(size, 7.5, true)
	require.NoError(t, err)
	zt := board.NewZobristTable(board.NewGeometry(cfg), 1)
	pos := board.NewPosition(cfg, zt)

	sc := score.NewScorer(pos.Geometry(), score.NewTables())
	return mcts.NewTree(4096, 4096, sc, sc), pos
}

func TestBudgetLaunchHaltsOnPlayoutLimit(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)

	b := &Budget{Workers: 2}
	opt := Options{PlayoutLimit: lang.Some(uint64(50))}

	h, out := b.Launch(context.Background(), tr, board.Black, 0, opt)
	pv := <-out
	require.GreaterOrEqual(t, pv.Playouts, uint64(50))

	halted := h.Halt()
	require.Equal(t, pv.Move, halted.Move)
}

func TestBudgetLaunchHaltsOnConstTime(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)

	b := &Budget{Workers: 2}
	opt := Options{TimeControl: lang.Some(NewConstTimeControl(30 * time.Millisecond))}

	start := time.Now()
	_, out := b.Launch(context.Background(), tr, board.Black, 0, opt)
	pv := <-out
	require.Less(t, time.Since(start), 2*time.Second)
	require.Greater(t, pv.Playouts, uint64(0))
}

func TestBudgetHaltStopsPonderingSearch(t *testing.T) {
	tr, pos := newTestTree(t, 5)
	tr.SetRoot(pos)

	b := &Budget{Workers: 2}
	h, out := b.Launch(context.Background(), tr, board.Black, 0, Options{})

	time.Sleep(20 * time.Millisecond)
	pv := h.Halt()
	require.Greater(t, pv.Playouts, uint64(0))

	_, ok := <-out
	require.False(t, ok)
}
