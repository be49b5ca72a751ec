package gtp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/engine"
	"github.com/kobanium/Ray-sub001/pkg/engine/gtp"
)

func newTestDriver(t *testing.T) (chan gtp.Command, *gtp.Driver) {
	ctx := context.Background()
	e := engine.New(ctx, "ishi", "test", engine.WithOptions(engine.Options{
		NodeCapacity: 1024,
		TTCapacity:   1024,
		Workers:      2,
	}))

	in := make(chan gtp.Command, 4)
	d := gtp.NewDriver(ctx, e, in)
	t.Cleanup(func() { close(in) })

	reply := make(chan error, 1)
	in <- gtp.ConfigureCmd{BoardSize: 5, Komi: 0.5, Reply: reply}
	require.NoError(t, <-reply)

	return in, d
}

func TestDriverPlayAndGenMove(t *testing.T) {
	in, _ := newTestDriver(t)

	playReply := make(chan error, 1)
	in <- gtp.PlayCmd{Color: board.Black, Coord: "pass", Reply: playReply}
	require.NoError(t, <-playReply)

	done := make(chan struct{})
	in <- gtp.SetPlayoutsCmd{N: 20, Done: done}
	<-done

	genReply := make(chan gtp.GenMoveResult, 1)
	in <- gtp.GenMoveCmd{Color: board.White, Reply: genReply}
	res := <-genReply
	require.NoError(t, res.Err)
	require.NotEmpty(t, res.Coord)
}

func TestDriverFinalScore(t *testing.T) {
	in, _ := newTestDriver(t)

	reply := make(chan gtp.FinalScoreResult, 1)
	in <- gtp.FinalScoreCmd{Reply: reply}
	res := <-reply
	require.NoError(t, res.Err)
	require.Equal(t, -0.5, res.Territory.Score)
}

func TestDriverSetTimeAndClearBoard(t *testing.T) {
	in, _ := newTestDriver(t)

	timeReply := make(chan error, 1)
	in <- gtp.SetTimeCmd{Main: 10 * time.Second, Reply: timeReply}
	require.NoError(t, <-timeReply)

	clearReply := make(chan error, 1)
	in <- gtp.ClearBoardCmd{Reply: clearReply}
	require.NoError(t, <-clearReply)
}
