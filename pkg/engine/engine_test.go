package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/engine"
)

func newTestEngine(t *testing.T) *engine.Engine {
	ctx := context.Background()
	e := engine.New(ctx, "ishi", "test", engine.WithOptions(engine.Options{
		NodeCapacity: 1024,
		TTCapacity:   1024,
		Workers:      2,
	}))
	require.NoError(t, e.Configure(ctx, 5, 0.5, false))
	return e
}

func TestConfigureResetsToEmptyBoard(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	pos := e.Position()
	require.Equal(t, board.Black, pos.Turn())
	require.Equal(t, 0, pos.MoveCount())

	require.NoError(t, e.Configure(ctx, 9, 7.5, true))
	pos = e.Position()
	require.Equal(t, 9, pos.Geometry().Size)
}

func TestPlayAlternatesTurnAndTracksMoves(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	require.NoError(t, e.Play(ctx, board.Black, "pass"))
	require.Equal(t, board.White, e.Position().Turn())

	require.NoError(t, e.Play(ctx, board.White, "pass"))
	require.Equal(t, board.Black, e.Position().Turn())
}

func TestPlayRejectsInvalidCoordinate(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	// Black to move; applying a Black pass is fine regardless of which
	// color the caller claims since Play trusts the caller's color (as an
	// opponent move report would), but an illegal coordinate must error.
	require.Error(t, e.Play(ctx, board.Black, "not-a-coordinate"))
}

func TestClearBoardPreservesConfig(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	require.NoError(t, e.Play(ctx, board.Black, "pass"))
	require.NoError(t, e.ClearBoard(ctx))

	pos := e.Position()
	require.Equal(t, board.Black, pos.Turn())
	require.Equal(t, 0, pos.MoveCount())
	require.Equal(t, 5, pos.Geometry().Size)
}

func TestGenMoveConstPlayoutsProducesLegalResult(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	e.SetPlayouts(ctx, 20)

	coord, err := e.GenMove(ctx, board.Black)
	require.NoError(t, err)
	require.NotEmpty(t, coord)

	if coord != "pass" && coord != "resign" {
		require.Equal(t, board.White, e.Position().Turn())
	}
}

func TestFinalScoreOnEmptyBoardReflectsKomi(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	territory, err := e.FinalScore(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, territory.BlackArea)
	require.Equal(t, 0, territory.WhiteArea)
	require.Equal(t, -0.5, territory.Score)
}

func TestHaltWithNoActiveSearchErrors(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	_, err := e.Halt(ctx)
	require.Error(t, err)
}
