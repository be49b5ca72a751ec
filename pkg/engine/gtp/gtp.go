// Package gtp is a channel-driven command dispatcher for the §6 control
// surface, the mcts-engine analogue of the teacher's pkg/engine/console: a
// single goroutine serializes every operation against one engine.Engine, in
// the same Driver/process shape. Unlike console.Driver it does not parse a
// text protocol -- per the module's scope, the GTP command shell (reading
// raw protocol lines, formatting responses back to text) is an external
// collaborator's job; this package only exposes §6's operation table
// (configure, set_time, set_playouts/set_time_per_move, clear_board, play,
// genmove, final_score) as typed commands a caller constructs directly.
package gtp

import (
	"context"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/engine"
)

// Command is one control-surface operation. Each concrete type carries its
// own reply channel so a caller gets exactly one typed response per command,
// the same one-command-one-reply discipline console.Driver gets for free
// from being line-oriented.
type Command interface {
	dispatch(ctx context.Context, e *engine.Engine)
}

// ConfigureCmd implements configure(board_size, komi, superko).
type ConfigureCmd struct {
	BoardSize int
	Komi      float64
	Superko   bool
	Reply     chan<- error
}

func (c ConfigureCmd) dispatch(ctx context.Context, e *engine.Engine) {
	c.Reply <- e.Configure(ctx, c.BoardSize, c.Komi, c.Superko)
}

// SetTimeCmd implements set_time(main_seconds, byoyomi_seconds,
// byoyomi_stones).
type SetTimeCmd struct {
	Main, Byoyomi time.Duration
	ByoyomiStones int
	Reply         chan<- error
}

func (c SetTimeCmd) dispatch(ctx context.Context, e *engine.Engine) {
	c.Reply <- e.SetTimeSettings(ctx, c.Main, c.Byoyomi, c.ByoyomiStones)
}

// SetPlayoutsCmd implements the constant-playouts-per-move variant of
// set_playouts(n)/set_time_per_move(s).
type SetPlayoutsCmd struct {
	N    int
	Done chan<- struct{}
}

func (c SetPlayoutsCmd) dispatch(ctx context.Context, e *engine.Engine) {
	e.SetPlayouts(ctx, c.N)
	close(c.Done)
}

// SetTimePerMoveCmd implements the constant-time-per-move variant of
// set_playouts(n)/set_time_per_move(s).
type SetTimePerMoveCmd struct {
	D    time.Duration
	Done chan<- struct{}
}

func (c SetTimePerMoveCmd) dispatch(ctx context.Context, e *engine.Engine) {
	e.SetTimePerMove(ctx, c.D)
	close(c.Done)
}

// ClearBoardCmd implements clear_board.
type ClearBoardCmd struct {
	Reply chan<- error
}

func (c ClearBoardCmd) dispatch(ctx context.Context, e *engine.Engine) {
	c.Reply <- e.ClearBoard(ctx)
}

// PlayCmd implements play(color, coordinate|PASS). Coord is a GTP-style
// coordinate string ("D4", "pass"); parsing it into a board.Point is the
// engine's job (board.Geometry.ParseGTPPoint), not this package's.
type PlayCmd struct {
	Color board.Color
	Coord string
	Reply chan<- error
}

func (c PlayCmd) dispatch(ctx context.Context, e *engine.Engine) {
	c.Reply <- e.Play(ctx, c.Color, c.Coord)
}

// GenMoveResult is GenMoveCmd's reply: the chosen coordinate ("pass",
// "resign" or a GTP coordinate) or an error.
type GenMoveResult struct {
	Coord string
	Err   error
}

// GenMoveCmd implements genmove(color) -> coordinate|PASS|RESIGN.
type GenMoveCmd struct {
	Color board.Color
	Reply chan<- GenMoveResult
}

func (c GenMoveCmd) dispatch(ctx context.Context, e *engine.Engine) {
	coord, err := e.GenMove(ctx, c.Color)
	c.Reply <- GenMoveResult{Coord: coord, Err: err}
}

// FinalScoreResult is FinalScoreCmd's reply.
type FinalScoreResult struct {
	Territory board.Territory
	Err       error
}

// FinalScoreCmd implements final_score.
type FinalScoreCmd struct {
	Reply chan<- FinalScoreResult
}

func (c FinalScoreCmd) dispatch(ctx context.Context, e *engine.Engine) {
	t, err := e.FinalScore(ctx)
	c.Reply <- FinalScoreResult{Territory: t, Err: err}
}

// Driver serializes Command values onto one engine.Engine, one at a time, in
// the order received.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine
}

// NewDriver starts a Driver reading from in until in closes or the Driver is
// closed.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan Command) *Driver {
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
	}
	go d.process(ctx, in)
	return d
}

func (d *Driver) process(ctx context.Context, in <-chan Command) {
	defer d.Close()

	logw.Infof(ctx, "gtp control surface initialized: %v", d.e.Name())

	for {
		select {
		case cmd, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Command stream closed. Exiting")
				return
			}
			cmd.dispatch(ctx, d.e)

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}
