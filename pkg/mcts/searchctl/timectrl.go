// Package searchctl layers time and playout budgets, interruption and
// extension policy, and the pondering lifecycle on top of pkg/mcts's search
// primitive, mirroring the teacher's pkg/search/searchctl split of algorithm
// (pkg/mcts) vs. control (this package) exactly. Grounded on
// pkg/search/searchctl/timectrl.go's TimeControl/EnforceTimeControl shape and
// original_source/src/mcts/SearchManager.cpp's four-mode time budget, per
// §4.H.
package searchctl

import (
	"fmt"
	"time"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

// Mode selects one of §4.H's four search-time strategies.
type Mode int

const (
	// ConstPlayoutMode runs a fixed number of playouts every move.
	ConstPlayoutMode Mode = iota
	// ConstTimeMode runs a fixed wall-clock budget every move.
	ConstTimeMode
	// MainTimeMode divides a whole-game clock across remaining moves.
	MainTimeMode
	// MainTimeByoyomiMode is MainTimeMode with a byo-yomi floor once the
	// main clock runs low.
	MainTimeByoyomiMode
)

// boardTimeParams returns the board-size-specific (c, maxply) divisor pair
// CalculateNextTimeLimit uses, ported verbatim from SearchManager.hpp's
// TIME_C_9/13/19 and TIME_MAXPLY_9/13/19 constants (cutoffs at pure board
// side < 11 and < 16, matching 9x9/13x13/19x19).
func boardTimeParams(size int) (c, maxply int) {
	switch {
	case size < 11:
		return 20, 0
	case size < 16:
		return 30, 30
	default:
		return 60, 80
	}
}

// TimeControl tracks one game's time budget and mode, per §4.H. Zero value
// is ConstPlayoutMode with Playouts left at its caller-assigned value; use
// the New* constructors to build the other modes.
type TimeControl struct {
	Mode Mode

	BoardSize int

	// Remaining is the main-time clock per color, consumed by Consume as
	// moves are played. Unused in ConstPlayoutMode/ConstTimeMode.
	Remaining [board.NumColors]time.Duration

	// PerMove is the fixed per-move budget for ConstTimeMode, or the
	// byo-yomi period (byoyomi/stones) for MainTimeByoyomiMode.
	PerMove time.Duration

	// Playouts is the fixed per-move playout budget for ConstPlayoutMode.
	Playouts int
}

// NewConstPlayoutControl returns a fixed-playouts-per-move TimeControl, per
// §4.H's "constant-playouts-per-move" mode.
func NewConstPlayoutControl(playouts int) TimeControl {
	return TimeControl{Mode: ConstPlayoutMode, Playouts: playouts}
}

// NewConstTimeControl returns a fixed-time-per-move TimeControl, per §4.H's
// "constant-time-per-move" mode.
func NewConstTimeControl(perMove time.Duration) TimeControl {
	return TimeControl{Mode: ConstTimeMode, PerMove: perMove}
}

// NewMainTimeControl returns a whole-game-clock TimeControl with no
// byo-yomi, per §4.H's "main-time" mode. boardSize selects the (c, maxply)
// divisor pair used by NextLimit.
func NewMainTimeControl(boardSize int, main time.Duration) TimeControl {
	tc := TimeControl{Mode: MainTimeMode, BoardSize: boardSize}
	tc.Remaining[board.Black] = main
	tc.Remaining[board.White] = main
	return tc
}

// NewMainTimeByoyomiControl returns a whole-game-clock TimeControl with a
// byo-yomi floor of byoyomi/stones per move, per §4.H's "main-time+byo-yomi"
// mode. SetTimeSettings in the original treats main==0 as pure
// const-thinking-time (byoyomi*0.85); engine.SetTimeSettings covers that case
// with NewConstTimeControl given 0.85 of the per-stone byo-yomi period.
func NewMainTimeByoyomiControl(boardSize int, main, byoyomi time.Duration, stones int) TimeControl {
	tc := TimeControl{
		Mode:      MainTimeByoyomiMode,
		BoardSize: boardSize,
		PerMove:   byoyomi / time.Duration(stones),
	}
	tc.Remaining[board.Black] = main
	tc.Remaining[board.White] = main
	return tc
}

func (t TimeControl) String() string {
	switch t.Mode {
	case ConstPlayoutMode:
		return fmt.Sprintf("playouts=%v", t.Playouts)
	case ConstTimeMode:
		return fmt.Sprintf("time=%v", t.PerMove)
	case MainTimeByoyomiMode:
		return fmt.Sprintf("main=%v<>%v byoyomi=%v", t.Remaining[board.Black], t.Remaining[board.White], t.PerMove)
	default:
		return fmt.Sprintf("main=%v<>%v", t.Remaining[board.Black], t.Remaining[board.White])
	}
}

// NextLimit computes the wall-clock budget for the next move by turn, per
// §4.H: "per-move limit = remaining / (c + max(0, maxply − moves_played))".
// moves is the number of moves already played this game. For
// MainTimeByoyomiMode the result is floored at 0.85·byoyomi, per
// SearchManager.cpp's "time_limit = const_thinking_time * 0.85" fallback.
func (t TimeControl) NextLimit(turn board.Color, moves int) time.Duration {
	switch t.Mode {
	case ConstPlayoutMode:
		return 0
	case ConstTimeMode:
		return t.PerMove
	}

	c, maxply := boardTimeParams(t.BoardSize)
	rest := maxply - moves
	if rest < 0 {
		rest = 0
	}
	limit := t.Remaining[turn] / time.Duration(c+rest)

	if t.Mode == MainTimeByoyomiMode {
		if floor := time.Duration(float64(t.PerMove) * 0.85); limit < floor {
			limit = floor
		}
	}
	return limit
}

// Shorten applies §4.H's "if winning probability > 0.9 or 0.95, the next
// limit is shortened to 0.5x or 0.25x" rule to limit.
func Shorten(limit time.Duration, bestWinRate float64) time.Duration {
	switch {
	case bestWinRate > 0.95:
		return time.Duration(float64(limit) * 0.25)
	case bestWinRate > 0.90:
		return time.Duration(float64(limit) * 0.5)
	default:
		return limit
	}
}

// Consume decrements turn's remaining main-time clock by elapsed, per
// §4.H's "after each move, remaining time is decremented by actual
// elapsed." A no-op outside the two main-time modes.
func (t *TimeControl) Consume(turn board.Color, elapsed time.Duration) {
	if t.Mode != MainTimeMode && t.Mode != MainTimeByoyomiMode {
		return
	}
	t.Remaining[turn] -= elapsed
}
