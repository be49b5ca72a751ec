package searchctl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/mcts"
)

// PV reports one search's outcome so far, the mcts-package analogue of the
// teacher's search.PV: instead of a depth-iteration's principal variation it
// carries the current best root move, its visit/win-rate support, and the
// whole-board ownership estimate, per §4.G's move-selection and ownership
// exports.
type PV struct {
	Move      board.Point
	Resign    bool
	Visits    int64
	WinRate   float64
	Playouts  uint64
	Ownership map[board.Point]float64
	Time      time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("move=%v resign=%v visits=%v winrate=%.3f playouts=%v time=%v",
		p.Move, p.Resign, p.Visits, p.WinRate, p.Playouts, p.Time)
}

// Options hold dynamic search options for one Launch call, per §4.H's four
// modes plus an optional hard playout ceiling independent of TimeControl
// (used by GTP's "kgs-genmove_cleanup"-style fixed-budget analysis).
type Options struct {
	// PlayoutLimit, if set, halts the search once this many playouts have
	// run, regardless of TimeControl. Zero (not set) means no extra limit.
	PlayoutLimit lang.Optional[uint64]
	// TimeControl, if set, governs wall-clock budgeting per §4.H.
	TimeControl lang.Optional[TimeControl]
}

func (o Options) String() string {
	var ret []string
	if v, ok := o.PlayoutLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("playouts=%v", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		ret = append(ret, fmt.Sprintf("time=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(ret, ", "))
}

// Launcher is a search generator over an mcts.Tree.
type Launcher interface {
	// Launch a new search from tree's current root (set by the caller via
	// tree.SetRoot before calling Launch). It returns a PV channel reporting
	// progress as playouts accumulate; the channel closes when the search
	// halts. The search can be stopped at any time via the returned Handle.
	Launch(ctx context.Context, tree *mcts.Tree, turn board.Color, moves int, opt Options) (Handle, <-chan PV)
}

// Handle manages one running search. The engine is expected to spin off
// searches against a tree whose root it already set, and to Halt them before
// calling tree.SetRoot again (see mcts.Tree.SetRoot's doc comment).
type Handle interface {
	// Halt halts the search, if running, and returns its final PV. Idempotent.
	Halt() PV
}
