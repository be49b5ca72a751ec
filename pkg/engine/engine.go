// Package engine is the thin control-surface facade a protocol driver calls:
// one Engine per running game, exposing §6's operation table (configure,
// set_time, set_playouts/set_time_per_move, clear_board, play, genmove,
// final_score) as typed Go methods instead of GTP command-line text. Mirrors
// the teacher's pkg/engine: a mutex-guarded struct wrapping the board and
// search state, a functional-option constructor, logw lifecycle logging.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/mcts"
	"github.com/kobanium/Ray-sub001/pkg/mcts/searchctl"
	"github.com/kobanium/Ray-sub001/pkg/score"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation options.
type Options struct {
	// NodeCapacity is the mcts.Tree node-pool size. Zero defaults to 65536.
	NodeCapacity int
	// TTCapacity is the transposition-table size. Zero defaults to
	// NodeCapacity.
	TTCapacity int
	// Workers is the number of concurrent Simulate workers per search. Zero
	// defaults to 1.
	Workers int
	// ParamDir, if set, is a directory holding uct_params/ and sim_params/
	// to load at Configure time. Empty uses score.NewTables()'s
	// zero-weighted defaults, so the engine still runs (uniformly, without
	// trained priors) when no parameter export is available.
	ParamDir string
}

func (o Options) String() string {
	return fmt.Sprintf("{nodes=%v, tt=%v, workers=%v, params=%q}", o.NodeCapacity, o.TTCapacity, o.Workers, o.ParamDir)
}

// Engine encapsulates one game's board, search tree and time budget, per
// §6's control surface.
type Engine struct {
	name, author string

	launcher searchctl.Launcher
	opts     Options

	mu sync.Mutex

	cfg  board.Config
	zt   *board.ZobristTable
	pos  *board.Position
	tree *mcts.Tree

	moves int

	tc          searchctl.TimeControl
	hasTC       bool
	playouts    int
	lastWinRate float64

	active searchctl.Handle
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the tree/search creation options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithLauncher overrides the default Budget launcher, mainly for tests.
func WithLauncher(l searchctl.Launcher) Option {
	return func(e *Engine) {
		e.launcher = l
	}
}

// New constructs an engine and configures it to the default 19x19, komi 7.5,
// no-superko position, matching the teacher's New(...) eagerly Reset-ing to
// fen.Initial.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		opts:   Options{NodeCapacity: 65536, TTCapacity: 65536, Workers: 1},
	}
	for _, fn := range opts {
		fn(e)
	}
	if e.opts.NodeCapacity <= 0 {
		e.opts.NodeCapacity = 65536
	}
	if e.opts.TTCapacity <= 0 {
		e.opts.TTCapacity = e.opts.NodeCapacity
	}
	if e.opts.Workers <= 0 {
		e.opts.Workers = 1
	}
	if e.launcher == nil {
		e.launcher = &searchctl.Budget{Workers: e.opts.Workers}
	}

	_ = e.Configure(ctx, board.DefaultConfig.Size, board.DefaultConfig.Komi, board.DefaultConfig.Superko)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns a forked copy of the current board position.
func (e *Engine) Position() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.Fork()
}

// Configure implements configure(board_size, komi, superko): (re)initializes
// the board, the parameter tables and the search tree, per §6. Any active
// search is halted first.
func (e *Engine) Configure(ctx context.Context, size int, komi float64, superko bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg, err := board.NewConfig(size, komi, superko)
	if err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	_, _ = e.haltSearchIfActive(ctx)

	g := board.NewGeometry(cfg)
	treeScorer, rolloutScorer, err := e.loadScorers(ctx, g)
	if err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	e.cfg = cfg
	e.zt = board.NewZobristTable(g, 1)
	e.pos = board.NewPosition(cfg, e.zt)
	e.tree = mcts.NewTree(e.opts.NodeCapacity, e.opts.TTCapacity, treeScorer, rolloutScorer)
	e.tree.SetRoot(e.pos)
	e.moves = 0
	e.lastWinRate = 0

	logw.Infof(ctx, "Configured board=%vx%v komi=%v superko=%v", size, size, komi, superko)
	return nil
}

// loadScorers reads ParamDir's uct_params/sim_params tables, or falls back to
// score.NewTables()'s zero-weighted defaults if ParamDir is unset.
func (e *Engine) loadScorers(ctx context.Context, g *board.Geometry) (tree, rollout *score.Scorer, err error) {
	if e.opts.ParamDir == "" {
		logw.Warningf(ctx, "No parameter directory configured; using uniform zero-weighted tables")
		t := score.NewTables()
		return score.NewScorer(g, t), score.NewScorer(g, t), nil
	}
	return score.ReloadParams(ctx, g, e.opts.ParamDir)
}

// SetTimeSettings implements set_time(main_seconds, byoyomi_seconds,
// byoyomi_stones), choosing a mode per §4.H. byoyomiStones of zero with
// byoyomi set is treated as 1 stone. main of zero is pure byo-yomi, modeled
// as a constant per-move budget of 0.85*byoyomi/stones, matching
// SetTimeSettings's own main==0 special case (see timectrl.go's
// NewMainTimeByoyomiControl doc comment).
func (e *Engine) SetTimeSettings(ctx context.Context, main, byoyomi time.Duration, byoyomiStones int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if byoyomiStones <= 0 {
		byoyomiStones = 1
	}

	switch {
	case byoyomi <= 0:
		e.tc = searchctl.NewMainTimeControl(e.cfg.Size, main)
	case main <= 0:
		e.tc = searchctl.NewConstTimeControl(time.Duration(float64(byoyomi/time.Duration(byoyomiStones)) * 0.85))
	default:
		e.tc = searchctl.NewMainTimeByoyomiControl(e.cfg.Size, main, byoyomi, byoyomiStones)
	}
	e.hasTC = true
	e.playouts = 0

	logw.Infof(ctx, "SetTimeSettings %v", e.tc)
	return nil
}

// SetPlayouts implements set_playouts(n): a constant playout budget per move.
func (e *Engine) SetPlayouts(ctx context.Context, n int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.playouts = n
	e.hasTC = false

	logw.Infof(ctx, "SetPlayouts %v", n)
}

// SetTimePerMove implements set_time_per_move(s): a constant wall-clock
// budget per move.
func (e *Engine) SetTimePerMove(ctx context.Context, d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tc = searchctl.NewConstTimeControl(d)
	e.hasTC = true
	e.playouts = 0

	logw.Infof(ctx, "SetTimePerMove %v", d)
}

// ClearBoard implements clear_board: a fresh game at the current config,
// preserving the configured board size/komi/superko and time settings.
func (e *Engine) ClearBoard(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, _ = e.haltSearchIfActive(ctx)

	e.pos = board.NewPosition(e.cfg, e.zt)
	e.tree.SetRoot(e.pos)
	e.moves = 0
	e.lastWinRate = 0

	logw.Infof(ctx, "ClearBoard")
	return nil
}

// Play implements play(color, coordinate|PASS): applies an externally chosen
// move (usually an opponent move) to the position and tree.
func (e *Engine) Play(ctx context.Context, color board.Color, coord string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.pos.Geometry().ParseGTPPoint(coord)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	_, _ = e.haltSearchIfActive(ctx)

	if err := e.applyMove(color, p); err != nil {
		return fmt.Errorf("play: %w", err)
	}

	logw.Infof(ctx, "Play %v %v", color, coord)
	return nil
}

func (e *Engine) applyMove(color board.Color, p board.Point) error {
	if p == board.PointPass {
		e.pos.Pass(color)
	} else {
		if !e.pos.IsLegal(p, color) {
			return fmt.Errorf("illegal move: %v %v", color, p)
		}
		if err := e.pos.PlaceStone(p, color, false); err != nil {
			return err
		}
	}
	e.tree.SetRoot(e.pos)
	e.moves++
	return nil
}

// GenMove implements genmove(color): runs a search to the currently
// configured budget, selects a move per §4.G, applies it, and reports the
// coordinate (or "pass"/"resign").
func (e *Engine) GenMove(ctx context.Context, color board.Color) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if color != e.pos.Turn() {
		return "", fmt.Errorf("genmove: not %v's turn", color)
	}

	_, _ = e.haltSearchIfActive(ctx)

	opt := e.launchOptions(color)
	logw.Infof(ctx, "GenMove %v, opt=%v", color, opt)

	handle, out := e.launcher.Launch(ctx, e.tree, color, e.moves, opt)
	e.active = handle

	pv, ok := <-out
	e.active = nil
	if !ok {
		return "", fmt.Errorf("genmove: search produced no result")
	}

	if e.hasTC {
		e.tc.Consume(color, pv.Time)
	}
	e.lastWinRate = pv.WinRate

	if pv.Resign {
		logw.Infof(ctx, "GenMove %v: resign (winrate=%.3f)", color, pv.WinRate)
		return "resign", nil
	}

	if err := e.applyMove(color, pv.Move); err != nil {
		return "", fmt.Errorf("genmove: %w", err)
	}

	coord := e.pos.Geometry().GTPString(pv.Move)
	logw.Infof(ctx, "GenMove %v: %v (visits=%v winrate=%.3f playouts=%v)", color, coord, pv.Visits, pv.WinRate, pv.Playouts)
	return coord, nil
}

// launchOptions builds this move's search budget from the configured mode.
// Win-rate shortening (§4.H: *0.5/*0.25 above 0.90/0.95) is applied here, as
// a one-shot const-time budget for this move, rather than inside Budget's
// monitor loop: extension (extendSearch) only ever fires below a 0.80 win
// rate, so a shortened and an extended move never overlap and nothing is
// lost by picking one override per move upfront.
func (e *Engine) launchOptions(turn board.Color) searchctl.Options {
	if !e.hasTC {
		if e.playouts > 0 {
			return searchctl.Options{PlayoutLimit: lang.Some(uint64(e.playouts))}
		}
		return searchctl.Options{} // ponder indefinitely until Halt
	}

	switch e.tc.Mode {
	case searchctl.ConstPlayoutMode, searchctl.ConstTimeMode:
		return searchctl.Options{TimeControl: lang.Some(e.tc)}
	default:
		limit := e.tc.NextLimit(turn, e.moves)
		if short := searchctl.Shorten(limit, e.lastWinRate); short < limit {
			return searchctl.Options{TimeControl: lang.Some(searchctl.NewConstTimeControl(short))}
		}
		return searchctl.Options{TimeControl: lang.Some(e.tc)}
	}
}

// FinalScore implements final_score: Chinese-area score plus komi, per §4.A.
func (e *Engine) FinalScore(ctx context.Context) (board.Territory, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, _ = e.haltSearchIfActive(ctx)

	t := e.pos.CalculateScore()
	logw.Infof(ctx, "FinalScore %+v", t)
	return t, nil
}

// Halt halts the active search, if any, and returns its result.
func (e *Engine) Halt(ctx context.Context) (searchctl.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pv, ok := e.haltSearchIfActive(ctx)
	if !ok {
		return searchctl.PV{}, fmt.Errorf("no active search")
	}
	return pv, nil
}

func (e *Engine) haltSearchIfActive(ctx context.Context) (searchctl.PV, bool) {
	if e.active == nil {
		return searchctl.PV{}, false
	}

	pv := e.active.Halt()
	logw.Infof(ctx, "Search halted: %v", pv)

	e.active = nil
	if e.hasTC {
		e.tc.Consume(e.pos.Turn(), pv.Time)
	}
	return pv, true
}
