package searchctl

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/mcts"
)

// extensionStages is the post-hoc extension multiplier sequence of §4.G/§4.H
// ("1.0 -> 1.5 -> 2.0"): index 0 is the unextended budget, index 1 and 2 are
// the two extension stages a search may step through.
var extensionStages = [...]float64{1.0, 1.5, 2.0}

// monitorInterval is how often the designated "thread 0" polls for halt and
// extension conditions, per §4.G's "One worker thread checks every
// iteration" -- polling rather than checking after literally every playout,
// since playouts complete in microseconds and a tight poll would just burn a
// core on lock contention against the workers it's supposed to be timing.
const monitorInterval = 10 * time.Millisecond

// Budget is a search harness that runs Workers goroutines calling
// Tree.Simulate concurrently against a fixed playout/time budget, the
// mcts-package analogue of the teacher's Iterative depth-iteration harness:
// same Launch/handle/process shape, but polling a playout budget instead of
// incrementing a search depth. Grounded on
// pkg/search/searchctl/iterative.go's Launch/handle/process structure and
// original_source/src/mcts/SearchManager.cpp's CheckInterruption/ExtendTime
// for the termination and extension policy, per §4.G/§4.H.
type Budget struct {
	// Workers is the number of concurrent Simulate callers. Zero defaults
	// to 1.
	Workers int
}

func (b *Budget) workers() int {
	if b.Workers > 0 {
		return b.Workers
	}
	return 1
}

// Launch starts a search against tree's current root (the caller must have
// already called tree.SetRoot). turn and moves identify whose move and how
// deep into the game this search is, needed for TimeControl.NextLimit and
// the extension move-number threshold.
func (b *Budget) Launch(ctx context.Context, tree *mcts.Tree, turn board.Color, moves int, opt Options) (Handle, <-chan PV) {
	out := make(chan PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go h.process(ctx, tree, turn, moves, opt, b.workers(), out)

	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	pv PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, tree *mcts.Tree, turn board.Color, moves int, opt Options, workers int, out chan PV) {
	defer h.init.Close()
	defer close(out)

	start := time.Now()

	tc, useTime := opt.TimeControl.V()
	playoutCeiling, usePlayoutCeiling := opt.PlayoutLimit.V()

	var limit time.Duration
	if useTime {
		limit = tc.NextLimit(turn, moves)
		if tc.Mode == ConstPlayoutMode && !usePlayoutCeiling {
			playoutCeiling, usePlayoutCeiling = uint64(tc.Playouts), true
		}
	}
	baseLimit, baseCeiling := limit, playoutCeiling

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	var playouts atomic.Uint64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(i)))
		go func(rng *rand.Rand) {
			defer wg.Done()
			for !h.quit.IsClosed() {
				tree.Simulate(rng)
				playouts.Add(1)
			}
		}(rng)
	}

	// The search is running as soon as workers are spinning: unlike
	// iterative deepening, a playout-budget search has no natural "first
	// result" to wait for, so Halt callers are unblocked immediately rather
	// than after some arbitrary first poll.
	h.init.Close()

	ticker := time.NewTicker(monitorInterval)
	defer ticker.Stop()

	stage := 0

monitor:
	for {
		select {
		case <-wctx.Done():
			break monitor
		case <-ticker.C:
			elapsed := time.Since(start)
			n := playouts.Load()

			if usePlayoutCeiling && n >= playoutCeiling {
				break monitor
			}

			if useTime {
				switch tc.Mode {
				case ConstTimeMode:
					if elapsed >= limit {
						break monitor
					}
				case MainTimeMode, MainTimeByoyomiMode:
					if elapsed >= limit {
						if stage < len(extensionStages)-1 && extendSearch(tree, tc.BoardSize, moves) {
							stage++
							limit = time.Duration(float64(baseLimit) * extensionStages[stage])
							if usePlayoutCeiling {
								playoutCeiling = uint64(float64(baseCeiling) * extensionStages[stage])
							}
							continue
						}
						break monitor
					}
					if checkInterruption(tree, n, elapsed, limit) {
						break monitor
					}
				}
			}
		}
	}

	h.quit.Close()
	wg.Wait()

	res := tree.BestMove()
	pv := PV{
		Move:      res.Move,
		Resign:    res.Resign,
		Visits:    res.Visits,
		WinRate:   res.WinRate,
		Playouts:  playouts.Load(),
		Ownership: res.Ownership,
		Time:      time.Since(start),
	}

	h.mu.Lock()
	h.pv = pv
	h.mu.Unlock()

	select {
	case <-out:
	default:
	}
	out <- pv
}

func (h *handle) Halt() PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pv
}

// rootChildVisitGap returns the two highest root-child visit counts, for
// checkInterruption/extendSearch.
func rootChildVisitGap(tree *mcts.Tree) (max, second int64) {
	root := tree.RootNode()
	if root == nil {
		return 0, 0
	}
	for _, c := range root.Children {
		v := c.Visits.Load()
		switch {
		case v > max:
			second = max
			max = v
		case v > second:
			second = v
		}
	}
	return max, second
}

// checkInterruption ports CheckInterruption from SearchManager.cpp: the
// search can stop early once the leading root child's visit lead over the
// runner-up exceeds however many playouts remain in this move's budget,
// since no remaining playout could change the outcome. Skipped before 10%
// of the limit has elapsed, matching the original's own "too early to tell"
// gate (elapsed*10 < time_limit).
func checkInterruption(tree *mcts.Tree, playouts uint64, elapsed, limit time.Duration) bool {
	if limit <= 0 || elapsed*10 < limit {
		return false
	}

	rate := float64(playouts) / elapsed.Seconds()
	rest := int64(rate*limit.Seconds()) - int64(playouts)
	if rest <= 0 {
		return false
	}

	max, second := rootChildVisitGap(tree)
	return max-second > rest
}

// extendSearch ports ExtendTime from SearchManager.cpp: extension is only
// offered once the move number has passed 3*boardSize-17, the root's own win
// rate isn't already decisive (>0.80), and the top two children remain
// within 20% of each other's visit counts.
func extendSearch(tree *mcts.Tree, boardSize, moves int) bool {
	if moves < boardSize*3-17 {
		return false
	}

	root := tree.RootNode()
	if root == nil {
		return false
	}
	visits := root.Visits.Load()
	if visits == 0 {
		return false
	}
	if root.WinSum.Load()/float64(visits) > 0.80 {
		return false
	}

	max, second := rootChildVisitGap(tree)
	return float64(max) < float64(second)*1.2
}
