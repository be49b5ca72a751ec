package mcts

import (
	"math"
	"math/rand"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

// Selection constants, grounded on
// original_source/include/mcts/ucb/UCBEvaluation.hpp and its .cpp: FPU is the
// optimistic value assigned to a never-visited-but-open child so it is tried
// before statistics exist; priorWeight/priorEquivalence shape the prior-bonus
// term toward 0 as a node accumulates real visits. UCB_COEFFICIENT from the
// original only scales the plain (non-tuned) UCB1 formula, which this package
// never uses -- CalculateUCB1TunedValue folds its own variance estimate in
// directly, so no extra coefficient belongs in selectValue below.
const (
	fpu             = 5.0
	priorWeight     = 0.20
	priorEquivalence = 1000.0
	varianceClamp   = 0.25
)

// progressiveWidth returns pw[k], the visit count a node must reach before
// its (k+1)-th child is opened, per §4.G's "40*r^k, r ~= 1.8, clamped."
func progressiveWidth(k int) int64 {
	const base = 40.0
	const ratio = 1.8
	const clamp = 1 << 20 // never practically reached; guards float overflow
	v := base * math.Pow(ratio, float64(k))
	if v > clamp {
		return clamp
	}
	return int64(v)
}

// rewidenInterval is how often (in parent visits) re-sort-and-reopen runs.
const rewidenInterval = 128

// ucb1Tuned computes the variance-clamped UCB1-Tuned term for one child given
// its own win/visit counts and the parent's total (visits across all
// children, including virtual loss), ported from CalculateUCB1TunedValue.
func ucb1Tuned(wins float64, moveCount int64, totalVisits int64) float64 {
	n := float64(moveCount)
	p := wins / n
	div := math.Log(float64(totalVisits)) / n
	v := p - p*p + math.Sqrt(2*div)
	if v > varianceClamp {
		v = varianceClamp
	}
	return p + math.Sqrt(div*v)
}

// priorBonusWeight returns the shared move_score_bonus_weight term, computed
// once per selection pass from the parent's total visits (sum in the
// original), ported from SelectBestChildIndexByUCB1.
func priorBonusWeight(parentVisits int64) float64 {
	return priorWeight * math.Sqrt(priorEquivalence/(float64(parentVisits)+priorEquivalence))
}

// selectChild picks the open child of n with the highest UCB1-Tuned + prior
// bonus value, matching SelectBestChildIndexByUCB1's pw-or-open eligibility
// gate and FPU-plus-jitter treatment of never-visited children. rng supplies
// the jitter and must not be shared across concurrent callers without its own
// synchronization (callers give each search worker its own *rand.Rand, per
// §5's per-worker descent).
func selectChild(n *Node, rng *rand.Rand) *Child {
	n.mu.Lock()
	defer n.mu.Unlock()

	parentVisits := n.Visits.Load() + n.VirtualLoss.Load()
	bonusWeight := priorBonusWeight(parentVisits)

	var best *Child
	bestValue := -math.MaxFloat64
	for i, c := range n.Children {
		if i >= n.width && !c.Forced {
			continue
		}
		moveCount := c.Visits.Load() + c.VirtualLoss.Load()
		var value float64
		if moveCount == 0 {
			value = fpu + 0.0001*float64(rng.Intn(10000))
		} else {
			wins := c.WinSum.Load()
			value = ucb1Tuned(wins, moveCount, parentVisits) + bonusWeight*c.Prior
		}
		if value > bestValue {
			bestValue = value
			best = c
		}
	}
	return best
}

// maybeWiden opens the next child (by prior, among those not yet open) while
// the node's total visits have reached progressiveWidth(width-1) (width
// counts the forced PASS child), and re-sorts+reopens the top-width children
// by prior*owner*criticality every rewidenInterval visits, per §4.G. It takes
// n.mu itself, so the caller that just recorded a visit must not hold it
// (selectChild's own lock is released by then).
func maybeWiden(n *Node, ownerBonus, criticalityBonus func(board.Point) float64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	total := n.Visits.Load()
	for n.width < len(n.Children) && total >= progressiveWidth(n.width-1) {
		openNextChild(n)
	}

	if total > 0 && total%rewidenInterval == 0 {
		resortChildren(n, ownerBonus, criticalityBonus)
	}
}

// openNextChild opens the highest-prior currently-closed child. Called with
// n.mu already held.
func openNextChild(n *Node) {
	bestIdx := -1
	bestPrior := -math.MaxFloat64
	for i, c := range n.Children {
		if c.Open {
			continue
		}
		if c.Prior > bestPrior {
			bestPrior = c.Prior
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return
	}
	n.Children[bestIdx].Open = true
	if bestIdx >= n.width {
		n.Children[bestIdx], n.Children[n.width] = n.Children[n.width], n.Children[bestIdx]
	}
	n.width++
}

// resortChildren re-sorts every child by prior*owner*criticality and reopens
// exactly the top n.width, per §4.G's periodic re-sort. Children.Forced
// (PASS) is always kept open regardless of rank. Called with n.mu held.
func resortChildren(n *Node, ownerBonus, criticalityBonus func(board.Point) float64) {
	score := func(c *Child) float64 {
		return c.Prior * ownerBonus(c.Move) * criticalityBonus(c.Move)
	}

	children := n.Children
	for i := 1; i < len(children); i++ {
		j := i
		for j > 0 && score(children[j]) > score(children[j-1]) {
			children[j], children[j-1] = children[j-1], children[j]
			j--
		}
	}

	for i, c := range children {
		c.Open = c.Forced || i < n.width
	}
}

// expansionThreshold returns the child-visit count past which a child must
// be expanded into its own Node rather than treated as a leaf, per §4.G's
// board-size-dependent table (40/50/70 for 9/13/19; sizes up to 9 use 40, up
// to 13 use 50, larger use 70) and "effectively infinite after two
// consecutive passes."
func expansionThreshold(boardSize int, twoPasses bool) int64 {
	if twoPasses {
		return math.MaxInt64
	}
	switch {
	case boardSize <= 9:
		return 40
	case boardSize <= 13:
		return 50
	default:
		return 70
	}
}
