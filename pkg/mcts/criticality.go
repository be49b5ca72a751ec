package mcts

import (
	"math"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

// Owner/criticality table sizes and shaping constants, ported from
// original_source/include/mcts/UctRating.hpp. OWNER_MAX buckets the fraction
// of playouts in which a point belonged to the node's mover into 11 deciles;
// CRITICALITY_MAX buckets the correlation between a point's final owner and
// the eventual playout winner into 25 steps.
const (
	ownerBuckets       = 11
	criticalityBuckets = 25
	ownerK             = 1.8
	ownerBias          = 6.6
	criticalityTerm    = 100.0
	criticalityBias    = 0.32
)

// ownerTable[i] peaks at i=5 (the ~46-55% bucket): a point whose ownership is
// most contested across playouts gets the largest bonus, rewarding moves
// near undecided territory rather than already-settled points. Ported
// verbatim from UctRating.cpp's init loop (owner_k*exp(-(i-5)^2/owner_bias)).
var ownerTable = func() [ownerBuckets]float64 {
	var t [ownerBuckets]float64
	for i := range t {
		d := float64(i - 5)
		t[i] = ownerK * math.Exp(-d*d/ownerBias)
	}
	return t
}()

// criticalityTable[i] increases monotonically with i: the more a point's
// final ownership correlates with who actually won (beyond what the node's
// own win rate already predicts), the larger the bonus. Ported verbatim from
// UctRating.cpp's init loop (exp(criticality_bias*i)).
var criticalityTable = func() [criticalityBuckets]float64 {
	var t [criticalityBuckets]float64
	for i := range t {
		t[i] = math.Exp(criticalityBias * float64(i))
	}
	return t
}()

// ownerIndex buckets the fraction of playouts through n in which p belonged
// to n.ToMove into [0, ownerBuckets), ported from CalculateOwnerIndex.
func ownerIndex(n *Node, p board.Point) int {
	visits := n.Visits.Load()
	s := n.stats[p]
	if visits == 0 || s == nil {
		return 0
	}
	var mine int64
	if n.ToMove == board.Black {
		mine = s.black
	} else {
		mine = s.white
	}
	idx := int(float64(mine)*10.0/float64(visits) + 0.5)
	return clampIndex(idx, ownerBuckets)
}

// criticalityIndex buckets how much p's final owner correlates with the
// eventual playout winner, beyond the node's own win rate, into
// [0, criticalityBuckets), ported from CalculateCriticalityIndex.
func criticalityIndex(n *Node, p board.Point) int {
	visits := n.Visits.Load()
	s := n.stats[p]
	if visits == 0 || s == nil {
		return 0
	}
	count := float64(visits)
	win := n.WinSum.Load() / count
	lose := 1 - win

	var mine, other int64
	if n.ToMove == board.Black {
		mine, other = s.black, s.white
	} else {
		mine, other = s.white, s.black
	}

	tmp := float64(s.winner)/count - (float64(mine)/count*win + float64(other)/count*lose)
	if tmp < 0 {
		tmp = 0
	}
	idx := int(tmp * criticalityTerm)
	return clampIndex(idx, criticalityBuckets)
}

func clampIndex(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// OwnerBonus returns the re-sort owner bonus for p at n (called under n.mu
// by resortChildren's caller, via maybeWiden).
func OwnerBonus(n *Node, p board.Point) float64 {
	return ownerTable[ownerIndex(n, p)]
}

// CriticalityBonus returns the re-sort criticality bonus for p at n.
func CriticalityBonus(n *Node, p board.Point) float64 {
	return criticalityTable[criticalityIndex(n, p)]
}
