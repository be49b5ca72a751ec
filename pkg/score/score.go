package score

import (
	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/feature"
	"github.com/kobanium/Ray-sub001/pkg/pattern"
)

// Scorer evaluates move scores against one loaded parameter set, for one
// board geometry. Grounded on AnalyzeUctRating/CalculateMoveScoreWithBTFM
// (original_source/src/mcts/UctRating.cpp); the same Scorer serves both the
// tree prior (loaded from uct_params/) and the lighter playout rating
// (loaded from sim_params/, whose Tables simply carry zero second-order
// vectors) -- one formula, two parameter sets, matching the ambient "lighter
// MM-style gamma tables" wording of SPEC_FULL.md MODULE E.
type Scorer struct {
	t   *Tables
	g   *board.Geometry
	sym []int
}

// NewScorer builds a Scorer for geometry g against the given parameter
// tables. The symmetry-class table is derived once from the geometry and
// reused across every MoveScore/Analyze call.
func NewScorer(g *board.Geometry, t *Tables) *Scorer {
	return &Scorer{t: t, g: g, sym: SymmetryClass(g)}
}

// MoveScore computes the move-evaluation score for candidate p (or
// board.PointPass), given distanceIndex (the urgency bucket
// feature.CheckFeaturesAroundLastMove returned for the position). Per-point
// tactical features (self-atari/capture/atari) must already have been
// assigned at p via feature.CheckCapture/CheckAtari before calling this,
// exactly as AnalyzeUctRating calls them immediately before scoring each
// candidate. Takes no color: every feature it reads was already computed
// from the mover's perspective by the feature package.
func (s *Scorer) MoveScore(pos *board.Position, p board.Point, distanceIndex int) float64 {
	var active []*Param

	if p == board.PointPass {
		if mv, ok := pos.MoveNAgo(1); ok && pos.MoveCount() > 1 && mv.Point == board.PointPass {
			active = append(active, &s.t.Pass[feature.PassAfterPass])
		} else {
			active = append(active, &s.t.Pass[feature.PassAfterMove])
		}
	} else {
		for k := 1; k <= 4; k++ {
			mv, ok := pos.MoveNAgo(k)
			if !ok || mv.Point == board.PointPass {
				continue
			}
			dis := moveDistance(s.g, p, mv.Point)
			active = append(active, &s.t.MoveDistance[k-1][dis+distanceIndex])
		}

		feats := pos.FeatureVector(p)
		if id := feats[board.FamilyCapture]; id > 0 {
			active = append(active, &s.t.Capture[id])
		}
		if id := feats[board.FamilySaveExtension]; id > 0 {
			active = append(active, &s.t.SaveExtension[id])
		}
		if id := feats[board.FamilyAtari]; id > 0 {
			active = append(active, &s.t.Atari[id])
		}
		if id := feats[board.FamilyExtension]; id > 0 {
			active = append(active, &s.t.Extension[id])
		}
		if id := feats[board.FamilyDame]; id > 0 {
			active = append(active, &s.t.Dame[id])
		}
		if id := feats[board.FamilyConnect]; id > 0 {
			active = append(active, &s.t.Connect[id])
		}
		if id := feats[board.FamilyThrowIn]; id > 0 {
			active = append(active, &s.t.ThrowIn[id])
		}

		active = append(active, &s.t.PosID[s.sym[p]])
		active = append(active, s.patternParam(pos, p))
	}

	if pos.MoveCount() > 1 && pos.KoMove() == pos.MoveCount()-1 {
		active = append(active, &s.t.KoExist)
	}

	return gamma(active) + pairwiseProduct(active)
}

// patternParam picks the deepest-matching trained neighborhood pattern at p:
// MD5 if the table lists it, else MD4, MD3, MD2, else the always-present
// dense 3x3 table. Grounded on the md5_idx/md4_idx/md3_idx/md2_idx fallback
// chain in CalculateMoveScoreWithBTFM.
func (s *Scorer) patternParam(pos *board.Position, p board.Point) *Param {
	st := pos.Pattern(p)
	if v, ok := s.t.MD5[pattern.Canonical16(st.Key(pattern.RingMD5), pattern.RingMD5)]; ok {
		return v
	}
	if v, ok := s.t.MD4[pattern.Canonical16(st.Key(pattern.RingMD4), pattern.RingMD4)]; ok {
		return v
	}
	if v, ok := s.t.MD3[pattern.Canonical16(st.Key(pattern.RingMD3), pattern.RingMD3)]; ok {
		return v
	}
	if v, ok := s.t.MD2[pattern.Canonical16(st.Key(pattern.RingMD2), pattern.RingMD2)]; ok {
		return v
	}
	return &s.t.Pat3[st.Key(pattern.RingPat3)]
}

// Analyze scores every candidate point (legal, non-eye, non-large-self-atari
// moves are the caller's responsibility to have filtered, per §4.G's "for
// each legal non-eye non-unmeaningful-self-atari intersection") plus PASS,
// assigning the per-point tactical features first exactly as
// AnalyzeUctRating does, then normalizing the raw scores to sum to 1 across
// all candidates (§4.D: "scorer outputs are normalized across legal moves at
// a node before being stored as child priors").
func (s *Scorer) Analyze(pos *board.Position, color board.Color, candidates []board.Point) map[board.Point]float64 {
	distanceIndex := feature.CheckFeaturesAroundLastMove(pos)

	out := make(map[board.Point]float64, len(candidates)+1)
	var total float64
	for _, p := range candidates {
		feature.CheckCapture(pos, color, p)
		feature.CheckAtari(pos, color, p)
		sc := s.MoveScore(pos, p, distanceIndex)
		out[p] = sc
		total += sc
	}
	passScore := s.MoveScore(pos, board.PointPass, distanceIndex)
	out[board.PointPass] = passScore
	total += passScore

	if total > 0 {
		for p, sc := range out {
			out[p] = sc / total
		}
	}
	return out
}
