package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// Urgency buckets returned by CheckFeaturesAroundLastMove, grounded on the
// MOVE_DISTANCE_MAX-scaled status value CheckFeaturesForTree returns (used
// upstream to bias the move-distance feature toward points near a just-created
// weakness).
const (
	UrgencyNone    = 0
	UrgencyThree   = MoveDistanceMax * 1
	UrgencyTwo     = MoveDistanceMax * 2
	UrgencyOne     = MoveDistanceMax * 3
)

// CheckFeaturesAroundLastMove re-evaluates the tactical features around the last
// move played: for each of that mover's own strings adjacent to the move with one,
// two or three liberties, it assigns save-extension/extension/dame/capture/atari
// ids to the relevant points. Returns an urgency bucket (higher for a string left in
// greater danger) for the move-distance feature to bias toward. Grounded on
// CheckFeaturesForTree (original_source/src/feature/UctFeature.cpp).
func CheckFeaturesAroundLastMove(pos *board.Position) int {
	last := pos.LastMove()
	if !last.IsReal() {
		return UrgencyNone
	}
	mv, ok := pos.MoveNAgo(1)
	if !ok {
		return UrgencyNone
	}
	color := mv.Color
	g := pos.Geometry()

	status := UrgencyNone
	checked := map[*board.Str]bool{}
	for _, n := range g.Neighbors4(last) {
		if !g.OnBoard(n) || pos.Stone(n) != board.StoneOf(color) {
			continue
		}
		s := pos.StringAt(n)
		if s == nil || checked[s] {
			continue
		}
		checked[s] = true
		id := pos.StringIDAt(n)

		switch s.NumLiberties() {
		case 1:
			ladder := CheckLadderExtension(pos, color, n)
			checkFeaturesLib1(pos, color, id, ladder)
			status = UrgencyOne
		case 2:
			checkFeaturesLib2(pos, color, id)
			if status <= UrgencyNone {
				status = UrgencyTwo
			}
		case 3:
			checkFeaturesLib3(pos, color, id)
			if status <= UrgencyNone {
				status = UrgencyThree
			}
		}
	}
	return status
}

// CheckCaptureAfterKo marks a capture that resolves a ko just created two plies ago
// (i.e. the opponent string put in atari by the move before last), grounded on
// CheckCaptureAfterKoForTree.
func CheckCaptureAfterKo(pos *board.Position, color board.Color) {
	mv, ok := pos.MoveNAgo(2)
	if !ok || mv.Point == board.PointPass {
		return
	}
	if kp, ok := pos.KoPointCreatedNAgo(2); !ok || kp == board.PointNone {
		return
	}
	other := color.Opponent()
	g := pos.Geometry()
	for _, n := range g.Neighbors4(mv.Point) {
		if !g.OnBoard(n) || pos.Stone(n) != board.StoneOf(other) {
			continue
		}
		s := pos.StringAt(n)
		if s != nil && s.NumLiberties() == 1 {
			compareSwap(pos, s.Libs.First(), board.FamilyCapture, CaptureAfterKo)
		}
	}
}

// CheckKoRecapture marks a capture that retakes a ko (the stone captured three plies
// ago), grounded on CheckKoRecaptureForTree.
func CheckKoRecapture(pos *board.Position, color board.Color) {
	mv, ok := pos.MoveNAgo(3)
	if !ok || mv.Point == board.PointPass {
		return
	}
	other := color.Opponent()
	if pos.Stone(mv.Point) != board.StoneOf(other) {
		return
	}
	if s := pos.StringAt(mv.Point); s != nil && s.NumLiberties() == 1 {
		compareSwap(pos, s.Libs.First(), board.FamilyCapture, KoRecapture)
	}
}

// CheckCapture marks a plain capture (or, if the captured string's captor would
// itself be left in atari by a neighboring one-liberty string, a capturing-race
// capture) at candidate point p, grounded on CheckCaptureForTree.
func CheckCapture(pos *board.Position, color board.Color, p board.Point) {
	other := color.Opponent()
	g := pos.Geometry()
	for _, n := range g.Neighbors4(p) {
		if !g.OnBoard(n) || pos.Stone(n) != board.StoneOf(other) {
			continue
		}
		s := pos.StringAt(n)
		if s == nil || s.NumLiberties() != 1 {
			continue
		}
		semeai := false
		for _, nid := range s.Nbrs.Values(board.NoString) {
			if nb := pos.String(nid); nb != nil && nb.Exists && nb.NumLiberties() == 1 {
				semeai = true
				break
			}
		}
		if semeai {
			compareSwap(pos, p, board.FamilyCapture, SemeaiCapture)
			return
		}
		compareSwap(pos, p, board.FamilyCapture, Capture)
	}
}

// CheckAtari marks a plain atari at candidate point p, grounded on
// CheckAtariForTree.
func CheckAtari(pos *board.Position, color board.Color, p board.Point) {
	other := color.Opponent()
	g := pos.Geometry()
	for _, n := range g.Neighbors4(p) {
		if !g.OnBoard(n) || pos.Stone(n) != board.StoneOf(other) {
			continue
		}
		if s := pos.StringAt(n); s != nil && s.NumLiberties() == 2 {
			compareSwap(pos, p, board.FamilyAtari, Atari)
		}
	}
}

// CheckKoConnection marks the connection that resolves a ko created three plies ago
// (two further plies have been played since the capture), grounded on
// CheckKoConnectionForTree. Reads the ko point out of move
// history (KoPointCreatedNAgo) rather than Position's live KoPoint/KoMove, since the
// live fields are cleared the very next ply (they exist only to enforce the
// single-ply retake restriction) and would never satisfy a two-plies-back check.
func CheckKoConnection(pos *board.Position) {
	// The move that created the ko is the one three plies back from the current
	// position: its own KoMove equalled its own move count M (MoveNAgo(3)'s index),
	// and two more plies have passed since (MoveNAgo(2), MoveNAgo(1)), bringing the
	// live move count to M+2 -- exactly the original's `ko_move == moves - 2` test.
	kp, ok := pos.KoPointCreatedNAgo(3)
	if !ok || kp == board.PointNone {
		return
	}
	compareSwap(pos, kp, board.FamilyConnect, KoConnection)
}

// CheckRemove2Stones marks a throw-in point left by a two-stone capture, when it
// reconnects at least two of the mover's own stones, grounded on
// CheckRemove2StonesForTree.
func CheckRemove2Stones(pos *board.Position, color board.Color) {
	other := color.Opponent()
	captured := pos.CapturedThisMove(other)
	if len(captured) != 2 {
		return
	}
	rm1, rm2 := captured[0], captured[1]
	g := pos.Geometry()
	x1, y1 := g.XY(rm1)
	x2, y2 := g.XY(rm2)
	adjacent := (x1 == x2 && abs(y1-y2) == 1) || (y1 == y2 && abs(x1-x2) == 1)
	if !adjacent {
		return
	}
	for _, rm := range [2]board.Point{rm1, rm2} {
		connect := 0
		for _, d := range g.Diagonals4(rm) {
			if g.OnBoard(d) && pos.Stone(d) == board.StoneOf(color) {
				connect++
			}
		}
		if connect >= 2 {
			compareSwap(pos, rm, board.FamilyThrowIn, ThrowIn2)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
