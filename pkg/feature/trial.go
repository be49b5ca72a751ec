package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// libertyState classifies what playing at a string's liberty would do to that
// string's liberty count, grounded on CheckLibertyState/L_DECREASE/L_EVEN/L_INCREASE
// (original_source/src/feature/UctFeature.cpp and FeatureUtility.hpp).
type libertyState int

const (
	libOther libertyState = iota
	libDecrease
	libEven
	libIncrease
)

// checkLibertyState simulates color playing at lib, one of id's current liberties,
// and compares the resulting string's liberty count to id's liberty count before the
// move. Uses a trial Fork()+PlaceStone rather than a hand-derived liberty count,
// the same trial-application idiom legality.go uses for IsLegal: post-move liberties
// are exactly what PlaceStone already computes.
func checkLibertyState(pos *board.Position, lib board.Point, color board.Color, id board.StringID) libertyState {
	s := pos.String(id)
	if s == nil {
		return libOther
	}
	before := s.NumLiberties()
	if !pos.IsLegal(lib, color) {
		return libOther
	}
	trial := pos.Fork()
	if err := trial.PlaceStone(lib, color, true); err != nil {
		return libOther
	}
	after := trial.StringAt(lib)
	if after == nil {
		return libOther
	}
	switch {
	case after.NumLiberties() < before:
		return libDecrease
	case after.NumLiberties() == before:
		return libEven
	default:
		return libIncrease
	}
}

// isCapturableAtari reports whether putting the string through origin into atari at
// lib (color playing there) leaves it capturable in a ladder, rather than merely
// escapable, grounded on IsCapturableAtari (UctFeature.cpp) and implemented via the
// ladder reader (ladder.go) instead of re-deriving a separate one-step heuristic.
func isCapturableAtari(pos *board.Position, lib board.Point, color board.Color, origin board.Point) bool {
	if !pos.IsLegal(lib, color) {
		return false
	}
	trial := pos.Fork()
	if err := trial.PlaceStone(lib, color, true); err != nil {
		return false
	}
	s := trial.StringAt(origin)
	if s == nil || s.Color == color || s.NumLiberties() != 1 {
		// origin string already captured outright, or the trial point wasn't
		// actually the atari-inducing liberty.
		return s == nil
	}
	return CaughtInLadder(trial, s.Origin, color)
}

// isSelfAtariCapture reports whether color capturing at lib (the last liberty of an
// adjacent one-liberty enemy string) leaves its own resulting string in atari, i.e.
// the capture is a snap-back rather than a clean save, grounded on
// IsSelfAtariCapture (UctFeature.cpp).
func isSelfAtariCapture(pos *board.Position, lib board.Point, color board.Color) bool {
	if !pos.IsLegal(lib, color) {
		return false
	}
	trial := pos.Fork()
	if err := trial.PlaceStone(lib, color, true); err != nil {
		return false
	}
	s := trial.StringAt(lib)
	return s != nil && s.NumLiberties() == 1
}
