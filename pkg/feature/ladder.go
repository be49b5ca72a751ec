package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// maxLadderDepth bounds the forced-sequence read so a ladder that runs the length of
// the board still terminates; §4.C only needs ladder reads on boards up to 19x19, so
// this comfortably covers a full-board diagonal run.
const maxLadderDepth = 80

// CaughtInLadder reads out a single-liberty string (at origin, owned by the
// opponent of attacker) as a ladder: repeatedly, the defender is forced to extend to
// its one remaining liberty and the attacker reduces the extended string back to one
// liberty, until the string is captured (ladder works) or escapes to 3+ liberties or
// off the board edge (ladder fails). Grounded on LadderExtension/CheckLadderExtension
// (original_source/include/feature/Ladder.hpp); the original's implementation file
// is not in this pack, so the forced-sequence shape below is reconstructed from the
// algorithm's standard description rather than ported line by line.
func CaughtInLadder(pos *board.Position, origin board.Point, attacker board.Color) bool {
	defender := attacker.Opponent()
	trial := pos.Fork()
	cur := origin

	for depth := 0; depth < maxLadderDepth; depth++ {
		s := trial.StringAt(cur)
		if s == nil {
			return true // already captured
		}
		if s.NumLiberties() != 1 {
			return false // escaped
		}
		lib := s.Libs.First()
		if err := trial.PlaceStone(lib, defender, true); err != nil {
			return true // defender has no escape move at all
		}
		ext := trial.StringAt(lib)
		if ext == nil {
			return false
		}
		switch ext.NumLiberties() {
		case 0, 1:
			return true // still in atari (or self-captured) after extending
		case 2:
			progressed := false
			for _, cand := range ext.Libs.Values(board.PointNone) {
				next := trial.Fork()
				if err := next.PlaceStone(cand, attacker, true); err != nil {
					continue
				}
				if ns := next.StringAt(lib); ns == nil || ns.NumLiberties() == 1 {
					trial = next
					cur = lib
					progressed = true
					break
				}
			}
			if !progressed {
				return false // attacker cannot keep the ladder going
			}
		default:
			return false // ladder broken: the extension reaches 3+ liberties
		}
	}
	return false
}

// CheckLadderExtension reports whether color's one-liberty string that contains the
// stone at p is caught by a ladder when it extends (p is a stone of that string, not
// the extension point), grounded on CheckLadderExtension.
func CheckLadderExtension(pos *board.Position, color board.Color, p board.Point) bool {
	s := pos.StringAt(p)
	if s == nil || s.NumLiberties() != 1 {
		return false
	}
	return CaughtInLadder(pos, s.Origin, color.Opponent())
}
