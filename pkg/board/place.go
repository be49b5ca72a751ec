package board

import "fmt"

// PlaceStone implements place_stone of §4.A: paints the stone, merges it into any
// adjacent same-color strings, removes any adjacent enemy string reduced to zero
// liberties, updates the rolling hashes, ko point and neighborhood pattern state,
// and advances the move counter.
//
// PlaceStone does not itself re-verify legality (occupied/suicide/ko/superko): the
// caller is expected to have checked IsLegal first, exactly as the candidate move
// generators of §4.E/§4.D only ever offer legal points. The fast flag skips marking
// the placed stone's neighborhood dirty for §4.C's full feature extraction, for the
// inner playout loop of §4.E where only a narrow feature subset is read back; stones
// captured by the move are still marked dirty.
func (pos *Position) PlaceStone(p Point, color Color, fast bool) error {
	if !pos.geom.OnBoard(p) {
		return fmt.Errorf("board: PlaceStone: point %v is off board", p)
	}
	if pos.cell[p] != EmptyStone {
		return fmt.Errorf("board: PlaceStone: point %v is occupied", p)
	}

	pos.capturedThisMove[Black] = pos.capturedThisMove[Black][:0]
	pos.capturedThisMove[White] = pos.capturedThisMove[White][:0]

	pos.hashPrev2 = pos.hashPrev1
	pos.hashPrev1 = pos.hashCur

	pos.cell[p] = StoneOf(color)
	pos.hashCur ^= pos.zt.Stone(color, p)
	pos.posHash ^= pos.zt.Stone(color, p)

	id := pos.newString(color, p)
	pos.pool[id].Size = 1

	pos.removeLibertyFromNeighbors(p, id)

	for _, n := range pos.geom.Neighbors4(p) {
		if !pos.geom.OnBoard(n) {
			continue
		}
		switch pos.cell[n] {
		case EmptyStone:
			pos.pool[id].Libs.Add(n, PointNone)
		default:
			nid := pos.strID[n]
			if nid == NoString {
				continue
			}
			if pos.pool[nid].Color == color {
				dst, src := id, nid
				if src < dst {
					dst, src = src, dst
				}
				id = pos.mergeStrings(dst, src)
			} else {
				pos.pool[id].Nbrs.Add(nid, NoString)
				pos.pool[nid].Nbrs.Add(id, NoString)
			}
		}
	}

	koCandidate := pos.captureZeroLibertyNeighbors(p, color)
	// id may have gained liberties (or, in the single-stone/single-liberty case,
	// have those liberties restored by its own capture) from the capture above; the
	// owning string id itself never changes since removeString only touches enemy
	// strings here.

	if koCandidate.IsReal() && pos.pool[id].Size == 1 && pos.pool[id].NumLiberties() == 1 {
		pos.koPoint = koCandidate
		pos.koMove = pos.moveCount + 1
		pos.hashCur ^= pos.zt.Ko(koCandidate)
	} else {
		pos.koPoint = PointNone
		pos.koMove = -1
	}

	pos.updatePatterns(p, stoneToCell(StoneOf(color)))
	pos.clearFeatures(p)
	if !fast {
		pos.markDirtyAround(p)
	}

	pos.moveHash ^= pos.zt.MoveBit(pos.moveCount, color, p)
	pos.history = append(pos.history, moveRecord{Color: color, Point: p, Hash: pos.hashCur, PosID: pos.posHash, KoPoint: pos.koPoint})
	if pos.seen != nil {
		pos.seen[pos.posHash]++
	}

	pos.prevMove = pos.lastMove
	pos.lastMove = p
	pos.moveCount++
	pos.passCount = 0
	pos.turn = color.Opponent()
	return nil
}

// Pass implements the pass move: no stone is placed, the ko point is cleared and
// the side to move flips.
func (pos *Position) Pass(color Color) {
	pos.hashPrev2 = pos.hashPrev1
	pos.hashPrev1 = pos.hashCur
	pos.hashCur ^= pos.zt.Pass()
	pos.moveHash ^= pos.zt.MoveBit(pos.moveCount, color, PointNone)

	pos.history = append(pos.history, moveRecord{Color: color, Point: PointPass, Hash: pos.hashCur, PosID: pos.posHash, KoPoint: PointNone})
	pos.koPoint = PointNone
	pos.koMove = -1
	pos.prevMove = pos.lastMove
	pos.lastMove = PointPass
	pos.moveCount++
	pos.passCount++
	pos.turn = color.Opponent()
}

// DrainDirty is defined in features.go; PlaceStone/removeString only append to
// pos.dirty, never read it back.
