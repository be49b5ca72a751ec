package board

import (
	"fmt"

	"github.com/kobanium/Ray-sub001/pkg/pattern"
)

// moveRecord is one entry of the move history: color, coordinate and the hash after
// the move, per §3.
type moveRecord struct {
	Color   Color
	Point   Point
	Hash    ZobristHash
	PosID   ZobristHash // positional hash (board without ko bits) after the move
	KoPoint Point       // ko point created by this move, or PointNone
}

// Position aggregates the full mutable Go game state described in §3: board,
// strings, move history, captures, ko tracking, rolling Zobrist hashes and the
// per-move dirty lists the feature extractor consumes.
//
// Position is mutated in place (unlike the teacher's immutable chess Position):
// MCTS descents and playouts fork the root once per task and then apply a whole
// line of moves forward with no need to undo, per §5's "board positions used inside
// workers are stack/arena-allocated and scoped to one descent."
type Position struct {
	geom   *Geometry
	cfg    Config
	zt     *ZobristTable
	deltas []patternDelta

	cell  []Stone
	strID []StringID
	next  []Point
	pool  []*Str
	free  []StringID

	pat   []pattern.State
	feats []Features
	dirty []Point

	turn      Color
	moveCount int

	koPoint Point
	koMove  int

	capturesBy [NumColors]int

	hashCur, hashPrev1, hashPrev2 ZobristHash
	posHash                      ZobristHash
	moveHash                     ZobristHash
	passCount                    int

	capturedThisMove [NumColors][]Point

	history []moveRecord
	seen    map[ZobristHash]int // positional-hash occurrence counts, for superko

	lastMove, prevMove Point
}

// NewPosition creates an empty board (the initialize(position) operation of §4.A).
func NewPosition(cfg Config, zt *ZobristTable) *Position {
	g := NewGeometry(cfg)

	pos := &Position{
		geom:    g,
		cfg:     cfg,
		zt:      zt,
		deltas:  buildPatternDeltas(g),
		cell:    make([]Stone, g.Len),
		strID:   make([]StringID, g.Len),
		next:    make([]Point, g.Len),
		pool:    make([]*Str, 0, g.MaxStrings()),
		pat:     make([]pattern.State, g.Len),
		feats:   make([]Features, g.Len),
		turn:    Black,
		koPoint: PointNone,
		koMove:  -1,
		lastMove: PointNone,
		prevMove: PointNone,
	}

	for p := 0; p < g.Len; p++ {
		if g.OnBoard(Point(p)) {
			pos.cell[p] = EmptyStone
		} else {
			pos.cell[p] = OffBoardStone
		}
		pos.strID[p] = NoString
		pos.next[p] = PointNone
	}
	if cfg.Superko {
		pos.seen = map[ZobristHash]int{}
	}
	pos.initPatterns()
	return pos
}

// Geometry returns the board geometry.
func (pos *Position) Geometry() *Geometry {
	return pos.geom
}

// Config returns the board configuration.
func (pos *Position) Config() Config {
	return pos.cfg
}

// Turn returns the color to move.
func (pos *Position) Turn() Color {
	return pos.turn
}

// MoveCount returns the number of moves (including passes) played so far.
func (pos *Position) MoveCount() int {
	return pos.moveCount
}

// Stone returns the content of point p.
func (pos *Position) Stone(p Point) Stone {
	if p < 0 || int(p) >= len(pos.cell) {
		return OffBoardStone
	}
	return pos.cell[p]
}

// KoPoint returns the current ko point, or PointNone.
func (pos *Position) KoPoint() Point {
	return pos.koPoint
}

// KoMove returns the move index at which the current ko point was created.
func (pos *Position) KoMove() int {
	return pos.koMove
}

// LastMove and PreviousMove return the last two played points (PointNone if absent).
func (pos *Position) LastMove() Point     { return pos.lastMove }
func (pos *Position) PreviousMove() Point { return pos.prevMove }

// Captures returns the number of stones captured BY the given color so far.
func (pos *Position) Captures(c Color) int {
	return pos.capturesBy[c]
}

// Hash returns the current (path-dependent ko-sensitive) Zobrist hash.
func (pos *Position) Hash() ZobristHash {
	return pos.hashCur
}

// PositionalHash returns the current board's hash excluding ko bits, used for
// positional-superko detection.
func (pos *Position) PositionalHash() ZobristHash {
	return pos.posHash
}

// MoveHash returns the path-dependent move-sequence hash, used as the
// transposition-store key.
func (pos *Position) MoveHash() ZobristHash {
	return pos.moveHash
}

// PassCount returns the number of consecutive trailing passes.
func (pos *Position) PassCount() int {
	return pos.passCount
}

// CapturedThisMove returns the points captured BY color during the most recent
// PlaceStone call, for the throw-in/ko feature checks of §4.C that look at what a
// move just took.
func (pos *Position) CapturedThisMove(c Color) []Point {
	return pos.capturedThisMove[c]
}

// MoveNAgo returns the move played n plies before the current position (n=1 is the
// last move played, n=2 the one before that, and so on), and whether that far back
// exists in history. Used by the ko-recapture/ko-connection feature checks, which
// look a fixed number of plies into the past.
func (pos *Position) MoveNAgo(n int) (Move, bool) {
	idx := len(pos.history) - n
	if idx < 0 || idx >= len(pos.history) {
		return Move{}, false
	}
	r := pos.history[idx]
	return Move{Color: r.Color, Point: r.Point}, true
}

// KoPointCreatedNAgo returns the ko point created by the move played n plies ago (or
// PointNone if that move created none), and whether that far back exists in
// history. Unlike KoPoint/KoMove (which reflect only the live, single-ply
// retake restriction and are cleared the very next move), this looks at the
// recorded history, so callers can ask about a ko that is no longer live but whose
// point just became playable again -- the ko-connection feature of §4.C.
func (pos *Position) KoPointCreatedNAgo(n int) (Point, bool) {
	idx := len(pos.history) - n
	if idx < 0 || idx >= len(pos.history) {
		return PointNone, false
	}
	return pos.history[idx].KoPoint, true
}

// String returns the string record for the given id, or nil if absent.
func (pos *Position) String(id StringID) *Str {
	if id < 0 || int(id) >= len(pos.pool) {
		return nil
	}
	return pos.pool[id]
}

// StringAt returns the string owning point p, or nil if p holds no stone.
func (pos *Position) StringAt(p Point) *Str {
	id := pos.strID[p]
	if id == NoString {
		return nil
	}
	return pos.pool[id]
}

// StringIDAt returns the id of the string owning point p, or NoString if p holds no
// stone.
func (pos *Position) StringIDAt(p Point) StringID {
	return pos.strID[p]
}

// StringMembers returns every point in the string with the given id by walking the
// next-chain from the string's origin. The chain is in insertion order (each added
// stone is spliced in right after the origin, and a merged string's chain is
// appended at the tail), not ascending coordinate order.
func (pos *Position) StringMembers(id StringID) []Point {
	s := pos.String(id)
	if s == nil {
		return nil
	}
	var out []Point
	for p := s.Origin; p != PointNone; p = pos.next[p] {
		out = append(out, p)
	}
	return out
}

func (pos *Position) allocString(color Color, origin Point) StringID {
	if n := len(pos.free); n > 0 {
		id := pos.free[n-1]
		pos.free = pos.free[:n-1]
		pos.pool[id] = newStr(color, origin)
		return id
	}
	id := StringID(len(pos.pool))
	pos.pool = append(pos.pool, newStr(color, origin))
	return id
}

func (pos *Position) freeString(id StringID) {
	pos.pool[id].Exists = false
	pos.free = append(pos.free, id)
}

// Fork deep-copies the position for use by an independent MCTS descent or playout.
func (pos *Position) Fork() *Position {
	n := &Position{
		geom: pos.geom, cfg: pos.cfg, zt: pos.zt, deltas: pos.deltas,
		cell:  append([]Stone(nil), pos.cell...),
		strID: append([]StringID(nil), pos.strID...),
		next:  append([]Point(nil), pos.next...),
		pat:   append([]pattern.State(nil), pos.pat...),
		feats: append([]Features(nil), pos.feats...),

		turn: pos.turn, moveCount: pos.moveCount,
		koPoint: pos.koPoint, koMove: pos.koMove,
		capturesBy: pos.capturesBy,

		hashCur: pos.hashCur, hashPrev1: pos.hashPrev1, hashPrev2: pos.hashPrev2,
		posHash: pos.posHash, moveHash: pos.moveHash, passCount: pos.passCount,

		lastMove: pos.lastMove, prevMove: pos.prevMove,
	}
	n.pool = make([]*Str, len(pos.pool))
	for i, s := range pos.pool {
		if s != nil {
			n.pool[i] = s.clone()
		}
	}
	n.free = append([]StringID(nil), pos.free...)
	if pos.seen != nil {
		n.seen = make(map[ZobristHash]int, len(pos.seen))
		for k, v := range pos.seen {
			n.seen[k] = v
		}
	}
	// history and dirty/capturedThisMove are transient bookkeeping not needed by a
	// forked descent/playout; left empty.
	return n
}

// DebugString is a short human-readable summary for logging (named to avoid
// clashing with the String(id StringID) string-table accessor above).
func (pos *Position) DebugString() string {
	return fmt.Sprintf("Position{turn=%v, move=%v, hash=0x%x}", pos.turn, pos.moveCount, pos.hashCur)
}
