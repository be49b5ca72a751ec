// Package board contains the Go board representation and move-application engine:
// mutable game state, legality checks, string (chain) bookkeeping, Zobrist hashing
// and Chinese-area scoring.
package board

import "fmt"

// Board-geometry constants, carried over from the original engine's Constant.hpp.
// The padding width (Border) is fixed; pattern-update masks in package pattern
// assume it.
const (
	// MaxSize is the largest supported board side. Only 9, 13 and 19 are exercised
	// by tests and tuned parameters, but the engine is not otherwise hardcoded to 19.
	MaxSize = 19
	// Border is the width of the off-board padding surrounding the playable grid.
	// Must not be changed: the pattern neighborhood masks assume radius-5 rings
	// never need bounds checks.
	Border = 5
	// MaxBoardSize is the padded side for the largest supported board.
	MaxBoardSize = MaxSize + 2*Border
	// MaxLen is the padded-array length for the largest supported board.
	MaxLen = MaxBoardSize * MaxBoardSize
)

// maxStringFraction bounds the number of strings that may exist simultaneously,
// expressed as PURE_BOARD_MAX*4/5 in the original source.
const maxStringFraction = 4

// Config is the immutable configuration shared by every board-engine component for
// one game. It is constructed once by configure(...) and passed by value into every
// constructor -- no package-level mutable state.
type Config struct {
	// Size is the playable board side (S). Default 19.
	Size int
	// Komi is White's (the second player's) compensation; CalculateScore
	// subtracts it from Black's margin.
	Komi float64
	// Superko enables the optional positional-superko legality check.
	Superko bool
}

// DefaultConfig is the standard 19x19, komi 7.5, no-superko configuration.
var DefaultConfig = Config{Size: 19, Komi: 7.5}

// NewConfig validates and returns a board configuration.
func NewConfig(size int, komi float64, superko bool) (Config, error) {
	if size < 1 || size > MaxSize {
		return Config{}, fmt.Errorf("invalid board size: %v", size)
	}
	return Config{Size: size, Komi: komi, Superko: superko}, nil
}

// Geometry precomputes the padded-board layout for a given Config.
type Geometry struct {
	Size   int
	Stride int // padded side: Size + 2*Border
	Len    int // Stride * Stride

	maxString int
}

// NewGeometry derives board geometry from a Config.
func NewGeometry(cfg Config) *Geometry {
	stride := cfg.Size + 2*Border
	return &Geometry{
		Size:      cfg.Size,
		Stride:    stride,
		Len:       stride * stride,
		maxString: cfg.Size * cfg.Size * maxStringFraction / 5,
	}
}

// MaxStrings returns the pool capacity for simultaneously existing strings.
func (g *Geometry) MaxStrings() int {
	if g.maxString < 1 {
		return 1
	}
	return g.maxString
}

// OnBoard reports whether p addresses a playable (non-border) intersection.
func (g *Geometry) OnBoard(p Point) bool {
	if p < 0 || int(p) >= g.Len {
		return false
	}
	x, y := g.XY(p)
	return x >= Border && x < Border+g.Size && y >= Border && y < Border+g.Size
}

// XY decomposes a padded-board point into column/row.
func (g *Geometry) XY(p Point) (int, int) {
	return int(p) % g.Stride, int(p) / g.Stride
}

// Point composes a padded-board point from column/row.
func (g *Geometry) Point(x, y int) Point {
	return Point(y*g.Stride + x)
}

// Up, Down, Left and Right are the four orthogonal neighbor deltas.
func (g *Geometry) Up() Point    { return Point(-g.Stride) }
func (g *Geometry) Down() Point  { return Point(g.Stride) }
func (g *Geometry) Left() Point  { return Point(-1) }
func (g *Geometry) Right() Point { return Point(1) }

// Neighbors4 returns the four orthogonal neighbors of p, in N/E/S/W order.
func (g *Geometry) Neighbors4(p Point) [4]Point {
	return [4]Point{p + g.Up(), p + g.Right(), p + g.Down(), p + g.Left()}
}

// Diagonals4 returns the four diagonal neighbors of p, in NE/SE/SW/NW order.
func (g *Geometry) Diagonals4(p Point) [4]Point {
	return [4]Point{
		p + g.Up() + g.Right(),
		p + g.Down() + g.Right(),
		p + g.Down() + g.Left(),
		p + g.Up() + g.Left(),
	}
}

// Points iterates every on-board point in ascending order.
func (g *Geometry) Points() []Point {
	pts := make([]Point, 0, g.Size*g.Size)
	for y := Border; y < Border+g.Size; y++ {
		for x := Border; x < Border+g.Size; x++ {
			pts = append(pts, g.Point(x, y))
		}
	}
	return pts
}
