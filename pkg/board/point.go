package board

import "fmt"

// Point is a single index into the padded board array. Arithmetic neighbors are
// (-Stride, +1, -1, +Stride) for a given Geometry.
type Point int32

const (
	// PointPass is the sentinel for a pass move.
	PointPass Point = -1
	// PointResign is the sentinel for resignation.
	PointResign Point = -2
	// PointNone is the sentinel for "no point" (e.g. no ko, no previous move).
	PointNone Point = -3
)

// IsReal reports whether p addresses an actual board cell (not Pass/Resign/None).
func (p Point) IsReal() bool {
	return p >= 0
}

func (p Point) String() string {
	switch p {
	case PointPass:
		return "pass"
	case PointResign:
		return "resign"
	case PointNone:
		return "none"
	default:
		return fmt.Sprintf("pt%d", int(p))
	}
}

// GTPString formats a point in GTP coordinate notation (e.g. "D4", "pass"), skipping
// the letter "I" as GTP requires.
func (g *Geometry) GTPString(p Point) string {
	switch p {
	case PointPass:
		return "pass"
	case PointResign:
		return "resign"
	case PointNone:
		return "none"
	}
	x, y := g.XY(p)
	col := x - Border
	row := g.Size - (y - Border)
	letter := byte('A' + col)
	if letter >= 'I' {
		letter++
	}
	return fmt.Sprintf("%c%d", letter, row)
}

// ParseGTPPoint parses a GTP coordinate string back into a Point.
func (g *Geometry) ParseGTPPoint(s string) (Point, error) {
	switch s {
	case "pass", "PASS":
		return PointPass, nil
	case "resign", "RESIGN":
		return PointResign, nil
	}
	if len(s) < 2 {
		return PointNone, fmt.Errorf("invalid coordinate: %q", s)
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' || letter == 'I' {
		return PointNone, fmt.Errorf("invalid coordinate: %q", s)
	}
	col := int(letter - 'A')
	if letter > 'I' {
		col--
	}
	var row int
	if _, err := fmt.Sscanf(s[1:], "%d", &row); err != nil {
		return PointNone, fmt.Errorf("invalid coordinate: %q", s)
	}
	if col < 0 || col >= g.Size || row < 1 || row > g.Size {
		return PointNone, fmt.Errorf("coordinate out of range: %q", s)
	}
	y := Border + (g.Size - row)
	x := Border + col
	return g.Point(x, y), nil
}
