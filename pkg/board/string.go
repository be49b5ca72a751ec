package board

// StringID identifies a string (connected chain of same-color stones) within a
// Position's string pool. Strings are pool-allocated; a freshly merged string keeps
// the smallest id of its inputs.
type StringID int32

// NoString is the "not a string" sentinel, used both as a cell's owning-string
// reference when the cell holds no stone and as the linkedSet terminator for
// neighbor-string sets.
const NoString StringID = -1

// Str is a connected chain of same-color stones: color, size, liberties and
// neighboring enemy strings, plus the origin point that heads the next-in-string
// traversal. The origin is the first stone of the string whose id survived any
// merges; it is not necessarily the string's smallest coordinate.
type Str struct {
	Color  Color
	Size   int
	Origin Point
	Libs   *linkedSet[Point]
	Nbrs   *linkedSet[StringID]
	Exists bool
}

func newStr(color Color, origin Point) *Str {
	return &Str{
		Color:  color,
		Size:   0,
		Origin: origin,
		Libs:   newLinkedSet[Point](PointNone),
		Nbrs:   newLinkedSet[StringID](NoString),
		Exists: true,
	}
}

// NumLiberties returns the string's liberty count.
func (s *Str) NumLiberties() int {
	return s.Libs.Count()
}

func (s *Str) clone() *Str {
	n := &Str{Color: s.Color, Size: s.Size, Origin: s.Origin, Exists: s.Exists}
	n.Libs = s.Libs.clone()
	n.Nbrs = s.Nbrs.clone()
	return n
}
