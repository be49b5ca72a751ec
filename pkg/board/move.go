package board

// Move is a single ply: a color to move and a target point (PointPass/PointResign
// are valid targets).
type Move struct {
	Color Color
	Point Point
}

func (m Move) String() string {
	return m.Color.String() + " " + m.Point.String()
}
