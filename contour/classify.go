package contour

// Shape is an outer boundary with the holes cut out of it.
type Shape struct {
	Outer *Contour
	Holes []*Contour
}

// Classify groups the contours of a glyph into shapes. Every clockwise
// contour is an outer boundary; every counter-clockwise contour inside it
// (by IsInside) is one of its holes. A hole nested in several outer
// contours is attached to each of them. Degenerate and zero-area contours
// take no part.
func Classify(contours []*Contour) []Shape {
	var shapes []Shape
	for i, outer := range contours {
		if !fillable(outer) || !outer.Clockwise() {
			continue
		}
		s := Shape{Outer: outer}
		for j, h := range contours {
			if j == i || !fillable(h) || h.Clockwise() {
				continue
			}
			if h.IsInside(outer) {
				s.Holes = append(s.Holes, h)
			}
		}
		shapes = append(shapes, s)
	}
	return shapes
}

func fillable(c *Contour) bool {
	return !c.Degenerate() && c.Area() != 0
}
