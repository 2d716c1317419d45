package contour

import "github.com/gogpu/text3d/mesh"

// quadraticAt evaluates the quadratic Bezier a-b-c at t with De Casteljau's
// algorithm. t=0 and t=1 return a and c exactly.
func quadraticAt(a, b, c mesh.Point, t float64) mesh.Point {
	ab := a.Lerp(b, t)
	bc := b.Lerp(c, t)
	return ab.Lerp(bc, t)
}

// cubicAt evaluates the cubic Bezier a-b-c-d at t with De Casteljau's
// algorithm. t=0 and t=1 return a and d exactly.
func cubicAt(a, b, c, d mesh.Point, t float64) mesh.Point {
	ab := a.Lerp(b, t)
	bc := b.Lerp(c, t)
	cd := c.Lerp(d, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	return abc.Lerp(bcd, t)
}
