// Package contour flattens glyph outline loops into polylines and
// classifies them by orientation and nesting.
package contour

import (
	"math"

	"github.com/gogpu/text3d/mesh"
	"github.com/gogpu/text3d/text"
)

// DefaultSteps is the default number of segments per curve.
const DefaultSteps = 3

// Contour is a closed flattened polyline of a glyph, in pixel units with y
// up. No two consecutive points are equal and the first point is not
// repeated at the end.
//
// A Contour is immutable after construction except for SetParity, which may
// reverse it and computes its outset.
type Contour struct {
	points []mesh.Point
	outset []mesh.Point
	front  []mesh.Point
	back   []mesh.Point

	minX, minY, maxX, maxY float64
	clockwise              bool
}

// New flattens one outline loop. Each curve is sampled at steps+1 uniform
// parameter values; steps below 1 are treated as 1.
func New(loop text.Loop, steps int) *Contour {
	if steps < 1 {
		steps = 1
	}

	c := &Contour{points: make([]mesh.Point, 0, len(loop)*steps)}
	n := len(loop)
	at := func(i int) text.ControlPoint { return loop[(i+n)%n] }
	pt := func(p text.ControlPoint) mesh.Point { return mesh.Point{X: p.X, Y: p.Y} }

	for i := 0; i < n; i++ {
		cur := at(i)
		prev := at(i - 1)
		next := at(i + 1)

		switch cur.Tag {
		case text.TagOn:
			c.addPoint(pt(cur))

		case text.TagConic:
			from := pt(prev)
			if prev.Tag == text.TagConic {
				from = pt(cur).Add(pt(prev)).Mul(0.5)
				c.addPoint(from)
			}
			to := pt(next)
			if next.Tag == text.TagConic {
				to = pt(cur).Add(pt(next)).Mul(0.5)
			}
			c.addQuadratic(from, pt(cur), to, steps)

		case text.TagCubic:
			// The first control of a pair drives the curve.
			if next.Tag == text.TagCubic {
				c.addCubic(pt(prev), pt(cur), pt(next), pt(at(i+2)), steps)
			}
		}
	}

	c.computeBounds()
	c.clockwise = signedArea(c.points) < 0
	return c
}

// FromPoints builds a contour directly from polyline points, applying the
// same duplicate suppression as New.
func FromPoints(points []mesh.Point) *Contour {
	c := &Contour{points: make([]mesh.Point, 0, len(points))}
	for _, p := range points {
		c.addPoint(p)
	}
	c.computeBounds()
	c.clockwise = signedArea(c.points) < 0
	return c
}

// addPoint appends p unless it equals the last point or the first point.
func (c *Contour) addPoint(p mesh.Point) {
	if n := len(c.points); n > 0 && (p == c.points[n-1] || p == c.points[0]) {
		return
	}
	c.points = append(c.points, p)
}

func (c *Contour) addQuadratic(a, b, d mesh.Point, steps int) {
	for i := 0; i <= steps; i++ {
		c.addPoint(quadraticAt(a, b, d, float64(i)/float64(steps)))
	}
}

func (c *Contour) addCubic(a, b, d, e mesh.Point, steps int) {
	for i := 0; i <= steps; i++ {
		c.addPoint(cubicAt(a, b, d, e, float64(i)/float64(steps)))
	}
}

func (c *Contour) computeBounds() {
	c.minX, c.minY = math.Inf(1), math.Inf(1)
	c.maxX, c.maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range c.points {
		c.minX = math.Min(c.minX, p.X)
		c.minY = math.Min(c.minY, p.Y)
		c.maxX = math.Max(c.maxX, p.X)
		c.maxY = math.Max(c.maxY, p.Y)
	}
}

// signedArea returns the shoelace signed area of a closed polyline.
// It is positive for counter-clockwise loops in y-up space.
func signedArea(points []mesh.Point) float64 {
	n := len(points)
	var sum float64
	for i := 0; i < n; i++ {
		p, q := points[i], points[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Points returns the flattened points. The slice must not be modified.
func (c *Contour) Points() []mesh.Point { return c.points }

// Len returns the number of points.
func (c *Contour) Len() int { return len(c.points) }

// Point returns the i-th point.
func (c *Contour) Point(i int) mesh.Point { return c.points[i] }

// Clockwise reports whether the contour winds clockwise (y up).
// Clockwise contours are outer fill boundaries.
func (c *Contour) Clockwise() bool { return c.clockwise }

// Area returns the shoelace signed area; negative when clockwise.
func (c *Contour) Area() float64 { return signedArea(c.points) }

// Degenerate reports whether the contour has fewer than three points and
// cannot bound an area.
func (c *Contour) Degenerate() bool { return len(c.points) < 3 }

// Bounds returns the bounding box of the points at z=0.
// A contour without points has an empty box.
func (c *Contour) Bounds() mesh.Box {
	if len(c.points) == 0 {
		return mesh.EmptyBox()
	}
	return mesh.Box{
		Min: mesh.Point{X: c.minX, Y: c.minY},
		Max: mesh.Point{X: c.maxX, Y: c.maxY},
	}
}

// IsInside reports whether c lies inside other, using
// BoundingBoxContainment.
func (c *Contour) IsInside(other *Contour) bool {
	return BoundingBoxContainment(c, other)
}

// BoundingBoxContainment reports whether the bounding box of inner lies
// strictly inside the bounding box of outer on all four sides.
//
// This approximates polygon containment: a contour whose box sits inside a
// concave outer contour's box is reported inside even when it lies in a
// notch of the outer shape.
func BoundingBoxContainment(inner, outer *Contour) bool {
	if len(inner.points) == 0 || len(outer.points) == 0 {
		return false
	}
	return inner.minX > outer.minX && inner.maxX < outer.maxX &&
		inner.minY > outer.minY && inner.maxY < outer.maxY
}

// reverse reverses the point order and flips the orientation flag.
func (c *Contour) reverse() {
	for i, j := 0, len(c.points)-1; i < j; i, j = i+1, j-1 {
		c.points[i], c.points[j] = c.points[j], c.points[i]
	}
	c.clockwise = !c.clockwise
}
