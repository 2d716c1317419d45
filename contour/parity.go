package contour

import (
	"math"

	"github.com/gogpu/text3d/mesh"
)

// SetParity fixes the orientation of the contour from its nesting parity
// and computes its outset. Even parity (an outer boundary, or a contour
// nested an even number of times) must be clockwise; odd parity must be
// counter-clockwise. A contour with the wrong orientation is reversed.
func (c *Contour) SetParity(parity int) {
	odd := parity&1 == 1
	if odd == c.clockwise {
		c.reverse()
	}
	c.computeOutset()
}

// computeOutset computes one outset vector per point along the bisector of
// its two edges, at unit distance from both edges.
func (c *Contour) computeOutset() {
	n := len(c.points)
	c.outset = make([]mesh.Point, n)
	for i := 0; i < n; i++ {
		prev := c.points[(i+n-1)%n]
		next := c.points[(i+1)%n]
		c.outset[i] = outsetPoint(prev, c.points[i], next)
	}
}

// outsetPoint returns the offset of b, the corner between edges a-b and b-c,
// that moves both edges outward by one unit. Degenerate corners yield zero.
func outsetPoint(a, b, c mesh.Point) mesh.Point {
	ba := a.Sub(b)
	if ba.IsZero() {
		return mesh.Point{}
	}
	ba = ba.Normalize()
	bc := c.Sub(b)

	// Express bc in the frame of ba.
	tx := bc.X*-ba.X + bc.Y*-ba.Y
	ty := bc.X*ba.Y + bc.Y*-ba.X

	norm := math.Hypot(tx, ty)
	if norm+tx == 0 {
		return mesh.Point{}
	}
	dist := math.Sqrt((norm - tx) / (norm + tx))
	if ty < 0 {
		tx = dist
	} else {
		tx = -dist
	}
	ty = 1

	return mesh.Point{
		X: tx*-ba.X + ty*ba.Y,
		Y: tx*-ba.Y + ty*-ba.X,
	}
}

// Outset returns the outset vectors computed by SetParity, one per point.
// It is nil until SetParity has been called.
func (c *Contour) Outset() []mesh.Point { return c.outset }

// BuildFront computes the front face points, each point moved by d along
// its outset. A zero d reproduces the points.
func (c *Contour) BuildFront(d float64) {
	c.front = c.offsetPoints(d)
}

// BuildBack computes the back face points, each point moved by d along its
// outset.
func (c *Contour) BuildBack(d float64) {
	c.back = c.offsetPoints(d)
}

// Front returns the points built by BuildFront, or the contour points if
// BuildFront has not been called.
func (c *Contour) Front() []mesh.Point {
	if c.front == nil {
		return c.points
	}
	return c.front
}

// Back returns the points built by BuildBack, or the contour points if
// BuildBack has not been called.
func (c *Contour) Back() []mesh.Point {
	if c.back == nil {
		return c.points
	}
	return c.back
}

func (c *Contour) offsetPoints(d float64) []mesh.Point {
	if len(c.outset) != len(c.points) {
		c.computeOutset()
	}
	out := make([]mesh.Point, len(c.points))
	for i, p := range c.points {
		if d == 0 {
			out[i] = p
			continue
		}
		out[i] = p.Add(c.outset[i].Mul(d))
	}
	return out
}
