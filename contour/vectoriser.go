package contour

import (
	"github.com/gogpu/text3d/internal/logx"
	"github.com/gogpu/text3d/text"
)

// Vectorise flattens every loop of a glyph outline. When normalize is true,
// the orientation of each non-degenerate contour is fixed from its nesting
// parity so that outer boundaries are clockwise whatever the font's winding
// convention (TrueType and CFF fonts wind in opposite directions).
//
// Degenerate contours are kept; consumers skip them.
func Vectorise(loops []text.Loop, steps int, normalize bool) []*Contour {
	contours := make([]*Contour, len(loops))
	for i, loop := range loops {
		contours[i] = New(loop, steps)
	}

	for i, c := range contours {
		if c.Degenerate() {
			logx.Logger().Debug("contour: degenerate loop", "index", i, "points", c.Len())
			continue
		}
		if !normalize {
			c.computeOutset()
			continue
		}
		wasClockwise := c.clockwise
		c.SetParity(Parity(contours, i))
		if c.clockwise != wasClockwise {
			logx.Logger().Debug("contour: orientation reversed", "index", i, "clockwise", c.clockwise)
		}
	}
	return contours
}

// Parity counts how many edges of the other contours a ray cast leftward
// from the leftmost point of contours[i] crosses.
func Parity(contours []*Contour, i int) int {
	c := contours[i]
	if c.Len() == 0 {
		return 0
	}

	leftmost := c.points[0]
	for _, p := range c.points[1:] {
		if p.X < leftmost.X {
			leftmost = p
		}
	}

	parity := 0
	for j, other := range contours {
		if j == i {
			continue
		}
		n := other.Len()
		for k := 0; k < n; k++ {
			p1 := other.points[k]
			p2 := other.points[(k+1)%n]

			switch {
			case p1.Y < leftmost.Y && p2.Y < leftmost.Y,
				p1.Y >= leftmost.Y && p2.Y >= leftmost.Y,
				p1.X > leftmost.X && p2.X > leftmost.X:
				continue
			case p1.X < leftmost.X && p2.X < leftmost.X:
				parity++
			default:
				a := p1.Sub(leftmost)
				b := p2.Sub(leftmost)
				if b.X*a.Y > b.Y*a.X {
					parity++
				}
			}
		}
	}
	return parity
}
