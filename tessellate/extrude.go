package tessellate

import (
	"github.com/gogpu/text3d/contour"
	"github.com/gogpu/text3d/mesh"
)

// Extrude builds the side wall of a contour placed at offset: two triangles
// per edge, spanning z=0 to z=depth. Degenerate contours yield nothing.
//
// For an edge p0-p1 the triangles are {p0@0, p1@0, p0@D} and
// {p1@D, p0@D, p1@0}, which face outward for clockwise contours.
func Extrude(c *contour.Contour, offset mesh.Point, depth float64) []mesh.Triangle {
	if c == nil || c.Degenerate() {
		return nil
	}

	pts := c.Points()
	n := len(pts)
	front := offset
	back := offset.Add(mesh.Point{Z: depth})

	tris := make([]mesh.Triangle, 0, 2*n)
	for i := 0; i < n; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		tris = append(tris,
			mesh.Triangle{A: p0.Add(front), B: p1.Add(front), C: p0.Add(back)},
			mesh.Triangle{A: p1.Add(back), B: p0.Add(back), C: p1.Add(front)},
		)
	}
	return tris
}
