// Package tessellate turns classified glyph contours into front, back and
// side triangles of an extruded solid.
package tessellate

import (
	"errors"
	"fmt"

	"github.com/ByteArena/poly2tri-go"

	"github.com/gogpu/text3d/contour"
	"github.com/gogpu/text3d/internal/logx"
	"github.com/gogpu/text3d/mesh"
)

// ErrTriangulation is returned when the triangulator rejects a shape, for
// example because of self-intersecting or repeated points.
var ErrTriangulation = errors.New("tessellate: triangulation failed")

// Options selects the generated faces and the extrusion depth.
type Options struct {
	// Depth is the distance between the front face (z=0) and the back face.
	Depth float64

	Front bool
	Back  bool
	Side  bool
}

// DefaultOptions returns all faces enabled at depth 10.
func DefaultOptions() Options {
	return Options{Depth: 10, Front: true, Back: true, Side: true}
}

// triangulator triangulates one outer contour with its holes and returns
// triangles in the triangulator's corner order at z=0.
var triangulator = triangulatePoly2Tri

// Glyph builds the triangles of one glyph whose contours are placed at
// offset. Shapes the triangulator rejects are logged and skipped; their
// side walls are still generated.
func Glyph(contours []*contour.Contour, offset mesh.Point, opts Options) mesh.TriangleSet {
	var set mesh.TriangleSet

	if opts.Front || opts.Back {
		for _, shape := range contour.Classify(contours) {
			tris, err := Triangulate(shape)
			if err != nil {
				logx.Logger().Warn("tessellate: shape skipped",
					"points", shape.Outer.Len(), "holes", len(shape.Holes), "err", err)
				continue
			}
			for _, t := range tris {
				t = t.Translate(offset)
				if opts.Front {
					set.Add(mesh.Front, t)
				}
				if opts.Back {
					set.Add(mesh.Back, t.Translate(mesh.Point{Z: opts.Depth}).Flipped())
				}
			}
		}
	}

	if opts.Side {
		for _, c := range contours {
			set.Add(mesh.Side, Extrude(c, offset, opts.Depth)...)
		}
	}
	return set
}

// Triangulate fills a shape. Triangles are at z=0, in the triangulator's
// corner order.
func Triangulate(shape contour.Shape) ([]mesh.Triangle, error) {
	if shape.Outer == nil || shape.Outer.Degenerate() {
		return nil, nil
	}
	return triangulator(shape)
}

// triangulatePoly2Tri runs a constrained Delaunay triangulation with
// poly2tri. poly2tri panics on degenerate input; the panic is returned as
// ErrTriangulation.
func triangulatePoly2Tri(shape contour.Shape) (tris []mesh.Triangle, err error) {
	defer func() {
		if r := recover(); r != nil {
			tris = nil
			err = fmt.Errorf("%w: %v", ErrTriangulation, r)
		}
	}()

	// poly2tri links its points into the sweep; every call needs fresh ones.
	sweep := poly2tri.NewSweepContext(toPoly2Tri(shape.Outer), false)
	for _, h := range shape.Holes {
		if h.Degenerate() {
			continue
		}
		sweep.AddHole(toPoly2Tri(h))
	}
	sweep.Triangulate()

	out := sweep.GetTriangles()
	tris = make([]mesh.Triangle, 0, len(out))
	for _, tr := range out {
		tris = append(tris, mesh.Triangle{
			A: mesh.Point{X: tr.Points[0].X, Y: tr.Points[0].Y},
			B: mesh.Point{X: tr.Points[1].X, Y: tr.Points[1].Y},
			C: mesh.Point{X: tr.Points[2].X, Y: tr.Points[2].Y},
		})
	}
	return tris, nil
}

func toPoly2Tri(c *contour.Contour) []*poly2tri.Point {
	pts := make([]*poly2tri.Point, c.Len())
	for i, p := range c.Points() {
		pts[i] = poly2tri.NewPoint(p.X, p.Y)
	}
	return pts
}
