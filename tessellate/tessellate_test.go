package tessellate

import (
	"math"
	"testing"

	"github.com/gogpu/text3d/contour"
	"github.com/gogpu/text3d/mesh"
	"github.com/gogpu/text3d/text"
)

func square(x0, y0, x1, y1 float64, cw bool) text.Loop {
	on := func(x, y float64) text.ControlPoint { return text.ControlPoint{X: x, Y: y, Tag: text.TagOn} }
	if cw {
		return text.Loop{on(x0, y0), on(x0, y1), on(x1, y1), on(x1, y0)}
	}
	return text.Loop{on(x0, y0), on(x1, y0), on(x1, y1), on(x0, y1)}
}

// ring returns the contours of a square "O": 10x10 with a 4x4 hole.
func ring(t *testing.T) []*contour.Contour {
	t.Helper()
	return contour.Vectorise([]text.Loop{
		square(0, 0, 10, 10, true),
		square(3, 3, 7, 7, false),
	}, contour.DefaultSteps, true)
}

func area(tr mesh.Triangle) float64 {
	return tr.B.Sub(tr.A).Cross(tr.C.Sub(tr.A)).Length() / 2
}

func centroid(tr mesh.Triangle) mesh.Point {
	return tr.A.Add(tr.B).Add(tr.C).Mul(1.0 / 3)
}

func TestGlyph_RingWithHole(t *testing.T) {
	set := Glyph(ring(t), mesh.Point{}, DefaultOptions())

	front := set[mesh.Front]
	if len(front) == 0 {
		t.Fatal("no front triangles")
	}
	if len(set[mesh.Back]) != len(front) {
		t.Errorf("back has %d triangles, front %d", len(set[mesh.Back]), len(front))
	}

	var total float64
	for i, tr := range front {
		total += area(tr)
		c := centroid(tr)
		if c.X > 3 && c.X < 7 && c.Y > 3 && c.Y < 7 {
			t.Errorf("front triangle %d centroid %v lies in the hole", i, c)
		}
		if tr.A.Z != 0 || tr.B.Z != 0 || tr.C.Z != 0 {
			t.Errorf("front triangle %d not at z=0: %+v", i, tr)
		}
	}
	if math.Abs(total-84) > 1e-9 {
		t.Errorf("front area = %v, want 84", total)
	}
}

func TestGlyph_BackReversesFront(t *testing.T) {
	opts := DefaultOptions()
	opts.Depth = 4
	set := Glyph(ring(t), mesh.Point{X: 100, Y: -5}, opts)

	for i, f := range set[mesh.Front] {
		b := set[mesh.Back][i]
		want := mesh.Triangle{
			A: f.C.Add(mesh.Point{Z: 4}),
			B: f.B.Add(mesh.Point{Z: 4}),
			C: f.A.Add(mesh.Point{Z: 4}),
		}
		if b != want {
			t.Errorf("back %d = %+v, want %+v", i, b, want)
		}
		if f.Normal().Add(b.Normal()).Length() > 1e-12 {
			t.Errorf("triangle %d: front and back normals not opposite", i)
		}
		if f.A.X < 100 {
			t.Errorf("front triangle %d not offset: %+v", i, f)
		}
	}
}

func TestGlyph_FaceGating(t *testing.T) {
	tests := []struct {
		name              string
		front, back, side bool
	}{
		{"front only", true, false, false},
		{"back only", false, true, false},
		{"side only", false, false, true},
		{"none", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Glyph(ring(t), mesh.Point{}, Options{Depth: 10, Front: tt.front, Back: tt.back, Side: tt.side})
			if (len(set[mesh.Front]) > 0) != tt.front {
				t.Errorf("front triangles = %d", len(set[mesh.Front]))
			}
			if (len(set[mesh.Back]) > 0) != tt.back {
				t.Errorf("back triangles = %d", len(set[mesh.Back]))
			}
			if (len(set[mesh.Side]) > 0) != tt.side {
				t.Errorf("side triangles = %d", len(set[mesh.Side]))
			}
		})
	}
}

func TestGlyph_DegenerateSkipped(t *testing.T) {
	on := func(x, y float64) text.ControlPoint { return text.ControlPoint{X: x, Y: y, Tag: text.TagOn} }
	contours := contour.Vectorise([]text.Loop{
		{on(0, 0), on(5, 5)},
		{on(0, 0), on(5, 0), on(10, 0)}, // collinear, zero area
	}, 3, true)

	set := Glyph(contours, mesh.Point{}, Options{Depth: 10, Front: true, Back: true})
	if set.Total() != 0 {
		t.Errorf("degenerate contours produced %d triangles", set.Total())
	}
}

func TestGlyph_TriangulationFailureSkipsShape(t *testing.T) {
	orig := triangulator
	t.Cleanup(func() { triangulator = orig })

	calls := 0
	triangulator = func(shape contour.Shape) ([]mesh.Triangle, error) {
		calls++
		if calls == 1 {
			return nil, ErrTriangulation
		}
		return orig(shape)
	}

	contours := contour.Vectorise([]text.Loop{
		square(0, 0, 10, 10, true),
		square(20, 0, 30, 10, true),
	}, 3, true)
	set := Glyph(contours, mesh.Point{}, DefaultOptions())

	if calls != 2 {
		t.Fatalf("triangulator called %d times, want 2", calls)
	}
	for _, tr := range set[mesh.Front] {
		if tr.A.X < 20 {
			t.Errorf("triangle from the failed shape was emitted: %+v", tr)
		}
	}
	if len(set[mesh.Front]) == 0 {
		t.Error("second shape should still be triangulated")
	}
	if len(set[mesh.Side]) != 16 {
		t.Errorf("side triangles = %d, want 16 (walls of both squares)", len(set[mesh.Side]))
	}
}

func TestTriangulate_DegenerateOuter(t *testing.T) {
	tris, err := Triangulate(contour.Shape{})
	if tris != nil || err != nil {
		t.Errorf("Triangulate(empty) = %v, %v", tris, err)
	}
}

func TestExtrude(t *testing.T) {
	c := contour.Vectorise([]text.Loop{square(0, 0, 10, 10, true)}, 3, true)[0]
	tris := Extrude(c, mesh.Point{X: 1}, 5)

	if len(tris) != 8 {
		t.Fatalf("got %d triangles, want 8", len(tris))
	}

	// First edge is (0,0)->(0,10), shifted by x+1.
	p0 := mesh.Point{X: 1, Y: 0}
	p1 := mesh.Point{X: 1, Y: 10}
	d := mesh.Point{Z: 5}
	if want := (mesh.Triangle{A: p0, B: p1, C: p0.Add(d)}); tris[0] != want {
		t.Errorf("tris[0] = %+v, want %+v", tris[0], want)
	}
	if want := (mesh.Triangle{A: p1.Add(d), B: p0.Add(d), C: p1}); tris[1] != want {
		t.Errorf("tris[1] = %+v, want %+v", tris[1], want)
	}

	center := mesh.Point{X: 6, Y: 5, Z: 2.5}
	for i, tr := range tris {
		out := centroid(tr).Sub(center)
		if tr.Normal().Dot(out) <= 0 {
			t.Errorf("side triangle %d faces inward", i)
		}
	}
}

func TestExtrude_Degenerate(t *testing.T) {
	c := contour.FromPoints([]mesh.Point{{X: 0}, {X: 1}})
	if tris := Extrude(c, mesh.Point{}, 10); tris != nil {
		t.Errorf("Extrude(degenerate) = %v, want nil", tris)
	}
	if tris := Extrude(nil, mesh.Point{}, 10); tris != nil {
		t.Errorf("Extrude(nil) = %v, want nil", tris)
	}
}
