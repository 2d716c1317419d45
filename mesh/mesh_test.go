package mesh

import (
	"math"
	"testing"
)

func TestPoint_Algebra(t *testing.T) {
	a := Pt(1, 2, 3)
	b := Pt(4, 5, 6)

	if got := a.Add(b); got != Pt(5, 7, 9) {
		t.Errorf("Add = %v, want (5,7,9)", got)
	}
	if got := b.Sub(a); got != Pt(3, 3, 3) {
		t.Errorf("Sub = %v, want (3,3,3)", got)
	}
	if got := a.Mul(2); got != Pt(2, 4, 6) {
		t.Errorf("Mul = %v, want (2,4,6)", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := Pt(1, 0, 0).Cross(Pt(0, 1, 0)); got != Pt(0, 0, 1) {
		t.Errorf("Cross = %v, want (0,0,1)", got)
	}
}

func TestPoint_Normalize(t *testing.T) {
	if got := Pt(0, 3, 4).Normalize(); got != Pt(0, 0.6, 0.8) {
		t.Errorf("Normalize = %v, want (0,0.6,0.8)", got)
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("Normalize(zero) = %v, want zero unchanged", got)
	}
}

func TestPoint_LerpEndpointsExact(t *testing.T) {
	p := Pt(0.1, 0.7, -3.3)
	q := Pt(12.345, -9.87, 1e-3)
	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
}

func TestFace_String(t *testing.T) {
	tests := []struct {
		f    Face
		want string
	}{
		{Front, "Front"},
		{Back, "Back"},
		{Side, "Side"},
		{Face(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Face(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestTriangle_Normal(t *testing.T) {
	// Counter-clockwise in the XY plane faces -Z with the (B-C)x(A-C) rule.
	tri := Triangle{A: Pt(0, 0, 0), B: Pt(1, 0, 0), C: Pt(0, 1, 0)}
	if got := tri.Normal(); got != Pt(0, 0, -1) {
		t.Errorf("Normal = %v, want (0,0,-1)", got)
	}
	if got := tri.Flipped().Normal(); got != Pt(0, 0, 1) {
		t.Errorf("Flipped().Normal = %v, want (0,0,1)", got)
	}

	degenerate := Triangle{A: Pt(0, 0, 0), B: Pt(1, 0, 0), C: Pt(2, 0, 0)}
	if got := degenerate.Normal(); !got.IsZero() {
		t.Errorf("degenerate Normal = %v, want zero", got)
	}
}

func TestBox_EmptyAndExtend(t *testing.T) {
	b := EmptyBox()
	if !b.IsEmpty() {
		t.Fatal("EmptyBox should be empty")
	}
	b = b.Extend(Pt(1, 2, 3))
	if b.IsEmpty() || b.Min != Pt(1, 2, 3) || b.Max != Pt(1, 2, 3) {
		t.Errorf("Extend once = %+v", b)
	}
	b = b.Union(EmptyBox())
	if b.Min != Pt(1, 2, 3) {
		t.Errorf("Union with empty changed box: %+v", b)
	}
	if got := (EmptyBox()).Size(); got != (Point{}) {
		t.Errorf("empty Size = %v, want zero", got)
	}
}

func TestAlignmentOffset(t *testing.T) {
	box := Box{Min: Pt(0, 0, 0), Max: Pt(10, 4, 0)}

	tests := []struct {
		name string
		h    HAlign
		v    VAlign
		want Point
	}{
		{"center bottom", AlignCenter, AlignBottom, Pt(-5, 0, 0)},
		{"left top", AlignLeft, AlignTop, Pt(0, -4, 0)},
		{"right center", AlignRight, AlignMiddle, Pt(-10, -2, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlignmentOffset(box, tt.h, tt.v); got != tt.want {
				t.Errorf("AlignmentOffset = %v, want %v", got, tt.want)
			}
		})
	}

	if got := AlignmentOffset(EmptyBox(), AlignRight, AlignTop); got != (Point{}) {
		t.Errorf("AlignmentOffset(empty) = %v, want zero", got)
	}
}

func TestAlign_CenterBottom(t *testing.T) {
	var set TriangleSet
	set.Add(Front, Triangle{A: Pt(0, 0, 0), B: Pt(10, 0, 0), C: Pt(10, 4, 0)})
	set.Add(Side, Triangle{A: Pt(0, 0, 0), B: Pt(0, 4, 0), C: Pt(0, 0, 10)})

	off := Align(&set, AlignCenter, AlignBottom)
	if off != Pt(-5, 0, 0) {
		t.Fatalf("Align offset = %v, want (-5,0,0)", off)
	}

	b := set.Bounds()
	if b.Min.X != -5 || b.Max.X != 5 || b.Min.Y != 0 || b.Max.Y != 4 {
		t.Errorf("aligned bounds = %+v, want x[-5,5] y[0,4]", b)
	}
}

func TestAlign_UnmarshalText(t *testing.T) {
	var h HAlign
	if err := h.UnmarshalText([]byte("Right")); err != nil || h != AlignRight {
		t.Errorf("HAlign.UnmarshalText(Right) = %v, %v", h, err)
	}
	if err := h.UnmarshalText([]byte("diagonal")); err == nil {
		t.Error("HAlign.UnmarshalText(diagonal) should fail")
	}

	var v VAlign
	if err := v.UnmarshalText([]byte("bottom")); err != nil || v != AlignBottom {
		t.Errorf("VAlign.UnmarshalText(bottom) = %v, %v", v, err)
	}
	b, _ := AlignMiddle.MarshalText()
	if string(b) != "center" {
		t.Errorf("AlignMiddle.MarshalText = %q, want center", b)
	}
}

func TestTransform_Identity(t *testing.T) {
	tr := Identity()
	if !tr.IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	p := Pt(1.25, -3.5, 7)
	if got := tr.Apply(p); got != p {
		t.Errorf("Identity.Apply = %v, want %v", got, p)
	}
}

func TestTransform_ScaleRotateTranslate(t *testing.T) {
	tr := NewTransform(Pt(0, 0, 90), Pt(10, 0, 0), Pt(2, 2, 2))
	got := tr.Apply(Pt(1, 0, 0))
	want := Pt(10, 2, 0)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Z-want.Z) > 1e-12 {
		t.Errorf("Apply = %v, want %v", got, want)
	}

	m := tr.Matrix()
	v := m.Mul4x1([4]float64{1, 0, 0, 1})
	if math.Abs(v[0]-want.X) > 1e-12 || math.Abs(v[1]-want.Y) > 1e-12 {
		t.Errorf("Matrix * p = %v, want %v", v, want)
	}
}

// quad returns two triangles sharing an edge, all facing the same way.
func quad(x float64) []Triangle {
	return []Triangle{
		{A: Pt(x, 0, 0), B: Pt(x+1, 0, 0), C: Pt(x+1, 1, 0)},
		{A: Pt(x, 0, 0), B: Pt(x+1, 1, 0), C: Pt(x, 1, 0)},
	}
}

func TestWeld_WithinWindowCollapses(t *testing.T) {
	ch := Weld(quad(0), WindowWeld{Size: 64})

	if ch.VertexCount() != 4 {
		t.Errorf("VertexCount = %d, want 4", ch.VertexCount())
	}
	if ch.TriangleCount() != 2 {
		t.Errorf("TriangleCount = %d, want 2", ch.TriangleCount())
	}
	// Shared corners reuse indices.
	if ch.Indices[3] != ch.Indices[0] || ch.Indices[4] != ch.Indices[2] {
		t.Errorf("shared corners not welded: %v", ch.Indices)
	}
}

func TestWeld_BeyondWindowStaysSeparate(t *testing.T) {
	first := Triangle{A: Pt(0, 0, 0), B: Pt(1, 0, 0), C: Pt(1, 1, 0)}
	tris := []Triangle{first}
	// Three distinct triangles push the first one's vertices out of a
	// window of size 3.
	for i := 1; i <= 3; i++ {
		x := float64(10 * i)
		tris = append(tris, Triangle{A: Pt(x, 0, 0), B: Pt(x+1, 0, 0), C: Pt(x+1, 1, 0)})
	}
	tris = append(tris, first)

	window := Weld(tris, WindowWeld{Size: 3})
	if window.VertexCount() != 15 {
		t.Errorf("window VertexCount = %d, want 15", window.VertexCount())
	}
	if window.Indices[12] == window.Indices[0] {
		t.Error("far-apart duplicate was welded despite the window")
	}

	hash := Weld(tris, HashWeld{})
	if hash.VertexCount() != 12 {
		t.Errorf("hash VertexCount = %d, want 12", hash.VertexCount())
	}
	if hash.Indices[12] != hash.Indices[0] {
		t.Error("hash policy should weld far-apart duplicates")
	}
}

func TestWeld_HashSignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	pos := Vertex{Position: Pt(1, 0, 0), Normal: Pt(0, 0, 1)}
	neg := Vertex{Position: Pt(1, negZero, 0), Normal: Pt(negZero, negZero, 1)}
	if pos != neg {
		t.Fatal("vertices should compare equal")
	}
	if keyOf(pos) != keyOf(neg) {
		t.Error("equal vertices hash to different keys")
	}

	idx := HashWeld{}.newIndex()
	idx.added(pos, 0)
	if i, ok := idx.find(neg, nil); !ok || i != 0 {
		t.Errorf("find = %d, %v; want 0, true", i, ok)
	}
}

func TestWeld_DifferentNormalsStaySeparate(t *testing.T) {
	up := Triangle{A: Pt(0, 0, 0), B: Pt(1, 0, 0), C: Pt(0, 1, 0)}
	ch := Weld([]Triangle{up, up.Flipped()}, HashWeld{})
	if ch.VertexCount() != 6 {
		t.Errorf("VertexCount = %d, want 6", ch.VertexCount())
	}
}

func TestAssemble(t *testing.T) {
	var set TriangleSet
	set.Add(Front, quad(0)...)
	for _, tri := range quad(0) {
		set.Add(Back, Triangle{
			A: tri.A.Add(Pt(0, 0, 10)),
			B: tri.B.Add(Pt(0, 0, 10)),
			C: tri.C.Add(Pt(0, 0, 10)),
		}.Flipped())
	}

	opts := DefaultAssembleOptions()
	opts.HAlign = AlignLeft
	opts.VAlign = AlignBottom
	res := Assemble(&set, opts)

	if res.Channel(Front).TriangleCount() != 2 || res.Channel(Back).TriangleCount() != 2 {
		t.Errorf("triangle counts = %d/%d, want 2/2",
			res.Channel(Front).TriangleCount(), res.Channel(Back).TriangleCount())
	}
	if !res.Channel(Side).IsEmpty() {
		t.Error("side channel should be empty")
	}
	if res.Bounds.Min != Pt(0, 0, 0) || res.Bounds.Max != Pt(1, 1, 10) {
		t.Errorf("Bounds = %+v", res.Bounds)
	}
	if n := res.Channel(Front).Vertices[0].Normal; n != Pt(0, 0, -1) {
		t.Errorf("front normal = %v, want (0,0,-1)", n)
	}
	if n := res.Channel(Back).Vertices[0].Normal; n != Pt(0, 0, 1) {
		t.Errorf("back normal = %v, want (0,0,1)", n)
	}
}

func TestAssemble_ZeroTransformIsIdentity(t *testing.T) {
	var set TriangleSet
	set.Add(Front, quad(0)...)
	res := Assemble(&set, AssembleOptions{HAlign: AlignLeft, VAlign: AlignBottom})
	if res.Bounds.Max != Pt(1, 1, 0) {
		t.Errorf("Bounds.Max = %v, want (1,1,0)", res.Bounds.Max)
	}
}
