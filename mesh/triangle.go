package mesh

// Face identifies one of the three mesh channels.
type Face uint8

const (
	// Front is the face at z=0.
	Front Face = iota

	// Back is the face at z=depth, wound opposite to Front.
	Back

	// Side holds the extruded walls between Front and Back.
	Side

	// FaceCount is the number of channels.
	FaceCount = 3
)

// String returns a string representation of the face.
func (f Face) String() string {
	switch f {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Side:
		return "Side"
	default:
		return "Unknown"
	}
}

// Faces lists the channels in their canonical order.
var Faces = [FaceCount]Face{Front, Back, Side}

// Triangle is a triangle with corners A, B and C.
type Triangle struct {
	A, B, C Point
}

// Corner returns the i-th corner (0=A, 1=B, 2=C).
func (t Triangle) Corner(i int) Point {
	switch i {
	case 0:
		return t.A
	case 1:
		return t.B
	default:
		return t.C
	}
}

// Translate returns the triangle moved by v.
func (t Triangle) Translate(v Point) Triangle {
	return Triangle{A: t.A.Add(v), B: t.B.Add(v), C: t.C.Add(v)}
}

// Apply returns the triangle with the transform applied to every corner.
func (t Triangle) Apply(tr Transform) Triangle {
	return Triangle{A: tr.Apply(t.A), B: tr.Apply(t.B), C: tr.Apply(t.C)}
}

// Normal returns the flat face normal, normalize((B-C) × (A-C)).
// Degenerate triangles yield the zero vector.
func (t Triangle) Normal() Point {
	edge21 := t.B.Sub(t.C)
	edge20 := t.A.Sub(t.C)
	return edge21.Cross(edge20).Normalize()
}

// Flipped returns the triangle with reversed winding (C, B, A).
func (t Triangle) Flipped() Triangle {
	return Triangle{A: t.C, B: t.B, C: t.A}
}

// TriangleSet accumulates raw triangles per channel during layout.
type TriangleSet [FaceCount][]Triangle

// Add appends triangles to the given channel.
func (s *TriangleSet) Add(f Face, tris ...Triangle) {
	s[f] = append(s[f], tris...)
}

// Len returns the number of triangles in the given channel.
func (s *TriangleSet) Len(f Face) int {
	return len(s[f])
}

// Total returns the number of triangles over all channels.
func (s *TriangleSet) Total() int {
	n := 0
	for _, f := range Faces {
		n += len(s[f])
	}
	return n
}

// Translate moves every triangle of every channel by v in place.
func (s *TriangleSet) Translate(v Point) {
	for _, f := range Faces {
		for i := range s[f] {
			s[f][i] = s[f][i].Translate(v)
		}
	}
}

// Apply transforms every triangle of every channel in place.
func (s *TriangleSet) Apply(tr Transform) {
	for _, f := range Faces {
		for i := range s[f] {
			s[f][i] = s[f][i].Apply(tr)
		}
	}
}

// Bounds returns the union bounding box of every triangle corner.
func (s *TriangleSet) Bounds() Box {
	box := EmptyBox()
	for _, f := range Faces {
		for _, t := range s[f] {
			box = box.Extend(t.A).Extend(t.B).Extend(t.C)
		}
	}
	return box
}

// Merge appends every channel of other to s.
func (s *TriangleSet) Merge(other *TriangleSet) {
	for _, f := range Faces {
		s[f] = append(s[f], other[f]...)
	}
}
