package mesh

import "math"

// DefaultWeldWindow is the number of most recently emitted vertices searched
// by WindowWeld when Size is not set.
const DefaultWeldWindow = 64

// WeldPolicy decides which previously emitted vertex, if any, a triangle
// corner reuses. Two corners are only ever merged when both position and
// normal compare exactly equal; the policy bounds where the search looks,
// which changes output vertex counts.
type WeldPolicy interface {
	newIndex() vertexIndex
}

// vertexIndex is the per-channel lookup state of a WeldPolicy.
type vertexIndex interface {
	// find returns the index of a matching vertex among vertices.
	find(v Vertex, vertices []Vertex) (uint32, bool)

	// added records that v was appended at index i.
	added(v Vertex, i uint32)
}

// WindowWeld searches only the last Size emitted vertices of the channel.
// Identical vertices emitted further apart stay separate. This keeps
// assembly close to linear for long texts.
type WindowWeld struct {
	// Size is the search window. Zero or negative means DefaultWeldWindow.
	Size int
}

func (w WindowWeld) newIndex() vertexIndex {
	size := w.Size
	if size <= 0 {
		size = DefaultWeldWindow
	}
	return windowIndex{size: size}
}

type windowIndex struct {
	size int
}

func (w windowIndex) find(v Vertex, vertices []Vertex) (uint32, bool) {
	start := len(vertices) - w.size
	if start < 0 {
		start = 0
	}
	for i := start; i < len(vertices); i++ {
		if vertices[i] == v {
			return uint32(i), true //nolint:gosec // vertex count is bounded by index width
		}
	}
	return 0, false
}

func (windowIndex) added(Vertex, uint32) {}

// HashWeld welds every exact duplicate in the channel using a hash map keyed
// on the bit patterns of position and normal.
type HashWeld struct{}

func (HashWeld) newIndex() vertexIndex {
	return hashIndex{seen: make(map[vertexKey]uint32)}
}

type vertexKey [6]uint64

// keyOf hashes v so that keys match exactly when vertices compare equal.
// Both zeros map to the same key.
func keyOf(v Vertex) vertexKey {
	return vertexKey{
		bits(v.Position.X), bits(v.Position.Y), bits(v.Position.Z),
		bits(v.Normal.X), bits(v.Normal.Y), bits(v.Normal.Z),
	}
}

func bits(x float64) uint64 {
	if x == 0 {
		return 0
	}
	return math.Float64bits(x)
}

type hashIndex struct {
	seen map[vertexKey]uint32
}

func (h hashIndex) find(v Vertex, _ []Vertex) (uint32, bool) {
	i, ok := h.seen[keyOf(v)]
	return i, ok
}

func (h hashIndex) added(v Vertex, i uint32) {
	h.seen[keyOf(v)] = i
}

// Weld converts a triangle list into an indexed channel with flat normals.
// A nil policy means WindowWeld with the default window.
func Weld(tris []Triangle, policy WeldPolicy) Channel {
	if policy == nil {
		policy = WindowWeld{}
	}
	idx := policy.newIndex()

	ch := Channel{
		Vertices: make([]Vertex, 0, len(tris)),
		Indices:  make([]uint32, 0, len(tris)*3),
	}

	for _, t := range tris {
		normal := t.Normal()
		for c := 0; c < 3; c++ {
			v := Vertex{Position: t.Corner(c), Normal: normal}
			i, ok := idx.find(v, ch.Vertices)
			if !ok {
				i = uint32(len(ch.Vertices)) //nolint:gosec // vertex count is bounded by index width
				ch.Vertices = append(ch.Vertices, v)
				idx.added(v, i)
			}
			ch.Indices = append(ch.Indices, i)
		}
	}
	return ch
}
