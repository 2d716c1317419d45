package mesh

// Vertex is a welded mesh vertex: a position with its flat face normal.
type Vertex struct {
	Position Point
	Normal   Point
}

// Channel is an indexed triangle list: three indices per triangle.
type Channel struct {
	Vertices []Vertex
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (c *Channel) VertexCount() int {
	return len(c.Vertices)
}

// TriangleCount returns the number of triangles.
func (c *Channel) TriangleCount() int {
	return len(c.Indices) / 3
}

// IsEmpty returns true if the channel has no geometry.
func (c *Channel) IsEmpty() bool {
	return len(c.Indices) == 0
}

// Triangle returns the i-th triangle of the channel.
func (c *Channel) Triangle(i int) Triangle {
	return Triangle{
		A: c.Vertices[c.Indices[3*i]].Position,
		B: c.Vertices[c.Indices[3*i+1]].Position,
		C: c.Vertices[c.Indices[3*i+2]].Position,
	}
}

// Bounds returns the bounding box of the channel's vertex positions.
func (c *Channel) Bounds() Box {
	box := EmptyBox()
	for _, v := range c.Vertices {
		box = box.Extend(v.Position)
	}
	return box
}

// Result is a complete generated mesh. A Result is never modified after it
// has been handed to readers; a new generation produces a new Result.
type Result struct {
	// Channels holds the front, back and side geometry, indexed by Face.
	Channels [FaceCount]Channel

	// Bounds is the union of the channel bounds.
	Bounds Box
}

// Channel returns the channel for the given face.
func (r *Result) Channel(f Face) *Channel {
	return &r.Channels[f]
}

// IsEmpty returns true if no channel has geometry.
func (r *Result) IsEmpty() bool {
	for _, f := range Faces {
		if !r.Channels[f].IsEmpty() {
			return false
		}
	}
	return true
}

// CalcBounds recomputes Bounds from the channel vertices and returns it.
func (r *Result) CalcBounds() Box {
	box := EmptyBox()
	for _, f := range Faces {
		box = box.Union(r.Channels[f].Bounds())
	}
	r.Bounds = box
	return box
}

// VertexCount returns the number of vertices over all channels.
func (r *Result) VertexCount() int {
	n := 0
	for _, f := range Faces {
		n += r.Channels[f].VertexCount()
	}
	return n
}

// TriangleCount returns the number of triangles over all channels.
func (r *Result) TriangleCount() int {
	n := 0
	for _, f := range Faces {
		n += r.Channels[f].TriangleCount()
	}
	return n
}
