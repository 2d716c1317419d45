package text

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Tag classifies an outline control point.
type Tag uint8

const (
	// TagOn is an on-curve point.
	TagOn Tag = iota

	// TagConic is a quadratic off-curve control point. Two consecutive
	// conic points imply an on-curve point at their midpoint.
	TagConic

	// TagCubic is a cubic off-curve control point. Cubic points come in
	// pairs between two on-curve points.
	TagCubic
)

// String returns a string representation of the tag.
func (t Tag) String() string {
	switch t {
	case TagOn:
		return "On"
	case TagConic:
		return "Conic"
	case TagCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// ControlPoint is a tagged outline point in pixel units, y up.
type ControlPoint struct {
	X, Y float64
	Tag  Tag
}

// Loop is one closed outline contour. The closing edge from the last point
// back to the first is implicit; the first point is not repeated.
type Loop []ControlPoint

// Rect is an axis-aligned rectangle in pixel units, y up.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Outline is the vector outline of a glyph at a face's size.
type Outline struct {
	// GID is the glyph this outline represents.
	GID GlyphID

	// Loops are the closed contours of the glyph. Empty for blank glyphs
	// such as space.
	Loops []Loop

	// Advance is the unhinted horizontal advance width.
	Advance float64

	// Bounds is the glyph bounding box.
	Bounds Rect
}

// Height returns the glyph height, the vertical extent of its bounds.
func (o *Outline) Height() float64 {
	return o.Bounds.Height()
}

// IsEmpty returns true if the outline has no loops.
func (o *Outline) IsEmpty() bool {
	return len(o.Loops) == 0
}

// PointCount returns the number of control points over all loops.
func (o *Outline) PointCount() int {
	n := 0
	for _, l := range o.Loops {
		n += len(l)
	}
	return n
}

// loopBuilder accumulates control points into loops.
type loopBuilder struct {
	loops []Loop
	cur   Loop
}

func (b *loopBuilder) moveTo(x, y float64) {
	b.close()
	b.cur = Loop{{X: x, Y: y, Tag: TagOn}}
}

func (b *loopBuilder) add(x, y float64, tag Tag) {
	b.cur = append(b.cur, ControlPoint{X: x, Y: y, Tag: tag})
}

// close finishes the current loop, dropping a trailing on-curve point that
// repeats the first one.
func (b *loopBuilder) close() {
	n := len(b.cur)
	if n == 0 {
		return
	}
	if n > 1 {
		first, last := b.cur[0], b.cur[n-1]
		if last.Tag == TagOn && last.X == first.X && last.Y == first.Y {
			b.cur = b.cur[:n-1]
		}
	}
	b.loops = append(b.loops, b.cur)
	b.cur = nil
}

func (b *loopBuilder) finish() []Loop {
	b.close()
	return b.loops
}
