package mesh

import "math"

// Box is an axis-aligned bounding box.
// The zero Box is not empty; use EmptyBox as the fold identity.
type Box struct {
	Min, Max Point
}

// EmptyBox returns a box that contains nothing.
// Extending it with a point yields the degenerate box at that point.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: Point{X: inf, Y: inf, Z: inf},
		Max: Point{X: -inf, Y: -inf, Z: -inf},
	}
}

// IsEmpty returns true if the box contains no point.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend returns the smallest box containing b and p.
func (b Box) Extend(p Point) Box {
	return Box{
		Min: Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(other Box) Box {
	if other.IsEmpty() {
		return b
	}
	return b.Extend(other.Min).Extend(other.Max)
}

// Center returns the center of the box.
func (b Box) Center() Point {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Point {
	if b.IsEmpty() {
		return Point{}
	}
	return b.Max.Sub(b.Min)
}
