// Package mesh holds the 3D geometry types produced by the text pipeline and
// the assembler that turns raw triangle lists into indexed, welded channels.
package mesh

import "math"

// Point represents a 3D point or vector.
// Point is an immutable value type; every operation returns a new Point.
type Point struct {
	X, Y, Z float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p × q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector is returned unchanged.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return p
	}
	return Point{X: p.X / length, Y: p.Y / length, Z: p.Z / length}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p and t=1 returns q exactly.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Mul(1 - t).Add(q.Mul(t))
}

// IsZero returns true if all components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}
