package mesh

import "github.com/go-gl/mathgl/mgl64"

// Transform is a rigid transform with non-uniform scale.
// Points are scaled first, then rotated, then translated.
type Transform struct {
	Rotation    mgl64.Quat
	Translation mgl64.Vec3
	Scale       mgl64.Vec3
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// NewTransform builds a transform from Euler angles in degrees (about X, Y
// and Z, in that order), a translation and a per-axis scale.
func NewTransform(rotationDeg, translation, scale Point) Transform {
	q := mgl64.AnglesToQuat(
		mgl64.DegToRad(rotationDeg.X),
		mgl64.DegToRad(rotationDeg.Y),
		mgl64.DegToRad(rotationDeg.Z),
		mgl64.XYZ,
	)
	return Transform{
		Rotation:    q.Normalize(),
		Translation: mgl64.Vec3{translation.X, translation.Y, translation.Z},
		Scale:       mgl64.Vec3{scale.X, scale.Y, scale.Z},
	}
}

// IsIdentity returns true if the transform leaves every point unchanged.
func (t Transform) IsIdentity() bool {
	return t.Matrix() == mgl64.Ident4()
}

// Matrix returns the homogeneous matrix T * R * S.
func (t Transform) Matrix() mgl64.Mat4 {
	s := mgl64.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	r := t.Rotation.Mat4()
	tr := mgl64.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2])
	return tr.Mul4(r).Mul4(s)
}

// Apply transforms a position.
func (t Transform) Apply(p Point) Point {
	v := t.Rotation.Rotate(mgl64.Vec3{p.X * t.Scale[0], p.Y * t.Scale[1], p.Z * t.Scale[2]})
	v = v.Add(t.Translation)
	return Point{X: v[0], Y: v[1], Z: v[2]}
}
