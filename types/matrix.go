package types

import "golang.org/x/image/math/f64"

// A 3x3 matrix stored in column-major order.
type Mat3 f64.Mat3

// Build a matrix from its three columns.
func Mat3FromCols(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		c0[0], c0[1], c0[2],
		c1[0], c1[1], c1[2],
		c2[0], c2[1], c2[2],
	}
}

// The identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Transpose the matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Multiply the matrix with a vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

// A rigid transformation: a rotation followed by a translation.
type Transformation struct {
	Orientation Mat3
	Position    Vec3
}

// The identity transformation.
func IdentityTransformation() Transformation {
	return Transformation{Orientation: Mat3Identity()}
}

// Build the transformation that places an observer at position, looking at
// target, with up fixing the roll.
func LookAt(position, target, up Vec3) Transformation {
	z := position.Sub(target).Normalize()
	x := up.Cross(z)
	y := z.Cross(x)
	return Transformation{Orientation: Mat3FromCols(x, y, z), Position: position}
}

// Invert the transformation. Only valid when the orientation is a pure
// rotation.
func (t Transformation) Inverse() Transformation {
	invOrientation := t.Orientation.Transpose()
	return Transformation{
		Orientation: invOrientation,
		Position:    invOrientation.MulVec(t.Position).Neg(),
	}
}

// Rotate a vector.
func (t Transformation) TransformVector(v Vec3) Vec3 {
	return t.Orientation.MulVec(v)
}

// Rotate and translate a point.
func (t Transformation) TransformPoint(p Vec3) Vec3 {
	return t.Orientation.MulVec(p).Add(t.Position)
}
