// Package f32hack fills gaps in golang.org/x/mobile/exp/f32 for feeding
// matrices to GL.  Matrices are kept in the row-major form f32.Mat4 documents
// and only converted to column-major order when serialized for a uniform.
package f32hack

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

// DegToRad converts an angle in degrees to radians.
func DegToRad(degrees float32) f32.Radian {
	return f32.Radian(float64(degrees) * math.Pi / 180)
}

// Sin returns the sine of r computed in float64.  f32.Sin is table based
// and off by up to 2e-4, too coarse for exact distortion factors.
func Sin(r f32.Radian) float32 {
	return float32(math.Sin(float64(r)))
}

// Cos returns the cosine of r computed in float64.
func Cos(r f32.Radian) float32 {
	return float32(math.Cos(float64(r)))
}

// FromZRotation sets m to a counter-clockwise rotation of r radians about the
// Z axis.
func FromZRotation(m *f32.Mat4, r f32.Radian) {
	s := Sin(r)
	c := Cos(r)
	*m = f32.Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// FromScaling sets m to a scaling by the components of v.  A zero component
// flattens that axis.
func FromScaling(m *f32.Mat4, v *f32.Vec3) {
	*m = f32.Mat4{
		{v[0], 0, 0, 0},
		{0, v[1], 0, 0},
		{0, 0, v[2], 0},
		{0, 0, 0, 1},
	}
}

// Affine43 computes the affine transformation m on v and stores the result
// in u.  In GLSL notation:
//		u = (m * vec4(v, 1)).xyz
func Affine43(u *f32.Vec3, m *f32.Mat4, v *f32.Vec3) {
	*u = f32.Vec3{
		dot43(&m[0], v),
		dot43(&m[1], v),
		dot43(&m[2], v),
	}
}

func dot43(u *f32.Vec4, v *f32.Vec3) float32 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2] + u[3]
}

// Serialize4 returns m serialized into column-major order.  When len(dst) is
// at least 16 the result is written into dst[:16] and that slice is returned;
// otherwise a new slice is allocated.
func Serialize4(dst []float32, m *f32.Mat4) []float32 {
	// this serialization considers the matrix vectors to define its rows, the
	// natural representation and how the package documents the type to behave.
	if len(dst) < 16 {
		dst = make([]float32, 16)
	}
	dst = dst[:16]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[4*col+row] = m[row][col]
		}
	}
	return dst
}
