package tracer

import "github.com/chewxy/math32"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Len(v Vec3) float32 { return math32.Sqrt(Dot(v, v)) }

// Normalize returns v scaled to unit length.
//
// Vectors shorter than 1e-4 are returned unchanged.
func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l <= 1e-4 {
		return v
	}
	return v.Mul(1 / l)
}

// Reflect mirrors v about the unit normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * Dot(v, n)))
}

// Mat3 is a row-major 3x3 rotation matrix.
type Mat3 [9]float32

func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3RotateX rotates +Y toward +Z for positive angles.
func Mat3RotateX(rad float32) Mat3 {
	c := math32.Cos(rad)
	s := math32.Sin(rad)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// Mat3RotateY rotates +Z toward +X for positive angles.
func Mat3RotateY(rad float32) Mat3 {
	c := math32.Cos(rad)
	s := math32.Sin(rad)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

func Mat3Mul(a, b Mat3) Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] =
				a[row*3+0]*b[0*3+col] +
					a[row*3+1]*b[1*3+col] +
					a[row*3+2]*b[2*3+col]
		}
	}
	return out
}

func Mat3MulV3(m Mat3, v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// floorInt rounds toward negative infinity.
//
// The conversion truncates toward zero, so negative non-integral inputs are
// decremented once to land on the tile below.
func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}
