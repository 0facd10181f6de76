package mathutil

import "fmt"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3[F Float] [3]F

// NewVec3 copies the first three values of v. v must hold at least three.
func NewVec3[F Float](v []F) Vec3[F] {
	return Vec3[F]{v[0], v[1], v[2]}
}

func (a Vec3[F]) ToVec() []F {
	return []F{a[0], a[1], a[2]}
}

// PrecEq reports whether every component of a is within e of b.
func (a Vec3[F]) PrecEq(e F, b Vec3[F]) bool {
	return PrecEqSeq(a[:], b[:], e)
}

// Dot sums b[i]*a[i] from index 0 upward.
func (a Vec3[F]) Dot(b Vec3[F]) F {
	var s F
	for i := range a {
		s += b[i] * a[i]
	}
	return s
}

// DotMV returns m·a with a taken as a column vector.
func (a Vec3[F]) DotMV(m Mat3[F]) Vec3[F] {
	return Vec3[F]{a.Dot(m[0]), a.Dot(m[1]), a.Dot(m[2])}
}

// Cross returns the right-handed cross product a×b.
func (a Vec3[F]) Cross(b Vec3[F]) Vec3[F] {
	return Vec3[F]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a Vec3[F]) Scale(s F) Vec3[F] {
	return Vec3[F]{a[0] * s, a[1] * s, a[2] * s}
}

func (a Vec3[F]) Len() F {
	return sqrt(a.Dot(a))
}

// Normalize divides by Len. A zero vector yields NaN components.
func (a Vec3[F]) Normalize() Vec3[F] {
	l := a.Len()
	return Vec3[F]{a[0] / l, a[1] / l, a[2] / l}
}

// Pure embeds a as the 4-vector (0, a).
func (a Vec3[F]) Pure() Vec4[F] {
	return Vec4[F]{0, a[0], a[1], a[2]}
}

func (a Vec3[F]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", a[0], a[1], a[2])
}
