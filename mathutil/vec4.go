package mathutil

import "fmt"

// Vec4 is a 4-component vector. It has no cross product: the 4D analogue is
// a bivector, not a Vec4.
type Vec4[F Float] [4]F

// NewVec4 copies the first four values of v. v must hold at least four.
func NewVec4[F Float](v []F) Vec4[F] {
	return Vec4[F]{v[0], v[1], v[2], v[3]}
}

func (a Vec4[F]) ToVec() []F {
	return []F{a[0], a[1], a[2], a[3]}
}

func (a Vec4[F]) PrecEq(e F, b Vec4[F]) bool {
	return PrecEqSeq(a[:], b[:], e)
}

// Dot sums b[i]*a[i] from index 0 upward.
func (a Vec4[F]) Dot(b Vec4[F]) F {
	var s F
	for i := range a {
		s += b[i] * a[i]
	}
	return s
}

// DotMV returns m·a with a taken as a column vector.
func (a Vec4[F]) DotMV(m Mat4[F]) Vec4[F] {
	return Vec4[F]{a.Dot(m[0]), a.Dot(m[1]), a.Dot(m[2]), a.Dot(m[3])}
}

func (a Vec4[F]) Scale(s F) Vec4[F] {
	return Vec4[F]{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

func (a Vec4[F]) Len() F {
	return sqrt(a.Dot(a))
}

// Spatial drops component 0, the inverse of Vec3.Pure.
func (a Vec4[F]) Spatial() Vec3[F] {
	return Vec3[F]{a[1], a[2], a[3]}
}

func (a Vec4[F]) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", a[0], a[1], a[2], a[3])
}
