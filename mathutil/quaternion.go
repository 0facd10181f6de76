package mathutil

import "fmt"

// Quat is a quaternion (w, x, y, z) with w the scalar part.
type Quat[F Float] [4]F

// NewQuat copies the first four values of v as (w, x, y, z).
func NewQuat[F Float](v []F) Quat[F] {
	return Quat[F]{v[0], v[1], v[2], v[3]}
}

func QuatIdentity[F Float]() Quat[F] {
	return Quat[F]{1, 0, 0, 0}
}

// QuatFromAxisAndAngle returns the unit quaternion rotating by theta radians
// about axis. The axis is normalized first; a zero axis gives NaN components.
func QuatFromAxisAndAngle[F Float](axis Vec3[F], theta F) Quat[F] {
	v := axis.Normalize()
	c, s := cos(theta/2), sin(theta/2)
	return Quat[F]{c, v[0] * s, v[1] * s, v[2] * s}
}

func (q Quat[F]) Conjugate() Quat[F] {
	return Quat[F]{q[0], -q[1], -q[2], -q[3]}
}

func (q Quat[F]) ToVec() []F {
	return []F{q[0], q[1], q[2], q[3]}
}

func (q Quat[F]) Vec4() Vec4[F] {
	return Vec4[F](q)
}

func (q Quat[F]) PrecEq(e F, p Quat[F]) bool {
	return PrecEqSeq(q[:], p[:], e)
}

func (q Quat[F]) Norm() F {
	return q.Vec4().Len()
}

// ToM4Left returns the matrix L with L·p == q*p for any quaternion p.
func (q Quat[F]) ToM4Left() Mat4[F] {
	w, x, y, z := q[0], q[1], q[2], q[3]
	return Mat4[F]{
		{w, -x, -y, -z},
		{x, w, -z, y},
		{y, z, w, -x},
		{z, -y, x, w},
	}
}

// ToM4Right returns the matrix R with R·p == p*q, i.e. right-multiplication
// by q.
func (q Quat[F]) ToM4Right() Mat4[F] {
	w, x, y, z := q[0], q[1], q[2], q[3]
	return Mat4[F]{
		{w, -x, -y, -z},
		{x, w, z, -y},
		{y, -z, w, x},
		{z, y, -x, w},
	}
}

// ToM4Rot returns right(conj q)·left(q), which maps (0, r) to q*(0, r)*conj(q).
// For a unit q the result is orthogonal and its first row and column are
// (1, 0, 0, 0); the lower 3×3 block is the classical rotation matrix.
func (q Quat[F]) ToM4Rot() Mat4[F] {
	return q.ToM4Left().DotM(q.Conjugate().ToM4Right())
}

func (q Quat[F]) String() string {
	return fmt.Sprintf("(%g; %g, %g, %g)", q[0], q[1], q[2], q[3])
}
