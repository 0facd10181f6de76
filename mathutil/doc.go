// Package mathutil provides fixed-size vectors, square matrices and unit
// quaternions for 3D graphics and rigid-body kinematics.
//
// Every type is a value (a Go array) generic over the scalar precision, so the
// same code serves float32 and float64. Matrices are row-major: m[j][i] is the
// entry in row j, column i.
//
// Matrix products take their argument from the left: a.DotM(b) is b·a. This
// keeps the column identity
//
//	a.DotM(b).Col(i) == a.Col(i).DotMV(b)
//
// and makes q.ToM4Rot() read as "left(q), then right(conj q)".
//
// Nothing in this package allocates beyond the returned values, keeps state
// or reports errors. Inv is the only partial operation and uses the comma-ok
// form.
package mathutil

// Single- and double-precision instantiations.
type (
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
	Quatf = Quat[float32]
	Quatd = Quat[float64]
)
