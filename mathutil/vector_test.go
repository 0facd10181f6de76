package mathutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	t.Run("float32", testVector[float32])
	t.Run("float64", testVector[float64])
}

func testVector[F Float](t *testing.T) {
	e := eps[F]()

	t.Run("new", func(t *testing.T) {
		require.Equal(t, Vec3[F]{1, 2, 3}, NewVec3([]F{1, 2, 3, 4}))
		require.Equal(t, Vec4[F]{1, 2, 3, 4}, NewVec4([]F{1, 2, 3, 4}))
		require.Equal(t, []F{1, 2, 3}, Vec3[F]{1, 2, 3}.ToVec())
		require.Equal(t, []F{1, 2, 3, 4}, Vec4[F]{1, 2, 3, 4}.ToVec())
	})

	t.Run("dot", func(t *testing.T) {
		a := NewVec3([]F{1, 2, 3})
		require.Equal(t, F(14), a.Dot(a))
		b := NewVec4([]F{1, 2, 3, 4})
		require.Equal(t, F(30), b.Dot(b))
	})

	t.Run("cross", func(t *testing.T) {
		a := NewVec3([]F{1, 0, 1})
		b := NewVec3([]F{0, 1, 1})
		require.True(t, a.Cross(b).PrecEq(e, Vec3[F]{-1, -1, 1}), "%v", a.Cross(b))

		rng := rand.New(rand.NewSource(1))
		for k := 0; k < 20; k++ {
			a, b := randomAxis[F](rng), randomAxis[F](rng)
			require.True(t, a.Cross(b).PrecEq(e, b.Cross(a).Scale(-1)))
			require.True(t, a.Cross(a).PrecEq(e, Vec3[F]{}))
			// a×b is orthogonal to both operands.
			require.True(t, PrecEqF(a.Cross(b).Dot(a), 0, e*10))
			require.True(t, PrecEqF(a.Cross(b).Dot(b), 0, e*10))
		}
	})

	t.Run("dot_mv identity", func(t *testing.T) {
		v3 := Vec3[F]{1.5, -2, 7}
		require.Equal(t, v3, v3.DotMV(Mat3Identity[F]()))
		v4 := Vec4[F]{1.5, -2, 7, 0.25}
		require.Equal(t, v4, v4.DotMV(Mat4Identity[F]()))
	})

	t.Run("dot_mv rows", func(t *testing.T) {
		m := NewMat3(rows([]F{1, 2, 3}, []F{4, 5, 6}, []F{7, 8, 9}))
		v := Vec3[F]{1, 0, -1}
		require.Equal(t, Vec3[F]{-2, -2, -2}, v.DotMV(m))
		for j := 0; j < 3; j++ {
			require.Equal(t, v.Dot(m.Row(j)), v.DotMV(m)[j])
		}
	})

	t.Run("normalize", func(t *testing.T) {
		v := Vec3[F]{3, 0, 4}
		require.Equal(t, F(5), v.Len())
		require.True(t, v.Normalize().PrecEq(e, Vec3[F]{0.6, 0, 0.8}))
		require.True(t, PrecEqF(v.Normalize().Len(), 1, e))
	})

	t.Run("embedding", func(t *testing.T) {
		v := Vec3[F]{1, 2, 3}
		require.Equal(t, Vec4[F]{0, 1, 2, 3}, v.Pure())
		require.Equal(t, v, v.Pure().Spatial())
	})
}

func TestVectorString(t *testing.T) {
	require.Equal(t, "(1, 2.5, -3)", Vec3d{1, 2.5, -3}.String())
	require.Equal(t, "(0, 1, 0, 0)", Vec4f{0, 1, 0, 0}.String())
}
