package scene

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"quaternion-matrix/mathutil"
)

func TestLocalRotation(t *testing.T) {
	q, err := LocalRotation(Node{Name: "still"})
	require.NoError(t, err)
	require.Equal(t, mathutil.QuatIdentity[float64](), q)

	_, err = LocalRotation(Node{Name: "bad", Angle: 1})
	require.True(t, errors.Is(err, ErrZeroAxis))
	require.Contains(t, err.Error(), `node "bad"`)

	q, err = LocalRotation(Node{Axis: mathutil.Vec3d{0, 0, 2}, Angle: math.Pi})
	require.NoError(t, err)
	require.True(t, q.PrecEq(1e-12, mathutil.Quatd{0, 0, 0, 1}))
}

func TestBuildWorld(t *testing.T) {
	nodes := []Node{
		{Name: "root", Parent: -1, Axis: mathutil.Vec3d{0, 0, 1}, Angle: math.Pi / 2},
		{Name: "arm", Parent: 0, Offset: mathutil.Vec3d{1, 0, 0}, Scale: 0.5},
		{Name: "hand", Parent: 1, Axis: mathutil.Vec3d{0, 0, 1}, Angle: math.Pi / 2, Offset: mathutil.Vec3d{2, 0, 0}},
	}
	worlds, err := BuildWorld(nodes)
	require.NoError(t, err)

	// The root quarter turn carries the arm's +x offset onto +y.
	require.True(t, worlds[1].Offset.PrecEq(1e-12, mathutil.Vec3d{0, 1, 0}))
	require.Equal(t, 0.5, worlds[1].Scale)
	// Offsets are scaled by the parent: 2 * 0.5 along rotated +x.
	require.True(t, worlds[2].Offset.PrecEq(1e-12, mathutil.Vec3d{0, 2, 0}))

	half := mathutil.QuatFromAxisAndAngle(mathutil.Vec3d{0, 0, 1}, math.Pi).ToM4Rot()
	require.True(t, worlds[2].Rot.PrecEq(1e-12, half))
	require.True(t, worlds[2].Apply(mathutil.Vec3d{1, 0, 0}).PrecEq(1e-12, mathutil.Vec3d{-0.5, 2, 0}))
}

func TestBuildWorldErrors(t *testing.T) {
	_, err := BuildWorld([]Node{{Name: "a", Parent: 0}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "must precede")

	_, err = BuildWorld([]Node{{Name: "a", Parent: -1}, {Name: "b", Parent: 0, Angle: 2}})
	require.True(t, errors.Is(err, ErrZeroAxis))
}

func TestFlatten(t *testing.T) {
	nodes := Default("")
	meshes, err := Flatten(nodes)
	require.NoError(t, err)
	require.Len(t, meshes, 2)

	// Source meshes are untouched.
	require.Equal(t, mathutil.Vec3d{-0.5, -0.5, -0.5}, nodes[1].Mesh.Verts[0])

	for _, v := range meshes[1].Verts {
		d := mathutil.Vec3d{v[0] - 1.1, v[1], v[2]}
		require.InDelta(t, 0.2*math.Sqrt(3), d.Len(), 1e-9)
		require.InDelta(t, 0.2, math.Abs(v[2]), 1e-9)
	}
	require.InDelta(t, math.Hypot(1.1+0.2*math.Sqrt2, 0.2), Radius(meshes), 1e-9)
}

func TestCube(t *testing.T) {
	c := Cube(2, [4]uint8{1, 2, 3, 255}, "skin.tga")
	require.Len(t, c.Verts, 8)
	require.Len(t, c.Tris, 6)
	for _, v := range c.Verts {
		require.InDelta(t, math.Sqrt(3), v.Len(), 1e-12)
	}
	// Each face's normal points away from the centre.
	for _, tri := range c.Tris {
		a, b, d := c.Verts[tri.VI[0]], c.Verts[tri.VI[1]], c.Verts[tri.VI[2]]
		e1 := mathutil.Vec3d{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		e2 := mathutil.Vec3d{d[0] - a[0], d[1] - a[1], d[2] - a[2]}
		require.Greater(t, e1.Cross(e2).Dot(a), 0.0)
	}
}
