package viewmatrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"quaternion-matrix/mathutil"
)

func TestOrientationMatchesView(t *testing.T) {
	tt := Turntable{Axis: mathutil.Vec3d{0, 1, 0}, Tilt: mathutil.Deg2Rad(20.0), Frames: 12}
	for k := 0; k < tt.Frames; k++ {
		q := tt.Orientation(k)
		require.True(t, mathutil.PrecEqF(q.Norm(), 1, 1e-12))
		require.True(t, q.ToM4Rot().PrecEq(1e-9, tt.View(k)), "frame %d", k)
	}
}

func TestViewFullTurn(t *testing.T) {
	tt := Turntable{Axis: mathutil.Vec3d{1, 1, 0}, Tilt: 0.3, Frames: 8}
	require.True(t, tt.View(0).PrecEq(1e-9, tt.View(tt.Frames)))
	require.InDelta(t, math.Pi/2, tt.Angle(2), 1e-12)
}

func TestProjectVertices(t *testing.T) {
	// A quarter turn about y sends +x to -z.
	tt := Turntable{Axis: mathutil.Vec3d{0, 1, 0}, Frames: 4}
	verts := []mathutil.Vec3d{{1, 0, 0}, {0, 1, 0}}
	px, py, pz := ProjectVertices(verts, tt.View(1), 10, 100)

	require.InDelta(t, 50, px[0], 1e-9)
	require.InDelta(t, 50, py[0], 1e-9)
	require.InDelta(t, -1, pz[0], 1e-9)

	require.InDelta(t, 50, px[1], 1e-9)
	require.InDelta(t, 40, py[1], 1e-9)
	require.InDelta(t, 0, pz[1], 1e-9)
}

func TestFit(t *testing.T) {
	require.Equal(t, 50.0, Fit(2, 232, 16))
	require.InDelta(t, 200000, Fit(0, 416, 8), 1e-6)
}
