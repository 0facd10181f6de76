package viewmatrix

import (
	"math"

	"quaternion-matrix/mathutil"
)

// Turntable describes the camera orbit: frame k of Frames spins the scene by
// 2πk/Frames about Axis, then tilts it by Tilt radians about the screen x axis.
type Turntable struct {
	Axis   mathutil.Vec3d
	Tilt   float64
	Frames int
}

// Angle returns the spin angle of frame k.
func (t Turntable) Angle(k int) float64 {
	return 2 * math.Pi * float64(k) / float64(t.Frames)
}

// Orientation returns the combined quaternion tilt*spin for frame k. The
// product is taken through the tilt's left-multiplication operator.
func (t Turntable) Orientation(k int) mathutil.Quatd {
	spin := mathutil.QuatFromAxisAndAngle(t.Axis, t.Angle(k))
	tilt := mathutil.QuatFromAxisAndAngle(mathutil.Vec3d{1, 0, 0}, t.Tilt)
	return mathutil.Quatd(spin.Vec4().DotMV(tilt.ToM4Left()))
}

// View returns the 4×4 view operator of frame k: spin first, then tilt.
func (t Turntable) View(k int) mathutil.Mat4d {
	spin := mathutil.QuatFromAxisAndAngle(t.Axis, t.Angle(k)).ToM4Rot()
	tilt := mathutil.QuatFromAxisAndAngle(mathutil.Vec3d{1, 0, 0}, t.Tilt).ToM4Rot()
	return spin.DotM(tilt)
}

// Fit returns the pixels-per-unit scale that keeps a sphere of the given
// radius inside the render target with margin pixels on each side. Using the
// bounding sphere keeps the scale constant over the turntable.
func Fit(radius float64, renderSize, margin int) float64 {
	if radius < 0.001 {
		radius = 0.001
	}
	return float64(renderSize-2*margin) / (2 * radius)
}

// ProjectVertices rotates vertices by view and maps them orthographically to
// screen coordinates centred in the render target.
// Returns px, py, pz slices (screen X, screen Y, depth; larger is nearer).
func ProjectVertices(verts []mathutil.Vec3d, view mathutil.Mat4d, scale float64, renderSize int) ([]float64, []float64, []float64) {
	n := len(verts)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)

	half := float64(renderSize) / 2
	for i, v := range verts {
		t := v.Pure().DotMV(view).Spatial()
		px[i] = t[0]*scale + half
		py[i] = -t[1]*scale + half
		pz[i] = t[2]
	}
	return px, py, pz
}
