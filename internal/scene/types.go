package scene

import "quaternion-matrix/mathutil"

// Triangle holds polygon type and index tuples into vertex/UV arrays.
// Polygon == 4 means quad (two triangles: 0-1-2 and 0-2-3).
type Triangle struct {
	Polygon int
	VI      [4]int
	TI      [4]int
}

// Mesh holds geometry in its node's local frame.
type Mesh struct {
	Verts   []mathutil.Vec3d
	UVs     [][2]float64
	Tris    []Triangle
	Color   [4]uint8 // used where no texture resolves
	TexPath string
}

// Node is one element of the scene hierarchy. Its local transform rotates by
// Angle radians about Axis, scales uniformly, then offsets, all relative to
// the parent.
type Node struct {
	Name   string
	Parent int // -1 for a root; otherwise an index lower than the node's own
	Axis   mathutil.Vec3d
	Angle  float64
	Offset mathutil.Vec3d
	Scale  float64
	Mesh   *Mesh
}
