package scene

import "quaternion-matrix/mathutil"

// Cube returns an axis-aligned cube of the given edge length centred on the
// origin, one textured quad per face.
func Cube(size float64, color [4]uint8, texPath string) *Mesh {
	h := size / 2
	verts := []mathutil.Vec3d{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	uvs := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	faces := [][4]int{
		{0, 3, 2, 1}, // -z
		{4, 5, 6, 7}, // +z
		{0, 1, 5, 4}, // -y
		{3, 7, 6, 2}, // +y
		{0, 4, 7, 3}, // -x
		{1, 2, 6, 5}, // +x
	}
	tris := make([]Triangle, len(faces))
	for i, f := range faces {
		tris[i] = Triangle{Polygon: 4, VI: f, TI: [4]int{0, 1, 2, 3}}
	}
	return &Mesh{Verts: verts, UVs: uvs, Tris: tris, Color: color, TexPath: texPath}
}

// Default is the demo scene: a cube with a smaller cube orbiting on +x,
// turned 45° about its own z axis.
func Default(texPath string) []Node {
	return []Node{
		{
			Name:   "body",
			Parent: -1,
			Mesh:   Cube(1, [4]uint8{160, 160, 170, 255}, texPath),
		},
		{
			Name:   "satellite",
			Parent: 0,
			Axis:   mathutil.Vec3d{0, 0, 1},
			Angle:  mathutil.Deg2Rad[float64](45),
			Offset: mathutil.Vec3d{1.1, 0, 0},
			Scale:  0.4,
			Mesh:   Cube(1, [4]uint8{200, 120, 60, 255}, ""),
		},
	}
}
