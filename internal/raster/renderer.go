package raster

import (
	"image"

	"quaternion-matrix/internal/scene"
	"quaternion-matrix/internal/texture"
	"quaternion-matrix/internal/viewmatrix"
	"quaternion-matrix/mathutil"
)

// Frame is one view of a flattened scene.
type Frame struct {
	Meshes      []scene.Mesh
	View        mathutil.Mat4d
	Radius      float64 // bounding sphere radius of Meshes
	Size        int
	Supersample int
}

// Render rasterizes the frame at Size*Supersample pixels square.
func Render(f Frame, texResolver texture.Resolver) *image.NRGBA {
	ss := max(f.Supersample, 1)
	renderSize := f.Size * ss
	margin := 16 * ss
	scale := viewmatrix.Fit(f.Radius, renderSize, margin)

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for _, mesh := range f.Meshes {
		if len(mesh.Verts) == 0 {
			continue
		}
		px, py, pz := viewmatrix.ProjectVertices(mesh.Verts, f.View, scale, renderSize)

		surf := Surface{UVs: mesh.UVs, Color: mesh.Color}
		if surf.Color[3] == 0 {
			surf.Color = [4]uint8{160, 160, 170, 255}
		}
		if texResolver != nil && mesh.TexPath != "" {
			surf.Tex = texResolver.Resolve(mesh.TexPath)
		}

		for _, tri := range mesh.Tris {
			vi := [3]int{tri.VI[0], tri.VI[1], tri.VI[2]}
			ti := [3]int{tri.TI[0], tri.TI[1], tri.TI[2]}
			RasterizeTriangle(fb, px, py, pz, vi, ti, &surf, &lc)

			// Quad: second triangle
			if tri.Polygon == 4 {
				vi2 := [3]int{tri.VI[0], tri.VI[2], tri.VI[3]}
				ti2 := [3]int{tri.TI[0], tri.TI[2], tri.TI[3]}
				RasterizeTriangle(fb, px, py, pz, vi2, ti2, &surf, &lc)
			}
		}
	}

	return fb.Image()
}
