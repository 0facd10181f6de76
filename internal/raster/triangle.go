package raster

import (
	"image"
	"math"

	"quaternion-matrix/mathutil"
)

// Surface is what a triangle is painted with: a texture when one resolved,
// otherwise a flat color.
type Surface struct {
	Tex   *image.NRGBA
	UVs   [][2]float64
	Color [4]uint8
}

// RasterizeTriangle rasterizes a single triangle with texture mapping,
// z-buffer, sRGB color space, flat lighting and ACES tone mapping.
//
// This is the hot path: the pixel loop does not allocate.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	vi, ti [3]int,
	surf *Surface,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	hasUV := surf.Tex != nil
	for _, i := range ti {
		if i < 0 || i >= len(surf.UVs) {
			hasUV = false
			break
		}
	}
	var uv0, uv1, uv2 [2]float64
	if hasUV {
		uv0, uv1, uv2 = surf.UVs[ti[0]], surf.UVs[ti[1]], surf.UVs[ti[2]]
	}

	// Face normal in screen space for flat shading
	e1 := mathutil.Vec3d{x1 - x0, y1 - y0, z1 - z0}
	e2 := mathutil.Vec3d{x2 - x0, y2 - y0, z2 - z0}
	n := e1.Cross(e2)
	if n.Len() < 1e-8 {
		return
	}
	shade := lc.ComputeShade(n.Normalize())

	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	minX, maxX = max(minX, 0), min(maxX, fb.Width-1)
	minY, maxY = max(minY, 0), min(maxY, fb.Height-1)
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12, dx21 := y1-y2, x2-x1
	dy20, dx02 := y2-y0, x0-x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := surf.Color[0], surf.Color[1], surf.Color[2], surf.Color[3]
			if hasUV {
				uv := [2]float64{
					w0*uv0[0] + w1*uv1[0] + w2*uv2[0],
					w0*uv0[1] + w1*uv1[1] + w2*uv2[1],
				}
				cr, cg, cb, ca = SampleTexture(surf.Tex, uv)
			}
			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = lc.shadeTexel(cr, shade)
			fb.Color[pxIdx+1] = lc.shadeTexel(cg, shade)
			fb.Color[pxIdx+2] = lc.shadeTexel(cb, shade)
			fb.Color[pxIdx+3] = ca
		}
	}
}
