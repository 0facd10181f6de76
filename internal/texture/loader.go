package texture

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// LoadTexture reads a TGA, PNG or JPEG file and returns an NRGBA image.
func LoadTexture(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "texture: read %s", path)
	}
	return Decode(raw, path)
}

// Decode decodes an in-memory texture. TGA has no reliable magic number, so
// a ".tga" name selects the TGA decoder; anything else is sniffed.
func Decode(raw []byte, name string) (*image.NRGBA, error) {
	var (
		img    image.Image
		format = "tga"
		err    error
	)
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		img, err = tga.Decode(bytes.NewReader(raw))
	} else {
		img, format, err = image.Decode(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "texture: decode %s", name)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.Newf("texture: %s: empty %s image", name, format)
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any image to an NRGBA image anchored at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
