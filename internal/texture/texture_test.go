package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformTGA builds an uncompressed 24-bit true-color TGA of one color.
func uniformTGA(w, h int, c color.NRGBA) []byte {
	hdr := []byte{
		0, 0, 2, // no id, no color map, true-color
		0, 0, 0, 0, 0, // color map spec
		0, 0, 0, 0, // origin
		byte(w), byte(w >> 8), byte(h), byte(h >> 8),
		24, 0x20, // bits per pixel, top-left origin
	}
	var buf bytes.Buffer
	buf.Write(hdr)
	for i := 0; i < w*h; i++ {
		buf.Write([]byte{c.B, c.G, c.R})
	}
	return buf.Bytes()
}

func pngBytes(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeTGA(t *testing.T) {
	img, err := Decode(uniformTGA(4, 2, color.NRGBA{R: 200, G: 10, B: 30, A: 255}), "skin.TGA")
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	require.Equal(t, []uint8{200, 10, 30, 255}, img.Pix[:4])
	require.Equal(t, []uint8{200, 10, 30, 255}, img.Pix[len(img.Pix)-4:])
}

func TestDecodePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 3, 5, 5))
	src.Set(2, 3, color.RGBA{R: 255, A: 255})
	img, err := Decode(pngBytes(t, src), "skin.png")
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	require.Equal(t, []uint8{255, 0, 0, 255}, img.Pix[:4])
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("not an image"), "junk.png")
	require.Error(t, err)
	require.Contains(t, err.Error(), "texture: decode junk.png")

	_, err = LoadTexture(filepath.Join(t.TempDir(), "missing.tga"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "texture: read")
}

func TestCache(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	require.NoError(t, os.WriteFile(good, pngBytes(t, image.NewNRGBA(image.Rect(0, 0, 2, 2))), 0644))
	missing := filepath.Join(dir, "missing.png")

	var mu sync.Mutex
	var failures []string
	c := NewCache(func(path string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failures = append(failures, path)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NotNil(t, c.Resolve(good))
			assert.Nil(t, c.Resolve(missing))
		}()
	}
	wg.Wait()

	require.Equal(t, 2, c.Len())
	require.Equal(t, []string{missing}, failures)
	require.Same(t, c.Resolve(good), c.Resolve(good))
}
