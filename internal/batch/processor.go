package batch

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/cockroachdb/errors"

	"quaternion-matrix/internal/postprocess"
	"quaternion-matrix/internal/raster"
	"quaternion-matrix/internal/scene"
	"quaternion-matrix/internal/texture"
	"quaternion-matrix/internal/viewmatrix"
	"quaternion-matrix/mathutil"
)

// Config holds all shared resources for a turntable run.
type Config struct {
	OutputDir   string
	Meshes      []scene.Mesh // already in scene space
	Turntable   viewmatrix.Turntable
	TexResolver texture.Resolver
	RenderSize  int
	Supersample int
	Workers     int
	Progress    io.Writer // nil disables progress lines
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Angle   float64
	Quat    mathutil.Quatd
	Image   string // path relative to OutputDir
	Success bool
	Error   string
}

// FrameName is the output file name of frame k.
func FrameName(k int) string {
	return fmt.Sprintf("frame_%03d.webp", k)
}

// Run renders every frame of the turntable using a worker pool. Frames not
// started before ctx is cancelled are reported as failed.
func Run(ctx context.Context, cfg Config) []Result {
	total := cfg.Turntable.Frames
	results := make([]Result, total)
	var processed atomic.Int64
	radius := scene.Radius(cfg.Meshes)

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					if p := processed.Load(); p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	frameChan := make(chan int, max(cfg.Workers, 1)*2)
	var wg sync.WaitGroup
	for w := 0; w < max(cfg.Workers, 1); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range frameChan {
				results[k] = processFrame(ctx, cfg, k, radius)
				processed.Add(1)
			}
		}()
	}

	for k := 0; k < total; k++ {
		frameChan <- k
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(ctx context.Context, cfg Config, k int, radius float64) Result {
	res := Result{
		Frame: k,
		Angle: cfg.Turntable.Angle(k),
		Quat:  cfg.Turntable.Orientation(k),
		Image: FrameName(k),
	}
	if err := ctx.Err(); err != nil {
		res.Error = err.Error()
		return res
	}

	img := raster.Render(raster.Frame{
		Meshes:      cfg.Meshes,
		View:        cfg.Turntable.View(k),
		Radius:      radius,
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
	}, cfg.TexResolver)

	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize, cfg.RenderSize)
	}

	if err := writeWebP(filepath.Join(cfg.OutputDir, res.Image), img); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

func writeWebP(path string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "batch: create output dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "batch: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "batch: close %s", path)
		}
	}()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return errors.Wrap(err, "batch: WebP encode")
	}
	return nil
}
