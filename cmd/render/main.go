package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"quaternion-matrix/internal/batch"
	"quaternion-matrix/internal/config"
	"quaternion-matrix/internal/scene"
	"quaternion-matrix/internal/texture"
	"quaternion-matrix/internal/viewmatrix"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: turntable)")
	texPath := flag.String("texture", "", "TGA/PNG/JPEG texture for the main cube")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 24)")
	axis := flag.String("axis", "", "Turntable axis as x,y,z (default: 0,1,0)")
	tilt := flag.Float64("tilt", config.DefaultTiltDeg, "Camera tilt in degrees")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file; -tilt only when given explicitly.
	flags := config.Flags{
		OutputDir: *outputDir,
		Texture:   *texPath,
		Frames:    *frames,
		Axis:      *axis,
		Workers:   *workers,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "tilt" {
			flags.TiltDeg = tilt
		}
	})
	if err := cfg.Resolve(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	meshes, err := scene.Flatten(scene.Default(cfg.Texture))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	texCache := texture.NewCache(func(path string, err error) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	})

	fmt.Printf("Quaternion turntable → WebP\n")
	fmt.Printf("Frames: %d, Axis: %v, Tilt: %.1f°, Workers: %d\n", cfg.Frames, cfg.AxisVec(), *cfg.TiltDeg, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results := batch.Run(ctx, batch.Config{
		OutputDir: cfg.OutputDir,
		Meshes:    meshes,
		Turntable: viewmatrix.Turntable{
			Axis:   cfg.AxisVec(),
			Tilt:   cfg.Tilt(),
			Frames: cfg.Frames,
		},
		TexResolver: texCache,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Progress:    os.Stdout,
	})

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	// Count results
	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, r := range failed[:min(len(failed), 20)] {
			fmt.Printf("  %s: %s\n", r.Image, r.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
