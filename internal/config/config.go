package config

import (
	"encoding/json"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"quaternion-matrix/mathutil"
)

// DefaultTiltDeg tilts the turntable towards the camera so the top face shows.
const DefaultTiltDeg = 20.0

// Config holds output paths and render settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`
	Texture   string `json:"texture"`

	// Turntable
	Frames  int        `json:"frames"`
	Axis    [3]float64 `json:"axis"`
	TiltDeg *float64   `json:"tilt_deg"` // nil means DefaultTiltDeg

	// Render settings
	RenderSize  int `json:"render_size"`
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Texture   string
	Frames    int
	Axis      string // "x,y,z"
	TiltDeg   *float64
	Workers   int
}

// Resolve applies CLI flags over the file values, then fills in defaults for
// anything still unset.
func (c *Config) Resolve(flags Flags) error {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Axis != "" {
		axis, err := ParseAxis(flags.Axis)
		if err != nil {
			return err
		}
		c.Axis = axis
	}
	if flags.TiltDeg != nil {
		tilt := *flags.TiltDeg
		c.TiltDeg = &tilt
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "turntable"
	}
	if c.Frames <= 0 {
		c.Frames = 24
	}
	if c.TiltDeg == nil {
		tilt := DefaultTiltDeg
		c.TiltDeg = &tilt
	}
	if c.Axis == ([3]float64{}) {
		c.Axis = [3]float64{0, 1, 0}
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return nil
}

// AxisVec returns the turntable axis as a vector.
func (c *Config) AxisVec() mathutil.Vec3d {
	return mathutil.NewVec3(c.Axis[:])
}

// Tilt returns the resolved tilt in radians.
func (c *Config) Tilt() float64 {
	if c.TiltDeg == nil {
		return mathutil.Deg2Rad(DefaultTiltDeg)
	}
	return mathutil.Deg2Rad(*c.TiltDeg)
}

// ParseAxis parses "x,y,z" into a non-zero axis.
func ParseAxis(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, errors.Newf("config: axis %q: want x,y,z", s)
	}
	var axis [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, errors.Wrapf(err, "config: axis %q", s)
		}
		axis[i] = v
	}
	if axis == ([3]float64{}) {
		return [3]float64{}, errors.Newf("config: axis %q has zero length", s)
	}
	return axis, nil
}
