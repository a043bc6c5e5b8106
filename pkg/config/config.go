// Package config resolves render settings from a JSON file, CLI flags and
// machine defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/output"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultScene           = "random-spheres"
	DefaultWidth           = 400
	DefaultSamplesPerPixel = 50
	DefaultMaxDepth        = 25
)

// Config holds render settings
type Config struct {
	Scene           string `json:"scene"`
	Width           int    `json:"width"`
	SamplesPerPixel int    `json:"samples_per_pixel"`
	MaxDepth        int    `json:"max_depth"`
	Workers         int    `json:"workers"`
	Seed            int64  `json:"seed"`
	Deterministic   bool   `json:"deterministic"`
	UseBVH          *bool  `json:"use_bvh"` // nil means true
	Output          string `json:"output"`
	PreviewSize     int    `json:"preview_size"` // Thumbnail edge in pixels; 0 disables
	Texture         string `json:"texture"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting alone.
type Flags struct {
	Scene           string
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Seed            int64
	Deterministic   bool
	NoBVH           bool
	Output          string
	PreviewSize     int
	Texture         string
}

// Load reads a JSON config file.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flags and fills remaining empty fields with defaults.
// now stamps the default output filename and seeds a zero Seed.
func (c *Config) Resolve(flags Flags, now time.Time) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.SamplesPerPixel > 0 {
		c.SamplesPerPixel = flags.SamplesPerPixel
	}
	if flags.MaxDepth > 0 {
		c.MaxDepth = flags.MaxDepth
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Deterministic {
		c.Deterministic = true
	}
	if flags.NoBVH {
		useBVH := false
		c.UseBVH = &useBVH
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.PreviewSize > 0 {
		c.PreviewSize = flags.PreviewSize
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}

	// Defaults
	if c.Scene == "" {
		c.Scene = DefaultScene
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.SamplesPerPixel <= 0 {
		c.SamplesPerPixel = DefaultSamplesPerPixel
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.Workers <= 0 {
		c.Workers = DetectWorkers()
	}
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	if c.Output == "" {
		timestamp := now.Format("20060102_150405")
		c.Output = filepath.Join("output", c.Scene, fmt.Sprintf("render_%s.png", timestamp))
	}
}

// BVHEnabled reports whether the world should be built as a BVH
func (c *Config) BVHEnabled() bool {
	return c.UseBVH == nil || *c.UseBVH
}

// Validate checks a resolved config
func (c *Config) Validate() error {
	switch {
	case c.Scene == "":
		return fmt.Errorf("%w: empty scene", ErrInvalidConfig)
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalidConfig, c.Width)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	case c.PreviewSize < 0:
		return fmt.Errorf("%w: preview size %d", ErrInvalidConfig, c.PreviewSize)
	}

	if _, err := output.FormatFor(c.Output); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Height derives the image height from the width and a scene aspect ratio
func (c *Config) Height(aspectRatio float64) int {
	if aspectRatio <= 0 {
		return c.Width
	}
	return max(1, int(float64(c.Width)/aspectRatio))
}
