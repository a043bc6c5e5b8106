package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/integrator"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() geometry.Shape
	GetMaterials() *material.Registry
	GetCamera() *geometry.Camera
}

// Config contains rendering configuration
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
	Workers         int // Worker goroutines; <= 0 means runtime.NumCPU()

	// Deterministic reseeds the claiming worker's generator with Seed+row
	// before each row, making output identical across runs and worker
	// counts. Otherwise every worker draws a fresh random seed.
	Deterministic bool
	Seed          int64

	Logger           *slog.Logger
	Progress         func(Progress) // Called periodically from a reporter goroutine
	ProgressInterval time.Duration  // Defaults to 500ms
}

// Raytracer renders a scene into an ImageBuffer using a pool of scanline workers
type Raytracer struct {
	scene      Scene
	integrator integrator.Integrator
	config     Config
	logger     *slog.Logger
}

// NewRaytracer validates config and scene. Problems are reported as a setup-stage RenderError.
func NewRaytracer(scene Scene, integ integrator.Integrator, config Config) (*Raytracer, error) {
	if err := validate(scene, integ, config); err != nil {
		return nil, &RenderError{Stage: StageSetup, Err: err}
	}

	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.ProgressInterval <= 0 {
		config.ProgressInterval = 500 * time.Millisecond
	}

	return &Raytracer{
		scene:      scene,
		integrator: integ,
		config:     config,
		logger:     core.LoggerOrNop(config.Logger),
	}, nil
}

func validate(scene Scene, integ integrator.Integrator, config Config) error {
	switch {
	case config.Width <= 0 || config.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, config.Width, config.Height)
	case config.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, config.SamplesPerPixel)
	case config.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, config.MaxDepth)
	case scene == nil || integ == nil:
		return fmt.Errorf("%w: scene and integrator are required", ErrInvalidConfig)
	case scene.GetWorld() == nil || scene.GetCamera() == nil || scene.GetMaterials() == nil:
		return fmt.Errorf("%w: scene is missing world, camera or materials", ErrInvalidConfig)
	case !scene.GetMaterials().Frozen():
		return fmt.Errorf("%w: material registry must be frozen before rendering", ErrInvalidConfig)
	}
	return nil
}

// Config returns the effective configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render traces every row and merges them into the final image. The image
// is nil when err is non-nil; stats are filled in as far as the render got.
func (rt *Raytracer) Render(ctx context.Context) (*ImageBuffer, RenderStats, error) {
	stats := RenderStats{
		Width:           rt.config.Width,
		Height:          rt.config.Height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Workers:         rt.config.Workers,
	}

	rt.logger.Info("render started",
		"width", rt.config.Width,
		"height", rt.config.Height,
		"samples", rt.config.SamplesPerPixel,
		"depth", rt.config.MaxDepth,
		"workers", rt.config.Workers,
		"deterministic", rt.config.Deterministic)

	start := time.Now()
	rows, rowsPerWorker, err := rt.runWorkers(ctx)
	stats.RenderDuration = time.Since(start)
	stats.RowsPerWorker = rowsPerWorker
	stats.TotalSamples = int64(len(rows)) * int64(rt.config.Width) * int64(rt.config.SamplesPerPixel)
	if err != nil {
		rt.logger.Error("render failed", "error", err)
		return nil, stats, &RenderError{Stage: StageTrace, Err: err}
	}

	mergeStart := time.Now()
	img, err := MergeRows(rt.config.Width, rt.config.Height, rows)
	stats.MergeDuration = time.Since(mergeStart)
	if err != nil {
		rt.logger.Error("merge failed", "error", err)
		return nil, stats, &RenderError{Stage: StageMerge, Err: err}
	}

	rt.logger.Info("render finished",
		"render", stats.RenderDuration,
		"merge", stats.MergeDuration,
		"samples_per_sec", int64(stats.SamplesPerSecond()))

	return img, stats, nil
}

// renderRow traces every pixel of row y and returns its RGB bytes
func (rt *Raytracer) renderRow(y int, random *rand.Rand) []byte {
	width, height := rt.config.Width, rt.config.Height
	world := rt.scene.GetWorld()
	materials := rt.scene.GetMaterials()
	camera := rt.scene.GetCamera()

	// A single column or row still maps into [0, 1]
	uSpan := float64(max(1, width-1))
	vSpan := float64(max(1, height-1))
	scale := 1.0 / float64(rt.config.SamplesPerPixel)

	pixels := make([]byte, width*3)
	for x := 0; x < width; x++ {
		var colorAccum core.Vec3
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			u := (float64(x) + random.Float64()) / uSpan
			v := 1.0 - (float64(y)+random.Float64())/vSpan

			ray := camera.GetRay(u, v, random)
			colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, world, materials, random, rt.config.MaxDepth))
		}

		r, g, b := ColorToRGB(colorAccum.Multiply(scale))
		pixels[x*3] = r
		pixels[x*3+1] = g
		pixels[x*3+2] = b
	}
	return pixels
}
