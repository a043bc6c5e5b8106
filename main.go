package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-scanline-raytracer/pkg/config"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/integrator"
	"github.com/df07/go-scanline-raytracer/pkg/output"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, renders the selected scene and prints a summary to stdout
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags config.Flags
	configPath := fs.String("config", "", "JSON config file; flags override its values")
	fs.StringVar(&flags.Scene, "scene", "", "Scene id (see -list), default "+config.DefaultScene)
	fs.IntVar(&flags.Width, "width", 0, "Image width in pixels; height follows the scene aspect ratio")
	fs.IntVar(&flags.SamplesPerPixel, "samples", 0, "Samples per pixel")
	fs.IntVar(&flags.MaxDepth, "depth", 0, "Maximum bounce depth")
	fs.IntVar(&flags.Workers, "workers", 0, "Worker goroutines (default: logical CPU count)")
	fs.Int64Var(&flags.Seed, "seed", 0, "Random seed for scene construction and deterministic mode")
	fs.BoolVar(&flags.Deterministic, "deterministic", false, "Reseed per row so output is identical across runs and worker counts")
	fs.BoolVar(&flags.NoBVH, "no-bvh", false, "Intersect a flat list instead of a BVH")
	fs.StringVar(&flags.Output, "output", "", "Output file (.png or .webp)")
	fs.IntVar(&flags.PreviewSize, "preview", 0, "Also write a thumbnail with this longest side")
	fs.StringVar(&flags.Texture, "texture", "", "Image file for textured scenes (png, jpeg, tga, webp)")
	list := fs.Bool("list", false, "List available scenes and exit")
	verbose := fs.Bool("v", false, "Verbose (debug) logging")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Scanline Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		printScenes(stderr)
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Output defaults to output/<scene>/render_<timestamp>.png")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		printScenes(stdout)
		return nil
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var cfg config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Resolve(flags, time.Now())
	if err := cfg.Validate(); err != nil {
		return err
	}

	result, err := render(ctx, cfg, logger)
	if err != nil {
		return err
	}

	printSummary(stdout, result)
	return nil
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, group := range scene.ListSceneGroups() {
		fmt.Fprintf(w, "  %s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Fprintf(w, "    %-18s %s\n", info.ID, info.Description)
		}
	}
}

// renderResult collects everything the summary reports
type renderResult struct {
	Config     config.Config
	Scene      string
	Primitives int
	BVH        *geometry.BVHStats
	Stats      renderer.RenderStats
	Setup      time.Duration
	Save       time.Duration
	Luminance  float64
	Output     string
	Thumbnail  string
	System     config.SystemInfo
}

// render builds the scene, traces it and writes the output files
func render(ctx context.Context, cfg config.Config, logger *slog.Logger) (*renderResult, error) {
	result := &renderResult{Config: cfg, Output: cfg.Output}

	system, err := config.DetectSystem()
	if err != nil {
		logger.Debug("host detection incomplete", "error", err)
	}
	result.System = system

	setupStart := time.Now()
	random := rand.New(rand.NewSource(cfg.Seed))
	s, err := scene.Build(cfg.Scene, random, scene.Options{Texture: cfg.Texture})
	if err != nil {
		return nil, &renderer.RenderError{Stage: renderer.StageSetup, Err: err}
	}
	if err := s.Preprocess(random, cfg.BVHEnabled()); err != nil {
		return nil, &renderer.RenderError{Stage: renderer.StageSetup, Err: err}
	}
	result.Setup = time.Since(setupStart)
	result.Scene = s.Name
	result.Primitives = s.GetPrimitiveCount()
	if stats, ok := s.BVHStats(); ok {
		result.BVH = &stats
		logger.Debug("bvh built",
			"interior", stats.InteriorNodes,
			"leaves", stats.LeafNodes,
			"max_depth", stats.MaxDepth,
			"unbounded", stats.UnboundedShapes)
	}
	logger.Info("scene ready", "scene", s.Name, "primitives", result.Primitives, "materials", s.Materials.Len(), "setup", result.Setup)

	rt, err := renderer.NewRaytracer(s, integrator.NewPathTracer(), renderer.Config{
		Width:           cfg.Width,
		Height:          cfg.Height(s.AspectRatio),
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		Workers:         cfg.Workers,
		Deterministic:   cfg.Deterministic,
		Seed:            cfg.Seed,
		Logger:          logger,
		Progress: func(p renderer.Progress) {
			logger.Info("progress",
				"rows", p.RowsDone,
				"total", p.TotalRows,
				"percent", int(p.Fraction()*100),
				"elapsed", p.Elapsed.Round(time.Millisecond))
		},
		ProgressInterval: time.Second,
	})
	if err != nil {
		return nil, err
	}

	img, stats, err := rt.Render(ctx)
	result.Stats = stats
	if err != nil {
		return nil, err
	}

	saveStart := time.Now()
	rgba := img.ToRGBA()
	if err := output.Save(cfg.Output, rgba); err != nil {
		return nil, err
	}
	if cfg.PreviewSize > 0 {
		result.Thumbnail = output.ThumbnailPath(cfg.Output)
		if err := output.Save(result.Thumbnail, output.Thumbnail(rgba, cfg.PreviewSize)); err != nil {
			return nil, err
		}
	}
	result.Save = time.Since(saveStart)
	result.Luminance = renderer.CalculateAverageLuminance(rgba)

	return result, nil
}

func printSummary(w io.Writer, r *renderResult) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Scene:        %s (%d primitives)\n", r.Scene, r.Primitives)
	p.Fprintf(w, "Image:        %dx%d, %d samples/pixel, depth %d\n",
		r.Stats.Width, r.Stats.Height, r.Stats.SamplesPerPixel, r.Config.MaxDepth)
	if r.BVH != nil {
		p.Fprintf(w, "BVH:          %d leaves, depth %d (avg %.1f)\n", r.BVH.LeafNodes, r.BVH.MaxDepth, r.BVH.AvgDepth)
	}
	p.Fprintf(w, "Workers:      %d (rows per worker %v)\n", r.Stats.Workers, r.Stats.RowsPerWorker)
	if r.System.CPUModel != "" {
		p.Fprintf(w, "Host:         %s, %d logical cores, %.1f GiB\n",
			r.System.CPUModel, r.System.LogicalCores, float64(r.System.TotalMemory)/(1<<30))
	}
	p.Fprintf(w, "Setup:        %v\n", r.Setup.Round(time.Millisecond))
	p.Fprintf(w, "Render:       %v\n", r.Stats.RenderDuration.Round(time.Millisecond))
	p.Fprintf(w, "Merge:        %v\n", r.Stats.MergeDuration.Round(time.Microsecond))
	p.Fprintf(w, "Save:         %v\n", r.Save.Round(time.Millisecond))
	p.Fprintf(w, "Samples:      %d (%d/sec)\n", r.Stats.TotalSamples, int64(r.Stats.SamplesPerSecond()))
	p.Fprintf(w, "Luminance:    %.3f\n", r.Luminance)
	p.Fprintf(w, "Saved:        %s\n", r.Output)
	if r.Thumbnail != "" {
		p.Fprintf(w, "Thumbnail:    %s\n", r.Thumbnail)
	}
}
