package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/loaders"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
	"github.com/df07/go-spectral-pathtracer/pkg/renderer"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName  string
	configPath string
	meshPath   string
	outputDir  string
	frames     int
	orbitTime  float64
	listScenes bool
	help       bool
	config     renderer.Config
}

func main() {
	if err := run(os.Args[1:], os.Stdout, core.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line. Render settings given as flags override
// the config file, which in turn overrides the defaults.
func parseFlags(args []string, stdout io.Writer) (*options, error) {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stdout)

	opts := &options{}
	defaults := renderer.DefaultConfig()

	fs.StringVar(&opts.sceneName, "scene", "demo", "Scene to render (see -list)")
	fs.StringVar(&opts.configPath, "config", "", "JSON render config file")
	fs.StringVar(&opts.meshPath, "mesh", "", "PLY mesh to place in the middle of the scene")
	fs.StringVar(&opts.outputDir, "output", "output", "Directory for rendered PNG files")
	fs.IntVar(&opts.frames, "frames", 1, "Number of frames around the demo orbit")
	fs.Float64Var(&opts.orbitTime, "time", 0, "Orbit time in seconds for the demo camera")
	fs.BoolVar(&opts.listScenes, "list", false, "List available scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	width := fs.Int("width", defaults.Width, "Image width")
	height := fs.Int("height", defaults.Height, "Image height")
	spp := fs.Int("spp", defaults.SamplesPerPixel, "Samples per pixel")
	depth := fs.Int("depth", defaults.MaxDepth, "Maximum bounce depth")
	fov := fs.Float64("fov", defaults.FOVDegrees, "Vertical field of view in degrees")
	workers := fs.Int("workers", defaults.NumWorkers, "Number of parallel workers (0 = auto-detect CPU count)")
	seed := fs.Uint64("seed", defaults.Seed, "Random seed")
	integ := fs.String("integrator", defaults.Integrator, "Integrator: 'path' or 'direct'")
	backend := fs.String("backend", defaults.Backend, "Compute backend: 'cpu' or 'gpu'")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.config = defaults
	if opts.configPath != "" {
		loaded, err := renderer.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		opts.config = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			opts.config.Width = *width
		case "height":
			opts.config.Height = *height
		case "spp":
			opts.config.SamplesPerPixel = *spp
		case "depth":
			opts.config.MaxDepth = *depth
		case "fov":
			opts.config.FOVDegrees = *fov
		case "workers":
			opts.config.NumWorkers = *workers
		case "seed":
			opts.config.Seed = *seed
		case "integrator":
			opts.config.Integrator = *integ
		case "backend":
			opts.config.Backend = *backend
		}
	})

	if opts.frames < 1 {
		return nil, fmt.Errorf("frames must be at least 1, got %d", opts.frames)
	}
	return opts, opts.config.Validate()
}

func run(args []string, stdout io.Writer, logger core.Logger) error {
	opts, err := parseFlags(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.help {
		fmt.Fprintln(stdout, "Spectral Path Tracer")
		fmt.Fprintln(stdout, "Usage: pathtracer [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Run with -list to see the available scenes.")
		fmt.Fprintln(stdout, "Output will be saved to <output>/<scene>/render_<timestamp>.png")
		return nil
	}

	if opts.listScenes {
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(stdout, "  %-12s %s\n", info.ID, info.Description)
		}
		return nil
	}

	backend, err := renderer.SelectBackend(opts.config.Backend)
	if err != nil {
		logger.Printf("Warning: %v, using %s\n", err, backend)
	}

	sceneID := strings.ToLower(strings.TrimSpace(opts.sceneName))
	for frame := 0; frame < opts.frames; frame++ {
		if err := renderFrame(opts, sceneID, frame, logger); err != nil {
			return err
		}
	}
	return nil
}

// frameCamera returns the camera override for a frame, if the scene has one.
// Only the demo scene orbits; other scenes keep their own camera.
func frameCamera(sceneID string, opts *options, frame int) []geometry.CameraConfig {
	if sceneID != "demo" {
		return nil
	}
	t := opts.orbitTime + 2*math.Pi*float64(frame)/float64(opts.frames)
	return []geometry.CameraConfig{scene.DemoOrbitCamera(t)}
}

// meshScale is the mesh size relative to the largest scene extent
const meshScale = 0.3

// addMesh loads a PLY file and places it, grey and diffuse, at the centre of
// the scene bounds
func addMesh(s *scene.Scene, path string, logger core.Logger) error {
	mesh, err := loaders.LoadPLY(path)
	if err != nil {
		return err
	}

	bounds := s.Bounds()
	extent := bounds.Size()
	mesh.Fit(bounds.Center(), meshScale*max(extent.X, extent.Y, extent.Z))

	grey := core.NewSpectrum(0.7)
	for _, tri := range mesh.Triangles(grey, material.NewLambertian(grey)) {
		s.Add(tri)
	}
	logger.Printf("Loaded mesh %s: %d vertices, %d triangles\n", path, len(mesh.Vertices), len(mesh.Faces)/3)
	return nil
}

func renderFrame(opts *options, sceneID string, frame int, logger core.Logger) error {
	s, err := scene.ByName(sceneID, frameCamera(sceneID, opts, frame)...)
	if err != nil {
		return err
	}

	if opts.meshPath != "" {
		if err := addMesh(s, opts.meshPath, logger); err != nil {
			return err
		}
	}

	bvhStart := time.Now()
	bvhStats := s.BuildBVH(opts.config.Seed)
	logger.Printf("Scene %q: %d primitives, %d lights, BVH %d nodes (depth %d) built in %v\n",
		s.Name, s.PrimitiveCount(), len(s.Lights), bvhStats.TotalNodes, bvhStats.MaxDepth, time.Since(bvhStart))

	rt, err := renderer.NewRaytracer(s, opts.config, logger)
	if err != nil {
		return err
	}

	img, stats, err := rt.Render(nil)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Average luminance: %.4f, %d samples\n", renderer.CalculateAverageLuminance(img), stats.TotalSamples)

	outputDir := filepath.Join(opts.outputDir, sceneID)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("render_%s.png", timestamp)
	if opts.frames > 1 {
		name = fmt.Sprintf("render_%s_%03d.png", timestamp, frame)
	}
	filename := filepath.Join(outputDir, name)

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}
