package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/integrator"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
)

// ErrBufferSize is returned when the pixel buffer does not match the image size
var ErrBufferSize = errors.New("pixel buffer size mismatch")

// opaque is the alpha byte of every packed pixel
const opaque = 0xFF000000

// Raytracer renders frames of a scene into packed 32-bit pixels
type Raytracer struct {
	scene      *scene.Scene
	config     Config
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer validates config and creates a raytracer with the integrator it names
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: scene is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	integ, err := config.newIntegrator()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger()
	}

	return &Raytracer{
		scene:      s,
		config:     config,
		integrator: integ,
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Config returns the configuration the raytracer was created with
func (rt *Raytracer) Config() Config {
	return rt.config
}

// RenderPixel estimates the spectral radiance of pixel (x, y). Each sample
// jitters the ray inside the pixel; the random stream depends only on the
// seed and the pixel index.
func (rt *Raytracer) RenderPixel(x, y int, cam *geometry.Camera) core.Spectrum {
	var ps PixelStats
	rt.samplePixel(x, y, cam, &ps)
	return ps.Mean()
}

func (rt *Raytracer) samplePixel(x, y int, cam *geometry.Camera, ps *PixelStats) {
	width, height := rt.config.Width, rt.config.Height
	sampler := core.NewPixelSampler(rt.config.Seed, y*width+x)
	scale := rt.config.FOVScale()

	for s := 0; s < rt.config.SamplesPerPixel; s++ {
		jitter := sampler.Get2D()
		ray := cam.GetRay(float64(x)+jitter.X, float64(y)+jitter.Y, width, height, scale)
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene, sampler, 0))
	}
}

// renderBounds renders the pixels inside bounds into the shared buffer
func (rt *Raytracer) renderBounds(bounds image.Rectangle, pixels []uint32, cam *geometry.Camera) RenderStats {
	stats := RenderStats{Tiles: 1}
	width := rt.config.Width

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var ps PixelStats
			rt.samplePixel(x, y, cam, &ps)
			pixels[y*width+x] = PackPixel(ps.Mean().ToRGB())

			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}
	return stats
}

// RenderImage renders one frame into pixels, row-major with width*height
// entries. cam may be nil to use the scene camera.
func (rt *Raytracer) RenderImage(pixels []uint32, cam *geometry.Camera) (RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	if len(pixels) != width*height {
		return RenderStats{}, fmt.Errorf("%w: got %d pixels, want %dx%d", ErrBufferSize, len(pixels), width, height)
	}
	if cam == nil {
		cam = rt.scene.Camera
	}
	if cam == nil {
		return RenderStats{}, fmt.Errorf("%w: scene %q has no camera", ErrInvalidConfig, rt.scene.Name)
	}
	if rt.scene.BVH == nil {
		rt.logger.Printf("Scene %q has no BVH, using linear intersection\n", rt.scene.Name)
	}

	start := time.Now()
	tiles := NewTileGrid(width, height, rt.config.TileSize)
	pool := NewWorkerPool(rt, rt.config.NumWorkers, len(tiles))
	pool.Start()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: i,
			Pixels: pixels,
			Camera: cam,
		})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var firstErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		stats.merge(result.Stats)
	}
	pool.Stop()

	stats.finalize()
	stats.Duration = time.Since(start)
	if firstErr != nil {
		return stats, firstErr
	}

	rt.logger.Printf("Rendered %dx%d in %v (%d tiles, %d workers, %.1f spp)\n",
		width, height, stats.Duration, stats.Tiles, stats.Workers, stats.AverageSamples)
	return stats, nil
}

// Render renders one frame and returns it as an image
func (rt *Raytracer) Render(cam *geometry.Camera) (*image.RGBA, RenderStats, error) {
	pixels := make([]uint32, rt.config.Width*rt.config.Height)
	stats, err := rt.RenderImage(pixels, cam)
	if err != nil {
		return nil, stats, err
	}
	return ToImage(pixels, rt.config.Width, rt.config.Height), stats, nil
}

// PackPixel converts linear RGB to 0xAARRGGBB with full alpha. Channels are
// clamped to [0, 1] and truncated to 8 bits.
func PackPixel(rgb core.Vec3) uint32 {
	c := rgb.Clamp(0, 1)
	r := uint32(c.X * 255)
	g := uint32(c.Y * 255)
	b := uint32(c.Z * 255)
	return opaque | r<<16 | g<<8 | b
}

// ToImage unpacks a row-major pixel buffer into an RGBA image
func ToImage(pixels []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(p >> 16),
				G: uint8(p >> 8),
				B: uint8(p),
				A: uint8(p >> 24),
			})
		}
	}
	return img
}
