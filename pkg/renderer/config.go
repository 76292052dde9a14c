package renderer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid render config")

// Config contains rendering configuration
type Config struct {
	Width           int        `json:"width"`
	Height          int        `json:"height"`
	SamplesPerPixel int        `json:"samplesPerPixel"` // Number of rays per pixel
	MaxDepth        int        `json:"maxDepth"`        // Maximum ray bounce depth
	ShadowBias      float64    `json:"shadowBias"`
	Background      [3]float64 `json:"background"` // RGB, converted to a spectrum
	Ambient         float64    `json:"ambient"`
	FOVDegrees      float64    `json:"fovDegrees"` // Vertical field of view
	TileSize        int        `json:"tileSize"`
	NumWorkers      int        `json:"numWorkers"` // 0 = use all CPU cores
	Seed            uint64     `json:"seed"`
	Integrator      string     `json:"integrator"` // "path" or "direct"
	Backend         string     `json:"backend"`    // "cpu" or "gpu"
}

// DefaultConfig returns the reference rendering constants
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		SamplesPerPixel: 16,
		MaxDepth:        3,
		ShadowBias:      1e-4,
		Background:      [3]float64{0, 0, 0},
		Ambient:         0.1,
		FOVDegrees:      60,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
		Integrator:      "path",
		Backend:         string(BackendCPU),
	}
}

// LoadConfig reads a JSON file over the defaults. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, config.Validate()
}

// Validate checks the configuration for values the renderer cannot use
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	case c.ShadowBias < 0:
		return fmt.Errorf("%w: shadow bias %g must not be negative", ErrInvalidConfig, c.ShadowBias)
	case c.FOVDegrees <= 0 || c.FOVDegrees >= 180:
		return fmt.Errorf("%w: field of view %g must be in (0, 180)", ErrInvalidConfig, c.FOVDegrees)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count %d must not be negative", ErrInvalidConfig, c.NumWorkers)
	}
	if _, err := c.newIntegrator(); err != nil {
		return err
	}
	return nil
}

// FOVScale returns tan(fov/2), the image plane half-height at unit distance
func (c Config) FOVScale() float64 {
	return math.Tan(c.FOVDegrees * math.Pi / 180 / 2)
}

// IntegratorConfig converts the render settings into shading constants
func (c Config) IntegratorConfig() integrator.Config {
	return integrator.Config{
		MaxDepth:   c.MaxDepth,
		ShadowBias: c.ShadowBias,
		Background: core.SpectrumFromRGB(core.NewVec3(c.Background[0], c.Background[1], c.Background[2])),
		Ambient:    core.NewSpectrum(c.Ambient),
	}
}

func (c Config) newIntegrator() (integrator.Integrator, error) {
	switch strings.ToLower(c.Integrator) {
	case "", "path":
		return integrator.NewSpectralPathIntegrator(c.IntegratorConfig()), nil
	case "direct":
		return integrator.NewDirectLightingIntegrator(c.IntegratorConfig()), nil
	default:
		return nil, fmt.Errorf("%w: unknown integrator %q", ErrInvalidConfig, c.Integrator)
	}
}
