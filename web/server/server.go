package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/renderer"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
)

const (
	minImageSize = 16
	maxImageSize = 2000
	maxSamples   = 4096
	maxDepth     = 64
	consoleSize  = 64
)

// Server renders built-in scenes on request
type Server struct {
	port    int
	renders atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string  `json:"scene"`      // Scene ID from the catalog
	Width      int     `json:"width"`      // Image width
	Height     int     `json:"height"`     // Image height
	Samples    int     `json:"samples"`    // Samples per pixel
	MaxDepth   int     `json:"maxDepth"`   // Maximum bounce depth
	Integrator string  `json:"integrator"` // "path" or "direct"
	Seed       uint64  `json:"seed"`
	Time       float64 `json:"time"`   // Orbit time for the demo camera
	Format     string  `json:"format"` // "png" or "json"
}

// RenderResponse is returned for format=json
type RenderResponse struct {
	Scene     string           `json:"scene"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int64   `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	Tiles          int     `json:"tiles"`
	Workers        int     `json:"workers"`
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleRender renders one frame and returns it as PNG or JSON
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	consoleChan := make(chan ConsoleMessage, consoleSize)
	logger := NewWebLogger(renderID, consoleChan)

	var cameraOverrides []geometry.CameraConfig
	if req.Scene == "demo" {
		cameraOverrides = append(cameraOverrides, scene.DemoOrbitCamera(req.Time))
	}
	sceneObj, err := scene.ByName(req.Scene, cameraOverrides...)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	config := renderer.DefaultConfig()
	config.Width = req.Width
	config.Height = req.Height
	config.SamplesPerPixel = req.Samples
	config.MaxDepth = req.MaxDepth
	config.Integrator = req.Integrator
	config.Seed = req.Seed

	start := time.Now()
	bvhStats := sceneObj.BuildBVH(config.Seed)
	logger.Printf("Scene %q: %d primitives, BVH depth %d\n", sceneObj.Name, sceneObj.PrimitiveCount(), bvhStats.MaxDepth)

	raytracer, err := renderer.NewRaytracer(sceneObj, config, logger)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, renderer.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	img, stats, err := raytracer.Render(nil)
	if err != nil {
		logger.Printf("Error: %v\n", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	if req.Format == "json" {
		imageData, err := s.imageToBase64PNG(img)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
			return
		}
		writeJSON(w, http.StatusOK, RenderResponse{
			Scene:     sceneObj.Name,
			ImageData: imageData,
			Stats: Stats{
				TotalPixels:    stats.TotalPixels,
				TotalSamples:   int64(stats.TotalSamples),
				AverageSamples: stats.AverageSamples,
				Tiles:          stats.Tiles,
				Workers:        stats.Workers,
			},
			Console:   drain(consoleChan),
			ElapsedMs: time.Since(start).Milliseconds(),
		})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:      strings.ToLower(strings.TrimSpace(query.Get("scene"))),
		Integrator: query.Get("integrator"),
		Format:     query.Get("format"),
	}
	if req.Scene == "" {
		req.Scene = "demo"
	}
	if req.Integrator == "" {
		req.Integrator = "path"
	}
	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "json":
	default:
		return nil, fmt.Errorf("format must be png or json, got: %s", req.Format)
	}

	defaults := renderer.DefaultConfig()
	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", defaults.SamplesPerPixel, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", defaults.MaxDepth, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.Time, err = parseFloatParam(query, "time", 0, -1e6, 1e6); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", int(defaults.Seed), 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = uint64(seed)

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Samples > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleSceneConfig returns the default render settings and request limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "demo"
	}
	if _, err := scene.ByName(sceneName); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	defaults := renderer.DefaultConfig()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"samples":    defaults.SamplesPerPixel,
			"maxDepth":   defaults.MaxDepth,
			"integrator": defaults.Integrator,
			"seed":       defaults.Seed,
			"fovDegrees": defaults.FOVDegrees,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"samples":  map[string]int{"min": 1, "max": maxSamples},
			"maxDepth": map[string]int{"min": 0, "max": maxDepth},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
