package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
)

// ErrUnknownScene is returned by ByName for an unregistered scene ID
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type builder func(cameraOverrides ...geometry.CameraConfig) *Scene

type catalogEntry struct {
	description string
	build       builder
}

var builtInScenes = map[string]catalogEntry{
	"demo": {
		description: "Red sphere over a green triangle, ambient light only",
		build:       NewDemoScene,
	},
	"room": {
		description: "Cornell-style room lit by an emissive ceiling panel",
		build:       NewRoomScene,
	},
	"sphere-grid": {
		description: "10x10 grid of diffuse spheres under an area light and a point light",
		build:       NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for id, entry := range builtInScenes {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: entry.description,
		})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// ByName builds the built-in scene with the given ID
func ByName(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	entry, ok := builtInScenes[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return entry.build(cameraOverrides...), nil
}

// titleCase converts an ID to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
