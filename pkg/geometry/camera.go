package geometry

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// CameraConfig contains the parameters for a look-at camera
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // World up direction
}

// Camera is a pinhole camera described by its position and orthonormal basis
type Camera struct {
	Position core.Vec3
	Forward  core.Vec3
	Right    core.Vec3
	Up       core.Vec3
}

// NewCamera creates a camera looking from config.Center toward config.LookAt
func NewCamera(config CameraConfig) *Camera {
	forward := config.LookAt.Subtract(config.Center).Normalize()
	right := forward.Cross(config.Up).Normalize()
	up := right.Cross(forward).Normalize()

	return &Camera{
		Position: config.Center,
		Forward:  forward,
		Right:    right,
		Up:       up,
	}
}

// GetRay generates a primary ray through image position (px, py), measured in
// pixels from the top-left corner. scale is tan(fov/2) for the vertical field
// of view.
func (c *Camera) GetRay(px, py float64, width, height int, scale float64) core.Ray {
	aspect := float64(width) / float64(height)
	imageX := (2*(px/float64(width)) - 1) * aspect * scale
	imageY := (1 - 2*(py/float64(height))) * scale

	direction := c.Forward.
		Add(c.Right.Multiply(imageX)).
		Add(c.Up.Multiply(imageY)).
		Normalize()

	return core.NewRay(c.Position, direction)
}
