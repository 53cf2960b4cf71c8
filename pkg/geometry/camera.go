package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	Position core.Vec3 // Eye position
	LookAt   core.Vec3 // Point the camera looks at
	Up       core.Vec3 // World up direction
	VFov     float64   // Vertical field of view in degrees
}

// Camera generates primary rays for raster positions.
// Move and Rotate must not be called while a frame is being rendered.
type Camera struct {
	position core.Vec3
	forward  core.Vec3
	worldUp  core.Vec3
	vfov     float64
	dirty    bool
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	up := config.Up
	if up.LengthSquared() == 0 {
		up = core.NewVec3(0, 1, 0)
	}
	vfov := config.VFov
	if vfov <= 0 || vfov >= 180 {
		vfov = 45
	}
	return &Camera{
		position: config.Position,
		forward:  config.LookAt.Subtract(config.Position).Normalize(),
		worldUp:  up.Normalize(),
		vfov:     vfov,
	}
}

// Position returns the eye position
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// Direction returns the unit viewing direction
func (c *Camera) Direction() core.Vec3 {
	return c.forward
}

// IsDirty reports whether the camera moved since the last ClearDirty.
// A dirty camera means the frame needs to be redrawn.
func (c *Camera) IsDirty() bool {
	return c.dirty
}

// ClearDirty marks the current camera state as drawn
func (c *Camera) ClearDirty() {
	c.dirty = false
}

// basis returns the camera's right and up vectors
func (c *Camera) basis() (right, up core.Vec3) {
	right = c.forward.Cross(c.worldUp).Normalize()
	up = right.Cross(c.forward)
	return right, up
}

// GetRay returns a unit-direction ray through pixel (x, y) of a width x height raster,
// with y growing downwards. The sampler picks the position inside the pixel; a nil
// sampler shoots through the pixel center.
func (c *Camera) GetRay(x, y, width, height int, sampler core.Sampler) core.Ray {
	right, up := c.basis()

	halfHeight := math.Tan(c.vfov * math.Pi / 360)
	halfWidth := halfHeight * float64(width) / float64(height)

	offset := core.NewVec2(0.5, 0.5)
	if sampler != nil {
		offset = sampler.Get2D()
	}

	u := (2*(float64(x)+offset.X)/float64(width) - 1) * halfWidth
	v := (1 - 2*(float64(y)+offset.Y)/float64(height)) * halfHeight

	direction := c.forward.Add(right.Multiply(u)).Add(up.Multiply(v)).Normalize()
	return core.NewRay(c.position, direction)
}

// Move translates the camera. The delta is given in camera space:
// X is right, Y is up and Z is forward.
func (c *Camera) Move(delta core.Vec3) {
	if delta.LengthSquared() == 0 {
		return
	}
	right, up := c.basis()
	c.position = c.position.
		Add(right.Multiply(delta.X)).
		Add(up.Multiply(delta.Y)).
		Add(c.forward.Multiply(delta.Z))
	c.dirty = true
}

// Rotate turns the camera by yaw radians around the world up axis (positive turns left)
// and pitch radians around its right axis (positive looks up). Pitch that would align
// the view with the up axis is ignored.
func (c *Camera) Rotate(yaw, pitch float64) {
	if yaw == 0 && pitch == 0 {
		return
	}

	forward := c.forward.RotateAround(c.worldUp, yaw).Normalize()

	if pitch != 0 {
		right := forward.Cross(c.worldUp).Normalize()
		pitched := forward.RotateAround(right, pitch).Normalize()
		if math.Abs(pitched.Dot(c.worldUp)) < 0.999 {
			forward = pitched
		}
	}

	c.forward = forward
	c.dirty = true
}
