package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ToRGBA converts a color with channels in [0,1] to an opaque 8-bit pixel.
// Out of range channels are clamped; no gamma is applied.
func ToRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

// NewFrame allocates a frame buffer matching the configured dimensions
func NewFrame(config Config) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))
}
