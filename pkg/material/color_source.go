package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for surfaces
type ColorSource interface {
	// Evaluate returns the color at a 3D point
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two colors on a grid in the XZ plane
type Checker struct {
	Even  core.Vec3 // Used where floor(x)+floor(z) is even
	Odd   core.Vec3
	Scale float64 // Edge length of one check
}

// NewChecker creates a checker pattern with unit-sized checks
func NewChecker(even, odd core.Vec3) *Checker {
	return &Checker{Even: even, Odd: odd, Scale: 1.0}
}

// Evaluate picks the check color for the point
func (c *Checker) Evaluate(point core.Vec3) core.Vec3 {
	scale := c.Scale
	if scale <= 0 {
		scale = 1.0
	}
	cell := int64(math.Floor(point.X/scale)) + int64(math.Floor(point.Z/scale))
	if cell%2 == 0 {
		return c.Even
	}
	return c.Odd
}
