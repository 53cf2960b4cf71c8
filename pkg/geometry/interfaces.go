package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Shape is a scene object that can be hit by rays
type Shape interface {
	core.SceneObject

	// Hit returns the nearest ray parameter t in [tMin, tMax] where the ray meets the shape
	Hit(ray core.Ray, tMin, tMax float64) (float64, bool)
}
