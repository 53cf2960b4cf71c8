package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Resolve returns the nearest intersection of the ray with the scene.
// Any of several equally near intersections may be returned.
func Resolve(ray core.Ray, scene core.Scene) (core.Intersection, bool) {
	intersections := scene.GetIntersections(ray)
	if len(intersections) == 0 {
		return core.Intersection{}, false
	}

	nearest := intersections[0]
	for _, ix := range intersections[1:] {
		if ix.Distance < nearest.Distance {
			nearest = ix
		}
	}
	return nearest, true
}
