package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3    // A point on the plane
	Norm     core.Vec3    // Unit normal, the same on both sides
	Material core.Surface // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.Surface) *Plane {
	return &Plane{
		Point:    point,
		Norm:     normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (float64, bool) {
	denominator := ray.Direction.Dot(p.Norm)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return 0, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Norm) / denominator
	if t < tMin || t > tMax {
		return 0, false
	}

	return t, true
}

// Normal returns the plane normal, which does not depend on the point
func (p *Plane) Normal(point core.Vec3) core.Vec3 {
	return p.Norm
}

// Surface returns the plane's material
func (p *Plane) Surface() core.Surface {
	return p.Material
}
