package integrator

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Trace returns the color seen along a ray at the given reflection depth.
//
// A ray that escapes the scene is black. Otherwise the hit point is lit directly;
// at depth >= options.ReflectionLimit that local color is halved and returned,
// below it the mirror-reflected color is traced at depth+1 and added.
//
// The ray direction must be unit length: reflection directions are not renormalized.
// A hit object without a surface is a programming error and panics with ErrNilSurface.
func Trace(ray core.Ray, options core.TracingOptions, depth int) core.Vec3 {
	ix, hit := Resolve(ray, options.Scene)
	if !hit {
		return core.Vec3{}
	}

	surface := ix.Object.Surface()
	if surface == nil {
		panic(fmt.Errorf("%w: %T", ErrNilSurface, ix.Object))
	}

	position := ray.At(ix.Distance)
	normal := ix.Object.Normal(position)
	local := Illuminate(position, normal, surface, options.Scene)

	if depth >= options.ReflectionLimit {
		return local.Multiply(depthLimitAttenuation)
	}

	reflectDir := ray.Direction.Reflect(normal)
	return local.Add(reflectionColor(surface, position, reflectDir, options, depth+1))
}

// reflectionColor traces the mirror bounce leaving position and tints it by the surface
func reflectionColor(surface core.Surface, position, direction core.Vec3, options core.TracingOptions, depth int) core.Vec3 {
	ray := core.NewRay(position.Add(direction.Multiply(Epsilon)), direction)
	return surface.Reflect(position).MultiplyVec(Trace(ray, options, depth))
}
