package integrator

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const (
	// Epsilon is how far secondary rays start along their direction to avoid
	// re-intersecting the surface they leave.
	Epsilon = 0.001

	// ambientLevel is the minimal light every lit point receives
	ambientLevel = 0.01

	// depthLimitAttenuation scales the local color of a hit at the reflection limit,
	// standing in for the unresolved reflections beyond it.
	depthLimitAttenuation = 0.5
)

// ErrNilSurface is the panic value (wrapped) when a hit object has no surface
var ErrNilSurface = errors.New("integrator: scene object has no surface")

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor traces a single ray from depth 0 and returns its unclamped color
	RayColor(ray core.Ray, options core.TracingOptions) core.Vec3

	// PixelColor averages options.SampleCount clamped traces of the rays returned by rayAt
	PixelColor(rayAt func(sample int) core.Ray, options core.TracingOptions) core.Vec3
}

// RecursiveIntegrator implements Whitted-style recursive ray tracing:
// Phong direct lighting with hard shadows plus mirror reflection.
// It holds no state and is safe for concurrent use.
type RecursiveIntegrator struct{}

// NewRecursiveIntegrator creates a new recursive integrator
func NewRecursiveIntegrator() *RecursiveIntegrator {
	return &RecursiveIntegrator{}
}

// RayColor implements Integrator
func (ri *RecursiveIntegrator) RayColor(ray core.Ray, options core.TracingOptions) core.Vec3 {
	return Trace(ray, options, 0)
}

// PixelColor implements Integrator
func (ri *RecursiveIntegrator) PixelColor(rayAt func(sample int) core.Ray, options core.TracingOptions) core.Vec3 {
	return SampleRays(rayAt, options)
}
