package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sample averages options.SampleCount traces of the same ray.
// Each trace is clamped to [0,1] per channel before it is accumulated.
func Sample(ray core.Ray, options core.TracingOptions) core.Vec3 {
	return SampleRays(func(int) core.Ray { return ray }, options)
}

// SampleRays averages options.SampleCount clamped traces, asking rayAt for the ray of
// each trial. Per-sample jitter is up to rayAt. options.SampleCount must be at least 1.
func SampleRays(rayAt func(sample int) core.Ray, options core.TracingOptions) core.Vec3 {
	var sum core.Vec3
	for i := 0; i < options.SampleCount; i++ {
		c := Trace(rayAt(i), options, 0)
		sum = sum.Add(c.Clamp(0, 1))
	}
	return sum.Multiply(1.0 / float64(options.SampleCount))
}
