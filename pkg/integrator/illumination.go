package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Illuminate computes the direct (non-reflected) color at a surface point using a
// simplified Phong model: a fixed ambient term plus, for every light that is not
// occluded, a diffuse and a specular term. The result is not clamped.
func Illuminate(position, normal core.Vec3, surface core.Surface, scene core.Scene) core.Vec3 {
	color := core.Gray(ambientLevel)

	for _, light := range scene.GetLights() {
		toLight := light.Position.Subtract(position)
		lightDir := toLight.Normalize()

		if inShadow(position, lightDir, toLight.LengthSquared(), scene) {
			continue
		}

		illumination := math.Max(0, lightDir.Dot(normal))
		lit := light.Color.Multiply(illumination * light.Intensity)
		color = color.Add(lit.MultiplyVec(surface.Diffuse(position)))

		// The highlight reuses the diffuse cosine rather than a reflection or half vector
		specular := illumination
		highlight := lit.Multiply(specular * math.Pow(specular, surface.Shininess()))
		color = color.Add(highlight.MultiplyVec(surface.Specular(position)))
	}

	return color
}

// inShadow casts a shadow ray toward a light and reports whether something lies
// closer than the light itself.
func inShadow(position, lightDir core.Vec3, lightDistanceSq float64, scene core.Scene) bool {
	shadowRay := core.NewRay(position.Add(lightDir.Multiply(Epsilon)), lightDir)
	ix, hit := Resolve(shadowRay, scene)
	if !hit {
		return false
	}
	return ix.Distance*ix.Distance < lightDistanceSq
}
