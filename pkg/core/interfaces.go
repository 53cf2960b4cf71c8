package core

// Surface describes how a point on an object responds to light.
// Implementations must be pure functions of position.
type Surface interface {
	Diffuse(point Vec3) Vec3
	Specular(point Vec3) Vec3
	// Reflect returns the tint applied to light arriving via a mirror bounce
	Reflect(point Vec3) Vec3
	// Shininess is the Phong exponent of the specular term
	Shininess() float64
}

// SceneObject is the part of a scene object the integrator consumes
type SceneObject interface {
	// Normal returns the unit surface normal at a point on the object
	Normal(point Vec3) Vec3
	Surface() Surface
}

// Intersection records where a ray met a scene object.
// Object is a lookup into the scene and is not owned by the caller.
type Intersection struct {
	Object   SceneObject
	Distance float64
}

// Light is a point light source
type Light struct {
	Position  Vec3
	Color     Vec3
	Intensity float64
}

// Scene is the read-only view of a scene needed for tracing
type Scene interface {
	GetLights() []Light
	// GetIntersections returns every intersection of the ray with the scene's objects,
	// in no particular order. Distances are non-negative.
	GetIntersections(ray Ray) []Intersection
}

// TracingOptions controls a trace. Values are validated by the caller before tracing.
type TracingOptions struct {
	SampleCount     int // Trials averaged per pixel, >= 1
	ReflectionLimit int // Maximum mirror bounce depth, >= 0
	Scene           Scene
}
