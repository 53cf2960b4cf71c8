package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// MockObject implements core.SceneObject for testing
type MockObject struct {
	normal  core.Vec3
	surface core.Surface
}

func (m *MockObject) Normal(point core.Vec3) core.Vec3 { return m.normal }
func (m *MockObject) Surface() core.Surface           { return m.surface }

// MockScene returns a fixed intersection list for every ray
type MockScene struct {
	lights        []core.Light
	intersections []core.Intersection
}

func (m *MockScene) GetLights() []core.Light { return m.lights }
func (m *MockScene) GetIntersections(ray core.Ray) []core.Intersection {
	return m.intersections
}

// CountingScene counts intersection queries made against the wrapped scene
type CountingScene struct {
	core.Scene
	calls int
}

func (c *CountingScene) GetIntersections(ray core.Ray) []core.Intersection {
	c.calls++
	return c.Scene.GetIntersections(ray)
}

// newEmptyScene creates a scene with no shapes or lights
func newEmptyScene() *scene.Scene {
	return scene.NewScene("test", geometry.CameraConfig{
		Position: core.NewVec3(0, 0, 5),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	}, scene.SamplingConfig{Width: 8, Height: 8, SampleCount: 1})
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
