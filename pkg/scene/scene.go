package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// It must not be modified while a frame is being rendered.
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Shapes         []geometry.Shape // Objects in the scene
	Lights         []core.Light     // Point lights in the scene
	SamplingConfig SamplingConfig
}

// SamplingConfig is the rendering configuration a scene recommends
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SampleCount     int // Number of traces averaged per pixel
	ReflectionLimit int // Maximum mirror bounce depth
}

// NewScene creates an empty scene looking through the given camera
func NewScene(name string, cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Shapes:         make([]geometry.Shape, 0),
		Lights:         make([]core.Light, 0),
		SamplingConfig: samplingConfig,
	}
}

// AddShape adds an object to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(position, color core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, core.Light{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	})
}

// GetLights implements core.Scene
func (s *Scene) GetLights() []core.Light {
	return s.Lights
}

// GetIntersections implements core.Scene with a linear scan over every shape.
// A ray that hits nothing does not allocate.
func (s *Scene) GetIntersections(ray core.Ray) []core.Intersection {
	var hits []core.Intersection
	for _, shape := range s.Shapes {
		if distance, ok := shape.Hit(ray, 0, math.Inf(1)); ok {
			hits = append(hits, core.Intersection{Object: shape, Distance: distance})
		}
	}
	return hits
}

// GetPrimitiveCount returns the total number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
