package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DummySurface satisfies core.Surface for shape tests
type DummySurface struct{}

func (DummySurface) Diffuse(point core.Vec3) core.Vec3  { return core.Vec3{} }
func (DummySurface) Specular(point core.Vec3) core.Vec3 { return core.Vec3{} }
func (DummySurface) Reflect(point core.Vec3) core.Vec3  { return core.Vec3{} }
func (DummySurface) Shininess() float64                 { return 1 }

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummySurface{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	distance, isHit := sphere.Hit(ray, 0, math.Inf(1))
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", distance)
	}
}

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummySurface{})

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"front face hit", core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1), true, 2.0},
		{"from inside hits far side", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), true, 1.0},
		{"sphere behind ray", core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 1), false, 0},
		{"leaving the surface misses itself", core.NewVec3(0, 0, 1.001), core.NewVec3(0, 0, 1), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance, isHit := sphere.Hit(core.NewRay(tt.origin, tt.direction), 0, math.Inf(1))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, distance)
			}
		})
	}
}

func TestSphere_Normal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 1, 1), 2.0, DummySurface{})
	normal := sphere.Normal(core.NewVec3(1, 3, 1))
	expected := core.NewVec3(0, 1, 0)
	if normal.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected normal %v, got %v", expected, normal)
	}
}

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), DummySurface{})

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"straight down", core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), true, 1.0},
		{"parallel ray", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), false, 0},
		{"plane behind ray", core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), false, 0},
		{"from below", core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), true, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance, isHit := plane.Hit(core.NewRay(tt.origin, tt.direction), 0, math.Inf(1))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, distance)
			}
		})
	}

	if n := plane.Normal(core.NewVec3(5, 0, 5)); !n.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected normalized plane normal, got %v", n)
	}
}

func TestShapes_Surface(t *testing.T) {
	surface := DummySurface{}
	shapes := []Shape{
		NewSphere(core.Vec3{}, 1, surface),
		NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), surface),
	}
	for _, shape := range shapes {
		if shape.Surface() != surface {
			t.Errorf("Expected %T to return its surface", shape)
		}
	}
}
