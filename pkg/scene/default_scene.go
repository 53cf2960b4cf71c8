package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates two shiny spheres on a checkerboard floor lit by four colored lights
func NewDefaultScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Position: core.NewVec3(3, 2, 4),
		LookAt:   core.NewVec3(-1, 0.5, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     60,
	}
	samplingConfig := SamplingConfig{
		Width:           640,
		Height:          480,
		SampleCount:     4,
		ReflectionLimit: 5,
	}

	s := NewScene("default", cameraConfig, samplingConfig)

	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.NewCheckerBoard()))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 1, -0.25), 1.0, material.NewShiny()))
	s.AddShape(geometry.NewSphere(core.NewVec3(-1, 0.5, 1.5), 0.5, material.NewShiny()))

	s.AddLight(core.NewVec3(-2, 2.5, 0), core.NewVec3(0.49, 0.07, 0.07), 1.0)
	s.AddLight(core.NewVec3(1.5, 2.5, 1.5), core.NewVec3(0.07, 0.07, 0.49), 1.0)
	s.AddLight(core.NewVec3(1.5, 2.5, -1.5), core.NewVec3(0.07, 0.49, 0.071), 1.0)
	s.AddLight(core.NewVec3(0, 3.5, 0), core.NewVec3(0.21, 0.21, 0.35), 1.0)

	return s
}

// NewSphereScene creates a single white matte sphere under one overhead white light
func NewSphereScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Position: core.NewVec3(0, 3, 4),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	}
	samplingConfig := SamplingConfig{
		Width:           320,
		Height:          240,
		SampleCount:     1,
		ReflectionLimit: 0,
	}

	s := NewScene("sphere", cameraConfig, samplingConfig)
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewMatte(core.Gray(1))))
	s.AddLight(core.NewVec3(0, 10, 0), core.Gray(1), 1.0)
	return s
}

// NewMirrorsScene creates a red sphere between two parallel mirrors facing each other.
// Every reflection bounces back and forth until the reflection limit stops it.
func NewMirrorsScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Position: core.NewVec3(0.5, 0.6, 1.5),
		LookAt:   core.NewVec3(0, 0.5, -2),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     70,
	}
	samplingConfig := SamplingConfig{
		Width:           480,
		Height:          320,
		SampleCount:     2,
		ReflectionLimit: 8,
	}

	s := NewScene("mirrors", cameraConfig, samplingConfig)

	mirror := material.NewMirror(core.NewVec3(0.85, 0.9, 0.85))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1), mirror))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), mirror))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), material.NewCheckerBoard()))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0.25, 0), 0.75, material.NewPhong(
		core.NewVec3(0.8, 0.1, 0.1), core.Gray(0.6), core.Gray(0.2), 80)))

	s.AddLight(core.NewVec3(1, 3, 0.5), core.Gray(0.9), 1.0)
	s.AddLight(core.NewVec3(-2, 2, -1), core.NewVec3(0.2, 0.2, 0.4), 1.0)

	return s
}
