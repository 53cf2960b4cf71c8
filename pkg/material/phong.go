package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Phong is a surface described by diffuse, specular and mirror color sources
// plus a specular exponent. It implements core.Surface.
type Phong struct {
	DiffuseColor  ColorSource
	SpecularColor ColorSource
	Reflectance   ColorSource // Tint applied to mirrored light, zero for no reflection
	Exponent      float64
}

// NewPhong creates a surface with solid colors
func NewPhong(diffuse, specular, reflect core.Vec3, shininess float64) *Phong {
	return &Phong{
		DiffuseColor:  NewSolidColor(diffuse),
		SpecularColor: NewSolidColor(specular),
		Reflectance:   NewSolidColor(reflect),
		Exponent:      shininess,
	}
}

// Diffuse implements core.Surface
func (p *Phong) Diffuse(point core.Vec3) core.Vec3 {
	return p.DiffuseColor.Evaluate(point)
}

// Specular implements core.Surface
func (p *Phong) Specular(point core.Vec3) core.Vec3 {
	return p.SpecularColor.Evaluate(point)
}

// Reflect implements core.Surface
func (p *Phong) Reflect(point core.Vec3) core.Vec3 {
	return p.Reflectance.Evaluate(point)
}

// Shininess implements core.Surface
func (p *Phong) Shininess() float64 {
	return p.Exponent
}

// NewMatte creates a purely diffuse surface with no highlight or reflection
func NewMatte(color core.Vec3) *Phong {
	return NewPhong(color, core.Vec3{}, core.Vec3{}, 1)
}

// NewShiny creates the glossy white surface used for the default scene spheres
func NewShiny() *Phong {
	return NewPhong(core.Gray(1), core.Gray(0.5), core.Gray(0.6), 50)
}

// NewMirror creates a dark surface that reflects nearly everything with the given tint
func NewMirror(tint core.Vec3) *Phong {
	return NewPhong(core.Gray(0.05), core.Gray(0.2), tint, 250)
}

// NewCheckerBoard creates a black and white floor. White checks are mostly matte,
// black checks act as a dim mirror.
func NewCheckerBoard() *Phong {
	return &Phong{
		DiffuseColor:  NewChecker(core.Gray(0), core.Gray(1)),
		SpecularColor: NewSolidColor(core.Gray(1)),
		Reflectance:   NewChecker(core.Gray(0.7), core.Gray(0.1)),
		Exponent:      150,
	}
}
