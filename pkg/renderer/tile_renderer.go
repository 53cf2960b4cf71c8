package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     *geometry.Camera
	integrator integrator.Integrator
	options    core.TracingOptions
	width      int
	height     int
	jitter     bool
}

// NewTileRenderer creates a tile renderer for a frame of the given size.
// options.Scene is the scene every ray is traced against.
func NewTileRenderer(camera *geometry.Camera, integratorInst integrator.Integrator, options core.TracingOptions, width, height int, jitter bool) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		options:    options,
		width:      width,
		height:     height,
		jitter:     jitter,
	}
}

// RenderTileBounds renders pixels within the specified bounds into target.
// random drives sub-pixel jitter and is only consulted when jitter is enabled.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, target *image.RGBA, random *rand.Rand) RenderStats {
	var sampler core.Sampler
	if tr.jitter {
		sampler = core.NewRandomSampler(random)
	}

	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			target.SetRGBA(i, j, ToRGBA(tr.pixelColor(i, j, sampler)))
			stats.TotalSamples += tr.options.SampleCount
		}
	}

	return stats
}

// pixelColor averages the configured samples for pixel (i, j). A single sample
// is traced directly, which gives the same clamped color without the averaging loop.
func (tr *TileRenderer) pixelColor(i, j int, sampler core.Sampler) core.Vec3 {
	if tr.options.SampleCount == 1 {
		ray := tr.camera.GetRay(i, j, tr.width, tr.height, sampler)
		return tr.integrator.RayColor(ray, tr.options).Clamp(0, 1)
	}

	rayAt := func(int) core.Ray {
		return tr.camera.GetRay(i, j, tr.width, tr.height, sampler)
	}
	return tr.integrator.PixelColor(rayAt, tr.options)
}
