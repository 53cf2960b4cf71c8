package renderer

import (
	"image"
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about a rendered region
type RenderStats struct {
	TotalPixels  int // Total number of pixels rendered
	TotalSamples int // Total number of traces averaged into those pixels
}

// Add accumulates another region's statistics
func (rs *RenderStats) Add(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
}

// FrameStats summarizes a complete frame
type FrameStats struct {
	Backend string
	Width   int
	Height  int

	RenderStats

	// Intersection queries issued against the scene, primary and secondary.
	ResolverCalls int64

	Workers int
	Tiles   int

	// Total render time for entire frame.
	RenderTime time.Duration
}

// AverageSamples returns the mean number of traces per pixel
func (fs FrameStats) AverageSamples() float64 {
	if fs.TotalPixels == 0 {
		return 0
	}
	return float64(fs.TotalSamples) / float64(fs.TotalPixels)
}

// countingScene counts intersection queries made by every worker
type countingScene struct {
	core.Scene
	calls atomic.Int64
}

func newCountingScene(s core.Scene) *countingScene {
	return &countingScene{Scene: s}
}

func (c *countingScene) GetIntersections(ray core.Ray) []core.Intersection {
	c.calls.Add(1)
	return c.Scene.GetIntersections(ray)
}

// CalculateAverageLuminance returns the mean perceptual luminance of an image, in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := core.NewVec3(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
			total += c.Luminance()
		}
	}

	return total / float64(pixels)
}
