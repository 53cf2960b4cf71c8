package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds everything a backend needs to draw a frame
type Config struct {
	// Frame dims.
	Width  int
	Height int

	// Traces averaged per pixel.
	SampleCount int

	// Mirror bounces followed before the local color is halved and returned.
	ReflectionLimit int

	// Edge length of the square tiles handed to workers.
	TileSize int

	// Number of parallel workers (0 = use CPU count).
	NumWorkers int

	// Jitter primary rays inside each pixel instead of shooting through its center.
	Jitter bool

	// Backend name, see Backends().
	Backend string
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           640,
		Height:          480,
		SampleCount:     4,
		ReflectionLimit: 5,
		TileSize:        64,
		NumWorkers:      0,
		Jitter:          true,
		Backend:         "parallel",
	}
}

// Merge returns a copy of c with the scene's recommended sampling applied.
// Non-positive scene dimensions and sample counts are ignored. The reflection
// limit is always taken from the scene, zero being a meaningful value.
func (c Config) Merge(sc scene.SamplingConfig) Config {
	if sc.Width > 0 {
		c.Width = sc.Width
	}
	if sc.Height > 0 {
		c.Height = sc.Height
	}
	if sc.SampleCount > 0 {
		c.SampleCount = sc.SampleCount
	}
	if sc.ReflectionLimit >= 0 {
		c.ReflectionLimit = sc.ReflectionLimit
	}
	return c
}

// Validate rejects configurations no backend can render
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SampleCount < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleCount, c.SampleCount)
	}
	if c.ReflectionLimit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidReflectionLimit, c.ReflectionLimit)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTileSize, c.TileSize)
	}
	if _, err := Lookup(c.Backend); err != nil {
		return err
	}
	return nil
}

// TracingOptions returns the per-pixel options for tracing against s
func (c Config) TracingOptions(s core.Scene) core.TracingOptions {
	return core.TracingOptions{
		SampleCount:     c.SampleCount,
		ReflectionLimit: c.ReflectionLimit,
		Scene:           s,
	}
}
