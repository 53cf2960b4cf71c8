package renderer

import (
	"context"
	"image"
	"math/rand"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SerialBackend renders the frame one scanline at a time on the calling goroutine
type SerialBackend struct{}

// Name implements Backend
func (b *SerialBackend) Name() string { return "serial" }

// Description implements Backend
func (b *SerialBackend) Description() string {
	return "single goroutine, scanline order"
}

// Draw implements Backend
func (b *SerialBackend) Draw(ctx context.Context, target *image.RGBA, sc *scene.Scene, config Config) (stats FrameStats, err error) {
	if err := checkDraw(target, sc, config); err != nil {
		return FrameStats{}, err
	}

	start := time.Now()
	counter := newCountingScene(sc)
	tr := NewTileRenderer(sc.Camera, integrator.NewRecursiveIntegrator(), config.TracingOptions(counter), config.Width, config.Height, config.Jitter)
	random := rand.New(rand.NewSource(42))

	stats = newFrameStats(b.Name(), config)
	stats.Workers = 1
	defer finishFrameStats(&stats, counter, start)

	logger.Infof("rendering %q %dx%d with %d spp on a single goroutine", sc.Name, config.Width, config.Height, config.SampleCount)

	for y := 0; y < config.Height; y++ {
		if ctx.Err() != nil {
			logger.Warningf("render cancelled at row %d", y)
			return stats, ErrInterrupted
		}

		row, err := b.renderRow(tr, y, config.Width, target, random)
		if err != nil {
			return stats, err
		}
		stats.Add(row)
	}

	return stats, nil
}

func (b *SerialBackend) renderRow(tr *TileRenderer, y, width int, target *image.RGBA, random *rand.Rand) (stats RenderStats, err error) {
	defer recoverTile(y, &err)
	return tr.RenderTileBounds(image.Rect(0, y, width, y+1), target, random), nil
}
