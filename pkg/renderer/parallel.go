package renderer

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ParallelBackend splits the frame into tiles rendered by a pool of workers
type ParallelBackend struct{}

// Name implements Backend
func (b *ParallelBackend) Name() string { return "parallel" }

// Description implements Backend
func (b *ParallelBackend) Description() string {
	return "tiles rendered by a worker pool"
}

// Draw implements Backend
func (b *ParallelBackend) Draw(ctx context.Context, target *image.RGBA, sc *scene.Scene, config Config) (stats FrameStats, err error) {
	if err := checkDraw(target, sc, config); err != nil {
		return FrameStats{}, err
	}

	start := time.Now()
	counter := newCountingScene(sc)
	tr := NewTileRenderer(sc.Camera, integrator.NewRecursiveIntegrator(), config.TracingOptions(counter), config.Width, config.Height, config.Jitter)

	tiles := NewTileGrid(config.Width, config.Height, config.TileSize)
	pool := NewWorkerPool(tr, len(tiles), config.NumWorkers)

	stats = newFrameStats(b.Name(), config)
	stats.Workers = pool.GetNumWorkers()
	stats.Tiles = len(tiles)
	defer finishFrameStats(&stats, counter, start)

	logger.Infof("rendering %q %dx%d with %d spp: %d tiles on %d workers",
		sc.Name, config.Width, config.Height, config.SampleCount, len(tiles), pool.GetNumWorkers())

	// A failed tile cancels the rest of the frame
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Target: target})
	}

	// Every task yields exactly one result; drain them all so workers can exit
	var firstErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
				cancel()
			}
			continue
		}
		stats.Add(result.Stats)
		logger.Debugf("tile %d/%d done", result.TaskID+1, len(tiles))
	}
	pool.Stop()

	if firstErr != nil {
		if errors.Is(firstErr, ErrInterrupted) {
			logger.Warning("render cancelled")
		}
		return stats, firstErr
	}

	return stats, nil
}
