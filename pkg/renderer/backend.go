package renderer

import (
	"context"
	"fmt"
	"image"
	"sort"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// Backend draws complete frames of a scene
type Backend interface {
	// Name is the identifier used to select the backend.
	Name() string

	// Description is a one line summary for listings.
	Description() string

	// Draw renders sc into target, which must match the configured dimensions.
	// It returns ErrInterrupted if ctx is cancelled before the frame completes.
	Draw(ctx context.Context, target *image.RGBA, sc *scene.Scene, config Config) (FrameStats, error)
}

var backends = map[string]Backend{}

func register(b Backend) {
	backends[b.Name()] = b
}

func init() {
	register(&SerialBackend{})
	register(&ParallelBackend{})
}

// Backends returns the available backends sorted by name
func Backends() []Backend {
	list := make([]Backend, 0, len(backends))
	for _, b := range backends {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Lookup returns the backend registered under name
func Lookup(name string) (Backend, error) {
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return b, nil
}

// Render validates config, allocates a frame and draws sc with the configured backend
func Render(ctx context.Context, sc *scene.Scene, config Config) (*image.RGBA, FrameStats, error) {
	if err := config.Validate(); err != nil {
		return nil, FrameStats{}, err
	}

	backend, err := Lookup(config.Backend)
	if err != nil {
		return nil, FrameStats{}, err
	}

	if sc != nil && sc.Camera != nil && sc.Camera.IsDirty() {
		logger.Debugf("camera moved, now at %v looking along %v", sc.Camera.Position(), sc.Camera.Direction())
	}

	frame := NewFrame(config)
	stats, err := backend.Draw(ctx, frame, sc, config)
	if err != nil {
		return nil, stats, err
	}

	// The frame now reflects the current camera
	sc.Camera.ClearDirty()

	return frame, stats, nil
}

// checkDraw rejects inputs common to every backend
func checkDraw(target *image.RGBA, sc *scene.Scene, config Config) error {
	if sc == nil || sc.Camera == nil {
		return ErrSceneNotDefined
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if target == nil || target.Bounds() != image.Rect(0, 0, config.Width, config.Height) {
		return fmt.Errorf("%w: frame buffer does not match %dx%d", ErrInvalidDimensions, config.Width, config.Height)
	}
	return nil
}

func newFrameStats(name string, config Config) FrameStats {
	return FrameStats{
		Backend: name,
		Width:   config.Width,
		Height:  config.Height,
	}
}

func finishFrameStats(stats *FrameStats, counter *countingScene, start time.Time) {
	stats.ResolverCalls = counter.calls.Load()
	stats.RenderTime = time.Since(start)
}
