package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// DefaultScene is rendered when no scene argument is given.
const DefaultScene = "default"

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() > 1 {
		return fmt.Errorf("expected a single scene argument, got %d", ctx.NArg())
	}
	sceneID := DefaultScene
	if ctx.NArg() == 1 {
		sceneID = ctx.Args().First()
	}

	sc, err := scene.Create(sceneID)
	if err != nil {
		return err
	}

	// Scene recommendations first, explicit flags win
	config := applyFlags(ctx, renderer.DefaultConfig().Merge(sc.SamplingConfig))
	if err := config.Validate(); err != nil {
		return err
	}

	orientCamera(sc.Camera, ctx.Float64("yaw"), ctx.Float64("pitch"), ctx.Float64("dolly"))

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q (%dx%d, %d spp, %d reflections) with the %s backend",
		sc.Name, config.Width, config.Height, config.SampleCount, config.ReflectionLimit, config.Backend)

	frame, stats, err := renderer.Render(renderCtx, sc, config)
	if err != nil {
		return err
	}

	// Export PNG
	imgFile := ctx.String("out")
	start := time.Now()
	if err := writePNG(imgFile, frame); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Milliseconds())

	displayFrameStats(stats, renderer.CalculateAverageLuminance(frame))

	return nil
}

// applyFlags overrides config with every render flag the user set explicitly
func applyFlags(ctx *cli.Context, config renderer.Config) renderer.Config {
	if ctx.IsSet("width") {
		config.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		config.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		config.SampleCount = ctx.Int("spp")
	}
	if ctx.IsSet("reflections") {
		config.ReflectionLimit = ctx.Int("reflections")
	}
	if ctx.IsSet("workers") {
		config.NumWorkers = ctx.Int("workers")
	}
	if ctx.IsSet("tile-size") {
		config.TileSize = ctx.Int("tile-size")
	}
	if ctx.IsSet("no-jitter") {
		config.Jitter = !ctx.Bool("no-jitter")
	}
	if ctx.IsSet("backend") {
		config.Backend = ctx.String("backend")
	}
	return config
}

// orientCamera turns the camera by yaw and pitch degrees, then moves it forward
func orientCamera(camera *geometry.Camera, yaw, pitch, dolly float64) {
	camera.Rotate(yaw*math.Pi/180, pitch*math.Pi/180)
	camera.Move(core.NewVec3(0, 0, dolly))
	if camera.IsDirty() {
		logger.Infof("camera at %v looking along %v", camera.Position(), camera.Direction())
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding png file %s: %w", path, err)
	}
	return f.Close()
}

func displayFrameStats(stats renderer.FrameStats, luminance float64) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(stats, luminance))
}

func frameStatsTable(stats renderer.FrameStats, luminance float64) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})

	callsPerPixel := 0.0
	if stats.TotalPixels > 0 {
		callsPerPixel = float64(stats.ResolverCalls) / float64(stats.TotalPixels)
	}

	table.Append([]string{"Backend", stats.Backend})
	table.Append([]string{"Frame", fmt.Sprintf("%dx%d", stats.Width, stats.Height)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", stats.Workers)})
	table.Append([]string{"Tiles", fmt.Sprintf("%d", stats.Tiles)})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", stats.TotalPixels)})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%.1f", stats.AverageSamples())})
	table.Append([]string{"Resolver calls", fmt.Sprintf("%d", stats.ResolverCalls)})
	table.Append([]string{"Resolver calls/pixel", fmt.Sprintf("%.2f", callsPerPixel)})
	table.Append([]string{"Average luminance", fmt.Sprintf("%.4f", luminance)})
	table.SetFooter([]string{"Render time", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}
