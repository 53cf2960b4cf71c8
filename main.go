package main

import (
	"os"

	"github.com/df07/go-whitted-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a builtin scene to a PNG image. Frame size, samples per pixel and the
reflection limit default to the values recommended by the scene; flags given
on the command line override them.`,
			ArgsUsage: "[scene]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 640,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 480,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 4,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "reflections",
					Value: 5,
					Usage: "maximum number of mirror bounces",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of parallel workers (0 = number of CPUs)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "tile edge length in pixels",
				},
				cli.BoolFlag{
					Name:  "no-jitter",
					Usage: "shoot every sample through the pixel center",
				},
				cli.Float64Flag{
					Name:  "yaw",
					Usage: "turn the scene camera left by this many degrees",
				},
				cli.Float64Flag{
					Name:  "pitch",
					Usage: "tilt the scene camera up by this many degrees",
				},
				cli.Float64Flag{
					Name:  "dolly",
					Usage: "move the scene camera forward by this distance",
				},
				cli.StringFlag{
					Name:  "backend, b",
					Value: "parallel",
					Usage: "render backend, see the backends command",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list builtin scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:   "backends",
			Usage:  "list render backends",
			Action: cmd.ListBackends,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		cmd.Fail(err)
	}
}
