package main

import (
	"os"

	"github.com/tiwylli/PBR-Engine-sub000/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pbr-engine"
	app.Usage = "render scenes using path tracing"
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
			Usage: "render a built-in scene to a PNG file",
			Description: `
Render a single frame of one of the built-in demo scenes. The image is
cut into tiles which are traced in parallel; results are deterministic
for a given seed regardless of the worker count.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell",
					Usage: "scene to render (cornell, cornell-fog, sdf-showcase)",
				},
				cli.StringFlag{
					Name:  "integrator, i",
					Value: "path",
					Usage: "integrator (path, path-bsdf, path-naive, path-emitter, volumetric)",
				},
				cli.StringFlag{
					Name:  "split",
					Value: "sah",
					Usage: "BVH split strategy (median, spatial, sah)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 0,
					Usage: "samples per pixel (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 0,
					Usage: "maximum path depth (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "tile edge length in pixels",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = CPU count)",
				},
				cli.IntFlag{
					Name:  "seed",
					Value: 42,
					Usage: "base seed for per-tile samplers",
				},
				cli.BoolFlag{
					Name:  "keep-nans",
					Usage: "average non-finite samples into pixels instead of dropping them",
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
			Name:   "info",
			Usage:  "list host cpu and memory resources",
			Action: cmd.HostInfo,
		},
	}

	app.Run(os.Args)
}
