package main

import (
	"os"

	"github.com/alucas2/raytracing-potato/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracing-potato"
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
			Usage: "render a still frame",
			Description: `
Render a builtin scene, or a wavefront object file when --obj is given, and
write the result to an image file.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "tile width and height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 64,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 16,
					Usage: "maximum path depth",
				},
				cli.IntFlag{
					Name:  "seed",
					Value: 0,
					Usage: "base seed for the per-tile random generators",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = number of cpus)",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "three-balls",
					Usage: "builtin scene to render",
				},
				cli.StringFlag{
					Name:  "obj",
					Usage: "render this wavefront object file instead of a builtin scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "output.tga",
					Usage: "image filename for the rendered frame (tga or png)",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list builtin scenes",
			Action: cmd.ListScenes,
		},
	}

	app.Run(os.Args)
}
