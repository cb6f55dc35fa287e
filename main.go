package main

import (
	"os"

	"github.com/johnsutor/leopardi/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "leopardi"
	app.Usage = "generate synthetic labeled renders by driving a headless blender"
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
			Usage: "render a batch of labeled frames",
			Description: `
Select a background and a 3D model per iteration, rebuild the blender scene
around them, render the frame and write it to the render directory together
with any requested label files (YOLO, COCO, PASCAL, DEPTH).`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 1,
					Usage: "number of frames to render",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 1024,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 1024,
					Usage: "frame height",
				},
				cli.StringFlag{
					Name:  "engine",
					Value: "BLENDER_EEVEE",
					Usage: "render engine (BLENDER_EEVEE or CYCLES)",
				},
				cli.StringSliceFlag{
					Name:  "label, l",
					Value: &cli.StringSlice{},
					Usage: "label kind to produce per frame (repeatable)",
				},
				cli.BoolFlag{
					Name:  "shadow",
					Usage: "render the subject's cast shadow",
				},
				cli.StringFlag{
					Name:  "backgrounds",
					Value: "./backgrounds",
					Usage: "directory holding background images",
				},
				cli.StringFlag{
					Name:  "models",
					Value: "./models",
					Usage: "directory holding 3D model files",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "./renders",
					Usage: "output directory for images and labels",
				},
				cli.StringFlag{
					Name:  "policy",
					Value: "sequential",
					Usage: "asset selection policy (sequential or random)",
				},
				cli.BoolFlag{
					Name:  "no-background",
					Usage: "permit rendering without background images",
				},
				cli.StringFlag{
					Name:  "camera-mode",
					Value: "random",
					Usage: "camera placement mode (random, fibonacci or icosphere)",
				},
				cli.Float64Flag{
					Name:  "radius",
					Value: 1.0,
					Usage: "camera placement sphere radius",
				},
				cli.Float64Flag{
					Name:  "lens",
					Value: 50.0,
					Usage: "camera lens focal length (mm)",
				},
				cli.StringSliceFlag{
					Name:  "light",
					Value: &cli.StringSlice{},
					Usage: "candidate light kind (repeatable; default SUN)",
				},
				cli.Float64Flag{
					Name:  "energy",
					Value: 2.0,
					Usage: "light energy",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "seed for random camera poses and asset picks",
				},
				cli.StringFlag{
					Name:  "blender",
					Usage: "path to the blender executable or its directory",
				},
			},
			Action: cmd.RenderBatch,
		},
		{
			Name:   "labels",
			Usage:  "list the supported label kinds",
			Action: cmd.ListLabels,
		},
	}

	app.Run(os.Args)
}
