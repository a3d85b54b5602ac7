package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	VERSION = "0.2.0"
)

// Options holds the settings of the pack command.
type Options struct {
	JSONPath     string   // placement metadata, read in manual mode and written in automatic mode
	ImagesDir    string   // directory of source images
	OutputPath   string   // sprite sheet image
	Mode         string   // manual or automatic
	MaxWidth     int      // bin width, 0 derives it from the images
	Order        string   // placement order for automatic mode
	Heuristic    string   // free region scoring for automatic mode
	CheckOverlap bool     // reject overlapping placements in manual mode
	Extensions   []string // image file extensions to load
}

// ExtractOptions holds the settings of the extract command.
type ExtractOptions struct {
	JSONPath   string
	SpritePath string
	OutputDir  string
}

// runner carries the output streams shared by the commands.
type runner struct {
	logger *log.Logger
	out    io.Writer
	errOut io.Writer
}

func newRunner(c *cli.Context) *runner {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}
	return &runner{logger: logger, out: c.App.Writer, errOut: c.App.ErrWriter}
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "spritesheet"
	app.Usage = "Merge images into a sprite sheet and extract them again"
	app.Version = VERSION

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"SPRITESHEET_VERBOSE"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "pack",
			Usage: "Merge individual images into a sprite sheet",
			Description: "In manual mode the positions are read from the JSON file. In automatic mode the\n" +
				"images are packed and the resulting positions are written to the JSON file.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "json",
					Aliases:  []string{"j"},
					Required: true,
					Usage:    "path to the JSON file defining the images",
				},
				&cli.StringFlag{
					Name:     "images",
					Aliases:  []string{"i", "images_folder"},
					Required: true,
					Usage:    "path to the folder containing the images",
				},
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "output path for the resulting sprite sheet",
				},
				&cli.StringFlag{
					Name:    "mode",
					Value:   "manual",
					EnvVars: []string{"SPRITESHEET_MODE"},
					Usage:   "image placement: manual or automatic",
				},
				&cli.IntFlag{
					Name:    "max-width",
					Aliases: []string{"mw", "max_width"},
					EnvVars: []string{"SPRITESHEET_MAX_WIDTH"},
					Usage:   "bin width for automatic mode (default: 2 * widest image)",
				},
				&cli.StringFlag{
					Name:    "order",
					Value:   "height",
					EnvVars: []string{"SPRITESHEET_ORDER"},
					Usage:   "placement order for automatic mode (height, area, perimeter, maxside)",
				},
				&cli.StringFlag{
					Name:    "heuristic",
					Value:   "BestAreaFit",
					EnvVars: []string{"SPRITESHEET_HEURISTIC"},
					Usage:   "free region choice for automatic mode (BestAreaFit, BestShortSideFit, BestLongSideFit)",
				},
				&cli.BoolFlag{
					Name:  "check-overlap",
					Usage: "reject overlapping placements in manual mode",
				},
				&cli.StringSliceFlag{
					Name:  "ext",
					Value: cli.NewStringSlice(".png"),
					Usage: "image file extensions to load",
				},
			},
			Action: func(c *cli.Context) error {
				options := Options{
					JSONPath:     c.String("json"),
					ImagesDir:    c.String("images"),
					OutputPath:   c.String("output"),
					Mode:         c.String("mode"),
					MaxWidth:     c.Int("max-width"),
					Order:        c.String("order"),
					Heuristic:    c.String("heuristic"),
					CheckOverlap: c.Bool("check-overlap"),
					Extensions:   c.StringSlice("ext"),
				}
				if err := newRunner(c).pack(&options); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:  "extract",
			Usage: "Extract images from a sprite sheet based on JSON data",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "json",
					Aliases:  []string{"j"},
					Required: true,
					Usage:    "path to the JSON file containing the image definitions",
				},
				&cli.StringFlag{
					Name:     "sprite",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "path to the sprite sheet image",
				},
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "output directory for the extracted images",
				},
			},
			Action: func(c *cli.Context) error {
				options := ExtractOptions{
					JSONPath:   c.String("json"),
					SpritePath: c.String("sprite"),
					OutputDir:  c.String("output"),
				}
				if err := newRunner(c).extract(&options); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
