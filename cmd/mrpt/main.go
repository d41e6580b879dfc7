package main

import (
	"errors"
	"fmt"
	"io/fs"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/HitLumino/mrpt"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const defaultDB = "mrpt.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *logrus.Logger {
	logger := logrus.StandardLogger()
	logger.SetOutput(ioutil.Discard)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func openLibrary(c *cli.Context) (*mrpt.Library, error) {
	catalog, err := mrpt.NewCatalog(c.String("db"))
	if err != nil {
		return nil, err
	}
	return mrpt.New(catalog, newLogger(c)), nil
}

func main() {
	// Settings may also come from a .env file in the working directory
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	app := cli.NewApp()

	app.Name = "mrpt"
	app.Usage = "XPM pixmap conversion and catalog utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"MRPT_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"MRPT_VERBOSE"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an XPM file to another image format",
			Description: "The output format is chosen from the extension of OUTPUT: png, gif, jpg or bmp.",
			ArgsUsage:   "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "swap-rb",
					Usage: "swap the red and blue channels",
				},
				&cli.IntFlag{
					Name:  "width",
					Usage: "resize to this width, 0 keeps the aspect ratio",
				},
				&cli.IntFlag{
					Name:  "height",
					Usage: "resize to this height, 0 keeps the aspect ratio",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "reduce to a palette of at most this many colors",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m := mrpt.New(nil, newLogger(c))

				if err := m.Convert(c.Args().Get(0), c.Args().Get(1), mrpt.ConvertOptions{
					SwapRB: c.Bool("swap-rb"),
					Width:  c.Int("width"),
					Height: c.Int("height"),
					Colors: c.Int("colors"),
				}); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "Show the header and palette of an XPM file",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m := mrpt.New(nil, newLogger(c))

				r, err := m.Inspect(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("%s: %dx%d, %d colors, %d chars per pixel\n", r.File, r.Header.Width, r.Header.Height, r.Header.Colors, r.Header.CharsPerPixel)
				if r.Header.HasHotspot {
					fmt.Printf("hotspot: %d,%d\n", r.Header.Hotspot.X, r.Header.Hotspot.Y)
				}
				fmt.Printf("dominant: %s\n", r.Dominant)
				for _, p := range r.Palette {
					var mask string
					if p.Mask {
						mask = " (mask)"
					}
					fmt.Printf("%q %s%s\n", p.Key, p.Hex, mask)
				}

				return nil
			},
		},
		{
			Name:        "index",
			Usage:       "Scan filesystem and add XPM files to the catalog",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List the catalog",
			Action: func(c *cli.Context) error {
				catalog, err := mrpt.NewCatalog(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer catalog.Close()

				list, err := catalog.List()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, p := range list {
					fmt.Printf("%s %-24s %4dx%-4d %d colors\n", p.SHA1, p.Name, p.Width, p.Height, p.Colors)
				}

				return nil
			},
		},
		{
			Name:        "export",
			Usage:       "Write a cataloged pixmap to an image file",
			Description: "",
			ArgsUsage:   "SHA1 OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Export(strings.TrimSpace(c.Args().Get(0)), c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
