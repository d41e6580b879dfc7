package mrpt

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HitLumino/mrpt/raster"
	"github.com/HitLumino/mrpt/xpm"
	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
)

// ConvertOptions control the transformations applied by Convert.
type ConvertOptions struct {
	// SwapRB exchanges the red and blue channels
	SwapRB bool
	// Width and Height resize the image; if one of them is zero the
	// aspect ratio is preserved
	Width  int
	Height int
	// Colors reduces the image to a palette of at most this many colors
	// when non-zero
	Colors int
}

func readFile(file string) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := xpm.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return lines, nil
}

func decodeFile(file string, swapRB bool) (*raster.RGB, error) {
	lines, err := readFile(file)
	if err != nil {
		return nil, err
	}

	m, err := xpm.DecodeLines(lines, swapRB)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return m, nil
}

func transform(m image.Image, opts ConvertOptions) (image.Image, error) {
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Width > 0 || opts.Height > 0 {
		m = imaging.Resize(m, opts.Width, opts.Height, imaging.Lanczos)
	}

	if opts.Colors != 0 {
		pm, err := reduce(m, opts.Colors)
		if err != nil {
			return nil, err
		}
		m = pm
	}

	return m, nil
}

type encodeFunc func(io.Writer, image.Image) error

func encoder(ext string) (encodeFunc, error) {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode, nil
	case ".gif":
		return func(w io.Writer, m image.Image) error {
			return gif.Encode(w, m, nil)
		}, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: 90})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
}

func writeImage(file string, m image.Image) error {
	enc, err := encoder(filepath.Ext(file))
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := enc(f, m); err != nil {
		return err
	}

	return f.Close()
}

// Convert decodes the XPM file in and writes it to out, the format being
// chosen from the extension of out.
func (l *Library) Convert(in, out string, opts ConvertOptions) error {
	m, err := decodeFile(in, opts.SwapRB)
	if err != nil {
		return err
	}

	img, err := transform(m, opts)
	if err != nil {
		return err
	}

	if err := writeImage(out, img); err != nil {
		return err
	}

	l.logger.WithFields(logrus.Fields{
		"in":  in,
		"out": out,
	}).Info("Converted pixmap")

	return nil
}

// Export writes the cataloged pixmap with the given SHA-1 to out.
func (l *Library) Export(sha, out string) error {
	if l.catalog == nil {
		return errNoCatalog
	}

	p, m, err := l.catalog.Find(strings.ToUpper(sha))
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("no pixmap with SHA-1 %s", sha)
	}

	return writeImage(out, m)
}
