package mrpt

import (
	"fmt"

	"github.com/HitLumino/mrpt/xpm"
	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
)

// PaletteColor is one palette entry of an inspected pixmap.
type PaletteColor struct {
	Key  string
	Hex  string
	Mask bool
}

// Report summarizes an XPM file.
type Report struct {
	File    string
	Header  xpm.Header
	Palette []PaletteColor
	// Dominant is the most prominent opaque color in the image
	Dominant string
}

// Inspect decodes the XPM file and reports its header, resolved palette
// and dominant color.
func (l *Library) Inspect(file string) (*Report, error) {
	lines, err := readFile(file)
	if err != nil {
		return nil, err
	}

	m, h, entries, err := xpm.DecodePalette(lines, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	r := &Report{
		File:     file,
		Header:   h,
		Palette:  make([]PaletteColor, 0, len(entries)),
		Dominant: dominantcolor.Hex(dominantcolor.Find(m)),
	}

	for _, e := range entries {
		c, _ := colorful.MakeColor(e.Color)
		r.Palette = append(r.Palette, PaletteColor{
			Key:  e.Key,
			Hex:  c.Hex(),
			Mask: e.Mask,
		})
	}

	return r, nil
}
