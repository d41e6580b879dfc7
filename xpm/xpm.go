/*
Package xpm implements an XPM (X PixMap) image decoder.

An XPM image is text. The first line holds the width, height, number of
colors and the number of characters used to key each pixel. It is followed
by one line per color, each made of a key and one or more "<flag> <value>"
directives, and finally one line per row of pixels where every group of
key characters selects a color. The value of a directive is either a
#RRGGBB or #RRRRGGGGBBBB literal, a color name, or "None" for a transparent
pixel.

Images are usually distributed as a C array of strings; ReadLines extracts
the lines from either that form or the plain XPM2 form.
*/
package xpm

import (
	"errors"
	"image"
)

const (
	// Keys this long would make for a color map far larger than the
	// 24-bit color space
	maxCharsPerPixel = 64
	maxPixels        = 1 << 26

	// A color line needs at least " c x" after the key
	minDirective = 5

	numColors     = 1 << 24
	bytesPerPixel = 3
)

// A FormatError reports that the input is not a valid XPM image.
type FormatError string

func (e FormatError) Error() string { return "xpm: invalid format: " + string(e) }

// An UnsupportedError reports that the input uses a valid but
// unimplemented XPM feature.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "xpm: unsupported feature: " + string(e) }

var (
	// ErrNoMaskColor is returned when every 24-bit color is already in
	// use and none is left for transparent pixels.
	ErrNoMaskColor = errors.New("xpm: no colors left to use for mask")
	// ErrNoData is returned for nil or empty input.
	ErrNoData = errors.New("xpm: no data")
)

func init() {
	image.RegisterFormat("xpm", "/* XPM */", Decode, DecodeConfig)
	image.RegisterFormat("xpm", "! XPM2", Decode, DecodeConfig)
}
