package xpm

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		line   string
		header Header
		err    error
	}{
		{
			line:   "16 8 4 1",
			header: Header{Width: 16, Height: 8, Colors: 4, CharsPerPixel: 1},
		},
		{
			line:   "  16\t8 4  2  ",
			header: Header{Width: 16, Height: 8, Colors: 4, CharsPerPixel: 2},
		},
		{
			line:   "16 8 4 1 7 3 XPMEXT",
			header: Header{Width: 16, Height: 8, Colors: 4, CharsPerPixel: 1, Hotspot: image.Pt(7, 3), HasHotspot: true},
		},
		{
			line:   "16 8 4 1 XPMEXT",
			header: Header{Width: 16, Height: 8, Colors: 4, CharsPerPixel: 1},
		},
		{
			line:   "16 8 4 63",
			header: Header{Width: 16, Height: 8, Colors: 4, CharsPerPixel: 63},
		},
		{line: "16 8 4", err: FormatError("incorrect header")},
		{line: "", err: FormatError("incorrect header")},
		{line: "16 8 x 1", err: FormatError("incorrect header")},
		{line: "-16 8 4 1", err: FormatError("incorrect header")},
		{line: "16 0 4 1", err: FormatError("incorrect header")},
		{line: "16 8 0 1", err: FormatError("incorrect header")},
		{line: "16 8 4 64", err: UnsupportedError("color keys of 64 characters")},
		{line: "16 8 4 100", err: UnsupportedError("color keys of 100 characters")},
		{line: "100000 100000 1 1", err: UnsupportedError("image of 100000x100000 pixels")},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h, err := ParseHeader(tt.line)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.header, h)
		})
	}
}
