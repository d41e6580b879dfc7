package xpm

import (
	"image"
	"strconv"
	"strings"
)

// Header holds the values read from the first line of an XPM image.
type Header struct {
	Width         int
	Height        int
	Colors        int
	CharsPerPixel int

	// Hotspot is only valid if HasHotspot is set
	Hotspot    image.Point
	HasHotspot bool
}

func parseUint(s string) (int, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// ParseHeader parses the "<width> <height> <colors> <chars per pixel>"
// line. An optional hotspot may follow; anything after that is ignored.
func ParseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Header{}, FormatError("incorrect header")
	}

	var v [4]int
	for i := range v {
		n, ok := parseUint(fields[i])
		if !ok {
			return Header{}, FormatError("incorrect header")
		}
		v[i] = n
	}

	h := Header{
		Width:         v[0],
		Height:        v[1],
		Colors:        v[2],
		CharsPerPixel: v[3],
	}

	if h.Width == 0 || h.Height == 0 || h.Colors == 0 {
		return Header{}, FormatError("incorrect header")
	}
	if h.CharsPerPixel >= maxCharsPerPixel {
		return Header{}, UnsupportedError("color keys of " + fields[3] + " characters")
	}
	if uint64(h.Width)*uint64(h.Height) > maxPixels {
		return Header{}, UnsupportedError("image of " + fields[0] + "x" + fields[1] + " pixels")
	}

	if len(fields) >= 6 {
		x, okx := parseUint(fields[4])
		y, oky := parseUint(fields[5])
		if okx && oky {
			h.Hotspot = image.Pt(x, y)
			h.HasHotspot = true
		}
	}

	return h, nil
}
