package xpm

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sort"

	"github.com/HitLumino/mrpt/raster"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "xpm")

type decoder struct {
	lines []string

	header Header
	table  map[string]entry

	hasMask bool
	maskKey string
	mask    [3]uint8

	image *raster.RGB
}

func (d *decoder) line(n int) (string, error) {
	if n >= len(d.lines) {
		return "", FormatError(fmt.Sprintf("missing line %d", n))
	}
	return d.lines[n], nil
}

func (d *decoder) readHeader() error {
	h, err := ParseHeader(d.lines[0])
	if err != nil {
		return err
	}
	d.header = h
	return nil
}

func (d *decoder) readColors() error {
	cpp := d.header.CharsPerPixel
	d.table = make(map[string]entry, d.header.Colors)

	for i := 1; i <= d.header.Colors; i++ {
		s, err := d.line(i)
		if err != nil {
			return err
		}
		if len(s) < cpp+minDirective {
			return FormatError(fmt.Sprintf("incorrect color description at line %d", i))
		}

		value, ok := parseDirective(s, cpp)
		if !ok {
			return FormatError(fmt.Sprintf("malformed color definition %q at line %d", s, i))
		}

		e, err := resolveColor(value)
		if err != nil {
			return fmt.Errorf("%w at line %d", err, i)
		}

		key := s[:cpp]
		if e.none {
			d.hasMask = true
			d.maskKey = key
		}
		d.table[key] = e
	}

	return nil
}

// readMask replaces any "None" entries with a color that is otherwise
// unused in the palette.
func (d *decoder) readMask() error {
	if !d.hasMask {
		return nil
	}

	c, err := maskColor(d.table)
	if err != nil {
		return err
	}
	d.mask = c

	for k, e := range d.table {
		if e.none {
			e.c = c
			d.table[k] = e
		}
	}

	return nil
}

func (d *decoder) readPixels() error {
	cpp := d.header.CharsPerPixel
	width := d.header.Width * cpp

	for y := 0; y < d.header.Height; y++ {
		n := 1 + d.header.Colors + y
		s, err := d.line(n)
		if err != nil {
			return err
		}
		if len(s) < width {
			return FormatError(fmt.Sprintf("truncated image data at line %d", n))
		}

		p := d.image.Pix[d.image.PixOffset(0, y):]
		for x := 0; x < d.header.Width; x++ {
			// Give up on the first bad key rather than reporting
			// every remaining pixel
			e, ok := d.table[s[x*cpp:x*cpp+cpp]]
			if !ok {
				return FormatError(fmt.Sprintf("malformed pixel data at line %d", n))
			}
			copy(p[x*bytesPerPixel:], e.c[:])
		}
	}

	return nil
}

func (d *decoder) decode(lines []string, m *raster.RGB, swapRB bool) error {
	if len(lines) == 0 {
		return ErrNoData
	}
	d.lines = lines

	if err := d.readHeader(); err != nil {
		return err
	}

	// The header counts are untrusted, check them against the input
	// before sizing anything from them
	need := 1 + d.header.Colors
	if m != nil {
		need += d.header.Height
	}
	if len(lines) < need {
		return FormatError(fmt.Sprintf("header expects %d lines, found %d", need, len(lines)))
	}

	if m != nil {
		m.Resize(d.header.Width, d.header.Height)
		d.image = m
	}

	if err := d.readColors(); err != nil {
		return err
	}

	if err := d.readMask(); err != nil {
		return err
	}

	if d.image == nil {
		return nil
	}

	if err := d.readPixels(); err != nil {
		return err
	}

	if d.hasMask {
		d.image.SetMask(d.mask[0], d.mask[1], d.mask[2])
	}

	if swapRB {
		d.image.SwapRB()
	}

	return nil
}

// Load decodes the XPM image held in lines into m, swapping the red and
// blue channels if swapRB is set. It returns false if the image could not
// be decoded, in which case the contents of m are undefined.
func Load(m *raster.RGB, lines []string, swapRB bool) bool {
	if m == nil {
		log.WithError(ErrNoData).Error("Failed to load pixmap")
		return false
	}

	var d decoder
	if err := d.decode(lines, m, swapRB); err != nil {
		log.WithError(err).Error("Failed to load pixmap")
		return false
	}
	return true
}

// DecodeLines decodes the XPM image held in lines into a new raster.
func DecodeLines(lines []string, swapRB bool) (*raster.RGB, error) {
	var d decoder
	m := new(raster.RGB)
	if err := d.decode(lines, m, swapRB); err != nil {
		return nil, err
	}
	return m, nil
}

// Entry is a resolved palette color.
type Entry struct {
	Key   string
	Color color.RGBA
	// Mask is set for transparent entries, Color then holds the
	// synthesized mask color
	Mask bool
}

func (d *decoder) palette() []Entry {
	p := make([]Entry, 0, len(d.table))
	for k, e := range d.table {
		p = append(p, Entry{
			Key:   k,
			Color: color.RGBA{e.c[0], e.c[1], e.c[2], 0xff},
			Mask:  e.none,
		})
	}
	sort.Slice(p, func(i, j int) bool { return p[i].Key < p[j].Key })
	return p
}

// ParsePalette reads the header and color lines without decoding any
// pixels. Entries are sorted by key.
func ParsePalette(lines []string) (Header, []Entry, error) {
	var d decoder
	if err := d.decode(lines, nil, false); err != nil {
		return Header{}, nil, err
	}
	return d.header, d.palette(), nil
}

// DecodePalette is DecodeLines that also returns the header and the
// resolved palette, as ParsePalette would.
func DecodePalette(lines []string, swapRB bool) (*raster.RGB, Header, []Entry, error) {
	var d decoder
	m := new(raster.RGB)
	if err := d.decode(lines, m, swapRB); err != nil {
		return nil, Header{}, nil, err
	}
	return m, d.header, d.palette(), nil
}

// Decode reads an XPM image from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	m, err := DecodeLines(lines, false)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeConfig returns the color model and dimensions of an XPM image
// without decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return image.Config{}, err
	}
	h, err := ParseHeader(lines[0])
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      h.Width,
		Height:     h.Height,
	}, nil
}
