package mrpt

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/ericpauley/go-quantize/quantize"
)

const (
	minColors = 2
	maxColors = 256
)

func uniqueColors(m image.Image, limit int) (color.Palette, bool) {
	b := m.Bounds()
	seen := make(map[color.NRGBA]struct{})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			seen[color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)] = struct{}{}
			if len(seen) > limit {
				return nil, false
			}
		}
	}

	p := make(color.Palette, 0, len(seen))
	for c := range seen {
		p = append(p, c)
	}
	// Keep the output stable between runs
	sort.Slice(p, func(i, j int) bool {
		ci, cj := p[i].(color.NRGBA), p[j].(color.NRGBA)
		return uint32(ci.R)<<24|uint32(ci.G)<<16|uint32(ci.B)<<8|uint32(ci.A) <
			uint32(cj.R)<<24|uint32(cj.G)<<16|uint32(cj.B)<<8|uint32(cj.A)
	})
	return p, true
}

// reduce returns m as a paletted image of no more than n colors. Images
// already within the limit keep their exact colors, otherwise a median cut
// palette is used.
func reduce(m image.Image, n int) (*image.Paletted, error) {
	if n < minColors || n > maxColors {
		return nil, fmt.Errorf("palette size must be between %d and %d", minColors, maxColors)
	}

	b := m.Bounds()

	pm, _ := m.(*image.Paletted)
	if pm != nil && len(pm.Palette) <= n {
		return pm, nil
	}

	p, ok := uniqueColors(m, n)
	if !ok {
		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(make(color.Palette, 0, n), m)
	}

	pm = image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	return pm, nil
}
