/*
Package raster implements a simple RGB pixel store used as the target of
the pixmap decoders.

Pixels are stored row-major with a top-left origin, three bytes per pixel
in R, G, B order. An optional mask color marks pixels that should be
treated as transparent.
*/
package raster

import (
	"image"
	"image/color"
)

const bytesPerPixel = 3

// RGB is an in-memory image whose At method returns color.NRGBA values.
type RGB struct {
	// Pix holds the image's pixels, in R, G, B order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent
	// pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle

	// Mask is the color standing in for transparent pixels, only valid
	// if HasMask is set.
	Mask    [3]uint8
	HasMask bool
}

// New returns a new RGB image with the given width and height.
func New(width, height int) *RGB {
	m := new(RGB)
	m.Resize(width, height)
	return m
}

// Resize reallocates the image to width by height pixels, all set to
// black. Any mask color is forgotten.
func (m *RGB) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n := width * height * bytesPerPixel
	if cap(m.Pix) >= n {
		m.Pix = m.Pix[:n]
		for i := range m.Pix {
			m.Pix[i] = 0
		}
	} else {
		m.Pix = make([]uint8, n)
	}
	m.Stride = width * bytesPerPixel
	m.Rect = image.Rect(0, 0, width, height)
	m.Mask = [3]uint8{}
	m.HasMask = false
}

// ColorModel returns color.NRGBAModel.
func (m *RGB) ColorModel() color.Model { return color.NRGBAModel }

// Bounds returns the image bounds.
func (m *RGB) Bounds() image.Rectangle { return m.Rect }

// At returns the color of the pixel at (x, y). Pixels matching the mask
// color are fully transparent.
func (m *RGB) At(x, y int) color.Color {
	return m.NRGBAAt(x, y)
}

// NRGBAAt is the concrete form of At.
func (m *RGB) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{x, y}.In(m.Rect)) {
		return color.NRGBA{}
	}
	i := m.PixOffset(x, y)
	c := color.NRGBA{m.Pix[i], m.Pix[i+1], m.Pix[i+2], 0xff}
	if m.HasMask && c.R == m.Mask[0] && c.G == m.Mask[1] && c.B == m.Mask[2] {
		c.A = 0
	}
	return c
}

// RGBAt returns the raw channel values of the pixel at (x, y).
func (m *RGB) RGBAt(x, y int) (r, g, b uint8) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	i := m.PixOffset(x, y)
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// SetRGB sets the channel values of the pixel at (x, y).
func (m *RGB) SetRGB(x, y int, r, g, b uint8) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	i := m.PixOffset(x, y)
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = r, g, b
}

// PixOffset returns the index of the first element of Pix that
// corresponds to the pixel at (x, y).
func (m *RGB) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x-m.Rect.Min.X)*bytesPerPixel
}

// SetMask records the color used for transparent pixels.
func (m *RGB) SetMask(r, g, b uint8) {
	m.Mask = [3]uint8{r, g, b}
	m.HasMask = true
}

// SwapRB exchanges the red and blue channels of every pixel, and of the
// mask color if there is one.
func (m *RGB) SwapRB() {
	for i := 0; i+2 < len(m.Pix); i += bytesPerPixel {
		m.Pix[i], m.Pix[i+2] = m.Pix[i+2], m.Pix[i]
	}
	if m.HasMask {
		m.Mask[0], m.Mask[2] = m.Mask[2], m.Mask[0]
	}
}
