package mrpt

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/HitLumino/mrpt/raster"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
)

const plusXPM = `/* XPM */
static char * plus_xpm[] = {
"3 3 3 1",
". c None",
"# c #FF0000",
"o c Dark Green",
".#.",
"#o#",
".#."};
`

const brokenXPM = `/* XPM */
static char * broken_xpm[] = {
"2 1 2 1",
"a c red",
"b c blurple",
"ab"};
`

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, ioutil.WriteFile(file, []byte(content), 0o644))
	return file
}

func readImage(t *testing.T, file string) image.Image {
	t.Helper()
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	m, _, err := image.Decode(f)
	require.NoError(t, err)
	return m
}

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestConvertPNG(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "plus.xpm", plusXPM)
	out := filepath.Join(dir, "plus.png")

	l := New(nil, newLogger())
	require.NoError(t, l.Convert(in, out, ConvertOptions{}))

	m := readImage(t, out)
	assert.Equal(t, image.Rect(0, 0, 3, 3), m.Bounds())

	red := color.NRGBAModel.Convert(color.NRGBA{0xff, 0, 0, 0xff})
	green := color.NRGBAModel.Convert(color.NRGBA{0, 86, 45, 0xff})
	assert.Equal(t, red, color.NRGBAModel.Convert(m.At(1, 0)))
	assert.Equal(t, green, color.NRGBAModel.Convert(m.At(1, 1)))

	_, _, _, a := m.At(0, 0).RGBA()
	assert.Zero(t, a)
}

func TestConvertSwapRB(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "plus.xpm", plusXPM)
	out := filepath.Join(dir, "plus.bmp")

	l := New(nil, newLogger())
	require.NoError(t, l.Convert(in, out, ConvertOptions{SwapRB: true}))

	m := readImage(t, out)
	r, g, b, _ := m.At(1, 0).RGBA()
	assert.Equal(t, []uint32{0, 0, 0xffff}, []uint32{r, g, b})
}

func TestConvertResize(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "plus.xpm", plusXPM)
	out := filepath.Join(dir, "plus.png")

	l := New(nil, newLogger())
	require.NoError(t, l.Convert(in, out, ConvertOptions{Width: 9}))

	m := readImage(t, out)
	assert.Equal(t, image.Rect(0, 0, 9, 9), m.Bounds())
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "plus.xpm", plusXPM)
	broken := writeFile(t, dir, "broken.xpm", brokenXPM)

	l := New(nil, newLogger())
	assert.Error(t, l.Convert(in, filepath.Join(dir, "plus.tga"), ConvertOptions{}))
	assert.Error(t, l.Convert(broken, filepath.Join(dir, "broken.png"), ConvertOptions{}))
	assert.Error(t, l.Convert(filepath.Join(dir, "missing.xpm"), filepath.Join(dir, "missing.png"), ConvertOptions{}))
	assert.Error(t, l.Convert(in, filepath.Join(dir, "plus.png"), ConvertOptions{Colors: 1}))
	assert.Error(t, l.Convert(in, filepath.Join(dir, "plus.png"), ConvertOptions{Width: -1}))

	_, err := os.Stat(filepath.Join(dir, "plus.tga"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "broken.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestReduce(t *testing.T) {
	m := raster.New(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.SetRGB(x, y, uint8(x*16), uint8(y*16), 0x80)
		}
	}

	pm, err := reduce(m, 8)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(pm.Palette), 8)
	assert.Equal(t, m.Bounds(), pm.Bounds())

	// Few enough colors to be kept exactly
	small := raster.New(2, 1)
	small.SetRGB(0, 0, 1, 2, 3)
	small.SetRGB(1, 0, 4, 5, 6)
	pm, err = reduce(small, 4)
	require.NoError(t, err)
	assert.Equal(t, color.Palette{
		color.NRGBA{1, 2, 3, 0xff},
		color.NRGBA{4, 5, 6, 0xff},
	}, pm.Palette)
	assert.Equal(t, []uint8{0, 1}, pm.Pix)

	_, err = reduce(small, 257)
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "plus.xpm", plusXPM)

	l := New(nil, newLogger())
	r, err := l.Inspect(in)
	require.NoError(t, err)

	assert.Equal(t, 3, r.Header.Width)
	assert.Equal(t, 3, r.Header.Colors)
	assert.Equal(t, []PaletteColor{
		{Key: "#", Hex: "#ff0000"},
		{Key: ".", Hex: "#000000", Mask: true},
		{Key: "o", Hex: "#00562d"},
	}, r.Palette)
	assert.Regexp(t, `^#[0-9A-Fa-f]{6}$`, r.Dominant)

	_, err = l.Inspect(writeFile(t, dir, "broken.xpm", brokenXPM))
	assert.Error(t, err)
}
