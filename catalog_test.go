package mrpt

import (
	"path/filepath"
	"testing"

	"github.com/HitLumino/mrpt/raster"
	"github.com/HitLumino/mrpt/xpm"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := newCatalog(t)

	m := raster.New(2, 2)
	m.SetRGB(0, 0, 1, 2, 3)
	m.SetRGB(1, 1, 4, 5, 6)
	m.SetMask(0, 0, 0)

	p := Pixmap{SHA1: "ABCD", Name: "test", Width: 2, Height: 2, Colors: 3}
	id, err := c.Add(p, m)
	require.NoError(t, err)

	// Adding the same pixmap again is a no-op
	dup, err := c.Add(p, m)
	require.NoError(t, err)
	assert.Equal(t, id, dup)

	found, fm, err := c.Find("ABCD")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, p, *found)
	assert.Equal(t, m.Pix, fm.Pix)
	assert.Equal(t, m.Bounds(), fm.Bounds())
	assert.True(t, fm.HasMask)
	assert.Equal(t, [3]uint8{0, 0, 0}, fm.Mask)

	found, fm, err = c.Find("FFFF")
	require.NoError(t, err)
	assert.Nil(t, found)
	assert.Nil(t, fm)
}

func TestCatalogList(t *testing.T) {
	c := newCatalog(t)

	for _, p := range []Pixmap{
		{SHA1: "02", Name: "zebra", Width: 1, Height: 1, Colors: 1},
		{SHA1: "01", Name: "apple", Width: 1, Height: 1, Colors: 1},
	} {
		_, err := c.Add(p, raster.New(1, 1))
		require.NoError(t, err)
	}

	list, err := c.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "apple", list[0].Name)
	assert.Equal(t, "zebra", list[1].Name)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plus.xpm", plusXPM)
	writeFile(t, dir, "nested/deeper/PLUS2.XPM", plusXPM+"\n")
	writeFile(t, dir, "broken.xpm", brokenXPM)
	writeFile(t, dir, ".hidden/plus.xpm", plusXPM+"\n\n")
	writeFile(t, dir, "notes.txt", plusXPM)

	c := newCatalog(t)
	l := New(c, newLogger())
	require.NoError(t, l.Scan(dir))

	list, err := c.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "PLUS2", list[0].Name)
	assert.Equal(t, "plus", list[1].Name)
	for _, p := range list {
		assert.Equal(t, 3, p.Width)
		assert.Equal(t, 3, p.Height)
		assert.Equal(t, 3, p.Colors)
	}

	out := filepath.Join(dir, "export.png")
	require.NoError(t, l.Export(list[1].SHA1, out))
	m := readImage(t, out)
	r, g, b, _ := m.At(1, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b})

	assert.Error(t, l.Export("0000", out))
}

func TestScanLogsCause(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.xpm", brokenXPM)

	logger, hook := test.NewNullLogger()
	c := newCatalog(t)
	require.NoError(t, New(c, logger).Scan(dir))

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, "Skipping malformed pixmap", entries[0].Message)
	err, ok := entries[0].Data[logrus.ErrorKey].(error)
	require.True(t, ok)
	var fe xpm.FormatError
	assert.ErrorAs(t, err, &fe)

	list, err := c.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNoCatalog(t *testing.T) {
	l := New(nil, newLogger())
	assert.Equal(t, errNoCatalog, l.Scan(t.TempDir()))
	assert.Equal(t, errNoCatalog, l.Export("ABCD", filepath.Join(t.TempDir(), "x.png")))
	assert.NoError(t, l.Close())
}
