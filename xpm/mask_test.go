package xpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorSet(t *testing.T) {
	s := newColorSet()
	v, ok := s.firstUnused()
	require.True(t, ok)
	assert.Equal(t, uint32(0), v)

	for i := uint32(0); i < 200; i++ {
		s.add(i)
	}
	s.add(201)
	assert.True(t, s.has(199))
	assert.False(t, s.has(200))

	v, ok = s.firstUnused()
	require.True(t, ok)
	assert.Equal(t, uint32(200), v)
}

func TestColorSetExhausted(t *testing.T) {
	s := newColorSet()
	for i := range s {
		s[i] = ^uint64(0)
	}
	_, ok := s.firstUnused()
	assert.False(t, ok)

	s[len(s)-1] &^= 1 << 63
	v, ok := s.firstUnused()
	require.True(t, ok)
	assert.Equal(t, uint32(0xffffff), v)
}

func TestMaskColor(t *testing.T) {
	c, err := maskColor(map[string]entry{
		"a": {c: [3]uint8{0, 0, 0}},
		"b": {c: [3]uint8{0, 0, 1}},
		"c": {c: [3]uint8{0, 1, 0}},
		"n": {none: true},
	})
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{0, 0, 2}, c)

	// Entries already marked as none never count as used
	c, err = maskColor(map[string]entry{
		"n": {c: [3]uint8{0, 0, 0}, none: true},
		"m": {none: true},
	})
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{0, 0, 0}, c)
}
