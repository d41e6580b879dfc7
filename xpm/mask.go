package xpm

// colorSet is a bitset over the 24-bit RGB space
type colorSet []uint64

func newColorSet() colorSet {
	return make(colorSet, numColors/64)
}

func (s colorSet) add(v uint32) {
	s[v>>6] |= 1 << (v & 63)
}

func (s colorSet) has(v uint32) bool {
	return s[v>>6]&(1<<(v&63)) != 0
}

// firstUnused returns the lowest color not in the set.
func (s colorSet) firstUnused() (uint32, bool) {
	for v := uint32(0); v < numColors; v++ {
		if !s.has(v) {
			return v, true
		}
	}
	return 0, false
}

// maskColor picks the color standing in for "None" entries: the lowest
// 24-bit value not used by any other entry in the table.
func maskColor(table map[string]entry) ([3]uint8, error) {
	used := newColorSet()
	for _, e := range table {
		if !e.none {
			used.add(pack(e.c))
		}
	}

	v, ok := used.firstUnused()
	if !ok {
		return [3]uint8{}, ErrNoMaskColor
	}
	return unpack(v), nil
}
