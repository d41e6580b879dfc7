package xpm

import (
	"image/color"
	"sort"
	"strings"
)

// Visual color first, then the greyscale, monochrome and symbolic
// fallbacks
var flags = [...]string{"c ", "g ", "g4 ", "m ", "b ", "s "}

type rgbRecord struct {
	name string
	rgb  uint32
}

func rgb(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// entry is one resolved palette color
type entry struct {
	c    [3]uint8
	none bool
}

func pack(c [3]uint8) uint32 {
	return rgb(c[0], c[1], c[2])
}

func unpack(v uint32) [3]uint8 {
	return [3]uint8{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// findFlag returns the offset of the first flag token in s at or after
// from that follows a whitespace character, or -1.
func findFlag(s string, from int, flag string) int {
	if from < 1 {
		from = 1
	}
	for i := from; i+len(flag) <= len(s); i++ {
		if isSpace(s[i-1]) && s[i:i+len(flag)] == flag {
			return i
		}
	}
	return -1
}

// parseDirective returns the color value from a palette line whose key
// is the first cpp characters. The value runs up to the next directive.
func parseDirective(line string, cpp int) (string, bool) {
	for _, flag := range flags {
		i := findFlag(line, cpp, flag)
		if i < 0 {
			continue
		}
		v := line[i+len(flag):]
		end := len(v)
		for _, next := range flags {
			if j := findFlag(v, 1, next); j >= 0 && j < end {
				end = j
			}
		}
		return strings.Trim(v[:end], " \t"), true
	}
	return "", false
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func isHexLiteral(s string) bool {
	return len(s) > 0 && s[0] == '#' && (len(s) == 7 || len(s) == 13)
}

// parseHex decodes #RRGGBB or #RRRRGGGGBBBB, keeping the most significant
// byte of each channel in the latter.
func parseHex(s string) ([3]uint8, bool) {
	var c [3]uint8
	step := (len(s) - 1) / 3
	for i := range c {
		hi, ok1 := hexNibble(s[1+i*step])
		lo, ok2 := hexNibble(s[2+i*step])
		if !ok1 || !ok2 {
			return [3]uint8{}, false
		}
		c[i] = hi<<4 | lo
	}
	return c, true
}

// normalizeName strips spaces, folds to lower case and uses the "gray"
// spelling throughout.
func normalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			continue
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return strings.ReplaceAll(b.String(), "grey", "gray")
}

func lookupName(name string) ([3]uint8, bool) {
	i := sort.Search(len(rgbTable), func(i int) bool {
		return rgbTable[i].name >= name
	})
	if i < len(rgbTable) && rgbTable[i].name == name {
		return unpack(rgbTable[i].rgb), true
	}
	return [3]uint8{}, false
}

// resolveColor turns a directive value into a palette entry
func resolveColor(value string) (entry, error) {
	if isHexLiteral(value) {
		c, ok := parseHex(value)
		if !ok {
			return entry{}, FormatError("bad hexadecimal color " + value)
		}
		return entry{c: c}, nil
	}

	name := normalizeName(value)
	if name == "none" {
		return entry{none: true}, nil
	}
	if c, ok := lookupName(name); ok {
		return entry{c: c}, nil
	}
	return entry{}, FormatError("unknown color " + value)
}

// LookupColor resolves a color specification such as "Dark Green",
// "grey50" or "#ff8000" the same way palette entries are resolved. It
// reports false for unknown colors and for "None".
func LookupColor(spec string) (color.RGBA, bool) {
	e, err := resolveColor(strings.TrimSpace(spec))
	if err != nil || e.none {
		return color.RGBA{}, false
	}
	return color.RGBA{e.c[0], e.c[1], e.c[2], 0xff}, true
}
