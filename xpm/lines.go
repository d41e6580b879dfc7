package xpm

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"strings"
)

var xpm2Magic = []byte("! XPM2")

// ReadLines extracts the image lines from r. The input is either an XPM2
// file, where every line after the "! XPM2" magic is an image line, or an
// XPM3 file where each image line is a C string literal.
func ReadLines(r io.Reader) ([]string, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var lines []string
	if t := bytes.TrimLeft(b, " \t\r\n"); bytes.HasPrefix(t, xpm2Magic) {
		lines = plainLines(t[len(xpm2Magic):])
	} else {
		if lines, err = stringLiterals(b); err != nil {
			return nil, err
		}
	}

	if len(lines) == 0 {
		return nil, ErrNoData
	}
	return lines, nil
}

func plainLines(b []byte) []string {
	var lines []string
	s := bufio.NewScanner(bytes.NewReader(b))
	s.Buffer(nil, len(b)+1)
	first := true
	for s.Scan() {
		// Remainder of the magic line
		if first {
			first = false
			continue
		}
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}
	return lines
}

// stringLiterals returns the contents of every string literal in b,
// skipping C comments.
func stringLiterals(b []byte) ([]string, error) {
	var (
		lines []string
		sb    strings.Builder
	)

	for i := 0; i < len(b); i++ {
		switch {
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '*':
			end := bytes.Index(b[i+2:], []byte("*/"))
			if end < 0 {
				return nil, FormatError("unterminated comment")
			}
			i += end + 3
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '/':
			end := bytes.IndexByte(b[i:], '\n')
			if end < 0 {
				return lines, nil
			}
			i += end
		case b[i] == '"':
			sb.Reset()
			closed := false
			for i++; i < len(b); i++ {
				c := b[i]
				if c == '"' {
					closed = true
					break
				}
				if c == '\n' {
					break
				}
				if c == '\\' && i+1 < len(b) {
					i++
					c = b[i]
				}
				sb.WriteByte(c)
			}
			if !closed {
				return nil, FormatError("unterminated string")
			}
			lines = append(lines, sb.String())
		}
	}

	return lines, nil
}
