// Package scan locates candidate bracketed regions in raw source text.
//
// The primary scanner tracks string-quoting context and bracket depth so a
// ']' inside a string element does not end the region. The plain helpers
// support the lexical retry-widening fallback used when the balanced region
// still fails to parse.
package scan

import "strings"

// Balanced returns the offset just past the ']' that closes the bracket at
// open, tracking single-, double-, and triple-quoted strings and backslash
// escapes so bracket characters inside string elements are ignored. The
// second return is false when the region never closes before end of input.
func Balanced(s string, open int) (int, bool) {
	if open >= len(s) || s[open] != '[' {
		return 0, false
	}

	depth := 0
	var quote byte
	triple := false
	escaped := false

	for i := open; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		if quote != 0 {
			switch {
			case c == '\\':
				escaped = true
			case c == quote && !triple:
				quote = 0
			case c == quote && i+2 < len(s) && s[i+1] == quote && s[i+2] == quote:
				quote = 0
				triple = false
				i += 2
			}
			continue
		}

		switch c {
		case '\'', '"':
			quote = c
			if i+2 < len(s) && s[i+1] == c && s[i+2] == c {
				triple = true
				i += 2
			}
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// NextOpen returns the index of the first '[' at or after from, or -1.
func NextOpen(s string, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.IndexByte(s[from:], '[')
	if i < 0 {
		return -1
	}
	return from + i
}

// NextClose returns the index of the first ']' at or after from, or -1.
// Purely lexical: it does not care about quoting context.
func NextClose(s string, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.IndexByte(s[from:], ']')
	if i < 0 {
		return -1
	}
	return from + i
}
