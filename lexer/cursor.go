package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/danvek/nyxlex/token"
)

// cursor is a single-use, forward-only view over UTF-8 source text. It
// never re-reads: advance() consumes exactly one code point and peek()
// is non-destructive.
type cursor struct {
	src string // unconsumed remainder of the input
	row int
	col int
}

func newCursor(input string) *cursor {
	return &cursor{src: input}
}

// peek returns the next rune without consuming it.
func (c *cursor) peek() (rune, bool) {
	if len(c.src) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src)
	return r, true
}

// advance consumes and returns the next rune, updating row/col. A '\n'
// resets col to 0 and increments row; any other rune increments col.
func (c *cursor) advance() (rune, bool) {
	if len(c.src) == 0 {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(c.src)
	c.src = c.src[w:]
	if r == '\n' {
		c.row++
		c.col = 0
	} else {
		c.col++
	}
	return r, true
}

// position reports the cursor's current (row, col).
func (c *cursor) position() token.Position {
	return token.Position{Row: c.row, Col: c.col}
}

// remaining exposes the unconsumed input for bounded, read-only
// lookahead (the classifier, §4.3) without advancing the cursor.
func (c *cursor) remaining() string {
	return c.src
}

// atEOF reports whether the cursor has no more input.
func (c *cursor) atEOF() bool {
	return len(c.src) == 0
}

// consumeHashComment consumes a '#'-to-end-of-line comment, assuming the
// caller has already confirmed the next rune is '#'. It returns the
// comment body (excluding the leading '#', including the trailing '\n'
// when present). The common case (a newline-terminated comment)
// fast-forwards by byte index rather than decoding rune by rune,
// correcting row/col in bulk.
func (c *cursor) consumeHashComment() string {
	rest := c.src[1:]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		body := rest[:idx+1]
		c.src = rest[idx+1:]
		c.row++
		c.col = 0
		return body
	}
	body := rest
	c.col += utf8.RuneCountInString(c.src)
	c.src = ""
	return body
}
