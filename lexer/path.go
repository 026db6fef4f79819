package lexer

import (
	"strings"

	"github.com/danvek/nyxlex/token"
	"github.com/danvek/nyxlex/value"
)

// isPathChar reports membership in the path character class
// [A-Za-z0-9/_.+-].
func isPathChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '/', r == '_', r == '.', r == '+', r == '-':
		return true
	default:
		return false
	}
}

// readRun consumes and returns the longest run of runes satisfying
// include, without consuming the rune that ends the run.
func readRun(c *cursor, include func(rune) bool) string {
	var b strings.Builder
	for {
		r, ok := c.peek()
		if !ok || !include(r) {
			return b.String()
		}
		c.advance()
		b.WriteRune(r)
	}
}

// readAnchoredPath handles the '~', '/', and bare-identifier-extended
// starts of a path literal, having already consumed the first code point
// `first`. It does not handle '<' (store paths) or URI idents, which the
// dispatcher routes separately.
func readAnchoredPath(c *cursor, start token.Position, first rune) (value.Leaf, *TokenizeError) {
	var anchor value.Anchor
	var body string

	switch first {
	case '~':
		r, ok := c.advance()
		if !ok || r != '/' {
			return value.Leaf{}, &TokenizeError{Kind: UndefinedToken, Span: token.Span{Start: start}}
		}
		anchor = value.Home
		body = readRun(c, isPathChar)
	case '/':
		anchor = value.Absolute
		body = "/" + readRun(c, isPathChar)
	default:
		anchor = value.Relative
		body = string(first) + readRun(c, isPathChar)
	}

	if strings.HasSuffix(body, "/") {
		return value.Leaf{}, &TokenizeError{Kind: TrailingSlash, Span: token.Span{Start: start}}
	}
	return value.Path(anchor, body), nil
}

// readStorePath handles the '<...>' angle-bracketed store path,
// having already consumed the opening '<'.
func readStorePath(c *cursor, start token.Position) (value.Leaf, *TokenizeError) {
	body := readRun(c, isPathChar)
	r, ok := c.advance()
	if !ok || r != '>' {
		return value.Leaf{}, &TokenizeError{Kind: UndefinedToken, Span: token.Span{Start: start}}
	}
	return value.Path(value.Store, body), nil
}
