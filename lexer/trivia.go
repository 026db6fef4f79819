package lexer

import (
	"strings"
	"unicode"

	"github.com/danvek/nyxlex/token"
)

// secondRune decodes the rune that follows the first rune of s, without
// requiring the caller to already know the first rune's width.
func secondRune(s string) (rune, bool) {
	_, w, ok := decodeRuneAt(s, 0)
	if !ok {
		return 0, false
	}
	r, _, ok := decodeRuneAt(s, w)
	return r, ok
}

// skipTrivia consumes whitespace and comments ahead of the next token,
// appending each comment's body to meta.Comments in source order. A '/'
// not followed by '*' is left untouched — it is either the division
// operator or the start of an absolute path, and resolving that is the
// dispatcher's job, not the trivia skipper's.
func skipTrivia(c *cursor, meta *token.Meta) *TokenizeError {
	for {
		r, ok := c.peek()
		if !ok {
			return nil
		}

		switch {
		case unicode.IsSpace(r):
			c.advance()

		case r == '#':
			meta.Comments = append(meta.Comments, c.consumeHashComment())

		case r == '/':
			if next, ok := secondRune(c.remaining()); !ok || next != '*' {
				return nil
			}
			start := c.position()
			c.advance() // '/'
			c.advance() // '*'
			body, closed := consumeBlockComment(c)
			if !closed {
				return &TokenizeError{Kind: UnclosedComment, Span: token.Span{Start: start}}
			}
			meta.Comments = append(meta.Comments, body)

		default:
			return nil
		}
	}
}

// consumeBlockComment reads the body of a /* ... */ comment after both
// opening delimiter runes have already been consumed, advancing one code
// point at a time so row/col stay accurate across embedded newlines. It
// reports false if '*/' was never found.
func consumeBlockComment(c *cursor) (body string, closed bool) {
	var b strings.Builder
	for {
		r, ok := c.peek()
		if !ok {
			return b.String(), false
		}
		if r == '*' {
			if next, ok := secondRune(c.remaining()); ok && next == '/' {
				c.advance() // '*'
				c.advance() // '/'
				return b.String(), true
			}
		}
		c.advance()
		b.WriteRune(r)
	}
}
