package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorPeekAdvance(t *testing.T) {
	c := newCursor("a\nb")

	r, ok := c.peek()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, c.position().Row)
	assert.Equal(t, 0, c.position().Col)

	r, ok = c.advance()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, c.position().Row)
	assert.Equal(t, 1, c.position().Col)

	r, ok = c.advance()
	assert.True(t, ok)
	assert.Equal(t, '\n', r)
	assert.Equal(t, 1, c.position().Row)
	assert.Equal(t, 0, c.position().Col)

	r, ok = c.advance()
	assert.True(t, ok)
	assert.Equal(t, 'b', r)
	assert.True(t, c.atEOF())

	_, ok = c.advance()
	assert.False(t, ok)
	assert.True(t, c.atEOF())
}

func TestCursorUnicode(t *testing.T) {
	c := newCursor("héllo")
	r, ok := c.advance()
	assert.True(t, ok)
	assert.Equal(t, 'h', r)
	r, ok = c.advance()
	assert.True(t, ok)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, c.position().Col)
}

func TestConsumeHashCommentWithNewline(t *testing.T) {
	c := newCursor("# hello\nrest")
	body := c.consumeHashComment()
	assert.Equal(t, " hello\n", body)
	assert.Equal(t, 1, c.position().Row)
	assert.Equal(t, 0, c.position().Col)
	assert.Equal(t, "rest", c.remaining())
}

func TestConsumeHashCommentAtEOF(t *testing.T) {
	c := newCursor("# hello")
	body := c.consumeHashComment()
	assert.Equal(t, " hello", body)
	assert.True(t, c.atEOF())
}
