package lexer

import (
	"math"

	"github.com/danvek/nyxlex/token"
	"github.com/danvek/nyxlex/value"
)

// checkedMulAdd10 computes num*10 + digit, reporting overflow rather
// than wrapping (checked multiply-then-add).
func checkedMulAdd10(num, digit int64) (int64, bool) {
	const radix = 10
	if num > (math.MaxInt64-digit)/radix {
		return 0, true
	}
	return num*radix + digit, false
}

// readNumber reads a decimal integer or fractional literal, having
// already consumed the first digit.
func readNumber(c *cursor, start token.Position, first rune) (value.Leaf, *TokenizeError) {
	num := int64(first - '0')

	for {
		r, ok := c.peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		c.advance()
		var overflowed bool
		num, overflowed = checkedMulAdd10(num, int64(r-'0'))
		if overflowed {
			return value.Leaf{}, &TokenizeError{Kind: IntegerOverflow, Span: token.Span{Start: start}}
		}
	}

	if r, ok := c.peek(); !ok || r != '.' {
		return value.Integer(num), nil
	}
	c.advance() // '.'

	f := float64(num)
	i := int64(1)
	sawFractionalDigit := false
	for {
		r, ok := c.peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		c.advance()
		i *= 10
		f += float64(r-'0') / float64(i)
		sawFractionalDigit = true
	}

	if !sawFractionalDigit {
		return value.Leaf{}, &TokenizeError{Kind: TrailingDecimal, Span: token.Span{Start: start}}
	}
	return value.Float(f), nil
}
