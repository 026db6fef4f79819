package lexer

import (
	"fmt"

	"github.com/danvek/nyxlex/token"
)

// ErrorKind enumerates the lexical fault kinds the tokenizer can report.
type ErrorKind int

const (
	// IntegerOverflow: a decimal integer literal exceeds signed 64-bit range.
	IntegerOverflow ErrorKind = iota
	// TrailingDecimal: '.' after digits with no following digit.
	TrailingDecimal
	// UnexpectedEOF: input ended inside a string or interpolation.
	UnexpectedEOF
	// UndefinedToken: the current code point does not start any token.
	UndefinedToken
	// TrailingSlash: a path body ends with '/'.
	TrailingSlash
	// UnclosedComment: '/*' without a matching '*/'.
	UnclosedComment
)

func (k ErrorKind) String() string {
	switch k {
	case IntegerOverflow:
		return "IntegerOverflow"
	case TrailingDecimal:
		return "TrailingDecimal"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case UndefinedToken:
		return "UndefinedToken"
	case TrailingSlash:
		return "TrailingSlash"
	case UnclosedComment:
		return "UnclosedComment"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// TokenizeError is the lexer's sole error type. It carries the span of
// the offending region alongside the fault kind.
type TokenizeError struct {
	Kind ErrorKind
	Span token.Span
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind, e.Span.Start)
}

// Is lets errors.Is match on Kind alone, so callers can write
// errors.Is(err, &TokenizeError{Kind: lexer.IntegerOverflow}) without
// needing to know the offending span.
func (e *TokenizeError) Is(target error) bool {
	other, ok := target.(*TokenizeError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
