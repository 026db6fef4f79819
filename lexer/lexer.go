// Package lexer implements the lexical analyzer: it turns source text
// into a stream of token.Item values, handling trivia, numbers,
// strings with interpolation, and paths/URIs along the way.
package lexer

import (
	"github.com/danvek/nyxlex/token"
	"github.com/danvek/nyxlex/value"
)

// Tokenizer pulls token.Item values one at a time from an input
// string. It is not safe for concurrent use.
type Tokenizer struct {
	c    *cursor
	done bool
}

// NewTokenizer prepares a Tokenizer over input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{c: newCursor(input)}
}

// Next returns the next item and true, or a zero item and false once
// the stream has ended. The stream ends either at a clean end of
// input or immediately after the one Err item a fatal lexical error
// produces — Next never yields anything past the first error.
func (t *Tokenizer) Next() (token.Item, bool) {
	if t.done {
		return token.Item{}, false
	}

	var meta token.Meta
	if terr := skipTrivia(t.c, &meta); terr != nil {
		t.done = true
		return token.Item{Err: terr, ErrSpan: terr.Span}, true
	}

	if t.c.atEOF() {
		t.done = true
		return token.Item{}, false
	}

	start := t.c.position()
	tok, terr := t.dispatch(start)
	if terr != nil {
		t.done = true
		return token.Item{Err: terr, ErrSpan: terr.Span}, true
	}

	end := t.c.position()
	meta.Span = token.Span{Start: start, End: &end}
	return token.Item{Meta: meta, Token: tok}, true
}

// Tokenize eagerly runs a Tokenizer over input to completion,
// collecting every item it produces, including a trailing Err item if
// the input is lexically invalid.
func Tokenize(input string) []token.Item {
	t := NewTokenizer(input)
	var items []token.Item
	for {
		item, ok := t.Next()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

// dispatch reads one token body, having already skipped trivia and
// recorded start as its starting position. The lookahead classifier's
// verdict is computed over the whole remaining input before anything
// is consumed, and a Path verdict (or a literal '~') wins priority
// over every other rule below — including digits and operators — which
// is what lets sequences like "1-2/3" or "a+3/5+b" single-token into a
// relative path instead of splitting on '-', '+' or '/'.
func (t *Tokenizer) dispatch(start token.Position) (token.Token, *TokenizeError) {
	kind := classify(t.c.remaining())
	r, _ := t.c.advance()

	if r == '~' || kind == identKindPath {
		leaf, err := readAnchoredPath(t.c, start, r)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Type: token.Value, Leaf: leaf}, nil
	}

	switch r {
	case '{':
		return token.Token{Type: token.CurlyBOpen}, nil
	case '}':
		return token.Token{Type: token.CurlyBClose}, nil
	case '[':
		return token.Token{Type: token.SquareBOpen}, nil
	case ']':
		return token.Token{Type: token.SquareBClose}, nil
	case '(':
		return token.Token{Type: token.ParenOpen}, nil
	case ')':
		return token.Token{Type: token.ParenClose}, nil
	case '=':
		return token.Token{Type: token.Equal}, nil
	case ';':
		return token.Token{Type: token.Semicolon}, nil
	case '.':
		return token.Token{Type: token.Dot}, nil
	case '-':
		return token.Token{Type: token.Sub}, nil
	case '*':
		return token.Token{Type: token.Mul}, nil
	case '/':
		return token.Token{Type: token.Div}, nil

	case '+':
		if r2, ok := t.c.peek(); ok && r2 == '+' {
			t.c.advance()
			return token.Token{Type: token.Concat}, nil
		}
		return token.Token{Type: token.Add}, nil

	case '<':
		leaf, err := readStorePath(t.c, start)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Type: token.Value, Leaf: leaf}, nil

	case '"':
		return t.readString(start, false)

	case '\'':
		r2, ok := t.c.advance()
		if !ok || r2 != '\'' {
			return token.Token{}, &TokenizeError{Kind: UndefinedToken, Span: token.Span{Start: start}}
		}
		return t.readString(start, true)
	}

	switch {
	case r >= '0' && r <= '9':
		leaf, err := readNumber(t.c, start, r)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Type: token.Value, Leaf: leaf}, nil

	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		ident := readIdentOrUriRun(t.c, r, kind)
		if kind == identKindUri {
			return token.Token{Type: token.Value, Leaf: value.Path(value.Uri, ident)}, nil
		}
		return identToken(ident), nil

	default:
		return token.Token{}, &TokenizeError{Kind: UndefinedToken, Span: token.Span{Start: start}}
	}
}
