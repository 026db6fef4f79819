package lexer

import (
	"strings"

	"github.com/danvek/nyxlex/token"
	"github.com/danvek/nyxlex/value"
)

// readString reads a string literal body, having already consumed its
// opening delimiter (either `"` or both quotes of `''`). multiline
// selects the indented `''...''` reader; otherwise the single-line
// `"..."` reader is used. Both share the same `${...}` interpolation
// handling.
func (t *Tokenizer) readString(start token.Position, multiline bool) (token.Token, *TokenizeError) {
	var parts []token.InterpolPart
	var literal strings.Builder

	flush := func() {
		parts = append(parts, token.InterpolPart{Literal: literal.String()})
		literal.Reset()
	}

	for {
		r, ok := t.c.peek()
		if !ok {
			return token.Token{}, &TokenizeError{Kind: UnexpectedEOF, Span: token.Span{Start: start}}
		}

		switch {
		case !multiline && r == '"':
			t.c.advance()
			return finishString(parts, literal.String())

		case multiline && r == '\'':
			t.c.advance()
			r2, ok2 := t.c.peek()
			if !ok2 {
				return token.Token{}, &TokenizeError{Kind: UnexpectedEOF, Span: token.Span{Start: start}}
			}
			if r2 == '\'' {
				t.c.advance()
				return finishString(parts, literal.String())
			}
			literal.WriteRune('\'')

		case multiline && r == '\n':
			t.c.advance()
			if literal.Len() > 0 {
				literal.WriteRune('\n')
			}
			for {
				r3, ok3 := t.c.peek()
				if !ok3 || (r3 != ' ' && r3 != '\t') {
					break
				}
				t.c.advance()
			}

		case !multiline && r == '\\':
			t.c.advance()
			esc, ok4 := t.c.advance()
			if !ok4 {
				return token.Token{}, &TokenizeError{Kind: UnexpectedEOF, Span: token.Span{Start: start}}
			}
			literal.WriteRune(esc)

		case r == '$':
			groupStart := t.c.position()
			t.c.advance()
			r2, ok2 := t.c.peek()
			if ok2 && r2 == '{' {
				t.c.advance()
				flush()
				group, gerr := t.readInterpolGroup(groupStart)
				if gerr != nil {
					return token.Token{}, gerr
				}
				parts = append(parts, token.InterpolPart{IsTokens: true, Tokens: group})
				continue
			}
			literal.WriteRune('$')

		default:
			t.c.advance()
			literal.WriteRune(r)
		}
	}
}

// finishString assembles the completed parts list into either a plain
// Value(Str) token (no interpolation occurred) or an Interpol token.
func finishString(parts []token.InterpolPart, trailing string) (token.Token, *TokenizeError) {
	hasInterpol := false
	for _, p := range parts {
		if p.IsTokens {
			hasInterpol = true
			break
		}
	}

	if !hasInterpol {
		return token.Token{Type: token.Value, Leaf: value.Str(trailing)}, nil
	}
	if trailing != "" {
		parts = append(parts, token.InterpolPart{Literal: trailing})
	}
	return token.Token{Type: token.Interpol, Interp: parts}, nil
}

// readInterpolGroup pulls tokens from the shared cursor until the `}`
// matching the `${` that opened this group, tracking brace depth so
// that nested `{ }` (e.g. an attribute set literal inside the
// interpolation) doesn't close the group early. start is the position
// of the `$` that opened this group, used to anchor an UnexpectedEOF if
// the group never closes. Any error produced while pulling those tokens
// — including one raised by a further nested interpolation — propagates
// out verbatim, unwrapped.
func (t *Tokenizer) readInterpolGroup(start token.Position) ([]token.Item, *TokenizeError) {
	var items []token.Item
	depth := 0
	for {
		item, ok := t.Next()
		if !ok {
			return nil, &TokenizeError{Kind: UnexpectedEOF, Span: token.Span{Start: start}}
		}
		if !item.Ok() {
			if te, ok2 := item.Err.(*TokenizeError); ok2 {
				return nil, te
			}
			return nil, &TokenizeError{Kind: UndefinedToken, Span: item.ErrSpan}
		}
		switch item.Token.Type {
		case token.CurlyBOpen:
			depth++
		case token.CurlyBClose:
			if depth == 0 {
				return items, nil
			}
			depth--
		}
		items = append(items, item)
	}
}
