// Package participleadapter adapts the lexer package to
// github.com/alecthomas/participle/v2/lexer's Definition and Lexer
// interfaces, so a grammar built with participle can consume this
// lexer's token stream without participle ever knowing it is reading
// a pull-based, interpolation-aware tokenizer underneath. It introduces
// no lexical behavior of its own — every token it hands out comes from
// what the lexer package produced, reshaped into participle's flat,
// pull-one-at-a-time Token/Position vocabulary; the one reshaping beyond
// a one-to-one mapping is the splicing of Interpol tokens (see flatten).
package participleadapter

import (
	"fmt"
	"io"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/danvek/nyxlex/lexer"
	"github.com/danvek/nyxlex/token"
)

// symbolOffset shifts our Type values away from 0 so that none of them
// collide with participle's own EOF pseudo-token, which is -1.
const symbolOffset = 1

func symbolType(t token.Type) plexer.TokenType {
	return plexer.TokenType(int(t) + symbolOffset)
}

// Definition implements participle/v2/lexer.Definition on top of this
// module's Tokenizer.
type Definition struct{}

// Symbols returns every token.Type under its Symbols name, shifted by
// symbolOffset. participle uses this to let a grammar reference token
// kinds symbolically (e.g. `@Ident`) rather than by raw TokenType.
func (Definition) Symbols() map[string]plexer.TokenType {
	out := make(map[string]plexer.TokenType, len(token.Symbols))
	for t, name := range token.Symbols {
		out[name] = symbolType(t)
	}
	return out
}

// Lex reads r to completion, tokenizes it eagerly, and returns a Lexer
// that replays the flattened result. A fatal lexical error is reported
// immediately rather than surfacing mid-stream, since participle's
// Definition.Lex contract has no mechanism for an in-stream error token.
func (Definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	items := lexer.Tokenize(string(data))
	tokens, lexErr := flatten(filename, items)
	if lexErr != nil {
		return nil, lexErr
	}
	return &tokenLexer{filename: filename, tokens: tokens}, nil
}

// tokenLexer replays a pre-flattened token slice, satisfying
// participle/v2/lexer.Lexer.
type tokenLexer struct {
	filename string
	tokens   []plexer.Token
	pos      int
}

func (l *tokenLexer) Next() (plexer.Token, error) {
	if l.pos >= len(l.tokens) {
		return plexer.EOFToken(plexer.Position{Filename: l.filename}), nil
	}
	t := l.tokens[l.pos]
	l.pos++
	return t, nil
}

// flatten walks a lexer item stream and produces participle's flat
// token sequence. The one non-obvious behavioral choice lives here: an
// Interpol token's Tokens groups are spliced directly into the output
// in place of the token that held them — participle sees a seamless
// run of tokens, with each interpolation's literal runs surfacing as
// ordinary synthetic Value tokens rather than as a nested structure it
// would have no way to parse.
func flatten(filename string, items []token.Item) ([]plexer.Token, error) {
	var out []plexer.Token
	for _, it := range items {
		if !it.Ok() {
			return nil, lexError(filename, it)
		}
		toks, err := flattenToken(filename, it)
		if err != nil {
			return nil, err
		}
		out = append(out, toks...)
	}
	return out, nil
}

func flattenToken(filename string, it token.Item) ([]plexer.Token, error) {
	pos := position(filename, it.Meta.Span.Start)

	if it.Token.Type != token.Interpol {
		return []plexer.Token{{
			Type:  symbolType(it.Token.Type),
			Value: displayValue(it.Token),
			Pos:   pos,
		}}, nil
	}

	var out []plexer.Token
	for _, part := range it.Token.Interp {
		if !part.IsTokens {
			out = append(out, plexer.Token{
				Type:  symbolType(token.Value),
				Value: part.Literal,
				Pos:   pos,
			})
			continue
		}
		nested, err := flatten(filename, part.Tokens)
		if err != nil {
			return nil, err
		}
		out = append(out, nested...)
	}
	return out, nil
}

// displayValue is the text participle associates with a token. For an
// Ident token this is the identifier itself; for a Value token it is the
// leaf's String() rendering (e.g. `Integer(42)`, `Str("hi")`), not the
// bare literal. Punctuation and keyword tokens carry no source text in
// this lexer's model, so their canonical Symbols name stands in for it.
func displayValue(t token.Token) string {
	switch t.Type {
	case token.Ident:
		return t.Ident
	case token.Value:
		return t.Leaf.String()
	default:
		return t.Type.String()
	}
}

// position converts a zero-based (row, col) Position into participle's
// 1-based line/column convention. Byte offset is not tracked by the
// cursor, so Offset is always 0.
func position(filename string, p token.Position) plexer.Position {
	return plexer.Position{
		Filename: filename,
		Line:     p.Row + 1,
		Column:   p.Col + 1,
	}
}

func lexError(filename string, it token.Item) error {
	pos := position(filename, it.ErrSpan.Start)
	return plexer.Errorf(pos, "%s", fmt.Sprint(it.Err))
}
