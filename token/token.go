// Package token defines the token stream vocabulary produced by the
// lexer: source positions and spans, per-token leading-comment metadata,
// the tagged-union Token type, and the Item sum type (a successful token
// or a lexical error) that the tokenizer yields.
package token

import (
	"fmt"
	"strings"

	"github.com/danvek/nyxlex/value"
)

// Position is a zero-based (row, col) pair counted in Unicode scalar
// values.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Span is a half-open source region. End is nil until the token that
// owns the span has finished; the span of a lexical error carries only
// Start and leaves End nil.
type Span struct {
	Start Position
	End   *Position
}

// Until returns a span covering from s's start to other's end, mirroring
// the Meta::until helper in the reference tokenizer this lexer is
// modeled on.
func (s Span) Until(other Span) Span {
	return Span{Start: s.Start, End: other.End}
}

// Meta carries a token's span plus any comments that immediately
// preceded it, in source order.
type Meta struct {
	Span     Span
	Comments []string
}

// Type enumerates every Token variant.
type Type int

const (
	CurlyBOpen Type = iota
	CurlyBClose
	SquareBOpen
	SquareBClose
	ParenOpen
	ParenClose

	Equal
	Semicolon
	Dot

	Add
	Sub
	Mul
	Div
	Concat

	Let
	In
	With
	Import
	Rec

	Ident
	Value
	Interpol
)

// Symbols maps each Type to its canonical name. Participle's lexer
// convention uses this table to let a grammar refer to token kinds by
// name; it also backs Type.String().
var Symbols = map[Type]string{
	CurlyBOpen:  "CurlyBOpen",
	CurlyBClose: "CurlyBClose",
	SquareBOpen: "SquareBOpen",
	SquareBClose: "SquareBClose",
	ParenOpen:   "ParenOpen",
	ParenClose:  "ParenClose",
	Equal:       "Equal",
	Semicolon:   "Semicolon",
	Dot:         "Dot",
	Add:         "Add",
	Sub:         "Sub",
	Mul:         "Mul",
	Div:         "Div",
	Concat:      "Concat",
	Let:         "Let",
	In:          "In",
	With:        "With",
	Import:      "Import",
	Rec:         "Rec",
	Ident:       "Ident",
	Value:       "Value",
	Interpol:    "Interpol",
}

// Keywords maps a bare-identifier body to its keyword Type, used by the
// dispatcher once the lookahead classifier has already decided the run
// is an Ident rather than a Path or Uri.
var Keywords = map[string]Type{
	"let":    Let,
	"in":     In,
	"with":   With,
	"import": Import,
	"rec":    Rec,
}

func (t Type) String() string {
	if name, ok := Symbols[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// InterpolPart is one segment of an Interpol token: either a literal run
// of decoded string text, or a nested group of tokens produced by
// recursively tokenizing a `${ ... }` expression.
type InterpolPart struct {
	IsTokens bool
	Literal  string
	Tokens   []Item
}

// Token is a flattened representation of the Token tagged union. Only
// the fields relevant to Type are populated; all others are zero.
type Token struct {
	Type    Type
	Ident   string
	Leaf    value.Leaf
	Interp  []InterpolPart
}

// String renders the token for debug output and test failures.
func (t Token) String() string {
	switch t.Type {
	case Ident:
		return fmt.Sprintf("Ident(%q)", t.Ident)
	case Value:
		return t.Leaf.String()
	case Interpol:
		var b strings.Builder
		b.WriteString("Interpol(")
		for i, part := range t.Interp {
			if i > 0 {
				b.WriteString(", ")
			}
			if part.IsTokens {
				b.WriteString(fmt.Sprintf("Tokens(%d)", len(part.Tokens)))
			} else {
				b.WriteString(fmt.Sprintf("Literal(%q)", part.Literal))
			}
		}
		b.WriteString(")")
		return b.String()
	default:
		return t.Type.String()
	}
}

// Item is the lazily-pulled unit of the token stream: either a
// successfully lexed (Meta, Token) pair, or a lexical error anchored at
// Span. Exactly one of the two states holds; check Err first.
type Item struct {
	Meta  Meta
	Token Token

	Err     error
	ErrSpan Span
}

// Ok reports whether this item is a successful token rather than an
// error.
func (it Item) Ok() bool { return it.Err == nil }
