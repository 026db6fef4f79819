package lexer

import (
	"testing"

	"github.com/danvek/nyxlex/token"
	"github.com/danvek/nyxlex/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(t *testing.T, items []token.Item) []token.Type {
	t.Helper()
	out := make([]token.Type, len(items))
	for i, it := range items {
		require.True(t, it.Ok(), "item %d is an error: %v", i, it.Err)
		out[i] = it.Token.Type
	}
	return out
}

func TestTokenSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Type
	}{
		{
			name:  "simple attr set",
			input: "{ int = 42; }",
			want:  []token.Type{token.CurlyBOpen, token.Ident, token.Equal, token.Value, token.Semicolon, token.CurlyBClose},
		},
		{
			name:  "float",
			input: "{ float = 1.234; }",
			want:  []token.Type{token.CurlyBOpen, token.Ident, token.Equal, token.Value, token.Semicolon, token.CurlyBClose},
		},
		{
			name:  "arithmetic precedence tokens",
			input: "1 + 2 * 3",
			want:  []token.Type{token.Value, token.Add, token.Value, token.Mul, token.Value},
		},
		{
			name:  "division gated by space",
			input: "a/ 3",
			want:  []token.Type{token.Ident, token.Div, token.Value},
		},
		{
			name:  "let in",
			input: "let a = 3; in a",
			want:  []token.Type{token.Let, token.Ident, token.Equal, token.Value, token.Semicolon, token.In, token.Ident},
		},
		{
			name:  "concat operator",
			input: "[1] ++ [2]",
			want: []token.Type{
				token.SquareBOpen, token.Value, token.SquareBClose,
				token.Concat,
				token.SquareBOpen, token.Value, token.SquareBClose,
			},
		},
		{
			name:  "keywords",
			input: "let in with import rec notakeyword",
			want:  []token.Type{token.Let, token.In, token.With, token.Import, token.Rec, token.Ident},
		},
		{
			name:  "leading dot is Dot not float",
			input: ".5",
			want:  []token.Type{token.Dot, token.Value},
		},
		{
			name:  "negative number is two tokens",
			input: "-5",
			want:  []token.Type{token.Sub, token.Value},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types(t, Tokenize(tt.input)))
		})
	}
}

func TestScenarioSimpleAttrSetLeaves(t *testing.T) {
	items := Tokenize("{ int = 42; }")
	require.Equal(t, []token.Type{token.CurlyBOpen, token.Ident, token.Equal, token.Value, token.Semicolon, token.CurlyBClose}, types(t, items))
	assert.Equal(t, "int", items[1].Token.Ident)
	n, ok := items[3].Token.Leaf.AsInteger()
	require.True(t, ok)
	assert.Equal(t, int64(42), n)
}

func TestScenarioFloatLeaf(t *testing.T) {
	items := Tokenize("{ float = 1.234; }")
	f, ok := items[3].Token.Leaf.AsFloat()
	require.True(t, ok)
	assert.InDelta(t, 1.234, f, 1e-9)
}

func TestScenarioDivisionGatedBySpaceIdent(t *testing.T) {
	items := Tokenize("a/ 3")
	assert.Equal(t, "a", items[0].Token.Ident)
}

func TestPathAndUriLeaves(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  value.Leaf
	}{
		{"relative path with operators", "a+3/5+b", value.Path(value.Relative, "a+3/5+b")},
		{"home path", "~/hello/world", value.Path(value.Home, "hello/world")},
		{"store path", "<nixpkgs>", value.Path(value.Store, "nixpkgs")},
		{"uri", "https://google.com/?q=Hello+World", value.Path(value.Uri, "https://google.com/?q=Hello+World")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Tokenize(tt.input)
			require.Len(t, items, 1)
			require.True(t, items[0].Ok())
			assert.Equal(t, token.Value, items[0].Token.Type)
			assert.Equal(t, tt.want, items[0].Token.Leaf)
		})
	}
}

func TestFatalErrorKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ErrorKind
	}{
		{"integer overflow", "overflow = 9999999999999999999999999999", IntegerOverflow},
		{"lone quote is undefined token", "'x", UndefinedToken},
		{"unclosed block comment", "/* never closes", UnclosedComment},
		{"undefined token character", "@", UndefinedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Tokenize(tt.input)
			require.NotEmpty(t, items)
			last := items[len(items)-1]
			require.False(t, last.Ok())
			te, ok := last.Err.(*TokenizeError)
			require.True(t, ok)
			assert.Equal(t, tt.want, te.Kind)
		})
	}
}

func TestScenarioIntegerOverflowSpanAnchoredAtLiteralStart(t *testing.T) {
	items := Tokenize("overflow = 9999999999999999999999999999")
	require.NotEmpty(t, items)
	last := items[len(items)-1]
	require.False(t, last.Ok())
	te, ok := last.Err.(*TokenizeError)
	require.True(t, ok)
	assert.Equal(t, token.Position{Row: 0, Col: 11}, te.Span.Start)
}

func TestCommentsAttachToFollowingTokenInSourceOrder(t *testing.T) {
	items := Tokenize("# first\n/* second */\nfoo")
	require.Len(t, items, 1)
	require.True(t, items[0].Ok())
	require.Len(t, items[0].Meta.Comments, 2)
	assert.Equal(t, " first\n", items[0].Meta.Comments[0])
	assert.Equal(t, " second ", items[0].Meta.Comments[1])
}

func TestSpansAreMonotonicAndNonOverlapping(t *testing.T) {
	items := Tokenize("let a = 3; in a")
	for i, it := range items {
		require.True(t, it.Ok())
		require.NotNil(t, it.Meta.Span.End)
		if i > 0 {
			prevEnd := items[i-1].Meta.Span.End
			start := it.Meta.Span.Start
			before := prevEnd.Row < start.Row || (prevEnd.Row == start.Row && prevEnd.Col <= start.Col)
			assert.True(t, before, "token %d starts before the previous token ends", i)
		}
	}
}
