package lexer

import (
	"strings"

	"github.com/danvek/nyxlex/token"
)

// readIdentOrUriRun reads the run backing an Ident or Uri token, having
// already consumed its first rune. For a plain identifier, only
// letters/digits/underscore continue the run; for a Uri verdict the run
// additionally continues through ':' and the extended URI punctuation
// and path characters, which is what lets the scheme, ':', and resource
// all fall out of a single contiguous read.
func readIdentOrUriRun(c *cursor, first rune, kind identKind) string {
	include := func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return true
		case r == ':', r == '?', r == '@', r == '&', r == '=', r == '$',
			r == ',', r == '!', r == '~', r == '*', r == '\'', r == '%':
			return kind == identKindUri
		default:
			return kind == identKindUri && isPathChar(r)
		}
	}
	var b strings.Builder
	b.WriteRune(first)
	b.WriteString(readRun(c, include))
	return b.String()
}

// identToken turns a completed Ident-kind run into either a keyword
// token or a bare Ident token.
func identToken(ident string) token.Token {
	if kw, ok := token.Keywords[ident]; ok {
		return token.Token{Type: kw}
	}
	return token.Token{Type: token.Ident, Ident: ident}
}
