package parser

import (
	"fmt"

	"github.com/apexcompile/apexcompile/ast"
)

// TokenKind is the lexical class of a token.
type TokenKind int

// Token kinds.
const (
	TokenEOF TokenKind = iota
	// TokenIdent is a word: an identifier or any keyword. Apex keywords
	// are contextual and case-insensitive, so the parser tells them apart.
	TokenIdent
	TokenIntLiteral
	TokenLongLiteral
	TokenDoubleLiteral
	TokenStringLiteral
	// TokenPunct is an operator or punctuation symbol; Text holds the
	// exact symbol.
	TokenPunct
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "end of input",
	TokenIdent:         "identifier",
	TokenIntLiteral:    "integer literal",
	TokenLongLiteral:   "long literal",
	TokenDoubleLiteral: "double literal",
	TokenStringLiteral: "string literal",
	TokenPunct:         "punctuation",
}

// String returns a human-readable kind name for error messages.
func (k TokenKind) String() string { return tokenKindNames[k] }

// Token is one lexed token. Text is the raw source slice: string literals
// keep their quotes and long literals keep their suffix.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int // 1-based
	Col    int // 1-based
	Offset int // byte offset into the source
}

// Describe renders the token for error messages.
func (t Token) Describe() string {
	if t.Kind == TokenEOF {
		return tokenKindNames[TokenEOF]
	}
	return fmt.Sprintf("%q", t.Text)
}

func (t Token) start() ast.Location {
	return ast.Location{StartLine: t.Line, StartColumn: t.Col}
}

// TokenStream is the lexed token sequence for one file, ending in an EOF
// token. It supports position lookup by token index, which is how source
// locations are computed for parse-tree spans.
type TokenStream struct {
	file string
	toks []Token
}

// File returns the stream's file identifier.
func (s *TokenStream) File() string { return s.file }

// Len returns the number of tokens, including the trailing EOF.
func (s *TokenStream) Len() int { return len(s.toks) }

// Get returns the token at index i.
func (s *TokenStream) Get(i int) Token { return s.toks[i] }

// Location computes the source range of the token span [start, stop]. The
// range starts at the first token's start and ends at the start of the
// token following stop, so that trailing whitespace and comments inside the
// span are included. At end of input the last token's own start is reused.
func (s *TokenStream) Location(start, stop int) ast.Location {
	if start < 0 || start >= len(s.toks) || stop < start {
		return ast.UnknownLoc
	}
	first := s.toks[start]
	end := s.toks[stop]
	if stop+1 < len(s.toks) {
		end = s.toks[stop+1]
	}
	return ast.Location{
		StartLine:   first.Line,
		StartColumn: first.Col,
		EndLine:     end.Line,
		EndColumn:   end.Col,
	}
}
