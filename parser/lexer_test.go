package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexcompile/apexcompile/reporter"
)

// lex runs the lexer with an aggregating reporter and returns the tokens
// (without the trailing EOF) and every error reported.
func lex(t *testing.T, src string) ([]Token, []reporter.ErrorWithLoc) {
	t.Helper()
	var errs []reporter.ErrorWithLoc
	h := reporter.NewHandler(reporter.NewReporter(func(err reporter.ErrorWithLoc) error {
		errs = append(errs, err)
		return nil
	}, nil))
	toks, err := newLexer([]byte(src), h).run()
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	require.Equal(t, TokenEOF, toks[len(toks)-1].Kind)
	return toks[:len(toks)-1], errs
}

func TestLexTokens(t *testing.T) {
	t.Parallel()
	toks, errs := lex(t, "public class Foo {\n  Integer n = 42;\n}")
	require.Empty(t, errs)

	type tok struct {
		kind      TokenKind
		text      string
		line, col int
	}
	want := []tok{
		{TokenIdent, "public", 1, 1},
		{TokenIdent, "class", 1, 8},
		{TokenIdent, "Foo", 1, 14},
		{TokenPunct, "{", 1, 18},
		{TokenIdent, "Integer", 2, 3},
		{TokenIdent, "n", 2, 11},
		{TokenPunct, "=", 2, 13},
		{TokenIntLiteral, "42", 2, 15},
		{TokenPunct, ";", 2, 17},
		{TokenPunct, "}", 3, 1},
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w.kind, toks[i].Kind, "token %d kind", i)
		assert.Equal(t, w.text, toks[i].Text, "token %d text", i)
		assert.Equal(t, w.line, toks[i].Line, "token %d line", i)
		assert.Equal(t, w.col, toks[i].Col, "token %d col", i)
	}
}

func TestLexNeverMergesCloseAngle(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		src  string
		want []string
	}{
		{"List<List<Integer>> x", []string{"List", "<", "List", "<", "Integer", ">", ">", "x"}},
		{"a >> b", []string{"a", ">", ">", "b"}},
		{"a >>> b", []string{"a", ">", ">", ">", "b"}},
		{"a >= b", []string{"a", ">", "=", "b"}},
		{"a >>>= b", []string{"a", ">", ">", ">", "=", "b"}},
		{"a << b", []string{"a", "<<", "b"}},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			toks, errs := lex(t, tc.src)
			require.Empty(t, errs)
			var texts []string
			for _, tok := range toks {
				texts = append(texts, tok.Text)
			}
			assert.Equal(t, tc.want, texts)
		})
	}
}

func TestLexNumberKinds(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		src  string
		kind TokenKind
	}{
		{"42", TokenIntLiteral},
		{"42L", TokenLongLiteral},
		{"42l", TokenLongLiteral},
		{"3.14", TokenDoubleLiteral},
		{"3.14d", TokenDoubleLiteral},
		{"7D", TokenDoubleLiteral},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			toks, errs := lex(t, tc.src)
			require.Empty(t, errs)
			require.Len(t, toks, 1)
			assert.Equal(t, tc.kind, toks[0].Kind)
			// Suffixes stay in the raw text for the translator to strip.
			assert.Equal(t, tc.src, toks[0].Text)
		})
	}
}

func TestLexSkipsComments(t *testing.T) {
	t.Parallel()
	toks, errs := lex(t, "a // line comment\n/* block\n   comment */ b")
	require.Empty(t, errs)
	require.Len(t, toks, 2)
	assert.Equal(t, "a", toks[0].Text)
	assert.Equal(t, "b", toks[1].Text)
	assert.Equal(t, 3, toks[1].Line)
}

func TestLexStringKeepsEscapesRaw(t *testing.T) {
	t.Parallel()
	toks, errs := lex(t, `s = 'it\'s\n'`)
	require.Empty(t, errs)
	require.Len(t, toks, 3)
	assert.Equal(t, TokenStringLiteral, toks[2].Kind)
	assert.Equal(t, `'it\'s\n'`, toks[2].Text)
}

func TestLexUnterminatedBlockComment(t *testing.T) {
	t.Parallel()
	toks, errs := lex(t, "a /* never\ncloses")
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "unterminated block comment")
	assert.Equal(t, 1, errs[0].Location().StartLine)
	assert.Equal(t, 3, errs[0].Location().StartColumn)

	require.Len(t, toks, 1)
	assert.Equal(t, "a", toks[0].Text)
}

func TestLexReportsAndContinues(t *testing.T) {
	t.Parallel()
	toks, errs := lex(t, "a # b\n'no close")
	require.Len(t, errs, 2)
	assert.ErrorContains(t, errs[0], "invalid character")
	assert.Equal(t, 1, errs[0].Location().StartLine)
	assert.Equal(t, 3, errs[0].Location().StartColumn)
	assert.ErrorContains(t, errs[1], "unterminated string literal")
	assert.Equal(t, 2, errs[1].Location().StartLine)

	// The bad character is skipped and lexing keeps going.
	require.NotEmpty(t, toks)
	assert.Equal(t, "a", toks[0].Text)
	assert.Equal(t, "b", toks[1].Text)
}
