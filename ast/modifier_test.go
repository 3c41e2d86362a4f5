package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyword(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		in   string
		want Keyword
		ok   bool
	}{
		{in: "public", want: KeywordPublic, ok: true},
		{in: "PUBLIC", want: KeywordPublic, ok: true},
		{in: "Global", want: KeywordGlobal, ok: true},
		{in: "with sharing", want: KeywordWithSharing, ok: true},
		{in: "WITH  SHARING", want: KeywordWithSharing, ok: true},
		{in: "with\tsharing", want: KeywordWithSharing, ok: true},
		{in: "inherited sharing", want: KeywordInheritedSharing, ok: true},
		{in: "testmethod", want: KeywordTestMethod, ok: true},
		{in: "webservice", want: KeywordWebService, ok: true},
		{in: "sharing"},
		{in: "friend"},
		{in: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseKeyword(tc.in)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestKeywordRoundTrip(t *testing.T) {
	t.Parallel()
	kws := Keywords()
	require.Len(t, kws, 15)
	for _, kw := range kws {
		got, ok := ParseKeyword(kw.String())
		require.True(t, ok, "spelling %q", kw.String())
		assert.Equal(t, kw, got)
	}
}

func TestApplyModifiersIsOneShot(t *testing.T) {
	t.Parallel()
	c := &Counter{}
	decl := NewClassDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "Foo"), nil, nil, nil)
	mods := []Modifier{NewKeywordModifier(c, UnknownLoc, KeywordPublic)}

	require.NoError(t, decl.ApplyModifiers(mods))
	assert.Equal(t, mods, decl.Modifiers())
	assert.Contains(t, decl.Children(), Node(mods[0]))

	assert.Error(t, decl.ApplyModifiers(mods))
}
