package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan(t *testing.T) {
	t.Parallel()
	a := Location{StartLine: 1, StartColumn: 6, EndLine: 10, EndColumn: 5}
	b := Location{StartLine: 5, StartColumn: 1, EndLine: 6, EndColumn: 10}
	c := Location{StartLine: 3, StartColumn: 4, EndLine: 12, EndColumn: 1}

	testCases := []struct {
		name string
		locs []Location
		want Location
	}{
		{
			name: "none",
			want: UnknownLoc,
		},
		{
			name: "single",
			locs: []Location{a},
			want: a,
		},
		{
			name: "contained",
			locs: []Location{a, b},
			want: a,
		},
		{
			name: "overlapping",
			locs: []Location{a, c},
			want: Location{StartLine: 1, StartColumn: 6, EndLine: 12, EndColumn: 1},
		},
		{
			name: "same start line",
			locs: []Location{
				{StartLine: 2, StartColumn: 9, EndLine: 2, EndColumn: 12},
				{StartLine: 2, StartColumn: 3, EndLine: 2, EndColumn: 7},
			},
			want: Location{StartLine: 2, StartColumn: 3, EndLine: 2, EndColumn: 12},
		},
		{
			name: "unknown defers",
			locs: []Location{UnknownLoc, b},
			want: b,
		},
		{
			name: "absent column defers",
			locs: []Location{
				{StartLine: 2, EndLine: 4},
				{StartLine: 2, StartColumn: 5, EndLine: 4, EndColumn: 9},
			},
			want: Location{StartLine: 2, StartColumn: 5, EndLine: 4, EndColumn: 9},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Span(tc.locs...))
			if len(tc.locs) == 2 {
				assert.Equal(t, tc.want, Span(tc.locs[1], tc.locs[0]), "span must be commutative")
			}
		})
	}
}

func TestLocationExtractFrom(t *testing.T) {
	t.Parallel()
	source := "public class Foo {\n  Integer a;\n}"

	text, ok := Location{StartLine: 1, StartColumn: 8, EndLine: 1, EndColumn: 13}.ExtractFrom(source)
	require.True(t, ok)
	assert.Equal(t, "class", text)

	text, ok = Location{StartLine: 1, StartColumn: 8, EndLine: 2, EndColumn: 10}.ExtractFrom(source)
	require.True(t, ok)
	assert.Equal(t, "class Foo {\n  Integer", text)

	// the end column is exclusive, so widening it by one picks up the space
	text, ok = Location{StartLine: 1, StartColumn: 8, EndLine: 2, EndColumn: 11}.ExtractFrom(source)
	require.True(t, ok)
	assert.Equal(t, "class Foo {\n  Integer ", text)

	// single line, so the end trim must happen before the start trim
	text, ok = Location{StartLine: 2, StartColumn: 3, EndLine: 2, EndColumn: 10}.ExtractFrom(source)
	require.True(t, ok)
	assert.Equal(t, "Integer", text)

	_, ok = UnknownLoc.ExtractFrom(source)
	assert.False(t, ok)

	_, ok = Location{StartLine: 9}.ExtractFrom(source)
	assert.False(t, ok)
}
