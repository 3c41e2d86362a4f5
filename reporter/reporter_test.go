package reporter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/reporter"
)

func loc(line, col int) ast.Location {
	return ast.Location{StartLine: line, StartColumn: col}
}

func TestHandlerAbortsByDefault(t *testing.T) {
	t.Parallel()
	h := reporter.NewHandler(nil)

	err := h.HandleErrorf(loc(3, 7), "unexpected %q", "}")
	require.Error(t, err)
	assert.Equal(t, `3:7: unexpected "}"`, err.Error())

	// the first error latches; later reports return it unchanged
	again := h.HandleErrorf(loc(9, 1), "another")
	assert.Equal(t, err, again)
	assert.Equal(t, err, h.Error())
}

func TestHandlerAggregates(t *testing.T) {
	t.Parallel()
	var got []reporter.ErrorWithLoc
	h := reporter.NewHandler(reporter.NewReporter(func(err reporter.ErrorWithLoc) error {
		got = append(got, err)
		return nil
	}, nil))

	assert.NoError(t, h.HandleErrorf(loc(1, 1), "first"))
	assert.NoError(t, h.HandleErrorf(loc(2, 5), "second"))
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[1].Location().StartLine)

	// errors were swallowed, but the handler still knows the source is bad
	assert.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
}

func TestHandlerReporterCanAbort(t *testing.T) {
	t.Parallel()
	limit := errors.New("too many errors")
	n := 0
	h := reporter.NewHandler(reporter.NewReporter(func(err reporter.ErrorWithLoc) error {
		n++
		if n >= 2 {
			return limit
		}
		return nil
	}, nil))

	assert.NoError(t, h.HandleErrorf(loc(1, 1), "first"))
	assert.ErrorIs(t, h.HandleErrorf(loc(2, 1), "second"), limit)
	assert.ErrorIs(t, h.Error(), limit)
}

func TestHandlerWarnings(t *testing.T) {
	t.Parallel()
	var warned []reporter.ErrorWithLoc
	h := reporter.NewHandler(reporter.NewReporter(nil, func(err reporter.ErrorWithLoc) {
		warned = append(warned, err)
	}))

	h.HandleWarning(loc(4, 2), errors.New("sharing not specified"))
	require.Len(t, warned, 1)
	assert.Equal(t, 4, warned[0].Location().StartLine)

	// warnings never fail the parse
	assert.NoError(t, h.Error())
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()
	underlying := errors.New("boom")
	wrapped := reporter.Error(loc(2, 3), underlying)
	assert.Equal(t, "2:3: boom", wrapped.Error())
	assert.ErrorIs(t, wrapped, underlying)
	assert.Equal(t, loc(2, 3), wrapped.Location())

	unknown := reporter.Error(ast.UnknownLoc, underlying)
	assert.Equal(t, "boom", unknown.Error())
}

func TestSnippet(t *testing.T) {
	t.Parallel()
	src := "public class Foo {\nInteger x = 2147483648;\n}"

	t.Run("caret under the offending column", func(t *testing.T) {
		t.Parallel()
		got := reporter.Snippet(src, loc(2, 13))
		assert.Equal(t, "Integer x = 2147483648;\n            ^", got)
	})

	t.Run("wide runes align by display width", func(t *testing.T) {
		t.Parallel()
		// the two CJK runes occupy four columns but six bytes
		got := reporter.Snippet("s = '日本';", loc(1, 13))
		assert.Equal(t, "s = '日本';\n          ^", got)
	})

	t.Run("column out of range falls back to the line start", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "}\n^", reporter.Snippet(src, loc(3, 99)))
	})

	t.Run("unknown location", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", reporter.Snippet(src, ast.UnknownLoc))
	})

	t.Run("line out of range", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", reporter.Snippet(src, loc(99, 1)))
	})
}
