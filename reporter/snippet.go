package reporter

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/apexcompile/apexcompile/ast"
)

// Snippet renders the first source line covered by loc together with a
// caret marking the start column, for inclusion in diagnostics:
//
//	Integer x = 2147483648;
//	            ^
//
// The caret is aligned by display width, not byte count, so it stays under
// the right character for tabs and wide runes. Snippet returns "" when loc
// is unknown or outside the source.
func Snippet(source string, loc ast.Location) string {
	if loc.IsUnknown() {
		return ""
	}
	lines := strings.Split(source, "\n")
	if loc.StartLine > len(lines) {
		return ""
	}
	line := strings.TrimRight(lines[loc.StartLine-1], "\r")
	col := loc.StartColumn
	if col < 1 || col-1 > len(line) {
		col = 1
	}
	pad := strings.Repeat(" ", uniseg.StringWidth(line[:col-1]))
	return line + "\n" + pad + "^"
}
