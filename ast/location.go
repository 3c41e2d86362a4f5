package ast

import "strings"

// Location is a half-open source range: it starts at the first character of
// a construct and ends at the first character past it. Lines and columns are
// 1-based; a zero component is absent. A location whose start line is absent
// is unknown as a whole.
//
// The end of a construct is encoded as the start of the token immediately
// following it (or the last token's own start at end of input). Whitespace
// and comments between tokens belong to no token, so this encoding includes
// trailing content up to, but not including, the next token.
type Location struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// UnknownLoc is the sentinel for a location that could not be determined.
var UnknownLoc = Location{}

// IsUnknown reports whether the location carries no position information.
func (l Location) IsUnknown() bool { return l.StartLine == 0 }

// Span returns the smallest location enclosing all of locs: the minimum
// start position and the maximum end position, where lines order before
// columns and an absent component in one operand defers to the other. Span
// of a single location is that location; Span is commutative and
// associative.
func Span(locs ...Location) Location {
	if len(locs) == 0 {
		return UnknownLoc
	}
	out := locs[0]
	for _, l := range locs[1:] {
		out = span2(out, l)
	}
	return out
}

func span2(a, b Location) Location {
	out := Location{}
	out.StartLine, out.StartColumn = minPos(a.StartLine, a.StartColumn, b.StartLine, b.StartColumn)
	out.EndLine, out.EndColumn = maxPos(a.EndLine, a.EndColumn, b.EndLine, b.EndColumn)
	return out
}

func minPos(la, ca, lb, cb int) (int, int) {
	switch {
	case la == 0:
		return lb, cb
	case lb == 0:
		return la, ca
	case la < lb:
		return la, ca
	case lb < la:
		return lb, cb
	case ca == 0:
		return la, cb
	case cb == 0:
		return la, ca
	}
	return la, min(ca, cb)
}

func maxPos(la, ca, lb, cb int) (int, int) {
	switch {
	case la == 0:
		return lb, cb
	case lb == 0:
		return la, ca
	case la > lb:
		return la, ca
	case lb > la:
		return lb, cb
	case ca == 0:
		return la, cb
	case cb == 0:
		return la, ca
	}
	return la, max(ca, cb)
}

// ExtractFrom slices the text covered by l out of the full source it was
// computed against. It returns false for an unknown location or one that
// falls outside the text.
func (l Location) ExtractFrom(source string) (string, bool) {
	if l.IsUnknown() {
		return "", false
	}
	lines := strings.Split(source, "\n")
	endLine := l.EndLine
	if endLine == 0 || endLine > len(lines) {
		endLine = len(lines)
	}
	if l.StartLine > len(lines) {
		return "", false
	}
	part := lines[l.StartLine-1 : endLine]
	out := make([]string, len(part))
	copy(out, part)
	// trim the last line first so the column offsets stay valid when the
	// range is a single line
	last := len(out) - 1
	if l.EndLine == endLine && l.EndColumn > 0 && l.EndColumn-1 <= len(out[last]) {
		out[last] = out[last][:l.EndColumn-1]
	}
	if l.StartColumn > 0 {
		if l.StartColumn-1 > len(out[0]) {
			return "", false
		}
		out[0] = out[0][l.StartColumn-1:]
	}
	return strings.Join(out, "\n"), true
}
