package ast

import "strings"

// TypeRef is a reference to a (possibly generic, possibly array) type, such
// as `Map<Id, List<Account>>[]`. It is a plain value, not a node: type
// references carry no translated substructure, so they do not participate in
// child enumeration or the node count.
type TypeRef struct {
	// Parts are the dotted components of the name, e.g. System.Label has
	// two parts.
	Parts []TypeRefPart
	// Arrays is the number of trailing [] pairs.
	Arrays int
	// Loc is the source range of the whole reference.
	Loc Location
}

// TypeRefPart is one dotted component of a TypeRef, with its type arguments
// if any.
type TypeRefPart struct {
	Name string
	Args []TypeRef
}

// String renders the reference in source syntax, without locations.
func (t TypeRef) String() string {
	var sb strings.Builder
	for i, p := range t.Parts {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(p.Name)
		if len(p.Args) > 0 {
			sb.WriteByte('<')
			for j, a := range p.Args {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(a.String())
			}
			sb.WriteByte('>')
		}
	}
	sb.WriteString(strings.Repeat("[]", t.Arrays))
	return sb.String()
}
