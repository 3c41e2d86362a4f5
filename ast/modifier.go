package ast

import (
	"fmt"
	"strings"
)

// Modifier is a declaration modifier: either a keyword or an annotation.
type Modifier interface {
	Node
	modifierNode()
}

// Keyword identifies a keyword modifier.
type Keyword int

// The closed set of keyword modifiers.
const (
	KeywordAbstract Keyword = iota
	KeywordFinal
	KeywordGlobal
	KeywordInheritedSharing
	KeywordOverride
	KeywordPrivate
	KeywordProtected
	KeywordPublic
	KeywordStatic
	KeywordTestMethod
	KeywordTransient
	KeywordVirtual
	KeywordWebService
	KeywordWithSharing
	KeywordWithoutSharing
)

var keywordNames = map[Keyword]string{
	KeywordAbstract:         "abstract",
	KeywordFinal:            "final",
	KeywordGlobal:           "global",
	KeywordInheritedSharing: "inherited sharing",
	KeywordOverride:         "override",
	KeywordPrivate:          "private",
	KeywordProtected:        "protected",
	KeywordPublic:           "public",
	KeywordStatic:           "static",
	KeywordTestMethod:       "testMethod",
	KeywordTransient:        "transient",
	KeywordVirtual:          "virtual",
	KeywordWebService:       "webService",
	KeywordWithSharing:      "with sharing",
	KeywordWithoutSharing:   "without sharing",
}

// canonical form: lowercased with all whitespace removed
var keywordByFolded = func() map[string]Keyword {
	out := make(map[string]Keyword, len(keywordNames))
	for k, name := range keywordNames {
		out[foldKeyword(name)] = k
	}
	return out
}()

func foldKeyword(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// String returns the keyword's canonical source spelling.
func (k Keyword) String() string {
	if s, ok := keywordNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

// ParseKeyword matches a source spelling to a keyword, ignoring case and
// interior whitespace ("With  Sharing" parses as KeywordWithSharing).
func ParseKeyword(s string) (Keyword, bool) {
	k, ok := keywordByFolded[foldKeyword(s)]
	return k, ok
}

// Keywords returns every keyword modifier.
func Keywords() []Keyword {
	return opsOf(keywordNames)
}

// KeywordModifier is a keyword modifier node such as `public` or
// `with sharing`.
type KeywordModifier struct {
	node
	keyword Keyword
}

// NewKeywordModifier constructs a keyword modifier.
func NewKeywordModifier(c *Counter, loc Location, keyword Keyword) *KeywordModifier {
	m := &KeywordModifier{keyword: keyword}
	m.node = newNode(c, loc, nil)
	return m
}

// Keyword returns the modifier's keyword.
func (m *KeywordModifier) Keyword() Keyword { return m.keyword }

func (m *KeywordModifier) Kind() Kind    { return KindKeywordModifier }
func (m *KeywordModifier) modifierNode() {}

// AnnotationModifier is an annotation such as `@IsTest(SeeAllData=true)`.
type AnnotationModifier struct {
	node
	name *Identifier
	args []*AnnotationArgument
}

// NewAnnotationModifier constructs an annotation modifier.
func NewAnnotationModifier(c *Counter, loc Location, name *Identifier, args []*AnnotationArgument) *AnnotationModifier {
	m := &AnnotationModifier{name: name, args: args}
	kids := []Node{name}
	for _, a := range args {
		kids = append(kids, a)
	}
	m.node = newNode(c, loc, kids)
	return m
}

// Name returns the annotation name.
func (m *AnnotationModifier) Name() *Identifier { return m.name }

// Args returns the annotation's arguments in source order.
func (m *AnnotationModifier) Args() []*AnnotationArgument { return m.args }

func (m *AnnotationModifier) Kind() Kind    { return KindAnnotationModifier }
func (m *AnnotationModifier) modifierNode() {}

// AnnotationArgument is a single positional or named annotation argument.
type AnnotationArgument struct {
	node
	name  *Identifier // nil for positional arguments
	value AnnotationValue
}

// NewAnnotationArgument constructs an annotation argument. name is nil for a
// positional argument.
func NewAnnotationArgument(c *Counter, loc Location, name *Identifier, value AnnotationValue) *AnnotationArgument {
	a := &AnnotationArgument{name: name, value: value}
	a.node = newNode(c, loc, childList(nodeOrNil(name), value))
	return a
}

// Name returns the argument name, or nil for a positional argument.
func (a *AnnotationArgument) Name() *Identifier { return a.name }

// Value returns the argument value.
func (a *AnnotationArgument) Value() AnnotationValue { return a.value }

func (a *AnnotationArgument) Kind() Kind { return KindAnnotationArgument }

// AnnotationValue is the value of an annotation argument: an expression, a
// nested annotation, or an array of values.
type AnnotationValue interface {
	Node
	annotationValueNode()
}

// ExpressionAnnotationValue wraps an expression-valued argument.
type ExpressionAnnotationValue struct {
	node
	expr Expression
}

// NewExpressionAnnotationValue constructs an expression annotation value.
func NewExpressionAnnotationValue(c *Counter, loc Location, expr Expression) *ExpressionAnnotationValue {
	v := &ExpressionAnnotationValue{expr: expr}
	v.node = newNode(c, loc, childList(expr))
	return v
}

// Expr returns the wrapped expression.
func (v *ExpressionAnnotationValue) Expr() Expression { return v.expr }

func (v *ExpressionAnnotationValue) Kind() Kind           { return KindExpressionAnnotationValue }
func (v *ExpressionAnnotationValue) annotationValueNode() {}

// NestedAnnotationValue wraps an annotation-valued argument.
type NestedAnnotationValue struct {
	node
	annotation *AnnotationModifier
}

// NewNestedAnnotationValue constructs a nested annotation value.
func NewNestedAnnotationValue(c *Counter, loc Location, annotation *AnnotationModifier) *NestedAnnotationValue {
	v := &NestedAnnotationValue{annotation: annotation}
	v.node = newNode(c, loc, childList(annotation))
	return v
}

// Annotation returns the nested annotation.
func (v *NestedAnnotationValue) Annotation() *AnnotationModifier { return v.annotation }

func (v *NestedAnnotationValue) Kind() Kind           { return KindNestedAnnotationValue }
func (v *NestedAnnotationValue) annotationValueNode() {}

// ArrayAnnotationValue wraps an array-valued argument.
type ArrayAnnotationValue struct {
	node
	values []AnnotationValue
}

// NewArrayAnnotationValue constructs an array annotation value.
func NewArrayAnnotationValue(c *Counter, loc Location, values []AnnotationValue) *ArrayAnnotationValue {
	v := &ArrayAnnotationValue{values: values}
	kids := make([]Node, len(values))
	for i, val := range values {
		kids[i] = val
	}
	v.node = newNode(c, loc, kids)
	return v
}

// Values returns the array elements in order.
func (v *ArrayAnnotationValue) Values() []AnnotationValue { return v.values }

func (v *ArrayAnnotationValue) Kind() Kind           { return KindArrayAnnotationValue }
func (v *ArrayAnnotationValue) annotationValueNode() {}

// nodeOrNil converts a typed nil pointer into a nil interface so childList
// can drop it.
func nodeOrNil[T Node](p T) Node {
	var zero T
	if any(p) == any(zero) {
		return nil
	}
	return p
}
