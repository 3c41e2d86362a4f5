package ast

// Expression is any expression node.
type Expression interface {
	Node
	exprNode()
}

// Untranslated tags nodes that stand in for source constructs whose internal
// structure is deliberately not translated. Tooling that needs full fidelity
// can detect and skip them.
type Untranslated interface {
	untranslatedNode()
}

// LiteralKind identifies the lexical class of a literal.
type LiteralKind int

// The closed set of literal kinds.
const (
	LiteralInteger LiteralKind = iota
	LiteralLong
	LiteralDouble
	LiteralBoolean
	LiteralString
	LiteralNull
)

var literalKindNames = map[LiteralKind]string{
	LiteralInteger: "integer",
	LiteralLong:    "long",
	LiteralDouble:  "double",
	LiteralBoolean: "boolean",
	LiteralString:  "string",
	LiteralNull:    "null",
}

// String returns the kind name.
func (k LiteralKind) String() string { return literalKindNames[k] }

// LiteralValue is a parsed literal. LiteralKind selects which field is
// meaningful; the others are zero.
type LiteralValue struct {
	Kind   LiteralKind
	Int    int32
	Long   int64
	Double float64
	Bool   bool
	Str    string
}

// LiteralExpression is a literal of one of the six lexical classes.
type LiteralExpression struct {
	node
	value LiteralValue
}

// NewLiteralExpression constructs a literal expression.
func NewLiteralExpression(c *Counter, loc Location, value LiteralValue) *LiteralExpression {
	e := &LiteralExpression{value: value}
	e.node = newNode(c, loc, nil)
	return e
}

// Value returns the parsed literal.
func (e *LiteralExpression) Value() LiteralValue { return e.value }

func (e *LiteralExpression) Kind() Kind { return KindLiteralExpression }
func (e *LiteralExpression) exprNode()  {}

// BinaryExpression applies a binary operator to two operands.
type BinaryExpression struct {
	node
	op          BinaryOp
	left, right Expression
}

// NewBinaryExpression constructs a binary expression.
func NewBinaryExpression(c *Counter, loc Location, op BinaryOp, left, right Expression) *BinaryExpression {
	e := &BinaryExpression{op: op, left: left, right: right}
	e.node = newNode(c, loc, []Node{left, right})
	return e
}

// Op returns the operator.
func (e *BinaryExpression) Op() BinaryOp { return e.op }

// Left returns the left operand.
func (e *BinaryExpression) Left() Expression { return e.left }

// Right returns the right operand.
func (e *BinaryExpression) Right() Expression { return e.right }

func (e *BinaryExpression) Kind() Kind { return KindBinaryExpression }
func (e *BinaryExpression) exprNode()  {}

// UnaryExpression applies a prefix or postfix unary operator.
type UnaryExpression struct {
	node
	op      UnaryOp
	operand Expression
}

// NewUnaryExpression constructs a unary expression.
func NewUnaryExpression(c *Counter, loc Location, op UnaryOp, operand Expression) *UnaryExpression {
	e := &UnaryExpression{op: op, operand: operand}
	e.node = newNode(c, loc, []Node{operand})
	return e
}

// Op returns the operator.
func (e *UnaryExpression) Op() UnaryOp { return e.op }

// Operand returns the operand.
func (e *UnaryExpression) Operand() Expression { return e.operand }

func (e *UnaryExpression) Kind() Kind { return KindUnaryExpression }
func (e *UnaryExpression) exprNode()  {}

// AssignExpression assigns to a target, plainly or with a compound operator.
type AssignExpression struct {
	node
	op            AssignOp
	target, value Expression
}

// NewAssignExpression constructs an assignment expression.
func NewAssignExpression(c *Counter, loc Location, op AssignOp, target, value Expression) *AssignExpression {
	e := &AssignExpression{op: op, target: target, value: value}
	e.node = newNode(c, loc, []Node{target, value})
	return e
}

// Op returns the assignment operator.
func (e *AssignExpression) Op() AssignOp { return e.op }

// Target returns the assignment target.
func (e *AssignExpression) Target() Expression { return e.target }

// Value returns the assigned value.
func (e *AssignExpression) Value() Expression { return e.value }

func (e *AssignExpression) Kind() Kind { return KindAssignExpression }
func (e *AssignExpression) exprNode()  {}

// CallExpression invokes a method, optionally on a receiver.
type CallExpression struct {
	node
	receiver Expression // nil for unqualified calls
	method   *Identifier
	args     []Expression
}

// NewCallExpression constructs a call expression. receiver is nil for an
// unqualified call.
func NewCallExpression(c *Counter, loc Location, receiver Expression, method *Identifier, args []Expression) *CallExpression {
	e := &CallExpression{receiver: receiver, method: method, args: args}
	kids := childList(receiver, method)
	for _, a := range args {
		kids = append(kids, a)
	}
	e.node = newNode(c, loc, kids)
	return e
}

// Receiver returns the receiver expression, or nil.
func (e *CallExpression) Receiver() Expression { return e.receiver }

// Method returns the invoked method name.
func (e *CallExpression) Method() *Identifier { return e.method }

// Args returns the call arguments in order.
func (e *CallExpression) Args() []Expression { return e.args }

func (e *CallExpression) Kind() Kind { return KindCallExpression }
func (e *CallExpression) exprNode()  {}

// FieldAccessExpression selects a field of a receiver expression.
type FieldAccessExpression struct {
	node
	receiver Expression
	field    *Identifier
}

// NewFieldAccessExpression constructs a field access.
func NewFieldAccessExpression(c *Counter, loc Location, receiver Expression, field *Identifier) *FieldAccessExpression {
	e := &FieldAccessExpression{receiver: receiver, field: field}
	e.node = newNode(c, loc, []Node{receiver, field})
	return e
}

// Receiver returns the receiver expression.
func (e *FieldAccessExpression) Receiver() Expression { return e.receiver }

// Field returns the selected field name.
func (e *FieldAccessExpression) Field() *Identifier { return e.field }

func (e *FieldAccessExpression) Kind() Kind { return KindFieldAccessExpression }
func (e *FieldAccessExpression) exprNode()  {}

// ArrayAccessExpression indexes into an array or list.
type ArrayAccessExpression struct {
	node
	array, index Expression
}

// NewArrayAccessExpression constructs an array access.
func NewArrayAccessExpression(c *Counter, loc Location, array, index Expression) *ArrayAccessExpression {
	e := &ArrayAccessExpression{array: array, index: index}
	e.node = newNode(c, loc, []Node{array, index})
	return e
}

// Array returns the indexed expression.
func (e *ArrayAccessExpression) Array() Expression { return e.array }

// Index returns the index expression.
func (e *ArrayAccessExpression) Index() Expression { return e.index }

func (e *ArrayAccessExpression) Kind() Kind { return KindArrayAccessExpression }
func (e *ArrayAccessExpression) exprNode()  {}

// CastExpression converts an operand to a target type.
type CastExpression struct {
	node
	typ     TypeRef
	operand Expression
}

// NewCastExpression constructs a cast.
func NewCastExpression(c *Counter, loc Location, typ TypeRef, operand Expression) *CastExpression {
	e := &CastExpression{typ: typ, operand: operand}
	e.node = newNode(c, loc, []Node{operand})
	return e
}

// Type returns the target type.
func (e *CastExpression) Type() TypeRef { return e.typ }

// Operand returns the operand.
func (e *CastExpression) Operand() Expression { return e.operand }

func (e *CastExpression) Kind() Kind { return KindCastExpression }
func (e *CastExpression) exprNode()  {}

// NewExpression constructs an object, collection, or array via its
// initializer.
type NewExpression struct {
	node
	init Initializer
}

// NewNewExpression constructs a new-expression around an initializer.
func NewNewExpression(c *Counter, loc Location, init Initializer) *NewExpression {
	e := &NewExpression{init: init}
	e.node = newNode(c, loc, []Node{init})
	return e
}

// Init returns the initializer.
func (e *NewExpression) Init() Initializer { return e.init }

func (e *NewExpression) Kind() Kind { return KindNewExpression }
func (e *NewExpression) exprNode()  {}

// TernaryExpression is the conditional operator `cond ? then : else`.
type TernaryExpression struct {
	node
	cond, then, els Expression
}

// NewTernaryExpression constructs a ternary expression.
func NewTernaryExpression(c *Counter, loc Location, cond, then, els Expression) *TernaryExpression {
	e := &TernaryExpression{cond: cond, then: then, els: els}
	e.node = newNode(c, loc, []Node{cond, then, els})
	return e
}

// Cond returns the condition.
func (e *TernaryExpression) Cond() Expression { return e.cond }

// Then returns the true branch.
func (e *TernaryExpression) Then() Expression { return e.then }

// Else returns the false branch.
func (e *TernaryExpression) Else() Expression { return e.els }

func (e *TernaryExpression) Kind() Kind { return KindTernaryExpression }
func (e *TernaryExpression) exprNode()  {}

// ThisExpression is the `this` reference.
type ThisExpression struct {
	node
}

// NewThisExpression constructs a this-expression.
func NewThisExpression(c *Counter, loc Location) *ThisExpression {
	e := &ThisExpression{}
	e.node = newNode(c, loc, nil)
	return e
}

func (e *ThisExpression) Kind() Kind { return KindThisExpression }
func (e *ThisExpression) exprNode()  {}

// SuperExpression is the `super` reference.
type SuperExpression struct {
	node
}

// NewSuperExpression constructs a super-expression.
func NewSuperExpression(c *Counter, loc Location) *SuperExpression {
	e := &SuperExpression{}
	e.node = newNode(c, loc, nil)
	return e
}

func (e *SuperExpression) Kind() Kind { return KindSuperExpression }
func (e *SuperExpression) exprNode()  {}

// VariableExpression is a bare name reference.
type VariableExpression struct {
	node
	name *Identifier
}

// NewVariableExpression constructs a variable reference.
func NewVariableExpression(c *Counter, loc Location, name *Identifier) *VariableExpression {
	e := &VariableExpression{name: name}
	e.node = newNode(c, loc, []Node{name})
	return e
}

// Name returns the referenced name.
func (e *VariableExpression) Name() *Identifier { return e.name }

func (e *VariableExpression) Kind() Kind { return KindVariableExpression }
func (e *VariableExpression) exprNode()  {}

// TypeRefExpression is a type used in expression position, such as the
// right-hand side of instanceof.
type TypeRefExpression struct {
	node
	typ TypeRef
}

// NewTypeRefExpression constructs a type reference expression.
func NewTypeRefExpression(c *Counter, loc Location, typ TypeRef) *TypeRefExpression {
	e := &TypeRefExpression{typ: typ}
	e.node = newNode(c, loc, nil)
	return e
}

// Type returns the referenced type.
func (e *TypeRefExpression) Type() TypeRef { return e.typ }

func (e *TypeRefExpression) Kind() Kind { return KindTypeRefExpression }
func (e *TypeRefExpression) exprNode()  {}

// InstanceOfExpression tests an operand against a type.
type InstanceOfExpression struct {
	node
	operand Expression
	typeRef *TypeRefExpression
}

// NewInstanceOfExpression constructs an instanceof test.
func NewInstanceOfExpression(c *Counter, loc Location, operand Expression, typeRef *TypeRefExpression) *InstanceOfExpression {
	e := &InstanceOfExpression{operand: operand, typeRef: typeRef}
	e.node = newNode(c, loc, []Node{operand, typeRef})
	return e
}

// Operand returns the tested expression.
func (e *InstanceOfExpression) Operand() Expression { return e.operand }

// TypeRef returns the tested-against type.
func (e *InstanceOfExpression) TypeRef() *TypeRefExpression { return e.typeRef }

func (e *InstanceOfExpression) Kind() Kind { return KindInstanceOfExpression }
func (e *InstanceOfExpression) exprNode()  {}

// QueryExpression is an inline SOQL or SOSL query. Only the bound host
// expressions are translated; the query's clause structure is kept as
// opaque text, which is a deliberate scope limitation.
type QueryExpression struct {
	node
	sosl     bool
	query    string
	bindings []Expression
}

// NewQueryExpression constructs a query expression. query is the raw text
// between the enclosing brackets; bindings are the `:expr` host expressions
// in query order.
func NewQueryExpression(c *Counter, loc Location, sosl bool, query string, bindings []Expression) *QueryExpression {
	e := &QueryExpression{sosl: sosl, query: query, bindings: bindings}
	kids := make([]Node, len(bindings))
	for i, b := range bindings {
		kids[i] = b
	}
	e.node = newNode(c, loc, kids)
	return e
}

// Sosl reports whether the query is SOSL rather than SOQL.
func (e *QueryExpression) Sosl() bool { return e.sosl }

// Query returns the raw query text.
func (e *QueryExpression) Query() string { return e.query }

// Bindings returns the bound host expressions in query order.
func (e *QueryExpression) Bindings() []Expression { return e.bindings }

func (e *QueryExpression) Kind() Kind {
	if e.sosl {
		return KindSoslExpression
	}
	return KindSoqlExpression
}

func (e *QueryExpression) exprNode()         {}
func (e *QueryExpression) untranslatedNode() {}
