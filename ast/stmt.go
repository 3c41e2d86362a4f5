package ast

// Statement is any statement node.
type Statement interface {
	Node
	stmtNode()
}

// BlockStatement is a `{ ... }` statement list. Scoped distinguishes blocks
// that introduce a variable scope from synthesized wrappers that do not.
type BlockStatement struct {
	node
	statements []Statement
	scoped     bool
}

// NewBlockStatement constructs a block.
func NewBlockStatement(c *Counter, loc Location, statements []Statement, scoped bool) *BlockStatement {
	s := &BlockStatement{statements: statements, scoped: scoped}
	kids := make([]Node, len(statements))
	for i, st := range statements {
		kids[i] = st
	}
	s.node = newNode(c, loc, kids)
	return s
}

// Statements returns the contained statements in order.
func (s *BlockStatement) Statements() []Statement { return s.statements }

// Scoped reports whether the block is a scope boundary.
func (s *BlockStatement) Scoped() bool { return s.scoped }

func (s *BlockStatement) Kind() Kind { return KindBlockStatement }
func (s *BlockStatement) stmtNode()  {}

// ExpressionStatement evaluates an expression for its effect.
type ExpressionStatement struct {
	node
	expr Expression
}

// NewExpressionStatement constructs an expression statement.
func NewExpressionStatement(c *Counter, loc Location, expr Expression) *ExpressionStatement {
	s := &ExpressionStatement{expr: expr}
	s.node = newNode(c, loc, []Node{expr})
	return s
}

// Expr returns the evaluated expression.
func (s *ExpressionStatement) Expr() Expression { return s.expr }

func (s *ExpressionStatement) Kind() Kind { return KindExpressionStatement }
func (s *ExpressionStatement) stmtNode()  {}

// IfStatement is an if with an optional else branch.
type IfStatement struct {
	node
	cond Expression
	then Statement
	els  Statement // nil when there is no else branch
}

// NewIfStatement constructs an if statement. els is nil when absent.
func NewIfStatement(c *Counter, loc Location, cond Expression, then, els Statement) *IfStatement {
	s := &IfStatement{cond: cond, then: then, els: els}
	s.node = newNode(c, loc, childList(cond, then, els))
	return s
}

// Cond returns the condition.
func (s *IfStatement) Cond() Expression { return s.cond }

// Then returns the true branch.
func (s *IfStatement) Then() Statement { return s.then }

// Else returns the false branch, or nil.
func (s *IfStatement) Else() Statement { return s.els }

func (s *IfStatement) Kind() Kind { return KindIfStatement }
func (s *IfStatement) stmtNode()  {}

// WhenClause is one arm of a switch statement: a value list, a type match,
// or the else arm.
type WhenClause interface {
	Node
	// Body returns the arm's block.
	Body() *BlockStatement

	whenClauseNode()
}

// WhenValueClause matches one or more literal or enum values.
type WhenValueClause struct {
	node
	values []Expression
	body   *BlockStatement
}

// NewWhenValueClause constructs a when-value arm.
func NewWhenValueClause(c *Counter, loc Location, values []Expression, body *BlockStatement) *WhenValueClause {
	w := &WhenValueClause{values: values, body: body}
	kids := make([]Node, 0, len(values)+1)
	for _, v := range values {
		kids = append(kids, v)
	}
	kids = append(kids, body)
	w.node = newNode(c, loc, kids)
	return w
}

// Values returns the matched values in order.
func (w *WhenValueClause) Values() []Expression { return w.values }

// Body returns the arm's block.
func (w *WhenValueClause) Body() *BlockStatement { return w.body }

func (w *WhenValueClause) Kind() Kind      { return KindWhenValueClause }
func (w *WhenValueClause) whenClauseNode() {}

// WhenTypeClause matches on the runtime type of the switch value and binds
// it. The binding is a synthesized local variable declaration.
type WhenTypeClause struct {
	node
	variable *LocalVariableDeclaration
	body     *BlockStatement
}

// NewWhenTypeClause constructs a when-type arm around the synthesized
// binding variable.
func NewWhenTypeClause(c *Counter, loc Location, variable *LocalVariableDeclaration, body *BlockStatement) *WhenTypeClause {
	w := &WhenTypeClause{variable: variable, body: body}
	w.node = newNode(c, loc, []Node{variable, body})
	return w
}

// Variable returns the synthesized binding declaration; its type is the
// matched type.
func (w *WhenTypeClause) Variable() *LocalVariableDeclaration { return w.variable }

// Body returns the arm's block.
func (w *WhenTypeClause) Body() *BlockStatement { return w.body }

func (w *WhenTypeClause) Kind() Kind      { return KindWhenTypeClause }
func (w *WhenTypeClause) whenClauseNode() {}

// WhenElseClause is the default arm.
type WhenElseClause struct {
	node
	body *BlockStatement
}

// NewWhenElseClause constructs a when-else arm.
func NewWhenElseClause(c *Counter, loc Location, body *BlockStatement) *WhenElseClause {
	w := &WhenElseClause{body: body}
	w.node = newNode(c, loc, []Node{body})
	return w
}

// Body returns the arm's block.
func (w *WhenElseClause) Body() *BlockStatement { return w.body }

func (w *WhenElseClause) Kind() Kind      { return KindWhenElseClause }
func (w *WhenElseClause) whenClauseNode() {}

// SwitchStatement is a `switch on` statement.
type SwitchStatement struct {
	node
	value Expression
	whens []WhenClause
}

// NewSwitchStatement constructs a switch statement.
func NewSwitchStatement(c *Counter, loc Location, value Expression, whens []WhenClause) *SwitchStatement {
	s := &SwitchStatement{value: value, whens: whens}
	kids := []Node{value}
	for _, w := range whens {
		kids = append(kids, w)
	}
	s.node = newNode(c, loc, kids)
	return s
}

// Value returns the switched-on expression.
func (s *SwitchStatement) Value() Expression { return s.value }

// Whens returns the arms in source order.
func (s *SwitchStatement) Whens() []WhenClause { return s.whens }

func (s *SwitchStatement) Kind() Kind { return KindSwitchStatement }
func (s *SwitchStatement) stmtNode()  {}

// ForStatement is a classic three-part for loop. Every part is optional;
// `for (;;)` has none.
type ForStatement struct {
	node
	init    Statement  // *VariableDeclarationStatement or *ExpressionStatement, nil when absent
	cond    Expression // nil when absent
	updates []Expression
	body    Statement
}

// NewForStatement constructs a classic for loop.
func NewForStatement(c *Counter, loc Location, init Statement, cond Expression, updates []Expression, body Statement) *ForStatement {
	s := &ForStatement{init: init, cond: cond, updates: updates, body: body}
	kids := childList(init, cond)
	for _, u := range updates {
		kids = append(kids, u)
	}
	kids = append(kids, body)
	s.node = newNode(c, loc, kids)
	return s
}

// Init returns the init statement, or nil.
func (s *ForStatement) Init() Statement { return s.init }

// Cond returns the loop condition, or nil.
func (s *ForStatement) Cond() Expression { return s.cond }

// Updates returns the update expressions, possibly empty.
func (s *ForStatement) Updates() []Expression { return s.updates }

// Body returns the loop body.
func (s *ForStatement) Body() Statement { return s.body }

func (s *ForStatement) Kind() Kind { return KindForStatement }
func (s *ForStatement) stmtNode()  {}

// EnhancedForStatement is a `for (T x : expr)` loop.
type EnhancedForStatement struct {
	node
	variable *LocalVariableDeclaration
	iterable Expression
	body     Statement
}

// NewEnhancedForStatement constructs an enhanced for loop.
func NewEnhancedForStatement(c *Counter, loc Location, variable *LocalVariableDeclaration, iterable Expression, body Statement) *EnhancedForStatement {
	s := &EnhancedForStatement{variable: variable, iterable: iterable, body: body}
	s.node = newNode(c, loc, []Node{variable, iterable, body})
	return s
}

// Variable returns the element declaration.
func (s *EnhancedForStatement) Variable() *LocalVariableDeclaration { return s.variable }

// Iterable returns the iterated expression.
func (s *EnhancedForStatement) Iterable() Expression { return s.iterable }

// Body returns the loop body.
func (s *EnhancedForStatement) Body() Statement { return s.body }

func (s *EnhancedForStatement) Kind() Kind { return KindEnhancedForStatement }
func (s *EnhancedForStatement) stmtNode()  {}

// WhileStatement is a while loop.
type WhileStatement struct {
	node
	cond Expression
	body Statement
}

// NewWhileStatement constructs a while loop.
func NewWhileStatement(c *Counter, loc Location, cond Expression, body Statement) *WhileStatement {
	s := &WhileStatement{cond: cond, body: body}
	s.node = newNode(c, loc, []Node{cond, body})
	return s
}

// Cond returns the loop condition.
func (s *WhileStatement) Cond() Expression { return s.cond }

// Body returns the loop body.
func (s *WhileStatement) Body() Statement { return s.body }

func (s *WhileStatement) Kind() Kind { return KindWhileStatement }
func (s *WhileStatement) stmtNode()  {}

// DoWhileStatement is a do/while loop.
type DoWhileStatement struct {
	node
	body Statement
	cond Expression
}

// NewDoWhileStatement constructs a do/while loop.
func NewDoWhileStatement(c *Counter, loc Location, body Statement, cond Expression) *DoWhileStatement {
	s := &DoWhileStatement{body: body, cond: cond}
	s.node = newNode(c, loc, []Node{body, cond})
	return s
}

// Body returns the loop body.
func (s *DoWhileStatement) Body() Statement { return s.body }

// Cond returns the loop condition.
func (s *DoWhileStatement) Cond() Expression { return s.cond }

func (s *DoWhileStatement) Kind() Kind { return KindDoWhileStatement }
func (s *DoWhileStatement) stmtNode()  {}

// CatchClause is one catch arm of a try statement.
type CatchClause struct {
	node
	param *ParameterDeclaration
	body  *BlockStatement
}

// NewCatchClause constructs a catch clause.
func NewCatchClause(c *Counter, loc Location, param *ParameterDeclaration, body *BlockStatement) *CatchClause {
	s := &CatchClause{param: param, body: body}
	s.node = newNode(c, loc, []Node{param, body})
	return s
}

// Param returns the caught exception parameter.
func (s *CatchClause) Param() *ParameterDeclaration { return s.param }

// Body returns the handler block.
func (s *CatchClause) Body() *BlockStatement { return s.body }

func (s *CatchClause) Kind() Kind { return KindCatchClause }

// TryStatement is a try with catch arms and an optional finally.
type TryStatement struct {
	node
	body    *BlockStatement
	catches []*CatchClause
	finally *BlockStatement // nil when absent
}

// NewTryStatement constructs a try statement.
func NewTryStatement(c *Counter, loc Location, body *BlockStatement, catches []*CatchClause, finally *BlockStatement) *TryStatement {
	s := &TryStatement{body: body, catches: catches, finally: finally}
	kids := []Node{body}
	for _, cc := range catches {
		kids = append(kids, cc)
	}
	if finally != nil {
		kids = append(kids, finally)
	}
	s.node = newNode(c, loc, kids)
	return s
}

// Body returns the protected block.
func (s *TryStatement) Body() *BlockStatement { return s.body }

// Catches returns the catch arms in order.
func (s *TryStatement) Catches() []*CatchClause { return s.catches }

// Finally returns the finally block, or nil.
func (s *TryStatement) Finally() *BlockStatement { return s.finally }

func (s *TryStatement) Kind() Kind { return KindTryStatement }
func (s *TryStatement) stmtNode()  {}

// ReturnStatement returns from the enclosing method, with an optional value.
type ReturnStatement struct {
	node
	expr Expression // nil for a bare return
}

// NewReturnStatement constructs a return statement. expr is nil for a bare
// return.
func NewReturnStatement(c *Counter, loc Location, expr Expression) *ReturnStatement {
	s := &ReturnStatement{expr: expr}
	s.node = newNode(c, loc, childList(expr))
	return s
}

// Expr returns the returned expression, or nil.
func (s *ReturnStatement) Expr() Expression { return s.expr }

func (s *ReturnStatement) Kind() Kind { return KindReturnStatement }
func (s *ReturnStatement) stmtNode()  {}

// ThrowStatement throws an exception.
type ThrowStatement struct {
	node
	expr Expression
}

// NewThrowStatement constructs a throw statement.
func NewThrowStatement(c *Counter, loc Location, expr Expression) *ThrowStatement {
	s := &ThrowStatement{expr: expr}
	s.node = newNode(c, loc, []Node{expr})
	return s
}

// Expr returns the thrown expression.
func (s *ThrowStatement) Expr() Expression { return s.expr }

func (s *ThrowStatement) Kind() Kind { return KindThrowStatement }
func (s *ThrowStatement) stmtNode()  {}

// BreakStatement breaks out of the enclosing loop.
type BreakStatement struct {
	node
}

// NewBreakStatement constructs a break statement.
func NewBreakStatement(c *Counter, loc Location) *BreakStatement {
	s := &BreakStatement{}
	s.node = newNode(c, loc, nil)
	return s
}

func (s *BreakStatement) Kind() Kind { return KindBreakStatement }
func (s *BreakStatement) stmtNode()  {}

// ContinueStatement continues the enclosing loop.
type ContinueStatement struct {
	node
}

// NewContinueStatement constructs a continue statement.
func NewContinueStatement(c *Counter, loc Location) *ContinueStatement {
	s := &ContinueStatement{}
	s.node = newNode(c, loc, nil)
	return s
}

func (s *ContinueStatement) Kind() Kind { return KindContinueStatement }
func (s *ContinueStatement) stmtNode()  {}

// RunAsStatement executes its block as another user context.
type RunAsStatement struct {
	node
	args []Expression
	body *BlockStatement
}

// NewRunAsStatement constructs a runAs statement.
func NewRunAsStatement(c *Counter, loc Location, args []Expression, body *BlockStatement) *RunAsStatement {
	s := &RunAsStatement{args: args, body: body}
	kids := make([]Node, 0, len(args)+1)
	for _, a := range args {
		kids = append(kids, a)
	}
	kids = append(kids, body)
	s.node = newNode(c, loc, kids)
	return s
}

// Args returns the runAs arguments.
func (s *RunAsStatement) Args() []Expression { return s.args }

// Body returns the block run in the other context.
func (s *RunAsStatement) Body() *BlockStatement { return s.body }

func (s *RunAsStatement) Kind() Kind { return KindRunAsStatement }
func (s *RunAsStatement) stmtNode()  {}

// VariableDeclarationStatement declares a group of local variables sharing
// one type.
type VariableDeclarationStatement struct {
	node
	typ   TypeRef
	decls []*LocalVariableDeclaration
}

// NewVariableDeclarationStatement constructs a variable declaration group.
func NewVariableDeclarationStatement(c *Counter, loc Location, typ TypeRef, decls []*LocalVariableDeclaration) *VariableDeclarationStatement {
	s := &VariableDeclarationStatement{typ: typ, decls: decls}
	kids := make([]Node, len(decls))
	for i, d := range decls {
		kids[i] = d
	}
	s.node = newNode(c, loc, kids)
	return s
}

// Type returns the shared declared type.
func (s *VariableDeclarationStatement) Type() TypeRef { return s.typ }

// Declarations returns the declared variables in order.
func (s *VariableDeclarationStatement) Declarations() []*LocalVariableDeclaration { return s.decls }

func (s *VariableDeclarationStatement) Kind() Kind { return KindVariableDeclarationStatement }
func (s *VariableDeclarationStatement) stmtNode()  {}

// DmlOp identifies a DML operation.
type DmlOp int

// The closed set of DML operations.
const (
	DmlInsert DmlOp = iota
	DmlUpdate
	DmlDelete
	DmlUndelete
	DmlUpsert
	DmlMerge
)

var dmlOpNames = map[DmlOp]string{
	DmlInsert:   "insert",
	DmlUpdate:   "update",
	DmlDelete:   "delete",
	DmlUndelete: "undelete",
	DmlUpsert:   "upsert",
	DmlMerge:    "merge",
}

// String returns the source spelling.
func (o DmlOp) String() string { return dmlOpNames[o] }

// DmlAccess is the optional access level of a DML statement.
type DmlAccess int

// DML access levels. DmlDefault means no explicit level was written.
const (
	DmlDefault DmlAccess = iota
	DmlUserMode
	DmlSystemMode
)

// DmlStatement performs a DML operation. Merge takes two arguments, upsert
// may name an external-id field, every other operation takes one argument.
type DmlStatement struct {
	node
	op          DmlOp
	access      DmlAccess
	args        []Expression
	upsertField *Identifier // nil unless an upsert names an external-id field
}

// NewDmlStatement constructs a DML statement.
func NewDmlStatement(c *Counter, loc Location, op DmlOp, access DmlAccess, args []Expression, upsertField *Identifier) *DmlStatement {
	s := &DmlStatement{op: op, access: access, args: args, upsertField: upsertField}
	kids := make([]Node, 0, len(args)+1)
	for _, a := range args {
		kids = append(kids, a)
	}
	kids = childList(append(kids, nodeOrNil(upsertField))...)
	s.node = newNode(c, loc, kids)
	return s
}

// Op returns the DML operation.
func (s *DmlStatement) Op() DmlOp { return s.op }

// Access returns the explicit access level, or DmlDefault.
func (s *DmlStatement) Access() DmlAccess { return s.access }

// Args returns the operands: one for most operations, two for merge.
func (s *DmlStatement) Args() []Expression { return s.args }

// UpsertField returns the external-id field of an upsert, or nil.
func (s *DmlStatement) UpsertField() *Identifier { return s.upsertField }

func (s *DmlStatement) Kind() Kind { return KindDmlStatement }
func (s *DmlStatement) stmtNode()  {}
