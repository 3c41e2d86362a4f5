package parser

// ParseTree is implemented by every parse-tree node. TokenSpan returns the
// inclusive token-index range the production matched, which a TokenStream
// turns into a source location. Production returns the grammar production
// name, used in diagnostics.
type ParseTree interface {
	TokenSpan() (start, stop int)
	Production() string
}

// span is the embedded token range of every production.
type span struct {
	start, stop int
}

func (s span) TokenSpan() (int, int) { return s.start, s.stop }

// IdContext matches an identifier.
type IdContext struct {
	span
	Text string
}

func (*IdContext) Production() string { return "id" }

// TypeRefContext matches a type reference: dotted parts with optional type
// arguments, then zero or more [] pairs.
type TypeRefContext struct {
	span
	Parts  []*TypeRefPartContext
	Arrays int
}

func (*TypeRefContext) Production() string { return "typeRef" }

// TypeRefPartContext matches one dotted component of a type reference.
type TypeRefPartContext struct {
	span
	Name *IdContext
	Args []*TypeRefContext
}

func (*TypeRefPartContext) Production() string { return "typeRefPart" }

// ModifierContext matches a declaration modifier: exactly one of a keyword
// (Keyword non-empty) or an annotation.
type ModifierContext struct {
	span
	Keyword    string // raw spelling, e.g. "with sharing"; empty for annotations
	Annotation *AnnotationContext
}

func (*ModifierContext) Production() string { return "modifier" }

// AnnotationContext matches `@Name` or `@Name(args)`.
type AnnotationContext struct {
	span
	Name *IdContext
	Args []*AnnotationArgContext
}

func (*AnnotationContext) Production() string { return "annotation" }

// AnnotationArgContext matches one annotation argument, named or
// positional.
type AnnotationArgContext struct {
	span
	Name  *IdContext // nil for positional arguments
	Value *AnnotationValueContext
}

func (*AnnotationArgContext) Production() string { return "annotationArg" }

// AnnotationValueContext matches an annotation argument value: exactly one
// of an expression, a nested annotation, or an array of values.
type AnnotationValueContext struct {
	span
	Expr       ExprContext
	Annotation *AnnotationContext
	Array      []*AnnotationValueContext
	IsArray    bool // distinguishes an empty array from an absent one
}

func (*AnnotationValueContext) Production() string { return "annotationValue" }

// CompilationUnitContext is the grammar root: exactly one of a class,
// interface, enum, or trigger unit.
type CompilationUnitContext struct {
	span
	Class     *ClassDeclContext
	Interface *InterfaceDeclContext
	Enum      *EnumDeclContext
	Trigger   *TriggerUnitContext
}

func (*CompilationUnitContext) Production() string { return "compilationUnit" }

// ClassDeclContext matches a class declaration.
type ClassDeclContext struct {
	span
	Modifiers  []*ModifierContext
	Name       *IdContext
	SuperClass *TypeRefContext // nil without an extends clause
	Interfaces []*TypeRefContext
	Body       []*MemberContext
}

func (*ClassDeclContext) Production() string { return "classDeclaration" }

// InterfaceDeclContext matches an interface declaration.
type InterfaceDeclContext struct {
	span
	Modifiers []*ModifierContext
	Name      *IdContext
	Extends   []*TypeRefContext
	Methods   []*MethodDeclContext
}

func (*InterfaceDeclContext) Production() string { return "interfaceDeclaration" }

// EnumDeclContext matches an enum declaration.
type EnumDeclContext struct {
	span
	Modifiers []*ModifierContext
	Name      *IdContext
	Values    []*IdContext
}

func (*EnumDeclContext) Production() string { return "enumDeclaration" }

// TriggerUnitContext matches a trigger declaration.
type TriggerUnitContext struct {
	span
	Name       *IdContext
	Target     *IdContext
	Cases      []*TriggerCaseContext
	Statements []*StmtContext
}

func (*TriggerUnitContext) Production() string { return "triggerUnit" }

// TriggerCaseContext matches one `before|after <op>` pair; exactly one of
// Before/After is set.
type TriggerCaseContext struct {
	span
	Before *Token
	After  *Token
	Op     Token // insert, update, delete, or undelete
}

func (*TriggerCaseContext) Production() string { return "triggerCase" }

// MemberContext matches one class body member: exactly one alternative is
// set. Modifiers are matched before the member they belong to and attach to
// the translated declaration afterwards.
type MemberContext struct {
	span
	Modifiers []*ModifierContext

	Field     *FieldDeclContext
	Method    *MethodDeclContext
	Property  *PropertyDeclContext
	Class     *ClassDeclContext
	Interface *InterfaceDeclContext
	Enum      *EnumDeclContext
	// InitBlock is an anonymous initializer block.
	InitBlock *BlockContext
}

func (*MemberContext) Production() string { return "classBodyMember" }

// MethodDeclContext matches a method or constructor declaration.
// ReturnType is nil for constructors; Body is nil for bodyless (abstract or
// interface) methods.
type MethodDeclContext struct {
	span
	ReturnType *TypeRefContext
	IsVoid     bool
	Name       *IdContext
	Params     []*ParamContext
	Body       *BlockContext
}

func (*MethodDeclContext) Production() string { return "methodDeclaration" }

// ParamContext matches one formal parameter.
type ParamContext struct {
	span
	Type *TypeRefContext
	Name *IdContext
}

func (*ParamContext) Production() string { return "formalParameter" }

// FieldDeclContext matches a field declaration group sharing one type.
type FieldDeclContext struct {
	span
	Type        *TypeRefContext
	Declarators []*VarDeclaratorContext
}

func (*FieldDeclContext) Production() string { return "fieldDeclaration" }

// VarDeclaratorContext matches `name` or `name = expr`.
type VarDeclaratorContext struct {
	span
	Name *IdContext
	Init ExprContext // nil without an initializer
}

func (*VarDeclaratorContext) Production() string { return "variableDeclarator" }

// PropertyDeclContext matches a property declaration with accessor blocks.
type PropertyDeclContext struct {
	span
	Type      *TypeRefContext
	Name      *IdContext
	Accessors []*AccessorContext
}

func (*PropertyDeclContext) Production() string { return "propertyDeclaration" }

// AccessorContext matches one property accessor: exactly one of Get/Set is
// set; Body is nil for auto-implemented accessors.
type AccessorContext struct {
	span
	Modifiers []*ModifierContext
	Get       *Token
	Set       *Token
	Body      *BlockContext
}

func (*AccessorContext) Production() string { return "propertyBlock" }

// BlockContext matches `{ statements }`.
type BlockContext struct {
	span
	Statements []*StmtContext
}

func (*BlockContext) Production() string { return "block" }

// StmtContext matches one statement: exactly one alternative is set.
type StmtContext struct {
	span
	Block    *BlockContext
	If       *IfContext
	Switch   *SwitchContext
	For      *ForContext
	While    *WhileContext
	DoWhile  *DoWhileContext
	Try      *TryContext
	Return   *ReturnContext
	Throw    *ThrowContext
	Break    *BreakContext
	Continue *ContinueContext
	RunAs    *RunAsContext
	VarDecl  *LocalVarDeclContext
	Dml      *DmlContext
	Expr     ExprContext
}

func (*StmtContext) Production() string { return "statement" }

// IfContext matches `if (cond) then [else els]`.
type IfContext struct {
	span
	Cond ExprContext
	Then *StmtContext
	Else *StmtContext // nil without an else branch
}

func (*IfContext) Production() string { return "ifStatement" }

// SwitchContext matches `switch on expr { when ... }`.
type SwitchContext struct {
	span
	Value ExprContext
	Whens []*WhenContext
}

func (*SwitchContext) Production() string { return "switchStatement" }

// WhenContext matches one switch arm: exactly one of a value list, a typed
// binding, or an else arm.
type WhenContext struct {
	span
	Values  []ExprContext
	Type    *TypeRefContext // set together with Binding
	Binding *IdContext
	Else    *Token
	Body    *BlockContext
}

func (*WhenContext) Production() string { return "whenControl" }

// ForContext matches a for statement; its control is exactly one of the
// classic or enhanced shapes.
type ForContext struct {
	span
	Classic  *ClassicForContext
	Enhanced *EnhancedForContext
	Body     *StmtContext
}

func (*ForContext) Production() string { return "forStatement" }

// ClassicForContext matches `init; cond; updates` where every part may be
// empty.
type ClassicForContext struct {
	span
	Decl      *LocalVarDeclContext // nil when the init is expressions or empty
	InitExprs []ExprContext
	Cond      ExprContext // nil when empty
	Updates   []ExprContext
}

func (*ClassicForContext) Production() string { return "forControl" }

// EnhancedForContext matches `Type name : iterable`.
type EnhancedForContext struct {
	span
	Type     *TypeRefContext
	Name     *IdContext
	Iterable ExprContext
}

func (*EnhancedForContext) Production() string { return "enhancedForControl" }

// WhileContext matches `while (cond) body`.
type WhileContext struct {
	span
	Cond ExprContext
	Body *StmtContext
}

func (*WhileContext) Production() string { return "whileStatement" }

// DoWhileContext matches `do body while (cond);`.
type DoWhileContext struct {
	span
	Body *StmtContext
	Cond ExprContext
}

func (*DoWhileContext) Production() string { return "doWhileStatement" }

// TryContext matches `try block catches [finally block]`.
type TryContext struct {
	span
	Body    *BlockContext
	Catches []*CatchContext
	Finally *BlockContext // nil without a finally
}

func (*TryContext) Production() string { return "tryStatement" }

// CatchContext matches `catch (Type name) block`.
type CatchContext struct {
	span
	Type *TypeRefContext
	Name *IdContext
	Body *BlockContext
}

func (*CatchContext) Production() string { return "catchClause" }

// ReturnContext matches `return [expr];`.
type ReturnContext struct {
	span
	Expr ExprContext // nil for a bare return
}

func (*ReturnContext) Production() string { return "returnStatement" }

// ThrowContext matches `throw expr;`.
type ThrowContext struct {
	span
	Expr ExprContext
}

func (*ThrowContext) Production() string { return "throwStatement" }

// BreakContext matches `break;`.
type BreakContext struct {
	span
}

func (*BreakContext) Production() string { return "breakStatement" }

// ContinueContext matches `continue;`.
type ContinueContext struct {
	span
}

func (*ContinueContext) Production() string { return "continueStatement" }

// RunAsContext matches `System.runAs(args) block`.
type RunAsContext struct {
	span
	Args []ExprContext
	Body *BlockContext
}

func (*RunAsContext) Production() string { return "runAsStatement" }

// LocalVarDeclContext matches a local variable declaration group.
type LocalVarDeclContext struct {
	span
	Type        *TypeRefContext
	Declarators []*VarDeclaratorContext
}

func (*LocalVarDeclContext) Production() string { return "localVariableDeclaration" }

// DmlContext matches a DML statement. At most one of UserMode/SystemMode is
// set; UpsertField only follows an upsert; merge takes two argument
// expressions.
type DmlContext struct {
	span
	Op          Token
	UserMode    *Token
	SystemMode  *Token
	Args        []ExprContext
	UpsertField *IdContext
}

func (*DmlContext) Production() string { return "dmlStatement" }

// ExprContext matches an expression; each alternative is its own type.
type ExprContext interface {
	ParseTree
	exprCtx()
}

type exprSpan struct{ span }

func (exprSpan) exprCtx() {}

// LiteralExprContext matches a literal token of any lexical class,
// including true/false/null words.
type LiteralExprContext struct {
	exprSpan
	Tok Token
}

func (*LiteralExprContext) Production() string { return "literalExpression" }

// VarExprContext matches a bare name.
type VarExprContext struct {
	exprSpan
	Name *IdContext
}

func (*VarExprContext) Production() string { return "variableExpression" }

// ThisExprContext matches `this`.
type ThisExprContext struct {
	exprSpan
}

func (*ThisExprContext) Production() string { return "thisExpression" }

// SuperExprContext matches `super`.
type SuperExprContext struct {
	exprSpan
}

func (*SuperExprContext) Production() string { return "superExpression" }

// FieldAccessExprContext matches `receiver.name`.
type FieldAccessExprContext struct {
	exprSpan
	Receiver ExprContext
	Name     *IdContext
}

func (*FieldAccessExprContext) Production() string { return "fieldAccessExpression" }

// CallExprContext matches `[receiver.]name(args)`.
type CallExprContext struct {
	exprSpan
	Receiver ExprContext // nil for unqualified calls
	Name     *IdContext
	Args     []ExprContext
}

func (*CallExprContext) Production() string { return "callExpression" }

// IndexExprContext matches `receiver[index]`.
type IndexExprContext struct {
	exprSpan
	Receiver ExprContext
	Index    ExprContext
}

func (*IndexExprContext) Production() string { return "arrayAccessExpression" }

// BinaryExprContext matches `left op right`.
type BinaryExprContext struct {
	exprSpan
	Op          string
	Left, Right ExprContext
}

func (*BinaryExprContext) Production() string { return "binaryExpression" }

// InstanceOfExprContext matches `operand instanceof Type`.
type InstanceOfExprContext struct {
	exprSpan
	Operand ExprContext
	Type    *TypeRefContext
}

func (*InstanceOfExprContext) Production() string { return "instanceOfExpression" }

// UnaryExprContext matches a prefix or postfix unary operator application.
type UnaryExprContext struct {
	exprSpan
	Op      string
	Prefix  bool
	Operand ExprContext
}

func (*UnaryExprContext) Production() string { return "unaryExpression" }

// AssignExprContext matches `target op value`.
type AssignExprContext struct {
	exprSpan
	Op            string
	Target, Value ExprContext
}

func (*AssignExprContext) Production() string { return "assignExpression" }

// TernaryExprContext matches `cond ? then : else`.
type TernaryExprContext struct {
	exprSpan
	Cond, Then, Else ExprContext
}

func (*TernaryExprContext) Production() string { return "ternaryExpression" }

// CastExprContext matches `(Type) operand`.
type CastExprContext struct {
	exprSpan
	Type    *TypeRefContext
	Operand ExprContext
}

func (*CastExprContext) Production() string { return "castExpression" }

// NewExprContext matches `new creator`.
type NewExprContext struct {
	exprSpan
	Creator *CreatorContext
}

func (*NewExprContext) Production() string { return "newExpression" }

// CreatorContext matches the creator following `new`: exactly one of the
// four initializer shapes.
type CreatorContext struct {
	span
	Type  *TypeRefContext
	Ctor  *CtorInitContext
	List  *ListInitContext
	Map   *MapInitContext
	Array *ArrayInitContext
}

func (*CreatorContext) Production() string { return "creator" }

// CtorInitContext matches `(args)`.
type CtorInitContext struct {
	span
	Args []ExprContext
}

func (*CtorInitContext) Production() string { return "constructorInit" }

// ListInitContext matches `{v1, v2, ...}`.
type ListInitContext struct {
	span
	Values []ExprContext
}

func (*ListInitContext) Production() string { return "listInit" }

// MapInitContext matches `{k1 => v1, ...}`.
type MapInitContext struct {
	span
	Pairs []*MapPairContext
}

func (*MapInitContext) Production() string { return "mapInit" }

// MapPairContext matches `key => value`.
type MapPairContext struct {
	span
	Key, Value ExprContext
}

func (*MapPairContext) Production() string { return "mapPair" }

// ArrayInitContext matches `[size]`.
type ArrayInitContext struct {
	span
	Size ExprContext
}

func (*ArrayInitContext) Production() string { return "arrayInit" }

// QueryExprContext matches an inline `[SELECT ...]` or `[FIND ...]` query.
// Raw is the text between the brackets; Bindings are the `:expr` host
// expressions in query order.
type QueryExprContext struct {
	exprSpan
	Sosl     bool
	Raw      string
	Bindings []ExprContext
}

func (*QueryExprContext) Production() string { return "queryExpression" }
