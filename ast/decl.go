package ast

import "errors"

// Declaration is any named declaration node.
//
// Modifiers are parsed separately from the declaration they attach to, so a
// declaration is built without them and completed by a single ApplyModifiers
// call before it is linked into the tree.
type Declaration interface {
	Node
	// Name returns the declared name.
	Name() *Identifier
	// Modifiers returns the applied modifiers, in source order.
	Modifiers() []Modifier
	// ApplyModifiers attaches the modifiers to the declaration. It may be
	// called at most once, and only before the tree is linked.
	ApplyModifiers(mods []Modifier) error
	// QualifiedName returns the dotted name formed by the enclosing type
	// declarations and the declared name. It is only meaningful after the
	// tree has been linked.
	QualifiedName() string

	declNode()
}

// TypeDeclaration is a declaration that can appear at the top level of a
// compilation unit: class, interface, enum, or trigger.
type TypeDeclaration interface {
	Declaration
	// BodyDeclarations returns the member declarations, in source order.
	BodyDeclarations() []Declaration

	typeDeclNode()
}

// decl is the embedded base of every declaration node.
type decl struct {
	node
	name    *Identifier
	mods    []Modifier
	modsSet bool
}

func (d *decl) Name() *Identifier     { return d.name }
func (d *decl) Modifiers() []Modifier { return d.mods }

func (d *decl) ApplyModifiers(mods []Modifier) error {
	if d.modsSet {
		return errors.New("ast: modifiers already applied")
	}
	d.modsSet = true
	d.mods = mods
	for _, m := range mods {
		d.children = append(d.children, m)
	}
	return nil
}

func (d *decl) QualifiedName() string {
	return qualifiedName(d.name.Value(), d.parent)
}

func (d *decl) declNode() {}

// typeDecl is the embedded base of class, interface, and enum declarations.
type typeDecl struct {
	decl
	body []Declaration
}

func (t *typeDecl) BodyDeclarations() []Declaration { return t.body }
func (t *typeDecl) typeDeclNode()                   {}

// Methods returns the method declarations among the body members.
func (t *typeDecl) Methods() []*MethodDeclaration {
	return membersOf[*MethodDeclaration](t.body)
}

// Fields returns the field declarations among the body members.
func (t *typeDecl) Fields() []*FieldDeclaration {
	return membersOf[*FieldDeclaration](t.body)
}

// Properties returns the property declarations among the body members.
func (t *typeDecl) Properties() []*PropertyDeclaration {
	return membersOf[*PropertyDeclaration](t.body)
}

// InnerTypes returns the nested type declarations among the body members.
func (t *typeDecl) InnerTypes() []TypeDeclaration {
	return membersOf[TypeDeclaration](t.body)
}

// membersOf filters a body member list by declaration kind. Type
// declarations do not keep per-kind registries; the body list is the single
// source of truth.
func membersOf[T Declaration](body []Declaration) []T {
	var out []T
	for _, d := range body {
		if m, ok := d.(T); ok {
			out = append(out, m)
		}
	}
	return out
}

func declChildren(name *Identifier, body []Declaration) []Node {
	kids := []Node{name}
	for _, d := range body {
		kids = append(kids, d)
	}
	return kids
}

// ClassDeclaration declares a class.
type ClassDeclaration struct {
	typeDecl
	superClass *TypeRef
	interfaces []TypeRef
}

// NewClassDeclaration constructs a class declaration. superClass is nil when
// the class extends nothing.
func NewClassDeclaration(c *Counter, loc Location, name *Identifier, superClass *TypeRef, interfaces []TypeRef, body []Declaration) *ClassDeclaration {
	d := &ClassDeclaration{superClass: superClass, interfaces: interfaces}
	d.name = name
	d.body = body
	d.node = newNode(c, loc, declChildren(name, body))
	return d
}

// SuperClass returns the extended class, or nil.
func (d *ClassDeclaration) SuperClass() *TypeRef { return d.superClass }

// Interfaces returns the implemented interfaces, possibly empty.
func (d *ClassDeclaration) Interfaces() []TypeRef { return d.interfaces }

func (d *ClassDeclaration) Kind() Kind { return KindClassDeclaration }

// InterfaceDeclaration declares an interface.
type InterfaceDeclaration struct {
	typeDecl
	extends []TypeRef
}

// NewInterfaceDeclaration constructs an interface declaration.
func NewInterfaceDeclaration(c *Counter, loc Location, name *Identifier, extends []TypeRef, body []Declaration) *InterfaceDeclaration {
	d := &InterfaceDeclaration{extends: extends}
	d.name = name
	d.body = body
	d.node = newNode(c, loc, declChildren(name, body))
	return d
}

// Extends returns the extended interfaces, possibly empty.
func (d *InterfaceDeclaration) Extends() []TypeRef { return d.extends }

func (d *InterfaceDeclaration) Kind() Kind { return KindInterfaceDeclaration }

// EnumDeclaration declares an enum.
type EnumDeclaration struct {
	typeDecl
	values []*Identifier
}

// NewEnumDeclaration constructs an enum declaration.
func NewEnumDeclaration(c *Counter, loc Location, name *Identifier, values []*Identifier) *EnumDeclaration {
	d := &EnumDeclaration{values: values}
	d.name = name
	kids := []Node{name}
	for _, v := range values {
		kids = append(kids, v)
	}
	d.node = newNode(c, loc, kids)
	return d
}

// Values returns the enum constants in source order.
func (d *EnumDeclaration) Values() []*Identifier { return d.values }

func (d *EnumDeclaration) Kind() Kind { return KindEnumDeclaration }

// TriggerTime says whether a trigger case fires before or after its
// operation.
type TriggerTime int

// Trigger times.
const (
	TriggerBefore TriggerTime = iota
	TriggerAfter
)

// String returns the source spelling.
func (t TriggerTime) String() string {
	if t == TriggerAfter {
		return "after"
	}
	return "before"
}

// TriggerOp is the DML operation a trigger case matches.
type TriggerOp int

// Trigger operations.
const (
	TriggerInsert TriggerOp = iota
	TriggerUpdate
	TriggerDelete
	TriggerUndelete
)

var triggerOpNames = map[TriggerOp]string{
	TriggerInsert:   "insert",
	TriggerUpdate:   "update",
	TriggerDelete:   "delete",
	TriggerUndelete: "undelete",
}

// String returns the source spelling.
func (o TriggerOp) String() string { return triggerOpNames[o] }

// TriggerCase is one time/operation pair from a trigger header, such as
// `before update`.
type TriggerCase struct {
	Time TriggerTime
	Op   TriggerOp
}

// TriggerDeclaration declares a trigger.
type TriggerDeclaration struct {
	decl
	target     *Identifier
	cases      []TriggerCase
	statements []Statement
}

// NewTriggerDeclaration constructs a trigger declaration. target is the
// object the trigger fires on.
func NewTriggerDeclaration(c *Counter, loc Location, name, target *Identifier, cases []TriggerCase, statements []Statement) *TriggerDeclaration {
	d := &TriggerDeclaration{target: target, cases: cases, statements: statements}
	d.name = name
	kids := []Node{name, target}
	for _, s := range statements {
		kids = append(kids, s)
	}
	d.node = newNode(c, loc, kids)
	return d
}

// Target returns the object the trigger fires on.
func (d *TriggerDeclaration) Target() *Identifier { return d.target }

// Cases returns the matched time/operation pairs.
func (d *TriggerDeclaration) Cases() []TriggerCase { return d.cases }

// Statements returns the trigger body.
func (d *TriggerDeclaration) Statements() []Statement { return d.statements }

// BodyDeclarations returns nil: a trigger body holds statements, not member
// declarations.
func (d *TriggerDeclaration) BodyDeclarations() []Declaration { return nil }

func (d *TriggerDeclaration) Kind() Kind    { return KindTriggerDeclaration }
func (d *TriggerDeclaration) typeDeclNode() {}

// MethodDeclaration declares a method or constructor. Constructors and the
// methods synthesized for property accessors and anonymous initializer
// blocks have no return type.
type MethodDeclaration struct {
	decl
	params     []*ParameterDeclaration
	returnType *TypeRef // nil for constructors and synthesized initializers
	body       *BlockStatement
}

// NewMethodDeclaration constructs a method declaration. body is nil for
// abstract and interface methods.
func NewMethodDeclaration(c *Counter, loc Location, name *Identifier, params []*ParameterDeclaration, returnType *TypeRef, body *BlockStatement) *MethodDeclaration {
	d := &MethodDeclaration{params: params, returnType: returnType, body: body}
	d.name = name
	kids := []Node{name}
	for _, p := range params {
		kids = append(kids, p)
	}
	if body != nil {
		kids = append(kids, body)
	}
	d.node = newNode(c, loc, kids)
	return d
}

// Parameters returns the formal parameters in order.
func (d *MethodDeclaration) Parameters() []*ParameterDeclaration { return d.params }

// ReturnType returns the declared return type, or nil for constructors and
// synthesized initializer methods.
func (d *MethodDeclaration) ReturnType() *TypeRef { return d.returnType }

// Body returns the method body, or nil for abstract and interface methods.
func (d *MethodDeclaration) Body() *BlockStatement { return d.body }

func (d *MethodDeclaration) Kind() Kind { return KindMethodDeclaration }

// ParameterDeclaration declares one formal parameter.
type ParameterDeclaration struct {
	decl
	typ TypeRef
}

// NewParameterDeclaration constructs a parameter declaration.
func NewParameterDeclaration(c *Counter, loc Location, name *Identifier, typ TypeRef) *ParameterDeclaration {
	d := &ParameterDeclaration{typ: typ}
	d.name = name
	d.node = newNode(c, loc, []Node{name})
	return d
}

// Type returns the declared parameter type.
func (d *ParameterDeclaration) Type() TypeRef { return d.typ }

func (d *ParameterDeclaration) Kind() Kind { return KindParameterDeclaration }

// FieldDeclaration declares a single field. A source declaration group like
// `Integer a, b = 2;` translates to one FieldDeclaration per declarator.
type FieldDeclaration struct {
	decl
	typ  TypeRef
	init Expression // nil when the field has no initializer
}

// NewFieldDeclaration constructs a field declaration.
func NewFieldDeclaration(c *Counter, loc Location, name *Identifier, typ TypeRef, init Expression) *FieldDeclaration {
	d := &FieldDeclaration{typ: typ, init: init}
	d.name = name
	d.node = newNode(c, loc, childList(name, init))
	return d
}

// Type returns the declared field type.
func (d *FieldDeclaration) Type() TypeRef { return d.typ }

// Init returns the initializer expression, or nil.
func (d *FieldDeclaration) Init() Expression { return d.init }

func (d *FieldDeclaration) Kind() Kind { return KindFieldDeclaration }

// PropertyDeclaration declares a property with up to one getter and one
// setter, each synthesized into a full method declaration.
type PropertyDeclaration struct {
	decl
	typ    TypeRef
	getter *MethodDeclaration // nil when no getter is declared
	setter *MethodDeclaration // nil when no setter is declared
}

// NewPropertyDeclaration constructs a property declaration.
func NewPropertyDeclaration(c *Counter, loc Location, name *Identifier, typ TypeRef, getter, setter *MethodDeclaration) *PropertyDeclaration {
	d := &PropertyDeclaration{typ: typ, getter: getter, setter: setter}
	d.name = name
	d.node = newNode(c, loc, childList(name, nodeOrNil(getter), nodeOrNil(setter)))
	return d
}

// Type returns the declared property type.
func (d *PropertyDeclaration) Type() TypeRef { return d.typ }

// Getter returns the synthesized getter method, or nil.
func (d *PropertyDeclaration) Getter() *MethodDeclaration { return d.getter }

// Setter returns the synthesized setter method, or nil.
func (d *PropertyDeclaration) Setter() *MethodDeclaration { return d.setter }

func (d *PropertyDeclaration) Kind() Kind { return KindPropertyDeclaration }

// LocalVariableDeclaration declares one local variable, either inside a
// VariableDeclarationStatement group, as an enhanced-for element, or as the
// binding synthesized for a when-type clause.
type LocalVariableDeclaration struct {
	decl
	typ  TypeRef
	init Expression // nil when the variable has no initializer
}

// NewLocalVariableDeclaration constructs a local variable declaration.
func NewLocalVariableDeclaration(c *Counter, loc Location, name *Identifier, typ TypeRef, init Expression) *LocalVariableDeclaration {
	d := &LocalVariableDeclaration{typ: typ, init: init}
	d.name = name
	d.node = newNode(c, loc, childList(name, init))
	return d
}

// Type returns the declared variable type.
func (d *LocalVariableDeclaration) Type() TypeRef { return d.typ }

// Init returns the initializer expression, or nil.
func (d *LocalVariableDeclaration) Init() Expression { return d.init }

func (d *LocalVariableDeclaration) Kind() Kind { return KindLocalVariableDeclaration }
