package ast

// Initializer is the construction form of a new-expression. Every variant
// carries the constructed type.
type Initializer interface {
	Node
	// Type returns the constructed type.
	Type() TypeRef

	initializerNode()
}

// ConstructorInitializer calls a constructor: `new Account(Name = n)` or
// `new Foo(a, b)`.
type ConstructorInitializer struct {
	node
	typ  TypeRef
	args []Expression
}

// NewConstructorInitializer constructs a constructor-call initializer.
func NewConstructorInitializer(c *Counter, loc Location, typ TypeRef, args []Expression) *ConstructorInitializer {
	in := &ConstructorInitializer{typ: typ, args: args}
	kids := make([]Node, len(args))
	for i, a := range args {
		kids[i] = a
	}
	in.node = newNode(c, loc, kids)
	return in
}

// Type returns the constructed type.
func (in *ConstructorInitializer) Type() TypeRef { return in.typ }

// Args returns the constructor arguments in order.
func (in *ConstructorInitializer) Args() []Expression { return in.args }

func (in *ConstructorInitializer) Kind() Kind       { return KindConstructorInitializer }
func (in *ConstructorInitializer) initializerNode() {}

// ValuesInitializer lists element values: `new List<Integer>{1, 2}`.
type ValuesInitializer struct {
	node
	typ    TypeRef
	values []Expression
}

// NewValuesInitializer constructs a value-list initializer.
func NewValuesInitializer(c *Counter, loc Location, typ TypeRef, values []Expression) *ValuesInitializer {
	in := &ValuesInitializer{typ: typ, values: values}
	kids := make([]Node, len(values))
	for i, v := range values {
		kids[i] = v
	}
	in.node = newNode(c, loc, kids)
	return in
}

// Type returns the constructed type.
func (in *ValuesInitializer) Type() TypeRef { return in.typ }

// Values returns the element values in order.
func (in *ValuesInitializer) Values() []Expression { return in.values }

func (in *ValuesInitializer) Kind() Kind       { return KindValuesInitializer }
func (in *ValuesInitializer) initializerNode() {}

// MapInitializer lists key/value pairs: `new Map<Id, String>{k => v}`.
type MapInitializer struct {
	node
	typ  TypeRef
	keys []Expression
	vals []Expression
}

// NewMapInitializer constructs a key/value-map initializer. keys and vals
// are parallel and equal in length.
func NewMapInitializer(c *Counter, loc Location, typ TypeRef, keys, vals []Expression) *MapInitializer {
	in := &MapInitializer{typ: typ, keys: keys, vals: vals}
	kids := make([]Node, 0, 2*len(keys))
	for i := range keys {
		kids = append(kids, keys[i], vals[i])
	}
	in.node = newNode(c, loc, kids)
	return in
}

// Type returns the constructed type.
func (in *MapInitializer) Type() TypeRef { return in.typ }

// Keys returns the keys in source order.
func (in *MapInitializer) Keys() []Expression { return in.keys }

// Values returns the values in source order, parallel to Keys.
func (in *MapInitializer) Values() []Expression { return in.vals }

func (in *MapInitializer) Kind() Kind       { return KindMapInitializer }
func (in *MapInitializer) initializerNode() {}

// SizedArrayInitializer allocates an array of a given size:
// `new Integer[5]`.
type SizedArrayInitializer struct {
	node
	typ  TypeRef
	size Expression
}

// NewSizedArrayInitializer constructs a sized-array initializer.
func NewSizedArrayInitializer(c *Counter, loc Location, typ TypeRef, size Expression) *SizedArrayInitializer {
	in := &SizedArrayInitializer{typ: typ, size: size}
	in.node = newNode(c, loc, []Node{size})
	return in
}

// Type returns the constructed element type.
func (in *SizedArrayInitializer) Type() TypeRef { return in.typ }

// Size returns the allocation size expression.
func (in *SizedArrayInitializer) Size() Expression { return in.size }

func (in *SizedArrayInitializer) Kind() Kind       { return KindSizedArrayInitializer }
func (in *SizedArrayInitializer) initializerNode() {}
