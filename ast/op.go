package ast

import "fmt"

// BinaryOp identifies a binary operator.
type BinaryOp int

// The closed set of binary operators.
const (
	BinaryAdd BinaryOp = iota
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryEqual
	BinaryNotEqual
	BinaryAlternativeNotEqual
	BinaryExactlyEqual
	BinaryExactlyNotEqual
	BinaryLessThan
	BinaryGreaterThan
	BinaryLessThanOrEqual
	BinaryGreaterThanOrEqual
	BinaryLogicalAnd
	BinaryLogicalOr
	BinaryBitAnd
	BinaryBitOr
	BinaryBitXor
	BinaryShiftLeft
	BinaryShiftRightSigned
	BinaryShiftRightUnsigned
)

var binaryOpSymbols = map[BinaryOp]string{
	BinaryAdd:                 "+",
	BinarySubtract:            "-",
	BinaryMultiply:            "*",
	BinaryDivide:              "/",
	BinaryEqual:               "==",
	BinaryNotEqual:            "!=",
	BinaryAlternativeNotEqual: "<>",
	BinaryExactlyEqual:        "===",
	BinaryExactlyNotEqual:     "!==",
	BinaryLessThan:            "<",
	BinaryGreaterThan:         ">",
	BinaryLessThanOrEqual:     "<=",
	BinaryGreaterThanOrEqual:  ">=",
	BinaryLogicalAnd:          "&&",
	BinaryLogicalOr:           "||",
	BinaryBitAnd:              "&",
	BinaryBitOr:               "|",
	BinaryBitXor:              "^",
	BinaryShiftLeft:           "<<",
	BinaryShiftRightSigned:    ">>",
	BinaryShiftRightUnsigned:  ">>>",
}

var binaryOpBySymbol = invert(binaryOpSymbols)

// String returns the operator's source symbol.
func (op BinaryOp) String() string {
	if s, ok := binaryOpSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// BinaryOpFromSymbol maps a source symbol back to its operator.
func BinaryOpFromSymbol(symbol string) (BinaryOp, bool) {
	op, ok := binaryOpBySymbol[symbol]
	return op, ok
}

// BinaryOps returns every binary operator.
func BinaryOps() []BinaryOp {
	return opsOf(binaryOpSymbols)
}

// UnaryOp identifies a unary operator, prefix or postfix.
type UnaryOp int

// The closed set of unary operators.
const (
	UnaryPlus UnaryOp = iota
	UnaryNegate
	UnaryLogicalNot
	UnaryBitNot
	UnaryPreIncrement
	UnaryPreDecrement
	UnaryPostIncrement
	UnaryPostDecrement
)

var unaryOpSymbols = map[UnaryOp]string{
	UnaryPlus:       "+",
	UnaryNegate:     "-",
	UnaryLogicalNot: "!",
	UnaryBitNot:     "~",
	// pre and post forms share their symbols; the from-symbol mapping is
	// resolved with an explicit prefix flag
	UnaryPreIncrement:  "++",
	UnaryPreDecrement:  "--",
	UnaryPostIncrement: "++",
	UnaryPostDecrement: "--",
}

// String returns the operator's source symbol.
func (op UnaryOp) String() string {
	if s, ok := unaryOpSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

// Postfix reports whether the operator is written after its operand.
func (op UnaryOp) Postfix() bool {
	return op == UnaryPostIncrement || op == UnaryPostDecrement
}

// UnaryOpFromSymbol maps a source symbol and position back to its operator.
func UnaryOpFromSymbol(symbol string, prefix bool) (UnaryOp, bool) {
	switch symbol {
	case "+":
		if prefix {
			return UnaryPlus, true
		}
	case "-":
		if prefix {
			return UnaryNegate, true
		}
	case "!":
		if prefix {
			return UnaryLogicalNot, true
		}
	case "~":
		if prefix {
			return UnaryBitNot, true
		}
	case "++":
		if prefix {
			return UnaryPreIncrement, true
		}
		return UnaryPostIncrement, true
	case "--":
		if prefix {
			return UnaryPreDecrement, true
		}
		return UnaryPostDecrement, true
	}
	return 0, false
}

// UnaryOps returns every unary operator.
func UnaryOps() []UnaryOp {
	return opsOf(unaryOpSymbols)
}

// AssignOp identifies an assignment operator, plain or compound.
type AssignOp int

// The closed set of assignment operators.
const (
	Assign AssignOp = iota
	AssignAdd
	AssignSubtract
	AssignMultiply
	AssignDivide
	AssignBitAnd
	AssignBitOr
	AssignBitXor
	AssignShiftLeft
	AssignShiftRightSigned
	AssignShiftRightUnsigned
)

var assignOpSymbols = map[AssignOp]string{
	Assign:                   "=",
	AssignAdd:                "+=",
	AssignSubtract:           "-=",
	AssignMultiply:           "*=",
	AssignDivide:             "/=",
	AssignBitAnd:             "&=",
	AssignBitOr:              "|=",
	AssignBitXor:             "^=",
	AssignShiftLeft:          "<<=",
	AssignShiftRightSigned:   ">>=",
	AssignShiftRightUnsigned: ">>>=",
}

var assignOpBySymbol = invert(assignOpSymbols)

// String returns the operator's source symbol.
func (op AssignOp) String() string {
	if s, ok := assignOpSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("AssignOp(%d)", int(op))
}

// AssignOpFromSymbol maps a source symbol back to its operator.
func AssignOpFromSymbol(symbol string) (AssignOp, bool) {
	op, ok := assignOpBySymbol[symbol]
	return op, ok
}

// AssignOps returns every assignment operator.
func AssignOps() []AssignOp {
	return opsOf(assignOpSymbols)
}

func invert[K comparable, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func opsOf[K ~int, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for op := range m {
		out = append(out, op)
	}
	return out
}
