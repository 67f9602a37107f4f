package ast

import (
	"fmt"
	"strconv"
)

// ── Interfaces ────────────────────────────────────────────────────────────────

// Node is the root interface for every element of the AST.
type Node interface {
	// String returns a compact, deterministic representation of the node.
	// Every operation is fully parenthesised, so rendering a tree and parsing
	// the result reproduces a structurally identical tree.
	String() string
}

// Expression is a Node that stands for a value. Expressions form a tree in
// which every node exclusively owns its children; once the parser returns a
// tree it is never mutated.
type Expression interface {
	Node
	expressionNode()
}

// ── Operators ─────────────────────────────────────────────────────────────────

// BinaryOp identifies a binary operator. The set is closed: both parsers
// dispatch on it with exhaustive switches, and adding an operator means adding
// a constant here plus an arm in each switch.
type BinaryOp int

const (
	OpAdd BinaryOp = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
	OpGreater             // >
	OpLess                // <
	OpEqual               // =
	OpGreaterEqual        // >=
	OpLessEqual           // <=
	OpNotEqual            // !=
	OpAnd                 // AND
	OpOr                  // OR
)

// String returns the canonical spelling of the operator as used in rendered
// trees: `+ - * / > < = >= <= != AND OR`.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpEqual:
		return "="
	case OpGreaterEqual:
		return ">="
	case OpLessEqual:
		return "<="
	case OpNotEqual:
		return "!="
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// UnaryOp identifies a unary operator. ASC and DESC are written postfix in the
// source but stored as ordinary unary operations wrapping their operand.
type UnaryOp int

const (
	OpPlus UnaryOp = iota // +
	OpMinus               // -
	OpNot                 // NOT
	OpAsc                 // ASC
	OpDesc                // DESC
)

// String returns the canonical spelling of the operator: `+ - NOT ASC DESC`.
func (op UnaryOp) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpNot:
		return "NOT"
	case OpAsc:
		return "ASC"
	case OpDesc:
		return "DESC"
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

// ── Leaf expressions ──────────────────────────────────────────────────────────

// NumberLiteral is an unsigned decimal integer literal value.
type NumberLiteral struct {
	Value uint64
}

func (e *NumberLiteral) expressionNode() {}
func (e *NumberLiteral) String() string  { return strconv.FormatUint(e.Value, 10) }

// Identifier is a reference to a named column or variable.
type Identifier struct {
	Name string
}

func (e *Identifier) expressionNode() {}
func (e *Identifier) String() string  { return e.Name }

// StringLiteral is a quoted string value. Only the SQL grammar produces these.
type StringLiteral struct {
	Value string
}

func (e *StringLiteral) expressionNode() {}
func (e *StringLiteral) String() string  { return fmt.Sprintf("%q", e.Value) }

// BoolLiteral is the boolean literal TRUE or FALSE. Only the SQL grammar
// produces these.
type BoolLiteral struct {
	Value bool
}

func (e *BoolLiteral) expressionNode() {}
func (e *BoolLiteral) String() string {
	if e.Value {
		return "TRUE"
	}
	return "FALSE"
}

// Wildcard is the `*` column list of SELECT * FROM. It only ever appears as a
// whole column entry, never inside an expression tree.
type Wildcard struct{}

func (e *Wildcard) expressionNode() {}
func (e *Wildcard) String() string  { return "*" }

// ── Compound expressions ──────────────────────────────────────────────────────

// UnaryExpr is a unary operation wrapping a single owned operand:
// -x, NOT found, salary ASC.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expression
}

func (e *UnaryExpr) expressionNode() {}
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Op, e.Operand)
}

// BinaryExpr is a binary operation owning a left and a right operand:
// a + b, age >= 18, x AND y.
type BinaryExpr struct {
	Left  Expression
	Op    BinaryOp
	Right Expression
}

func (e *BinaryExpr) expressionNode() {}
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}
