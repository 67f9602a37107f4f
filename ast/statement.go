package ast

import (
	"fmt"
	"strings"
)

// ── Statements ────────────────────────────────────────────────────────────────

// Statement is a complete parsed SQL statement. The set is closed: SELECT and
// CREATE TABLE are the only statement forms the parser recognises.
type Statement interface {
	Node
	statementNode()
}

// SelectStmt is a parsed SELECT statement.
//
//	SELECT name, age * 2 FROM users WHERE age > 18 ORDER BY name ASC;
//
// Where is nil when the statement has no WHERE clause; OrderBy is empty when it
// has no ORDER BY clause. Ordering directions (ASC/DESC) appear as postfix
// UnaryExpr nodes wrapping the ordering expression.
type SelectStmt struct {
	Columns []Expression
	From    string
	Where   Expression
	OrderBy []Expression
}

func (s *SelectStmt) statementNode() {}
func (s *SelectStmt) String() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	for i, c := range s.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteString(" FROM ")
	b.WriteString(s.From)
	if s.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(s.Where.String())
	}
	if len(s.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		for i, e := range s.OrderBy {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.String())
		}
	}
	b.WriteString(";")
	return b.String()
}

// CreateTableStmt is a parsed CREATE TABLE statement.
//
//	CREATE TABLE users(id INT PRIMARY KEY, name VARCHAR(255) NOT NULL);
type CreateTableStmt struct {
	Name    string
	Columns []ColumnDef
}

func (s *CreateTableStmt) statementNode() {}
func (s *CreateTableStmt) String() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(s.Name)
	b.WriteString("(")
	for i, c := range s.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteString(");")
	return b.String()
}

// ── Column definitions ────────────────────────────────────────────────────────

// ColumnDef is one column definition inside a CREATE TABLE statement: its name,
// its type, and zero or more constraints in source order.
type ColumnDef struct {
	Name        string
	Type        ColumnType
	Constraints []Constraint
}

// String renders the definition the way it is written: name TYPE constraints.
func (c ColumnDef) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(" ")
	b.WriteString(c.Type.String())
	for _, con := range c.Constraints {
		b.WriteString(" ")
		b.WriteString(con.String())
	}
	return b.String()
}

// TypeKind identifies a column type.
type TypeKind int

const (
	TypeInt TypeKind = iota
	TypeBool
	TypeVarchar
)

// ColumnType is a column's declared type. Length is meaningful only for
// TypeVarchar, where it holds the maximum string length.
type ColumnType struct {
	Kind   TypeKind
	Length int
}

func (t ColumnType) String() string {
	switch t.Kind {
	case TypeInt:
		return "INT"
	case TypeBool:
		return "BOOL"
	case TypeVarchar:
		return fmt.Sprintf("VARCHAR(%d)", t.Length)
	}
	return fmt.Sprintf("TypeKind(%d)", int(t.Kind))
}

// ConstraintKind identifies a column constraint form.
type ConstraintKind int

const (
	PrimaryKey ConstraintKind = iota
	NotNull
	Check
)

// Constraint is one constraint on a column. Expr is set only for Check, where
// it holds the expression every row must satisfy.
type Constraint struct {
	Kind ConstraintKind
	Expr Expression
}

func (c Constraint) String() string {
	switch c.Kind {
	case PrimaryKey:
		return "PRIMARY KEY"
	case NotNull:
		return "NOT NULL"
	case Check:
		return fmt.Sprintf("CHECK(%s)", c.Expr)
	}
	return fmt.Sprintf("ConstraintKind(%d)", int(c.Kind))
}
