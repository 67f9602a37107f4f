// Package parser_test contains tests for the SQL statement parser.
//
// Expression tests compare the rendered tree, which is fully parenthesised and
// pins down the exact shape; statement tests inspect the returned AST through
// type assertions. Error tests check that malformed input aborts the parse.
package parser_test

import (
	"strings"
	"testing"

	"github.com/yezholov/prattql/ast"
	"github.com/yezholov/prattql/parser"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

// parseExpr parses input as a bare expression, failing the test on error.
func parseExpr(t *testing.T, input string) ast.Expression {
	t.Helper()
	e, err := parser.ParseExpression(input)
	if err != nil {
		t.Fatalf("ParseExpression(%q) returned error: %v", input, err)
	}
	return e
}

// parseSelect parses input and asserts it produced a SELECT statement.
func parseSelect(t *testing.T, input string) *ast.SelectStmt {
	t.Helper()
	stmt, err := parser.ParseStatement(input)
	if err != nil {
		t.Fatalf("ParseStatement(%q) returned error: %v", input, err)
	}
	sel, ok := stmt.(*ast.SelectStmt)
	if !ok {
		t.Fatalf("expected *ast.SelectStmt, got %T", stmt)
	}
	return sel
}

// parseCreate parses input and asserts it produced a CREATE TABLE statement.
func parseCreate(t *testing.T, input string) *ast.CreateTableStmt {
	t.Helper()
	stmt, err := parser.ParseStatement(input)
	if err != nil {
		t.Fatalf("ParseStatement(%q) returned error: %v", input, err)
	}
	ct, ok := stmt.(*ast.CreateTableStmt)
	if !ok {
		t.Fatalf("expected *ast.CreateTableStmt, got %T", stmt)
	}
	return ct
}

// assertError parses input as a statement and fails the test unless the parse
// fails with an error mentioning wantSubstr.
func assertError(t *testing.T, input, wantSubstr string) {
	t.Helper()
	_, err := parser.ParseStatement(input)
	if err == nil {
		t.Fatalf("ParseStatement(%q) succeeded, want error containing %q", input, wantSubstr)
	}
	if !strings.Contains(err.Error(), wantSubstr) {
		t.Fatalf("ParseStatement(%q) error %q does not contain %q", input, err, wantSubstr)
	}
}

// ── Expressions ───────────────────────────────────────────────────────────────

func TestParseExpression_Shapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5 + 3", "(5 + 3)"},
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"(2 + 3) * 4", "((2 + 3) * 4)"},
		{"-5", "(- 5)"},
		{"NOT found", "(NOT found)"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"(5 - x) < (4 + y)", "((5 - x) < (4 + y))"},
		{"x > 5 AND y < 10", "((x > 5) AND (y < 10))"},
		{"age >= 18 AND (salary > 50000 OR experience >= 5)", "((age >= 18) AND ((salary > 50000) OR (experience >= 5)))"},
		{"name != 'Donna'", `(name != "Donna")`},
		{"active = TRUE OR deleted = FALSE", "((active = TRUE) OR (deleted = FALSE))"},
		{"NOT some_boolean = TRUE", "((NOT some_boolean) = TRUE)"},
		{"salary - 2 * 10 ASC", "(ASC (salary - (2 * 10)))"},
		{"id DESC", "(DESC id)"},
	}

	for _, tt := range tests {
		got := parseExpr(t, tt.input).String()
		if got != tt.want {
			t.Errorf("ParseExpression(%q): got %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseExpression_Errors(t *testing.T) {
	for _, input := range []string{
		"5 + ",
		"(5 + 3",
		"5 * 3 - 4 + c / (13 -)",
		"! x",   // lone '!' is not an operator
		"'abc",  // unterminated string
		"'ab\"", // mismatched quotes
		"",
	} {
		if _, err := parser.ParseExpression(input); err == nil {
			t.Errorf("ParseExpression(%q) succeeded, want error", input)
		}
	}
}

// ── SELECT statements ─────────────────────────────────────────────────────────

func TestParseStatement_SimpleSelect(t *testing.T) {
	sel := parseSelect(t, `SELECT name, age FROM users;`)

	if len(sel.Columns) != 2 {
		t.Fatalf("columns: got %d, want 2", len(sel.Columns))
	}
	for i, want := range []string{"name", "age"} {
		id, ok := sel.Columns[i].(*ast.Identifier)
		if !ok || id.Name != want {
			t.Errorf("column %d: got %s, want %s", i, sel.Columns[i], want)
		}
	}
	if sel.From != "users" {
		t.Errorf("from: got %q, want %q", sel.From, "users")
	}
	if sel.Where != nil {
		t.Errorf("where: got %s, want nil", sel.Where)
	}
	if len(sel.OrderBy) != 0 {
		t.Errorf("order by: got %d expressions, want 0", len(sel.OrderBy))
	}
}

func TestParseStatement_SelectWithWhere(t *testing.T) {
	sel := parseSelect(t, `SELECT id FROM users WHERE age > 18;`)

	if sel.Where == nil {
		t.Fatal("where clause missing")
	}
	if got, want := sel.Where.String(), "(age > 18)"; got != want {
		t.Errorf("where: got %s, want %s", got, want)
	}
}

func TestParseStatement_SelectWithOrderBy(t *testing.T) {
	sel := parseSelect(t, `SELECT id, salary FROM users ORDER BY salary - 2 * 10 ASC, id DESC;`)

	if len(sel.OrderBy) != 2 {
		t.Fatalf("order by: got %d expressions, want 2", len(sel.OrderBy))
	}
	if got, want := sel.OrderBy[0].String(), "(ASC (salary - (2 * 10)))"; got != want {
		t.Errorf("order by[0]: got %s, want %s", got, want)
	}
	if got, want := sel.OrderBy[1].String(), "(DESC id)"; got != want {
		t.Errorf("order by[1]: got %s, want %s", got, want)
	}
}

func TestParseStatement_SelectStar(t *testing.T) {
	sel := parseSelect(t, `SELECT * FROM users WHERE age > 18;`)

	if len(sel.Columns) != 1 {
		t.Fatalf("columns: got %d, want 1", len(sel.Columns))
	}
	if _, ok := sel.Columns[0].(*ast.Wildcard); !ok {
		t.Fatalf("column: got %T, want *ast.Wildcard", sel.Columns[0])
	}
	if sel.Where == nil {
		t.Error("where clause missing")
	}
}

// TestParseStatement_StarAsMultiply checks that '*' after an expression is the
// multiplication operator, not the wildcard.
func TestParseStatement_StarAsMultiply(t *testing.T) {
	sel := parseSelect(t, `SELECT age * 2 FROM users;`)

	if got, want := sel.Columns[0].String(), "(age * 2)"; got != want {
		t.Errorf("column: got %s, want %s", got, want)
	}
}

func TestParseStatement_SelectWithStrings(t *testing.T) {
	sel := parseSelect(t, `SELECT name FROM users WHERE name = "Voldemort" AND surname = 'Riddle';`)

	want := `((name = "Voldemort") AND (surname = "Riddle"))`
	if got := sel.Where.String(); got != want {
		t.Errorf("where: got %s, want %s", got, want)
	}
}

// ── CREATE TABLE statements ───────────────────────────────────────────────────

func TestParseStatement_CreateTableSimple(t *testing.T) {
	ct := parseCreate(t, `CREATE TABLE users(id INT, name VARCHAR(255), junior BOOL);`)

	if ct.Name != "users" {
		t.Errorf("table name: got %q, want %q", ct.Name, "users")
	}
	if len(ct.Columns) != 3 {
		t.Fatalf("columns: got %d, want 3", len(ct.Columns))
	}

	want := []struct {
		name string
		typ  ast.ColumnType
	}{
		{"id", ast.ColumnType{Kind: ast.TypeInt}},
		{"name", ast.ColumnType{Kind: ast.TypeVarchar, Length: 255}},
		{"junior", ast.ColumnType{Kind: ast.TypeBool}},
	}
	for i, w := range want {
		col := ct.Columns[i]
		if col.Name != w.name {
			t.Errorf("column %d name: got %q, want %q", i, col.Name, w.name)
		}
		if col.Type != w.typ {
			t.Errorf("column %d type: got %v, want %v", i, col.Type, w.typ)
		}
		if len(col.Constraints) != 0 {
			t.Errorf("column %d: got %d constraints, want 0", i, len(col.Constraints))
		}
	}
}

func TestParseStatement_CreateTableWithConstraints(t *testing.T) {
	ct := parseCreate(t, `CREATE TABLE employees(
		id INT PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		age INT CHECK(age >= 18) CHECK(age <= 65)
	);`)

	if len(ct.Columns) != 3 {
		t.Fatalf("columns: got %d, want 3", len(ct.Columns))
	}

	id := ct.Columns[0]
	if len(id.Constraints) != 1 || id.Constraints[0].Kind != ast.PrimaryKey {
		t.Errorf("id constraints: got %v, want [PRIMARY KEY]", id.Constraints)
	}

	email := ct.Columns[1]
	if len(email.Constraints) != 1 || email.Constraints[0].Kind != ast.NotNull {
		t.Errorf("email constraints: got %v, want [NOT NULL]", email.Constraints)
	}

	age := ct.Columns[2]
	if len(age.Constraints) != 2 {
		t.Fatalf("age constraints: got %d, want 2", len(age.Constraints))
	}
	for i, want := range []string{"(age >= 18)", "(age <= 65)"} {
		c := age.Constraints[i]
		if c.Kind != ast.Check {
			t.Errorf("age constraint %d: kind %v, want Check", i, c.Kind)
		}
		if got := c.Expr.String(); got != want {
			t.Errorf("age constraint %d: got %s, want %s", i, got, want)
		}
	}
}

// ── Statement rendering ───────────────────────────────────────────────────────

func TestStatement_String(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			`select id from users where age > 18 order by id desc;`,
			`SELECT id FROM users WHERE (age > 18) ORDER BY (DESC id);`,
		},
		{
			`create table t(id int primary key, name varchar(10));`,
			`CREATE TABLE t(id INT PRIMARY KEY, name VARCHAR(10));`,
		},
	}
	for _, tt := range tests {
		stmt, err := parser.ParseStatement(tt.input)
		if err != nil {
			t.Fatalf("ParseStatement(%q) returned error: %v", tt.input, err)
		}
		if got := stmt.String(); got != tt.want {
			t.Errorf("String(): got %s, want %s", got, tt.want)
		}
	}
}

// ── Errors ────────────────────────────────────────────────────────────────────

func TestParseStatement_Errors(t *testing.T) {
	tests := []struct {
		input      string
		wantSubstr string
	}{
		{`SELECT id;`, "FROM"},
		{`SELECT salary WHERE salary > 1000;`, "FROM"},
		{`CREATE TABLE work_hours(num_hours INT)`, "semicolon"},
		{`SELECT id FROM users`, "semicolon"},
		{`CREATE TABLE users(id INT, age INVALID);`, "expected data type"},
		{`SELECT id FROM users ORDER BY;`, "prefix position"},
		{`SELECT id FROM users ORDER id;`, "BY"},
		{`UPDATE users;`, "expected SELECT or CREATE"},
		{`CREATE users(id INT);`, "TABLE"},
		{`CREATE TABLE users(name VARCHAR);`, "( after VARCHAR"},
		{`CREATE TABLE users(id INT PRIMARY);`, "KEY after PRIMARY"},
		{``, "empty input"},
	}
	for _, tt := range tests {
		assertError(t, tt.input, tt.wantSubstr)
	}
}
