// Package ast defines the token types and the Token struct used by the SQL lexer
// and parser, along with the AST node types both parsers produce.
//
// Tokens are the smallest meaningful units of a query string. Every token carries
// its type, the exact literal text it was scanned from, and its source position
// (line + column). Position is 1-based: the first character of a query is
// Line 1, Col 1.
package ast

import "strings"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ILLEGAL represents a character or sequence the lexer could not recognise:
	// an unterminated string literal, a string closed with the wrong quote
	// character, a lone '!' (only "!=" is a valid operator), or an unexpected
	// byte value.
	ILLEGAL TokenType = iota
	// EOF marks the end of the input stream. The parser stops when it sees EOF.
	EOF

	// ── Literals ───────────────────────────────────────────────────────────────

	// IDENT is an identifier: [a-zA-Z_][a-zA-Z0-9_]*
	// Identifiers that match a keyword (case-insensitively) are re-classified to
	// their keyword type by the lexer before the token is returned.
	IDENT
	// NUMBER is an unsigned decimal integer literal, e.g. 0, 42, 255.
	NUMBER
	// STRING is a quoted string literal. Either single or double quotes may be
	// used, but the closing quote must match the opening one.
	STRING

	// ── Keywords ───────────────────────────────────────────────────────────────

	// SELECT begins a query statement: SELECT name FROM users;
	SELECT
	// CREATE begins a table definition statement: CREATE TABLE users(...);
	CREATE
	// TABLE follows CREATE in a table definition.
	TABLE
	// WHERE introduces the filter expression of a SELECT.
	WHERE
	// ORDER introduces the ordering clause together with BY.
	ORDER
	// BY follows ORDER in an ordering clause.
	BY
	// ASC is the ascending ordering operator, applied postfix to an expression.
	ASC
	// DESC is the descending ordering operator, applied postfix to an expression.
	DESC
	// FROM separates the column list from the table name in a SELECT.
	FROM
	// AND is the logical conjunction operator: a AND b
	AND
	// OR is the logical disjunction operator: a OR b
	OR
	// NOT is the logical negation operator: NOT a
	NOT
	// TRUE is the boolean literal TRUE.
	TRUE
	// FALSE is the boolean literal FALSE.
	FALSE
	// PRIMARY is the first word of the PRIMARY KEY column constraint.
	PRIMARY
	// KEY is the second word of the PRIMARY KEY column constraint.
	KEY
	// CHECK introduces a CHECK(expr) column constraint.
	CHECK
	// INT is the integer column type.
	INT
	// BOOL is the boolean column type.
	BOOL
	// VARCHAR is the string column type; it requires a length: VARCHAR(255).
	VARCHAR
	// NULL is the NULL keyword, used in the NOT NULL constraint.
	NULL

	// ── Operators ──────────────────────────────────────────────────────────────

	// GT is the greater-than operator: a > b
	GT
	// GTE is the greater-than-or-equal operator: a >= b
	GTE
	// LT is the less-than operator: a < b
	LT
	// LTE is the less-than-or-equal operator: a <= b
	LTE
	// EQ is the equality operator: a = b
	EQ
	// NEQ is the inequality operator: a != b
	NEQ
	// STAR is the multiplication operator; it doubles as the wildcard column
	// list in SELECT * FROM.
	STAR
	// SLASH is the division operator: a / b
	SLASH
	// PLUS is addition or unary plus: a + b  /  +x
	PLUS
	// MINUS is subtraction or unary negation: a - b  /  -x
	MINUS

	// ── Delimiters ─────────────────────────────────────────────────────────────

	// LPAREN is the left parenthesis: (
	LPAREN
	// RPAREN is the right parenthesis: )
	RPAREN
	// COMMA separates columns, ORDER BY expressions, and column definitions: ,
	COMMA
	// SEMICOLON terminates a statement: ;
	SEMICOLON
)

// keywords maps the upper-cased literal text of every keyword to its TokenType.
// The lexer consults this map when it finishes scanning an identifier; lookup is
// case-insensitive, so `select`, `Select` and `SELECT` are all the same keyword.
var keywords = map[string]TokenType{
	"SELECT":  SELECT,
	"CREATE":  CREATE,
	"TABLE":   TABLE,
	"WHERE":   WHERE,
	"ORDER":   ORDER,
	"BY":      BY,
	"ASC":     ASC,
	"DESC":    DESC,
	"FROM":    FROM,
	"AND":     AND,
	"OR":      OR,
	"NOT":     NOT,
	"TRUE":    TRUE,
	"FALSE":   FALSE,
	"PRIMARY": PRIMARY,
	"KEY":     KEY,
	"CHECK":   CHECK,
	"INT":     INT,
	"BOOL":    BOOL,
	"VARCHAR": VARCHAR,
	"NULL":    NULL,
}

// LookupIdent checks whether ident is a reserved keyword (ignoring case) and
// returns the corresponding TokenType. If ident is not a keyword, IDENT is
// returned.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[strings.ToUpper(ident)]; ok {
		return tt
	}
	return IDENT
}

// Token is a single lexical unit produced by the SQL lexer.
//
// Fields:
//   - Type    — the category of this token (see TokenType constants)
//   - Literal — the exact source text that was scanned
//   - Line    — 1-based source line number
//   - Col     — 1-based column of the first character of this token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
}

// String returns the literal text of the token, useful for error messages.
func (t Token) String() string {
	if t.Type == EOF {
		return "end of input"
	}
	return t.Literal
}
