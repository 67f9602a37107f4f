// Package parser implements the SQL statement parser.
//
// The parser reads a token stream from a [lexer.Lexer] and builds [ast.Statement]
// values for the two supported statement forms, SELECT and CREATE TABLE.
// Expression parsing uses Pratt (top-down operator precedence) so that
// precedence rules are encoded in a small table rather than a tangle of grammar
// rules.
//
// Usage:
//
//	stmt, err := parser.ParseStatement(`SELECT id FROM users WHERE age > 18;`)
//
// There is no error recovery: the first syntax error aborts the parse and is
// returned to the caller with the offending token's position. No partial tree
// is ever produced.
package parser

import (
	"fmt"
	"strconv"

	"github.com/yezholov/prattql/ast"
	"github.com/yezholov/prattql/lexer"
)

// ── Operator precedence ───────────────────────────────────────────────────────

// Precedence levels, ordered from lowest to highest.
// Each level must be strictly greater than the previous.
const (
	precNone       = iota // 0 — not an infix operator, stop parsing
	precOrdering          // 1 — ASC DESC (postfix, lowest so they wrap everything)
	precOr                // 2 — OR
	precAnd               // 3 — AND
	precComparison        // 4 — = != > >= < <=
	precSum               // 5 — + -
	precProduct           // 6 — * /
)

// tokenPrecedence maps a TokenType to its infix precedence level.
// Tokens not in this map have precNone.
var tokenPrecedence = map[ast.TokenType]int{
	ast.ASC:   precOrdering,
	ast.DESC:  precOrdering,
	ast.OR:    precOr,
	ast.AND:   precAnd,
	ast.EQ:    precComparison,
	ast.NEQ:   precComparison,
	ast.GT:    precComparison,
	ast.GTE:   precComparison,
	ast.LT:    precComparison,
	ast.LTE:   precComparison,
	ast.PLUS:  precSum,
	ast.MINUS: precSum,
	ast.STAR:  precProduct,
	ast.SLASH: precProduct,
}

// infixOps maps infix operator tokens to the [ast.BinaryOp] they produce.
var infixOps = map[ast.TokenType]ast.BinaryOp{
	ast.PLUS:  ast.OpAdd,
	ast.MINUS: ast.OpSub,
	ast.STAR:  ast.OpMul,
	ast.SLASH: ast.OpDiv,
	ast.EQ:    ast.OpEqual,
	ast.NEQ:   ast.OpNotEqual,
	ast.GT:    ast.OpGreater,
	ast.GTE:   ast.OpGreaterEqual,
	ast.LT:    ast.OpLess,
	ast.LTE:   ast.OpLessEqual,
	ast.AND:   ast.OpAnd,
	ast.OR:    ast.OpOr,
}

// ── Parser ────────────────────────────────────────────────────────────────────

// Parser holds all state needed to parse a single query string: the lexer
// cursor and one token of lookahead. Create one with [New]; a Parser is used
// for one parse and then discarded.
type Parser struct {
	l   *lexer.Lexer
	cur ast.Token // current token (the one being examined)
}

// New creates a Parser that reads tokens from l and primes the one-token
// lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	return p
}

// ParseStatement parses input as a single SQL statement.
// Any input after the terminating semicolon is ignored.
func ParseStatement(input string) (ast.Statement, error) {
	return New(lexer.New(input)).ParseStatement()
}

// ParseExpression parses input as a bare expression, outside any statement.
// Tokens after a complete expression are silently ignored, matching the
// behaviour of the expression core everywhere it is embedded.
func ParseExpression(input string) (ast.Expression, error) {
	return New(lexer.New(input)).parseExpression(precNone)
}

// ParseStatement parses the statement the parser was created over.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	switch p.cur.Type {
	case ast.SELECT:
		return p.parseSelect()
	case ast.CREATE:
		return p.parseCreateTable()
	case ast.EOF:
		return nil, fmt.Errorf("empty input")
	default:
		return nil, p.errorf("expected SELECT or CREATE, got %q", p.cur)
	}
}

// ── Internal token management ─────────────────────────────────────────────────

// advance consumes one token from the lexer.
func (p *Parser) advance() {
	p.cur = p.l.NextToken()
}

// expect checks that the current token matches tt and consumes it.
// On mismatch it returns an error naming what the parser was looking for.
func (p *Parser) expect(tt ast.TokenType, what string) error {
	if p.cur.Type != tt {
		return p.errorf("expected %s, got %q", what, p.cur)
	}
	p.advance()
	return nil
}

// precedence returns the infix precedence of the current token, or precNone
// when the token cannot continue an expression.
func (p *Parser) precedence() int {
	if prec, ok := tokenPrecedence[p.cur.Type]; ok {
		return prec
	}
	return precNone
}

// errorf builds a parse error annotated with the current token's position.
func (p *Parser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s (line %d col %d)", msg, p.cur.Line, p.cur.Col)
}

// ── Expression parsing (Pratt) ────────────────────────────────────────────────

// parseExpression is the Pratt parser core.
// minPrec is the minimum binding power of operators the caller will accept:
// the loop continues only while the current token binds strictly tighter, and
// binary operators recurse at their own precedence, which makes every run of
// equal-precedence operators nest left-deep (left-associative).
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for minPrec < p.precedence() {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parsePrefix parses the token in prefix position: a literal, an identifier,
// a unary operator, or a parenthesised group.
func (p *Parser) parsePrefix() (ast.Expression, error) {
	switch p.cur.Type {
	case ast.NUMBER:
		val, err := strconv.ParseUint(p.cur.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf("number %q out of range", p.cur.Literal)
		}
		p.advance()
		return &ast.NumberLiteral{Value: val}, nil

	case ast.STRING:
		lit := &ast.StringLiteral{Value: p.cur.Literal}
		p.advance()
		return lit, nil

	case ast.IDENT:
		id := &ast.Identifier{Name: p.cur.Literal}
		p.advance()
		return id, nil

	case ast.TRUE:
		p.advance()
		return &ast.BoolLiteral{Value: true}, nil

	case ast.FALSE:
		p.advance()
		return &ast.BoolLiteral{Value: false}, nil

	case ast.NOT:
		return p.parseUnary(ast.OpNot)
	case ast.PLUS:
		return p.parseUnary(ast.OpPlus)
	case ast.MINUS:
		return p.parseUnary(ast.OpMinus)

	case ast.LPAREN:
		p.advance() // consume '('
		expr, err := p.parseExpression(precNone)
		if err != nil {
			return nil, err
		}
		if err := p.expect(ast.RPAREN, "closing parenthesis"); err != nil {
			return nil, err
		}
		return expr, nil

	case ast.ILLEGAL:
		return nil, p.errorf("unrecognised input %q", p.cur.Literal)

	default:
		return nil, p.errorf("unexpected token %q in prefix position", p.cur)
	}
}

// parseUnary parses a prefix unary operator. The operand is parsed at
// precProduct, so a unary operator binds tighter than any binary operator and
// swallows exactly the next tightly-bound subexpression.
func (p *Parser) parseUnary(op ast.UnaryOp) (ast.Expression, error) {
	p.advance() // consume the operator
	operand, err := p.parseExpression(precProduct)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Op: op, Operand: operand}, nil
}

// parseInfix parses the token in infix position, given the already-parsed
// left-hand side. ASC and DESC take no right operand: they wrap left and
// return immediately.
func (p *Parser) parseInfix(left ast.Expression) (ast.Expression, error) {
	switch p.cur.Type {
	case ast.ASC:
		p.advance()
		return &ast.UnaryExpr{Op: ast.OpAsc, Operand: left}, nil
	case ast.DESC:
		p.advance()
		return &ast.UnaryExpr{Op: ast.OpDesc, Operand: left}, nil
	}

	op, ok := infixOps[p.cur.Type]
	if !ok {
		return nil, p.errorf("unexpected token %q in infix position", p.cur)
	}
	prec := p.precedence()
	p.advance() // consume the operator

	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Left: left, Op: op, Right: right}, nil
}

// ── Statement parsing ─────────────────────────────────────────────────────────

// parseSelect parses:
//
//	SELECT columns FROM table [WHERE expr] [ORDER BY expr, ...] ;
//
// The column list is either a single '*' wildcard or one or more expressions
// separated by commas.
func (p *Parser) parseSelect() (ast.Statement, error) {
	p.advance() // consume SELECT

	var columns []ast.Expression
	if p.cur.Type == ast.STAR {
		p.advance()
		columns = append(columns, &ast.Wildcard{})
	} else {
		col, err := p.parseExpression(precNone)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)

		for p.cur.Type == ast.COMMA {
			p.advance() // consume ','
			col, err := p.parseExpression(precNone)
			if err != nil {
				return nil, err
			}
			columns = append(columns, col)
		}
	}

	if err := p.expect(ast.FROM, "FROM clause"); err != nil {
		return nil, err
	}

	if p.cur.Type != ast.IDENT {
		return nil, p.errorf("expected table name after FROM, got %q", p.cur)
	}
	from := p.cur.Literal
	p.advance()

	var where ast.Expression
	if p.cur.Type == ast.WHERE {
		p.advance() // consume WHERE
		expr, err := p.parseExpression(precNone)
		if err != nil {
			return nil, err
		}
		where = expr
	}

	var orderBy []ast.Expression
	if p.cur.Type == ast.ORDER {
		p.advance() // consume ORDER
		if err := p.expect(ast.BY, "BY after ORDER"); err != nil {
			return nil, err
		}

		expr, err := p.parseExpression(precNone)
		if err != nil {
			return nil, err
		}
		orderBy = append(orderBy, expr)

		for p.cur.Type == ast.COMMA {
			p.advance() // consume ','
			expr, err := p.parseExpression(precNone)
			if err != nil {
				return nil, err
			}
			orderBy = append(orderBy, expr)
		}
	}

	if err := p.expect(ast.SEMICOLON, "semicolon at the end of the SELECT statement"); err != nil {
		return nil, err
	}

	return &ast.SelectStmt{
		Columns: columns,
		From:    from,
		Where:   where,
		OrderBy: orderBy,
	}, nil
}

// parseCreateTable parses:
//
//	CREATE TABLE name ( column-definition, ... ) ;
func (p *Parser) parseCreateTable() (ast.Statement, error) {
	p.advance() // consume CREATE

	if err := p.expect(ast.TABLE, "TABLE after CREATE"); err != nil {
		return nil, err
	}

	if p.cur.Type != ast.IDENT {
		return nil, p.errorf("expected table name after CREATE TABLE, got %q", p.cur)
	}
	name := p.cur.Literal
	p.advance()

	if err := p.expect(ast.LPAREN, "( after table name"); err != nil {
		return nil, err
	}

	var columns []ast.ColumnDef
	col, err := p.parseColumnDef()
	if err != nil {
		return nil, err
	}
	columns = append(columns, col)

	for p.cur.Type == ast.COMMA {
		p.advance() // consume ','
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	if err := p.expect(ast.RPAREN, ") after column definitions"); err != nil {
		return nil, err
	}
	if err := p.expect(ast.SEMICOLON, "semicolon at the end of the CREATE TABLE statement"); err != nil {
		return nil, err
	}

	return &ast.CreateTableStmt{Name: name, Columns: columns}, nil
}

// parseColumnDef parses one column definition: name TYPE constraint...
// The definition ends at the next ',' or ')'.
func (p *Parser) parseColumnDef() (ast.ColumnDef, error) {
	var def ast.ColumnDef

	if p.cur.Type != ast.IDENT {
		return def, p.errorf("expected column name, got %q", p.cur)
	}
	def.Name = p.cur.Literal
	p.advance()

	typ, err := p.parseColumnType()
	if err != nil {
		return def, err
	}
	def.Type = typ

	for {
		switch p.cur.Type {
		case ast.PRIMARY:
			p.advance()
			if err := p.expect(ast.KEY, "KEY after PRIMARY"); err != nil {
				return def, err
			}
			def.Constraints = append(def.Constraints, ast.Constraint{Kind: ast.PrimaryKey})

		case ast.NOT:
			p.advance()
			if err := p.expect(ast.NULL, "NULL after NOT"); err != nil {
				return def, err
			}
			def.Constraints = append(def.Constraints, ast.Constraint{Kind: ast.NotNull})

		case ast.CHECK:
			p.advance()
			if err := p.expect(ast.LPAREN, "( after CHECK"); err != nil {
				return def, err
			}
			expr, err := p.parseExpression(precNone)
			if err != nil {
				return def, err
			}
			if err := p.expect(ast.RPAREN, ") after CHECK expression"); err != nil {
				return def, err
			}
			def.Constraints = append(def.Constraints, ast.Constraint{Kind: ast.Check, Expr: expr})

		case ast.COMMA, ast.RPAREN:
			// End of this column definition.
			return def, nil

		case ast.EOF:
			return def, p.errorf("unexpected end of input in column definition")

		default:
			return def, p.errorf("unexpected token %q in column definition", p.cur)
		}
	}
}

// parseColumnType parses a column type: INT, BOOL, or VARCHAR(n).
func (p *Parser) parseColumnType() (ast.ColumnType, error) {
	switch p.cur.Type {
	case ast.INT:
		p.advance()
		return ast.ColumnType{Kind: ast.TypeInt}, nil

	case ast.BOOL:
		p.advance()
		return ast.ColumnType{Kind: ast.TypeBool}, nil

	case ast.VARCHAR:
		p.advance()
		if err := p.expect(ast.LPAREN, "( after VARCHAR"); err != nil {
			return ast.ColumnType{}, err
		}
		if p.cur.Type != ast.NUMBER {
			return ast.ColumnType{}, p.errorf("expected number for VARCHAR length, got %q", p.cur)
		}
		length, err := strconv.Atoi(p.cur.Literal)
		if err != nil {
			return ast.ColumnType{}, p.errorf("VARCHAR length %q out of range", p.cur.Literal)
		}
		p.advance()
		if err := p.expect(ast.RPAREN, ") after VARCHAR length"); err != nil {
			return ast.ColumnType{}, err
		}
		return ast.ColumnType{Kind: ast.TypeVarchar, Length: length}, nil

	default:
		return ast.ColumnType{}, p.errorf("expected data type, got %q", p.cur)
	}
}
