package expr

import (
	"fmt"

	"github.com/yezholov/prattql/ast"
)

// SyntaxError is the only error kind the expression parser produces. It is
// raised in exactly two situations: a token with no prefix form where an
// operand was expected, and a missing closing parenthesis.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

// parser holds the parse state: one token of lookahead and the remaining
// token stream. Everything else the parse needs lives on the call stack of
// buildExpression, whose depth is bounded by the number of input tokens.
// A parser is created per Parse call and discarded afterwards; independent
// calls share nothing and may run concurrently.
type parser struct {
	lex *lexer
	tok token // current lookahead token
}

// Parse parses input and returns the root of the expression tree.
//
// Parsing stops as soon as one complete expression has been built: any tokens
// remaining after it are silently discarded, so "1 + 2 ) x" parses as
// "(1 + 2)". This is a known limitation of the grammar, kept as-is; callers
// who need the whole input consumed must check for themselves.
//
// Deeply nested input consumes call stack proportional to its nesting depth;
// there is no built-in depth limit, so callers parsing untrusted input should
// impose their own.
func Parse(input string) (ast.Expression, error) {
	p := &parser{lex: &lexer{input: input}}
	p.advance() // prime the lookahead
	return p.buildExpression(0)
}

// advance replaces the lookahead with the next token from the stream.
func (p *parser) advance() {
	p.tok = p.lex.next()
}

// buildExpression is the core of the Pratt technique. It consumes the current
// token as a prefix form to get a left operand, then keeps extending that
// operand with infix forms for as long as the lookahead binds strictly
// tighter than minPower.
//
// Binding power is the single mechanism behind both precedence and
// associativity: infix operators recurse at their own power, so a run of
// equal-precedence operators nests left-deep (1 - 2 - 3 is ((1 - 2) - 3)).
// When the lookahead's power is minPower or lower, the built expression is
// returned without consuming the lookahead — the enclosing call decides what
// to do with it.
func (p *parser) buildExpression(minPower int) (ast.Expression, error) {
	tok := p.tok
	p.advance()
	left, err := p.prefixExpression(tok)
	if err != nil {
		return nil, err
	}

	for minPower < p.tok.bindingPower() {
		tok = p.tok
		p.advance()
		left, err = p.infixExpression(tok, left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// prefixExpression builds the expression started by tok in prefix position.
// Numbers and identifiers stand for themselves; '+' '-' '!' parse their
// operand at prefixPower; '(' parses a full subexpression and requires the
// matching ')'. Any other token cannot begin an expression.
func (p *parser) prefixExpression(tok token) (ast.Expression, error) {
	switch tok.kind {
	case tokenNumber:
		return &ast.NumberLiteral{Value: tok.number}, nil

	case tokenIdent:
		return &ast.Identifier{Name: tok.name}, nil

	case tokenPlus:
		return p.unaryExpression(ast.OpPlus)
	case tokenMinus:
		return p.unaryExpression(ast.OpMinus)
	case tokenNot:
		return p.unaryExpression(ast.OpNot)

	case tokenLParen:
		inner, err := p.buildExpression(0)
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokenRParen {
			return nil, &SyntaxError{Msg: fmt.Sprintf("expected closing parenthesis, got %s", p.tok)}
		}
		p.advance() // consume ')'
		return inner, nil

	default:
		return nil, &SyntaxError{Msg: fmt.Sprintf("token %s has no prefix form", tok)}
	}
}

// unaryExpression parses the operand of a prefix operator and wraps it.
// Every prefix operator uses the same shared prefixPower, so consecutive
// prefix operators apply strictly in source order.
func (p *parser) unaryExpression(op ast.UnaryOp) (ast.Expression, error) {
	operand, err := p.buildExpression(prefixPower)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Op: op, Operand: operand}, nil
}

// infixExpression extends left with tok in infix position. tok has already
// been consumed and is known to have a non-zero binding power, so it is one
// of the binary operators or a postfix ASC/DESC.
func (p *parser) infixExpression(tok token, left ast.Expression) (ast.Expression, error) {
	// Postfix operators wrap the left operand and do not recurse: there is no
	// right-hand side to parse.
	switch tok.kind {
	case tokenAsc:
		return &ast.UnaryExpr{Op: ast.OpAsc, Operand: left}, nil
	case tokenDesc:
		return &ast.UnaryExpr{Op: ast.OpDesc, Operand: left}, nil
	}

	var op ast.BinaryOp
	switch tok.kind {
	case tokenPlus:
		op = ast.OpAdd
	case tokenMinus:
		op = ast.OpSub
	case tokenStar:
		op = ast.OpMul
	case tokenSlash:
		op = ast.OpDiv
	case tokenGreater:
		op = ast.OpGreater
	case tokenLess:
		op = ast.OpLess
	case tokenEquals:
		op = ast.OpEqual
	case tokenOr:
		op = ast.OpOr
	case tokenAnd:
		op = ast.OpAnd
	default:
		return nil, &SyntaxError{Msg: fmt.Sprintf("token %s has no infix form", tok)}
	}

	right, err := p.buildExpression(tok.bindingPower())
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Left: left, Op: op, Right: right}, nil
}
