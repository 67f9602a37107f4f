// Package expr implements the compact Pratt expression grammar.
//
// The grammar is deliberately tiny — one character per operator and per
// identifier — so the whole of top-down operator precedence parsing fits in a
// single token table and one recursive loop:
//
//	number      prefix            integer literal
//	any letter  prefix            one-character identifier
//	+ -         prefix and infix  unary sign / addition, subtraction (25)
//	* /         infix             multiplication, division (30)
//	> < =       infix             comparison (20)
//	|           infix             OR (15)
//	&           infix             AND (10)
//	!           prefix            NOT
//	A D         postfix           ASC, DESC ordering (5)
//	( )         grouping
//
// Parsing an input produces an [ast.Expression]; the spellings on the tree are
// the SQL ones (AND, OR, NOT, ASC, DESC), so `!i & i D` renders as
// `(DESC ((NOT i) AND i))`.
//
//	expr, err := expr.Parse("i > 15 * (44 - i / 7) | i < 0")
//	// expr.String() == "((i > (15 * (44 - (i / 7)))) OR (i < 0))"
package expr

import "strconv"

// tokenKind identifies the category of a scanned token. The set is closed and
// every behaviour of a token — whether it may start an expression, whether it
// may continue one, and how tightly it binds — is selected by exhaustive
// switching on this kind.
type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenIdent
	tokenPlus    // '+'
	tokenMinus   // '-'
	tokenStar    // '*'
	tokenSlash   // '/'
	tokenGreater // '>'
	tokenLess    // '<'
	tokenEquals  // '='
	tokenOr      // '|'
	tokenAnd     // '&'
	tokenNot     // '!'
	tokenAsc     // 'A'
	tokenDesc    // 'D'
	tokenLParen  // '('
	tokenRParen  // ')'
)

// prefixPower is the binding power used for the operand of every prefix
// operator. It is a single shared constant, higher than every infix power, so
// a prefix operator always swallows exactly the next tightly-bound
// subexpression and adjacent prefix operators apply in left-to-right order.
const prefixPower = 100

// token is a single lexical unit. number is set for tokenNumber, name for
// tokenIdent; both are zero otherwise.
type token struct {
	kind   tokenKind
	number uint64
	name   string
}

// bindingPower returns the token's infix precedence: how tightly it binds to a
// left operand. Higher binds tighter. Tokens that can never continue an
// expression — ')' and end-of-input among them — have power 0, which is how
// the parsing loop knows to stop in front of them.
func (t token) bindingPower() int {
	switch t.kind {
	case tokenStar, tokenSlash:
		return 30
	case tokenPlus, tokenMinus:
		return 25
	case tokenGreater, tokenLess, tokenEquals:
		return 20
	case tokenOr:
		return 15
	case tokenAnd:
		return 10
	case tokenAsc, tokenDesc:
		return 5
	}
	return 0
}

// String returns the source spelling of the token, used in error messages.
func (t token) String() string {
	switch t.kind {
	case tokenEOF:
		return "end of input"
	case tokenNumber:
		return strconv.FormatUint(t.number, 10)
	case tokenIdent:
		return t.name
	case tokenPlus:
		return "+"
	case tokenMinus:
		return "-"
	case tokenStar:
		return "*"
	case tokenSlash:
		return "/"
	case tokenGreater:
		return ">"
	case tokenLess:
		return "<"
	case tokenEquals:
		return "="
	case tokenOr:
		return "|"
	case tokenAnd:
		return "&"
	case tokenNot:
		return "!"
	case tokenAsc:
		return "A"
	case tokenDesc:
		return "D"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	}
	return "?"
}
