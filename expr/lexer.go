package expr

import "strconv"

// lexer is a forward-only cursor over the input: each call to next consumes
// one token and there is no way to rewind. After the input is exhausted it
// returns a tokenEOF on every subsequent call.
//
// The scan cannot fail. Whitespace is skipped, a maximal run of digits becomes
// a number, each recognised operator character becomes its token, and any
// other single character becomes a one-character identifier. There are no
// multi-character identifiers and no multi-character operators.
type lexer struct {
	input string
	pos   int
}

// next returns the next token from the input.
func (l *lexer) next() token {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokenEOF}
	}

	ch := l.input[l.pos]
	if isDigit(ch) {
		return l.readNumber()
	}

	l.pos++
	switch ch {
	case '+':
		return token{kind: tokenPlus}
	case '-':
		return token{kind: tokenMinus}
	case '*':
		return token{kind: tokenStar}
	case '/':
		return token{kind: tokenSlash}
	case '>':
		return token{kind: tokenGreater}
	case '<':
		return token{kind: tokenLess}
	case '=':
		return token{kind: tokenEquals}
	case '|':
		return token{kind: tokenOr}
	case '&':
		return token{kind: tokenAnd}
	case '!':
		return token{kind: tokenNot}
	case 'A':
		return token{kind: tokenAsc}
	case 'D':
		return token{kind: tokenDesc}
	case '(':
		return token{kind: tokenLParen}
	case ')':
		return token{kind: tokenRParen}
	}

	// Everything else is a one-character identifier. Note that 'A' and 'D'
	// never get here: they are always the ASC/DESC operators, so they can
	// never be used as identifiers.
	return token{kind: tokenIdent, name: string(ch)}
}

// readNumber scans a maximal run of decimal digits starting at the current
// position.
func (l *lexer) readNumber() token {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}

	// The literal is all digits, so the only possible error is overflow, in
	// which case ParseUint returns the clamped maximum.
	value, _ := strconv.ParseUint(l.input[start:l.pos], 10, 64)
	return token{kind: tokenNumber, number: value}
}

// isSpace reports whether b is a whitespace character.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// isDigit reports whether b is an ASCII decimal digit (0–9).
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
