// Package lexer implements the SQL lexer (tokeniser).
//
// The lexer converts a query string into a flat stream of [ast.Token] values.
// Call [New] to create a lexer and then call [Lexer.NextToken] repeatedly until
// you receive a token with Type == [ast.EOF].
//
// Design notes:
//   - Single-pass, character-by-character scanning using a read position cursor.
//   - No global state; every [Lexer] is independent.
//   - Line and column numbers are tracked for every token (1-based).
//   - Identifiers are scanned first and then classified as keywords via
//     [ast.LookupIdent]; keyword matching is case-insensitive.
//   - The two-character operators (>=, <=, !=) require one character of
//     look-ahead and are handled by peekChar. A lone '!' is ILLEGAL.
//   - String literals accept either quote character, but the closing quote must
//     match the opening one; a mismatched or missing closing quote produces an
//     ILLEGAL token carrying whatever text was scanned.
//
// The lexer never returns an error: everything it cannot recognise becomes an
// ILLEGAL token, and the parser turns ILLEGAL tokens into syntax errors.
package lexer

import (
	"github.com/yezholov/prattql/ast"
)

// Lexer holds all state required to tokenise a single query string.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input   string // the full query text
	pos     int    // current read position (index of ch)
	readPos int    // next read position (pos + 1)
	ch      byte   // current character under examination

	line int // current 1-based line number
	col  int // 1-based column of ch
}

// New creates a [Lexer] that tokenises the given input string.
// The lexer is positioned at the first character; call [Lexer.NextToken]
// immediately to begin scanning.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar() // prime: set l.ch = input[0]
	return l
}

// NextToken returns the next token from the input.
//
// Whitespace (spaces, tabs, carriage returns, newlines) is skipped before each
// token. When the input is exhausted, NextToken returns a token with
// Type == [ast.EOF] on every subsequent call.
func (l *Lexer) NextToken() ast.Token {
	l.skipWhitespace()

	var tok ast.Token

	switch l.ch {
	// ── End of input ────────────────────────────────────────────────────────
	case 0:
		tok = l.makeToken(ast.EOF, "")

	// ── String literals ─────────────────────────────────────────────────────
	case '\'', '"':
		return l.readString(l.ch)

	// ── Single-character operators and delimiters ───────────────────────────
	case '(':
		tok = l.makeToken(ast.LPAREN, "(")
	case ')':
		tok = l.makeToken(ast.RPAREN, ")")
	case ',':
		tok = l.makeToken(ast.COMMA, ",")
	case ';':
		tok = l.makeToken(ast.SEMICOLON, ";")
	case '*':
		tok = l.makeToken(ast.STAR, "*")
	case '/':
		tok = l.makeToken(ast.SLASH, "/")
	case '+':
		tok = l.makeToken(ast.PLUS, "+")
	case '-':
		tok = l.makeToken(ast.MINUS, "-")
	case '=':
		tok = l.makeToken(ast.EQ, "=")

	// ── Operators that may be one or two characters ─────────────────────────
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(ast.GTE, ">=")
		} else {
			tok = l.makeToken(ast.GT, ">")
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(ast.LTE, "<=")
		} else {
			tok = l.makeToken(ast.LT, "<")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(ast.NEQ, "!=")
		} else {
			// '!' on its own is not an operator in this grammar.
			tok = l.makeToken(ast.ILLEGAL, "!")
		}

	// ── Identifiers, keywords and numbers ───────────────────────────────────
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		} else if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = l.makeToken(ast.ILLEGAL, string(l.ch))
	}

	l.readChar() // advance past the last character of this token
	return tok
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// readChar advances the lexer by one character.
// When the input is exhausted l.ch is set to 0 (the null byte sentinel for EOF).
// Line and column counters are updated here; col is 1-based.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	// Track position. Newlines bump the line counter and reset the column.
	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without consuming it.
// Returns 0 when the end of input has been reached.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// makeToken constructs a token at the current source position with the given
// type and literal string.
// It does NOT advance the cursor — the caller is responsible for calling
// readChar after constructing single-character tokens.
func (l *Lexer) makeToken(tt ast.TokenType, literal string) ast.Token {
	return ast.Token{Type: tt, Literal: literal, Line: l.line, Col: l.col}
}

// skipWhitespace advances past all whitespace characters before the next token.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// readIdentifier scans an identifier or keyword starting at the current
// position. It returns the token immediately (without the trailing readChar in
// NextToken) because the cursor is already positioned on the first
// non-identifier character.
func (l *Lexer) readIdentifier() ast.Token {
	startCol := l.col
	startLine := l.line
	start := l.pos

	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}

	literal := l.input[start:l.pos]
	tt := ast.LookupIdent(literal)
	return ast.Token{Type: tt, Literal: literal, Line: startLine, Col: startCol}
}

// readNumber scans an unsigned decimal integer literal starting at the current
// position. Like readIdentifier, this returns early and does NOT call readChar
// at the end — the cursor is already on the first non-digit character.
func (l *Lexer) readNumber() ast.Token {
	startCol := l.col
	startLine := l.line
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	literal := l.input[start:l.pos]
	return ast.Token{Type: ast.NUMBER, Literal: literal, Line: startLine, Col: startCol}
}

// readString scans a quoted string literal. The opening quote has already been
// set as l.ch when this method is called; quote is that opening character.
//
// Both ' and " delimit strings, but a string must close with the same quote it
// opened with: encountering the other quote character inside the string is a
// mismatch and produces an ILLEGAL token. There are no escape sequences.
//
// If the string is not closed before EOF, an ILLEGAL token is returned
// containing whatever text was scanned up to that point.
func (l *Lexer) readString(quote byte) ast.Token {
	startCol := l.col
	startLine := l.line

	l.readChar() // skip opening quote

	var buf []byte
	for {
		switch l.ch {
		case quote:
			// Matching closing quote found — build the token.
			tok := ast.Token{
				Type:    ast.STRING,
				Literal: string(buf),
				Line:    startLine,
				Col:     startCol,
			}
			l.readChar() // consume closing quote
			return tok

		case '\'', '"':
			// The other quote character: mismatched quotes.
			l.readChar() // consume it so the next token does not double the error
			return ast.Token{
				Type:    ast.ILLEGAL,
				Literal: string(buf),
				Line:    startLine,
				Col:     startCol,
			}

		case 0:
			// Unterminated string — return ILLEGAL with what we have.
			return ast.Token{
				Type:    ast.ILLEGAL,
				Literal: string(buf),
				Line:    startLine,
				Col:     startCol,
			}

		default:
			buf = append(buf, l.ch)
			l.readChar()
		}
	}
}

// isLetter reports whether b is a valid identifier-start or identifier-continue
// character. Identifiers follow the pattern [a-zA-Z_][a-zA-Z0-9_]*.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		b == '_'
}

// isDigit reports whether b is an ASCII decimal digit (0–9).
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
