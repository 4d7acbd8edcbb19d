package lexer

import (
	"unicode"
)

// Lexer scans rcv source text into tokens.
type Lexer struct {
	input   string
	pos     int  // current position
	readPos int  // next read position
	ch      byte // current character
	line    int  // current line number
	column  int  // current column number
}

// New creates a lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// Tokenize scans the whole input into a token list.
// The list always ends with exactly one EOF token.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	if l.pos > len(l.input) {
		l.pos = len(l.input)
	}
	l.readPos++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar looks at the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken returns the next token in the input.
// Lexically invalid input yields ILLEGAL tokens; NextToken never fails.
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	tok.Line = l.line
	tok.Column = l.column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_EQ, Literal: "==", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_ASSIGN, l.ch)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_NOT_EQ, Literal: "!=", Line: tok.Line, Column: tok.Column}
		} else {
			// a bare ! is not part of the grammar
			tok = l.newToken(TOKEN_ILLEGAL, l.ch)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_LT_EQ, Literal: "<=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_LT, l.ch)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_GT_EQ, Literal: ">=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_GT, l.ch)
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = Token{Type: TOKEN_AND, Literal: "&&", Line: tok.Line, Column: tok.Column}
		} else {
			// & is only valid as &&
			tok = l.newToken(TOKEN_ILLEGAL, l.ch)
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = Token{Type: TOKEN_OR, Literal: "||", Line: tok.Line, Column: tok.Column}
		} else {
			// | is only valid as ||
			tok = l.newToken(TOKEN_ILLEGAL, l.ch)
		}
	case '/':
		if l.peekChar() == '/' {
			// line comments produce no token
			l.skipLineComment()
			return l.NextToken()
		}
		tok = l.newToken(TOKEN_SLASH, l.ch)
	case '+':
		tok = l.newToken(TOKEN_PLUS, l.ch)
	case '-':
		tok = l.newToken(TOKEN_MINUS, l.ch)
	case '*':
		tok = l.newToken(TOKEN_ASTERISK, l.ch)
	case '%':
		tok = l.newToken(TOKEN_PERCENT, l.ch)
	case '^':
		tok = l.newToken(TOKEN_CARET, l.ch)
	case ',':
		tok = l.newToken(TOKEN_COMMA, l.ch)
	case ';':
		tok = l.newToken(TOKEN_SEMICOLON, l.ch)
	case '(':
		tok = l.newToken(TOKEN_LPAREN, l.ch)
	case ')':
		tok = l.newToken(TOKEN_RPAREN, l.ch)
	case '{':
		tok = l.newToken(TOKEN_LBRACE, l.ch)
	case '}':
		tok = l.newToken(TOKEN_RBRACE, l.ch)
	case '"':
		literal, ok := l.readString('"')
		tok.Literal = literal
		if ok {
			tok.Type = TOKEN_STRING
		} else {
			tok.Type = TOKEN_ILLEGAL
		}
	case '\'':
		literal, ok := l.readString('\'')
		tok.Literal = literal
		if ok {
			tok.Type = TOKEN_CHAR
		} else {
			tok.Type = TOKEN_ILLEGAL
		}
	case 0:
		tok.Literal = ""
		tok.Type = TOKEN_EOF
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = LookupIdent(tok.Literal)
			return tok
		} else if isDigit(l.ch) {
			tok.Literal, tok.Type = l.readNumber()
			return tok
		}
		tok = l.newToken(TOKEN_ILLEGAL, l.ch)
	}

	l.readChar()
	return tok
}

// newToken creates a single-character token.
func (l *Lexer) newToken(tokenType TokenType, ch byte) Token {
	return Token{Type: tokenType, Literal: string(ch), Line: l.line, Column: l.column}
}

// skipWhitespace skips spaces, tabs, carriage returns and newlines.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipLineComment consumes a // comment through the end of the line.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber reads an integer or float literal. A fractional part is
// recognized only when the dot is immediately followed by a digit.
func (l *Lexer) readNumber() (string, TokenType) {
	pos := l.pos
	tokenType := TOKEN_INT

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		tokenType = TOKEN_FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[pos:l.pos], tokenType
}

// readString reads a quoted literal delimited by quote. Embedded newlines
// are allowed. When the input ends before the closing quote the literal
// spans the unterminated region and ok is false.
func (l *Lexer) readString(quote byte) (string, bool) {
	pos := l.pos
	l.readChar() // skip the opening quote
	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar() // skip the escaped character
		}
		l.readChar()
	}
	if l.ch == 0 {
		return l.input[pos:l.pos], false
	}
	return l.input[pos : l.pos+1], true
}

// isLetter reports whether ch can start or continue an identifier.
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit reports whether ch is a decimal digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
