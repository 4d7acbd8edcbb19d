package parser

import (
	"github.com/Nishant98750/rcv-lang/internal/i18n"
	"github.com/Nishant98750/rcv-lang/internal/lexer"
)

// Parser builds a Program from a token list with a single forward cursor.
// Syntax errors are collected on an error list; on every error the current
// statement is discarded and the cursor synchronizes to the next statement
// boundary, so one pass reports all errors in the input.
type Parser struct {
	tokens []lexer.Token
	pos    int
	errors []string
}

// syntaxError is a localized parse fault tied to the offending token.
type syntaxError struct {
	msg string
}

func (e *syntaxError) Error() string { return e.msg }

// New creates a parser over a token list. The list is expected to end
// with an EOF token, as produced by lexer.Tokenize.
func New(tokens []lexer.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TOKEN_EOF {
		tokens = append(tokens, lexer.Token{Type: lexer.TOKEN_EOF, Line: 1})
	}
	return &Parser{tokens: tokens}
}

// Errors returns the syntax errors collected while parsing.
func (p *Parser) Errors() []string {
	return p.errors
}

// ParseProgram parses the whole token list. It always consumes up to EOF;
// statements that failed to parse are dropped from the result.
func (p *Parser) ParseProgram() *Program {
	program := &Program{}
	for !p.atEnd() {
		stmt, err := p.parseDeclaration()
		if err != nil {
			p.errors = append(p.errors, err.Error())
			p.synchronize()
			continue
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program
}

// ========== cursor helpers ==========

// curToken returns the token under the cursor.
func (p *Parser) curToken() lexer.Token {
	return p.tokens[p.pos]
}

// prevToken returns the most recently consumed token.
func (p *Parser) prevToken() lexer.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

// advance consumes the current token. The cursor never moves past EOF.
func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.prevToken()
}

// atEnd reports whether the cursor reached EOF.
func (p *Parser) atEnd() bool {
	return p.curToken().Type == lexer.TOKEN_EOF
}

// curTokenIs checks the current token type.
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken().Type == t
}

// nextTokenIs checks the token one past the cursor.
func (p *Parser) nextTokenIs(t lexer.TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.tokens[p.pos+1].Type == t
}

// match consumes the current token if its type is in the given set.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.curTokenIs(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes a token of the given type or fails.
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, error) {
	if p.curTokenIs(t) {
		return p.advance(), nil
	}
	cur := p.curToken()
	return lexer.Token{}, &syntaxError{msg: i18n.T(i18n.ErrExpectedToken,
		cur.Line, cur.Column,
		lexer.TokenTypeName(t), lexer.TokenTypeName(cur.Type))}
}

// errorAt builds a parse fault against a specific token.
func (p *Parser) errorAt(tok lexer.Token, msg string) error {
	if tok.Type == lexer.TOKEN_EOF {
		return &syntaxError{msg: i18n.T(i18n.ErrSyntaxAtEnd, tok.Line, msg)}
	}
	return &syntaxError{msg: i18n.T(i18n.ErrSyntax, tok.Line, tok.Column, tok.Literal, msg)}
}

// synchronize discards tokens until a statement boundary: either a ';'
// was just consumed or the next token starts a new statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.prevToken().Type == lexer.TOKEN_SEMICOLON {
			return
		}
		switch p.curToken().Type {
		case lexer.TOKEN_FUNC, lexer.TOKEN_IF, lexer.TOKEN_RETURN,
			lexer.TOKEN_LET, lexer.TOKEN_FOR, lexer.TOKEN_WHILE, lexer.TOKEN_PRINT:
			return
		}
		p.advance()
	}
}

// ========== statements ==========

// parseDeclaration parses a function or variable declaration, or falls
// through to a plain statement. One token of lookahead distinguishes a
// 'func name' declaration from an expression starting with 'func'.
func (p *Parser) parseDeclaration() (Statement, error) {
	switch {
	case p.curTokenIs(lexer.TOKEN_FUNC) && p.nextTokenIs(lexer.TOKEN_IDENT):
		return p.parseFuncDecl()
	case p.curTokenIs(lexer.TOKEN_LET):
		return p.parseLetStmt()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseStatement() (Statement, error) {
	switch p.curToken().Type {
	case lexer.TOKEN_IF:
		return p.parseIfStmt()
	case lexer.TOKEN_RETURN:
		return p.parseReturnStmt()
	case lexer.TOKEN_PRINT:
		return p.parsePrintStmt()
	case lexer.TOKEN_LBRACE:
		return p.parseBlockStmt()
	default:
		return p.parseExpressionStmt()
	}
}

// parseFuncDecl parses: func name ( ) block
// Parameters are not part of the grammar.
func (p *Parser) parseFuncDecl() (Statement, error) {
	funcTok := p.advance()
	name, err := p.expect(lexer.TOKEN_IDENT)
	if err != nil {
		return nil, p.errorAt(p.curToken(), i18n.T(i18n.MsgExpectedFunctionName))
	}
	if _, err := p.expect(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlockStmt()
	if err != nil {
		return nil, err
	}
	return &FuncStmt{Token: funcTok, Name: name, Body: body.(*BlockStmt)}, nil
}

// parseLetStmt parses: let name (= expression)? ;
func (p *Parser) parseLetStmt() (Statement, error) {
	letTok := p.advance()
	if !p.curTokenIs(lexer.TOKEN_IDENT) {
		return nil, p.errorAt(p.curToken(), i18n.T(i18n.MsgExpectedVariableName))
	}
	name := p.advance()

	var value Expression
	if p.match(lexer.TOKEN_ASSIGN) {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}
	return &LetStmt{Token: letTok, Name: name, Value: value}, nil
}

// parseIfStmt parses: if ( expression ) statement (else statement)?
func (p *Parser) parseIfStmt() (Statement, error) {
	ifTok := p.advance()
	if _, err := p.expect(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}
	consequence, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var alternative Statement
	if p.match(lexer.TOKEN_ELSE) {
		alternative, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Token: ifTok, Condition: condition, Consequence: consequence, Alternative: alternative}, nil
}

// parseReturnStmt parses: return expression? ;
func (p *Parser) parseReturnStmt() (Statement, error) {
	returnTok := p.advance()
	var value Expression
	if !p.curTokenIs(lexer.TOKEN_SEMICOLON) {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}
	return &ReturnStmt{Token: returnTok, Value: value}, nil
}

// parsePrintStmt parses: print expression ;
func (p *Parser) parsePrintStmt() (Statement, error) {
	printTok := p.advance()
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}
	return &PrintStmt{Token: printTok, Value: value}, nil
}

// parseBlockStmt parses: { declaration* }
// Errors inside the block are recovered locally so one block can report
// several of them; the failed statements are dropped.
func (p *Parser) parseBlockStmt() (Statement, error) {
	lbrace, err := p.expect(lexer.TOKEN_LBRACE)
	if err != nil {
		return nil, err
	}
	block := &BlockStmt{Token: lbrace}
	for !p.curTokenIs(lexer.TOKEN_RBRACE) && !p.atEnd() {
		stmt, err := p.parseDeclaration()
		if err != nil {
			p.errors = append(p.errors, err.Error())
			p.synchronize()
			continue
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(lexer.TOKEN_RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

// parseExpressionStmt parses: expression ;
func (p *Parser) parseExpressionStmt() (Statement, error) {
	first := p.curToken()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Token: first, Expression: expr}, nil
}

// ========== expressions ==========

func (p *Parser) parseExpression() (Expression, error) {
	return p.parseAssignment()
}

// parseAssignment parses right-associative assignment. The left-hand
// side must reduce to an identifier; anything else is a syntax error
// reported against the '=' token.
func (p *Parser) parseAssignment() (Expression, error) {
	expr, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	if p.match(lexer.TOKEN_ASSIGN) {
		assignTok := p.prevToken()
		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		ident, ok := expr.(*Identifier)
		if !ok {
			return nil, p.errorAt(assignTok, i18n.T(i18n.MsgInvalidAssignTarget))
		}
		return &AssignExpr{Token: assignTok, Name: ident.Token, Value: value}, nil
	}
	return expr, nil
}

func (p *Parser) parseEquality() (Expression, error) {
	expr, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_EQ, lexer.TOKEN_NOT_EQ) {
		op := p.prevToken()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Token: op, Left: expr, Operator: op.Literal, Right: right}
	}
	return expr, nil
}

func (p *Parser) parseComparison() (Expression, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_LT, lexer.TOKEN_GT, lexer.TOKEN_LT_EQ, lexer.TOKEN_GT_EQ) {
		op := p.prevToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Token: op, Left: expr, Operator: op.Literal, Right: right}
	}
	return expr, nil
}

func (p *Parser) parseTerm() (Expression, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_PLUS, lexer.TOKEN_MINUS) {
		op := p.prevToken()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Token: op, Left: expr, Operator: op.Literal, Right: right}
	}
	return expr, nil
}

func (p *Parser) parseFactor() (Expression, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_ASTERISK, lexer.TOKEN_SLASH, lexer.TOKEN_PERCENT) {
		op := p.prevToken()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Token: op, Left: expr, Operator: op.Literal, Right: right}
	}
	return expr, nil
}

func (p *Parser) parseUnary() (Expression, error) {
	if p.match(lexer.TOKEN_MINUS) {
		op := p.prevToken()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Token: op, Operator: op.Literal, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Expression, error) {
	tok := p.curToken()
	switch tok.Type {
	case lexer.TOKEN_INT:
		p.advance()
		return &IntegerLiteral{Token: tok, Value: tok.Literal}, nil
	case lexer.TOKEN_FLOAT:
		p.advance()
		return &FloatLiteral{Token: tok, Value: tok.Literal}, nil
	case lexer.TOKEN_STRING:
		p.advance()
		return &StringLiteral{Token: tok, Value: unquote(tok.Literal)}, nil
	case lexer.TOKEN_CHAR:
		p.advance()
		return &CharLiteral{Token: tok, Value: unquote(tok.Literal)}, nil
	case lexer.TOKEN_TRUE:
		p.advance()
		return &BoolLiteral{Token: tok, Value: true}, nil
	case lexer.TOKEN_FALSE:
		p.advance()
		return &BoolLiteral{Token: tok, Value: false}, nil
	case lexer.TOKEN_NIL:
		p.advance()
		return &NilLiteral{Token: tok}, nil
	case lexer.TOKEN_IDENT:
		p.advance()
		return &Identifier{Token: tok, Value: tok.Literal}, nil
	case lexer.TOKEN_LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TOKEN_RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.errorAt(tok, i18n.T(i18n.MsgExpectedExpression))
	}
}

// unquote strips the surrounding quotes of a string or char literal.
func unquote(literal string) string {
	if len(literal) >= 2 {
		return literal[1 : len(literal)-1]
	}
	return literal
}
