package parser

import (
	"github.com/Nishant98750/rcv-lang/internal/lexer"
)

// Node is the common interface of all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Statement is the interface of statement nodes.
type Statement interface {
	Node
	statementNode()
}

// Expression is the interface of expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// Program is the ordered sequence of top-level statements of one source.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string { return "program" }

// ========== Statements ==========

// LetStmt declares a variable: let name = value;
type LetStmt struct {
	Token lexer.Token // the let token
	Name  lexer.Token // variable name
	Value Expression  // initializer, may be nil
}

func (l *LetStmt) TokenLiteral() string { return l.Token.Literal }
func (l *LetStmt) statementNode()       {}

// FuncStmt declares a function: func name() { ... }
// Declarations are parsed but there is no call mechanism; the
// interpreter treats them as no-ops.
type FuncStmt struct {
	Token lexer.Token // the func token
	Name  lexer.Token // function name
	Body  *BlockStmt
}

func (f *FuncStmt) TokenLiteral() string { return f.Token.Literal }
func (f *FuncStmt) statementNode()       {}

// IfStmt is a conditional: if (condition) statement else statement
type IfStmt struct {
	Token       lexer.Token // the if token
	Condition   Expression
	Consequence Statement
	Alternative Statement // may be nil
}

func (i *IfStmt) TokenLiteral() string { return i.Token.Literal }
func (i *IfStmt) statementNode()       {}

// ReturnStmt is a return statement: return value;
type ReturnStmt struct {
	Token lexer.Token // the return token
	Value Expression  // may be nil
}

func (r *ReturnStmt) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStmt) statementNode()       {}

// PrintStmt writes the value of an expression: print value;
type PrintStmt struct {
	Token lexer.Token // the print token
	Value Expression
}

func (p *PrintStmt) TokenLiteral() string { return p.Token.Literal }
func (p *PrintStmt) statementNode()       {}

// BlockStmt is a braced statement list. No new scope is introduced;
// the interpreter runs the contained statements in the flat environment.
type BlockStmt struct {
	Token      lexer.Token // the { token
	Statements []Statement
}

func (b *BlockStmt) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStmt) statementNode()       {}

// ExpressionStmt is an expression in statement position: value;
type ExpressionStmt struct {
	Token      lexer.Token // first token of the expression
	Expression Expression
}

func (e *ExpressionStmt) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStmt) statementNode()       {}

// ========== Expressions ==========

// Identifier is a variable reference.
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) expressionNode()      {}

// IntegerLiteral is an integer literal.
type IntegerLiteral struct {
	Token lexer.Token
	Value string
}

func (i *IntegerLiteral) TokenLiteral() string { return i.Token.Literal }
func (i *IntegerLiteral) expressionNode()      {}

// FloatLiteral is a float literal.
type FloatLiteral struct {
	Token lexer.Token
	Value string
}

func (f *FloatLiteral) TokenLiteral() string { return f.Token.Literal }
func (f *FloatLiteral) expressionNode()      {}

// StringLiteral is a string literal (quotes stripped).
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) expressionNode()      {}

// CharLiteral is a char literal (quotes stripped). The lexer does not
// enforce single-character width, so Value may span several characters.
type CharLiteral struct {
	Token lexer.Token
	Value string
}

func (c *CharLiteral) TokenLiteral() string { return c.Token.Literal }
func (c *CharLiteral) expressionNode()      {}

// BoolLiteral is true or false.
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BoolLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BoolLiteral) expressionNode()      {}

// NilLiteral is the nil literal.
type NilLiteral struct {
	Token lexer.Token
}

func (n *NilLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NilLiteral) expressionNode()      {}

// BinaryExpr is a binary operation.
type BinaryExpr struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) expressionNode()      {}

// UnaryExpr is a prefix operation.
type UnaryExpr struct {
	Token    lexer.Token // the operator token
	Operator string
	Operand  Expression
}

func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) expressionNode()      {}

// AssignExpr assigns to an existing variable: name = value
type AssignExpr struct {
	Token lexer.Token // the = token
	Name  lexer.Token // target variable name
	Value Expression
}

func (a *AssignExpr) TokenLiteral() string { return a.Token.Literal }
func (a *AssignExpr) expressionNode()      {}
