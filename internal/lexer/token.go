package lexer

// TokenType identifies the kind of a token.
type TokenType int

const (
	// Special tokens
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_EOF

	// Identifiers and literals
	TOKEN_IDENT  // identifier
	TOKEN_INT    // integer literal
	TOKEN_FLOAT  // float literal
	TOKEN_STRING // string literal
	TOKEN_CHAR   // char literal

	// Operators
	TOKEN_ASSIGN   // =
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_ASTERISK // *
	TOKEN_SLASH    // /
	TOKEN_PERCENT  // %
	TOKEN_CARET    // ^

	TOKEN_EQ     // ==
	TOKEN_NOT_EQ // !=
	TOKEN_LT     // <
	TOKEN_GT     // >
	TOKEN_LT_EQ  // <=
	TOKEN_GT_EQ  // >=

	TOKEN_AND // &&
	TOKEN_OR  // ||

	// Delimiters
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;

	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
	TOKEN_LBRACE // {
	TOKEN_RBRACE // }

	// Keywords
	TOKEN_FUNC   // func
	TOKEN_RETURN // return
	TOKEN_IF     // if
	TOKEN_ELSE   // else
	TOKEN_LET    // let
	TOKEN_WHILE  // while
	TOKEN_FOR    // for
	TOKEN_PRINT  // print

	// Type name keywords
	TOKEN_TYPE_INT    // int
	TOKEN_TYPE_STRING // string
	TOKEN_TYPE_CHAR   // char
	TOKEN_TYPE_BOOL   // bool

	TOKEN_TRUE  // true
	TOKEN_FALSE // false
	TOKEN_NIL   // nil
)

// Token is a single lexical unit.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"func":   TOKEN_FUNC,
	"return": TOKEN_RETURN,
	"if":     TOKEN_IF,
	"else":   TOKEN_ELSE,
	"let":    TOKEN_LET,
	"while":  TOKEN_WHILE,
	"for":    TOKEN_FOR,
	"print":  TOKEN_PRINT,
	"int":    TOKEN_TYPE_INT,
	"string": TOKEN_TYPE_STRING,
	"char":   TOKEN_TYPE_CHAR,
	"bool":   TOKEN_TYPE_BOOL,
	"true":   TOKEN_TRUE,
	"false":  TOKEN_FALSE,
	"nil":    TOKEN_NIL,
}

// LookupIdent checks whether an identifier is a keyword.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

var tokenTypeNames = map[TokenType]string{
	TOKEN_ILLEGAL:     "ILLEGAL",
	TOKEN_EOF:         "EOF",
	TOKEN_IDENT:       "IDENT",
	TOKEN_INT:         "INT",
	TOKEN_FLOAT:       "FLOAT",
	TOKEN_STRING:      "STRING",
	TOKEN_CHAR:        "CHAR",
	TOKEN_ASSIGN:      "=",
	TOKEN_PLUS:        "+",
	TOKEN_MINUS:       "-",
	TOKEN_ASTERISK:    "*",
	TOKEN_SLASH:       "/",
	TOKEN_PERCENT:     "%",
	TOKEN_CARET:       "^",
	TOKEN_EQ:          "==",
	TOKEN_NOT_EQ:      "!=",
	TOKEN_LT:          "<",
	TOKEN_GT:          ">",
	TOKEN_LT_EQ:       "<=",
	TOKEN_GT_EQ:       ">=",
	TOKEN_AND:         "&&",
	TOKEN_OR:          "||",
	TOKEN_COMMA:       ",",
	TOKEN_SEMICOLON:   ";",
	TOKEN_LPAREN:      "(",
	TOKEN_RPAREN:      ")",
	TOKEN_LBRACE:      "{",
	TOKEN_RBRACE:      "}",
	TOKEN_FUNC:        "func",
	TOKEN_RETURN:      "return",
	TOKEN_IF:          "if",
	TOKEN_ELSE:        "else",
	TOKEN_LET:         "let",
	TOKEN_WHILE:       "while",
	TOKEN_FOR:         "for",
	TOKEN_PRINT:       "print",
	TOKEN_TYPE_INT:    "int",
	TOKEN_TYPE_STRING: "string",
	TOKEN_TYPE_CHAR:   "char",
	TOKEN_TYPE_BOOL:   "bool",
	TOKEN_TRUE:        "true",
	TOKEN_FALSE:       "false",
	TOKEN_NIL:         "nil",
}

// TokenTypeName returns the display name of a token type.
func TokenTypeName(t TokenType) string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
