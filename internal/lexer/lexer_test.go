package lexer

import (
	"strings"
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let pi = 3.14;
func add() {
	return five + pi;
}
if (five >= 5 && five != 4) {
	five = five * 2 - 1 / 3 % 2;
} else {
	five = five ^ 1;
}
print five <= 10 || five < 0 > 1 == 1;
while for int string char bool true false nil
"hi" 'c' , ( )`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LET, "let"},
		{TOKEN_IDENT, "five"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_INT, "5"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_LET, "let"},
		{TOKEN_IDENT, "pi"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_FLOAT, "3.14"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_FUNC, "func"},
		{TOKEN_IDENT, "add"},
		{TOKEN_LPAREN, "("},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_RETURN, "return"},
		{TOKEN_IDENT, "five"},
		{TOKEN_PLUS, "+"},
		{TOKEN_IDENT, "pi"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_IF, "if"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "five"},
		{TOKEN_GT_EQ, ">="},
		{TOKEN_INT, "5"},
		{TOKEN_AND, "&&"},
		{TOKEN_IDENT, "five"},
		{TOKEN_NOT_EQ, "!="},
		{TOKEN_INT, "4"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_IDENT, "five"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_IDENT, "five"},
		{TOKEN_ASTERISK, "*"},
		{TOKEN_INT, "2"},
		{TOKEN_MINUS, "-"},
		{TOKEN_INT, "1"},
		{TOKEN_SLASH, "/"},
		{TOKEN_INT, "3"},
		{TOKEN_PERCENT, "%"},
		{TOKEN_INT, "2"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_ELSE, "else"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_IDENT, "five"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_IDENT, "five"},
		{TOKEN_CARET, "^"},
		{TOKEN_INT, "1"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_PRINT, "print"},
		{TOKEN_IDENT, "five"},
		{TOKEN_LT_EQ, "<="},
		{TOKEN_INT, "10"},
		{TOKEN_OR, "||"},
		{TOKEN_IDENT, "five"},
		{TOKEN_LT, "<"},
		{TOKEN_INT, "0"},
		{TOKEN_GT, ">"},
		{TOKEN_INT, "1"},
		{TOKEN_EQ, "=="},
		{TOKEN_INT, "1"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_WHILE, "while"},
		{TOKEN_FOR, "for"},
		{TOKEN_TYPE_INT, "int"},
		{TOKEN_TYPE_STRING, "string"},
		{TOKEN_TYPE_CHAR, "char"},
		{TOKEN_TYPE_BOOL, "bool"},
		{TOKEN_TRUE, "true"},
		{TOKEN_FALSE, "false"},
		{TOKEN_NIL, "nil"},
		{TOKEN_STRING, `"hi"`},
		{TOKEN_CHAR, `'c'`},
		{TOKEN_COMMA, ","},
		{TOKEN_LPAREN, "("},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d]: wrong type. expected=%s, got=%s (%q)",
				i, TokenTypeName(tt.expectedType), TokenTypeName(tok.Type), tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d]: wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenizeAlwaysEndsWithEOF(t *testing.T) {
	inputs := []string{
		"",
		"let a = 1;",
		`"unterminated`,
		"'x",
		"@#$",
		"// only a comment",
	}
	for _, input := range inputs {
		tokens := Tokenize(input)
		if len(tokens) == 0 {
			t.Fatalf("input %q: no tokens", input)
		}
		eofs := 0
		for _, tok := range tokens {
			if tok.Type == TOKEN_EOF {
				eofs++
			}
		}
		if eofs != 1 {
			t.Fatalf("input %q: expected exactly one EOF, got %d", input, eofs)
		}
		if tokens[len(tokens)-1].Type != TOKEN_EOF {
			t.Fatalf("input %q: last token is not EOF", input)
		}
	}
}

func TestUnterminatedStringIsSingleIllegal(t *testing.T) {
	tokens := Tokenize(`"abc`)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Type != TOKEN_ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", TokenTypeName(tokens[0].Type))
	}
	if tokens[0].Literal != `"abc` {
		t.Fatalf("expected literal to span the unterminated region, got %q", tokens[0].Literal)
	}
}

func TestInvalidOperatorsAreIllegal(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"!", "!"},
		{"&", "&"},
		{"|", "|"},
		{"@", "@"},
	}
	for _, tt := range tests {
		tokens := Tokenize(tt.input)
		if tokens[0].Type != TOKEN_ILLEGAL {
			t.Errorf("input %q: expected ILLEGAL, got %s", tt.input, TokenTypeName(tokens[0].Type))
		}
		if tokens[0].Literal != tt.literal {
			t.Errorf("input %q: expected literal %q, got %q", tt.input, tt.literal, tokens[0].Literal)
		}
	}
}

func TestCommentsProduceNoTokens(t *testing.T) {
	input := "let a = 1; // trailing comment\n// full line comment\nlet b = 2;"
	for _, tok := range Tokenize(input) {
		if strings.Contains(tok.Literal, "comment") {
			t.Fatalf("comment leaked into token stream: %q", tok.Literal)
		}
	}
}

func TestNumberLexing(t *testing.T) {
	tests := []struct {
		input        string
		expectedType TokenType
		literal      string
	}{
		{"42", TOKEN_INT, "42"},
		{"3.14", TOKEN_FLOAT, "3.14"},
		{"0", TOKEN_INT, "0"},
		{"10.0", TOKEN_FLOAT, "10.0"},
	}
	for _, tt := range tests {
		tokens := Tokenize(tt.input)
		if tokens[0].Type != tt.expectedType || tokens[0].Literal != tt.literal {
			t.Errorf("input %q: got %s %q", tt.input, TokenTypeName(tokens[0].Type), tokens[0].Literal)
		}
	}

	// a dot not followed by a digit is not a fractional part
	tokens := Tokenize("5.x")
	if tokens[0].Type != TOKEN_INT || tokens[0].Literal != "5" {
		t.Fatalf("expected INT 5, got %s %q", TokenTypeName(tokens[0].Type), tokens[0].Literal)
	}
	if tokens[1].Type != TOKEN_ILLEGAL || tokens[1].Literal != "." {
		t.Fatalf("expected ILLEGAL '.', got %s %q", TokenTypeName(tokens[1].Type), tokens[1].Literal)
	}
}

func TestLineNumbers(t *testing.T) {
	input := "let a = 1;\nlet b = 2;\n\nlet c = 3;"
	var lines []int
	for _, tok := range Tokenize(input) {
		if tok.Type == TOKEN_LET {
			lines = append(lines, tok.Line)
		}
	}
	want := []int{1, 2, 4}
	if len(lines) != len(want) {
		t.Fatalf("expected %d let tokens, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("let[%d]: expected line %d, got %d", i, want[i], lines[i])
		}
	}
}

func TestMultiLineString(t *testing.T) {
	input := "\"a\nb\"\nlet x = 1;"
	tokens := Tokenize(input)
	if tokens[0].Type != TOKEN_STRING {
		t.Fatalf("expected STRING, got %s", TokenTypeName(tokens[0].Type))
	}
	if tokens[0].Line != 1 {
		t.Errorf("string should start on line 1, got %d", tokens[0].Line)
	}
	// the embedded newline counts toward following tokens
	if tokens[1].Type != TOKEN_LET || tokens[1].Line != 3 {
		t.Errorf("expected let on line 3, got %s on line %d", TokenTypeName(tokens[1].Type), tokens[1].Line)
	}
}

func TestTokensAppearInSourceOrder(t *testing.T) {
	input := "let answer = 6 * 7; // the obvious one\nprint answer;"
	search := 0
	for _, tok := range Tokenize(input) {
		if tok.Type == TOKEN_EOF {
			break
		}
		idx := strings.Index(input[search:], tok.Literal)
		if idx < 0 {
			t.Fatalf("token %q not found in source after offset %d", tok.Literal, search)
		}
		search += idx + len(tok.Literal)
	}
}

func TestLookupIdent(t *testing.T) {
	if LookupIdent("let") != TOKEN_LET {
		t.Error("let should be a keyword")
	}
	if LookupIdent("letter") != TOKEN_IDENT {
		t.Error("letter should be an identifier")
	}
	if LookupIdent("_tmp") != TOKEN_IDENT {
		t.Error("_tmp should be an identifier")
	}
}
