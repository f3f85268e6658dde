package internal

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Empty",
			input: "",
			expected: []Token{
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Punctuation and operators",
			input: "( ) { } ; + - * / % = == != < <= > >=",
			expected: []Token{
				{Kind: LEFT_PAREN, Lexeme: "(", Line: 1},
				{Kind: RIGHT_PAREN, Lexeme: ")", Line: 1},
				{Kind: LEFT_CURLY_BRACE, Lexeme: "{", Line: 1},
				{Kind: RIGHT_CURLY_BRACE, Lexeme: "}", Line: 1},
				{Kind: SEMICOLON, Lexeme: ";", Line: 1},
				{Kind: PLUS, Lexeme: "+", Line: 1},
				{Kind: MINUS, Lexeme: "-", Line: 1},
				{Kind: STAR, Lexeme: "*", Line: 1},
				{Kind: SLASH, Lexeme: "/", Line: 1},
				{Kind: PERCENT, Lexeme: "%", Line: 1},
				{Kind: EQUAL, Lexeme: "=", Line: 1},
				{Kind: EQUAL_EQUAL, Lexeme: "==", Line: 1},
				{Kind: BANG_EQUAL, Lexeme: "!=", Line: 1},
				{Kind: LESS, Lexeme: "<", Line: 1},
				{Kind: LESS_EQUAL, Lexeme: "<=", Line: 1},
				{Kind: GREATER, Lexeme: ">", Line: 1},
				{Kind: GREATER_EQUAL, Lexeme: ">=", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Two character operators are greedy",
			input: "a<=b<==c",
			expected: []Token{
				{Kind: IDENTIFIER, Lexeme: "a", Line: 1},
				{Kind: LESS_EQUAL, Lexeme: "<=", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "b", Line: 1},
				{Kind: LESS_EQUAL, Lexeme: "<=", Line: 1},
				{Kind: EQUAL, Lexeme: "=", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "c", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Keywords and identifiers",
			input: "let if else while print letx _under_score Print x1",
			expected: []Token{
				{Kind: LET, Lexeme: "let", Line: 1},
				{Kind: IF, Lexeme: "if", Line: 1},
				{Kind: ELSE, Lexeme: "else", Line: 1},
				{Kind: WHILE, Lexeme: "while", Line: 1},
				{Kind: PRINT, Lexeme: "print", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "letx", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "_under_score", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "Print", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "x1", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Integers are unsigned digit runs",
			input: "0 123 007 -5",
			expected: []Token{
				{Kind: INTEGER, Lexeme: "0", Line: 1},
				{Kind: INTEGER, Lexeme: "123", Line: 1},
				{Kind: INTEGER, Lexeme: "007", Line: 1},
				{Kind: MINUS, Lexeme: "-", Line: 1},
				{Kind: INTEGER, Lexeme: "5", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Digits then letters split",
			input: "12ab",
			expected: []Token{
				{Kind: INTEGER, Lexeme: "12", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "ab", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Strings are decoded",
			input: `"plain" "a\"b" "back\\slash" "new\nline" "\q"`,
			expected: []Token{
				{Kind: STRING, Lexeme: "plain", Line: 1},
				{Kind: STRING, Lexeme: `a"b`, Line: 1},
				{Kind: STRING, Lexeme: `back\slash`, Line: 1},
				{Kind: STRING, Lexeme: "new\nline", Line: 1},
				{Kind: STRING, Lexeme: "q", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Keywords inside strings stay text",
			input: `"let x = 1;"`,
			expected: []Token{
				{Kind: STRING, Lexeme: "let x = 1;", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Whitespace and lines",
			input: "let\tx\r\n=\n\n1 ;",
			expected: []Token{
				{Kind: LET, Lexeme: "let", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "x", Line: 1},
				{Kind: EQUAL, Lexeme: "=", Line: 2},
				{Kind: INTEGER, Lexeme: "1", Line: 4},
				{Kind: SEMICOLON, Lexeme: ";", Line: 4},
				{Kind: EOF, Lexeme: "", Line: 4},
			},
		},
		{
			name:  "Multi-line string keeps its starting line",
			input: "\"a\nb\" x",
			expected: []Token{
				{Kind: STRING, Lexeme: "a\nb", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "x", Line: 2},
				{Kind: EOF, Lexeme: "", Line: 2},
			},
		},
		{
			name:  "Statement",
			input: `print("n=" + n);`,
			expected: []Token{
				{Kind: PRINT, Lexeme: "print", Line: 1},
				{Kind: LEFT_PAREN, Lexeme: "(", Line: 1},
				{Kind: STRING, Lexeme: "n=", Line: 1},
				{Kind: PLUS, Lexeme: "+", Line: 1},
				{Kind: IDENTIFIER, Lexeme: "n", Line: 1},
				{Kind: RIGHT_PAREN, Lexeme: ")", Line: 1},
				{Kind: SEMICOLON, Lexeme: ";", Line: 1},
				{Kind: EOF, Lexeme: "", Line: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("Lex() error = %v", err)
			}
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Lex() =\n%v\nwant\n%v", tokens, tt.expected)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
		line   int
		detail string
	}{
		{"Unterminated string", `print("abc`, errUnterminatedString, 1, ""},
		{"Unterminated after escape", `"abc\`, errUnterminatedString, 1, ""},
		{"Unterminated reports opening line", "\n\"abc\n\n", errUnterminatedString, 2, ""},
		{"Lone bang", "a ! b", errUnexpectedChar, 1, `"!"`},
		{"Unknown symbol", "let x = 1;\n@", errUnexpectedChar, 2, `"@"`},
		{"Comment marker", "# comment", errUnexpectedChar, 1, `"#"`},
		{"Brackets", "[1]", errUnexpectedChar, 1, `"["`},
		{"Non ASCII", "é", errUnexpectedChar, 1, `"\xc3"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			fault := checkFault(t, err, LexFault, tt.target)
			if tokens != nil {
				t.Errorf("expected no tokens on error, got %v", tokens)
			}
			if fault.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, fault.Line)
			}
			if fault.Detail != tt.detail {
				t.Errorf("expected detail %s, got %s", tt.detail, fault.Detail)
			}
		})
	}
}

func TestTokenTypeString(t *testing.T) {
	if got := SEMICOLON.String(); got != "SEMICOLON" {
		t.Errorf("SEMICOLON.String() = %q", got)
	}
	if got := EOF.String(); got != "EOF" {
		t.Errorf("EOF.String() = %q", got)
	}
	if got := TokenType(1000).String(); got != "UNKNOWN" {
		t.Errorf("TokenType(1000).String() = %q", got)
	}
}
