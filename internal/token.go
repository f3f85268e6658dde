package internal

// TokenType Holds a token
type TokenType int

const (
	EOF TokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, ;, +, -, *, /, %
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_CURLY_BRACE
	RIGHT_CURLY_BRACE
	SEMICOLON
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT

	// One or two character tokens.
	// !=, =, ==, >, >=, <, <=
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals.
	// *variable*, string, int
	IDENTIFIER
	STRING
	INTEGER

	// Keywords.
	// let, if, else, while, print
	LET
	IF
	ELSE
	WHILE
	PRINT
)

var tokenNames = map[TokenType]string{
	EOF:               "EOF",
	LEFT_PAREN:        "LEFT_PAREN",
	RIGHT_PAREN:       "RIGHT_PAREN",
	LEFT_CURLY_BRACE:  "LEFT_CURLY_BRACE",
	RIGHT_CURLY_BRACE: "RIGHT_CURLY_BRACE",
	SEMICOLON:         "SEMICOLON",
	PLUS:              "PLUS",
	MINUS:             "MINUS",
	STAR:              "STAR",
	SLASH:             "SLASH",
	PERCENT:           "PERCENT",
	BANG_EQUAL:        "BANG_EQUAL",
	EQUAL:             "EQUAL",
	EQUAL_EQUAL:       "EQUAL_EQUAL",
	GREATER:           "GREATER",
	GREATER_EQUAL:     "GREATER_EQUAL",
	LESS:              "LESS",
	LESS_EQUAL:        "LESS_EQUAL",
	IDENTIFIER:        "IDENTIFIER",
	STRING:            "STRING",
	INTEGER:           "INTEGER",
	LET:               "LET",
	IF:                "IF",
	ELSE:              "ELSE",
	WHILE:             "WHILE",
	PRINT:             "PRINT",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexeme. STRING lexemes hold the decoded text, without quotes.
type Token struct {
	Kind   TokenType
	Lexeme string
	Line   int
}
