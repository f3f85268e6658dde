package internal

import (
	"fmt"
	"strings"
)

type lexer struct {
	source  string
	start   int
	current int
	line    int

	state  *interpreterState
	tokens []Token
}

var keywords = map[string]TokenType{
	"let":   LET,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
	"print": PRINT,
}

func newLexer(state *interpreterState, source string) *lexer {
	return &lexer{
		source: source,
		line:   1,
		state:  state,
	}
}

// scan consumes the whole source in a single forward pass. The returned
// slice always ends with an EOF token.
func (l *lexer) scan() []Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, Token{Kind: EOF, Line: l.line})
	return l.tokens
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '{':
		l.emit(LEFT_CURLY_BRACE)
	case '}':
		l.emit(RIGHT_CURLY_BRACE)
	case '(':
		l.emit(LEFT_PAREN)
	case ')':
		l.emit(RIGHT_PAREN)
	case ';':
		l.emit(SEMICOLON)
	case '-':
		l.emit(MINUS)
	case '+':
		l.emit(PLUS)
	case '/':
		l.emit(SLASH)
	case '*':
		l.emit(STAR)
	case '%':
		l.emit(PERCENT)
	case '!':
		if l.match('=') {
			l.emit(BANG_EQUAL)
		} else {
			l.unexpected()
		}
	case '=':
		if l.match('=') {
			l.emit(EQUAL_EQUAL)
		} else {
			l.emit(EQUAL)
		}
	case '<':
		if l.match('=') {
			l.emit(LESS_EQUAL)
		} else {
			l.emit(LESS)
		}
	case '>':
		if l.match('=') {
			l.emit(GREATER_EQUAL)
		} else {
			l.emit(GREATER)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.unexpected()
		}
	}
}

func (l *lexer) string() {
	line := l.line
	var text strings.Builder
	for {
		if l.isAtEnd() {
			l.state.fatalError(LexFault, errUnterminatedString, line, "")
		}
		c := l.advance()
		switch c {
		case '"':
			l.tokens = append(l.tokens, Token{Kind: STRING, Lexeme: text.String(), Line: line})
			return
		case '\\':
			if l.isAtEnd() {
				l.state.fatalError(LexFault, errUnterminatedString, line, "")
			}
			escaped := l.advance()
			switch escaped {
			case 'n':
				text.WriteByte('\n')
			case '\n':
				l.line++
				text.WriteByte(escaped)
			default:
				// \" and \\ fall in here, as does any other escaped byte
				text.WriteByte(escaped)
			}
		case '\n':
			l.line++
			text.WriteByte(c)
		default:
			text.WriteByte(c)
		}
	}
}

func (l *lexer) number() {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	l.emit(INTEGER)
}

func (l *lexer) identifier() {
	for !l.isAtEnd() && (isAlpha(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = IDENTIFIER
	}

	l.emit(tokenType)
}

func (l *lexer) unexpected() {
	l.state.fatalError(LexFault, errUnexpectedChar, l.line, fmt.Sprintf("%q", l.source[l.start:l.current]))
}

func (l *lexer) advance() byte {
	current := l.source[l.current]
	l.current++
	return current
}

func (l *lexer) peek() byte {
	return l.source[l.current]
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) emit(token TokenType) {
	l.tokens = append(l.tokens, Token{
		Kind:   token,
		Lexeme: l.source[l.start:l.current],
		Line:   l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
