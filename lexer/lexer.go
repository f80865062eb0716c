package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/scorch-lang/scorch/token"
)

// Lex scans the whole source. It never fails: malformed input is recorded
// as error sentinel tokens (token.INVALIDFLOAT, ...) in place, so a single
// pass reports every lexical error. The result always ends with one EOF.
func Lex(source string) []token.Token {
	l := lexer{
		source: source,
		tokens: []token.Token{},
		pos:    token.Position{Line: 1, Column: 1},
	}

	for !l.isAtEnd() {
		l.scanToken()
	}

	l.start = l.current
	l.startPos = l.pos
	l.addToken(token.EOF, nil)

	return l.tokens
}

type lexer struct {
	source string
	tokens []token.Token

	start    int // start of current lexeme
	current  int // current position in source
	pos      token.Position
	startPos token.Position
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

func (l lexer) peekNext() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	_, width := utf8.DecodeRuneInString(l.source[l.current:])
	if l.current+width >= len(l.source) {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current+width:])

	return runeValue
}

func (l *lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	if runeValue == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}

	return runeValue
}

func (l *lexer) match(expected rune) bool {
	if l.isAtEnd() || l.peek() != expected {
		return false
	}
	l.advance()

	return true
}

func (l *lexer) addToken(kind token.Kind, literal any) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Pos: l.startPos, Literal: literal})
}

// invalid records a sentinel raised at the given position.
func (l *lexer) invalid(kind token.Kind, at token.Position) {
	l.addToken(kind, at)
}

func (l *lexer) scanToken() {
	l.start = l.current
	l.startPos = l.pos
	char := l.advance()
	switch char {
	case ' ', '\r', '\t', '\n':
		// ignore whitespace
	case ',':
		l.addToken(token.COMMA, nil)
	case '~':
		l.addToken(token.TILDE, nil)
	case '@':
		l.addToken(token.AT, nil)
	case '?':
		l.addToken(token.QUESTION, nil)
	case '*':
		l.addToken(token.STAR, nil)
	case '/':
		l.addToken(token.SLASH, nil)
	case '%':
		l.addToken(token.PERCENT, nil)
	case ';':
		l.addToken(token.SEMICOLON, nil)
	case '(':
		l.addToken(token.LEFTPAREN, nil)
	case ')':
		l.addToken(token.RIGHTPAREN, nil)
	case '{':
		l.addToken(token.LEFTBRACE, nil)
	case '}':
		l.addToken(token.RIGHTBRACE, nil)
	case '[':
		l.addToken(token.LEFTBRACKET, nil)
	case ']':
		l.addToken(token.RIGHTBRACKET, nil)
	case '!':
		l.either('=', token.BANGEQUAL, token.BANG)
	case '+':
		l.either('=', token.PLUSEQUAL, token.PLUS)
	case '<':
		l.either('=', token.LESSEQUAL, token.LEFTANGLE)
	case '>':
		l.either('=', token.GREATEREQUAL, token.RIGHTANGLE)
	case '&':
		l.either('&', token.AND, token.CONCAT)
	case '.':
		l.either('.', token.DOTDOT, token.DOT)
	case '-':
		switch {
		case l.peek() == '-':
			l.comment()
		case l.match('='):
			l.addToken(token.MINUSEQUAL, nil)
		default:
			l.addToken(token.MINUS, nil)
		}
	case '=':
		switch {
		case l.match('='):
			l.addToken(token.EQUALEQUAL, nil)
		case l.match('>'):
			l.addToken(token.FATARROW, nil)
		default:
			l.invalid(token.INVALIDTOKEN, l.startPos)
		}
	case ':':
		switch {
		case l.match(':'):
			l.addToken(token.CONSTASSIGN, nil)
		case l.match('='):
			l.addToken(token.MUTASSIGN, nil)
		default:
			l.addToken(token.COLON, nil)
		}
	case '|':
		if l.match('|') {
			l.addToken(token.OR, nil)
		} else {
			l.invalid(token.INVALIDTOKEN, l.startPos)
		}
	case '"':
		l.string()
	default:
		switch {
		case isDigit(char):
			l.number()
		case isAlpha(char):
			l.identifier()
		default:
			l.invalid(token.INVALIDTOKEN, l.startPos)
		}
	}
}

// either emits long if the next character is next, short otherwise.
func (l *lexer) either(next rune, long, short token.Kind) {
	if l.match(next) {
		l.addToken(long, nil)
	} else {
		l.addToken(short, nil)
	}
}

// comment skips a `--` comment up to, not including, the newline.
func (l *lexer) comment() {
	for l.peek() != '\n' && !l.isAtEnd() {
		l.advance()
	}
}

var escapes = map[rune]rune{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'"':  '"',
	'\\': '\\',
}

func (l *lexer) string() {
	var value strings.Builder
	for !l.isAtEnd() {
		switch c := l.advance(); c {
		case '"':
			l.addToken(token.STRING, value.String())
			return
		case '\\':
			if l.isAtEnd() {
				break
			}
			esc, ok := escapes[l.advance()]
			if !ok {
				// raised just past the escape character
				at := l.pos
				l.skipString()
				l.invalid(token.INVALIDSTRING, at)
				return
			}
			value.WriteRune(esc)
		default:
			value.WriteRune(c)
		}
	}

	l.invalid(token.UNTERMINATEDSTRING, l.startPos)
}

// skipString abandons a string literal, consuming through its closing quote.
func (l *lexer) skipString() {
	for !l.isAtEnd() {
		switch l.advance() {
		case '"':
			return
		case '\\':
			if !l.isAtEnd() {
				l.advance()
			}
		}
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) digits() {
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
}

// number scans digits with `_` separators and at most one `.`.
func (l *lexer) number() {
	l.digits()

	kind := token.NUMBER
	if l.peek() == '.' {
		if !isDigit(l.peekNext()) {
			l.advance()
			at := l.pos
			for l.peek() == '.' {
				l.advance()
			}
			l.invalid(token.INVALIDFLOAT, at)
			return
		}
		l.advance()
		l.digits()
		kind = token.FLOAT
	}

	value := strings.ReplaceAll(l.source[l.start:l.current], "_", "")
	l.addToken(kind, value)
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) || unicode.IsDigit(l.peek()) {
		l.advance()
	}

	value := l.source[l.start:l.current]

	if k := token.Lookup(value); k != token.IDENT {
		l.addToken(k, nil)
	} else {
		l.addToken(token.IDENT, value)
	}
}
