package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota

	// Single- and two-character symbols.
	CONSTASSIGN // ::
	MUTASSIGN   // :=
	TILDE
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE
	LEFTANGLE
	RIGHTANGLE
	LEFTBRACKET
	RIGHTBRACKET
	SEMICOLON
	PLUS
	MINUS
	SLASH
	QUESTION
	STAR
	PERCENT
	BANG
	COMMA
	COLON
	AT
	DOT
	DOTDOT

	// Operators.
	EQUALEQUAL
	BANGEQUAL
	GREATEREQUAL
	LESSEQUAL
	AND
	OR
	CONCAT // &
	PLUSEQUAL
	MINUSEQUAL
	FATARROW // =>

	// Literals and identifiers.
	IDENT
	NUMBER
	FLOAT
	STRING
	TRUE
	FALSE
	NIL

	// Keywords.
	IF
	ELSE
	ELIF
	THEN
	LET
	BEGIN
	END
	RETURN
	STRUCT
	ENUM
	TYPE
	NEW
	LOOP
	DO
	RECUR
	WHILE
	FOR
	PUB
	AS
	IMPORT
	PROC

	// Lexical errors. Literal holds the Position of the offending location.
	INVALIDFLOAT
	INVALIDSTRING
	INVALIDTOKEN
	UNTERMINATEDSTRING
)

// Position is a 1-based line/column pair. Columns count runes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Kind    Kind
	Lexeme  string
	Pos     Position
	Literal any
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %v, %v}", t.Kind, t.Lexeme, t.Pos, t.Literal)
}

// Text returns the payload of an identifier or literal token.
func (t Token) Text() string {
	if s, ok := t.Literal.(string); ok {
		return s
	}
	return t.Lexeme
}

// IsError reports whether t is a lexical error sentinel.
func (t Token) IsError() bool {
	return t.Kind >= INVALIDFLOAT && t.Kind <= UNTERMINATEDSTRING
}

// ErrorPos is the position a sentinel was raised at.
func (t Token) ErrorPos() Position {
	if p, ok := t.Literal.(Position); ok {
		return p
	}
	return t.Pos
}

var keywords = map[string]Kind{
	"if":     IF,
	"else":   ELSE,
	"elif":   ELIF,
	"then":   THEN,
	"let":    LET,
	"begin":  BEGIN,
	"end":    END,
	"return": RETURN,
	"struct": STRUCT,
	"enum":   ENUM,
	"type":   TYPE,
	"new":    NEW,
	"loop":   LOOP,
	"do":     DO,
	"recur":  RECUR,
	"while":  WHILE,
	"for":    FOR,
	"pub":    PUB,
	"as":     AS,
	"import": IMPORT,
	"proc":   PROC,
	"true":   TRUE,
	"false":  FALSE,
	"nil":    NIL,
}

// Lookup maps an identifier to its keyword kind, or IDENT.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}

var spellings = map[Kind]string{
	CONSTASSIGN:  "::",
	MUTASSIGN:    ":=",
	TILDE:        "~",
	LEFTPAREN:    "(",
	RIGHTPAREN:   ")",
	LEFTBRACE:    "{",
	RIGHTBRACE:   "}",
	LEFTANGLE:    "<",
	RIGHTANGLE:   ">",
	LEFTBRACKET:  "[",
	RIGHTBRACKET: "]",
	SEMICOLON:    ";",
	PLUS:         "+",
	MINUS:        "-",
	SLASH:        "/",
	QUESTION:     "?",
	STAR:         "*",
	PERCENT:      "%",
	BANG:         "!",
	COMMA:        ",",
	COLON:        ":",
	AT:           "@",
	DOT:          ".",
	DOTDOT:       "..",
	EQUALEQUAL:   "==",
	BANGEQUAL:    "!=",
	GREATEREQUAL: ">=",
	LESSEQUAL:    "<=",
	AND:          "&&",
	OR:           "||",
	CONCAT:       "&",
	PLUSEQUAL:    "+=",
	MINUSEQUAL:   "-=",
	FATARROW:     "=>",
}

func init() {
	for word, k := range keywords {
		spellings[k] = word
	}
}

// Quoted is Spelling wrapped in backquotes for tokens with fixed text,
// for use in messages.
func (k Kind) Quoted() string {
	if s, ok := spellings[k]; ok {
		return "`" + s + "`"
	}
	return k.Spelling()
}

// Spelling returns the source text of a fixed token, e.g. "::" or "begin".
// Tokens without a fixed spelling get a descriptive name.
func (k Kind) Spelling() string {
	if s, ok := spellings[k]; ok {
		return s
	}

	//exhaustive:ignore
	switch k {
	case EOF:
		return "end of file"
	case IDENT:
		return "identifier"
	case NUMBER:
		return "number"
	case FLOAT:
		return "float"
	case STRING:
		return "string"
	default:
		return k.String()
	}
}
