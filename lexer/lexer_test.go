package lexer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scorch-lang/scorch/lexer"
	"github.com/scorch-lang/scorch/token"
	"github.com/scorch-lang/scorch/utils"
	"github.com/sebdah/goldie/v2"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	testfiles, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Fatalf("failed to find test files: %v", err)
	}

	g := goldie.New(t)
	for _, testfile := range testfiles {
		source, err := os.ReadFile(testfile)
		if err != nil {
			t.Fatalf("failed to read %s: %v", testfile, err)
		}

		var builder strings.Builder
		for _, tok := range lexer.Lex(string(source)) {
			builder.WriteString(tok.String())
			builder.WriteString("\n")
		}

		name := strings.TrimSuffix(filepath.Base(testfile), utils.SourceExt)
		g.Assert(t, name, []byte(builder.String()))
	}
}

func kinds(tokens []token.Token) []token.Kind {
	ks := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		ks[i] = tok.Kind
	}
	return ks
}

func TestKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  []token.Kind
	}{
		{"", []token.Kind{token.EOF}},
		{"1+2;", []token.Kind{token.NUMBER, token.PLUS, token.NUMBER, token.SEMICOLON, token.EOF}},
		{":: := :", []token.Kind{token.CONSTASSIGN, token.MUTASSIGN, token.COLON, token.EOF}},
		{"== => =", []token.Kind{token.EQUALEQUAL, token.FATARROW, token.INVALIDTOKEN, token.EOF}},
		{"< <= > >=", []token.Kind{token.LEFTANGLE, token.LESSEQUAL, token.RIGHTANGLE, token.GREATEREQUAL, token.EOF}},
		{"& && || |", []token.Kind{token.CONCAT, token.AND, token.OR, token.INVALIDTOKEN, token.EOF}},
		{"+ += - -= ! !=", []token.Kind{token.PLUS, token.PLUSEQUAL, token.MINUS, token.MINUSEQUAL, token.BANG, token.BANGEQUAL, token.EOF}},
		{". ..", []token.Kind{token.DOT, token.DOTDOT, token.EOF}},
		{"~ @ ? * / %", []token.Kind{token.TILDE, token.AT, token.QUESTION, token.STAR, token.SLASH, token.PERCENT, token.EOF}},
		{"([{}])", []token.Kind{token.LEFTPAREN, token.LEFTBRACKET, token.LEFTBRACE, token.RIGHTBRACE, token.RIGHTBRACKET, token.RIGHTPAREN, token.EOF}},
		{"x -- comment\ny", []token.Kind{token.IDENT, token.IDENT, token.EOF}},
		{"-- only a comment", []token.Kind{token.EOF}},
		{"true false nil", []token.Kind{token.TRUE, token.FALSE, token.NIL, token.EOF}},
		{"loop recur while for do", []token.Kind{token.LOOP, token.RECUR, token.WHILE, token.FOR, token.DO, token.EOF}},
		{"1.5.3", []token.Kind{token.FLOAT, token.DOT, token.NUMBER, token.EOF}},
		{"3.x", []token.Kind{token.INVALIDFLOAT, token.IDENT, token.EOF}},
		{"_under score9", []token.Kind{token.IDENT, token.IDENT, token.EOF}},
		{"$", []token.Kind{token.INVALIDTOKEN, token.EOF}},
	}

	for _, c := range cases {
		got := kinds(lexer.Lex(c.input))
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Lex(%q) mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	pos := func(line, column int) token.Position {
		return token.Position{Line: line, Column: column}
	}

	cases := []struct {
		input string
		want  []token.Token
	}{
		{
			input: "1+2;",
			want: []token.Token{
				{Kind: token.NUMBER, Lexeme: "1", Pos: pos(1, 1), Literal: "1"},
				{Kind: token.PLUS, Lexeme: "+", Pos: pos(1, 2)},
				{Kind: token.NUMBER, Lexeme: "2", Pos: pos(1, 3), Literal: "2"},
				{Kind: token.SEMICOLON, Lexeme: ";", Pos: pos(1, 4)},
				{Kind: token.EOF, Lexeme: "", Pos: pos(1, 5)},
			},
		},
		{
			input: `"abc`,
			want: []token.Token{
				{Kind: token.UNTERMINATEDSTRING, Lexeme: `"abc`, Pos: pos(1, 1), Literal: pos(1, 1)},
				{Kind: token.EOF, Lexeme: "", Pos: pos(1, 5)},
			},
		},
		{
			input: "3..",
			want: []token.Token{
				{Kind: token.INVALIDFLOAT, Lexeme: "3..", Pos: pos(1, 1), Literal: pos(1, 3)},
				{Kind: token.EOF, Lexeme: "", Pos: pos(1, 4)},
			},
		},
		{
			input: `"a\tb\"c" 1_000 2.5_0`,
			want: []token.Token{
				{Kind: token.STRING, Lexeme: `"a\tb\"c"`, Pos: pos(1, 1), Literal: "a\tb\"c"},
				{Kind: token.NUMBER, Lexeme: "1_000", Pos: pos(1, 11), Literal: "1000"},
				{Kind: token.FLOAT, Lexeme: "2.5_0", Pos: pos(1, 17), Literal: "2.50"},
				{Kind: token.EOF, Lexeme: "", Pos: pos(1, 22)},
			},
		},
		{
			input: "\"bad \\q\" x",
			want: []token.Token{
				{Kind: token.INVALIDSTRING, Lexeme: "\"bad \\q\"", Pos: pos(1, 1), Literal: pos(1, 8)},
				{Kind: token.IDENT, Lexeme: "x", Pos: pos(1, 10), Literal: "x"},
				{Kind: token.EOF, Lexeme: "", Pos: pos(1, 11)},
			},
		},
		{
			input: "let\n  x\t:= é;",
			want: []token.Token{
				{Kind: token.LET, Lexeme: "let", Pos: pos(1, 1)},
				{Kind: token.IDENT, Lexeme: "x", Pos: pos(2, 3), Literal: "x"},
				{Kind: token.MUTASSIGN, Lexeme: ":=", Pos: pos(2, 5)},
				{Kind: token.IDENT, Lexeme: "é", Pos: pos(2, 8), Literal: "é"},
				{Kind: token.SEMICOLON, Lexeme: ";", Pos: pos(2, 9)},
				{Kind: token.EOF, Lexeme: "", Pos: pos(2, 10)},
			},
		},
		{
			input: "\"two\nlines\" y",
			want: []token.Token{
				{Kind: token.STRING, Lexeme: "\"two\nlines\"", Pos: pos(1, 1), Literal: "two\nlines"},
				{Kind: token.IDENT, Lexeme: "y", Pos: pos(2, 8), Literal: "y"},
				{Kind: token.EOF, Lexeme: "", Pos: pos(2, 9)},
			},
		},
	}

	for _, c := range cases {
		got := lexer.Lex(c.input)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Lex(%q) mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

// checkInvariants verifies that tokens end with exactly one EOF and that
// positions never move backwards.
func checkInvariants(t *testing.T, input string, tokens []token.Token) {
	t.Helper()

	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatalf("Lex(%q) does not end with EOF: %v", input, tokens)
	}
	for i, tok := range tokens[:len(tokens)-1] {
		if tok.Kind == token.EOF {
			t.Fatalf("Lex(%q) has EOF at index %d", input, i)
		}
	}

	prev := token.Position{Line: 1, Column: 1}
	for _, tok := range tokens {
		p := tok.Pos
		if p.Line < prev.Line || (p.Line == prev.Line && p.Column < prev.Column) {
			t.Fatalf("Lex(%q): position %v of %v precedes %v", input, p, tok, prev)
		}
		if p.Line < 1 || p.Column < 1 {
			t.Fatalf("Lex(%q): position %v is not 1-based", input, p)
		}
		prev = p
	}
}

func TestInvariants(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"\n\n\n",
		"let x := 5;",
		`"abc`,
		"3..",
		"\"\\",
		"1.",
		"--",
		"a\r\nb",
		"if x then y; end",
		"Point{x:=1,y:=2}",
		"日本 := \"語\";",
	}
	for _, input := range inputs {
		checkInvariants(t, input, lexer.Lex(input))
	}
}

func FuzzLex(f *testing.F) {
	for _, seed := range []string{"let x := 5;", `"a\qb"`, "3..", "1_0.2_5", "x -- c\n y", "=|$"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		checkInvariants(t, input, lexer.Lex(input))
	})
}
