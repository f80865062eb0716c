package parser_test

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/scorch-lang/scorch/ast"
	"github.com/scorch-lang/scorch/diag"
	"github.com/scorch-lang/scorch/lexer"
	"github.com/scorch-lang/scorch/parser"
	"github.com/scorch-lang/scorch/token"
	"github.com/scorch-lang/scorch/utils"
)

func parse(t testing.TB, input string) (*ast.Program, error) {
	t.Helper()

	return parser.NewParser("test.sr", lexer.Lex(input)).Parse()
}

func TestParseFromTestData(t *testing.T) {
	t.Parallel()

	s, err := os.ReadFile("testdata/testcase.yaml")
	if err != nil {
		t.Fatal(err)
	}
	testcases, err := utils.ReadTestData(s)
	if err != nil {
		t.Fatal(err)
	}

	for _, testcase := range testcases {
		t.Run(testcase.Label, func(t *testing.T) {
			t.Parallel()

			program, err := parse(t, testcase.Input)
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if diff := cmp.Diff(testcase.Expected["parser"], program.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func BenchmarkFromTestData(b *testing.B) {
	s, err := os.ReadFile("testdata/testcase.yaml")
	if err != nil {
		b.Fatal(err)
	}
	testcases, err := utils.ReadTestData(s)
	if err != nil {
		b.Fatal(err)
	}

	for _, testcase := range testcases {
		b.Run(testcase.Label, func(b *testing.B) {
			for range b.N {
				if _, err := parse(b, testcase.Input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func TestParseTree(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  *ast.Program
	}{
		{
			"let x := 5;",
			&ast.Program{Stmts: []ast.Stmt{
				&ast.Variable{Name: "x", Type: &ast.TypeName{Name: "Unknown"}, Init: &ast.Integer{Value: 5}},
			}},
		},
		{
			"if x then y; end",
			&ast.Program{Stmts: []ast.Stmt{
				&ast.If{
					Cond: &ast.Identifier{Name: "x"},
					Then: &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{Expr: &ast.Identifier{Name: "y"}}}},
					Else: &ast.Block{},
				},
			}},
		},
		{
			"Point{x:=1,y:=2};",
			&ast.Program{Stmts: []ast.Stmt{
				&ast.ExprStmt{Expr: &ast.StructInstantiation{
					Name: "Point",
					Fields: map[string]ast.Expr{
						"x": &ast.Integer{Value: 1},
						"y": &ast.Integer{Value: 2},
					},
				}},
			}},
		},
		{
			"",
			&ast.Program{},
		},
	}

	for _, c := range cases {
		got, err := parse(t, c.input)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", c.input, err)
			continue
		}
		if diff := cmp.Diff(c.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		kind  diag.Kind
		want  string
	}{
		{"let x := 5", diag.ExpectedFound, "test.sr:1:11: expected `;` but found end of file"},
		{"pub x;", diag.ExpectedMultipleFound, "test.sr:1:5: expected `type` or `let` but found `x`"},
		{"pub return 1;", diag.ExpectedMultipleFound, "test.sr:1:5: expected `type` or `let` but found `return`"},
		{"loop, until x end", diag.ExpectedMultipleFound, "test.sr:1:7: expected `do` or `for` or `recur` or `while` but found `until`"},
		{"let x 5;", diag.ExpectedMultipleFound, "test.sr:1:7: expected `:=` or `::` but found `5`"},
		{"1 +;", diag.ExpectedFound, "test.sr:1:4: expected expression but found `;`"},
		{"let x := 3..;", diag.InvalidFloat, "test.sr:1:12: invalid float"},
		{"type F(Int) Int", diag.ExpectedFound, "test.sr:1:6: expected type name but found function pointer type `F(Int)`"},
		{"99999999999999999999;", diag.ExpectedFound, "test.sr:1:1: expected 64-bit integer but found `99999999999999999999`"},
		{"{1} {2};", diag.ExpectedFound, "test.sr:1:5: expected struct name before `{` but found `{`"},
		{"if x then y;", diag.ExpectedFound, "test.sr:1:13: expected `end` but found end of file"},
		{"let a := 1;\nlet b := ;", diag.ExpectedFound, "test.sr:2:10: expected expression but found `;`"},
		{"enum Color red, green end", diag.ExpectedFound, "test.sr:1:1: expected expression but found `enum`"},
	}

	for _, c := range cases {
		_, err := parse(t, c.input)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want %q", c.input, c.want)
			continue
		}
		if got := err.Error(); got != c.want {
			t.Errorf("Parse(%q) error = %q, want %q", c.input, got, c.want)
		}

		var d *diag.Diagnostic
		if !errors.As(err, &d) {
			t.Errorf("Parse(%q) error %T is not a *diag.Diagnostic", c.input, err)
			continue
		}
		if d.Kind != c.kind {
			t.Errorf("Parse(%q) kind = %v, want %v", c.input, d.Kind, c.kind)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"../testdata/basic.sr", "../examples/test.sr"} {
		source, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		tokens := lexer.Lex(string(source))

		first, err := parser.NewParser(path, tokens).Parse()
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		second, err := parser.NewParser(path, tokens).Parse()
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: trees differ between runs (-first +second):\n%s", path, diff)
		}
		if diff := cmp.Diff(first.String(), second.String()); diff != "" {
			t.Errorf("%s: printed trees differ between runs (-first +second):\n%s", path, diff)
		}
	}
}

func TestLexicalErrors(t *testing.T) {
	t.Parallel()

	source, err := os.ReadFile("../testdata/broken.sr")
	if err != nil {
		t.Fatal(err)
	}

	p := parser.NewParser("broken.sr", lexer.Lex(string(source)))
	_, err = p.Parse()
	if err == nil {
		t.Fatal("Parse succeeded on lexically broken input")
	}

	want := []diag.Kind{
		diag.InvalidFloat,
		diag.InvalidString,
		diag.InvalidToken,
		diag.InvalidToken,
		diag.InvalidToken,
		diag.UnterminatedString,
	}
	got := make([]diag.Kind, len(p.Lexical()))
	for i, d := range p.Lexical() {
		got[i] = d.Kind
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lexical kinds mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(p.Lexical()[0].Error(), err.Error()); diff != "" {
		t.Errorf("Parse should return the first lexical error (-want +got):\n%s", diff)
	}
}

func TestLeftToRightFold(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(binary (binary 1 + 2) * 3)"},
		{"1 * 2 + 3;", "(binary (binary 1 * 2) + 3)"},
		{"x := x + 1;", "(binary (binary x := x) + 1)"},
		{"1 + (2 * 3);", "(binary 1 + (paren (binary 2 * 3)))"},
	}

	for _, c := range cases {
		program, err := parse(t, c.input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.input, err)
		}
		if diff := cmp.Diff("(program "+c.want+")", program.String()); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestPrecedence(t *testing.T) {
	t.Parallel()

	if parser.Precedence(token.STAR) <= parser.Precedence(token.PLUS) {
		t.Error("`*` should bind tighter than `+`")
	}
	if got := parser.Precedence(token.SEMICOLON); got != 0 {
		t.Errorf("Precedence(SEMICOLON) = %d, want 0", got)
	}
}

func TestParseExpr(t *testing.T) {
	t.Parallel()

	expr, err := parser.NewParser("test.sr", lexer.Lex("f(1, 2)[0]")).ParseExpr()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("(member (call f 1 2) 0)", expr.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := parser.NewParser("test.sr", lexer.Lex("1 2")).ParseExpr(); err == nil {
		t.Error("ParseExpr accepted trailing tokens")
	}
}

func FuzzParse(f *testing.F) {
	s, err := os.ReadFile("testdata/testcase.yaml")
	if err != nil {
		f.Fatal(err)
	}
	testcases, err := utils.ReadTestData(s)
	if err != nil {
		f.Fatal(err)
	}
	for _, testcase := range testcases {
		f.Add(testcase.Input)
	}

	f.Fuzz(func(t *testing.T, input string) {
		program, err := parser.NewParser("fuzz.sr", lexer.Lex(input)).Parse()
		if err == nil {
			_ = program.String()
			return
		}

		var d *diag.Diagnostic
		if !errors.As(err, &d) {
			t.Errorf("error %T is not a *diag.Diagnostic", err)
		}
	})
}
