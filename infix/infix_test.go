package infix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scorch-lang/scorch/infix"
	"github.com/scorch-lang/scorch/lexer"
	"github.com/scorch-lang/scorch/parser"
)

func completeInfix(t *testing.T, input, expected string) {
	t.Helper()

	program, err := parser.NewParser("test.sr", lexer.Lex(input)).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}

	actual := infix.NewResolver(parser.Precedence).Run(program).String()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("Run(%q) mismatch (-want +got):\n%s", input, diff)
	}
}

func TestInfix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3;", "(program (binary 1 + (binary 2 * 3)))"},
		{"1 * 2 + 3;", "(program (binary (binary 1 * 2) + 3))"},
		{"1 - 2 - 3;", "(program (binary (binary 1 - 2) - 3))"},
		{"x := x + 1;", "(program (binary x := (binary x + 1)))"},
		{"a || b == c + d * e;", "(program (binary a || (binary b == (binary c + (binary d * e)))))"},
		{"(1 + 2) * 3;", "(program (binary (paren (binary 1 + 2)) * 3))"},
		{"f(1 + 2 * 3);", "(program (call f (binary 1 + (binary 2 * 3))))"},
		{
			"let y := a + b * c; if a < b + 1 then end",
			"(program (let y Unknown (binary a + (binary b * c))) (if (binary a < (binary b + 1)) (block) (block)))",
		},
	}

	for _, c := range cases {
		completeInfix(t, c.input, c.expected)
	}
}

func TestRunExpr(t *testing.T) {
	t.Parallel()

	expr, err := parser.NewParser("test.sr", lexer.Lex("-a + b as Float")).ParseExpr()
	if err != nil {
		t.Fatal(err)
	}

	got := infix.NewResolver(parser.Precedence).RunExpr(expr).String()
	if diff := cmp.Diff("(binary (unary - a) + (binary b as Float))", got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
