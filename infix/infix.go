// Package infix regroups binary expressions by operator precedence.
//
// After parsing, every binary chain is folded left to right as if all
// operators had the same precedence. Resolver rebuilds those chains so that
// tighter operators bind first. Operators of equal precedence stay
// left-associative and parenthesized expressions are never split.
package infix

import (
	"github.com/scorch-lang/scorch/ast"
	"github.com/scorch-lang/scorch/token"
)

type Resolver struct {
	prec func(token.Kind) int
}

// NewResolver creates a resolver using prec as the binding strength of each
// operator, typically parser.Precedence.
func NewResolver(prec func(token.Kind) int) *Resolver {
	return &Resolver{prec: prec}
}

// Run regroups every binary chain under n in place and returns the new root.
func (r *Resolver) Run(n ast.Node) ast.Node {
	return ast.Transform(n, func(n ast.Node) ast.Node {
		if b, ok := n.(*ast.Binary); ok {
			return r.mkBinary(b.Op, b.Left, b.Right)
		}

		return n
	})
}

// RunExpr is Run for a bare expression.
func (r *Resolver) RunExpr(expr ast.Expr) ast.Expr {
	return r.Run(expr).(ast.Expr)
}

func (r *Resolver) mkBinary(op token.Kind, left, right ast.Expr) ast.Expr {
	// (left.Left left.Op left.Right) op right
	if left, ok := left.(*ast.Binary); ok && r.assocRight(left.Op, op) {
		// left.Left left.Op (left.Right op right)
		return &ast.Binary{Left: left.Left, Op: left.Op, Right: r.mkBinary(op, left.Right, right)}
	}

	return &ast.Binary{Left: left, Op: op, Right: right}
}

// assocRight reports whether op2 binds tighter than op1, the operator to
// its left.
func (r *Resolver) assocRight(op1, op2 token.Kind) bool {
	return r.prec(op1) < r.prec(op2)
}
