package ast

import (
	"fmt"
	"sort"
)

// Inspect traverses the tree rooted at n in depth-first order. It calls
// f(n) first; if f returns true, Inspect recurses into each child of n.
// Map entries are visited in key order.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch n := n.(type) {
	case *Integer, *Float, *String, *Boolean, *Nil, *Identifier, *TypeName, *Empty, *Import:
		// leaves
	case *Array:
		inspectAll(n.Elems, f)
	case *Unary:
		Inspect(n.Operand, f)
	case *Binary:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *Enclosed:
		Inspect(n.Inner, f)
	case *Member:
		Inspect(n.Base, f)
		Inspect(n.Key, f)
	case *FunctionCall:
		Inspect(n.Callee, f)
		inspectAll(n.Args, f)
	case *StructInstantiation:
		inspectMap(n.Fields, f)
	case *New:
		inspectMap(n.Fields, f)
	case *Proc:
		inspectMap(n.Params, f)
		inspectAll(n.Body, f)
	case *TemplateType:
		inspectAll(n.Args, f)
	case *FuncPointerType:
		inspectAll(n.Params, f)
	case *StructType:
		inspectMap(n.Fields, f)
	case *CustomType:
		Inspect(n.Type, f)
	case *Variable:
		Inspect(n.Type, f)
		Inspect(n.Init, f)
	case *Function:
		inspectMap(n.Params, f)
		Inspect(n.ReturnType, f)
		inspectAll(n.Body, f)
	case *Program:
		inspectAll(n.Stmts, f)
	case *Block:
		inspectAll(n.Stmts, f)
	case *If:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		Inspect(n.Else, f)
	case *Return:
		Inspect(n.Value, f)
	case *Do:
		inspectAll(n.Body, f)
	case *For:
		Inspect(n.Iterable, f)
		inspectAll(n.Body, f)
	case *Times:
		Inspect(n.Count, f)
		inspectAll(n.Body, f)
	case *Pub:
		Inspect(n.Decl, f)
	case *ExprStmt:
		Inspect(n.Expr, f)
	case *While:
		Inspect(n.Cond, f)
		inspectAll(n.Body, f)
	case *TypeDecl:
		Inspect(n.Name, f)
		Inspect(n.Def, f)
	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node type %T", n))
	}
}

func inspectAll[T Node](nodes []T, f func(Node) bool) {
	for _, n := range nodes {
		Inspect(n, f)
	}
}

func inspectMap[T Node](m map[string]T, f func(Node) bool) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		Inspect(m[k], f)
	}
}

// Transform rewrites the tree rooted at n bottom-up. The children of n are
// replaced by their transformed versions first, then f is applied to n.
// f must return a node of the same category as its argument: an Expr for an
// Expr, a *Block for a *Block, and so on.
func Transform(n Node, f func(Node) Node) Node {
	switch n := n.(type) {
	case *Integer, *Float, *String, *Boolean, *Nil, *Identifier, *TypeName, *Empty, *Import:
		// leaves
	case *Array:
		transformAll(n.Elems, f)
	case *Unary:
		n.Operand = Transform(n.Operand, f).(Expr)
	case *Binary:
		n.Left = Transform(n.Left, f).(Expr)
		n.Right = Transform(n.Right, f).(Expr)
	case *Enclosed:
		n.Inner = Transform(n.Inner, f).(Expr)
	case *Member:
		n.Base = Transform(n.Base, f).(Expr)
		n.Key = Transform(n.Key, f).(Expr)
	case *FunctionCall:
		n.Callee = Transform(n.Callee, f).(Expr)
		transformAll(n.Args, f)
	case *StructInstantiation:
		transformMap(n.Fields, f)
	case *New:
		transformMap(n.Fields, f)
	case *Proc:
		transformMap(n.Params, f)
		transformAll(n.Body, f)
	case *TemplateType:
		transformAll(n.Args, f)
	case *FuncPointerType:
		transformAll(n.Params, f)
	case *StructType:
		transformMap(n.Fields, f)
	case *CustomType:
		n.Type = Transform(n.Type, f).(Type)
	case *Variable:
		n.Type = Transform(n.Type, f).(Type)
		n.Init = Transform(n.Init, f).(Expr)
	case *Function:
		transformMap(n.Params, f)
		n.ReturnType = Transform(n.ReturnType, f).(Type)
		transformAll(n.Body, f)
	case *Program:
		transformAll(n.Stmts, f)
	case *Block:
		transformAll(n.Stmts, f)
	case *If:
		n.Cond = Transform(n.Cond, f).(Expr)
		n.Then = Transform(n.Then, f).(*Block)
		n.Else = Transform(n.Else, f).(*Block)
	case *Return:
		n.Value = Transform(n.Value, f).(Expr)
	case *Do:
		transformAll(n.Body, f)
	case *For:
		n.Iterable = Transform(n.Iterable, f).(Expr)
		transformAll(n.Body, f)
	case *Times:
		n.Count = Transform(n.Count, f).(Expr)
		transformAll(n.Body, f)
	case *Pub:
		n.Decl = Transform(n.Decl, f).(Stmt)
	case *ExprStmt:
		n.Expr = Transform(n.Expr, f).(Expr)
	case *While:
		n.Cond = Transform(n.Cond, f).(Expr)
		transformAll(n.Body, f)
	case *TypeDecl:
		n.Name = Transform(n.Name, f).(Type)
		n.Def = Transform(n.Def, f).(DType)
	default:
		panic(fmt.Sprintf("ast.Transform: unexpected node type %T", n))
	}

	return f(n)
}

func transformAll[T Node](nodes []T, f func(Node) Node) {
	for i, n := range nodes {
		nodes[i] = Transform(n, f).(T)
	}
}

func transformMap[T Node](m map[string]T, f func(Node) Node) {
	for k, n := range m {
		m[k] = Transform(n, f).(T)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	count := 0
	Inspect(n, func(Node) bool {
		count++
		return true
	})
	return count
}
