package ast

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/scorch-lang/scorch/token"
)

// Node is any piece of the syntax tree. Every node prints as an
// S-expression; maps are printed in key order so output is deterministic.
type Node interface {
	fmt.Stringer
	node()
}

// Expressions

//sumtype:decl
type Expr interface {
	Node
	expr()
}

type Integer struct {
	Value int64
}

func (i Integer) String() string {
	return strconv.FormatInt(i.Value, 10)
}

type Float struct {
	Value float64
}

func (f Float) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

type String struct {
	Value string
}

func (s String) String() string {
	return strconv.Quote(s.Value)
}

type Boolean struct {
	Value bool
}

func (b Boolean) String() string {
	return strconv.FormatBool(b.Value)
}

type Nil struct{}

func (Nil) String() string {
	return "nil"
}

type Identifier struct {
	Name string
}

func (i Identifier) String() string {
	return i.Name
}

type Array struct {
	Elems []Expr
}

func (a Array) String() string {
	return parenthesize("array", concat(a.Elems)).String()
}

type Unary struct {
	Op      token.Kind
	Operand Expr
}

func (u Unary) String() string {
	return parenthesize("unary", text(u.Op.Spelling()), u.Operand).String()
}

type Binary struct {
	Left  Expr
	Op    token.Kind
	Right Expr
}

func (b Binary) String() string {
	return parenthesize("binary", b.Left, text(b.Op.Spelling()), b.Right).String()
}

// Enclosed is a parenthesized expression.
type Enclosed struct {
	Inner Expr
}

func (e Enclosed) String() string {
	return parenthesize("paren", e.Inner).String()
}

// Member is both `base.key` and `base[key]`.
type Member struct {
	Base Expr
	Key  Expr
}

func (m Member) String() string {
	return parenthesize("member", m.Base, m.Key).String()
}

type FunctionCall struct {
	Callee Expr
	Args   []Expr
}

func (c FunctionCall) String() string {
	return parenthesize("call", c.Callee, concat(c.Args)).String()
}

// StructInstantiation is `Name { field := expr, ... }`.
type StructInstantiation struct {
	Name   string
	Fields map[string]Expr
}

func (s StructInstantiation) String() string {
	return parenthesize("struct", text(s.Name), concat(fields(s.Fields))).String()
}

// New is an anonymous struct value.
type New struct {
	Fields map[string]Expr
}

func (n New) String() string {
	return parenthesize("new", concat(fields(n.Fields))).String()
}

// Proc is an anonymous function literal.
type Proc struct {
	Params map[string]Type
	Body   []Stmt
}

func (p Proc) String() string {
	return parenthesize("proc", parenthesize("params", concat(fields(p.Params))), concat(p.Body)).String()
}

// Types

//sumtype:decl
type Type interface {
	Node
	typ()
}

type TypeName struct {
	Name string
}

func (t TypeName) String() string {
	return t.Name
}

// TemplateType is a generic instantiation `Name<T, ...>`.
type TemplateType struct {
	Name string
	Args []Type
}

func (t TemplateType) String() string {
	return t.Name + "<" + join(t.Args) + ">"
}

// FuncPointerType is `Name(T, ...)`, Name being the return type.
type FuncPointerType struct {
	Name   string
	Params []Type
}

func (t FuncPointerType) String() string {
	return t.Name + "(" + join(t.Params) + ")"
}

// Type definitions, the right-hand side of a type declaration.

//sumtype:decl
type DType interface {
	Node
	dtype()
}

type StructType struct {
	Fields map[string]Type
}

func (s StructType) String() string {
	return parenthesize("struct", concat(fields(s.Fields))).String()
}

// CustomType is a type alias.
type CustomType struct {
	Type Type
}

func (c CustomType) String() string {
	return c.Type.String()
}

// Statements

//sumtype:decl
type Stmt interface {
	Node
	stmt()
}

type Empty struct{}

func (Empty) String() string {
	return "(empty)"
}

type Variable struct {
	Name    string
	Type    Type
	Init    Expr
	IsConst bool
}

func (v Variable) String() string {
	head := "let"
	if v.IsConst {
		head = "const"
	}
	return parenthesize(head, text(v.Name), v.Type, v.Init).String()
}

type Function struct {
	Name       string
	Params     map[string]Type
	ReturnType Type
	Body       []Stmt
}

func (f Function) String() string {
	return parenthesize("fn", text(f.Name), parenthesize("params", concat(fields(f.Params))), f.ReturnType, concat(f.Body)).String()
}

type Program struct {
	Stmts []Stmt
}

func (p Program) String() string {
	return parenthesize("program", concat(p.Stmts)).String()
}

type Block struct {
	Stmts []Stmt
}

func (b Block) String() string {
	return parenthesize("block", concat(b.Stmts)).String()
}

// If holds elif branches as nested *If nodes at the front of Else.
type If struct {
	Cond Expr
	Then *Block
	Else *Block
}

func (i If) String() string {
	return parenthesize("if", i.Cond, i.Then, i.Else).String()
}

type Return struct {
	Value Expr
}

func (r Return) String() string {
	return parenthesize("return", r.Value).String()
}

// Do is `loop, do ... end`.
type Do struct {
	Body []Stmt
}

func (d Do) String() string {
	return parenthesize("do", concat(d.Body)).String()
}

// For is `loop, for elem, index := iterable begin ... end`.
type For struct {
	Elem     string
	Index    string
	Iterable Expr
	Body     []Stmt
}

func (f For) String() string {
	return parenthesize("for", text(f.Elem), text(f.Index), f.Iterable, concat(f.Body)).String()
}

// Times is `loop, recur count ... end`.
type Times struct {
	Count Expr
	Body  []Stmt
}

func (t Times) String() string {
	return parenthesize("recur", t.Count, concat(t.Body)).String()
}

type Pub struct {
	Decl Stmt
}

func (p Pub) String() string {
	return parenthesize("pub", p.Decl).String()
}

type ExprStmt struct {
	Expr Expr
}

func (e ExprStmt) String() string {
	return e.Expr.String()
}

type While struct {
	Cond Expr
	Body []Stmt
}

func (w While) String() string {
	return parenthesize("while", w.Cond, concat(w.Body)).String()
}

type TypeDecl struct {
	Name Type
	Def  DType
}

func (t TypeDecl) String() string {
	return parenthesize("type", t.Name, t.Def).String()
}

type Import struct {
	Names []string
}

func (i Import) String() string {
	names := make([]text, len(i.Names))
	for j, n := range i.Names {
		names[j] = text(n)
	}
	return parenthesize("import", concat(names)).String()
}

func (*Integer) node()             {}
func (*Float) node()               {}
func (*String) node()              {}
func (*Boolean) node()             {}
func (*Nil) node()                 {}
func (*Identifier) node()          {}
func (*Array) node()               {}
func (*Unary) node()               {}
func (*Binary) node()              {}
func (*Enclosed) node()            {}
func (*Member) node()              {}
func (*FunctionCall) node()        {}
func (*StructInstantiation) node() {}
func (*New) node()                 {}
func (*Proc) node()                {}
func (*TypeName) node()            {}
func (*TemplateType) node()        {}
func (*FuncPointerType) node()     {}
func (*StructType) node()          {}
func (*CustomType) node()          {}
func (*Empty) node()               {}
func (*Variable) node()            {}
func (*Function) node()            {}
func (*Program) node()             {}
func (*Block) node()               {}
func (*If) node()                  {}
func (*Return) node()              {}
func (*Do) node()                  {}
func (*For) node()                 {}
func (*Times) node()               {}
func (*Pub) node()                 {}
func (*ExprStmt) node()            {}
func (*While) node()               {}
func (*TypeDecl) node()            {}
func (*Import) node()              {}

func (*Integer) expr()             {}
func (*Float) expr()               {}
func (*String) expr()              {}
func (*Boolean) expr()             {}
func (*Nil) expr()                 {}
func (*Identifier) expr()          {}
func (*Array) expr()               {}
func (*Unary) expr()               {}
func (*Binary) expr()              {}
func (*Enclosed) expr()            {}
func (*Member) expr()              {}
func (*FunctionCall) expr()        {}
func (*StructInstantiation) expr() {}
func (*New) expr()                 {}
func (*Proc) expr()                {}

func (*TypeName) typ()        {}
func (*TemplateType) typ()    {}
func (*FuncPointerType) typ() {}

func (*StructType) dtype() {}
func (*CustomType) dtype() {}

func (*Empty) stmt()    {}
func (*Variable) stmt() {}
func (*Function) stmt() {}
func (*Program) stmt()  {}
func (*Block) stmt()    {}
func (*If) stmt()       {}
func (*Return) stmt()   {}
func (*Do) stmt()       {}
func (*For) stmt()      {}
func (*Times) stmt()    {}
func (*Pub) stmt()      {}
func (*ExprStmt) stmt() {}
func (*While) stmt()    {}
func (*TypeDecl) stmt() {}
func (*Import) stmt()   {}

type text string

func (t text) String() string {
	return string(t)
}

type field struct {
	name  string
	value fmt.Stringer
}

func (f field) String() string {
	return parenthesize(f.name, f.value).String()
}

// fields returns the entries of m sorted by key.
func fields[T fmt.Stringer](m map[string]T) []field {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fs := make([]field, len(keys))
	for i, k := range keys {
		fs[i] = field{name: k, value: m[k]}
	}
	return fs
}

func join[T fmt.Stringer](elems []T) string {
	strs := make([]string, len(elems))
	for i, elem := range elems {
		strs[i] = elem.String()
	}
	return strings.Join(strs, ", ")
}

// parenthesize takes a head string and a variadic number of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is parenthesized and separated by a space.
// If the head string is not empty, it is added at the beginning of the string.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")
	return &b
}

// concat takes a slice of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each non-empty node is separated by a space.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for _, elem := range elems {
		str := elem.String()
		if str == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(str)
	}
	return &b
}
