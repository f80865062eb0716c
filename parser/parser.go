package parser

import (
	"strconv"

	"github.com/scorch-lang/scorch/ast"
	"github.com/scorch-lang/scorch/diag"
	"github.com/scorch-lang/scorch/token"
)

// precedences is the binding strength of each binary operator. Tokens not
// listed bind with 0 and end a binary expression. Read-only after init.
var precedences = map[token.Kind]int{
	token.COLON:        90,
	token.AS:           85,
	token.STAR:         80,
	token.SLASH:        80,
	token.PERCENT:      80,
	token.PLUS:         70,
	token.MINUS:        70,
	token.CONCAT:       70,
	token.LEFTANGLE:    60,
	token.RIGHTANGLE:   60,
	token.LESSEQUAL:    60,
	token.GREATEREQUAL: 60,
	token.EQUALEQUAL:   50,
	token.BANGEQUAL:    50,
	token.AND:          40,
	token.OR:           40,
	token.PLUSEQUAL:    30,
	token.MINUSEQUAL:   30,
	token.MUTASSIGN:    30,
}

type Parser struct {
	tokens  []token.Token
	current int
	file    string
	prec    map[token.Kind]int

	lexical diag.List
}

// NewParser creates a parser for the tokens of file. A missing trailing EOF
// is supplied.
func NewParser(file string, tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		var end token.Position
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].Pos
		} else {
			end = token.Position{Line: 1, Column: 1}
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.Token{Kind: token.EOF, Pos: end})
	}

	return &Parser{tokens: tokens, file: file, prec: precedences}
}

// Precedence returns the binding strength of a binary operator, or 0 for
// tokens that are not one.
func Precedence(kind token.Kind) int {
	return precedences[kind]
}

// Parse parses a whole program. If the tokens contain lexical errors no
// grammar rule runs and the first of them is returned; Lexical lists all.
// Otherwise the first syntax error aborts parsing.
func (p *Parser) Parse() (*ast.Program, error) {
	if err := p.checkLexical(); err != nil {
		return nil, err
	}

	program := &ast.Program{}
	for !p.IsAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		program.Stmts = append(program.Stmts, stmt)
	}

	return program, nil
}

// ParseExpr parses a single expression spanning all tokens.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	if err := p.checkLexical(); err != nil {
		return nil, err
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.IsAtEnd() {
		return nil, p.expected(token.EOF.Quoted())
	}

	return expr, nil
}

// Lexical returns the diagnostics of every error sentinel in the tokens,
// in source order.
func (p *Parser) Lexical() diag.List {
	return p.lexical
}

var sentinels = map[token.Kind]diag.Kind{
	token.INVALIDFLOAT:       diag.InvalidFloat,
	token.INVALIDSTRING:      diag.InvalidString,
	token.INVALIDTOKEN:       diag.InvalidToken,
	token.UNTERMINATEDSTRING: diag.UnterminatedString,
}

func (p *Parser) checkLexical() error {
	p.lexical = nil
	for _, tok := range p.tokens {
		if !tok.IsError() {
			continue
		}

		at := tok.ErrorPos()
		p.lexical = append(p.lexical, diag.Lexical(sentinels[tok.Kind], p.file, at.Line, at.Column))
	}

	if len(p.lexical) > 0 {
		return p.lexical[0]
	}

	return nil
}

// statement = letStmt | returnStmt | ifStmt | typeStmt | loopStmt | importStmt | ";" | pubStmt | exprStmt ;
func (p *Parser) statement() (ast.Stmt, error) {
	//exhaustive:ignore
	switch p.peek().Kind {
	case token.LET:
		return p.letStmt()
	case token.RETURN:
		return p.returnStmt()
	case token.IF:
		return p.ifStmt()
	case token.TYPE:
		return p.typeStmt()
	case token.LOOP:
		return p.loopStmt()
	case token.IMPORT:
		return p.importStmt()
	case token.SEMICOLON:
		p.advance()

		return &ast.Empty{}, nil
	case token.PUB:
		return p.pubStmt()
	default:
		return p.exprStmt()
	}
}

// stmts parses statements up to, not including, one of the given kinds.
func (p *Parser) stmts(until ...token.Kind) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.IsAtEnd() && !p.matchAny(until...) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// body = stmts "end" ;
func (p *Parser) body() ([]ast.Stmt, error) {
	stmts, err := p.stmts(token.END)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.END); err != nil {
		return nil, err
	}

	return stmts, nil
}

// exprStmt = expr ";" ;
func (p *Parser) exprStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.ExprStmt{Expr: expr}, nil
}

// pubStmt = "pub" (typeStmt | letStmt) ;
func (p *Parser) pubStmt() (ast.Stmt, error) {
	p.advance()

	var decl ast.Stmt
	var err error

	//exhaustive:ignore
	switch p.peek().Kind {
	case token.TYPE:
		decl, err = p.typeStmt()
	case token.LET:
		decl, err = p.letStmt()
	default:
		return nil, p.expected(token.TYPE.Quoted(), token.LET.Quoted())
	}
	if err != nil {
		return nil, err
	}

	return &ast.Pub{Decl: decl}, nil
}

// returnStmt = "return" expr ";" ;
func (p *Parser) returnStmt() (ast.Stmt, error) {
	p.advance()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.Return{Value: expr}, nil
}

// letStmt = "let" IDENT (funcDecl | varDecl) ;
func (p *Parser) letStmt() (ast.Stmt, error) {
	p.advance()
	name, err := p.consume(token.IDENT)
	if err != nil {
		return nil, err
	}
	if p.match(token.LEFTPAREN) {
		return p.funcDecl(name.Text())
	}

	return p.varDecl(name.Text())
}

// funcDecl = "(" (IDENT ":" type ","?)* ")" ("~" type)? "::" "begin" body ;
func (p *Parser) funcDecl(name string) (ast.Stmt, error) {
	p.advance()
	params := map[string]ast.Type{}
	for !p.IsAtEnd() && !p.match(token.RIGHTPAREN) {
		param, err := p.consume(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.typ()
		if err != nil {
			return nil, err
		}
		params[param.Text()] = typ

		if p.match(token.COMMA) {
			p.advance()
		}
	}
	if _, err := p.consume(token.RIGHTPAREN); err != nil {
		return nil, err
	}

	var ret ast.Type = &ast.TypeName{Name: "Void"}
	if p.match(token.TILDE) {
		p.advance()
		typ, err := p.typ()
		if err != nil {
			return nil, err
		}
		ret = typ
	}

	if _, err := p.consume(token.CONSTASSIGN); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.body()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Name: name, Params: params, ReturnType: ret, Body: body}, nil
}

// varDecl = ("~" type)? (":=" | "::") expr ";" ;
func (p *Parser) varDecl(name string) (ast.Stmt, error) {
	var typ ast.Type = &ast.TypeName{Name: "Unknown"}
	if p.match(token.TILDE) {
		p.advance()
		t, err := p.typ()
		if err != nil {
			return nil, err
		}
		typ = t
	}

	var isConst bool

	//exhaustive:ignore
	switch p.peek().Kind {
	case token.MUTASSIGN:
		isConst = false
	case token.CONSTASSIGN:
		isConst = true
	default:
		return nil, p.expected(token.MUTASSIGN.Quoted(), token.CONSTASSIGN.Quoted())
	}
	p.advance()

	init, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.Variable{Name: name, Type: typ, Init: init, IsConst: isConst}, nil
}

// ifStmt = "if" condition "then" stmts ("elif" condition "then" stmts)* ("else" stmts)? "end" ;
//
// Each elif becomes an *ast.If with an empty else block, appended to the
// else block of the outer node ahead of the else statements.
func (p *Parser) ifStmt() (ast.Stmt, error) {
	p.advance()
	cond, then, err := p.branch()
	if err != nil {
		return nil, err
	}

	var alternative []ast.Stmt
loop:
	for !p.IsAtEnd() {
		//exhaustive:ignore
		switch p.peek().Kind {
		case token.ELIF:
			p.advance()
			elifCond, elifThen, err := p.branch()
			if err != nil {
				return nil, err
			}
			alternative = append(alternative, &ast.If{
				Cond: elifCond,
				Then: &ast.Block{Stmts: elifThen},
				Else: &ast.Block{},
			})
		case token.ELSE:
			p.advance()
			stmts, err := p.stmts(token.END)
			if err != nil {
				return nil, err
			}
			alternative = append(alternative, stmts...)

			break loop
		case token.END:
			break loop
		default:
			return nil, p.expected(token.ELSE.Quoted(), token.ELIF.Quoted(), token.END.Quoted())
		}
	}

	if _, err := p.consume(token.END); err != nil {
		return nil, err
	}

	return &ast.If{
		Cond: cond,
		Then: &ast.Block{Stmts: then},
		Else: &ast.Block{Stmts: alternative},
	}, nil
}

// branch = condition "then" stmts ;
func (p *Parser) branch() (ast.Expr, []ast.Stmt, error) {
	cond, err := p.condition()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.consume(token.THEN); err != nil {
		return nil, nil, err
	}
	stmts, err := p.stmts(token.ELSE, token.ELIF, token.END)
	if err != nil {
		return nil, nil, err
	}

	return cond, stmts, nil
}

// condition = "(" expr ")" | expr ;
func (p *Parser) condition() (ast.Expr, error) {
	if !p.match(token.LEFTPAREN) {
		return p.expression()
	}

	p.advance()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHTPAREN); err != nil {
		return nil, err
	}

	return expr, nil
}

// typeStmt = "type" type (type | structType) ;
func (p *Parser) typeStmt() (ast.Stmt, error) {
	p.advance()
	at := p.peek()
	name, err := p.typ()
	if err != nil {
		return nil, err
	}
	if _, ok := name.(*ast.FuncPointerType); ok {
		return nil, p.errorAt(at, "type name", "function pointer type `"+name.String()+"`")
	}

	var def ast.DType

	//exhaustive:ignore
	switch p.peek().Kind {
	case token.IDENT:
		typ, err := p.typ()
		if err != nil {
			return nil, err
		}
		def = &ast.CustomType{Type: typ}
	case token.STRUCT:
		def, err = p.structType()
		if err != nil {
			return nil, err
		}
	default:
		return nil, p.expected(token.STRUCT.Quoted(), token.IDENT.Quoted())
	}

	return &ast.TypeDecl{Name: name, Def: def}, nil
}

// structType = "struct" (IDENT ":" type ("," IDENT ":" type)*)? "end" ;
func (p *Parser) structType() (ast.DType, error) {
	p.advance()
	fields := map[string]ast.Type{}
	for !p.IsAtEnd() && !p.match(token.END) {
		name, err := p.consume(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.typ()
		if err != nil {
			return nil, err
		}
		fields[name.Text()] = typ

		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.consume(token.END); err != nil {
		return nil, err
	}

	return &ast.StructType{Fields: fields}, nil
}

// importStmt = "import" (importSpec ("," importSpec)*)? ";" ;
// importSpec = IDENT ("as" IDENT)? ;
func (p *Parser) importStmt() (ast.Stmt, error) {
	p.advance()
	var names []string
	for !p.IsAtEnd() && !p.match(token.SEMICOLON) {
		name, err := p.consume(token.IDENT)
		if err != nil {
			return nil, err
		}
		if p.match(token.AS) {
			p.advance()
			name, err = p.consume(token.IDENT)
			if err != nil {
				return nil, err
			}
		}
		names = append(names, name.Text())

		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.Import{Names: names}, nil
}

// loopStmt = "loop" "," (doLoop | forLoop | recurLoop | whileLoop) ;
// doLoop = "do" body ;
// recurLoop = "recur" expr body ;
// whileLoop = "while" expr body ;
func (p *Parser) loopStmt() (ast.Stmt, error) {
	p.advance()
	if _, err := p.consume(token.COMMA); err != nil {
		return nil, err
	}

	//exhaustive:ignore
	switch p.peek().Kind {
	case token.DO:
		p.advance()
		body, err := p.body()
		if err != nil {
			return nil, err
		}

		return &ast.Do{Body: body}, nil
	case token.FOR:
		return p.forLoop()
	case token.RECUR:
		p.advance()
		count, err := p.expression()
		if err != nil {
			return nil, err
		}
		body, err := p.body()
		if err != nil {
			return nil, err
		}

		return &ast.Times{Count: count, Body: body}, nil
	case token.WHILE:
		p.advance()
		cond, err := p.expression()
		if err != nil {
			return nil, err
		}
		body, err := p.body()
		if err != nil {
			return nil, err
		}

		return &ast.While{Cond: cond, Body: body}, nil
	default:
		return nil, p.expected(token.DO.Quoted(), token.FOR.Quoted(), token.RECUR.Quoted(), token.WHILE.Quoted())
	}
}

// forLoop = "for" IDENT "," IDENT ":=" expr "begin" body ;
func (p *Parser) forLoop() (ast.Stmt, error) {
	p.advance()
	elem, err := p.consume(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COMMA); err != nil {
		return nil, err
	}
	index, err := p.consume(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.MUTASSIGN); err != nil {
		return nil, err
	}
	iterable, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.body()
	if err != nil {
		return nil, err
	}

	return &ast.For{Elem: elem.Text(), Index: index.Text(), Iterable: iterable, Body: body}, nil
}

// expr = binary ;
func (p *Parser) expression() (ast.Expr, error) {
	return p.binary(0)
}

// binary = unary (operator unary)* ;
//
// The chain folds left to right whatever the operators' precedence:
// `1 + 2 * 3` is `(1 + 2) * 3`. infix.Resolver regroups it.
func (p *Parser) binary(precedence int) (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for precedence < p.precedence() {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		left = &ast.Binary{Left: left, Op: op.Kind, Right: right}
	}

	return left, nil
}

func (p *Parser) precedence() int {
	return p.prec[p.peek().Kind]
}

// unary = ("-" | "!" | "?" | "&" | "*" | "@") unary | primary ;
func (p *Parser) unary() (ast.Expr, error) {
	//exhaustive:ignore
	switch p.peek().Kind {
	case token.MINUS, token.BANG, token.QUESTION, token.CONCAT, token.STAR, token.AT:
		op := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &ast.Unary{Op: op.Kind, Operand: operand}, nil
	default:
		return p.primary()
	}
}

// primary = procExpr | atom (callTail | indexTail | accessTail)* structTail? ;
func (p *Parser) primary() (ast.Expr, error) {
	if p.match(token.PROC) {
		return p.procExpr()
	}

	expr, err := p.atom()
	if err != nil {
		return nil, err
	}

	for {
		//exhaustive:ignore
		switch p.peek().Kind {
		case token.LEFTPAREN:
			expr, err = p.callTail(expr)
		case token.LEFTBRACKET:
			expr, err = p.indexTail(expr)
		case token.DOT:
			expr, err = p.accessTail(expr)
		case token.LEFTBRACE:
			return p.structTail(expr)
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// atom = NUMBER | FLOAT | STRING | "true" | "false" | "nil" | IDENT | "(" expr ")" | array | newExpr ;
func (p *Parser) atom() (ast.Expr, error) {
	tok := p.peek()

	//exhaustive:ignore
	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		value, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return nil, p.errorAt(tok, "64-bit integer", describe(tok))
		}

		return &ast.Integer{Value: value}, nil
	case token.FLOAT:
		p.advance()
		value, err := strconv.ParseFloat(tok.Text(), 64)
		if err != nil {
			return nil, p.errorAt(tok, "64-bit float", describe(tok))
		}

		return &ast.Float{Value: value}, nil
	case token.STRING:
		p.advance()

		return &ast.String{Value: tok.Text()}, nil
	case token.TRUE, token.FALSE:
		p.advance()

		return &ast.Boolean{Value: tok.Kind == token.TRUE}, nil
	case token.NIL:
		p.advance()

		return &ast.Nil{}, nil
	case token.IDENT:
		p.advance()

		return &ast.Identifier{Name: tok.Text()}, nil
	case token.LEFTPAREN:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHTPAREN); err != nil {
			return nil, err
		}

		return &ast.Enclosed{Inner: inner}, nil
	case token.LEFTBRACE:
		return p.array()
	case token.NEW:
		return p.newExpr()
	default:
		return nil, p.expected("expression")
	}
}

// array = "{" (expr ("," expr)* ","?)? "}" ;
func (p *Parser) array() (ast.Expr, error) {
	p.advance()
	var elems []ast.Expr
	for !p.IsAtEnd() && !p.match(token.RIGHTBRACE) {
		elem, err := p.expression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.consume(token.RIGHTBRACE); err != nil {
		return nil, err
	}

	return &ast.Array{Elems: elems}, nil
}

// procExpr = "proc" "=>" "(" (IDENT ":" type ("," IDENT ":" type)*)? ")" "{" stmts "}" ;
func (p *Parser) procExpr() (ast.Expr, error) {
	p.advance()
	if _, err := p.consume(token.FATARROW); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFTPAREN); err != nil {
		return nil, err
	}

	params := map[string]ast.Type{}
	for !p.IsAtEnd() && !p.match(token.RIGHTPAREN) {
		name, err := p.consume(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.typ()
		if err != nil {
			return nil, err
		}
		params[name.Text()] = typ

		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.consume(token.RIGHTPAREN); err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LEFTBRACE); err != nil {
		return nil, err
	}
	body, err := p.stmts(token.RIGHTBRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHTBRACE); err != nil {
		return nil, err
	}

	return &ast.Proc{Params: params, Body: body}, nil
}

// newExpr = "new" "{" fieldInits "}" "end" | "new" fieldInits "end" ;
func (p *Parser) newExpr() (ast.Expr, error) {
	p.advance()

	braced := p.match(token.LEFTBRACE)
	closer := token.END
	if braced {
		p.advance()
		closer = token.RIGHTBRACE
	}

	fields, err := p.fieldInits(closer)
	if err != nil {
		return nil, err
	}
	if braced {
		if _, err := p.consume(token.RIGHTBRACE); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.END); err != nil {
		return nil, err
	}

	return &ast.New{Fields: fields}, nil
}

// fieldInits = (IDENT ":=" expr ("," IDENT ":=" expr)*)? ;
//
// A repeated field name keeps the last value.
func (p *Parser) fieldInits(closer token.Kind) (map[string]ast.Expr, error) {
	fields := map[string]ast.Expr{}
	for !p.IsAtEnd() && !p.match(closer) {
		name, err := p.consume(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.MUTASSIGN); err != nil {
			return nil, err
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		fields[name.Text()] = value

		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}

	return fields, nil
}

// callTail = "(" (expr ","?)* ")" ;
func (p *Parser) callTail(callee ast.Expr) (ast.Expr, error) {
	p.advance()
	var args []ast.Expr
	for !p.IsAtEnd() && !p.match(token.RIGHTPAREN) {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.match(token.COMMA) {
			p.advance()
		}
	}
	if _, err := p.consume(token.RIGHTPAREN); err != nil {
		return nil, err
	}

	return &ast.FunctionCall{Callee: callee, Args: args}, nil
}

// indexTail = "[" expr "]" ;
func (p *Parser) indexTail(base ast.Expr) (ast.Expr, error) {
	p.advance()
	key, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHTBRACKET); err != nil {
		return nil, err
	}

	return &ast.Member{Base: base, Key: key}, nil
}

// accessTail = "." IDENT ;
func (p *Parser) accessTail(base ast.Expr) (ast.Expr, error) {
	p.advance()
	name, err := p.consume(token.IDENT)
	if err != nil {
		return nil, err
	}

	return &ast.Member{Base: base, Key: &ast.Identifier{Name: name.Text()}}, nil
}

// structTail = "{" fieldInits "}" ;
//
// Only a bare identifier can name the struct. A struct literal ends the
// postfix chain.
func (p *Parser) structTail(expr ast.Expr) (ast.Expr, error) {
	ident, ok := expr.(*ast.Identifier)
	if !ok {
		return nil, p.expected("struct name before `{`")
	}
	p.advance()

	fields, err := p.fieldInits(token.RIGHTBRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHTBRACE); err != nil {
		return nil, err
	}

	return &ast.StructInstantiation{Name: ident.Name, Fields: fields}, nil
}

// type = IDENT ("<" typeList ">" | "(" typeList ")")? ;
// typeList = (type ("," type)*)? ;
func (p *Parser) typ() (ast.Type, error) {
	if !p.match(token.IDENT) {
		return nil, p.expected("type")
	}
	name := p.advance().Text()

	//exhaustive:ignore
	switch p.peek().Kind {
	case token.LEFTANGLE:
		args, err := p.typeList(token.RIGHTANGLE)
		if err != nil {
			return nil, err
		}

		return &ast.TemplateType{Name: name, Args: args}, nil
	case token.LEFTPAREN:
		params, err := p.typeList(token.RIGHTPAREN)
		if err != nil {
			return nil, err
		}

		return &ast.FuncPointerType{Name: name, Params: params}, nil
	default:
		return &ast.TypeName{Name: name}, nil
	}
}

func (p *Parser) typeList(closer token.Kind) ([]ast.Type, error) {
	p.advance()
	var types []ast.Type
	for !p.IsAtEnd() && !p.match(closer) {
		typ, err := p.typ()
		if err != nil {
			return nil, err
		}
		types = append(types, typ)

		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.consume(closer); err != nil {
		return nil, err
	}

	return types, nil
}

func (p Parser) peek() token.Token {
	return p.tokens[p.current]
}

// advance returns the current token and moves past it. The cursor never
// moves past the final EOF.
func (p *Parser) advance() token.Token {
	tok := p.tokens[p.current]
	if p.current < len(p.tokens)-1 {
		p.current++
	}

	return tok
}

func (p Parser) IsAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p Parser) match(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p Parser) matchAny(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.match(kind) {
			return true
		}
	}

	return false
}

func (p *Parser) consume(kind token.Kind) (token.Token, error) {
	if p.match(kind) {
		return p.advance(), nil
	}

	return p.peek(), p.expected(kind.Quoted())
}

// expected reports that the current token is none of the expected forms.
func (p Parser) expected(expected ...string) error {
	tok := p.peek()
	if len(expected) == 1 {
		return p.errorAt(tok, expected[0], describe(tok))
	}

	return diag.NewExpectedMultipleFound(p.file, tok.Pos.Line, tok.Pos.Column, expected, describe(tok))
}

func (p Parser) errorAt(tok token.Token, expected, found string) error {
	return diag.NewExpectedFound(p.file, tok.Pos.Line, tok.Pos.Column, expected, found)
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return token.EOF.Spelling()
	}

	return "`" + tok.Lexeme + "`"
}
