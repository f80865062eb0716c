package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/scorch-lang/scorch/ast"
	"github.com/scorch-lang/scorch/diag"
	"github.com/scorch-lang/scorch/infix"
	"github.com/scorch-lang/scorch/lexer"
	"github.com/scorch-lang/scorch/parser"
	"github.com/scorch-lang/scorch/token"
)

type Options struct {
	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
	// PrecedenceClimbing regroups binary chains by operator precedence
	// after parsing.
	PrecedenceClimbing bool
}

type Driver struct {
	logger *log.Logger
	infix  *infix.Resolver
}

func New(opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	d := &Driver{logger: logger}
	if opts.PrecedenceClimbing {
		d.infix = infix.NewResolver(parser.Precedence)
	}

	return d
}

// Result is one compilation unit after lexing and parsing.
type Result struct {
	File   string
	Tokens []token.Token
	// Tree is an *ast.Program, or an ast.Expr from RunInput.
	Tree ast.Node
	// Lexical holds every lexical error when lexing failed.
	Lexical diag.List
}

// RunSource lexes and parses source as a whole program. On failure the
// result still carries the tokens and any lexical diagnostics.
func (d *Driver) RunSource(file, source string) (*Result, error) {
	tokens := lexer.Lex(source)
	d.logger.Printf("%s: %d tokens", file, len(tokens))

	result := &Result{File: file, Tokens: tokens}
	p := parser.NewParser(file, tokens)
	program, err := p.Parse()
	result.Lexical = p.Lexical()
	if err != nil {
		return result, fmt.Errorf("parse: %w", err)
	}

	result.Tree = program
	if d.infix != nil {
		result.Tree = d.infix.Run(program)
	}
	d.logger.Printf("%s: %d nodes", file, ast.Count(result.Tree))

	return result, nil
}

// RunInput parses a line of interactive input, first as a program and then
// as a bare expression.
func (d *Driver) RunInput(source string) (*Result, error) {
	result, errProgram := d.RunSource("<stdin>", source)
	if errProgram == nil || len(result.Lexical) > 0 {
		return result, errProgram
	}

	expr, errExpr := parser.NewParser("<stdin>", result.Tokens).ParseExpr()
	if errExpr == nil {
		result.Tree = expr
		if d.infix != nil {
			result.Tree = d.infix.RunExpr(expr)
		}

		return result, nil
	}

	return result, errors.Join(errProgram, fmt.Errorf("parse expression: %w", errExpr))
}

func (d *Driver) RunFile(path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return d.RunSource(path, string(source))
}

// Watch runs RunFile on path now and again whenever the file is written or
// recreated, passing each outcome to fn. It returns nil once ctx is done.
func (d *Driver) Watch(ctx context.Context, path string, fn func(*Result, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Saving by rename drops a watch on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	d.logger.Printf("watching %s", path)

	fn(d.RunFile(path))

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			d.logger.Printf("%s: %s", ev.Op, path)
			fn(d.RunFile(path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}
