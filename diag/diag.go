// Package diag defines the positioned errors raised by the lexer and parser.
//
// A Diagnostic is a plain value. Rendering it (colors, carets, the quoted
// source line) is left to the caller.
package diag

import (
	"fmt"
	"strings"
)

type Kind int

const (
	InvalidFloat Kind = iota
	InvalidString
	InvalidToken
	UnterminatedString
	ExpectedFound
	ExpectedMultipleFound
)

func (k Kind) String() string {
	switch k {
	case InvalidFloat:
		return "invalid float"
	case InvalidString:
		return "invalid string"
	case InvalidToken:
		return "invalid token"
	case UnterminatedString:
		return "unterminated string"
	case ExpectedFound, ExpectedMultipleFound:
		return "wrong token found"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Diagnostic is a single error at a 1-based line and column of File.
// Expected and Found are only set for ExpectedFound and ExpectedMultipleFound.
type Diagnostic struct {
	Kind     Kind
	File     string
	Line     int
	Column   int
	Expected []string
	Found    string
}

// Lexical builds the diagnostic for a malformed literal or character.
func Lexical(kind Kind, file string, line, column int) *Diagnostic {
	return &Diagnostic{Kind: kind, File: file, Line: line, Column: column}
}

func NewExpectedFound(file string, line, column int, expected, found string) *Diagnostic {
	return &Diagnostic{
		Kind:     ExpectedFound,
		File:     file,
		Line:     line,
		Column:   column,
		Expected: []string{expected},
		Found:    found,
	}
}

func NewExpectedMultipleFound(file string, line, column int, expected []string, found string) *Diagnostic {
	return &Diagnostic{
		Kind:     ExpectedMultipleFound,
		File:     file,
		Line:     line,
		Column:   column,
		Expected: expected,
		Found:    found,
	}
}

// Message describes the problem without its location.
func (d *Diagnostic) Message() string {
	switch d.Kind {
	case ExpectedFound, ExpectedMultipleFound:
		return fmt.Sprintf("expected %s but found %s", strings.Join(d.Expected, " or "), d.Found)
	default:
		return d.Kind.String()
	}
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message())
}

// List is a batch of diagnostics in discovery order.
type List []*Diagnostic

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

// Err returns nil for an empty list and the list itself otherwise.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for i, d := range l {
		errs[i] = d
	}
	return errs
}
