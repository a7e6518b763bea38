package main

import "fmt"

type Category int

const (
	CategoryLexical Category = iota
	CategorySyntax
	CategoryType
	CategoryRuntime
)

func (c Category) String() string {
	switch c {
	case CategoryLexical:
		return "Lexical"
	case CategorySyntax:
		return "Syntax"
	case CategoryType:
		return "Type"
	case CategoryRuntime:
		return "Runtime"
	default:
		return "Unknown"
	}
}

// Diagnostic is one recoverable error found while scanning or executing.
// Pos is the byte offset of the offending lexeme in the source.
type Diagnostic struct {
	Category Category
	Message  string
	Pos      int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s error at offset %d: %s", d.Category, d.Pos, d.Message)
}

func (d Diagnostic) Error() string {
	return d.String()
}

func errorAt(category Category, pos int, format string, args ...any) error {
	return Diagnostic{Category: category, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// NewReporter returns an empty diagnostics collector.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Reporter accumulates diagnostics in detection order. A run succeeds
// if and only if the reporter is still empty after the full pass.
type Reporter struct {
	diagnostics []Diagnostic
}

func (r *Reporter) report(category Category, pos int, format string, args ...any) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	})
}

func (r *Reporter) add(err error) {
	if diagnostic, ok := err.(Diagnostic); ok {
		r.diagnostics = append(r.diagnostics, diagnostic)
		return
	}
	r.report(CategoryRuntime, 0, "%s", err)
}

func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}
