package main

import (
	"fmt"
	"io"
)

// Result carries everything a run produces besides the program output:
// the whitespace-stripped source, the reserved words and symbols in
// first-seen order, and the collected diagnostics.
type Result struct {
	Stripped    string
	Symbols     []string
	Diagnostics []Diagnostic
}

// Interpret scans and executes source, writing one line per executed
// output statement to stdOut. It always completes the full pass:
// every error becomes a diagnostic in the result, never a stop.
func Interpret(source string, stdOut io.Writer) Result {
	reporter := NewReporter()
	scanner := NewScanner(source, reporter)
	tokens := scanner.ScanTokens()

	executor := NewExecutor(tokens, NewEnvironment(), reporter, stdOut)
	executor.Execute()

	return Result{
		Stripped:    StripWhitespace(source),
		Symbols:     scanner.Symbols(),
		Diagnostics: reporter.Diagnostics(),
	}
}

// Run interprets source and appends the final status report to the
// program output.
func Run(source string, stdOut io.Writer) Result {
	result := Interpret(source, stdOut)
	if len(result.Diagnostics) == 0 {
		_, _ = fmt.Fprintln(stdOut, "NO ERROR(S) FOUND")
	} else {
		_, _ = fmt.Fprintln(stdOut, "ERROR")
		for _, diagnostic := range result.Diagnostics {
			_, _ = fmt.Fprintln(stdOut, diagnostic)
		}
	}
	return result
}
