package main

import (
	"os"
	"strings"
	"unicode"
)

const (
	noSpacesFile = "NOSPACES.TXT"
	resSymFile   = "RES_SYM.TXT"
)

// StripWhitespace returns source with every whitespace character
// removed. Re-tokenizing the result yields the same token sequence as
// tokenizing the original.
func StripWhitespace(source string) string {
	var b strings.Builder
	for _, char := range source {
		if !unicode.IsSpace(char) {
			b.WriteRune(char)
		}
	}
	return b.String()
}

// WriteArtifacts writes the whitespace-stripped source and the
// reserved-word/symbol report to the working directory.
func WriteArtifacts(result Result) error {
	if err := os.WriteFile(noSpacesFile, []byte(result.Stripped), 0o644); err != nil {
		return err
	}
	report := strings.Join(result.Symbols, "\n")
	if len(result.Symbols) > 0 {
		report += "\n"
	}
	return os.WriteFile(resSymFile, []byte(report), 0o644)
}
