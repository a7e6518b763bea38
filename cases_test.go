package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type caseManifest struct {
	Cases []struct {
		Name        string   `yaml:"name"`
		Source      string   `yaml:"source"`
		Output      []string `yaml:"output"`
		Diagnostics []struct {
			Category string `yaml:"category"`
			Offset   int    `yaml:"offset"`
			Message  string `yaml:"message"`
		} `yaml:"diagnostics"`
	} `yaml:"cases"`
}

func TestCases(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "cases.yml"))
	if err != nil {
		t.Fatal("error reading case manifest:", err)
	}

	var manifest caseManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		t.Fatal("error parsing case manifest:", err)
	}

	for _, c := range manifest.Cases {
		t.Run(c.Name, func(t *testing.T) {
			var stdOut bytes.Buffer
			result := Interpret(c.Source, &stdOut)

			var lines []string
			if output := stdOut.String(); output != "" {
				lines = strings.Split(strings.TrimSuffix(output, "\n"), "\n")
			}
			if !slices.Equal(lines, c.Output) {
				t.Errorf("expected output %v, got %v", c.Output, lines)
			}

			if len(result.Diagnostics) != len(c.Diagnostics) {
				t.Fatalf("expected %d diagnostics, got %v", len(c.Diagnostics), result.Diagnostics)
			}
			for i, want := range c.Diagnostics {
				got := result.Diagnostics[i]
				if got.Category.String() != want.Category || got.Pos != want.Offset || got.Message != want.Message {
					t.Errorf("diagnostic %d: expected %s at offset %d with message %q, got %v",
						i, want.Category, want.Offset, want.Message, got)
				}
			}
		})
	}
}
