package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: interpreter <source-file>")
		os.Exit(1)
	}

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("input file not found")
	}

	result := Run(string(source), os.Stdout)

	if err := WriteArtifacts(result); err != nil {
		log.Fatalf("writing report files: %v", err)
	}
}
