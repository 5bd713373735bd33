package main

import (
	"fmt"
	"os"

	"github.com/chazu/veneer/introspect"
)

// handleSigCommand processes the `veneer sig` subcommand.
func handleSigCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: sig requires an import path")
		os.Exit(1)
	}

	importPath := args[0]
	names := args[1:]

	sigs, err := introspect.Load(importPath, names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(sigs) == 0 {
		fmt.Fprintf(os.Stderr, "No matching exported functions in %s\n", importPath)
		os.Exit(1)
	}

	for _, sig := range sigs {
		fmt.Println(sig.String())
	}
}
