// Command veneer inspects artifacts produced by the veneer library:
// invocation journals and callable signatures.
//
// Usage:
//
//	veneer journal <store.db> [-n limit] [--counts]
//	veneer sig <import-path> [names...]
package main

import (
	"fmt"
	"os"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "journal":
		handleJournalCommand(os.Args[2:])
	case "sig":
		handleSigCommand(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  veneer journal <store.db> [-n limit] [--counts]")
	fmt.Fprintln(os.Stderr, "  veneer sig <import-path> [names...]")
}
