package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chazu/veneer/journal"
)

// handleJournalCommand processes the `veneer journal` subcommand.
func handleJournalCommand(args []string) {
	var storePath string
	limit := 0
	counts := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-n", "--limit":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: -n requires a number")
				os.Exit(1)
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: bad limit %q\n", args[i+1])
				os.Exit(1)
			}
			limit = n
			i++
		case "--counts":
			counts = true
		default:
			if storePath != "" {
				fmt.Fprintf(os.Stderr, "Error: unexpected argument %q\n", args[i])
				os.Exit(1)
			}
			storePath = args[i]
		}
	}

	if storePath == "" {
		fmt.Fprintln(os.Stderr, "Error: journal requires a store path")
		os.Exit(1)
	}

	store, err := journal.OpenStore(storePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if counts {
		printCounts(store)
		return
	}
	printEntries(store, limit)
}

func printCounts(store *journal.Store) {
	byWrapper, err := store.CountByWrapper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(byWrapper))
	for name := range byWrapper {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%8d  %s\n", byWrapper[name], name)
	}
}

func printEntries(store *journal.Store, limit int) {
	entries, err := store.List(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, inv := range entries {
		line := fmt.Sprintf("%6d  %s  %s(%s)",
			inv.Seq, inv.Start.Format("15:04:05.000"), inv.Wrapper, strings.Join(inv.Args, ", "))
		if inv.Instance != "" {
			line += "  on " + inv.Instance
		}
		line += "  " + inv.Duration.String()
		if inv.Err != "" {
			line += "  ERR " + inv.Err
		}
		fmt.Println(line)
	}
}
