package main

import (
	"fmt"
	"os"
)

// Exit codes surfaced to automation. NON_COMPLIANT and incomplete runs are
// distinguishable so "ran but found violations" never looks like "could not
// complete the audit".
const (
	exitCompliant    = 0
	exitNonCompliant = 1
	exitIncomplete   = 2
	exitFatal        = 3
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFatal)
	}
}
