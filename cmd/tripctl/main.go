// Command tripctl inspects trip sources from the terminal: the schedule and
// candidates sheets, ledger balances, and passcode hashes for the server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
