// Command pagerank ranks the pages of a link graph described in a YAML file.
//
//	pagerank rank --graph graph.yaml [--rho 0.15] [--dangling reject|uniform|teleport-only]
//
// Scores are printed as "label<TAB>score" lines in descending order.
package main

import (
	"fmt"
	"os"
)

const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
