// Command cirbo parses a bench-format netlist, runs a chosen minimization
// pipeline over it, and writes the result back out in bench format.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
