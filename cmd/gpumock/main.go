// Command gpumock inspects and serves the mock GPU management library.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
