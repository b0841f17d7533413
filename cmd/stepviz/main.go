// Package main provides the entry point of the stepviz CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/stepviz/cmd/stepviz/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
