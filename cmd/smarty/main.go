// Package main provides the smarty binary: project document maintenance, code generation and Java import.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
