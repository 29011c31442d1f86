// Package main provides the entry point for the xcbew diagnostic CLI.
package main

import (
	"os"

	"github.com/amikos-tech/pure-xcbew/cmd/xcbew/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
