// Package main is the entry point for the Translingo CLI.
package main

import (
	"os"

	"github.com/fauziaiqbal/Translingo/cmd/translingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
