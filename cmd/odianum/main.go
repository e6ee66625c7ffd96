// Package main is the entry point for the odianum CLI.
package main

import (
	"os"

	"github.com/srinibashsamal/odianumerals/cmd/odianum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
