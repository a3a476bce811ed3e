// Package main provides the leapweb command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/leapweb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
