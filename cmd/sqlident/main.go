// Package main provides the sqlident CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlident/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
