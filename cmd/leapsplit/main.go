// Package main provides the leapsplit CLI entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/leapsplit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
