// specforge - Spec-Driven Code Generation
// Source: https://github.com/schoolboyqueue/specforge

package main

import (
	"os"

	"github.com/schoolboyqueue/specforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
