package main

import (
	"os"

	"github.com/dmitrymomot/langkit/cmd/langkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
