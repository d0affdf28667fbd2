package main

import (
	"os"

	"github.com/katalvlaran/nestplot/cmd/nestplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
