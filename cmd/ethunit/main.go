package main

import (
	"os"

	"github.com/calebcase/ethunit/cmd/ethunit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
