package main

import (
	"os"

	"spellblock/cmd/spellblock/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
