package main

import (
	"os"

	"github.com/finhub-dev/finhub/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
