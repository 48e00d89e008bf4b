package main

import (
	"os"

	"github.com/QuangTung97/fraction/cmd/frac/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
