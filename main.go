package main

import (
	"os"

	"github.com/minhtc/opicly/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
