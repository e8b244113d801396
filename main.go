package main

import (
	"os"

	"github.com/schemascout/schemascout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
