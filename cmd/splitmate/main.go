package main

import (
	"os"

	"github.com/splitmate/splitmate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
