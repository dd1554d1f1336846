package main

import (
	"os"

	"github.com/tubegrab/tubegrab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
