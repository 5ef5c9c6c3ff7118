package main

import (
	"os"

	"github.com/az-ai-labs/wordfigure/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
