package main

import (
	"os"

	"github.com/ryotahase/research-digest/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
