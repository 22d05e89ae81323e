package main

import (
	"os"

	"github.com/msto63/etkit/cmd/etkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
