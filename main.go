package main

import (
	"os"

	"github.com/mktlab/estratega/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
