package main

import (
	"os"

	"github.com/zchutly/rights-finder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
