package main

import (
	"os"

	"github.com/electrical-elites/wishlink/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
