package main

import (
	"os"

	"github.com/sjoshi/digitdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
