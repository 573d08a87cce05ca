package main

import (
	"os"

	"github.com/dummyforge/dummyforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
