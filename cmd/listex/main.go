package main

import (
	"os"

	"github.com/listex/listex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
