package main

import (
	"os"

	"github.com/phoebegrace/NoFilterNaevis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
