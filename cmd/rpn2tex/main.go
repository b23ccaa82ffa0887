package main

import (
	"os"

	"github.com/msto63/rpn2tex/cmd/rpn2tex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
