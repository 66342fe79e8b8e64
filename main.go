package main

import (
	"os"

	"github.com/mayura-ui/mayura/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
