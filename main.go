package main

import (
	"os"

	"github.com/voltpath/rangekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
