package main

import (
	"os"

	"github.com/msto63/whilec/cmd/whilec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
