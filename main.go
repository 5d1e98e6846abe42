package main

import (
	"os"

	"github.com/abhisek/ifrshub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
