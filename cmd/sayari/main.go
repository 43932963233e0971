package main

import (
	"os"

	"github.com/omsayari/sayari-api/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
