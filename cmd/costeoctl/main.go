package main

import (
	"os"

	"github.com/GlebRadaev/costeo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
