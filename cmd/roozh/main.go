package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	cli := newCLI(os.Stdout, os.Stderr)
	if err := cli.root.Execute(); err != nil {
		cli.log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
