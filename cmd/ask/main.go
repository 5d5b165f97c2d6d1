// Command ask answers a single legal question from the terminal.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCommand(defaultCompleterFactory).Execute(); err != nil {
		os.Exit(1)
	}
}
