package main

import (
	"os"

	"github.com/Makepad-fr/todo/internal/cli"
)

func main() {
	// Root flags, subcommand and its arguments are all handled by the runner.
	os.Exit(cli.Run(os.Args[1:], cli.Options{}))
}
