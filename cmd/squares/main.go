// Command squares computes the (weighted) average of squares of numbers
// read from text files or command-line arguments.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/squares/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		// Commands report their own failures; anything else is a usage
		// error from flag or argument parsing.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}
