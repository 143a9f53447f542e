// Command valuecmp compares, sorts, hashes and stores typed property values.
package main

import (
	"os"

	"github.com/roach88/storable/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
