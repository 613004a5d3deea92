// Command klimatkalk is the CLI entry point for the embodied-carbon
// screening model.
package main

import (
	"os"

	"github.com/klimatkalk/klimatkalk/internal/cli"
	"github.com/klimatkalk/klimatkalk/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to the process exit code.
// Split from main so tests can exercise it.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		// Cobra already printed the error.
		return 1
	}
	return 0
}
