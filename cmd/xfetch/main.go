package main

import (
	"fmt"
	"os"

	"github.com/xfetch/xfetch/internal/cli"
	"github.com/xfetch/xfetch/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SilenceErrors = true
	return root.Execute()
}
