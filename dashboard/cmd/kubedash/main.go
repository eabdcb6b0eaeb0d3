package main

import (
	"fmt"
	"os"

	"github.com/williamhogman/kubedash/dashboard/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
