package main

import (
	"fmt"
	"os"

	"github.com/labtrack/labtrack/cmd/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
