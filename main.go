package main

import (
	"fmt"
	"os"

	"github.com/AnyUserName/minicv-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "minicv:", err)
		os.Exit(1)
	}
}
