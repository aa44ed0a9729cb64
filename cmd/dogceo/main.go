package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dogceo: %v\n", err)
		os.Exit(1)
	}
}
