package main

import (
	"fmt"
	"os"
	"tasker/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "tasker run into an error: %s\n", err)
		os.Exit(1)
	}
}
