// Command daydial renders and runs the 24-hour scrolling dial.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/daydial/cmd/daydial/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
