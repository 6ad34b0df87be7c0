// Command mathsolver answers math questions through a fallback chain of
// AI and computational services. It runs as an HTTP service (serve) or
// answers questions directly from the command line (ask).
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", exitErr.err)
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(ExitConfig)
	}
}
