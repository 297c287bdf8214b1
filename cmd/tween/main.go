// Command tween inspects easings and simulates, previews and stores tween
// presets.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/tween/cmd/tween/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
