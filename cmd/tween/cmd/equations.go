package cmd

import (
	"fmt"

	"github.com/go-drift/tween/pkg/easing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "equations",
		Short: "List easing equations",
		Long: `List the easing equations a preset can name.

Names match ignoring case, dashes and underscores, so "in-out-sine" selects
InOutSine.`,
		Usage: "tween equations",
		Run:   runEquations,
	})
}

func runEquations(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	for _, eq := range easing.Equations() {
		fmt.Fprintln(stdout, eq)
	}
	return nil
}
