package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/tween/pkg/easing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "sample",
		Short: "Print eased factors",
		Long: `Sample an easing over normalized time and print one factor per line.

The easing is an equation name or a CSS-style cubic bezier written as
"bezier:x1,y1,x2,y2". Factors are not clamped: the Back and Elastic
families overshoot [0, 1].

Flags:
  --steps N   Number of intervals (default: 10)
  --bars      Draw a bar for each factor`,
		Usage: "tween sample <equation|bezier:x1,y1,x2,y2> [--steps N] [--bars]",
		Run:   runSample,
	})
}

const barWidth = 40

func runSample(args []string) error {
	steps := 10
	bars := false
	var positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--bars" {
			bars = true
			continue
		}
		v, next, ok, err := flagValue(args, i, "--steps")
		if err != nil {
			return err
		}
		if ok {
			if steps, err = strconv.Atoi(v); err != nil || steps < 1 {
				return fmt.Errorf("--steps must be a positive integer (got %q)", v)
			}
			i = next
			continue
		}
		if strings.HasPrefix(args[i], "--") {
			return fmt.Errorf("unknown flag: %s", args[i])
		}
		positional = append(positional, args[i])
	}
	if len(positional) != 1 {
		return fmt.Errorf("an easing is required\n\nUsage: tween sample <equation> [--steps N]")
	}

	sel, err := parseSelector(positional[0])
	if err != nil {
		return err
	}
	ease := sel.Compile()
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		f := ease(t, 1)
		if bars {
			fmt.Fprintf(stdout, "%.3f  %+.4f  %s\n", t, f, bar(f))
		} else {
			fmt.Fprintf(stdout, "%.3f  %+.4f\n", t, f)
		}
	}
	return nil
}

// parseSelector accepts an equation name or "bezier:x1,y1,x2,y2".
func parseSelector(s string) (easing.Selector, error) {
	coords, ok := strings.CutPrefix(s, "bezier:")
	if !ok {
		eq, err := easing.ParseEquation(s)
		if err != nil {
			return easing.Selector{}, err
		}
		return eq.Selector(), nil
	}
	parts := strings.Split(coords, ",")
	if len(parts) != 4 {
		return easing.Selector{}, fmt.Errorf("bezier needs 4 control values, got %d", len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return easing.Selector{}, fmt.Errorf("invalid bezier value %q", p)
		}
		v[i] = f
	}
	return easing.CurveSelector(easing.CubicBezierCurve(v[0], v[1], v[2], v[3], 32)), nil
}

func bar(f float64) string {
	n := int(f*barWidth + 0.5)
	n = max(0, min(n, barWidth+barWidth/2))
	return strings.Repeat("#", n)
}
