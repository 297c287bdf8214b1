package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/tween/pkg/preset"
	"github.com/go-drift/tween/pkg/scene"
	"github.com/go-drift/tween/pkg/tween"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Simulate a preset frame by frame",
		Long: `Simulate a preset on a scene node at a fixed frame rate and print the
animated values of every frame, together with start and finish events.

The preset is a YAML file or, written as @name, a stored preset.

Flags:
  --fps N         Frames per second (default: preview.fps from tween.yaml, or 60)
  --seconds S     Simulated time; 0 runs until the tween goes idle
                  (default: preview.seconds from tween.yaml, or 3)
  --reverse       Play the preset from To to From`,
		Usage: "tween run <preset.yaml|@name> [--fps N] [--seconds S] [--reverse]",
		Run:   runRun,
	})
}

// untilIdleLimit caps a --seconds 0 run of an endlessly looping preset.
const untilIdleLimit = 600.0

type runOptions struct {
	fps     int
	seconds float64
	reverse bool
}

func runRun(args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	opts := runOptions{fps: cfg.FPS, seconds: cfg.Seconds}
	positional, err := parseRunArgs(args, &opts)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("a preset is required\n\nUsage: tween run <preset.yaml|@name>")
	}

	p, err := loadPreset(positional[0])
	if err != nil {
		return err
	}
	return simulate(stdout, p, opts)
}

func parseRunArgs(args []string, opts *runOptions) ([]string, error) {
	var positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--reverse" {
			opts.reverse = true
			continue
		}
		if v, next, ok, err := flagValue(args, i, "--fps"); ok {
			if err != nil {
				return nil, err
			}
			fps, err := strconv.Atoi(v)
			if err != nil || fps < 1 {
				return nil, fmt.Errorf("--fps must be a positive integer (got %q)", v)
			}
			opts.fps, i = fps, next
			continue
		}
		if v, next, ok, err := flagValue(args, i, "--seconds"); ok {
			if err != nil {
				return nil, err
			}
			s, err := strconv.ParseFloat(v, 64)
			if err != nil || s < 0 {
				return nil, fmt.Errorf("--seconds must be a non-negative number (got %q)", v)
			}
			opts.seconds, i = s, next
			continue
		}
		if strings.HasPrefix(args[i], "--") {
			return nil, fmt.Errorf("unknown flag: %s", args[i])
		}
		positional = append(positional, args[i])
	}
	return positional, nil
}

// loadPreset reads a preset file, or a stored preset when ref is @name.
func loadPreset(ref string) (*preset.Preset, error) {
	if name, ok := strings.CutPrefix(ref, "@"); ok {
		cfg, err := resolveConfig()
		if err != nil {
			return nil, err
		}
		return openStore(cfg).Get(name)
	}
	if _, err := os.Stat(ref); err != nil {
		return nil, fmt.Errorf("preset file %q: %w", ref, err)
	}
	return preset.Load(ref)
}

// previewNode returns the node presets are simulated on: a single white
// sprite at the origin.
func previewNode(name string) *scene.Node {
	node := scene.NewNode(name)
	node.AddSurface(scene.NewSprite(tween.White))
	return node
}

// simulate plays p on a preview node and prints one line per frame.
func simulate(w io.Writer, p *preset.Preset, opts runOptions) error {
	reg := tween.NewRegistry()
	node := previewNode(p.Name)
	tw, err := p.Apply(reg, node, 0)
	if err != nil {
		return err
	}
	tw.PlayOnStart = false

	finishes := 0
	tw.OnStart(func() {
		fmt.Fprintf(w, "  [start loop=%d reversed=%t]\n", tw.LoopIteration(), tw.HasReversed())
	})
	tw.AddFinishCallback(func(tween.Entity) {
		finishes++
		fmt.Fprintf(w, "  [finish %d]\n", finishes)
	})

	var result tween.Result
	if opts.reverse {
		result = tw.Reverse()
	} else {
		result = tw.Play()
	}
	if result != tween.Accepted {
		return fmt.Errorf("preset %q was not played: %s", p.Name, result)
	}

	dt := 1 / float64(opts.fps)
	limit := opts.seconds
	if limit <= 0 {
		limit = untilIdleLimit
	}
	frames := int(limit*float64(opts.fps) + 0.5)

	printFrame(w, 0, 0, tw, node, p)
	for frame := 1; frame <= frames; frame++ {
		reg.Step(dt)
		printFrame(w, frame, float64(frame)*dt, tw, node, p)
		if opts.seconds <= 0 && !tw.IsPlaying() {
			break
		}
	}
	return nil
}

func printFrame(w io.Writer, frame int, at float64, tw *tween.Tween, node *scene.Node, p *preset.Preset) {
	var b strings.Builder
	fmt.Fprintf(&b, "%4d %7.3fs  %-9s f=%+.3f", frame, at, tw.Status(), tw.Factor())
	if p.Position != nil {
		fmt.Fprintf(&b, "  position=%s", formatVec(node.Position()))
	}
	if p.Rotation != nil {
		fmt.Fprintf(&b, "  rotation=%s", formatVec(node.Rotation()))
	}
	if p.Scale != nil {
		fmt.Fprintf(&b, "  scale=%s", formatVec(node.LocalScale()))
	}
	if p.Color != nil || p.Alpha != nil {
		c := node.Surfaces()[0].Color()
		fmt.Fprintf(&b, "  color=%s", preset.ColorValue(c))
	}
	if p.Scalar != nil {
		fmt.Fprintf(&b, "  scalar=%.3f", tw.Scalar.Value)
	}
	fmt.Fprintln(w, b.String())
}

func formatVec(v tween.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
