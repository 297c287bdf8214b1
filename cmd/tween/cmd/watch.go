package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/tween/pkg/scene"
	"github.com/go-drift/tween/pkg/tween"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Preview a preset live in the terminal",
		Long: `Play a preset in real time in the terminal.

The node's x and y position move a glyph across the screen, its color
tints the glyph and its alpha picks the shade. Finished presets stay on
their last frame until replayed.

Keys:
  space     Replay in the opposite direction
  p         Pause or resume
  q, Esc    Quit

Flags:
  --fps N   Redraw rate (default: preview.fps from tween.yaml, or 60)`,
		Usage: "tween watch <preset.yaml|@name> [--fps N]",
		Run:   runWatch,
	})
}

// shades maps alpha to a glyph, from transparent to opaque.
var shades = []rune{' ', '░', '▒', '▓', '█'}

// watchState is the model drawn by the terminal preview.
type watchState struct {
	name   string
	tw     *tween.Tween
	node   *scene.Node
	lo, hi tween.Vec3
}

func runWatch(args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	opts := runOptions{fps: cfg.FPS}
	positional, err := parseRunArgs(args, &opts)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("a preset is required\n\nUsage: tween watch <preset.yaml|@name>")
	}
	p, err := loadPreset(positional[0])
	if err != nil {
		return err
	}

	reg := tween.NewRegistry()
	node := previewNode(p.Name)
	tw, err := p.Apply(reg, node, 0)
	if err != nil {
		return err
	}
	tw.PlayOnStart = false
	st := &watchState{name: p.Name, tw: tw, node: node}
	st.lo, st.hi = bounds(tw.Position)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := tween.NewTicker(reg)
	ticker.Start()
	defer ticker.Stop()
	frames := time.NewTicker(time.Second / time.Duration(opts.fps))
	defer frames.Stop()

	if opts.reverse {
		tw.Reverse()
	} else {
		tw.Play()
	}
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if !st.handleKey(ev) {
					return nil
				}
			}
		case <-frames.C:
			ticker.Tick()
			st.draw(screen)
		}
	}
}

// handleKey applies a key press and reports whether the preview goes on.
func (st *watchState) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			st.replay()
		case 'p':
			if st.tw.IsPaused() {
				st.tw.Resume()
			} else {
				st.tw.Pause()
			}
		}
	}
	return true
}

// replay restarts the tween in the direction opposite to its last run.
func (st *watchState) replay() {
	reverse := !st.tw.HasReversed()
	st.tw.Stop()
	if reverse {
		st.tw.Reverse()
	} else {
		st.tw.Play()
	}
}

func (st *watchState) draw(s tcell.Screen) {
	s.Clear()
	w, h := s.Size()
	drawText(s, 0, 0, w, tcell.StyleDefault.Reverse(true), st.statusLine(w))

	c := st.node.Surfaces()[0].Color()
	n := tween.NRGBA(c)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B)))
	glyph := shade(c[3])
	x, y := project(st.node.Position(), st.lo, st.hi, w, h)
	s.SetContent(x, y, glyph, nil, style)
	drawText(s, x+runewidth.RuneWidth(glyph)+1, y, w, tcell.StyleDefault.Dim(true), st.name)
	s.Show()
}

func (st *watchState) statusLine(width int) string {
	tw := st.tw
	state := tw.Status().String()
	if tw.IsPaused() {
		state += " (paused)"
	}
	line := fmt.Sprintf(" %s  %s  t=%.2f/%.2f  loop %d  [space] replay  [p] pause  [q] quit",
		st.name, state, tw.ElapsedTime(), tw.Duration, tw.LoopIteration())
	return runewidth.FillRight(runewidth.Truncate(line, width, "…"), width)
}

func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= maxX {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// bounds returns the per-axis extent of a spatial range.
func bounds(r tween.SpatialRange) (lo, hi tween.Vec3) {
	for i := range 3 {
		lo[i] = math.Min(r.From[i], r.To[i])
		hi[i] = math.Max(r.From[i], r.To[i])
	}
	return lo, hi
}

// project maps the x and y of v within [lo, hi] onto the drawing area of a
// w by h terminal, below the status line. World y grows upwards. Axes
// without extent are centered; overshoot is clamped to the area.
func project(v, lo, hi tween.Vec3, w, h int) (x, y int) {
	left, right := 1, max(1, w-2)
	top, bottom := 2, max(2, h-2)
	x = axisCell(v[0], lo[0], hi[0], left, right)
	y = bottom - (axisCell(v[1], lo[1], hi[1], top, bottom) - top)
	return x, y
}

func axisCell(v, lo, hi float64, first, last int) int {
	if hi <= lo {
		return (first + last) / 2
	}
	t := (v - lo) / (hi - lo)
	cell := first + int(math.Round(t*float64(last-first)))
	return max(first, min(cell, last))
}

func shade(alpha float64) rune {
	i := int(math.Round(max(0, min(alpha, 1)) * float64(len(shades)-1)))
	return shades[i]
}
