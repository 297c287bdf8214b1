// Package main previews a tween preset in a window.
//
// A square sprite is animated by the preset: position moves it (in pixels
// from the window center, y up), rotation z spins it, scale x and y
// stretch it and color and alpha tint it.
//
// Usage:
//
//	go run ./cmd/tweenview [flags] [preset.yaml]
//
// Flags:
//
//	--preset <name>   Load a stored preset instead of a file
//	--app <name>      Preset storage application (default: tween)
//	--reverse         Start by playing the preset backwards
//
// Controls:
//
//	Space     - Replay in the opposite direction
//	P         - Toggle pause
//	R         - Reset to the start of the range
//	Q/Escape  - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/tween/pkg/preset"
	"github.com/go-drift/tween/pkg/scene"
	"github.com/go-drift/tween/pkg/tween"
)

const (
	screenWidth  = 800
	screenHeight = 600
	squareSize   = 48
)

// demoPreset is played when no preset is given.
const demoPreset = `name: demo
duration: 1.2
easing: InOutBack
loop: pingpong
position:
  from: [-250, 0, 0]
  to: [250, 120, 0]
rotation:
  from: [0, 0, 0]
  to: [0, 0, 180]
scale:
  from: [1, 1, 1]
  to: [2, 1, 1]
  animate: [x]
color:
  from: deepskyblue
  to: tomato
`

var (
	presetFlag  = flag.String("preset", "", "Stored preset name")
	appFlag     = flag.String("app", "tween", "Preset storage application")
	reverseFlag = flag.Bool("reverse", false, "Start by playing backwards")
)

var errQuit = errors.New("quit")

// Game implements ebiten.Game around a single tween.
type Game struct {
	name  string
	reg   *tween.Registry
	node  *scene.Node
	tw    *tween.Tween
	pixel *ebiten.Image
}

// Update advances the tween by one tick and handles input.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return errQuit
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		reverse := !g.tw.HasReversed()
		g.tw.Stop()
		if reverse {
			g.tw.Reverse()
		} else {
			g.tw.Play()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if g.tw.IsPaused() {
			g.tw.Resume()
		} else {
			g.tw.Pause()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.tw.Reset()
	}

	g.reg.Step(1 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the square and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff})

	pos := g.node.Position()
	rot := g.node.Rotation()
	scale := g.node.LocalScale()
	c := g.node.Surfaces()[0].Color()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(squareSize*scale[0], squareSize*scale[1])
	op.GeoM.Rotate(-rot[2] * math.Pi / 180)
	op.GeoM.Translate(screenWidth/2+pos[0], screenHeight/2-pos[1])
	op.ColorScale.ScaleWithColor(tween.NRGBA(c))
	screen.DrawImage(g.pixel, op)

	state := g.tw.Status().String()
	if g.tw.IsPaused() {
		state += " (paused)"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %s  t=%.2f/%.2f  loop %d",
		g.name, state, g.tw.ElapsedTime(), g.tw.Duration, g.tw.LoopIteration()), 10, 10)
	ebitenutil.DebugPrintAt(screen, "[space] replay  [p] pause  [r] reset  [q] quit", 10, screenHeight-24)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func loadPreset() (*preset.Preset, error) {
	switch {
	case *presetFlag != "":
		return preset.OpenStore(*appFlag).Get(*presetFlag)
	case flag.NArg() > 0:
		return preset.Load(flag.Arg(0))
	default:
		return preset.Parse([]byte(demoPreset))
	}
}

func main() {
	flag.Parse()

	p, err := loadPreset()
	if err != nil {
		log.Fatalf("failed to load preset: %v", err)
	}

	reg := tween.NewRegistry()
	node := scene.NewNode(p.Name)
	node.AddSurface(scene.NewSprite(tween.White))
	tw, err := p.Apply(reg, node, 0)
	if err != nil {
		log.Fatalf("failed to apply preset: %v", err)
	}
	tw.PlayOnStart = false
	if *reverseFlag {
		tw.Reverse()
	} else {
		tw.Play()
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	game := &Game{name: p.Name, reg: reg, node: node, tw: tw, pixel: pixel}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tweenview - " + p.Name)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
