package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/tween/cmd/tween/internal/config"
	"github.com/go-drift/tween/pkg/easing"
	"github.com/go-drift/tween/pkg/preset"
)

// setup runs the command in an empty working directory with output captured
// and presets kept in memory. The store the commands open is returned.
func setup(t *testing.T) (*bytes.Buffer, *preset.Store, *string) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("TWEEN_APP", "")

	var out bytes.Buffer
	prevOut, prevOpen := stdout, openStore
	store := preset.NewStore(nil)
	var storeApp string
	stdout = &out
	openStore = func(cfg *config.Resolved) *preset.Store {
		storeApp = cfg.StoreApp
		return store
	}
	t.Cleanup(func() {
		stdout, openStore = prevOut, prevOpen
	})
	return &out, store, &storeApp
}

func writePreset(t *testing.T, name, content string) string {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

const slideYAML = `duration: 1
position:
  from: [0, 0, 0]
  to: [10, 0, 0]
`

func TestExecuteHelpAndVersion(t *testing.T) {
	out, _, _ := setup(t)
	if err := execute([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output = %q", out.String())
	}
	out.Reset()
	if err := execute(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"equations", "sample", "run", "preset", "watch"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help does not list %s", name)
		}
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	setup(t)
	if err := execute([]string{"bogus"}); err == nil {
		t.Error("unknown command succeeded")
	}
	if err := execute([]string{"--app"}); err == nil {
		t.Error("--app without a value succeeded")
	}
}

func TestEquations(t *testing.T) {
	out, _, _ := setup(t)
	if err := execute([]string{"equations"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(easing.Equations()) {
		t.Errorf("got %d equations, want %d", len(lines), len(easing.Equations()))
	}
	if lines[0] != "Linear" {
		t.Errorf("first equation = %q", lines[0])
	}
}

func TestSample(t *testing.T) {
	out, _, _ := setup(t)
	if err := execute([]string{"sample", "linear", "--steps", "4"}); err != nil {
		t.Fatal(err)
	}
	want := "0.000  +0.0000\n0.250  +0.2500\n0.500  +0.5000\n0.750  +0.7500\n1.000  +1.0000\n"
	if out.String() != want {
		t.Errorf("sample output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestSampleErrors(t *testing.T) {
	setup(t)
	tests := [][]string{
		{"sample"},
		{"sample", "OutWobble"},
		{"sample", "bezier:0.1,0.2"},
		{"sample", "Linear", "--steps", "0"},
		{"sample", "Linear", "--steps"},
		{"sample", "Linear", "--fast"},
	}
	for _, args := range tests {
		if err := execute(args); err == nil {
			t.Errorf("execute(%q) succeeded", args)
		}
	}
}

func TestSampleBezierBars(t *testing.T) {
	out, _, _ := setup(t)
	if err := execute([]string{"sample", "bezier:0,0,1,1", "--steps=2", "--bars"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || !strings.HasSuffix(lines[2], strings.Repeat("#", barWidth)) {
		t.Errorf("bars output:\n%s", out.String())
	}
}

func frameLines(out string) []string {
	var frames []string
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if !strings.HasPrefix(line, "  [") {
			frames = append(frames, line)
		}
	}
	return frames
}

func TestRun(t *testing.T) {
	out, _, _ := setup(t)
	file := writePreset(t, "slide.yaml", slideYAML)
	if err := execute([]string{"run", file, "--fps", "2", "--seconds", "0"}); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	for _, want := range []string{
		"[start loop=0 reversed=false]",
		"position=(0.00, 0.00, 0.00)",
		"position=(5.00, 0.00, 0.00)",
		"position=(10.00, 0.00, 0.00)",
		"[finish 1]",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output lacks %q:\n%s", want, text)
		}
	}
	frames := frameLines(text)
	if len(frames) != 4 {
		t.Fatalf("got %d frames, want 4:\n%s", len(frames), text)
	}
	if !strings.Contains(frames[3], "idle") {
		t.Errorf("last frame = %q, want idle", frames[3])
	}
}

func TestRunReverse(t *testing.T) {
	out, _, _ := setup(t)
	file := writePreset(t, "slide.yaml", slideYAML)
	if err := execute([]string{"run", file, "--fps=2", "--seconds=0", "--reverse"}); err != nil {
		t.Fatal(err)
	}
	frames := frameLines(out.String())
	if !strings.Contains(frames[0], "position=(10.00, 0.00, 0.00)") {
		t.Errorf("first frame = %q", frames[0])
	}
	if !strings.Contains(out.String(), "reversed=true") {
		t.Errorf("start event does not report the reversal:\n%s", out.String())
	}
}

func TestRunFixedLength(t *testing.T) {
	out, _, _ := setup(t)
	file := writePreset(t, "spin.yaml", "loop: loop\nrotation: {from: [0,0,0], to: [0,0,90]}\n")
	if err := execute([]string{"run", file, "--fps", "4", "--seconds", "2"}); err != nil {
		t.Fatal(err)
	}
	if n := len(frameLines(out.String())); n != 9 {
		t.Errorf("got %d frames, want 9", n)
	}
}

func TestRunStoredPreset(t *testing.T) {
	out, store, _ := setup(t)
	p, err := preset.Parse([]byte(slideYAML))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save("slide", p); err != nil {
		t.Fatal(err)
	}
	if err := execute([]string{"run", "@slide", "--fps", "2", "--seconds", "0"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "[finish 1]") {
		t.Errorf("stored preset did not finish:\n%s", out.String())
	}
	if err := execute([]string{"run", "@missing"}); err == nil {
		t.Error("running a missing stored preset succeeded")
	}
}

func TestRunErrors(t *testing.T) {
	setup(t)
	writePreset(t, "bad.yaml", "loop: sideways\n")
	tests := [][]string{
		{"run"},
		{"run", "missing.yaml"},
		{"run", "bad.yaml"},
		{"run", "bad.yaml", "--fps", "0"},
		{"run", "bad.yaml", "--seconds", "-1"},
	}
	for _, args := range tests {
		if err := execute(args); err == nil {
			t.Errorf("execute(%q) succeeded", args)
		}
	}
}

func TestPresetCommands(t *testing.T) {
	out, store, _ := setup(t)
	file := writePreset(t, filepath.Join(".", "bounce.yaml"), slideYAML)

	if err := execute([]string{"preset", "save", file}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Saved bounce (memory only)") {
		t.Errorf("save output = %q", out.String())
	}
	if err := execute([]string{"preset", "save", file, "--name", "other"}); err != nil {
		t.Fatal(err)
	}
	if got := store.Names(); len(got) != 2 {
		t.Errorf("Names() = %v", got)
	}

	out.Reset()
	if err := execute([]string{"preset", "list"}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "bounce\nother\n" {
		t.Errorf("list output = %q", out.String())
	}

	out.Reset()
	if err := execute([]string{"preset", "show", "bounce"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "schema: "+preset.SchemaVersion) || !strings.Contains(out.String(), "name: bounce") {
		t.Errorf("show output:\n%s", out.String())
	}

	out.Reset()
	if err := execute([]string{"preset", "delete", "bounce"}); err != nil {
		t.Fatal(err)
	}
	if err := execute([]string{"preset", "delete", "bounce"}); err == nil {
		t.Error("deleting twice succeeded")
	}
	if err := execute([]string{"preset", "rename"}); err == nil {
		t.Error("unknown subcommand succeeded")
	}
}

func TestPresetListEmpty(t *testing.T) {
	out, _, _ := setup(t)
	if err := execute([]string{"preset", "list"}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "No stored presets.\n" {
		t.Errorf("list output = %q", out.String())
	}
}

func TestStoreAppSelection(t *testing.T) {
	_, _, storeApp := setup(t)

	if err := execute([]string{"preset", "list"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(*storeApp, "tween_") {
		t.Errorf("default store app = %q", *storeApp)
	}

	t.Setenv("TWEEN_APP", "from_env")
	if err := execute([]string{"preset", "list"}); err != nil {
		t.Fatal(err)
	}
	if *storeApp != "from_env" {
		t.Errorf("store app = %q, want from_env", *storeApp)
	}

	if err := execute([]string{"--app", "from_flag", "preset", "list"}); err != nil {
		t.Fatal(err)
	}
	if *storeApp != "from_flag" {
		t.Errorf("store app = %q, want from_flag", *storeApp)
	}
}
