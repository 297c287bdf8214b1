package tweentest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/tween/pkg/tween"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Trace is a frame-by-frame recording of watched entities.
type Trace struct {
	Frames []Frame `json:"frames"`
}

// Frame holds the values of every watched entity after one step.
type Frame struct {
	Index    int           `json:"index"`
	Step     float64       `json:"step"`
	Entities []EntityState `json:"entities"`
}

// EntityState is the observable state of one entity. Values are rounded so
// golden files survive harmless floating point drift.
type EntityState struct {
	Name     string        `json:"name"`
	Position tween.Vec3    `json:"position"`
	Rotation tween.Vec3    `json:"rotation"`
	Scale    tween.Vec3    `json:"scale"`
	Colors   []tween.Color `json:"colors,omitempty"`
}

// precision is the number of decimal places kept in snapshots.
const precision = 1e6

// Capture reads the world values and surface colors of e.
func Capture(name string, e tween.Entity) EntityState {
	s := EntityState{Name: name}
	if tr := e.Transform(); tr != nil {
		s.Position = round3(tr.Value(tween.PropertyPosition, false))
		s.Rotation = round3(tr.Value(tween.PropertyRotation, false))
		s.Scale = round3(tr.Value(tween.PropertyScale, true))
	}
	for _, surface := range e.Surfaces() {
		c := surface.Color()
		s.Colors = append(s.Colors, tween.Color{round(c[0]), round(c[1]), round(c[2]), round(c[3])})
	}
	return s
}

func round(v float64) float64 {
	r := math.Round(v*precision) / precision
	if r == 0 {
		return 0 // normalizes -0
	}
	return r
}

func round3(v tween.Vec3) tween.Vec3 {
	return tween.Vec3{round(v[0]), round(v[1]), round(v[2])}
}

// Last returns the state of name in the final frame.
func (tr *Trace) Last(name string) (EntityState, bool) {
	if len(tr.Frames) == 0 {
		return EntityState{}, false
	}
	for _, s := range tr.Frames[len(tr.Frames)-1].Entities {
		if s.Name == name {
			return s, true
		}
	}
	return EntityState{}, false
}

// MatchesFile compares this trace against a golden file. On mismatch it
// reports a diff and instructions for updating. When TWEEN_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (tr *Trace) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("TWEEN_UPDATE_SNAPSHOTS") == "1" {
		if err := tr.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadTrace(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: TWEEN_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := tr.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: TWEEN_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this trace to path, creating directories as needed.
func (tr *Trace) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalTrace(tr)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this trace and other, or the empty
// string when they are equal.
func (tr *Trace) Diff(other *Trace) string {
	a, _ := marshalTrace(tr)
	b, _ := marshalTrace(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func loadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tr Trace
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("invalid trace JSON: %w", err)
	}
	return &tr, nil
}

func marshalTrace(tr *Trace) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
