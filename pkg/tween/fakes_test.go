package tween

import (
	"sync"
	"testing"

	"github.com/go-drift/tween/pkg/errors"
)

// fakeEntity is a root transform with no parent: world and local values
// are the same.
type fakeEntity struct {
	id       EntityID
	active   bool
	values   [3]Vec3
	surfaces []Surface
	applies  int
}

func newFakeEntity(id EntityID) *fakeEntity {
	e := &fakeEntity{id: id, active: true}
	e.values[PropertyScale] = Vec3{1, 1, 1}
	return e
}

func (e *fakeEntity) ID() EntityID                  { return e.id }
func (e *fakeEntity) Active() bool                  { return e.active }
func (e *fakeEntity) Transform() Transform          { return e }
func (e *fakeEntity) Surfaces() []Surface           { return e.surfaces }
func (e *fakeEntity) Value(p Property, _ bool) Vec3 { return e.values[p] }

func (e *fakeEntity) Apply(p Property, _ bool, v Vec3) {
	e.applies++
	e.values[p] = v
}

func (e *fakeEntity) position() Vec3 { return e.values[PropertyPosition] }

type fakeSurface struct {
	color Color
}

func (s *fakeSurface) Color() Color     { return s.color }
func (s *fakeSurface) SetColor(c Color) { s.color = c }

type fakeMaterial struct {
	color  Color
	clones int
}

func (m *fakeMaterial) Color() Color     { return m.color }
func (m *fakeMaterial) SetColor(c Color) { m.color = c }
func (m *fakeMaterial) Clone() Material {
	m.clones++
	return &fakeMaterial{color: m.color}
}

type fakeRenderer struct {
	material Material
}

func (r *fakeRenderer) Material() Material     { return r.material }
func (r *fakeRenderer) SetMaterial(m Material) { r.material = m }
func (r *fakeRenderer) Color() Color           { return r.material.Color() }
func (r *fakeRenderer) SetColor(c Color)       { r.material.SetColor(c) }

// captureHandler collects reported diagnostics.
type captureHandler struct {
	mu     sync.Mutex
	errs   []*errors.TweenError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.TweenError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func (h *captureHandler) kinds() []errors.ErrorKind {
	h.mu.Lock()
	defer h.mu.Unlock()
	var kinds []errors.ErrorKind
	for _, err := range h.errs {
		kinds = append(kinds, err.Kind)
	}
	return kinds
}

// captureErrors installs a captureHandler for the duration of the test.
func captureErrors(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

// attach returns a fresh tween on a fake entity.
func attach(t *testing.T) (*Tween, *fakeEntity) {
	t.Helper()
	e := newFakeEntity(1)
	tw, err := NewRegistry().Attach(e, 0)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	return tw, e
}

// run ticks tw by dt until it stops playing, failing after limit ticks.
func run(t *testing.T, tw *Tween, dt float64, limit int) int {
	t.Helper()
	for i := range limit {
		if !tw.IsPlaying() {
			return i
		}
		tw.Tick(dt)
	}
	if tw.IsPlaying() {
		t.Fatalf("tween still playing after %d ticks", limit)
	}
	return limit
}

const tolerance = 1e-9

func near(a, b float64) bool {
	d := a - b
	return d < tolerance && d > -tolerance
}
