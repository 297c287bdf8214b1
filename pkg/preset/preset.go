// Package preset stores tween configurations as YAML records.
//
// A preset mirrors the configuration fields of a [tween.Tween] and is applied
// by copying them, one by one, onto a freshly attached tween:
//
//	schema: v1.0.0
//	duration: 0.4
//	easing: OutBack
//	loop: pingpong
//	loops: 2
//	position:
//	  from: [0, 0, 0]
//	  to: [0, 40, 0]
//	  animate: [y]
//	color:
//	  from: white
//	  to: "#ff8800"
//
// Property sections that are absent keep the live values captured when the
// tween was attached.
package preset

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/tween/pkg/easing"
	"github.com/go-drift/tween/pkg/errors"
	"github.com/go-drift/tween/pkg/tween"
)

// SchemaVersion is written into every marshaled preset. Presets with the
// same major version can be read.
const SchemaVersion = "v1.0.0"

// CurveEasing is the easing name selecting the keyframe or bezier curve.
const CurveEasing = "curve"

// Preset is the persisted form of a tween configuration.
type Preset struct {
	Schema string `yaml:"schema"`
	Name   string `yaml:"name,omitempty"`
	Tag    string `yaml:"tag,omitempty"`

	PlayOnStart  bool `yaml:"play_on_start,omitempty"`
	PlayOnEnable bool `yaml:"play_on_enable,omitempty"`

	// Duration is nil when the preset keeps the tween's default.
	Duration *float64 `yaml:"duration,omitempty"`
	Speed    float64  `yaml:"speed,omitempty"`
	Delay    float64  `yaml:"delay,omitempty"`
	Loop     string   `yaml:"loop,omitempty"`
	Loops    int      `yaml:"loops,omitempty"`

	Easing             string            `yaml:"easing,omitempty"`
	Curve              []easing.Keyframe `yaml:"curve,omitempty"`
	Bezier             []float64         `yaml:"bezier,omitempty,flow"`
	FlipCurveOnReverse *bool             `yaml:"flip_curve_on_reverse,omitempty"`

	Position *Spatial `yaml:"position,omitempty"`
	Rotation *Spatial `yaml:"rotation,omitempty"`
	Scale    *Spatial `yaml:"scale,omitempty"`
	Color    *Colors  `yaml:"color,omitempty"`
	Alpha    *Range   `yaml:"alpha,omitempty"`
	Scalar   *Range   `yaml:"scalar,omitempty"`
}

// Spatial is a position, rotation or scale section.
type Spatial struct {
	From     []float64 `yaml:"from,flow"`
	To       []float64 `yaml:"to,flow"`
	Local    bool      `yaml:"local,omitempty"`
	Relative bool      `yaml:"relative,omitempty"`
	// Animate lists the animated axes; empty animates all three.
	Animate []string `yaml:"animate,omitempty,flow"`
}

// Colors is a color section.
type Colors struct {
	From ColorValue `yaml:"from"`
	To   ColorValue `yaml:"to"`
}

// Range is an alpha or scalar section.
type Range struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// bezierSamples is the number of keys sampled from a bezier easing.
const bezierSamples = 16

// Parse decodes and validates a YAML preset. Unknown fields are rejected.
func Parse(data []byte) (*Preset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Preset
	if err := dec.Decode(&p); err != nil {
		return nil, presetError("preset.Parse", p.Name, err)
	}
	if p.Schema == "" {
		p.Schema = SchemaVersion
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses the preset file at path.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, presetError("preset.Load", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = nameFromPath(path)
	}
	return p, nil
}

// Marshal encodes p as YAML, stamping the current schema version.
func Marshal(p *Preset) ([]byte, error) {
	out := *p
	out.Schema = SchemaVersion
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return nil, presetError("preset.Marshal", p.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, presetError("preset.Marshal", p.Name, err)
	}
	return buf.Bytes(), nil
}

// Validate checks every field that cannot fall back to a default. An unknown
// easing name is not an error here; it falls back to Linear when applied.
func (p *Preset) Validate() error {
	fail := func(format string, args ...any) error {
		return presetError("preset.Validate", p.Name, fmt.Errorf(format, args...))
	}

	if !semver.IsValid(p.Schema) {
		return fail("invalid schema version %q", p.Schema)
	}
	if semver.Major(p.Schema) != semver.Major(SchemaVersion) {
		return fail("unsupported schema %s (want %s.x)", p.Schema, semver.Major(SchemaVersion))
	}
	if _, err := tween.ParseLoopType(p.Loop); err != nil {
		return fail("%v", err)
	}
	if p.Loops < 0 {
		return fail("loops must not be negative, got %d", p.Loops)
	}
	if p.Speed < 0 || p.Delay < 0 {
		return fail("speed and delay must not be negative")
	}
	if len(p.Bezier) != 0 && len(p.Bezier) != 4 {
		return fail("bezier needs 4 control values, got %d", len(p.Bezier))
	}
	if p.Easing == CurveEasing && len(p.Curve) == 0 && len(p.Bezier) == 0 {
		return fail("easing %q needs curve keys or a bezier", CurveEasing)
	}
	for name, s := range map[string]*Spatial{"position": p.Position, "rotation": p.Rotation, "scale": p.Scale} {
		if s == nil {
			continue
		}
		if err := s.validate(); err != nil {
			return fail("%s: %v", name, err)
		}
	}
	return nil
}

func (s *Spatial) validate() error {
	if len(s.From) != 3 || len(s.To) != 3 {
		return fmt.Errorf("from and to need 3 components")
	}
	_, err := s.mask()
	return err
}

// mask resolves Animate into an axis mask.
func (s *Spatial) mask() (tween.AxisMask, error) {
	if len(s.Animate) == 0 {
		return tween.AxisMask{}, nil
	}
	m := tween.IgnoreAll()
	for _, name := range s.Animate {
		axis, err := tween.ParseAxis(name)
		if err != nil {
			return tween.AxisMask{}, err
		}
		m[axis] = tween.AxisEnabled
	}
	return m, nil
}

func (s *Spatial) vectors() (from, to tween.Vec3) {
	copy(from[:], s.From)
	copy(to[:], s.To)
	return from, to
}

// selector resolves the easing fields. set is false when the preset leaves
// easing unset. An unknown equation name yields Linear and an error.
func (p *Preset) selector() (sel easing.Selector, set bool, err error) {
	switch {
	case p.Easing == "" && len(p.Curve) == 0 && len(p.Bezier) == 0:
		return easing.Selector{}, false, nil
	case p.Easing == CurveEasing || p.Easing == "" && (len(p.Curve) > 0 || len(p.Bezier) > 0):
		if len(p.Curve) > 0 {
			return easing.CurveSelector(easing.NewCurve(p.Curve...)), true, nil
		}
		b := p.Bezier
		return easing.CurveSelector(easing.CubicBezierCurve(b[0], b[1], b[2], b[3], bezierSamples)), true, nil
	}
	eq, err := easing.ParseEquation(p.Easing)
	return eq.Selector(), true, err
}

func presetError(op, name string, err error) error {
	return &errors.TweenError{Op: op, Kind: errors.KindPreset, Tag: name, Err: err}
}
