package preset

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/tween/pkg/tween"
)

// ColorValue is a color written as "#rrggbb", "#rrggbbaa", an SVG color name
// such as "tomato", or a list of 3 or 4 components in [0, 1].
type ColorValue tween.Color

// ParseColor parses the scalar forms of a ColorValue.
func ParseColor(s string) (tween.Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return tween.Color{}, fmt.Errorf("unknown color %q", s)
	}
	return tween.ColorOf(named), nil
}

func parseHex(hex string) (tween.Color, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return tween.Color{}, fmt.Errorf("hex color needs 6 or 8 digits, got %q", hex)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tween.Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	return tween.ColorOf(color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}), nil
}

// String formats c as "#rrggbb", or "#rrggbbaa" when it is translucent.
func (c ColorValue) String() string {
	n := tween.NRGBA(tween.Color(c))
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorValue) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseColor(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = ColorValue(parsed)
		return nil
	case yaml.SequenceNode:
		var parts []float64
		if err := value.Decode(&parts); err != nil {
			return err
		}
		if len(parts) != 3 && len(parts) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 components, got %d", value.Line, len(parts))
		}
		out := tween.Color{0, 0, 0, 1}
		copy(out[:], parts)
		*c = ColorValue(out)
		return nil
	}
	return fmt.Errorf("line %d: invalid color", value.Line)
}

// MarshalYAML implements yaml.Marshaler. Colors are written as hex, which
// quantizes components to 8 bits.
func (c ColorValue) MarshalYAML() (any, error) {
	return c.String(), nil
}

func nameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
