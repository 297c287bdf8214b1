package scene

import "github.com/go-drift/tween/pkg/tween"

// Sprite is a surface that owns its color.
type Sprite struct {
	color tween.Color
}

// NewSprite creates a sprite with color c.
func NewSprite(c tween.Color) *Sprite {
	return &Sprite{color: c}
}

func (s *Sprite) Color() tween.Color     { return s.color }
func (s *Sprite) SetColor(c tween.Color) { s.color = c }

// Material is a color resource that several renderers may share.
type Material struct {
	Name  string
	color tween.Color
}

// NewMaterial creates a material with color c.
func NewMaterial(name string, c tween.Color) *Material {
	return &Material{Name: name, color: c}
}

func (m *Material) Color() tween.Color     { return m.color }
func (m *Material) SetColor(c tween.Color) { m.color = c }

// Clone returns a private copy of the material.
func (m *Material) Clone() tween.Material {
	return &Material{Name: m.Name + " (instance)", color: m.color}
}

// Renderer is a surface whose color lives on a possibly shared material.
type Renderer struct {
	material tween.Material
}

// NewRenderer creates a renderer drawing with m.
func NewRenderer(m *Material) *Renderer {
	return &Renderer{material: m}
}

// Material implements tween.MaterialSurface.
func (r *Renderer) Material() tween.Material { return r.material }

// SetMaterial implements tween.MaterialSurface.
func (r *Renderer) SetMaterial(m tween.Material) { r.material = m }

// Color returns the color of the current material, or white without one.
func (r *Renderer) Color() tween.Color {
	if r.material == nil {
		return tween.White
	}
	return r.material.Color()
}

// SetColor recolors the current material.
func (r *Renderer) SetColor(c tween.Color) {
	if r.material != nil {
		r.material.SetColor(c)
	}
}
