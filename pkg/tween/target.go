package tween

// EntityID identifies an entity in a Registry. Zero is never a valid id.
type EntityID uint64

// Entity is the host object a tween animates. Implementations adapt a scene
// node, widget or sprite.
type Entity interface {
	ID() EntityID
	// Active reports whether the entity accepts Play and Reverse.
	Active() bool
	Transform() Transform
	// Surfaces enumerates the colorable sub-targets, including those of
	// inactive children. It is called on every rebind, never per frame.
	Surfaces() []Surface
}

// Transform reads and writes the spatial properties of an entity.
// Rotation values are Euler angles in degrees.
type Transform interface {
	Value(p Property, local bool) Vec3
	Apply(p Property, local bool, v Vec3)
}

// Surface is a colorable sub-target such as a sprite or a text element.
type Surface interface {
	Color() Color
	SetColor(c Color)
}

// MaterialSurface is a Surface whose color lives on a Material that may be
// shared with other entities. Tweens clone the material when a run starts
// and hand the original back when it completes.
type MaterialSurface interface {
	Surface
	Material() Material
	SetMaterial(m Material)
}

// Material is a shareable color resource. Implementations must be
// comparable, typically pointers, because clones are deduplicated by identity.
type Material interface {
	Color() Color
	SetColor(c Color)
	Clone() Material
}
