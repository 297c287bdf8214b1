package tween

// binding caches the surfaces of an entity for the length of a run and owns
// the per-run material clones.
type binding struct {
	surfaces []Surface
	// backups[i] is the material surfaces[i] had at rebind, or nil.
	backups []Material
}

// rebind re-enumerates the entity's surfaces and records their materials.
func (b *binding) rebind(e Entity) {
	b.surfaces = nil
	b.backups = nil
	if e == nil {
		return
	}
	b.surfaces = e.Surfaces()
	b.backups = make([]Material, len(b.surfaces))
	for i, s := range b.surfaces {
		if ms, ok := s.(MaterialSurface); ok {
			b.backups[i] = ms.Material()
		}
	}
}

// instantiate gives every bound surface a private copy of its material.
// Surfaces sharing one material share one clone.
func (b *binding) instantiate() {
	clones := make(map[Material]Material)
	for _, s := range b.surfaces {
		ms, ok := s.(MaterialSurface)
		if !ok {
			continue
		}
		m := ms.Material()
		if m == nil {
			continue
		}
		clone, seen := clones[m]
		if !seen {
			clone = m.Clone()
			clones[m] = clone
		}
		ms.SetMaterial(clone)
	}
}

// release hands the original material back to each surface whose clone
// still carries the original color. A clone that another tween has since
// recolored is left in place.
func (b *binding) release() {
	for i, s := range b.surfaces {
		ms, ok := s.(MaterialSurface)
		if !ok || b.backups[i] == nil {
			continue
		}
		current := ms.Material()
		if current == nil || current == b.backups[i] {
			continue
		}
		if colorEqual(current.Color(), b.backups[i].Color()) {
			ms.SetMaterial(b.backups[i])
		}
	}
}

// firstColor returns the color of the first bound surface, or White.
func (b *binding) firstColor() Color {
	if len(b.surfaces) == 0 {
		return White
	}
	return b.surfaces[0].Color()
}
