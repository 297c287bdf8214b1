package tween

// UpdateAll applies every property for the easing factor f. Factor 0 is the
// start of the range and 1 the end; easing equations may overshoot both.
// Applying the same factor twice produces the same values.
func (t *Tween) UpdateAll(f float64) {
	t.factor = f
	t.applySpatial(PropertyPosition, &t.Position, f)
	t.applySpatial(PropertyRotation, &t.Rotation, f)
	t.applySpatial(PropertyScale, &t.Scale, f)
	t.applyColor(f)
	t.applyAlpha(f)
	t.Scalar.Value = lerp(t.Scalar.From, t.Scalar.To, f)
}

// Settled reports whether the run has reached its end and every animated
// spatial property already sits on its target.
func (t *Tween) Settled() bool {
	if t.state.elapsedTime < t.Duration {
		return false
	}
	for p, r := range t.spatialRanges() {
		if vecEqual(r.From, r.To) {
			continue
		}
		if !t.atTarget(p, r) {
			return false
		}
	}
	return true
}

func (t *Tween) spatialRanges() map[Property]*SpatialRange {
	return map[Property]*SpatialRange{
		PropertyPosition: &t.Position,
		PropertyRotation: &t.Rotation,
		PropertyScale:    &t.Scale,
	}
}

// spatialLocal reports whether p is read and written in the parent's space.
func spatialLocal(p Property, r *SpatialRange) bool {
	return r.Local || p == PropertyScale
}

func (t *Tween) spatialBase(p Property, r *SpatialRange) Vec3 {
	if !r.Relative {
		return Vec3{}
	}
	if spatialLocal(p, r) {
		return t.base[1][p]
	}
	return t.base[0][p]
}

func (t *Tween) atTarget(p Property, r *SpatialRange) bool {
	tr := t.transform()
	if tr == nil {
		return true
	}
	base := t.spatialBase(p, r)
	target := Vec3{r.To[0] + base[0], r.To[1] + base[1], r.To[2] + base[2]}
	return vecEqual(tr.Value(p, spatialLocal(p, r)), target)
}

func (t *Tween) applySpatial(p Property, r *SpatialRange, f float64) {
	tr := t.transform()
	if tr == nil || vecEqual(r.From, r.To) {
		return
	}
	if t.state.elapsedTime >= t.Duration && t.atTarget(p, r) {
		return
	}

	local := spatialLocal(p, r)
	current := tr.Value(p, local)
	base := t.spatialBase(p, r)

	var v Vec3
	for axis := AxisX; axis <= AxisZ; axis++ {
		if r.Ignore.Ignored(axis) {
			v[axis] = current[axis]
			continue
		}
		v[axis] = lerp(r.From[axis], r.To[axis], f) + base[axis]
	}
	tr.Apply(p, local, v)
}

func (t *Tween) applyColor(f float64) {
	r := &t.Color
	if len(t.bind.surfaces) == 0 || colorEqual(r.From, r.To) {
		return
	}
	if t.state.elapsedTime >= t.Duration && colorEqual(t.bind.firstColor(), r.To) {
		return
	}
	c := Color{
		lerp(r.From[0], r.To[0], f),
		lerp(r.From[1], r.To[1], f),
		lerp(r.From[2], r.To[2], f),
		lerp(r.From[3], r.To[3], f),
	}
	for _, s := range t.bind.surfaces {
		s.SetColor(c)
	}
}

// applyAlpha runs after applyColor and overrides only the alpha component
// of each surface's current color.
func (t *Tween) applyAlpha(f float64) {
	r := &t.Alpha
	if len(t.bind.surfaces) == 0 || r.From == r.To {
		return
	}
	if t.state.elapsedTime >= t.Duration && t.bind.firstColor()[3] == r.To {
		return
	}
	a := clamp01(lerp(r.From, r.To, f))
	for _, s := range t.bind.surfaces {
		c := s.Color()
		c[3] = a
		s.SetColor(c)
	}
}

// animatesColor reports whether a run writes surface colors, which requires
// private material copies.
func (t *Tween) animatesColor() bool {
	return !colorEqual(t.Color.From, t.Color.To) || t.Alpha.From != t.Alpha.To
}
