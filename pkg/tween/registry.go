package tween

import (
	"slices"

	"github.com/go-drift/tween/pkg/errors"
)

// Registry owns tweens keyed by entity and tween id. It replaces any form
// of scene search: hosts attach tweens explicitly and step the registry once
// per frame.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	entities map[EntityID]*entityTweens
	// order keeps Step deterministic across frames.
	order []EntityID
}

type entityTweens struct {
	entity Entity
	tweens []*Tween
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entities: make(map[EntityID]*entityTweens)}
}

// Attach returns the tween with id on e, creating it when absent. A new
// tween starts with every range collapsed onto the entity's live values.
func (r *Registry) Attach(e Entity, id int) (*Tween, error) {
	if e == nil {
		return nil, &errors.TweenError{
			Op:   "tween.Attach",
			Kind: errors.KindLookup,
			Err:  errors.ErrNilEntity,
		}
	}
	set, ok := r.entities[e.ID()]
	if !ok {
		set = &entityTweens{entity: e}
		r.entities[e.ID()] = set
		r.order = append(r.order, e.ID())
	}
	for _, t := range set.tweens {
		if t.id == id {
			return t, nil
		}
	}
	t := newTween(r, e, id)
	set.tweens = append(set.tweens, t)
	return t, nil
}

// Lookup returns the tween with id on the entity, if attached.
func (r *Registry) Lookup(entity EntityID, id int) (*Tween, bool) {
	set, ok := r.entities[entity]
	if !ok {
		return nil, false
	}
	for _, t := range set.tweens {
		if t.id == id {
			return t, true
		}
	}
	return nil, false
}

// Tweens returns the tweens attached to the entity in attach order.
func (r *Registry) Tweens(entity EntityID) []*Tween {
	set, ok := r.entities[entity]
	if !ok {
		return nil
	}
	return slices.Clone(set.tweens)
}

// FindByTag returns the first tween on the entity carrying tag.
func (r *Registry) FindByTag(entity EntityID, tag string) (*Tween, bool) {
	set, ok := r.entities[entity]
	if !ok {
		return nil, false
	}
	for _, t := range set.tweens {
		if t.Tag == tag {
			return t, true
		}
	}
	return nil, false
}

// Detach stops and removes one tween. It reports whether the tween existed.
func (r *Registry) Detach(entity EntityID, id int) bool {
	set, ok := r.entities[entity]
	if !ok {
		return false
	}
	i := slices.IndexFunc(set.tweens, func(t *Tween) bool { return t.id == id })
	if i < 0 {
		return false
	}
	set.tweens[i].Stop()
	set.tweens[i].registry = nil
	set.tweens = slices.Delete(set.tweens, i, i+1)
	if len(set.tweens) == 0 {
		r.drop(entity)
	}
	return true
}

// DetachAll stops and removes every tween of the entity.
func (r *Registry) DetachAll(entity EntityID) {
	set, ok := r.entities[entity]
	if !ok {
		return
	}
	for _, t := range set.tweens {
		t.Stop()
		t.registry = nil
	}
	r.drop(entity)
}

func (r *Registry) drop(entity EntityID) {
	delete(r.entities, entity)
	r.order = slices.DeleteFunc(r.order, func(id EntityID) bool { return id == entity })
}

// Len returns the number of attached tweens.
func (r *Registry) Len() int {
	n := 0
	for _, set := range r.entities {
		n += len(set.tweens)
	}
	return n
}

// Enable is the host hook for an entity becoming active. Tweens with
// PlayOnEnable play again in the direction they last ran.
func (r *Registry) Enable(entity EntityID) {
	for _, t := range r.Tweens(entity) {
		if !t.PlayOnEnable {
			continue
		}
		if t.state.reversed {
			t.Reverse()
		} else {
			t.Play()
		}
	}
}

// Disable is the host hook for an entity becoming inactive. Every tween of
// the entity stops.
func (r *Registry) Disable(entity EntityID) {
	for _, t := range r.Tweens(entity) {
		t.Stop()
	}
}

// Step advances every attached tween by dt seconds. Tweens attached during
// a step are first ticked on the next one, and tweens detached during a step
// are not ticked again. A panic in a tween callback is reported and does not
// stop the other tweens.
func (r *Registry) Step(dt float64) {
	var snapshot []*Tween
	for _, id := range r.order {
		snapshot = append(snapshot, r.entities[id].tweens...)
	}
	for _, t := range snapshot {
		if t.registry != r {
			continue
		}
		r.step(t, dt)
	}
}

func (r *Registry) step(t *Tween, dt float64) {
	defer errors.Recover("tween.Step")
	if !t.started {
		t.started = true
		if t.PlayOnStart {
			t.Play()
		}
	}
	t.Tick(dt)
}

// Playing returns the number of tweens with a run in progress.
func (r *Registry) Playing() int {
	n := 0
	for _, set := range r.entities {
		for _, t := range set.tweens {
			if t.state.playing {
				n++
			}
		}
	}
	return n
}
