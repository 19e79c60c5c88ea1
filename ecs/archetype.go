package ecs

import (
	"reflect"
	"slices"
	"weak"

	"github.com/kamstrup/intmap"
)

// Archetype holds every entity that has exactly one particular set of
// component types, one column per type. Slot indices are shared by all
// columns of the archetype.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
	refs    *intmap.Map[EntityId, weak.Pointer[EntityRef]]
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
		refs:    intmap.New[EntityId, weak.Pointer[EntityRef]](64),
	}
	for i, t := range types {
		a.columns[i] = registry.newColumn(t)
	}
	return a
}

func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the component types sorted by name.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

func (a *Archetype) columnIndex(t reflect.Type) int {
	return slices.Index(a.types, t)
}

func (a *Archetype) HasComponent(t reflect.Type) bool {
	return a.columnIndex(t) >= 0
}

// Len is the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// spawn appends components, which must be in the same order as a.types.
func (a *Archetype) spawn(components []any) uint32 {
	var index int
	for i, comp := range components {
		index = a.columns[i].Append(comp)
	}
	return uint32(index)
}

// GetComponent returns a pointer to the component or nil.
func (a *Archetype) GetComponent(index uint32, t reflect.Type) any {
	i := a.columnIndex(t)
	if i < 0 {
		return nil
	}
	return a.columns[i].Get(int(index))
}

func (a *Archetype) alive(index uint32) bool {
	return len(a.columns) > 0 && a.columns[0].Has(int(index))
}

// delete frees the slot and clears any EntityRef pointing at it.
func (a *Archetype) delete(index uint32) {
	id := NewEntityId(a.id, index)
	if wp, ok := a.refs.Get(id); ok {
		if ref := wp.Value(); ref != nil {
			ref.clear()
		}
		a.refs.Del(id)
	}
	for _, c := range a.columns {
		c.Delete(int(index))
	}
}

// Compact removes holes left by deletions. Live EntityRefs are rewritten to
// the new slots; raw EntityIds held elsewhere become stale.
func (a *Archetype) Compact() {
	if len(a.columns) == 0 {
		return
	}

	moved := a.columns[0].Compact()
	for _, c := range a.columns[1:] {
		c.Compact()
	}

	refs := intmap.New[EntityId, weak.Pointer[EntityRef]](a.refs.Len())
	for oldIndex, newIndex := range moved {
		wp, ok := a.refs.Get(NewEntityId(a.id, uint32(oldIndex)))
		if !ok {
			continue
		}
		if ref := wp.Value(); ref != nil {
			ref.Id = NewEntityId(a.id, uint32(newIndex))
			refs.Put(ref.Id, wp)
		}
	}
	a.refs = refs
}

// Iter yields the id of every live entity.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
