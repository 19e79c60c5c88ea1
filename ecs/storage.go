package ecs

import (
	"cmp"
	"reflect"
	"slices"
	"strings"
	"weak"
)

// Storage owns every archetype, singleton and event bus of one world.
type Storage struct {
	archetypes map[uint32]*Archetype
	registry   *ComponentRegistry
	singletons map[reflect.Type]*singletonEntry
	events     map[reflect.Type]eventBus
}

func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
		events:     make(map[reflect.Type]eventBus),
	}
}

// Registry returns the component registry the storage was built with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates an entity from the given components. Components may be
// passed by value or by pointer; the value is copied either way.
func (s *Storage) Spawn(components ...any) EntityId {
	types, sorted := sortComponents(components)
	a := s.archetypeFor(types)
	return NewEntityId(a.id, a.spawn(sorted))
}

// Alive reports whether id names a live entity.
func (s *Storage) Alive(id EntityId) bool {
	a, ok := s.archetypes[id.ArchetypeId()]
	return ok && a.alive(id.Index())
}

// Delete removes the entity. Deleting a dead entity does nothing.
func (s *Storage) Delete(id EntityId) {
	a, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !a.alive(id.Index()) {
		return
	}
	a.delete(id.Index())
}

// AddComponent moves the entity into the archetype that also has the new
// component and returns its new id. Adding a type the entity already has
// overwrites the value in place.
func (s *Storage) AddComponent(id EntityId, component any) EntityId {
	old, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !old.alive(id.Index()) {
		return 0
	}

	t := componentType(component)
	if i := old.columnIndex(t); i >= 0 {
		dst := old.columns[i].Get(int(id.Index()))
		reflect.ValueOf(dst).Elem().Set(reflect.Indirect(reflect.ValueOf(component)))
		return id
	}

	types := append(slices.Clone(old.types), t)
	sortTypes(types)
	return s.move(id, old, types, t, component)
}

// RemoveComponent moves the entity into the archetype without t. Removing the
// last component deletes the entity and returns 0.
func (s *Storage) RemoveComponent(id EntityId, t reflect.Type) EntityId {
	old, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !old.alive(id.Index()) || !old.HasComponent(t) {
		return id
	}

	types := make([]reflect.Type, 0, len(old.types)-1)
	for _, ot := range old.types {
		if ot != t {
			types = append(types, ot)
		}
	}
	if len(types) == 0 {
		old.delete(id.Index())
		return 0
	}
	return s.move(id, old, types, nil, nil)
}

// move copies the entity's components into the archetype for types, using
// extra for the column of type extraType, then frees the old slot.
func (s *Storage) move(id EntityId, old *Archetype, types []reflect.Type, extraType reflect.Type, extra any) EntityId {
	dst := s.archetypeFor(types)

	components := make([]any, len(types))
	for i, t := range types {
		if t == extraType {
			components[i] = extra
		} else {
			components[i] = old.GetComponent(id.Index(), t)
		}
	}
	newId := NewEntityId(dst.id, dst.spawn(components))

	if wp, ok := old.refs.Get(id); ok {
		if ref := wp.Value(); ref != nil {
			ref.Id = newId
			ref.Archetype = dst
			dst.refs.Put(newId, wp)
		}
		old.refs.Del(id)
	}

	for _, c := range old.columns {
		c.Delete(int(id.Index()))
	}
	return newId
}

// GetComponent returns a pointer to the entity's component of type t, or nil.
func (s *Storage) GetComponent(id EntityId, t reflect.Type) any {
	a, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return a.GetComponent(id.Index(), t)
}

func (s *Storage) HasComponent(id EntityId, t reflect.Type) bool {
	a, ok := s.archetypes[id.ArchetypeId()]
	return ok && a.alive(id.Index()) && a.HasComponent(t)
}

// GetArchetype returns the archetype holding exactly the given component
// types, or nil if none has been created yet.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types, _ := sortComponents(components)
	return s.archetypes[hashTypes(types)]
}

// Archetypes yields every archetype in no particular order.
func (s *Storage) Archetypes() func(yield func(*Archetype) bool) {
	return func(yield func(*Archetype) bool) {
		for _, a := range s.archetypes {
			if !yield(a) {
				return
			}
		}
	}
}

// Compact compacts every archetype.
func (s *Storage) Compact() {
	for _, a := range s.archetypes {
		a.Compact()
	}
}

// CreateEntityRef returns the ref for id, creating it on first use.
// Returns nil for a dead entity.
func (s *Storage) CreateEntityRef(id EntityId) *EntityRef {
	a, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !a.alive(id.Index()) {
		return nil
	}
	if wp, ok := a.refs.Get(id); ok {
		if ref := wp.Value(); ref != nil {
			return ref
		}
	}
	ref := &EntityRef{Id: id, Archetype: a}
	a.refs.Put(id, weak.Make(ref))
	return ref
}

func (s *Storage) ResolveEntityRef(ref *EntityRef) (EntityId, bool) {
	if !ref.Valid() {
		return 0, false
	}
	return ref.Id, true
}

// InvalidateEntityRef detaches ref from its entity without deleting it.
func (s *Storage) InvalidateEntityRef(ref *EntityRef) bool {
	if !ref.Valid() {
		return false
	}
	if a, ok := s.archetypes[ref.Id.ArchetypeId()]; ok {
		a.refs.Del(ref.Id)
	}
	ref.clear()
	return true
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypes(types)
	a, ok := s.archetypes[id]
	if !ok {
		a = newArchetype(id, types, s.registry)
		s.archetypes[id] = a
	}
	return a
}

func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t == nil {
		panic("ecs: nil component")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic("ecs: component " + t.String() + " must be a value type")
	}
	return t
}

func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, compareTypes)
}

// compareTypes orders types by name. Distinct types can share a name, so ties
// fall back to the package path and then the runtime type pointer.
func compareTypes(a, b reflect.Type) int {
	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}
	if c := strings.Compare(a.PkgPath(), b.PkgPath()); c != 0 {
		return c
	}
	return cmp.Compare(reflect.ValueOf(a).Pointer(), reflect.ValueOf(b).Pointer())
}

// sortComponents returns the component types sorted by name together with the
// components reordered to match.
func sortComponents(components []any) ([]reflect.Type, []any) {
	if len(components) == 0 {
		panic("ecs: cannot spawn entity without components")
	}

	type pair struct {
		t reflect.Type
		c any
	}
	pairs := make([]pair, len(components))
	for i, c := range components {
		pairs[i] = pair{componentType(c), c}
	}
	slices.SortFunc(pairs, func(a, b pair) int {
		return compareTypes(a.t, b.t)
	})

	types := make([]reflect.Type, len(pairs))
	sorted := make([]any, len(pairs))
	for i, p := range pairs {
		if i > 0 && types[i-1] == p.t {
			panic("ecs: duplicate component " + p.t.String())
		}
		types[i] = p.t
		sorted[i] = p.c
	}
	return types, sorted
}

// hashTypes is FNV-1a over the runtime type pointers of a sorted type set.
// Zero is reserved so that EntityId 0 is never live.
func hashTypes(types []reflect.Type) uint32 {
	const (
		offset uint32 = 2166136261
		prime  uint32 = 16777619
	)
	h := offset
	for _, t := range types {
		p := uint64(uintptr(dataPointer(t)))
		h ^= uint32(p) ^ uint32(p>>32)
		h *= prime
	}
	if h == 0 {
		h = 1
	}
	return h
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T, or nil if it has none.
func ReadComponent[T any](reader ComponentReader, id EntityId) *T {
	c, _ := reader.GetComponent(id, reflect.TypeFor[T]()).(*T)
	return c
}
