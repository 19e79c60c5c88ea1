package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// viewField describes one pointer field of a view struct.
type viewField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
}

// View reads entities through a struct of component pointers.
//
//	type movers struct {
//		ecs.EntityId             // filled with the entity id
//		*Position                // required
//		Vel *Velocity `ecs:"optional"`
//	}
//
// Embedded pointer fields are required. Named pointer fields may be tagged
// `ecs:"optional"` and are nil when the entity lacks the component. A field of
// type EntityId receives the id. Pointers alias storage and stay valid until
// the entity is deleted or moved.
type View[T any] struct {
	storage  *Storage
	fields   []viewField
	idOffset uintptr
	hasId    bool
}

func NewView[T any](storage *Storage) *View[T] {
	st := reflect.TypeFor[T]()
	if st.Kind() != reflect.Struct {
		panic("ecs: view type must be a struct, got " + st.String())
	}

	v := &View[T]{storage: storage}
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.Type == entityIdType {
			v.idOffset, v.hasId = f.Offset, true
			continue
		}
		if f.Type.Kind() != reflect.Pointer {
			panic("ecs: view field " + f.Name + " must be a pointer or EntityId")
		}

		optional := false
		switch tag := f.Tag.Get("ecs"); {
		case tag == "":
		case tag == "optional" && !f.Anonymous:
			optional = true
		default:
			panic("ecs: invalid tag on view field " + f.Name + ": " + tag)
		}

		v.fields = append(v.fields, viewField{
			typ:      f.Type.Elem(),
			offset:   f.Offset,
			optional: optional,
		})
	}
	return v
}

func (v *View[T]) matches(a *Archetype) bool {
	for _, f := range v.fields {
		if !f.optional && !a.HasComponent(f.typ) {
			return false
		}
	}
	return true
}

// columns maps each view field to its archetype column, -1 when absent.
func (v *View[T]) columns(a *Archetype) []int {
	cols := make([]int, len(v.fields))
	for i, f := range v.fields {
		cols[i] = a.columnIndex(f.typ)
	}
	return cols
}

// fill writes the entity's component pointers into dst. It reports false when
// a required component is missing.
func (v *View[T]) fill(dst unsafe.Pointer, a *Archetype, index int, cols []int) bool {
	for i, col := range cols {
		slot := (*unsafe.Pointer)(unsafe.Add(dst, v.fields[i].offset))

		var comp any
		if col >= 0 {
			comp = a.columns[col].Get(index)
		}
		if comp == nil {
			if !v.fields[i].optional {
				return false
			}
			*slot = nil
			continue
		}
		*slot = dataPointer(comp)
	}
	if v.hasId {
		*(*EntityId)(unsafe.Add(dst, v.idOffset)) = NewEntityId(a.id, uint32(index))
	}
	return true
}

// Fill populates out for id. Returns false if the entity is dead or lacks a
// required component.
func (v *View[T]) Fill(id EntityId, out *T) bool {
	a, ok := v.storage.archetypes[id.ArchetypeId()]
	if !ok || !a.alive(id.Index()) {
		return false
	}
	return v.fill(unsafe.Pointer(out), a, int(id.Index()), v.columns(a))
}

// Get returns the populated view for id, or nil.
func (v *View[T]) Get(id EntityId) *T {
	var out T
	if !v.Fill(id, &out) {
		return nil
	}
	return &out
}

// GetRef is Get through an EntityRef.
func (v *View[T]) GetRef(ref *EntityRef) *T {
	id, ok := v.storage.ResolveEntityRef(ref)
	if !ok {
		return nil
	}
	return v.Get(id)
}

func (v *View[T]) iterArchetype(a *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		if len(a.columns) == 0 {
			return
		}
		cols := v.columns(a)
		var out T
		for index := range a.columns[0].Iter() {
			if !v.fill(unsafe.Pointer(&out), a, index, cols) {
				continue
			}
			if !yield(NewEntityId(a.id, uint32(index)), out) {
				return
			}
		}
	}
}

// Iter yields every matching entity. Archetype order is unspecified.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, a := range v.storage.archetypes {
			if !v.matches(a) {
				continue
			}
			for id, out := range v.iterArchetype(a) {
				if !yield(id, out) {
					return
				}
			}
		}
	}
}

func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, out := range v.Iter() {
			if !yield(out) {
				return
			}
		}
	}
}

// Spawn creates an entity from the non-nil component pointers of data.
func (v *View[T]) Spawn(data T) EntityId {
	base := unsafe.Pointer(&data)
	components := make([]any, 0, len(v.fields))
	for _, f := range v.fields {
		p := *(*unsafe.Pointer)(unsafe.Add(base, f.offset))
		if p == nil {
			if !f.optional {
				panic("ecs: required component " + f.typ.String() + " is nil in View.Spawn")
			}
			continue
		}
		components = append(components, reflect.NewAt(f.typ, p).Interface())
	}
	return v.storage.Spawn(components...)
}
