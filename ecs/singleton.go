package ecs

import (
	"reflect"
	"unsafe"
)

type singletonEntry struct {
	value reflect.Value // addressable *T
	ptr   unsafe.Pointer
}

// AddSingleton stores value as the singleton of its type. An existing
// singleton is overwritten in place so bound accessors see the new value.
// Singletons need no registration.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if t == nil {
		panic("ecs: nil singleton")
	}
	if entry, ok := s.singletons[t]; ok {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}
	v := reflect.New(t)
	v.Elem().Set(reflect.ValueOf(value))
	s.singletons[t] = &singletonEntry{value: v, ptr: v.UnsafePointer()}
}

// ReadSingleton sets *target to the singleton of type T. target must be a **T.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Pointer {
		panic("ecs: ReadSingleton wants a **T")
	}
	entry, ok := s.singletons[rv.Elem().Type().Elem()]
	if !ok {
		return false
	}
	rv.Elem().Set(entry.value)
	return true
}

func (s *Storage) singleton(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// Singleton is a typed accessor for global state not attached to an entity.
// As a system field it is bound by the Scheduler at registration.
type Singleton[T any] struct {
	storage *Storage
	ptr     unsafe.Pointer
}

// NewSingleton returns an accessor for T, first storing initial (or the zero
// value) if the storage has no T yet.
func NewSingleton[T any](storage *Storage, initial ...T) *Singleton[T] {
	t := reflect.TypeFor[T]()
	if storage.singleton(t) == nil {
		var value T
		if len(initial) > 0 {
			value = initial[0]
		}
		storage.AddSingleton(value)
	}
	s := &Singleton[T]{}
	s.bind(storage)
	return s
}

func (s *Singleton[T]) bind(storage *Storage) {
	s.storage = storage
	s.ptr = nil
	s.refresh()
}

func (s *Singleton[T]) refresh() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.singleton(reflect.TypeFor[T]()); entry != nil {
		s.ptr = entry.ptr
	} else {
		s.ptr = nil
	}
}

// Get returns the singleton, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.refresh()
	}
	return (*T)(s.ptr)
}

func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
