package ecs

import "iter"

// Query is a View cached per frame. The Scheduler calls Execute before each
// system runs, so a system sees the world as it was at the start of its turn;
// entities spawned through Commands show up the next frame.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	archetypes     []*Archetype
	archetypeCount int

	ids    []EntityId
	values []T
	ready  bool
}

func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.bind(storage)
	return q
}

func (q *Query[T]) bind(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.archetypes = nil
	q.archetypeCount = -1
	q.ready = false
}

// Execute rebuilds the cached results.
func (q *Query[T]) Execute() {
	if n := len(q.storage.archetypes); n != q.archetypeCount {
		q.archetypeCount = n
		q.archetypes = q.archetypes[:0]
		for _, a := range q.storage.archetypes {
			if q.view.matches(a) {
				q.archetypes = append(q.archetypes, a)
			}
		}
	}

	q.ids = q.ids[:0]
	q.values = q.values[:0]
	for _, a := range q.archetypes {
		for id, value := range q.view.iterArchetype(a) {
			q.ids = append(q.ids, id)
			q.values = append(q.values, value)
		}
	}
	q.ready = true
}

func (q *Query[T]) mustBeReady() {
	if !q.ready {
		panic("ecs: Query used before Execute")
	}
}

func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.mustBeReady()
	return func(yield func(EntityId, T) bool) {
		for i := range q.ids {
			if !yield(q.ids[i], q.values[i]) {
				return
			}
		}
	}
}

func (q *Query[T]) Values() iter.Seq[T] {
	q.mustBeReady()
	return func(yield func(T) bool) {
		for _, v := range q.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Count is the number of cached results.
func (q *Query[T]) Count() int {
	q.mustBeReady()
	return len(q.ids)
}
