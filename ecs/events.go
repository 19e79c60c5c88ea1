package ecs

import (
	"iter"
	"reflect"
)

type eventBus interface {
	swap()
	len() int
}

type eventEntry[E any] struct {
	seq   uint64
	event E
}

// bus keeps two frames of events. Readers track the last sequence number
// they saw, so an event is delivered once per reader no matter which frame
// the reader runs in.
type bus[E any] struct {
	previous []eventEntry[E]
	current  []eventEntry[E]
	next     uint64
}

func (b *bus[E]) send(e E) {
	b.current = append(b.current, eventEntry[E]{seq: b.next, event: e})
	b.next++
}

// swap ages the buffers; events older than one frame are dropped.
func (b *bus[E]) swap() {
	b.previous, b.current = b.current, b.previous[:0]
}

func (b *bus[E]) len() int {
	return len(b.previous) + len(b.current)
}

func busFor[E any](s *Storage) *bus[E] {
	t := reflect.TypeFor[E]()
	if existing, ok := s.events[t]; ok {
		return existing.(*bus[E])
	}
	b := &bus[E]{}
	s.events[t] = b
	return b
}

// swapEvents is called by the Scheduler once per frame.
func (s *Storage) swapEvents() {
	for _, b := range s.events {
		b.swap()
	}
}

// Events is both writer and cursor-holding reader for events of type E.
// Each Events value reads independently: two systems with an Events[E]
// field both see every event.
type Events[E any] struct {
	bus  *bus[E]
	seen uint64
}

// NewEvents returns a reader/writer bound to storage. The reader starts
// after any events already queued.
func NewEvents[E any](storage *Storage) *Events[E] {
	e := &Events[E]{}
	e.bind(storage)
	return e
}

func (e *Events[E]) bind(storage *Storage) {
	e.bus = busFor[E](storage)
	e.seen = e.bus.next
}

func (e *Events[E]) Send(event E) {
	e.bus.send(event)
}

// Iter yields unread events oldest first and marks them read.
func (e *Events[E]) Iter() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, buf := range [2][]eventEntry[E]{e.bus.previous, e.bus.current} {
			for _, entry := range buf {
				if entry.seq < e.seen {
					continue
				}
				e.seen = entry.seq + 1
				if !yield(entry.event) {
					return
				}
			}
		}
	}
}

// Len counts unread events without consuming them.
func (e *Events[E]) Len() int {
	n := 0
	for _, buf := range [2][]eventEntry[E]{e.bus.previous, e.bus.current} {
		for _, entry := range buf {
			if entry.seq >= e.seen {
				n++
			}
		}
	}
	return n
}

// Clear marks every pending event as read.
func (e *Events[E]) Clear() {
	e.seen = e.bus.next
}
