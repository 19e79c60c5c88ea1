package ecs

import "reflect"

// Commands buffers structural changes requested by systems. The Scheduler
// flushes the buffer at the end of every stage.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	adds    []addCommand
	removes []removeCommand
	defers  []func()
}

type addCommand struct {
	entity    EntityId
	component any
}

type removeCommand struct {
	entity EntityId
	typ    reflect.Type
}

func newCommands() *Commands {
	return &Commands{}
}

func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addCommand{entity, component})
}

func (c *Commands) RemoveComponent(entity EntityId, typ reflect.Type) {
	c.removes = append(c.removes, removeCommand{entity, typ})
}

// Defer runs fn after all structural changes of the flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending reports how many operations are buffered.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies the buffer in the order deletes, removes, adds, spawns,
// defers and resets it. Adds and removes aimed at an entity deleted in the
// same flush are dropped, as are repeated deletes.
func (c *Commands) Flush(storage *Storage) {
	deleted := make(map[EntityId]struct{}, len(c.deletes))
	for _, id := range c.deletes {
		if _, seen := deleted[id]; seen {
			continue
		}
		deleted[id] = struct{}{}
		storage.Delete(id)
	}

	// An entity that changes archetype gets a new id; later commands issued
	// against the old id follow it.
	moved := make(map[EntityId]EntityId)
	current := func(id EntityId) EntityId {
		if to, ok := moved[id]; ok {
			return to
		}
		return id
	}

	for _, cmd := range c.removes {
		if _, gone := deleted[cmd.entity]; gone {
			continue
		}
		moved[cmd.entity] = storage.RemoveComponent(current(cmd.entity), cmd.typ)
	}

	for _, cmd := range c.adds {
		if _, gone := deleted[cmd.entity]; gone {
			continue
		}
		moved[cmd.entity] = storage.AddComponent(current(cmd.entity), cmd.component)
	}

	for _, components := range c.spawns {
		storage.Spawn(components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
