package ecs

// EntityId packs the archetype id into the upper 32 bits and the slot index
// into the lower 32 bits. The zero value never names a live entity.
type EntityId uint64

// NewEntityId builds an EntityId from an archetype id and slot index.
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

func (e EntityId) Index() uint32 {
	return uint32(e)
}

// EntityRef is a handle that survives archetype moves. Storage rewrites Id
// when the entity changes archetype and zeroes it when the entity is deleted.
type EntityRef struct {
	Id        EntityId
	Archetype *Archetype
}

// Valid reports whether the referenced entity is still alive.
func (r *EntityRef) Valid() bool {
	return r != nil && r.Id != 0
}

func (r *EntityRef) clear() {
	r.Id = 0
	r.Archetype = nil
}
