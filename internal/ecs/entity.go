package ecs

// EntityID uniquely identifies a live entity in the world.
// IDs are recycled after release, so holding one past DestroyEntity is a bug.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// Removable is implemented by every component table so a Registry can
// strip an entity from all of them in one sweep.
type Removable interface {
	Remove(id EntityID)
}
