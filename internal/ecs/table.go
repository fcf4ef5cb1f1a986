package ecs

import "slices"

// Table is a sparse component table: presence of an id means the trait is
// active for that entity.
type Table[T any] struct {
	data map[EntityID]T
}

// NewTable returns an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{data: make(map[EntityID]T)}
}

// Set attaches or replaces the value for id.
func (t *Table[T]) Set(id EntityID, v T) {
	t.data[id] = v
}

// Get returns the value for id and whether it was present.
func (t *Table[T]) Get(id EntityID) (T, bool) {
	v, ok := t.data[id]
	return v, ok
}

// Has reports whether id has an entry.
func (t *Table[T]) Has(id EntityID) bool {
	_, ok := t.data[id]
	return ok
}

// Remove deletes id's entry. Removing an absent id is a no-op.
func (t *Table[T]) Remove(id EntityID) {
	delete(t.data, id)
}

// Len returns the number of entries.
func (t *Table[T]) Len() int { return len(t.data) }

// IDs returns every id in the table in ascending order.
func (t *Table[T]) IDs() []EntityID {
	ids := make([]EntityID, 0, len(t.data))
	for id := range t.data {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TagSet is a table with no payload.
type TagSet struct {
	Table[struct{}]
}

// NewTagSet returns an empty tag set.
func NewTagSet() *TagSet {
	return &TagSet{Table: Table[struct{}]{data: make(map[EntityID]struct{})}}
}

// Add marks id.
func (s *TagSet) Add(id EntityID) {
	s.Set(id, struct{}{})
}

// Singleton holds at most one entity, e.g. the player.
type Singleton struct {
	id EntityID
}

// Set replaces the holder.
func (s *Singleton) Set(id EntityID) { s.id = id }

// Get returns the holder, or NilEntity and false when empty.
func (s *Singleton) Get() (EntityID, bool) {
	return s.id, s.id != NilEntity
}

// Is reports whether id is the current holder.
func (s *Singleton) Is(id EntityID) bool {
	return id != NilEntity && s.id == id
}

// Remove clears the singleton if id holds it.
func (s *Singleton) Remove(id EntityID) {
	if s.id == id {
		s.id = NilEntity
	}
}

// Registry remembers every table so an entity can be removed from all of
// them at once.
type Registry struct {
	tables []Removable
}

// Register adds tables to the sweep list.
func (r *Registry) Register(tables ...Removable) {
	r.tables = append(r.tables, tables...)
}

// RemoveAll strips id from every registered table.
func (r *Registry) RemoveAll(id EntityID) {
	for _, t := range r.tables {
		t.Remove(id)
	}
}
