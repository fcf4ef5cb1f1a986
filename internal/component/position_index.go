package component

import (
	"errors"
	"fmt"
	"slices"

	"grid-roguelike/internal/ecs"
)

var (
	// ErrOccupied is matched by every *OccupancyConflict.
	ErrOccupied = errors.New("cell occupied")
	// ErrNoPosition is returned by Move for an entity that was never placed.
	ErrNoPosition = errors.New("entity has no position")
)

// OccupancyConflict reports an attempt to place an entity on a cell held by
// another one. The index is left unchanged.
type OccupancyConflict struct {
	Entity   ecs.EntityID
	Occupant ecs.EntityID
	Cell     Position
}

func (e *OccupancyConflict) Error() string {
	return fmt.Sprintf("place entity %d at %v: held by entity %d", e.Entity, e.Cell, e.Occupant)
}

func (e *OccupancyConflict) Is(target error) bool { return target == ErrOccupied }

// PositionIndex maps entities to cells and cells back to entities.
// At most one entity holds a cell; placements onto a held cell are rejected,
// so the two directions never disagree.
type PositionIndex struct {
	byEntity map[ecs.EntityID]Position
	byCell   map[Position]ecs.EntityID
}

// NewPositionIndex returns an empty index.
func NewPositionIndex() *PositionIndex {
	return &PositionIndex{
		byEntity: make(map[ecs.EntityID]Position),
		byCell:   make(map[Position]ecs.EntityID),
	}
}

// Set places id at cell. If id already has a position it is relocated.
func (p *PositionIndex) Set(id ecs.EntityID, cell Position) error {
	if occ, ok := p.byCell[cell]; ok && occ != id {
		return &OccupancyConflict{Entity: id, Occupant: occ, Cell: cell}
	}
	if old, ok := p.byEntity[id]; ok {
		delete(p.byCell, old)
	}
	p.byEntity[id] = cell
	p.byCell[cell] = id
	return nil
}

// Move relocates an already-placed entity. Both directions are updated
// together; on error nothing changes.
func (p *PositionIndex) Move(id ecs.EntityID, cell Position) error {
	if _, ok := p.byEntity[id]; !ok {
		return fmt.Errorf("move entity %d: %w", id, ErrNoPosition)
	}
	return p.Set(id, cell)
}

// Get returns id's cell.
func (p *PositionIndex) Get(id ecs.EntityID) (Position, bool) {
	c, ok := p.byEntity[id]
	return c, ok
}

// At returns the entity holding cell.
func (p *PositionIndex) At(cell Position) (ecs.EntityID, bool) {
	id, ok := p.byCell[cell]
	return id, ok
}

// Has reports whether id has a position.
func (p *PositionIndex) Has(id ecs.EntityID) bool {
	_, ok := p.byEntity[id]
	return ok
}

// Delete removes id from both directions.
func (p *PositionIndex) Delete(id ecs.EntityID) {
	if c, ok := p.byEntity[id]; ok {
		delete(p.byCell, c)
		delete(p.byEntity, id)
	}
}

// Remove is Delete under the ecs.Removable name.
func (p *PositionIndex) Remove(id ecs.EntityID) { p.Delete(id) }

// Len returns the number of placed entities.
func (p *PositionIndex) Len() int { return len(p.byEntity) }

// Each calls fn for every placed entity in ascending id order.
func (p *PositionIndex) Each(fn func(ecs.EntityID, Position)) {
	ids := make([]ecs.EntityID, 0, len(p.byEntity))
	for id := range p.byEntity {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fn(id, p.byEntity[id])
	}
}
