package factory

import (
	"fmt"

	"grid-roguelike/internal/component"
	"grid-roguelike/internal/ecs"
)

// Archetype attaches a fixed bundle of traits to a freshly allocated id.
type Archetype func(id ecs.EntityID, s *component.Store)

// Player is the user-controlled entity. It replaces any previous player.
func Player(id ecs.EntityID, s *component.Store) {
	s.Appearance.Set(id, component.AppearancePlayer)
	s.Strategy.Set(id, component.StrategyUser)
	s.SetSpeed(id, component.SpeedNormal)
	s.Player.Set(id)
}

// Goblin wanders at normal speed.
func Goblin(id ecs.EntityID, s *component.Store) {
	wanderer(id, s, component.AppearanceGoblin, component.SpeedNormal)
}

// Bat wanders fast, acting every turn.
func Bat(id ecs.EntityID, s *component.Store) {
	wanderer(id, s, component.AppearanceBat, component.SpeedFast)
}

// Turtle wanders slowly, acting one turn in four.
func Turtle(id ecs.EntityID, s *component.Store) {
	wanderer(id, s, component.AppearanceTurtle, component.SpeedSlow)
}

// Barrel never moves or acts but blocks its cell.
func Barrel(id ecs.EntityID, s *component.Store) {
	s.Appearance.Set(id, component.AppearanceBarrel)
}

// Wisp wanders at normal speed.
func Wisp(id ecs.EntityID, s *component.Store) {
	wanderer(id, s, component.AppearanceWisp, component.SpeedNormal)
}

func wanderer(id ecs.EntityID, s *component.Store, a component.Appearance, tier component.SpeedTier) {
	s.Appearance.Set(id, a)
	s.Strategy.Set(id, component.StrategyWandering)
	s.SetSpeed(id, tier)
}

var archetypes = map[string]Archetype{
	"player": Player,
	"goblin": Goblin,
	"bat":    Bat,
	"turtle": Turtle,
	"barrel": Barrel,
	"wisp":   Wisp,
}

// Lookup resolves an archetype by its level-file name.
func Lookup(name string) (Archetype, bool) {
	a, ok := archetypes[name]
	return a, ok
}

// Factory allocates entity ids and applies archetypes to them.
type Factory struct {
	ids   *ecs.IDPool
	store *component.Store
}

// New returns a Factory writing into store.
func New(store *component.Store) *Factory {
	return &Factory{ids: ecs.NewIDPool(), store: store}
}

// Create allocates an id, places it at cell, then applies arch. If the cell
// is held the id is released and the conflict returned.
func (f *Factory) Create(arch Archetype, cell component.Position) (ecs.EntityID, error) {
	id := f.ids.Generate()
	if err := f.store.Position.Set(id, cell); err != nil {
		f.ids.Free(id)
		return ecs.NilEntity, fmt.Errorf("create entity: %w", err)
	}
	arch(id, f.store)
	return id, nil
}

// CreateNamed is Create with the archetype looked up by name.
func (f *Factory) CreateNamed(name string, cell component.Position) (ecs.EntityID, error) {
	arch, ok := Lookup(name)
	if !ok {
		return ecs.NilEntity, fmt.Errorf("create entity: unknown archetype %q", name)
	}
	return f.Create(arch, cell)
}

// Destroy strips id from every table, then releases it for reuse.
func (f *Factory) Destroy(id ecs.EntityID) {
	if !f.ids.Live(id) {
		return
	}
	f.store.Remove(id)
	f.ids.Free(id)
}

// Alive reports whether id is currently issued.
func (f *Factory) Alive(id ecs.EntityID) bool { return f.ids.Live(id) }
