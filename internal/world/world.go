// Package world owns one running simulation: the component store, the
// entity factory, the turn counter and the input/turn protocol.
package world

import (
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"grid-roguelike/internal/component"
	"grid-roguelike/internal/ecs"
	"grid-roguelike/internal/factory"
	"grid-roguelike/internal/gamemap"
	"grid-roguelike/internal/system"
)

// Effect tags appended to the effect log.
const (
	EffectShot    = "shot"
	EffectHit     = "hit"
	EffectMiss    = "miss"
	EffectBlocked = "blocked"
)

// World is a single simulation instance. It is not safe for concurrent use;
// the driver serializes every call.
type World struct {
	store   *component.Store
	factory *factory.Factory
	terrain *gamemap.GameMap
	rng     *rand.Rand
	log     *zap.Logger

	turn       int
	phase      Phase
	playerHalf bool
	pending    Action
	effects    []string
}

// New creates an empty world on terrain. Randomness comes only from rng.
// A nil logger discards output.
func New(terrain *gamemap.GameMap, rng *rand.Rand, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	store := component.NewStore()
	return &World{
		store:      store,
		factory:    factory.New(store),
		terrain:    terrain,
		rng:        rng,
		log:        log,
		phase:      PhaseExpectingInput,
		playerHalf: true,
	}
}

// Create spawns arch at cell.
func (w *World) Create(arch factory.Archetype, cell component.Position) (ecs.EntityID, error) {
	return w.factory.Create(arch, cell)
}

// CreateNamed spawns the archetype registered under name at cell.
func (w *World) CreateNamed(name string, cell component.Position) (ecs.EntityID, error) {
	id, err := w.factory.CreateNamed(name, cell)
	if err != nil {
		return ecs.NilEntity, err
	}
	w.log.Debug("spawn", zap.String("archetype", name), zap.Uint64("id", uint64(id)), zap.Stringer("cell", cell))
	return id, nil
}

// Destroy removes id and every trait attached to it.
func (w *World) Destroy(id ecs.EntityID) {
	w.factory.Destroy(id)
}

// Alive reports whether id refers to a live entity.
func (w *World) Alive(id ecs.EntityID) bool { return w.factory.Alive(id) }

// PlayerID returns the player entity, if one exists.
func (w *World) PlayerID() (ecs.EntityID, bool) { return w.store.PlayerID() }

// PlayerPos returns the player's cell.
func (w *World) PlayerPos() (component.Position, bool) {
	id, ok := w.store.PlayerID()
	if !ok {
		return component.Position{}, false
	}
	return w.store.Position.Get(id)
}

// Phase reports which single protocol call is currently legal.
func (w *World) Phase() Phase { return w.phase }

// TurnCounter returns the number of completed enemy half-turns.
func (w *World) TurnCounter() int { return w.turn }

// Pending returns the action waiting to be executed.
func (w *World) Pending() Action { return w.pending }

// Effects returns a copy of the effect log. The world only ever appends to
// it.
func (w *World) Effects() []string { return slices.Clone(w.effects) }

// ConsumeEffects returns the effect log and empties it. Only the driver
// calls this.
func (w *World) ConsumeEffects() []string {
	out := w.effects
	w.effects = nil
	return out
}

// Appearance returns id's appearance.
func (w *World) Appearance(id ecs.EntityID) (component.Appearance, bool) {
	return w.store.Appearance.Get(id)
}

// Position returns id's cell.
func (w *World) Position(id ecs.EntityID) (component.Position, bool) {
	return w.store.Position.Get(id)
}

// At returns the entity on cell.
func (w *World) At(cell component.Position) (ecs.EntityID, bool) {
	return w.store.Position.At(cell)
}

// EachVisible calls fn for every placed entity that has an appearance, in
// ascending id order.
func (w *World) EachVisible(fn func(id ecs.EntityID, cell component.Position, a component.Appearance)) {
	w.store.Position.Each(func(id ecs.EntityID, cell component.Position) {
		if a, ok := w.store.Appearance.Get(id); ok {
			fn(id, cell, a)
		}
	})
}

// Terrain returns the map the world runs on.
func (w *World) Terrain() *gamemap.GameMap { return w.terrain }

// Store exposes the component tables for systems and tests.
func (w *World) Store() *component.Store { return w.store }

func (w *World) emit(tag string) {
	w.effects = append(w.effects, tag)
}

func (w *World) playerActive() bool {
	id, ok := w.store.PlayerID()
	return ok && system.IsActive(w.store, id, w.turn)
}
