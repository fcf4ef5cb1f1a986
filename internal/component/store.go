package component

import "grid-roguelike/internal/ecs"

// Store is the set of per-trait tables for one world.
type Store struct {
	Appearance *ecs.Table[Appearance]
	Player     *ecs.Singleton
	Strategy   *ecs.Table[Strategy]
	Fast       *ecs.TagSet
	Normal     *ecs.TagSet
	Slow       *ecs.TagSet
	Position   *PositionIndex

	tables ecs.Registry
}

// NewStore returns a Store with every table empty and registered for Remove.
func NewStore() *Store {
	s := &Store{
		Appearance: ecs.NewTable[Appearance](),
		Player:     &ecs.Singleton{},
		Strategy:   ecs.NewTable[Strategy](),
		Fast:       ecs.NewTagSet(),
		Normal:     ecs.NewTagSet(),
		Slow:       ecs.NewTagSet(),
		Position:   NewPositionIndex(),
	}
	s.tables.Register(s.Appearance, s.Player, s.Strategy, s.Fast, s.Normal, s.Slow, s.Position)
	return s
}

// Remove deletes id from every table.
func (s *Store) Remove(id ecs.EntityID) {
	s.tables.RemoveAll(id)
}

// SetSpeed puts id in exactly one tier.
func (s *Store) SetSpeed(id ecs.EntityID, tier SpeedTier) {
	s.ClearSpeed(id)
	switch tier {
	case SpeedFast:
		s.Fast.Add(id)
	case SpeedNormal:
		s.Normal.Add(id)
	case SpeedSlow:
		s.Slow.Add(id)
	}
}

// ClearSpeed removes id from every tier; it will never act.
func (s *Store) ClearSpeed(id ecs.EntityID) {
	s.Fast.Remove(id)
	s.Normal.Remove(id)
	s.Slow.Remove(id)
}

// Speed returns id's tier, or false when it has none.
func (s *Store) Speed(id ecs.EntityID) (SpeedTier, bool) {
	switch {
	case s.Fast.Has(id):
		return SpeedFast, true
	case s.Normal.Has(id):
		return SpeedNormal, true
	case s.Slow.Has(id):
		return SpeedSlow, true
	}
	return 0, false
}

// PlayerID returns the player entity, if any.
func (s *Store) PlayerID() (ecs.EntityID, bool) {
	return s.Player.Get()
}

// Blocker reports whether id is a non-mobile blocker: placed but without a
// movement strategy.
func (s *Store) Blocker(id ecs.EntityID) bool {
	return s.Position.Has(id) && !s.Strategy.Has(id)
}
