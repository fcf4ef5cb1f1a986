package system

import (
	"slices"

	"grid-roguelike/internal/component"
	"grid-roguelike/internal/ecs"
)

// ActiveEntities returns, in ascending order, every entity whose speed tier
// lets it act on turn: fast always, normal on even turns, slow every fourth.
func ActiveEntities(s *component.Store, turn int) []ecs.EntityID {
	ids := s.Fast.IDs()
	if turn%2 == 0 {
		ids = append(ids, s.Normal.IDs()...)
	}
	if turn%4 == 0 {
		ids = append(ids, s.Slow.IDs()...)
	}
	slices.Sort(ids)
	return ids
}

// IsActive reports whether id may act on turn.
func IsActive(s *component.Store, id ecs.EntityID, turn int) bool {
	tier, ok := s.Speed(id)
	if !ok {
		return false
	}
	switch tier {
	case component.SpeedFast:
		return true
	case component.SpeedNormal:
		return turn%2 == 0
	case component.SpeedSlow:
		return turn%4 == 0
	}
	return false
}
