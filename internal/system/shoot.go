package system

import (
	"grid-roguelike/internal/component"
	"grid-roguelike/internal/ecs"
)

// ShotResult holds the outcome of one shot.
type ShotResult struct {
	Hit    bool
	Target ecs.EntityID       // entity struck when Hit
	Cell   component.Position // last cell the bolt reached
}

// Shoot fires a bolt from shooter in dir. It flies until it enters a cell
// held by an entity (a hit) or reaches solid terrain (a miss). The caller
// decides what a hit does to the target.
func Shoot(s *component.Store, terrain Terrain, shooter ecs.EntityID, dir component.Direction) ShotResult {
	pos, ok := s.Position.Get(shooter)
	if !ok {
		return ShotResult{}
	}
	for {
		next := pos.Add(dir)
		if terrain.IsSolid(next.X, next.Y) {
			return ShotResult{Cell: pos}
		}
		if target, held := s.Position.At(next); held {
			return ShotResult{Hit: true, Target: target, Cell: next}
		}
		pos = next
	}
}
