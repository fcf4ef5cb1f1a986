package system

import (
	"fmt"

	"grid-roguelike/internal/component"
	"grid-roguelike/internal/ecs"
)

// Terrain is the map as seen by movement. Cells outside the map are solid.
type Terrain interface {
	IsSolid(x, y int) bool
}

// Rand is the randomness movement draws on. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// UnimplementedStrategy is raised (via panic) when an entity carries a
// strategy that has no destination rule.
type UnimplementedStrategy struct {
	ID       ecs.EntityID
	Strategy component.Strategy
}

func (e *UnimplementedStrategy) Error() string {
	return fmt.Sprintf("entity %d: movement strategy %v is not implemented", e.ID, e.Strategy)
}

// Move records one relocation performed by ResolveMoves.
type Move struct {
	ID       ecs.EntityID
	From, To component.Position
}

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // position updated
	MoveBlocked                    // solid terrain or out of bounds
	MoveOccupied                   // another entity holds the cell
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveOccupied:
		return "occupied"
	}
	return "unknown"
}

// TryMove steps entity id one cell in dir. Returns the outcome and, for
// MoveOccupied, the entity in the way.
func TryMove(s *component.Store, terrain Terrain, id ecs.EntityID, dir component.Direction) (MoveResult, ecs.EntityID) {
	pos, ok := s.Position.Get(id)
	if !ok {
		return MoveBlocked, ecs.NilEntity
	}
	next := pos.Add(dir)
	if terrain.IsSolid(next.X, next.Y) {
		return MoveBlocked, ecs.NilEntity
	}
	if other, held := s.Position.At(next); held {
		return MoveOccupied, other
	}
	mustMove(s, id, next)
	return MoveOK, ecs.NilEntity
}

// GoalDestination picks the cell id would like to step into this turn.
// ignore, when non-nil, is never chosen. The second result is false when the
// entity proposes no move.
//
// Wandering entities start from a random cardinal direction and rotate
// clockwise past solid terrain, non-mobile blockers and ignore; after four
// refusals they stay put.
func GoalDestination(s *component.Store, terrain Terrain, rng Rand, id ecs.EntityID, ignore *component.Position) (component.Position, bool) {
	strategy, ok := s.Strategy.Get(id)
	if !ok {
		return component.Position{}, false
	}
	pos, ok := s.Position.Get(id)
	if !ok {
		return component.Position{}, false
	}

	switch strategy {
	case component.StrategyUser:
		return component.Position{}, false
	case component.StrategyWandering:
		dir := component.Directions[rng.Intn(len(component.Directions))]
		for range component.Directions {
			cell := pos.Add(dir)
			if acceptable(s, terrain, cell, ignore) {
				return cell, true
			}
			dir = dir.Rotate()
		}
		return component.Position{}, false
	default:
		panic(&UnimplementedStrategy{ID: id, Strategy: strategy})
	}
}

func acceptable(s *component.Store, terrain Terrain, cell component.Position, ignore *component.Position) bool {
	if terrain.IsSolid(cell.X, cell.Y) {
		return false
	}
	if ignore != nil && cell == *ignore {
		return false
	}
	if other, held := s.Position.At(cell); held && s.Blocker(other) {
		return false
	}
	return true
}

type intent struct {
	id   ecs.EntityID
	goal component.Position
}

// ResolveMoves moves every listed entity that has a destination this turn.
// The player and entities without a strategy are skipped.
//
// Movers are shuffled, then swept repeatedly: anyone whose goal is free
// moves and leaves the queue. When a sweep makes no progress the front
// entity gets one fallback attempt that avoids its blocked goal, and is
// dropped whether or not it moves. The queue shrinks every round, so this
// terminates.
func ResolveMoves(s *component.Store, terrain Terrain, rng Rand, ids []ecs.EntityID) []Move {
	var queue []intent
	for _, id := range ids {
		if s.Player.Is(id) || !s.Strategy.Has(id) {
			continue
		}
		if goal, ok := GoalDestination(s, terrain, rng, id, nil); ok {
			queue = append(queue, intent{id: id, goal: goal})
		}
	}
	rng.Shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })
	return resolve(s, terrain, rng, queue)
}

func resolve(s *component.Store, terrain Terrain, rng Rand, queue []intent) []Move {
	var moves []Move
	for len(queue) > 0 {
		for progressed := true; progressed && len(queue) > 0; {
			progressed = false
			kept := queue[:0]
			for _, in := range queue {
				if m, ok := tryResolve(s, in.id, in.goal); ok {
					moves = append(moves, m)
					progressed = true
					continue
				}
				kept = append(kept, in)
			}
			queue = kept
		}
		if len(queue) == 0 {
			break
		}

		front := queue[0]
		queue = queue[1:]
		tried := front.goal
		if goal, ok := GoalDestination(s, terrain, rng, front.id, &tried); ok {
			if m, ok := tryResolve(s, front.id, goal); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// tryResolve moves id to goal if nobody holds it.
func tryResolve(s *component.Store, id ecs.EntityID, goal component.Position) (Move, bool) {
	if _, held := s.Position.At(goal); held {
		return Move{}, false
	}
	from, ok := s.Position.Get(id)
	if !ok {
		return Move{}, false
	}
	mustMove(s, id, goal)
	return Move{ID: id, From: from, To: goal}, true
}

// mustMove relocates id on a cell already checked to be free.
func mustMove(s *component.Store, id ecs.EntityID, cell component.Position) {
	if err := s.Position.Move(id, cell); err != nil {
		panic(fmt.Sprintf("move entity %d to %v after occupancy check: %v", id, cell, err))
	}
}
