package generate

import (
	"grid-roguelike/internal/component"
	"grid-roguelike/internal/gamemap"
)

// SpawnCount asks for Count entities of one archetype.
type SpawnCount struct {
	Archetype string
	Count     int
}

// Spawn is one entity to create.
type Spawn struct {
	Archetype string
	Pos       component.Position
}

// Populate picks distinct floor cells for every requested entity, never the
// start cell. Rooms after the first are preferred so the player does not
// begin surrounded; when they run out any floor cell is used. Requests that
// cannot be placed are dropped.
func Populate(gmap *gamemap.GameMap, start component.Position, counts []SpawnCount, rng Rand) []Spawn {
	// occupied tracks every position already claimed this pass so that no two
	// entities share a tile.
	occupied := map[component.Position]bool{start: true}

	var preferred []component.Position
	rooms := gmap.Rooms
	if len(rooms) > 1 {
		rooms = rooms[1:]
	}
	for _, r := range rooms {
		for y := r.Y1; y <= r.Y2; y++ {
			for x := r.X1; x <= r.X2; x++ {
				if !gmap.IsSolid(x, y) {
					preferred = append(preferred, component.Position{X: x, Y: y})
				}
			}
		}
	}
	fallback := gmap.Floors()
	rng.Shuffle(len(preferred), func(i, j int) { preferred[i], preferred[j] = preferred[j], preferred[i] })
	rng.Shuffle(len(fallback), func(i, j int) { fallback[i], fallback[j] = fallback[j], fallback[i] })
	pool := append(preferred, fallback...)

	next := func() (component.Position, bool) {
		for len(pool) > 0 {
			p := pool[0]
			pool = pool[1:]
			if !occupied[p] {
				occupied[p] = true
				return p, true
			}
		}
		return component.Position{}, false
	}

	var out []Spawn
	for _, c := range counts {
		for i := 0; i < c.Count; i++ {
			p, ok := next()
			if !ok {
				return out
			}
			out = append(out, Spawn{Archetype: c.Archetype, Pos: p})
		}
	}
	return out
}
