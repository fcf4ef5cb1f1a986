package generate

import (
	"grid-roguelike/internal/component"
	"grid-roguelike/internal/gamemap"
)

// carveCorridor digs a tunnel from a to b shaped by the configured style.
// L-shaped tunnels bend at a random one of the two corners.
func (g *generator) carveCorridor(a, b component.Position) {
	var bends []component.Position
	switch g.cfg.CorridorStyle {
	case CorridorZShaped:
		mid := (a.Y + b.Y) / 2
		bends = []component.Position{{X: a.X, Y: mid}, {X: b.X, Y: mid}}
	case CorridorStraight:
		bends = []component.Position{{X: b.X, Y: a.Y}}
	default:
		if g.cfg.Rand.Intn(2) == 0 {
			bends = []component.Position{{X: b.X, Y: a.Y}}
		} else {
			bends = []component.Position{{X: a.X, Y: b.Y}}
		}
	}
	from := a
	for _, to := range append(bends, b) {
		g.carveSegment(from, to)
		from = to
	}
}

// carveSegment floors every in-bounds cell of the axis-aligned segment a..b,
// both ends included.
func (g *generator) carveSegment(a, b component.Position) {
	step := component.Position{X: sign(b.X - a.X), Y: sign(b.Y - a.Y)}
	for p := a; ; p = (component.Position{X: p.X + step.X, Y: p.Y + step.Y}) {
		if g.gmap.InBounds(p.X, p.Y) {
			g.gmap.Set(p.X, p.Y, gamemap.MakeFloor())
		}
		if p == b {
			return
		}
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// placeDoors turns each one-wide corridor opening in the wall ring around a
// room into a door.
func (g *generator) placeDoors() {
	for _, r := range g.gmap.Rooms {
		for x := r.X1; x <= r.X2; x++ {
			g.doorway(component.Position{X: x, Y: r.Y1 - 1}, component.East)
			g.doorway(component.Position{X: x, Y: r.Y2 + 1}, component.East)
		}
		for y := r.Y1; y <= r.Y2; y++ {
			g.doorway(component.Position{X: r.X1 - 1, Y: y}, component.South)
			g.doorway(component.Position{X: r.X2 + 1, Y: y}, component.South)
		}
	}
}

// doorway makes p a door when it is floor flanked by solid cells along the
// wall direction.
func (g *generator) doorway(p component.Position, along component.Direction) {
	if !g.gmap.InBounds(p.X, p.Y) || g.gmap.At(p.X, p.Y).Kind != gamemap.TileFloor {
		return
	}
	a, b := p.Add(along), p.Add(along.Rotate().Rotate())
	if g.gmap.IsSolid(a.X, a.Y) && g.gmap.IsSolid(b.X, b.Y) {
		g.gmap.Set(p.X, p.Y, gamemap.MakeDoor())
	}
}
