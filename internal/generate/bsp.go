// Package generate builds maps by binary space partitioning and picks spawn
// cells on them.
package generate

import (
	"grid-roguelike/internal/component"
	"grid-roguelike/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Rand is the randomness generation draws on. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// Config drives procedural generation for one level.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	CorridorStyle       CorridorStyle
	Rand                Rand
}

// leaf is a node of the partition tree. Only terminal leaves hold rooms,
// and only when they are large enough.
type leaf struct {
	area        gamemap.Rect
	left, right *leaf
	room        *gamemap.Rect
}

func (l *leaf) width() int { return l.area.X2 - l.area.X1 + 1 }
func (l *leaf) height() int { return l.area.Y2 - l.area.Y1 + 1 }
func (l *leaf) terminal() bool { return l.left == nil }

type generator struct {
	cfg  *Config
	gmap *gamemap.GameMap
}

// Generate carves rooms joined by corridors, marks doorways, and returns the
// map plus a start cell in the centre of the first room.
func Generate(cfg *Config) (*gamemap.GameMap, component.Position) {
	g := &generator{cfg: cfg, gmap: gamemap.New(cfg.MapWidth, cfg.MapHeight)}
	root := &leaf{area: gamemap.Rect{X2: cfg.MapWidth - 1, Y2: cfg.MapHeight - 1}}

	g.partition(root)
	g.placeRooms(root)
	g.connect(root)
	g.placeDoors()

	start := component.Position{X: 1, Y: 1}
	if len(g.gmap.Rooms) > 0 {
		start.X, start.Y = g.gmap.Rooms[0].Center()
	}
	return g.gmap, start
}

// partition splits l until its halves fit MaxLeafSize; below that a leaf
// still splits three times in four while it can.
func (g *generator) partition(l *leaf) {
	oversize := l.width() > g.cfg.MaxLeafSize || l.height() > g.cfg.MaxLeafSize
	if !oversize && g.cfg.Rand.Float64() <= 0.25 {
		return
	}
	if g.split(l) {
		g.partition(l.left)
		g.partition(l.right)
	}
}

// split cuts l across its longer side (randomly when roughly square). It
// reports false when either half would be smaller than MinLeafSize.
func (g *generator) split(l *leaf) bool {
	w, h := l.width(), l.height()
	horizontal := g.cfg.Rand.Intn(2) == 0
	switch {
	case w*4 >= h*5:
		horizontal = false
	case h*4 >= w*5:
		horizontal = true
	}

	size := w
	if horizontal {
		size = h
	}
	minLeaf := g.cfg.MinLeafSize
	if size <= 2*minLeaf {
		return false
	}
	cut := minLeaf + g.cfg.Rand.Intn(size-2*minLeaf+1)

	a := l.area
	if horizontal {
		l.left = &leaf{area: gamemap.Rect{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y1 + cut - 1}}
		l.right = &leaf{area: gamemap.Rect{X1: a.X1, Y1: a.Y1 + cut, X2: a.X2, Y2: a.Y2}}
	} else {
		l.left = &leaf{area: gamemap.Rect{X1: a.X1, Y1: a.Y1, X2: a.X1 + cut - 1, Y2: a.Y2}}
		l.right = &leaf{area: gamemap.Rect{X1: a.X1 + cut, Y1: a.Y1, X2: a.X2, Y2: a.Y2}}
	}
	return true
}

// placeRooms carves a random room inside every terminal leaf that has room
// for one after padding, keeping a solid border around the map.
func (g *generator) placeRooms(l *leaf) {
	if !l.terminal() {
		g.placeRooms(l.left)
		g.placeRooms(l.right)
		return
	}
	pad := g.cfg.RoomPadding
	inner := gamemap.Rect{
		X1: max(l.area.X1+pad, 1),
		Y1: max(l.area.Y1+pad, 1),
		X2: min(l.area.X2-pad, g.gmap.Width-2),
		Y2: min(l.area.Y2-pad, g.gmap.Height-2),
	}
	availW, availH := inner.X2-inner.X1+1, inner.Y2-inner.Y1+1
	minRoom := max(g.cfg.MinRoomSize, 3)
	if availW < minRoom || availH < minRoom {
		return
	}

	rw := minRoom + g.cfg.Rand.Intn(availW-minRoom+1)
	rh := minRoom + g.cfg.Rand.Intn(availH-minRoom+1)
	x := inner.X1 + g.cfg.Rand.Intn(availW-rw+1)
	y := inner.Y1 + g.cfg.Rand.Intn(availH-rh+1)

	room := gamemap.Rect{X1: x, Y1: y, X2: x + rw - 1, Y2: y + rh - 1}
	l.room = &room
	g.fill(room, gamemap.MakeFloor())
	g.gmap.Rooms = append(g.gmap.Rooms, room)
}

// connect joins the two halves of every split bottom-up and returns one
// room of l's subtree, or nil when the subtree has none.
func (g *generator) connect(l *leaf) *gamemap.Rect {
	if l.terminal() {
		return l.room
	}
	a := g.connect(l.left)
	b := g.connect(l.right)
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	ax, ay := a.Center()
	bx, by := b.Center()
	g.carveCorridor(component.Position{X: ax, Y: ay}, component.Position{X: bx, Y: by})
	return a
}

func (g *generator) fill(r gamemap.Rect, t gamemap.Tile) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			g.gmap.Set(x, y, t)
		}
	}
}
