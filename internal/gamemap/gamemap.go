// Package gamemap holds the terrain grid movement and rendering query.
package gamemap

import "grid-roguelike/internal/component"

// Rect is an inclusive axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap is a Width x Height tile grid stored row-major, plus the rooms a
// generator carved into it.
type GameMap struct {
	Width, Height int
	Rooms         []Rect
	tiles         []Tile
}

// New creates a map of solid wall.
func New(width, height int) *GameMap {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = MakeWall()
	}
	return &GameMap{Width: width, Height: height, tiles: tiles}
}

// InBounds reports whether (x, y) is on the map.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y); out of bounds reads as wall.
func (m *GameMap) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return MakeWall()
	}
	return m.tiles[y*m.Width+x]
}

// Set replaces the tile at (x, y). Out-of-bounds writes are ignored.
func (m *GameMap) Set(x, y int, t Tile) {
	if m.InBounds(x, y) {
		m.tiles[y*m.Width+x] = t
	}
}

// IsSolid reports whether (x, y) blocks movement. Cells outside the map
// are solid.
func (m *GameMap) IsSolid(x, y int) bool {
	return m.At(x, y).Solid
}

// Floors returns every passable cell in row-major order.
func (m *GameMap) Floors() []component.Position {
	var out []component.Position
	for i, t := range m.tiles {
		if !t.Solid {
			out = append(out, component.Position{X: i % m.Width, Y: i / m.Width})
		}
	}
	return out
}
