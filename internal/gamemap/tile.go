package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
)

// Tile holds the terrain for one map cell.
type Tile struct {
	Kind  TileKind
	Solid bool
}

// MakeWall returns a solid wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Solid: true}
}

// MakeFloor returns a passable floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor}
}

// MakeDoor returns an open door; passable like floor.
func MakeDoor() Tile {
	return Tile{Kind: TileDoor}
}
