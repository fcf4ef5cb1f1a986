package render

import (
	"grid-roguelike/internal/component"
	"grid-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Glyph is how one thing is drawn.
type Glyph struct {
	Text  string
	Color tcell.Color
}

// Terrain glyphs. Emoji occupy two columns; the camera doubles X.
var terrainGlyphs = map[gamemap.TileKind]Glyph{
	gamemap.TileWall:  {Text: "🧱", Color: tcell.ColorGray},
	gamemap.TileFloor: {Text: "· ", Color: tcell.ColorDarkGray},
	gamemap.TileDoor:  {Text: "🚪", Color: tcell.ColorOlive},
}

var entityGlyphs = map[component.Appearance]Glyph{
	component.AppearancePlayer: {Text: "🧙", Color: tcell.ColorYellow},
	component.AppearanceGoblin: {Text: "👺", Color: tcell.ColorRed},
	component.AppearanceBat:    {Text: "🦇", Color: tcell.ColorPurple},
	component.AppearanceTurtle: {Text: "🐢", Color: tcell.ColorGreen},
	component.AppearanceBarrel: {Text: "🪵", Color: tcell.ColorMaroon},
	component.AppearanceWisp:   {Text: "👻", Color: tcell.ColorAqua},
}

// EntityGlyph returns the glyph for an appearance; unknown kinds draw as "?".
func EntityGlyph(a component.Appearance) Glyph {
	if g, ok := entityGlyphs[a]; ok {
		return g
	}
	return Glyph{Text: "?", Color: tcell.ColorWhite}
}

// TerrainGlyph returns the glyph for a tile kind.
func TerrainGlyph(k gamemap.TileKind) Glyph {
	if g, ok := terrainGlyphs[k]; ok {
		return g
	}
	return terrainGlyphs[gamemap.TileFloor]
}
