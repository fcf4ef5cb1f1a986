package render

import (
	"grid-roguelike/internal/component"
	"grid-roguelike/internal/ecs"
	"grid-roguelike/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the map.
const HUDRows = 5

// Renderer draws a world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, h-HUDRows),
	}
}

// Resize refits the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - HUDRows
}

// Follow scrolls the view to keep the player near the middle of the map
// area. Without a player the view stays where it is.
func (r *Renderer) Follow(w *world.World) {
	pos, ok := w.PlayerPos()
	if !ok {
		return
	}
	gmap := w.Terrain()
	r.camera.Follow(pos, gmap.Width, gmap.Height)
}

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(cell component.Position) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(cell)
}

// DrawFrame renders terrain then entities.
func (r *Renderer) DrawFrame(w *world.World) {
	r.screen.Clear()
	r.drawMap(w)
	r.drawEntities(w)
}

func (r *Renderer) drawMap(w *world.World) {
	gmap := w.Terrain()
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(component.Position{X: x, Y: y})
			if !onScreen {
				continue
			}
			g := TerrainGlyph(gmap.At(x, y).Kind)
			r.putGlyph(sx, sy, g.Text, style.Foreground(g.Color))
		}
	}
}

// drawEntities draws in ascending id order; cells hold one entity, so
// order never hides anything.
func (r *Renderer) drawEntities(w *world.World) {
	w.EachVisible(func(_ ecs.EntityID, c component.Position, a component.Appearance) {
		sx, sy, onScreen := r.camera.WorldToScreen(c)
		if !onScreen {
			return
		}
		g := EntityGlyph(a)
		r.putGlyph(sx, sy, g.Text, tcell.StyleDefault.Foreground(g.Color).Background(tcell.ColorBlack))
	})
}

// putGlyph draws a glyph into the two columns of one cell. Wide glyphs
// (emoji, possibly with combining runes) fill both; narrow runes are laid
// out left to right and padded with a space.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	if runewidth.RuneWidth(runes[0]) == 2 {
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		return
	}
	col := 0
	for _, ch := range runes {
		if col >= 2 {
			break
		}
		r.screen.SetContent(x+col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	if col < 2 {
		r.screen.SetContent(x+col, y, ' ', nil, style)
	}
}
