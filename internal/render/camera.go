package render

import "grid-roguelike/internal/component"

// cellWidth is the number of terminal columns one map cell occupies; emoji
// are two columns wide.
const cellWidth = 2

// Camera maps world cells into a viewport of ViewWidth columns by
// ViewHeight rows.
type Camera struct {
	Origin     component.Position // world cell drawn at the top-left corner
	ViewWidth  int                // in terminal columns
	ViewHeight int                // in terminal rows
}

// NewCamera creates a camera with its origin at (0,0).
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow centres the view on focus without scrolling past the edges of a
// mapW x mapH map. A map that fits the view stays pinned to the top-left.
func (c *Camera) Follow(focus component.Position, mapW, mapH int) {
	c.Origin = component.Position{
		X: follow(focus.X, c.ViewWidth/cellWidth, mapW),
		Y: follow(focus.Y, c.ViewHeight, mapH),
	}
}

func follow(focus, view, size int) int {
	if size <= view {
		return 0
	}
	return min(max(focus-view/2, 0), size-view)
}

// WorldToScreen returns the screen column and row of a cell's left half.
// visible is false when the cell falls outside the viewport.
func (c *Camera) WorldToScreen(cell component.Position) (sx, sy int, visible bool) {
	sx = (cell.X - c.Origin.X) * cellWidth
	sy = cell.Y - c.Origin.Y
	visible = sx >= 0 && sx+cellWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld returns the cell drawn at screen (sx, sy).
func (c *Camera) ScreenToWorld(sx, sy int) component.Position {
	return component.Position{X: sx/cellWidth + c.Origin.X, Y: sy + c.Origin.Y}
}
