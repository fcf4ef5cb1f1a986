package gamemap

import (
	"fmt"
	"unicode/utf8"

	"grid-roguelike/internal/component"
)

// Marker is a spawn glyph found while parsing a layout. The cell under it
// is floor.
type Marker struct {
	Glyph rune
	Pos   component.Position
}

// Parse builds a map from ASCII rows: '#' wall, '.' floor, '+' door, ' '
// wall. Any other rune is recorded as a Marker on a floor cell. Rows shorter
// than the widest one are padded with wall.
func Parse(rows []string) (*GameMap, []Marker, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("parse layout: no rows")
	}
	width := 0
	for _, r := range rows {
		width = max(width, utf8.RuneCountInString(r))
	}
	if width == 0 {
		return nil, nil, fmt.Errorf("parse layout: empty rows")
	}

	m := New(width, len(rows))
	var markers []Marker
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			switch ch {
			case '#', ' ':
				// New already filled walls.
			case '.':
				m.Set(x, y, MakeFloor())
			case '+':
				m.Set(x, y, MakeDoor())
			default:
				m.Set(x, y, MakeFloor())
				markers = append(markers, Marker{Glyph: ch, Pos: component.Position{X: x, Y: y}})
			}
			x++
		}
	}
	return m, markers, nil
}
