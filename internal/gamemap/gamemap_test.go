package gamemap

import (
	"testing"

	"grid-roguelike/internal/component"
)

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsSolid(t *testing.T) {
	m := New(5, 5)
	if !m.IsSolid(2, 2) {
		t.Error("wall tile should be solid")
	}
	m.Set(2, 2, MakeFloor())
	if m.IsSolid(2, 2) {
		t.Error("floor tile should not be solid")
	}
	m.Set(3, 2, MakeDoor())
	if m.IsSolid(3, 2) {
		t.Error("door tile should not be solid")
	}
}

func TestIsSolidOutOfBounds(t *testing.T) {
	cases := []struct {
		name string
		x, y int
	}{
		{"x=-1", -1, 0},
		{"y=-1", 0, -1},
		{"beyond width", 5, 2},
		{"beyond height", 2, 5},
	}
	m := New(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			m.Set(x, y, MakeFloor())
		}
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !m.IsSolid(tc.x, tc.y) {
				t.Errorf("IsSolid(%d,%d) = false; out of bounds must be solid", tc.x, tc.y)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
}

func TestParse(t *testing.T) {
	m, markers, err := Parse([]string{
		"#####",
		"#@.g#",
		"#.+.",
		"#####",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Width != 5 || m.Height != 4 {
		t.Fatalf("size = %dx%d; want 5x4", m.Width, m.Height)
	}
	if !m.IsSolid(0, 0) || m.IsSolid(2, 1) {
		t.Error("wall/floor mismatch")
	}
	if m.At(2, 2).Kind != TileDoor {
		t.Errorf("(2,2) kind = %v; want door", m.At(2, 2).Kind)
	}
	if !m.IsSolid(4, 2) {
		t.Error("short row must be padded with wall")
	}
	if len(markers) != 2 {
		t.Fatalf("markers = %v; want 2", markers)
	}
	if markers[0].Glyph != '@' || markers[0].Pos != (component.Position{X: 1, Y: 1}) {
		t.Errorf("marker[0] = %+v", markers[0])
	}
	if m.IsSolid(3, 1) {
		t.Error("marker cell must be floor")
	}
}

func TestParseEmpty(t *testing.T) {
	if _, _, err := Parse(nil); err == nil {
		t.Fatal("expected error for empty layout")
	}
}

func TestFloors(t *testing.T) {
	m := New(3, 3)
	m.Set(1, 1, MakeFloor())
	m.Set(2, 1, MakeDoor())
	got := m.Floors()
	if len(got) != 2 || got[0] != (component.Position{X: 1, Y: 1}) {
		t.Fatalf("Floors = %v", got)
	}
}

func TestAtAndSetOutOfBounds(t *testing.T) {
	m := New(3, 3)
	m.Set(-1, 0, MakeFloor())
	m.Set(3, 3, MakeFloor())
	if len(m.Floors()) != 0 {
		t.Fatal("out-of-bounds Set must not write")
	}
	if got := m.At(7, -2); got.Kind != TileWall || !got.Solid {
		t.Errorf("At out of bounds = %+v; want wall", got)
	}
}
