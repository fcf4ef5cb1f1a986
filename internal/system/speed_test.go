package system

import (
	"slices"
	"testing"

	"grid-roguelike/internal/component"
	"grid-roguelike/internal/ecs"
)

func TestIsActiveByTier(t *testing.T) {
	s := component.NewStore()
	s.SetSpeed(1, component.SpeedFast)
	s.SetSpeed(2, component.SpeedNormal)
	s.SetSpeed(3, component.SpeedSlow)

	for turn := 0; turn < 16; turn++ {
		if !IsActive(s, 1, turn) {
			t.Errorf("turn %d: fast entity inactive", turn)
		}
		if got, want := IsActive(s, 2, turn), turn%2 == 0; got != want {
			t.Errorf("turn %d: normal active = %v; want %v", turn, got, want)
		}
		if got, want := IsActive(s, 3, turn), turn%4 == 0; got != want {
			t.Errorf("turn %d: slow active = %v; want %v", turn, got, want)
		}
		if IsActive(s, 4, turn) {
			t.Errorf("turn %d: entity without tier active", turn)
		}
	}
}

func TestActiveEntities(t *testing.T) {
	s := component.NewStore()
	s.SetSpeed(4, component.SpeedFast)
	s.SetSpeed(2, component.SpeedNormal)
	s.SetSpeed(3, component.SpeedSlow)
	s.Appearance.Set(5, component.AppearanceBarrel) // no tier

	cases := []struct {
		turn int
		want []ecs.EntityID
	}{
		{0, []ecs.EntityID{2, 3, 4}},
		{1, []ecs.EntityID{4}},
		{2, []ecs.EntityID{2, 4}},
		{3, []ecs.EntityID{4}},
		{4, []ecs.EntityID{2, 3, 4}},
	}
	for _, tc := range cases {
		got := ActiveEntities(s, tc.turn)
		if !slices.Equal(got, tc.want) {
			t.Errorf("turn %d: ActiveEntities = %v; want %v", tc.turn, got, tc.want)
		}
		for _, id := range got {
			if !IsActive(s, id, tc.turn) {
				t.Errorf("turn %d: %d listed but IsActive false", tc.turn, id)
			}
		}
	}
}
