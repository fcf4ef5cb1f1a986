package component

import "testing"

func TestStoreRemoveSweepsEveryTable(t *testing.T) {
	s := NewStore()
	s.Appearance.Set(1, AppearancePlayer)
	s.Player.Set(1)
	s.Strategy.Set(1, StrategyUser)
	s.SetSpeed(1, SpeedNormal)
	s.Position.Set(1, Position{X: 2, Y: 2})

	s.Remove(1)

	if s.Appearance.Has(1) {
		t.Error("appearance survived Remove")
	}
	if _, ok := s.PlayerID(); ok {
		t.Error("player singleton survived Remove")
	}
	if s.Strategy.Has(1) {
		t.Error("strategy survived Remove")
	}
	if _, ok := s.Speed(1); ok {
		t.Error("speed tier survived Remove")
	}
	if _, ok := s.Position.At(Position{X: 2, Y: 2}); ok {
		t.Error("position survived Remove")
	}
}

func TestStoreSetSpeedExclusive(t *testing.T) {
	s := NewStore()
	s.SetSpeed(1, SpeedFast)
	s.SetSpeed(1, SpeedSlow)
	if s.Fast.Has(1) {
		t.Fatal("entity still fast after SetSpeed(slow)")
	}
	if tier, ok := s.Speed(1); !ok || tier != SpeedSlow {
		t.Fatalf("Speed = (%v, %v); want (slow, true)", tier, ok)
	}
	s.ClearSpeed(1)
	if _, ok := s.Speed(1); ok {
		t.Fatal("ClearSpeed left a tier")
	}
}

func TestStoreBlocker(t *testing.T) {
	s := NewStore()
	s.Position.Set(1, Position{})
	s.Position.Set(2, Position{X: 1})
	s.Strategy.Set(2, StrategyWandering)

	if !s.Blocker(1) {
		t.Error("placed entity without strategy should block")
	}
	if s.Blocker(2) {
		t.Error("mobile entity is not a blocker")
	}
	if s.Blocker(3) {
		t.Error("unplaced entity is not a blocker")
	}
}

func TestDirectionRotateCycles(t *testing.T) {
	d := North
	seen := map[Direction]bool{}
	for i := 0; i < 4; i++ {
		seen[d] = true
		d = d.Rotate()
	}
	if d != North || len(seen) != 4 {
		t.Fatalf("rotation did not cycle through all four directions: %v", seen)
	}
	if got := (Position{X: 1, Y: 1}).Add(West); got != (Position{X: 0, Y: 1}) {
		t.Fatalf("Add(West) = %v", got)
	}
}
