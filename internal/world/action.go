package world

import (
	"go.uber.org/zap"

	"grid-roguelike/internal/component"
	"grid-roguelike/internal/ecs"
	"grid-roguelike/internal/system"
)

// Action is a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionWait
	ActionMoveN
	ActionMoveE
	ActionMoveS
	ActionMoveW
	ActionShootN
	ActionShootE
	ActionShootS
	ActionShootW
)

var actionNames = [...]string{
	ActionNone:   "none",
	ActionWait:   "wait",
	ActionMoveN:  "move-north",
	ActionMoveE:  "move-east",
	ActionMoveS:  "move-south",
	ActionMoveW:  "move-west",
	ActionShootN: "shoot-north",
	ActionShootE: "shoot-east",
	ActionShootS: "shoot-south",
	ActionShootW: "shoot-west",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// MoveAction returns the move action for dir.
func MoveAction(dir component.Direction) Action {
	return ActionMoveN + Action(dir)
}

// ShootAction returns the shoot action for dir.
func ShootAction(dir component.Direction) Action {
	return ActionShootN + Action(dir)
}

// perform executes a for the player and reports whether it was accepted.
// With no player there is nothing to reject.
func (w *World) perform(a Action) bool {
	id, ok := w.store.PlayerID()
	if !ok {
		return true
	}
	switch {
	case a >= ActionMoveN && a <= ActionMoveW:
		dir := component.Direction(a - ActionMoveN)
		res, other := system.TryMove(w.store, w.terrain, id, dir)
		if res != system.MoveOK {
			w.log.Debug("move refused", zap.Stringer("dir", dir), zap.Stringer("result", res), zap.Uint64("occupant", uint64(other)))
			w.emit(EffectBlocked)
			return false
		}
		return true
	case a >= ActionShootN && a <= ActionShootW:
		w.shoot(id, component.Direction(a-ActionShootN))
		return true
	}
	// Wait, and None from a player the user does not drive, always succeed.
	return true
}

func (w *World) shoot(id ecs.EntityID, dir component.Direction) {
	w.emit(EffectShot)
	res := system.Shoot(w.store, w.terrain, id, dir)
	if !res.Hit {
		w.emit(EffectMiss)
		return
	}
	w.emit(EffectHit)
	w.log.Debug("entity hit", zap.Uint64("target", uint64(res.Target)), zap.Stringer("cell", res.Cell))
	w.Destroy(res.Target)
}
