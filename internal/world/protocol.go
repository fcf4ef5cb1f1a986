package world

import (
	"fmt"

	"go.uber.org/zap"

	"grid-roguelike/internal/component"
	"grid-roguelike/internal/system"
)

// Phase is the protocol state. Exactly one call is legal in each phase:
// SetAction in PhaseExpectingInput, Turn in PhaseExpectingTurn.
type Phase uint8

const (
	PhaseExpectingInput Phase = iota
	PhaseExpectingTurn
)

func (p Phase) String() string {
	switch p {
	case PhaseExpectingInput:
		return "expecting-input"
	case PhaseExpectingTurn:
		return "expecting-turn"
	}
	return "unknown"
}

// ProtocolViolation is raised (via panic) when the driver makes the call
// that is not legal in the current phase. It is a driver bug.
type ProtocolViolation struct {
	Call  string
	Phase Phase
}

func (e *ProtocolViolation) Error() string {
	return fmt.Sprintf("protocol violation: %s called in phase %v", e.Call, e.Phase)
}

// SetAction stores the player's next action and hands control to Turn.
func (w *World) SetAction(a Action) {
	if w.phase != PhaseExpectingInput {
		panic(&ProtocolViolation{Call: "SetAction", Phase: w.phase})
	}
	w.pending = a
	w.phase = PhaseExpectingTurn
}

// Turn advances one half-turn.
//
// On the player half the pending action runs if the player's tier allows it
// this turn; a rejected action returns to PhaseExpectingInput without
// advancing the counter. On the enemy half the counter increments, every
// eligible non-player entity moves, and input is requested again if the
// user-driven player may act on the new turn.
func (w *World) Turn() {
	if w.phase != PhaseExpectingTurn {
		panic(&ProtocolViolation{Call: "Turn", Phase: w.phase})
	}
	if w.playerHalf {
		w.playerTurn()
		return
	}
	w.enemyTurn()
}

func (w *World) playerTurn() {
	if w.playerActive() {
		a := w.pending
		w.pending = ActionNone
		if !w.perform(a) {
			w.log.Debug("action rejected", zap.Stringer("action", a), zap.Int("turn", w.turn))
			w.phase = PhaseExpectingInput
			return
		}
	}
	w.playerHalf = false
}

func (w *World) enemyTurn() {
	w.turn++
	moves := system.ResolveMoves(w.store, w.terrain, w.rng, system.ActiveEntities(w.store, w.turn))
	w.log.Debug("turn advanced", zap.Int("turn", w.turn), zap.Int("moves", len(moves)))
	w.playerHalf = true

	id, ok := w.store.PlayerID()
	if !ok {
		return
	}
	if st, ok := w.store.Strategy.Get(id); ok && st == component.StrategyUser && system.IsActive(w.store, id, w.turn) {
		w.phase = PhaseExpectingInput
	}
}

// Advance runs Turn until input is needed again, at most limit half-turns.
// It returns the number of half-turns taken. Drivers use it after SetAction.
func (w *World) Advance(limit int) int {
	n := 0
	for w.phase == PhaseExpectingTurn && n < limit {
		w.Turn()
		n++
	}
	return n
}
