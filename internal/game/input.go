package game

import (
	"github.com/gdamore/tcell/v2"

	"grid-roguelike/internal/component"
	"grid-roguelike/internal/world"
)

// Command is what a key press asks the driver to do.
type Command uint8

const (
	CommandNone Command = iota
	CommandAct          // hand the decoded action to the world
	CommandRestart
	CommandNextLevel
	CommandQuit
)

var runeDirections = map[rune]component.Direction{
	'k': component.North,
	'l': component.East,
	'j': component.South,
	'h': component.West,
}

var keyDirections = map[tcell.Key]component.Direction{
	tcell.KeyUp:    component.North,
	tcell.KeyRight: component.East,
	tcell.KeyDown:  component.South,
	tcell.KeyLeft:  component.West,
}

// keyToCommand maps a tcell key event to a driver command and, for
// CommandAct, the player action to submit.
//
// hjkl and the arrow keys move; HJKL and shift+arrow shoot; '.' and space
// wait.
func keyToCommand(ev *tcell.EventKey) (Command, world.Action) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, world.ActionNone
	}
	if dir, ok := keyDirections[ev.Key()]; ok {
		if ev.Modifiers()&tcell.ModShift != 0 {
			return CommandAct, world.ShootAction(dir)
		}
		return CommandAct, world.MoveAction(dir)
	}
	if ev.Key() != tcell.KeyRune {
		return CommandNone, world.ActionNone
	}

	r := ev.Rune()
	if dir, ok := runeDirections[r]; ok {
		return CommandAct, world.MoveAction(dir)
	}
	if r >= 'A' && r <= 'Z' {
		if dir, ok := runeDirections[r-'A'+'a']; ok {
			return CommandAct, world.ShootAction(dir)
		}
	}
	switch r {
	case '.', ' ':
		return CommandAct, world.ActionWait
	case 'r':
		return CommandRestart, world.ActionNone
	case '>':
		return CommandNextLevel, world.ActionNone
	case 'q', 'Q':
		return CommandQuit, world.ActionNone
	}
	return CommandNone, world.ActionNone
}
