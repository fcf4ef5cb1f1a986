package game

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"grid-roguelike/internal/component"
	"grid-roguelike/internal/level"
	"grid-roguelike/internal/render"
	"grid-roguelike/internal/world"
)

const testLevels = `
levels:
  - name: hall
    layout:
      - "#####"
      - "#@.o#"
      - "#####"
  - name: nook
    layout:
      - "####"
      - "#.@#"
      - "####"
`

func newTestGame(t *testing.T) *Game {
	t.Helper()
	set, err := level.Parse([]byte(testLevels))
	if err != nil {
		t.Fatalf("level.Parse: %v", err)
	}
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)

	g, err := New(ss, Options{Levels: set, Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func playerAt(t *testing.T, g *Game) component.Position {
	t.Helper()
	p, ok := g.World().PlayerPos()
	if !ok {
		t.Fatal("no player")
	}
	return p
}

func TestKeyToCommand(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		cmd    Command
		action world.Action
	}{
		{"k", runeKey('k'), CommandAct, world.ActionMoveN},
		{"l", runeKey('l'), CommandAct, world.ActionMoveE},
		{"j", runeKey('j'), CommandAct, world.ActionMoveS},
		{"h", runeKey('h'), CommandAct, world.ActionMoveW},
		{"K", runeKey('K'), CommandAct, world.ActionShootN},
		{"H", runeKey('H'), CommandAct, world.ActionShootW},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), CommandAct, world.ActionMoveN},
		{"shift-right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), CommandAct, world.ActionShootE},
		{"wait", runeKey('.'), CommandAct, world.ActionWait},
		{"restart", runeKey('r'), CommandRestart, world.ActionNone},
		{"next", runeKey('>'), CommandNextLevel, world.ActionNone},
		{"q", runeKey('q'), CommandQuit, world.ActionNone},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CommandQuit, world.ActionNone},
		{"unbound", runeKey('z'), CommandNone, world.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, action := keyToCommand(tt.ev)
			if cmd != tt.cmd || action != tt.action {
				t.Errorf("keyToCommand = (%v, %v); want (%v, %v)", cmd, action, tt.cmd, tt.action)
			}
		})
	}
}

func TestNewUnknownLevel(t *testing.T) {
	set, err := level.Parse([]byte(testLevels))
	if err != nil {
		t.Fatalf("level.Parse: %v", err)
	}
	ss := tcell.NewSimulationScreen("UTF-8")
	if _, err := New(ss, Options{Levels: set, Level: "attic"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := New(ss, Options{}); err == nil {
		t.Fatal("expected error without levels")
	}
}

func TestMoveReturnsToInput(t *testing.T) {
	g := newTestGame(t)
	if !g.HandleKey(runeKey('l')) {
		t.Fatal("move key should not quit")
	}
	if got := playerAt(t, g); got != (component.Position{X: 2, Y: 1}) {
		t.Fatalf("player at %v; want (2,1)", got)
	}
	if g.World().Phase() != world.PhaseExpectingInput {
		t.Fatalf("phase = %v; want expecting input", g.World().Phase())
	}
	if g.World().TurnCounter() != 2 {
		t.Errorf("turn = %d; want 2", g.World().TurnCounter())
	}
}

func TestBlockedMoveReprompts(t *testing.T) {
	g := newTestGame(t)
	g.HandleKey(runeKey('l'))
	turn := g.World().TurnCounter()

	g.HandleKey(runeKey('l')) // barrel at (3,1)
	if got := playerAt(t, g); got != (component.Position{X: 2, Y: 1}) {
		t.Fatalf("player moved into barrel: %v", got)
	}
	if g.World().TurnCounter() != turn {
		t.Errorf("rejected move advanced the turn counter")
	}
	if g.World().Phase() != world.PhaseExpectingInput {
		t.Errorf("phase = %v; want expecting input", g.World().Phase())
	}
	msgs := g.Messages()
	if msgs[len(msgs)-1] != "Something blocks your way." {
		t.Errorf("last message = %q", msgs[len(msgs)-1])
	}
	if len(g.World().Effects()) != 0 {
		t.Error("effects should be drained after a step")
	}
}

func TestShootNarratesAndTallies(t *testing.T) {
	g := newTestGame(t)
	g.HandleKey(runeKey('L'))

	if _, ok := g.World().At(component.Position{X: 3, Y: 1}); ok {
		t.Fatal("barrel should be destroyed")
	}
	msgs := g.Messages()
	tail := msgs[len(msgs)-2:]
	if !slices.Equal(tail, []string{"You loose a bolt.", "The bolt strikes home!"}) {
		t.Errorf("messages = %q", tail)
	}
	if g.runLog.Shots != 1 || g.runLog.Hits != 1 {
		t.Errorf("runLog = %+v", g.runLog)
	}

	g.HandleKey(runeKey('L'))
	msgs = g.Messages()
	if msgs[len(msgs)-1] != "The bolt clatters against the wall." {
		t.Errorf("last message = %q", msgs[len(msgs)-1])
	}
	if g.runLog.Misses != 1 {
		t.Errorf("Misses = %d; want 1", g.runLog.Misses)
	}
}

func TestRestartAndNextLevel(t *testing.T) {
	g := newTestGame(t)
	g.HandleKey(runeKey('l'))

	g.HandleKey(runeKey('r'))
	if g.LevelName() != "hall" {
		t.Fatalf("level = %q after restart", g.LevelName())
	}
	if got := playerAt(t, g); got != (component.Position{X: 1, Y: 1}) {
		t.Errorf("restart left player at %v", got)
	}
	if g.World().TurnCounter() != 0 {
		t.Errorf("restart kept turn %d", g.World().TurnCounter())
	}

	g.HandleKey(runeKey('>'))
	if g.LevelName() != "nook" {
		t.Fatalf("level = %q; want nook", g.LevelName())
	}
	g.HandleKey(runeKey('>'))
	if g.LevelName() != "hall" {
		t.Fatalf("level = %q; want wrap to hall", g.LevelName())
	}
}

func TestQuitKey(t *testing.T) {
	g := newTestGame(t)
	if g.HandleKey(runeKey('q')) {
		t.Error("q should quit")
	}
}

func TestUnboundKeyKeepsPhase(t *testing.T) {
	g := newTestGame(t)
	g.HandleKey(runeKey('z'))
	if g.World().Phase() != world.PhaseExpectingInput || g.World().TurnCounter() != 0 {
		t.Error("unbound key should not touch the world")
	}
}

func TestDrawShowsLevel(t *testing.T) {
	g := newTestGame(t)
	g.draw()

	_, h := g.screen.Size()
	var b strings.Builder
	for x := 0; x < 6; x++ {
		c, _, _, _ := g.screen.GetContent(x, h-render.HUDRows+1)
		b.WriteRune(c)
	}
	if b.String() != "[hall]" {
		t.Errorf("status prefix = %q; want [hall]", b.String())
	}
}

func TestFailedSwitchSavesRunOnce(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	set, err := level.Parse([]byte(`
levels:
  - name: hall
    layout: ["#####", "#@..#", "#####"]
  - name: broken
    layout: ["###", "#?#", "###"]
`))
	if err != nil {
		t.Fatalf("level.Parse: %v", err)
	}
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	g, err := New(ss, Options{Levels: set, Seed: 1, RecordRuns: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	g.HandleKey(runeKey('l'))
	g.HandleKey(runeKey('>'))
	if g.LevelName() != "hall" {
		t.Fatalf("level = %q; a failed load should keep the current level", g.LevelName())
	}
	if g.runLog.TurnsPlayed != 0 {
		t.Errorf("TurnsPlayed = %d after saving; want 0", g.runLog.TurnsPlayed)
	}
	g.finishRun()

	data, err := os.ReadFile(filepath.Join(tmp, "grid-roguelike", "runs.jsonl"))
	if err != nil {
		t.Fatalf("read run log: %v", err)
	}
	if n := strings.Count(string(data), "\n"); n != 1 {
		t.Fatalf("run log has %d entries; want 1:\n%s", n, data)
	}
}
