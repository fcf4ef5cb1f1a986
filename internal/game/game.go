package game

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"grid-roguelike/internal/level"
	"grid-roguelike/internal/render"
	"grid-roguelike/internal/world"
)

// advanceLimit bounds the half-turns run per key press, so a world that never
// asks for input again (no player left) still yields to the event loop.
const advanceLimit = 16

const maxMessages = 50

// Options configures a Game.
type Options struct {
	Levels *level.Set
	Level  string // starting level; empty means the first in the set
	Seed   int64
	Log    *zap.Logger
	// RecordRuns appends a RunLog line to runs.jsonl when a level is left.
	RecordRuns bool
}

// Game is the top-level orchestrator: it decodes keys, drives the world's
// input/turn protocol and redraws after every step.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	levels   *level.Set
	levelIdx int
	world    *world.World
	seed     int64
	log      *zap.Logger
	record   bool
	messages []string
	runLog   RunLog
}

// New creates a Game on an initialised screen and loads the starting level.
func New(screen tcell.Screen, opts Options) (*Game, error) {
	if opts.Levels == nil || len(opts.Levels.Names()) == 0 {
		return nil, errors.New("no levels to play")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		levels:   opts.Levels,
		seed:     opts.Seed,
		log:      log,
		record:   opts.RecordRuns,
	}
	idx := 0
	if opts.Level != "" {
		idx = slices.Index(opts.Levels.Names(), opts.Level)
		if idx < 0 {
			return nil, fmt.Errorf("unknown level %q", opts.Level)
		}
	}
	if err := g.loadLevel(idx); err != nil {
		return nil, err
	}
	return g, nil
}

// loadLevel builds a fresh world for the idx-th level. Every load reseeds, so
// restarting a level replays it exactly.
func (g *Game) loadLevel(idx int) error {
	name := g.levels.Names()[idx]
	def, _ := g.levels.Get(name)
	w, err := level.Build(def, rand.New(rand.NewSource(g.seed)), g.log.With(zap.String("level", name)))
	if err != nil {
		return err
	}
	g.levelIdx = idx
	g.world = w
	g.runLog = RunLog{Level: name, Seed: g.seed}
	g.addMessage(fmt.Sprintf("You enter the %s.", name))
	g.log.Info("level loaded", zap.String("level", name), zap.Int64("seed", g.seed))
	return nil
}

// LevelName returns the name of the level being played.
func (g *Game) LevelName() string { return g.levels.Names()[g.levelIdx] }

// World exposes the running simulation.
func (g *Game) World() *world.World { return g.world }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// Run is the main event loop. It returns when the player quits or the screen
// is finalised from elsewhere.
func (g *Game) Run() {
	defer g.screen.Fini()

	g.addMessage("hjkl/arrows move, HJKL/shift+arrows shoot, . waits, r restarts, > next level, q quits.")
	for {
		g.draw()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			g.finishRun()
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			if !g.HandleKey(ev) {
				g.finishRun()
				return
			}
		}
	}
}

func (g *Game) draw() {
	g.renderer.Follow(g.world)
	g.renderer.DrawFrame(g.world)
	g.renderer.DrawHUD(g.world, g.LevelName(), g.messages)
}

// HandleKey applies one key press. It returns false when the player quits.
func (g *Game) HandleKey(ev *tcell.EventKey) bool {
	cmd, action := keyToCommand(ev)
	switch cmd {
	case CommandQuit:
		return false
	case CommandRestart:
		g.switchLevel(g.levelIdx)
	case CommandNextLevel:
		g.switchLevel((g.levelIdx + 1) % len(g.levels.Names()))
	case CommandAct:
		g.Step(action)
	}
	return true
}

func (g *Game) switchLevel(idx int) {
	g.finishRun()
	if err := g.loadLevel(idx); err != nil {
		g.log.Error("load level", zap.Error(err))
		g.addMessage("That level will not load.")
	}
}

// Step submits a when the world is waiting for input, then runs turns until
// input is needed again. While the world is mid-turn the action is ignored and
// the simulation simply advances.
func (g *Game) Step(a world.Action) {
	if g.world.Phase() == world.PhaseExpectingInput {
		if a == world.ActionNone {
			return
		}
		g.world.SetAction(a)
	}
	g.world.Advance(advanceLimit)
	g.runLog.TurnsPlayed = g.world.TurnCounter()
	g.narrate(g.world.ConsumeEffects())
}

func (g *Game) narrate(effects []string) {
	for _, e := range effects {
		g.runLog.tally(e)
		switch e {
		case world.EffectShot:
			g.addMessage("You loose a bolt.")
		case world.EffectHit:
			g.addMessage("The bolt strikes home!")
		case world.EffectMiss:
			g.addMessage("The bolt clatters against the wall.")
		case world.EffectBlocked:
			g.addMessage("Something blocks your way.")
		}
	}
}

func (g *Game) finishRun() {
	if !g.record || g.runLog.TurnsPlayed == 0 {
		return
	}
	if err := saveRunLog(g.runLog); err != nil {
		g.log.Warn("save run log", zap.Error(err))
	}
	g.runLog = RunLog{Level: g.runLog.Level, Seed: g.runLog.Seed}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
