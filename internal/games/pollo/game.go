// Package pollo adapts the side-scroller simulation to the platform's
// Game interface. Each built-in level registers as its own game entry.
package pollo

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pollo-run/internal/config"
	"github.com/vovakirdan/pollo-run/internal/core"
	"github.com/vovakirdan/pollo-run/internal/games/pollo/levels"
	"github.com/vovakirdan/pollo-run/internal/games/pollo/sim"
	"github.com/vovakirdan/pollo-run/internal/registry"
)

const simTick = time.Second / sim.TickRate

// Score weights
const (
	scoreCoin    = 10
	scoreStomp   = 25
	scoreBossHit = 50
	scoreWin     = 500
)

// Settings set via CLI before a game is created
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelDir         string
	notifier         sim.Notifier
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
// Unknown values fall back to the config as loaded.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelDir sets a directory searched for level files before the
// built-in levels.
func SetLevelDir(dir string) {
	levelDir = dir
}

// SetNotifier sets the audio/UI notifier every new world reports to.
func SetNotifier(n sim.Notifier) {
	notifier = n
}

// SetLogger sets the logger passed to every new world.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	registry.Register("pollo", func() registry.Game { return New("pollo", "level1") })
	registry.Register("pollo-boss", func() registry.Game { return New("pollo-boss", "boss-arena") })
}

// Game implements registry.Game on top of a sim.World.
type Game struct {
	id          string
	levelID     string
	title       string
	description string
	runtime     core.RuntimeConfig
	cfg         config.PolloConfig
	level       levels.Level
	world       *sim.World
	paused      bool

	// Logical time owed to the world and one-shot intents that arrived
	// on a frame too short to run a base tick.
	lag     time.Duration
	carried sim.Input
}

// New creates a game entry playing the given level.
func New(id, levelID string) *Game {
	g := &Game{id: id, levelID: levelID, title: "Pollo Run"}
	if lvl, err := levels.BuiltinByID(levelID); err == nil {
		g.title = fmt.Sprintf("Pollo Run: %s", lvl.Name)
		g.description = lvl.Description
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description returns the level blurb shown by the list command.
func (g *Game) Description() string {
	return g.description
}

// Reset loads the config and level and rebuilds the world from scratch.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.world != nil {
		g.world.Stop()
	}

	cfg, err := config.LoadPollo(configPath)
	if err != nil {
		g.log().Warn("falling back to default config", "err", err)
		cfg = config.DefaultPolloConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPolloPreset(&cfg, difficultyPreset)
		if err := cfg.Validate(); err != nil {
			g.log().Warn("preset produced invalid config, using defaults", "preset", difficultyPreset, "err", err)
			cfg = config.DefaultPolloConfig()
		}
	}
	g.cfg = cfg
	g.level = g.loadLevel()
	g.paused = false
	g.lag = 0
	g.carried = sim.Input{}

	g.world = sim.NewWorld(g.level, cfg, sim.Options{
		Logger:   logger,
		Notifier: notifier,
		Seed:     runtime.Seed,
	})
	g.log().Debug("world reset", "level", g.level.ID, "seed", runtime.Seed, "preset", difficultyPreset)
}

func (g *Game) loadLevel() levels.Level {
	if levelDir != "" {
		lvl, err := levels.NewLoader(levelDir).LoadByID(g.levelID)
		if err == nil {
			return lvl
		}
		g.log().Debug("level not in custom dir, using builtin", "level", g.levelID, "err", err)
	}
	lvl, err := levels.BuiltinByID(g.levelID)
	if err != nil {
		g.log().Warn("unknown level, using default", "level", g.levelID, "err", err)
		return levels.Default()
	}
	return lvl
}

func (g *Game) log() *log.Logger {
	if logger != nil {
		return logger
	}
	return log.Default()
}

// Step advances the game by one rendered frame. The world always runs at
// sim.TickRate; a frame runs as many base ticks as the logical time it
// covers, so walk speed and jump arcs do not depend on the frame rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if g.world.Finished {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.advance(ToInput(in))
	return core.StepResult{State: g.State()}
}

func (g *Game) advance(in sim.Input) {
	in.Jump = in.Jump || g.carried.Jump
	in.Throw = in.Throw || g.carried.Throw

	g.lag += g.runtime.FrameInterval()
	steps := 0
	for g.lag >= simTick && !g.world.Finished {
		g.world.Step(in)
		g.lag -= simTick
		steps++
		// One-shot intents apply to the first tick of a frame only
		in.Jump, in.Throw = false, false
	}

	g.carried = sim.Input{}
	if steps == 0 {
		g.carried = sim.Input{Jump: in.Jump, Throw: in.Throw}
	}
}

// ToInput converts platform actions into simulation intents.
func ToInput(in core.InputFrame) sim.Input {
	return sim.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
		Throw: in.Has(core.ActionThrow),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    Score(g.world),
		GameOver: g.world.Finished,
		Won:      g.world.Won,
		Paused:   g.paused,
	}
}

// World exposes the running simulation.
func (g *Game) World() *sim.World {
	return g.world
}

// Score computes the run score from the world's counters.
func Score(w *sim.World) int {
	s := w.CoinAmount*scoreCoin + w.Stats.Stomps*scoreStomp + w.Stats.BossHits*scoreBossHit
	if w.Finished && w.Won {
		s += scoreWin
	}
	return s
}
