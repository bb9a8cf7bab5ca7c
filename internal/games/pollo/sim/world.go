// Package sim is the Pollo Run simulation: a deterministic, tick-driven
// world of a player, ground enemies, a boss, collectibles and thrown
// bottles. It has no terminal, audio or wall-clock dependencies.
package sim

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pollo-run/internal/config"
	"github.com/vovakirdan/pollo-run/internal/games/pollo/levels"
)

// Input is the intent snapshot for one physics tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Throw bool
}

// TickRate is the fixed number of base ticks per logical second. Movement
// and gravity are tuned per base tick, so it never follows the frame rate.
const TickRate = 60

// Options are the collaborators of a world. Zero values are usable.
type Options struct {
	Logger   *log.Logger
	Notifier Notifier
	Seed     int64
}

// Stats counts notable events of a run.
type Stats struct {
	Stomps             int
	PlayerHits         int
	Throws             int
	BossHits           int
	SplashesCompleted  int
	ProjectilesRemoved int
	EnemiesRemoved     int
	CoinsCollected     int
	BottlesCollected   int
}

// World owns every entity of a run and the scheduler that drives them.
type World struct {
	Level        levels.Level
	Player       *Player
	Enemies      []*Enemy
	Coins        []*Collectible
	Bottles      []*Collectible
	Projectiles  []*Projectile
	CameraX      float64
	BottleAmount Counter
	CoinAmount   int

	Finished   bool
	Won        bool
	FinishedAt time.Duration
	Stats      Stats

	cfg    config.PolloConfig
	sched  *Scheduler
	notify Notifier
	log    *log.Logger
	rng    *rand.Rand
	input  Input

	ending    bool // One-shot latch for finalize
	thrown    bool
	lastThrow time.Duration
}

// NewWorld builds a world from a level. Random spawn ranges and the
// reaction sound gate draw from opts.Seed.
func NewWorld(level levels.Level, cfg config.PolloConfig, opts Options) *World {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}

	w := &World{
		Level:        level,
		cfg:          cfg,
		sched:        NewScheduler(time.Second / TickRate),
		notify:       opts.Notifier,
		log:          opts.Logger,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		BottleAmount: NewCounter(cfg.Throw.StartingBottle, 0, cfg.Throw.MaxBottles),
	}

	w.Player = w.newPlayer()
	for _, p := range level.Place(opts.Seed) {
		w.spawn(p)
	}
	w.follow()

	w.start()
	return w
}

func (w *World) newPlayer() *Player {
	pc := w.cfg.Player
	e := NewEntity(pc.StartX, w.cfg.Physics.GroundY, pc.Width, pc.Height, Hitbox{
		OffsetX: pc.Hitbox.OffsetX,
		OffsetY: pc.Hitbox.OffsetY,
		W:       pc.Hitbox.Width,
		H:       pc.Hitbox.Height,
	})
	e.Body = Body{Accel: w.cfg.Physics.Gravity, Speed: pc.Speed}
	return &Player{
		Entity: e,
		Energy: NewCounter(pc.MaxEnergy, 0, pc.MaxEnergy),
	}
}

func (w *World) spawn(p levels.Placement) {
	switch p.Kind {
	case levels.KindChicken:
		e := chickenShape.at(p.X, p.Y)
		e.Body.Speed = p.Speed
		e.Appearance = AppearWalk
		w.Enemies = append(w.Enemies, &Enemy{Entity: e, Kind: KindChicken})
	case levels.KindSmallChicken:
		e := smallChickenShape.at(p.X, p.Y)
		e.Body.Speed = p.Speed
		e.Appearance = AppearWalk
		w.Enemies = append(w.Enemies, &Enemy{Entity: e, Kind: KindSmallChicken})
	case levels.KindBoss:
		if w.Boss() != nil {
			return
		}
		e := bossShape.at(p.X, p.Y)
		e.Body.Speed = w.cfg.Boss.BaseSpeed
		e.Appearance = AppearWalk
		e.Mirror = true
		w.Enemies = append(w.Enemies, &Enemy{Entity: e, Kind: KindBoss, Boss: NewBoss(w.cfg.Boss)})
	case levels.KindCoin:
		w.Coins = append(w.Coins, &Collectible{Entity: coinShape.at(p.X, p.Y), Kind: ItemCoin})
	case levels.KindBottle:
		w.Bottles = append(w.Bottles, &Collectible{Entity: bottleShape.at(p.X, p.Y), Kind: ItemBottle})
	}
}

// start clears the scheduler and registers every periodic task in the
// order that keeps movement ahead of collision resolution.
func (w *World) start() {
	w.sched.Reset()

	tick := w.sched.Tick()
	t := w.cfg.Timing
	w.sched.Every("player-move", tick, w.movePlayer)
	w.sched.Every("gravity", tick, w.applyGravity)
	w.sched.Every("enemy-move", tick, w.moveEnemies)
	w.sched.Every("boss-move", tick, w.moveBoss)
	w.sched.Every("projectile-flight", config.Ms(w.cfg.Throw.FlightStepMs), w.flyProjectiles)
	w.sched.Every("player-anim", config.Ms(t.PlayerAnimMs), w.animatePlayer)
	w.sched.Every("splash", config.Ms(w.cfg.Throw.SplashFrameMs), w.advanceSplashes)
	w.sched.Every("enemy-ai", config.Ms(t.EnemyAIMs), w.enemyThink)
	w.sched.Every("boss-ai", config.Ms(t.BossAIMs), w.bossThink)
	w.sched.Every("collision", time.Second/60, w.resolveCollisions)

	w.notify.UpdateBar(BarHealth, w.Player.Energy.Percent())
	w.notify.UpdateBar(BarCoins, w.coinPercent())
	w.notify.UpdateBar(BarBottles, w.BottleAmount.Percent())
	if b := w.Boss(); b != nil {
		w.notify.UpdateBar(BarBoss, b.Boss.Health.Percent())
	}
}

// Step applies one input snapshot and advances the world by one base tick.
// A finished or stopped world ignores further steps.
func (w *World) Step(in Input) {
	if w.Finished || w.sched.Stopped() {
		return
	}
	w.input = in
	w.sched.Advance()
}

// Stop cancels every periodic task, e.g. when the run is abandoned.
func (w *World) Stop() {
	w.sched.StopAll()
}

// Now returns the logical time of the world.
func (w *World) Now() time.Duration {
	return w.sched.Now()
}

// Tasks returns the names of the registered periodic tasks in run order.
func (w *World) Tasks() []string {
	return w.sched.Tasks()
}

// Config returns the tuning the world was built with.
func (w *World) Config() config.PolloConfig {
	return w.cfg
}

// Boss returns the first boss enemy, or nil when the level has none.
func (w *World) Boss() *Enemy {
	for _, e := range w.Enemies {
		if e.Kind == KindBoss {
			return e
		}
	}
	return nil
}

func (w *World) indexOfEnemy(target *Enemy) int {
	for i, e := range w.Enemies {
		if e == target {
			return i
		}
	}
	return -1
}

func (w *World) coinPercent() int {
	return CoinPercent(w.CoinAmount, w.cfg.Collecting.CoinsPerStep, w.cfg.Collecting.CoinSteps)
}

// follow keeps the player at a fixed screen offset.
func (w *World) follow() {
	w.CameraX = -w.Player.X + w.cfg.Camera.PlayerOffset
}

// OnScreen reports whether an entity overlaps the current viewport.
func (w *World) OnScreen(e *Entity) bool {
	left := e.X + w.CameraX
	return left+e.W > 0 && left < w.cfg.Camera.ViewportWidth
}

func (w *World) movePlayer() {
	p := w.Player
	if !p.Alive() {
		return
	}

	if w.input.Right && p.X < w.Level.EndX {
		p.MoveRight()
	}
	if w.input.Left && p.X > 0 {
		p.MoveLeft()
	}
	p.X = math.Max(0, math.Min(p.X, w.Level.EndX))

	if w.input.Jump && Jump(&p.Entity, w.cfg.Physics.JumpImpulse, w.cfg.Physics.GroundY) {
		w.notify.PlaySound(SoundJump)
	}
	w.follow()
}

func (w *World) applyGravity() {
	ApplyGravity(&w.Player.Entity, w.cfg.Physics.GroundY)
	for _, p := range w.Projectiles {
		if p.Flying() {
			ApplyGravity(&p.Entity, w.cfg.Physics.GroundY)
		}
	}
}

func (w *World) moveEnemies() {
	for _, e := range w.Enemies {
		switch e.Kind {
		case KindChicken, KindSmallChicken:
			if e.Alive() {
				e.MoveLeft()
			}
		case KindBoss:
			// Moved by its own task
		}
	}
}

func (w *World) moveBoss() {
	e := w.Boss()
	if e == nil || e.Boss.Frozen() {
		return
	}
	b := e.Boss
	e.Body.Speed = b.Speed()

	if !b.AlertPlayed {
		e.MoveLeft()
	} else {
		target := w.Player.Bounds().CenterX()
		center := e.Bounds().CenterX()
		switch {
		case target < center-e.Body.Speed:
			e.MoveLeft()
		case target > center+e.Body.Speed:
			e.MoveRight()
		}
	}
	e.X = math.Max(0, math.Min(e.X, w.Level.EndX))
}

func (w *World) flyProjectiles() {
	for _, p := range w.Projectiles {
		if p.Flying() {
			p.X += p.Dir * w.cfg.Throw.ForwardSpeed
		}
	}
}

func (w *World) animatePlayer() {
	p := w.Player
	p.frame++
	now := w.sched.Now()

	switch {
	case !p.Alive():
		p.Appearance = AppearDead
	case p.Hurting(now, config.Ms(w.cfg.Combat.HurtWindowMs)):
		p.Appearance = AppearHurt
	case Airborne(&p.Entity, w.cfg.Physics.GroundY):
		p.Appearance = AppearJump
	case w.input.Left || w.input.Right:
		p.Appearance = AppearWalk
	default:
		p.Appearance = AppearIdle
	}
}

func (w *World) advanceSplashes() {
	for _, p := range w.Projectiles {
		if p.Flying() {
			p.Frame = (p.Frame + 1) % 4
			continue
		}
		if p.advanceSplash(w.cfg.Throw.SplashFrames) {
			w.Stats.SplashesCompleted++
		}
	}
}

func (w *World) enemyThink() {
	now := w.sched.Now()
	interval := config.Ms(w.cfg.Reaction.MinIntervalMs)

	for _, e := range w.Enemies {
		switch e.Kind {
		case KindChicken, KindSmallChicken:
			if !e.Alive() {
				continue
			}
			e.frame++
			if e.reactionDue(now, interval, w.OnScreen(&e.Entity), w.rng.Float64(), w.cfg.Reaction.Chance) {
				w.notify.PlaySound(SoundReaction)
			}
		case KindBoss:
		}
	}
}

func (w *World) bossThink() {
	e := w.Boss()
	if e == nil {
		return
	}
	b := e.Boss
	prev := b.State
	dist := math.Abs(w.Player.X - e.X)
	next := b.Next(dist, w.cfg.Boss)

	switch {
	case next == BossEnragedIntro && !b.EnragedIntroPlaying:
		w.beginEnrage(e)
	case next == BossAlert && !b.AlertPlaying:
		w.beginAlert(e)
	}

	b.State = next
	e.Appearance = b.appearance()
	if prev != next {
		w.log.Debug("boss state", "from", prev, "to", next, "dist", dist, "health", b.Health.Value())
	}
}

func (w *World) beginAlert(e *Enemy) {
	b := e.Boss
	b.AlertPlayed = true
	b.AlertPlaying = true
	w.notify.PlaySound(SoundBossAlert)

	w.sched.After(config.Ms(w.cfg.Boss.AlertMs), func() {
		if w.Finished || w.indexOfEnemy(e) < 0 {
			return
		}
		b.AlertPlaying = false
	})
}

func (w *World) beginEnrage(e *Enemy) {
	b := e.Boss
	b.EnragedIntroPlaying = true
	b.AlertPlayed = true
	b.AlertPlaying = false
	w.notify.PlaySound(SoundBossEnrage)

	w.sched.After(config.Ms(w.cfg.Boss.EnrageIntroMs), func() {
		if w.Finished || w.indexOfEnemy(e) < 0 || b.State == BossDead {
			return
		}
		b.EnragedIntroPlaying = false
		b.Enraged = true
	})
}

// endGame latches the outcome and schedules finalization. Only the first
// call has any effect.
func (w *World) endGame(won bool) {
	if w.ending || w.Finished {
		return
	}
	w.ending = true
	w.log.Info("run ending", "won", won, "at", w.sched.Now())

	w.sched.After(config.Ms(w.cfg.Timing.FinalizeDelayMs), func() {
		w.finalize(won)
	})
}

// finalize freezes the simulation and reports the result. Idempotent.
func (w *World) finalize(won bool) {
	if w.Finished {
		return
	}
	w.sched.StopAll()
	w.Finished = true
	w.Won = won
	w.FinishedAt = w.sched.Now()

	result := ResultLost
	sound := SoundLose
	if won {
		result = ResultWon
		sound = SoundWin
	}
	w.notify.PlaySound(sound)
	w.notify.ShowResult(result)
	w.log.Info("run finished", "result", result, "at", w.FinishedAt,
		"coins", w.CoinAmount, "stomps", w.Stats.Stomps, "boss_hits", w.Stats.BossHits)
}

// Ending reports whether a win or loss has been latched.
func (w *World) Ending() bool {
	return w.ending
}
