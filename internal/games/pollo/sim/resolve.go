package sim

import (
	"time"

	"github.com/vovakirdan/pollo-run/internal/config"
)

// resolveCollisions is the only task that applies cross-entity effects.
// Order: enemy contact, pickups, projectile hits, splash removal, throw.
func (w *World) resolveCollisions() {
	w.checkEnemyContacts()
	w.collectCoins()
	w.collectBottles()
	w.checkProjectileHits()
	w.removeCompletedSplashes()
	w.checkThrow()
}

func (w *World) checkEnemyContacts() {
	now := w.sched.Now()
	for _, e := range w.Enemies {
		if !w.Player.Alive() {
			return
		}
		if !e.Alive() || !Colliding(w.Player, e) {
			continue
		}
		switch e.Kind {
		case KindChicken, KindSmallChicken:
			w.resolveEnemyContact(e, now)
		case KindBoss:
			w.resolveBossContact(e, now)
		}
	}
}

// resolveEnemyContact applies one player contact with a ground enemy.
func (w *World) resolveEnemyContact(e *Enemy, now time.Duration) {
	p := w.Player
	cc := w.cfg.Combat

	if IsStomp(p, e, cc.StompTolerance) {
		if e.Die(now) {
			w.Stats.Stomps++
			w.notify.PlaySound(SoundStomp)
			w.log.Debug("stomp", "enemy", e.Kind, "x", e.X, "at", now)
			w.scheduleRemoval(e)
		}
		p.Body.VY = cc.StompRebound
		p.GraceUntil = now + config.Ms(cc.StompGraceMs)
		return
	}

	if p.InGrace(now) || p.Hurting(now, config.Ms(cc.HurtWindowMs)) {
		return
	}
	w.damagePlayer(cc.EnemyDamage, now)
}

// resolveBossContact applies one player contact with the boss. The boss
// cannot be stomped.
func (w *World) resolveBossContact(e *Enemy, now time.Duration) {
	p := w.Player
	cc := w.cfg.Combat
	if !e.Alive() || p.InGrace(now) || p.Hurting(now, config.Ms(cc.HurtWindowMs)) {
		return
	}
	w.damagePlayer(cc.BossDamage, now)
}

func (w *World) damagePlayer(damage int, now time.Duration) {
	p := w.Player
	p.Hit(damage, now)
	w.Stats.PlayerHits++
	w.notify.PlaySound(SoundHurt)
	w.notify.UpdateBar(BarHealth, p.Energy.Percent())

	if !p.Alive() {
		p.Appearance = AppearDead
		w.endGame(false)
	}
}

// scheduleRemoval drops a dead ground enemy once its death pose has shown.
func (w *World) scheduleRemoval(e *Enemy) {
	w.sched.After(config.Ms(w.cfg.Combat.EnemyRemovalDelay), func() {
		if w.Finished {
			return
		}
		i := w.indexOfEnemy(e)
		if i < 0 {
			return
		}
		w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
		w.Stats.EnemiesRemoved++
	})
}

func (w *World) collectCoins() {
	var toRemove []int
	for i, c := range w.Coins {
		if Colliding(w.Player, c) {
			toRemove = append(toRemove, i)
			w.CoinAmount++
			w.Stats.CoinsCollected++
			w.notify.PlaySound(SoundCoin)
			w.notify.UpdateBar(BarCoins, w.coinPercent())
		}
	}
	w.Coins = removeIndices(w.Coins, toRemove)
}

func (w *World) collectBottles() {
	var toRemove []int
	for i, b := range w.Bottles {
		if w.BottleAmount.Full() {
			break
		}
		if Colliding(w.Player, b) {
			toRemove = append(toRemove, i)
			w.BottleAmount.Add(1)
			w.Stats.BottlesCollected++
			w.notify.PlaySound(SoundBottle)
			w.notify.UpdateBar(BarBottles, w.BottleAmount.Percent())
		}
	}
	w.Bottles = removeIndices(w.Bottles, toRemove)
}

// checkProjectileHits impacts flying bottles on the living boss or the floor.
func (w *World) checkProjectileHits() {
	boss := w.Boss()
	for _, p := range w.Projectiles {
		if !p.Flying() {
			continue
		}
		if boss != nil && boss.Alive() && Colliding(p, boss) {
			w.hitBoss(boss, p)
			continue
		}
		if p.Bounds().Bottom() >= w.cfg.Physics.FloorY {
			p.Impact()
			w.notify.PlaySound(SoundSplash)
		}
	}
}

// hitBoss applies one projectile hit. The projectile impacts first so a
// second pass cannot count it again.
func (w *World) hitBoss(e *Enemy, p *Projectile) {
	if !p.Impact() {
		return
	}
	w.notify.PlaySound(SoundSplash)

	b := e.Boss
	killed := b.TakeDamage(w.cfg.Boss.ProjectileDamage)
	w.Stats.BossHits++
	w.notify.UpdateBar(BarBoss, b.Health.Percent())
	w.log.Debug("boss hit", "health", b.Health.Value(), "hits", b.HitsTaken)

	if killed {
		e.Body.Speed = 0
		e.Appearance = AppearDead
		w.notify.PlaySound(SoundBossDead)
		w.endGame(true)
		return
	}
	w.notify.PlaySound(SoundBossHurt)
}

// removeCompletedSplashes drops every projectile whose splash finished.
func (w *World) removeCompletedSplashes() {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.SplashComplete {
			w.Stats.ProjectilesRemoved++
			continue
		}
		kept = append(kept, p)
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

// checkThrow launches a bottle when intent, cooldown and ammo all allow it.
func (w *World) checkThrow() {
	now := w.sched.Now()
	if !w.input.Throw || !w.Player.Alive() {
		return
	}
	if w.thrown && now-w.lastThrow < config.Ms(w.cfg.Throw.CooldownMs) {
		return
	}
	if w.BottleAmount.Empty() {
		return
	}

	w.Projectiles = append(w.Projectiles, w.newProjectile())
	w.BottleAmount.Sub(1)
	w.thrown = true
	w.lastThrow = now
	w.Stats.Throws++
	w.notify.PlaySound(SoundThrow)
	w.notify.UpdateBar(BarBottles, w.BottleAmount.Percent())
	w.log.Debug("throw", "bottles", w.BottleAmount.Value(), "at", now)
}

func (w *World) newProjectile() *Projectile {
	tc := w.cfg.Throw
	pl := w.Player

	dir := 1.0
	x := pl.X + tc.SpawnOffsetX
	if pl.Mirror {
		dir = -1
		x = pl.X + pl.W - tc.SpawnOffsetX - tc.Width
	}

	e := NewEntity(x, pl.Y+tc.SpawnOffsetY, tc.Width, tc.Height, Hitbox{})
	e.Body = Body{VY: tc.LaunchVY, Accel: w.cfg.Physics.Gravity, Speed: tc.ForwardSpeed, Ballistic: true}
	e.Appearance = AppearRotate
	e.Mirror = pl.Mirror
	return &Projectile{Entity: e, Dir: dir}
}

// removeIndices deletes the given ascending indices from s.
func removeIndices[T any](s []T, indices []int) []T {
	for i := len(indices) - 1; i >= 0; i-- {
		idx := indices[i]
		s = append(s[:idx], s[idx+1:]...)
	}
	return s
}
