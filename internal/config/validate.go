package config

import "fmt"

// MaxBottleCapacity is the most bottles the player can carry.
const MaxBottleCapacity = 5

// ValidationError names the config key that was rejected and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate rejects tuning the simulation cannot run with: a boss that
// starts dead, a bottle capacity outside 1..5, or a periodic task with
// no period.
func (c PolloConfig) Validate() error {
	periods := []struct {
		field string
		ms    int
	}{
		{"throw.flight_step_ms", c.Throw.FlightStepMs},
		{"throw.splash_frame_ms", c.Throw.SplashFrameMs},
		{"timing.player_anim_ms", c.Timing.PlayerAnimMs},
		{"timing.enemy_ai_ms", c.Timing.EnemyAIMs},
		{"timing.boss_ai_ms", c.Timing.BossAIMs},
	}
	for _, p := range periods {
		if p.ms <= 0 {
			return invalid(p.field, "period must be positive, got %d", p.ms)
		}
	}

	nonNegative := []struct {
		field string
		v     int
	}{
		{"combat.enemy_damage", c.Combat.EnemyDamage},
		{"combat.boss_damage", c.Combat.BossDamage},
		{"combat.hurt_window_ms", c.Combat.HurtWindowMs},
		{"combat.stomp_grace_ms", c.Combat.StompGraceMs},
		{"combat.enemy_removal_delay_ms", c.Combat.EnemyRemovalDelay},
		{"throw.cooldown_ms", c.Throw.CooldownMs},
		{"boss.alert_ms", c.Boss.AlertMs},
		{"boss.enrage_intro_ms", c.Boss.EnrageIntroMs},
		{"timing.finalize_delay_ms", c.Timing.FinalizeDelayMs},
		{"reaction.min_interval_ms", c.Reaction.MinIntervalMs},
	}
	for _, n := range nonNegative {
		if n.v < 0 {
			return invalid(n.field, "must not be negative, got %d", n.v)
		}
	}

	switch {
	case c.Physics.Gravity <= 0:
		return invalid("physics.gravity", "must be positive, got %v", c.Physics.Gravity)
	case c.Physics.FloorY <= c.Physics.GroundY:
		return invalid("physics.floor_y", "must be below ground_y %v, got %v", c.Physics.GroundY, c.Physics.FloorY)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return invalid("player.width", "player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	case c.Player.MaxEnergy < 1:
		return invalid("player.max_energy", "must be at least 1, got %d", c.Player.MaxEnergy)
	case c.Throw.SplashFrames < 1:
		return invalid("throw.splash_frames", "must be at least 1, got %d", c.Throw.SplashFrames)
	case c.Throw.MaxBottles < 1 || c.Throw.MaxBottles > MaxBottleCapacity:
		return invalid("throw.max_bottles", "must be within 1..%d, got %d", MaxBottleCapacity, c.Throw.MaxBottles)
	case c.Throw.StartingBottle < 0 || c.Throw.StartingBottle > c.Throw.MaxBottles:
		return invalid("throw.starting_bottles", "must be within 0..%d, got %d", c.Throw.MaxBottles, c.Throw.StartingBottle)
	case c.Boss.MaxHealth < 1:
		return invalid("boss.max_health", "must be at least 1, got %d", c.Boss.MaxHealth)
	case c.Boss.ProjectileDamage < 1:
		return invalid("boss.projectile_damage", "must be at least 1, got %d", c.Boss.ProjectileDamage)
	case c.Boss.EnrageHits < 1:
		return invalid("boss.enrage_hits", "must be at least 1, got %d", c.Boss.EnrageHits)
	case c.Reaction.Chance < 0 || c.Reaction.Chance > 1:
		return invalid("reaction.chance", "must be within 0..1, got %v", c.Reaction.Chance)
	case c.Camera.ViewportWidth <= 0 || c.Camera.ViewportHeight <= 0:
		return invalid("camera.viewport_width", "viewport must be positive, got %vx%v", c.Camera.ViewportWidth, c.Camera.ViewportHeight)
	case c.Collecting.CoinsPerStep < 1 || c.Collecting.CoinSteps < 1:
		return invalid("collecting.coins_per_step", "coin bar steps must be at least 1, got %d and %d", c.Collecting.CoinsPerStep, c.Collecting.CoinSteps)
	}
	return nil
}
