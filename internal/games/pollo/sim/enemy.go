package sim

import "time"

// EnemyKind tags the enemy variant. Switches over it list every kind.
type EnemyKind int

const (
	KindChicken EnemyKind = iota
	KindSmallChicken
	KindBoss
)

func (k EnemyKind) String() string {
	switch k {
	case KindChicken:
		return "chicken"
	case KindSmallChicken:
		return "small-chicken"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Enemy is a ground enemy or the boss. Boss is set only for KindBoss.
type Enemy struct {
	Entity
	Kind    EnemyKind
	Dead    bool
	DeathAt time.Duration
	Boss    *Boss

	lastReaction time.Duration
	reacted      bool
	frame        int
}

// Alive reports whether the enemy can still move and deal damage.
func (e *Enemy) Alive() bool {
	switch e.Kind {
	case KindBoss:
		return e.Boss != nil && e.Boss.Health.Value() > 0
	case KindChicken, KindSmallChicken:
		return !e.Dead
	default:
		return false
	}
}

// Die marks a ground enemy dead. Only the first call has an effect and
// reports true.
func (e *Enemy) Die(now time.Duration) bool {
	if e.Dead {
		return false
	}
	e.Dead = true
	e.DeathAt = now
	e.Body.Speed = 0
	e.Appearance = AppearDead
	return true
}

// reactionDue applies the reaction sound gate: on screen, at least
// interval since the previous reaction, and a roll below chance.
func (e *Enemy) reactionDue(now, interval time.Duration, onScreen bool, roll, chance float64) bool {
	if !onScreen || !e.Alive() {
		return false
	}
	if e.reacted && now-e.lastReaction < interval {
		return false
	}
	if roll >= chance {
		return false
	}
	e.reacted = true
	e.lastReaction = now
	return true
}
