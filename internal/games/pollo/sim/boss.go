package sim

import "github.com/vovakirdan/pollo-run/internal/config"

// BossState is a state of the boss behaviour machine.
type BossState int

const (
	BossWalking BossState = iota
	BossAlert
	BossAttack
	BossEnragedIntro
	BossEnragedChase
	BossDead
)

func (s BossState) String() string {
	switch s {
	case BossWalking:
		return "walking"
	case BossAlert:
		return "alert"
	case BossAttack:
		return "attack"
	case BossEnragedIntro:
		return "enraged-intro"
	case BossEnragedChase:
		return "enraged-chase"
	case BossDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Boss holds the boss-only data of an enemy.
type Boss struct {
	Health              Counter
	HitsTaken           int
	AlertPlayed         bool // Latched on first alert; unlocks chasing
	AlertPlaying        bool
	Enraged             bool
	EnragedIntroPlaying bool
	BaseSpeed           float64
	EnragedSpeed        float64
	State               BossState
}

// NewBoss creates boss data from the tuning.
func NewBoss(cfg config.BossConfig) *Boss {
	return &Boss{
		Health:       NewCounter(cfg.MaxHealth, 0, cfg.MaxHealth),
		BaseSpeed:    cfg.BaseSpeed,
		EnragedSpeed: cfg.EnragedSpeed,
		State:        BossWalking,
	}
}

// Next returns the state the boss should be in, given the horizontal
// distance to the player. Priority: Dead, EnragedIntro, Alert while
// playing, then distance.
func (b *Boss) Next(dist float64, cfg config.BossConfig) BossState {
	switch {
	case b.Health.Value() == 0:
		return BossDead
	case b.EnragedIntroPlaying:
		return BossEnragedIntro
	case !b.Enraged && b.HitsTaken >= cfg.EnrageHits:
		return BossEnragedIntro
	case b.AlertPlaying:
		return BossAlert
	case b.Enraged:
		return BossEnragedChase
	case !b.AlertPlayed && dist <= cfg.AlertRange:
		return BossAlert
	case dist <= cfg.AttackRange:
		return BossAttack
	default:
		return BossWalking
	}
}

// Frozen reports whether the boss must stand still. It reads the phase
// flags, not State, so a freeze ends exactly when its timer does.
func (b *Boss) Frozen() bool {
	return b.AlertPlaying || b.EnragedIntroPlaying || b.Health.Value() == 0
}

// Speed returns the movement speed for the current phase.
func (b *Boss) Speed() float64 {
	if b.Enraged {
		return b.EnragedSpeed
	}
	return b.BaseSpeed
}

// TakeDamage lowers health by damage, floored at zero. It reports whether
// this hit killed the boss. A dead boss ignores further damage.
func (b *Boss) TakeDamage(damage int) bool {
	if b.Health.Value() == 0 {
		return false
	}
	b.HitsTaken++
	if b.Health.Sub(damage) == 0 {
		b.State = BossDead
		return true
	}
	return false
}

func (b *Boss) appearance() string {
	switch b.State {
	case BossAlert:
		return AppearAlert
	case BossAttack, BossEnragedChase:
		return AppearAttack
	case BossEnragedIntro:
		return AppearHurt
	case BossDead:
		return AppearDead
	default:
		return AppearWalk
	}
}
