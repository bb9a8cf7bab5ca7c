// Package config provides YAML-based game configuration loading and
// difficulty presets for Pollo Run.
package config

import "time"

// PolloConfig contains all tuning for the side-scroller simulation.
type PolloConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Combat     CombatConfig     `yaml:"combat"`
	Throw      ThrowConfig      `yaml:"throw"`
	Boss       BossConfig       `yaml:"boss"`
	Timing     TimingConfig     `yaml:"timing"`
	Reaction   ReactionConfig   `yaml:"reaction"`
	Camera     CameraConfig     `yaml:"camera"`
	Collecting CollectingConfig `yaml:"collecting"`
}

// PhysicsConfig defines gravity integration parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Subtracted from vy every physics tick
	JumpImpulse float64 `yaml:"jump_impulse"` // vy set on jump (positive = up)
	GroundY     float64 `yaml:"ground_y"`     // Entities with y < ground_y are airborne
	FloorY      float64 `yaml:"floor_y"`      // Projectiles break when their bottom reaches this line
}

// PlayerConfig defines the player character.
type PlayerConfig struct {
	StartX    float64   `yaml:"start_x"`
	Width     float64   `yaml:"width"`
	Height    float64   `yaml:"height"`
	Hitbox    HitboxDef `yaml:"hitbox"`
	Speed     float64   `yaml:"speed"`
	MaxEnergy int       `yaml:"max_energy"`
}

// HitboxDef is a hitbox relative to an entity's top-left corner.
// A zero width or height means the full bounding box.
type HitboxDef struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// CombatConfig defines contact damage and protection windows.
type CombatConfig struct {
	EnemyDamage       int     `yaml:"enemy_damage"`
	BossDamage        int     `yaml:"boss_damage"`
	HurtWindowMs      int     `yaml:"hurt_window_ms"`
	StompGraceMs      int     `yaml:"stomp_grace_ms"`
	StompTolerance    float64 `yaml:"stomp_tolerance"`
	StompRebound      float64 `yaml:"stomp_rebound"`
	EnemyRemovalDelay int     `yaml:"enemy_removal_delay_ms"`
}

// ThrowConfig defines bottle projectiles.
type ThrowConfig struct {
	CooldownMs     int     `yaml:"cooldown_ms"`
	LaunchVY       float64 `yaml:"launch_vy"`
	ForwardSpeed   float64 `yaml:"forward_speed"` // Pixels per flight step
	FlightStepMs   int     `yaml:"flight_step_ms"`
	SplashFrames   int     `yaml:"splash_frames"`
	SplashFrameMs  int     `yaml:"splash_frame_ms"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SpawnOffsetX   float64 `yaml:"spawn_offset_x"`
	SpawnOffsetY   float64 `yaml:"spawn_offset_y"`
	MaxBottles     int     `yaml:"max_bottles"`
	StartingBottle int     `yaml:"starting_bottles"`
}

// BossConfig defines the multi-phase boss.
type BossConfig struct {
	MaxHealth        int     `yaml:"max_health"`
	ProjectileDamage int     `yaml:"projectile_damage"`
	AlertRange       float64 `yaml:"alert_range"`
	AttackRange      float64 `yaml:"attack_range"`
	AlertMs          int     `yaml:"alert_ms"`
	EnrageHits       int     `yaml:"enrage_hits"`
	EnrageIntroMs    int     `yaml:"enrage_intro_ms"`
	BaseSpeed        float64 `yaml:"base_speed"`
	EnragedSpeed     float64 `yaml:"enraged_speed"`
}

// TimingConfig defines task periods and the finalize grace delay.
type TimingConfig struct {
	PlayerAnimMs    int `yaml:"player_anim_ms"`
	EnemyAIMs       int `yaml:"enemy_ai_ms"`
	BossAIMs        int `yaml:"boss_ai_ms"`
	FinalizeDelayMs int `yaml:"finalize_delay_ms"`
}

// ReactionConfig gates the ambient enemy reaction sound.
type ReactionConfig struct {
	MinIntervalMs int     `yaml:"min_interval_ms"`
	Chance        float64 `yaml:"chance"`
}

// CameraConfig defines the horizontal viewport.
type CameraConfig struct {
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	PlayerOffset   float64 `yaml:"player_offset"` // Screen x the player is kept at
}

// CollectingConfig defines status bar bucketing.
type CollectingConfig struct {
	CoinsPerStep int `yaml:"coins_per_step"`
	CoinSteps    int `yaml:"coin_steps"`
}

// Ms converts a millisecond config value to a duration.
func Ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
