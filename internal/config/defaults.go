package config

import (
	_ "embed"
)

//go:embed defaults/pollo.yaml
var defaultPolloYAML []byte

// DefaultPolloConfig returns the hardcoded tuning, identical to defaults/pollo.yaml.
// It is the last fallback when the embedded YAML cannot be parsed.
func DefaultPolloConfig() PolloConfig {
	return PolloConfig{
		Physics: PhysicsConfig{
			Gravity:     1.0,
			JumpImpulse: 20,
			GroundY:     160,
			FloorY:      430,
		},
		Player: PlayerConfig{
			StartX: 100,
			Width:  100,
			Height: 250,
			Hitbox: HitboxDef{
				OffsetX: 20,
				OffsetY: 100,
				Width:   60,
				Height:  140,
			},
			Speed:     5,
			MaxEnergy: 100,
		},
		Combat: CombatConfig{
			EnemyDamage:       5,
			BossDamage:        20,
			HurtWindowMs:      500,
			StompGraceMs:      120,
			StompTolerance:    -50,
			StompRebound:      12,
			EnemyRemovalDelay: 500,
		},
		Throw: ThrowConfig{
			CooldownMs:    300,
			LaunchVY:      12,
			ForwardSpeed:  7.5,
			FlightStepMs:  25,
			SplashFrames:  6,
			SplashFrameMs: 100,
			Width:         50,
			Height:        60,
			SpawnOffsetX:  60,
			SpawnOffsetY:  100,
			MaxBottles:    5,
		},
		Boss: BossConfig{
			MaxHealth:        5,
			ProjectileDamage: 1,
			AlertRange:       400,
			AttackRange:      200,
			AlertMs:          1600,
			EnrageHits:       3,
			EnrageIntroMs:    600,
			BaseSpeed:        1.2,
			EnragedSpeed:     4,
		},
		Timing: TimingConfig{
			PlayerAnimMs:    100,
			EnemyAIMs:       200,
			BossAIMs:        200,
			FinalizeDelayMs: 1500,
		},
		Reaction: ReactionConfig{
			MinIntervalMs: 3000,
			Chance:        0.03,
		},
		Camera: CameraConfig{
			ViewportWidth:  720,
			ViewportHeight: 480,
			PlayerOffset:   100,
		},
		Collecting: CollectingConfig{
			CoinsPerStep: 2,
			CoinSteps:    5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPolloYAML
}
