package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPollo loads the game configuration.
// Search order: customPath -> ~/.pollo/configs/pollo.yaml -> ./configs/pollo.yaml -> embedded default
func LoadPollo(customPath string) (PolloConfig, error) {
	// Custom path errors are reported, every other source silently falls through
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PolloConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PolloConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("pollo.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "pollo.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultPolloYAML)
	if err != nil {
		return DefaultPolloConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults so partial files
// only override the keys they mention, then validates the result.
func parse(data []byte) (PolloConfig, error) {
	cfg := DefaultPolloConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PolloConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PolloConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pollo", "configs", filename)
}

// ApplyPolloPreset modifies the config based on a difficulty preset.
// Normal (or an empty preset) leaves the config untouched.
func ApplyPolloPreset(cfg *PolloConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Combat.EnemyDamage = max(1, cfg.Combat.EnemyDamage/2)
		cfg.Combat.BossDamage = max(1, cfg.Combat.BossDamage/2)
		cfg.Throw.StartingBottle = min(cfg.Throw.MaxBottles, cfg.Throw.StartingBottle+2)
		cfg.Boss.EnragedSpeed = cfg.Boss.BaseSpeed * 2
	case DifficultyHard:
		cfg.Combat.EnemyDamage *= 2
		cfg.Combat.BossDamage += cfg.Combat.BossDamage / 2
		cfg.Boss.MaxHealth += 3
		cfg.Boss.EnrageHits = max(1, cfg.Boss.EnrageHits-1)
		cfg.Throw.CooldownMs += 200
	}
}
