package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultPolloConfig() {
		t.Errorf("embedded YAML differs from DefaultPolloConfig():\n got %+v\nwant %+v", cfg, DefaultPolloConfig())
	}
}

func TestLoadPolloCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("combat:\n  enemy_damage: 10\nboss:\n  enrage_hits: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadPollo(path)
	if err != nil {
		t.Fatalf("LoadPollo() failed: %v", err)
	}
	if cfg.Combat.EnemyDamage != 10 {
		t.Errorf("EnemyDamage = %d, expected 10", cfg.Combat.EnemyDamage)
	}
	if cfg.Boss.EnrageHits != 2 {
		t.Errorf("EnrageHits = %d, expected 2", cfg.Boss.EnrageHits)
	}
	// Keys not mentioned keep their defaults
	if cfg.Boss.MaxHealth != 5 {
		t.Errorf("MaxHealth = %d, expected default 5", cfg.Boss.MaxHealth)
	}
}

func TestLoadPolloMissingCustomPath(t *testing.T) {
	if _, err := LoadPollo(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPollo() with a missing custom path should fail")
	}
}

func TestLoadPolloInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("combat: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadPollo(path); err == nil {
		t.Error("LoadPollo() with invalid YAML should fail")
	}
}

func TestApplyPolloPreset(t *testing.T) {
	easy := DefaultPolloConfig()
	ApplyPolloPreset(&easy, DifficultyEasy)
	if easy.Combat.EnemyDamage >= DefaultPolloConfig().Combat.EnemyDamage {
		t.Errorf("easy preset should lower enemy damage, got %d", easy.Combat.EnemyDamage)
	}
	if easy.Throw.StartingBottle != 2 {
		t.Errorf("easy preset should grant 2 starting bottles, got %d", easy.Throw.StartingBottle)
	}

	hard := DefaultPolloConfig()
	ApplyPolloPreset(&hard, DifficultyHard)
	if hard.Boss.MaxHealth != 8 {
		t.Errorf("hard preset boss health = %d, expected 8", hard.Boss.MaxHealth)
	}
	if hard.Boss.EnrageHits != 2 {
		t.Errorf("hard preset enrage hits = %d, expected 2", hard.Boss.EnrageHits)
	}

	normal := DefaultPolloConfig()
	ApplyPolloPreset(&normal, DifficultyNormal)
	if normal != DefaultPolloConfig() {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"hard":   DifficultyHard,
		"normal": DifficultyNormal,
		"":       "",
		"insane": "",
	}
	for in, expected := range tests {
		if got := ParsePreset(in); got != expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", in, got, expected)
		}
	}
}
