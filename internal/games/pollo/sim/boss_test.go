package sim

import (
	"testing"

	"github.com/vovakirdan/pollo-run/internal/config"
	"github.com/vovakirdan/pollo-run/internal/games/pollo/levels"
)

func TestBossNextPriority(t *testing.T) {
	cfg := config.DefaultPolloConfig().Boss

	tests := []struct {
		name     string
		setup    func(b *Boss)
		dist     float64
		expected BossState
	}{
		{
			name:     "far away walks",
			setup:    func(b *Boss) {},
			dist:     1000,
			expected: BossWalking,
		},
		{
			name:     "first sighting alerts",
			setup:    func(b *Boss) {},
			dist:     350,
			expected: BossAlert,
		},
		{
			name:     "alert plays only once",
			setup:    func(b *Boss) { b.AlertPlayed = true },
			dist:     350,
			expected: BossWalking,
		},
		{
			name:     "attack range",
			setup:    func(b *Boss) { b.AlertPlayed = true },
			dist:     150,
			expected: BossAttack,
		},
		{
			name:     "alert playing beats distance",
			setup:    func(b *Boss) { b.AlertPlayed, b.AlertPlaying = true, true },
			dist:     50,
			expected: BossAlert,
		},
		{
			name:     "enrage threshold beats alert",
			setup:    func(b *Boss) { b.AlertPlaying, b.HitsTaken = true, cfg.EnrageHits },
			dist:     50,
			expected: BossEnragedIntro,
		},
		{
			name:     "enraged chases",
			setup:    func(b *Boss) { b.Enraged, b.HitsTaken = true, cfg.EnrageHits },
			dist:     150,
			expected: BossEnragedChase,
		},
		{
			name: "dead beats everything",
			setup: func(b *Boss) {
				b.Health.Set(0)
				b.Enraged, b.EnragedIntroPlaying, b.AlertPlaying = true, true, true
			},
			dist:     10,
			expected: BossDead,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoss(cfg)
			tc.setup(b)
			if got := b.Next(tc.dist, cfg); got != tc.expected {
				t.Errorf("Next(%v) = %v, expected %v", tc.dist, got, tc.expected)
			}
		})
	}
}

func TestBossTakeDamageFloorsAtZero(t *testing.T) {
	b := NewBoss(config.DefaultPolloConfig().Boss)

	killed := 0
	for i := 0; i < 10; i++ {
		if b.TakeDamage(2) {
			killed++
		}
	}
	if b.Health.Value() != 0 {
		t.Errorf("health = %d, expected 0", b.Health.Value())
	}
	if killed != 1 {
		t.Errorf("TakeDamage reported a kill %d times, expected 1", killed)
	}
	if b.HitsTaken != 3 {
		t.Errorf("HitsTaken = %d, expected 3 (dead boss ignores hits)", b.HitsTaken)
	}
}

func TestBossAlertFreezesThenChases(t *testing.T) {
	w, rec := newTestWorld(t, spawnAt(levels.KindBoss, 450, 60))
	boss := w.Boss()

	stepN(w, 13, Input{})
	if boss.Boss.State != BossAlert {
		t.Fatalf("state = %v, expected alert", boss.Boss.State)
	}
	frozenX := boss.X

	stepN(w, 87, Input{})
	if boss.X != frozenX {
		t.Errorf("boss moved during alert: %v -> %v", frozenX, boss.X)
	}

	stepN(w, 40, Input{})
	if boss.Boss.State == BossAlert {
		t.Error("alert should end after its duration")
	}
	if boss.X >= frozenX {
		t.Errorf("boss should chase the player after the alert, x=%v", boss.X)
	}
	if rec.Count(SoundBossAlert) != 1 {
		t.Errorf("alert sound played %d times, expected 1", rec.Count(SoundBossAlert))
	}
}

func TestBossEnrage(t *testing.T) {
	w, rec := newTestWorld(t, spawnAt(levels.KindBoss, 2500, 60))
	b := w.Boss().Boss
	for i := 0; i < w.cfg.Boss.EnrageHits; i++ {
		b.TakeDamage(w.cfg.Boss.ProjectileDamage)
	}

	stepN(w, 13, Input{})
	if b.State != BossEnragedIntro {
		t.Fatalf("state = %v, expected enraged intro", b.State)
	}

	stepN(w, 67, Input{})
	if !b.Enraged || b.State != BossEnragedChase {
		t.Errorf("Enraged=%v state=%v, expected enraged chase", b.Enraged, b.State)
	}
	if b.Speed() != w.cfg.Boss.EnragedSpeed {
		t.Errorf("Speed() = %v, expected %v", b.Speed(), w.cfg.Boss.EnragedSpeed)
	}

	stepN(w, 60, Input{})
	if rec.Count(SoundBossEnrage) != 1 {
		t.Errorf("enrage sound played %d times, expected 1", rec.Count(SoundBossEnrage))
	}
}

func TestBossStaysDead(t *testing.T) {
	w, _ := newTestWorld(t, spawnAt(levels.KindBoss, 300, 60))
	boss := w.Boss()
	boss.Boss.TakeDamage(boss.Boss.Health.Value())
	boss.Boss.AlertPlaying = true
	boss.Boss.Enraged = true
	x := boss.X

	for i := 0; i < 80; i++ {
		w.Step(Input{Right: true})
		if boss.Boss.State != BossDead {
			t.Fatalf("tick %d: state = %v, expected dead", i, boss.Boss.State)
		}
	}
	if boss.X != x {
		t.Errorf("dead boss moved from %v to %v", x, boss.X)
	}
	if w.Player.Energy.Value() != 100 {
		t.Errorf("dead boss dealt contact damage, energy = %d", w.Player.Energy.Value())
	}
}

func TestBossFrozenFollowsPhaseFlags(t *testing.T) {
	cfg := config.DefaultPolloConfig().Boss
	tests := []struct {
		name     string
		setup    func(b *Boss)
		expected bool
	}{
		{"walking", func(b *Boss) {}, false},
		{"alert playing", func(b *Boss) { b.AlertPlaying = true }, true},
		{"enrage intro playing", func(b *Boss) { b.EnragedIntroPlaying = true }, true},
		{"dead", func(b *Boss) { b.Health.Set(0) }, true},
		{"stale alert state", func(b *Boss) { b.State = BossAlert }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoss(cfg)
			tc.setup(b)
			if got := b.Frozen(); got != tc.expected {
				t.Errorf("Frozen() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBossMovesWhenAlertTimerEnds(t *testing.T) {
	w, _ := newTestWorld(t, spawnAt(levels.KindBoss, 450, 60))
	boss := w.Boss()

	stepN(w, 13, Input{})
	if !boss.Boss.AlertPlaying {
		t.Fatal("alert should be playing")
	}
	frozenX := boss.X

	for i := 0; i < 200 && boss.Boss.AlertPlaying; i++ {
		w.Step(Input{})
	}
	if boss.Boss.AlertPlaying {
		t.Fatal("alert never ended")
	}
	// The boss-ai task has not re-evaluated the state yet
	if boss.Boss.State != BossAlert {
		t.Fatalf("state = %v, expected the alert state to still be latched", boss.Boss.State)
	}
	if boss.X == frozenX {
		t.Error("boss should move on the tick its alert timer ends")
	}
}
