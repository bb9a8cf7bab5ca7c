package pollo

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pollo-run/internal/config"
	"github.com/vovakirdan/pollo-run/internal/core"
	"github.com/vovakirdan/pollo-run/internal/registry"
)

func newTestGame(t *testing.T, id string) registry.Game {
	t.Helper()
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", id, err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 60, Seed: 5})
	return g
}

func TestRegisteredEntries(t *testing.T) {
	for _, id := range []string{"pollo", "pollo-boss"} {
		if !registry.Exists(id) {
			t.Errorf("game %q should be registered", id)
		}
	}
	g := newTestGame(t, "pollo")
	if !strings.HasPrefix(g.Title(), "Pollo Run") {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestStepMovesPlayer(t *testing.T) {
	g := newTestGame(t, "pollo").(*Game)
	start := g.World().Player.X

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		g.Step(in)
	}

	if g.World().Player.X <= start {
		t.Errorf("player should move right: %v -> %v", start, g.World().Player.X)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(t, "pollo").(*Game)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	now := g.World().Now()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.World().Now() != now {
		t.Error("paused game should not advance the world")
	}

	g.Step(pause)
	g.Step(core.NewInputFrame())
	if g.World().Now() == now {
		t.Error("unpaused game should advance")
	}
}

func TestRestartRebuildsWorld(t *testing.T) {
	g := newTestGame(t, "pollo-boss").(*Game)
	old := g.World()
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.World() == old {
		t.Error("restart should build a new world")
	}
	if g.World().Now() != 0 {
		t.Errorf("new world clock = %v, expected 0", g.World().Now())
	}
	if len(old.Tasks()) != 0 {
		t.Error("old world tasks should be stopped")
	}
}

func TestRenderDrawsHUDAndPlayer(t *testing.T) {
	g := newTestGame(t, "pollo")
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "♥ 100%") {
		t.Errorf("HUD row = %q, expected health", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "BOSS") {
		t.Errorf("HUD row = %q, expected a boss bar", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "█") {
		t.Error("expected the player body on screen")
	}
	if !strings.Contains(screen.String(), string(GroundChar)) {
		t.Error("expected the ground line")
	}
}

func TestBar(t *testing.T) {
	tests := map[int]string{
		0:   "[··········]",
		50:  "[■■■■■·····]",
		100: "[■■■■■■■■■■]",
		150: "[■■■■■■■■■■]",
	}
	for pct, expected := range tests {
		if got := bar(pct, 10); got != expected {
			t.Errorf("bar(%d) = %q, expected %q", pct, got, expected)
		}
	}
}

func TestWalkDistanceIgnoresFrameRate(t *testing.T) {
	walk := func(fps int) (float64, time.Duration) {
		g := New("pollo-boss", "boss-arena")
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: fps, Seed: 5})
		start := g.World().Player.X

		right := core.NewInputFrame()
		right.Set(core.ActionRight)
		for i := 0; i < fps; i++ {
			g.Step(right)
		}
		return g.World().Player.X - start, g.World().Now()
	}

	baseDX, baseNow := walk(60)
	if baseDX <= 0 {
		t.Fatalf("player should walk right at 60 fps, dx = %v", baseDX)
	}
	for _, fps := range []int{30, 120} {
		dx, now := walk(fps)
		if dx != baseDX {
			t.Errorf("dx over 1s at %d fps = %v, expected %v", fps, dx, baseDX)
		}
		if now != baseNow {
			t.Errorf("logical time at %d fps = %v, expected %v", fps, now, baseNow)
		}
	}
}

func TestJumpArcIgnoresFrameRate(t *testing.T) {
	// Player height at 1/3 s and 1/2 s after a jump pressed on the first frame
	arc := func(fps int) [2]float64 {
		g := New("pollo-boss", "boss-arena")
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: fps, Seed: 5})

		jump := core.NewInputFrame()
		jump.Set(core.ActionJump)
		g.Step(jump)

		var heights [2]float64
		for frame := 2; frame <= fps/2; frame++ {
			g.Step(core.NewInputFrame())
			switch frame {
			case fps / 3:
				heights[0] = g.World().Player.Y
			case fps / 2:
				heights[1] = g.World().Player.Y
			}
		}
		return heights
	}

	base := arc(60)
	groundY := config.DefaultPolloConfig().Physics.GroundY
	if base[0] >= groundY {
		t.Fatalf("player should be airborne 1/3 s after jumping, y = %v", base[0])
	}
	for _, fps := range []int{30, 120} {
		if got := arc(fps); got != base {
			t.Errorf("jump heights at %d fps = %v, expected %v", fps, got, base)
		}
	}
}
