package sim

import (
	"testing"

	"github.com/vovakirdan/pollo-run/internal/core"
)

func TestApplyGravityLands(t *testing.T) {
	e := NewEntity(0, 160, 10, 10, Hitbox{})
	e.Body.Accel = 1
	if !Jump(&e, 20, 160) {
		t.Fatal("Jump() from the ground should succeed")
	}
	if Jump(&e, 20, 160) {
		t.Error("Jump() while airborne should fail")
	}

	peak := e.Y
	for i := 0; i < 100; i++ {
		ApplyGravity(&e, 160)
		peak = min(peak, e.Y)
	}

	if e.Y != 160 || e.Body.VY != 0 {
		t.Errorf("after landing y=%v vy=%v, expected 160 and 0", e.Y, e.Body.VY)
	}
	// 20+19+...+1 = 210 pixels of rise
	if peak != 160-210 {
		t.Errorf("peak y = %v, expected %v", peak, 160-210)
	}
}

func TestApplyGravityGroundedNoop(t *testing.T) {
	e := NewEntity(0, 160, 10, 10, Hitbox{})
	e.Body.Accel = 1

	ApplyGravity(&e, 160)
	if e.Y != 160 || e.Body.VY != 0 {
		t.Errorf("grounded entity moved: y=%v vy=%v", e.Y, e.Body.VY)
	}
}

func TestApplyGravityBallistic(t *testing.T) {
	e := NewEntity(0, 300, 10, 10, Hitbox{})
	e.Body = Body{Accel: 1, Ballistic: true}

	for i := 0; i < 10; i++ {
		ApplyGravity(&e, 160)
	}
	if e.Y <= 300 {
		t.Errorf("ballistic body below ground should keep falling, y=%v", e.Y)
	}
}

func TestMoveSetsMirror(t *testing.T) {
	e := NewEntity(50, 0, 10, 10, Hitbox{})
	e.Body.Speed = 5

	e.MoveLeft()
	if e.X != 45 || !e.Mirror {
		t.Errorf("MoveLeft: x=%v mirror=%v, expected 45 true", e.X, e.Mirror)
	}
	e.MoveRight()
	if e.X != 50 || e.Mirror {
		t.Errorf("MoveRight: x=%v mirror=%v, expected 50 false", e.X, e.Mirror)
	}
}

func TestNewEntityHitbox(t *testing.T) {
	tests := []struct {
		name     string
		hb       Hitbox
		expected core.Box
	}{
		{
			name:     "zero hitbox is full bounds",
			hb:       Hitbox{},
			expected: core.NewBox(10, 20, 100, 50),
		},
		{
			name:     "offset hitbox",
			hb:       Hitbox{OffsetX: 10, OffsetY: 5, W: 40, H: 20},
			expected: core.NewBox(20, 25, 40, 20),
		},
		{
			name:     "oversized hitbox is clamped",
			hb:       Hitbox{OffsetX: 80, OffsetY: 0, W: 60, H: 90},
			expected: core.NewBox(90, 20, 20, 50),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntity(10, 20, 100, 50, tc.hb)
			b := e.Bounds()
			if b != tc.expected {
				t.Errorf("Bounds() = %+v, expected %+v", b, tc.expected)
			}
			if !e.Visual().Contains(b) {
				t.Error("hitbox must lie inside the bounding box")
			}
		})
	}
}
