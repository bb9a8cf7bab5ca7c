package sim

import "time"

// SpriteKind tells the renderer what a sprite depicts.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteChicken
	SpriteSmallChicken
	SpriteBoss
	SpriteCoin
	SpriteBottle
	SpriteProjectile
)

// Sprite is a read-only view of one entity.
type Sprite struct {
	Kind       SpriteKind
	X, Y       float64
	W, H       float64
	Appearance string
	Mirror     bool
	Frame      int
}

// Bars holds the status bar percentages. Boss is meaningful only when HasBoss.
type Bars struct {
	Health  int
	Coins   int
	Bottles int
	Boss    int
	HasBoss bool
}

// Snapshot is a consistent copy of everything the renderer needs.
type Snapshot struct {
	Time         time.Duration
	CameraX      float64
	ViewportW    float64
	ViewportH    float64
	EndX         float64
	GroundY      float64
	FloorY       float64
	Sprites      []Sprite
	Bars         Bars
	Coins        int
	BottleAmount int
	BottleMax    int
	BossState    BossState
	Finished     bool
	Ending       bool
	Won          bool
}

// Snapshot copies the drawable state. It never mutates the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Time:         w.sched.Now(),
		CameraX:      w.CameraX,
		ViewportW:    w.cfg.Camera.ViewportWidth,
		ViewportH:    w.cfg.Camera.ViewportHeight,
		EndX:         w.Level.EndX,
		GroundY:      w.cfg.Physics.GroundY,
		FloorY:       w.cfg.Physics.FloorY,
		Coins:        w.CoinAmount,
		BottleAmount: w.BottleAmount.Value(),
		BottleMax:    w.BottleAmount.Max(),
		Finished:     w.Finished,
		Ending:       w.ending,
		Won:          w.Won,
		Bars: Bars{
			Health:  w.Player.Energy.Percent(),
			Coins:   w.coinPercent(),
			Bottles: w.BottleAmount.Percent(),
		},
	}

	s.Sprites = make([]Sprite, 0, 1+len(w.Enemies)+len(w.Coins)+len(w.Bottles)+len(w.Projectiles))
	for _, c := range w.Coins {
		s.Sprites = append(s.Sprites, sprite(SpriteCoin, &c.Entity, 0))
	}
	for _, b := range w.Bottles {
		s.Sprites = append(s.Sprites, sprite(SpriteBottle, &b.Entity, 0))
	}
	for _, e := range w.Enemies {
		switch e.Kind {
		case KindChicken:
			s.Sprites = append(s.Sprites, sprite(SpriteChicken, &e.Entity, e.frame))
		case KindSmallChicken:
			s.Sprites = append(s.Sprites, sprite(SpriteSmallChicken, &e.Entity, e.frame))
		case KindBoss:
			s.Sprites = append(s.Sprites, sprite(SpriteBoss, &e.Entity, 0))
			s.Bars.Boss = e.Boss.Health.Percent()
			s.Bars.HasBoss = true
			s.BossState = e.Boss.State
		}
	}
	s.Sprites = append(s.Sprites, sprite(SpritePlayer, &w.Player.Entity, w.Player.frame))
	for _, p := range w.Projectiles {
		s.Sprites = append(s.Sprites, sprite(SpriteProjectile, &p.Entity, p.Frame))
	}
	return s
}

func sprite(kind SpriteKind, e *Entity, frame int) Sprite {
	return Sprite{
		Kind:       kind,
		X:          e.X,
		Y:          e.Y,
		W:          e.W,
		H:          e.H,
		Appearance: e.Appearance,
		Mirror:     e.Mirror,
		Frame:      frame,
	}
}
