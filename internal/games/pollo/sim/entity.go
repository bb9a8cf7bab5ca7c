package sim

import "github.com/vovakirdan/pollo-run/internal/core"

// Appearance tags. They are opaque to the simulation and only select
// what the renderer draws.
const (
	AppearIdle   = "idle"
	AppearWalk   = "walk"
	AppearJump   = "jump"
	AppearHurt   = "hurt"
	AppearDead   = "dead"
	AppearAlert  = "alert"
	AppearAttack = "attack"
	AppearRotate = "rotate"
	AppearSplash = "splash"
)

// Hitbox is a collision rectangle relative to the entity's top-left corner.
// A zero W or H selects the full extent on that axis.
type Hitbox struct {
	OffsetX, OffsetY float64
	W, H             float64
}

// Entity is the shared record for everything that moves or is drawn.
type Entity struct {
	X, Y       float64
	W, H       float64
	Hitbox     Hitbox
	Body       Body
	Appearance string
	Mirror     bool // Facing left; rendering only
}

// HasHitbox is implemented by anything that takes part in collision.
type HasHitbox interface {
	Bounds() core.Box
}

// HasVelocity is implemented by anything driven by the physics step.
type HasVelocity interface {
	Velocity() *Body
}

// NewEntity creates an entity, keeping its size positive and its hitbox
// inside the bounding box.
func NewEntity(x, y, w, h float64, hb Hitbox) Entity {
	w, h = max(w, 1), max(h, 1)

	hb.OffsetX = core.ClampF(hb.OffsetX, 0, w-1)
	hb.OffsetY = core.ClampF(hb.OffsetY, 0, h-1)
	if hb.W <= 0 {
		hb.W = w - hb.OffsetX
	}
	if hb.H <= 0 {
		hb.H = h - hb.OffsetY
	}
	hb.W = min(hb.W, w-hb.OffsetX)
	hb.H = min(hb.H, h-hb.OffsetY)

	return Entity{X: x, Y: y, W: w, H: h, Hitbox: hb, Appearance: AppearIdle}
}

// Bounds returns the hitbox in world coordinates.
func (e *Entity) Bounds() core.Box {
	return core.NewBox(e.X+e.Hitbox.OffsetX, e.Y+e.Hitbox.OffsetY, e.Hitbox.W, e.Hitbox.H)
}

// Visual returns the full bounding box in world coordinates.
func (e *Entity) Visual() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Velocity exposes the physics component.
func (e *Entity) Velocity() *Body {
	return &e.Body
}

// ItemKind distinguishes collectibles.
type ItemKind int

const (
	ItemCoin ItemKind = iota
	ItemBottle
)

func (k ItemKind) String() string {
	switch k {
	case ItemCoin:
		return "coin"
	case ItemBottle:
		return "bottle"
	default:
		return "unknown"
	}
}

// Collectible is a coin or bottle lying in the level.
type Collectible struct {
	Entity
	Kind ItemKind
}

// shape is the fixed size and hitbox of an entity kind.
type shape struct {
	w, h   float64
	hitbox Hitbox
}

var (
	chickenShape      = shape{w: 60, h: 60, hitbox: Hitbox{OffsetX: 10, OffsetY: 10, W: 40, H: 40}}
	smallChickenShape = shape{w: 45, h: 45, hitbox: Hitbox{OffsetX: 8, OffsetY: 8, W: 29, H: 29}}
	bossShape         = shape{w: 250, h: 400, hitbox: Hitbox{OffsetX: 10, OffsetY: 10, W: 230, H: 380}}
	coinShape         = shape{w: 120, h: 120, hitbox: Hitbox{OffsetX: 40, OffsetY: 40, W: 40, H: 40}}
	bottleShape       = shape{w: 60, h: 70, hitbox: Hitbox{OffsetX: 15, OffsetY: 10, W: 30, H: 55}}
)

func (s shape) at(x, y float64) Entity {
	return NewEntity(x, y, s.w, s.h, s.hitbox)
}
