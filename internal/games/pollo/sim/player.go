package sim

import "time"

// Player is the character controlled by the input provider.
type Player struct {
	Entity
	Energy     Counter
	LastHit    time.Duration
	GraceUntil time.Duration // Contact damage is ignored before this time
	hit        bool
	frame      int
}

// Alive reports whether the player has energy left.
func (p *Player) Alive() bool {
	return p.Energy.Value() > 0
}

// Hurting reports whether the player is inside the hurt window of its last hit.
func (p *Player) Hurting(now, window time.Duration) bool {
	return p.hit && now-p.LastHit < window
}

// InGrace reports whether the post-stomp grace window is active.
func (p *Player) InGrace(now time.Duration) bool {
	return now < p.GraceUntil
}

// Hit subtracts damage from the player's energy and starts the hurt window.
func (p *Player) Hit(damage int, now time.Duration) {
	p.Energy.Sub(damage)
	p.LastHit = now
	p.hit = true
}
