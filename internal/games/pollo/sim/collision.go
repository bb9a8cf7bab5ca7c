package sim

// Colliding reports whether the hitboxes of a and b overlap. It is
// symmetric and purely discrete; fast bodies may tunnel.
func Colliding(a, b HasHitbox) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// IsStomp reports whether a contact is a stomp: the player is falling and
// its hitbox bottom, shifted by tolerance, is above the enemy hitbox top.
func IsStomp(player *Player, enemy HasHitbox, tolerance float64) bool {
	if player.Body.VY >= 0 {
		return false
	}
	return player.Bounds().Bottom()+tolerance < enemy.Bounds().Y
}
