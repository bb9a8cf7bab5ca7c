package sim

// Body is the physics component of an entity. VY is positive upwards
// while screen y grows downwards.
type Body struct {
	VY        float64
	Accel     float64 // Subtracted from VY each physics tick
	Speed     float64 // Horizontal step per movement tick
	Ballistic bool    // Always airborne, never clamped to the ground
}

// Airborne reports whether gravity applies to the entity.
func Airborne(e *Entity, groundY float64) bool {
	return e.Body.Ballistic || e.Y < groundY || e.Body.VY > 0
}

// Grounded reports whether the entity stands on the ground.
func Grounded(e *Entity, groundY float64) bool {
	return !Airborne(e, groundY)
}

// ApplyGravity integrates one physics tick. Non-ballistic bodies land on
// groundY with zero vertical velocity.
func ApplyGravity(e *Entity, groundY float64) {
	if !Airborne(e, groundY) {
		return
	}
	e.Y -= e.Body.VY
	e.Body.VY -= e.Body.Accel

	if !e.Body.Ballistic && e.Y >= groundY && e.Body.VY <= 0 {
		e.Y = groundY
		e.Body.VY = 0
	}
}

// Jump launches a grounded entity. It reports whether the jump happened.
func Jump(e *Entity, impulse, groundY float64) bool {
	if !Grounded(e, groundY) {
		return false
	}
	e.Body.VY = impulse
	return true
}

// MoveRight steps the entity right and faces it right.
func (e *Entity) MoveRight() {
	e.X += e.Body.Speed
	e.Mirror = false
}

// MoveLeft steps the entity left and faces it left.
func (e *Entity) MoveLeft() {
	e.X -= e.Body.Speed
	e.Mirror = true
}
