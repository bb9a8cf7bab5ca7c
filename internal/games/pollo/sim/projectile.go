package sim

// Projectile is a thrown bottle. It flies, impacts once and plays a
// splash before being removed.
type Projectile struct {
	Entity
	Dir            float64 // +1 right, -1 left
	Impacting      bool
	SplashComplete bool
	Frame          int
}

// Flying reports whether the projectile still moves.
func (p *Projectile) Flying() bool {
	return !p.Impacting
}

// Impact freezes the projectile and starts the splash. Only the first
// call has an effect and reports true.
func (p *Projectile) Impact() bool {
	if p.Impacting {
		return false
	}
	p.Impacting = true
	p.Body.VY = 0
	p.Body.Speed = 0
	p.Body.Ballistic = false
	p.Frame = 0
	p.Appearance = AppearSplash
	return true
}

// advanceSplash plays one splash frame. It reports true exactly once,
// when the final frame completes.
func (p *Projectile) advanceSplash(frames int) bool {
	if !p.Impacting || p.SplashComplete {
		return false
	}
	p.Frame++
	if p.Frame >= frames {
		p.SplashComplete = true
		return true
	}
	return false
}
