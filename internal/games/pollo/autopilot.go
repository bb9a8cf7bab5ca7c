package pollo

import (
	"github.com/vovakirdan/pollo-run/internal/games/pollo/sim"
)

// Autopilot distances in world units
const (
	hopDistance   = 120 // Jump when a ground enemy is this close ahead
	throwDistance = 600 // Start lobbing bottles at the boss
	holdDistance  = 350 // Stop walking and keep throwing
)

// Autopilot is a naive scripted player used by headless runs: walk right,
// hop over chickens, bombard the boss.
func Autopilot(w *sim.World) sim.Input {
	p := w.Player
	in := sim.Input{Right: true}

	groundY := w.Config().Physics.GroundY
	if sim.Grounded(&p.Entity, groundY) {
		front := p.X + p.W
		for _, e := range w.Enemies {
			if e.Kind == sim.KindBoss || !e.Alive() {
				continue
			}
			if dx := e.X - front; dx > 0 && dx < hopDistance {
				in.Jump = true
				break
			}
		}
	}

	if b := w.Boss(); b != nil && b.Alive() {
		dist := b.X - p.X
		if dist > 0 && dist < throwDistance && !w.BottleAmount.Empty() {
			in.Throw = true
			if dist < holdDistance {
				in.Right = false
			}
		}
	}
	return in
}
