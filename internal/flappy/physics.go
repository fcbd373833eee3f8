package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Bird is the player entity. X is fixed for a session; Y is the vertical
// center of the hitbox and grows downward.
type Bird struct {
	X     float64
	Y     float64
	Vel   float64 // vertical velocity, positive = falling
	Alive bool
}

// Hitbox holds the bird's collision half-extents.
type Hitbox struct {
	HalfW float64
	HalfH float64
}

// StepBird advances the bird by dt ticks under gravity and an optional
// flap. Pure function: no hidden state, callers pre-validate dt >= 0.
// A flap overwrites velocity rather than adding to it, so impulses
// cannot stack across frames.
func StepBird(b Bird, phys config.Physics, dt float64, flapped bool) Bird {
	b.Vel += phys.Gravity * dt
	if flapped {
		b.Vel = phys.FlapImpulse
	}
	if b.Vel > phys.MaxFallSpeed {
		b.Vel = phys.MaxFallSpeed
	}
	b.Y += b.Vel * dt
	return b
}
