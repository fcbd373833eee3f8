package flappy

// Collides tests the bird against world bounds and the active pipes.
// Pure predicate, no side effects.
//
// Boundary rule: a bird edge exactly on a gap edge is safe; collision
// requires strictly crossing it. Ceiling is likewise exclusive (center
// minus half-height exactly at row 0 is safe), while resting on the
// ground line counts as a collision.
func Collides(b Bird, box Hitbox, pipes []Pipe, skyHeight, pipeWidth float64) bool {
	if b.Y-box.HalfH < 0 {
		return true
	}
	if b.Y+box.HalfH >= skyHeight {
		return true
	}

	for _, p := range pipes {
		// Horizontal AABB overlap; touching edges do not overlap.
		if b.X+box.HalfW <= p.X || b.X-box.HalfW >= p.X+pipeWidth {
			continue
		}
		gapTop := p.GapCenter - p.GapHeight/2
		gapBot := p.GapCenter + p.GapHeight/2
		if b.Y-box.HalfH < gapTop || b.Y+box.HalfH > gapBot {
			return true
		}
	}
	return false
}
