package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot is an immutable copy of the world for one frame. The renderer
// and tests consume snapshots; the simulation never hands out mutable
// internal references.
type Snapshot struct {
	Bird  Bird
	Pipes []Pipe // copy, leftmost first
	Score int
	Best  int
	Tick  uint64
	Phase core.Phase
	Seed  uint64
}

// Snapshot returns a copy of the current world state.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]Pipe, len(g.window.Pipes()))
	copy(pipes, g.window.Pipes())

	return Snapshot{
		Bird:  g.bird,
		Pipes: pipes,
		Score: g.score,
		Best:  g.best,
		Tick:  g.tick,
		Phase: g.phase,
		Seed:  g.seed,
	}
}
