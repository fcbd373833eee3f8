package flappy

// Pipe is a vertical obstacle with a gap for the bird to pass through.
// X is the left edge and decreases every tick; pipes therefore stay
// sorted by X in spawn order.
type Pipe struct {
	Index     uint64  // generation index, 0-based per session
	X         float64 // left edge, in columns
	GapCenter float64 // vertical center of the gap, in rows
	GapHeight float64 // full gap height, in rows
	Passed    bool    // whether the bird has passed this pipe (for scoring)
}

// GapBand describes the vertical range pipes may occupy.
type GapBand struct {
	SkyHeight    float64 // rows above the ground line
	MinGap       float64
	MaxGap       float64
	TopMargin    float64
	BottomMargin float64
}

// splitmix64 finalizer. Used as a counter-based hash so that each
// (seed, index) pair keys an independent deterministic draw.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// unit maps a hash to [0, 1) using the top 53 bits.
func unit(h uint64) float64 {
	return float64(h>>11) / float64(1<<53)
}

// draw produces the nth uniform variate for a (seed, index) pair.
func draw(seed, index, n uint64) float64 {
	return unit(mix64(seed ^ mix64(index*2+n)))
}

// PipeAt returns the gap geometry for the pipe at a generation index.
// Pure: the same (seed, index, band) always yields the same pipe,
// independent of call order or prior calls. The entire layout of a
// session is a function of the seed.
func PipeAt(seed, index uint64, band GapBand) (gapCenter, gapHeight float64) {
	gapHeight = band.MinGap + draw(seed, index, 0)*(band.MaxGap-band.MinGap)

	half := gapHeight / 2
	lo := band.TopMargin + half
	hi := band.SkyHeight - band.BottomMargin - half
	if hi < lo {
		hi = lo // degenerate on very small screens
	}
	gapCenter = lo + draw(seed, index, 1)*(hi-lo)
	return gapCenter, gapHeight
}

// pipeWindow is the active window over the infinite pipe sequence: only
// on-screen pipes are materialized, old slots are recycled, and the next
// generation index advances monotonically. Memory stays bounded no
// matter how long a session runs.
type pipeWindow struct {
	seed      uint64
	band      GapBand
	screenW   float64
	pipeWidth float64
	spacing   float64
	pipes     []Pipe
	next      uint64 // next generation index to materialize
}

func newPipeWindow(seed uint64, band GapBand, screenW, pipeWidth, spacing float64) *pipeWindow {
	w := &pipeWindow{
		band:      band,
		screenW:   screenW,
		pipeWidth: pipeWidth,
		spacing:   spacing,
		pipes:     make([]Pipe, 0, 8),
	}
	w.Reset(seed)
	return w
}

// Reset clears the window and restarts generation from index 0.
func (w *pipeWindow) Reset(seed uint64) {
	w.seed = seed
	w.pipes = w.pipes[:0]
	w.next = 0
}

// Resize updates the window for new screen geometry. Active pipes keep
// their positions; future spawns use the new band.
func (w *pipeWindow) Resize(band GapBand, screenW float64) {
	w.band = band
	w.screenW = screenW
}

// Update scrolls pipes left by speed, scores newly passed pipes, retires
// off-screen pipes and spawns the next pipe when the rightmost one has
// cleared the spawn threshold. Returns the number of pipes passed this
// tick and whether a pipe spawned.
func (w *pipeWindow) Update(speed, birdX float64) (passed int, spawned bool) {
	for i := range w.pipes {
		w.pipes[i].X -= speed
	}

	// Score each pipe exactly once, when its right edge first crosses
	// the bird's x position.
	for i := range w.pipes {
		if !w.pipes[i].Passed && w.pipes[i].X+w.pipeWidth < birdX {
			w.pipes[i].Passed = true
			passed++
		}
	}

	// Retire pipes that have fully scrolled off the left edge.
	live := w.pipes[:0]
	for _, p := range w.pipes {
		if p.X+w.pipeWidth+2 > 0 {
			live = append(live, p)
		}
	}
	w.pipes = live

	// Demand-driven spawn: one pending pipe per generation index.
	if len(w.pipes) == 0 || w.pipes[len(w.pipes)-1].X < w.screenW-w.spacing {
		w.spawn()
		spawned = true
	}
	return passed, spawned
}

// spawn materializes the pipe at the next generation index just past the
// right screen edge.
func (w *pipeWindow) spawn() {
	center, height := PipeAt(w.seed, w.next, w.band)
	w.pipes = append(w.pipes, Pipe{
		Index:     w.next,
		X:         w.screenW + 2,
		GapCenter: center,
		GapHeight: height,
	})
	w.next++
}

// Pipes returns the active pipes, leftmost first.
func (w *pipeWindow) Pipes() []Pipe {
	return w.pipes
}
