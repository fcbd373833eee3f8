// Package flappy implements the Flappy Bird simulation core: seeded
// level generation, vertical physics, collision detection and the
// session state machine. It is pure logic with no terminal, timing or
// audio dependencies; the platform layer drives it one tick at a time.
package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	// Fixed simulation timestep, in ticks. The platform schedules real
	// time; the simulation only ever advances by whole ticks.
	dt = 1.0

	groundRows = 2 // rows reserved for the ground strip

	// Implicit speed ramp: scroll speed grows with score up to +50%.
	rampMaxScore = 50
	rampGain     = 0.5

	// Live tuning steps and floors (a/z, s/x, d/c keys).
	tuneGravityStep = 0.02
	tuneImpulseStep = 0.2
	tuneSpeedStep   = 0.1
	minGravity      = 0.05
	maxImpulse      = -0.5 // impulse stays at least this strong upward
	minBaseSpeed    = 0.2

	// Ready-screen bob animation.
	bobFreq = 0.08
	bobAmp  = 1.5

	deadPanelDelay = 15 // ticks before the game-over panel appears
)

// Visual characters for rendering.
const (
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	birdBodyChar  = '●'
	birdBeakChar  = '▶'
	birdWingUp    = '^'
	birdWingDown  = 'v'
	grassChar     = '▒'
	dirtChar      = '░'
)

// Game is the session state machine. It orchestrates physics, the pipe
// window and collision, and exposes immutable snapshots for rendering.
type Game struct {
	cfg  config.Config
	rt   core.RuntimeConfig
	seed uint64

	bird   Bird
	box    Hitbox
	window *pipeWindow

	score int
	best  int
	tick  uint64 // simulation ticks since Playing started
	frame uint64 // total frames, drives cosmetic animation
	phase core.Phase

	paused    bool
	deadTimer int
	groundX   float64

	// Live-tunable physics; seeded from cfg on Reset.
	phys    config.Physics
	showHUD bool
}

// New creates a game with the given tuning configuration. Reset must be
// called before the first Step.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Reset initializes or restarts the session. The seed comes from the
// runtime config and stays fixed for the session: resetting with the
// same config reproduces the identical pipe sequence.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.seed = rt.Seed
	g.phys = g.cfg.Physics
	g.showHUD = false

	g.bird = Bird{
		X:     math.Max(float64(rt.ScreenW)*g.cfg.Player.XFraction, g.cfg.Player.MinX),
		Y:     g.skyHeight() * 0.4,
		Vel:   0,
		Alive: true,
	}
	g.box = Hitbox{HalfW: g.cfg.Player.HalfWidth, HalfH: g.cfg.Player.HalfHeight}

	g.score = 0
	g.tick = 0
	g.frame = 0
	g.phase = core.PhaseReady
	g.paused = false
	g.deadTimer = 0
	g.groundX = 0

	band := g.gapBand()
	if g.window == nil {
		g.window = newPipeWindow(g.seed, band, float64(rt.ScreenW),
			float64(g.cfg.Obstacles.PipeWidth), float64(g.cfg.Obstacles.PipeSpacing))
	} else {
		g.window.Resize(band, float64(rt.ScreenW))
		g.window.Reset(g.seed)
	}
}

// Resize adapts the running session to new screen geometry without
// resetting progress. Active pipes keep their positions; future spawns
// use the new band.
func (g *Game) Resize(rt core.RuntimeConfig) {
	rt.Seed = g.seed
	g.rt = rt
	g.bird.X = math.Max(float64(rt.ScreenW)*g.cfg.Player.XFraction, g.cfg.Player.MinX)
	if g.window != nil {
		g.window.Resize(g.gapBand(), float64(rt.ScreenW))
	}
}

// skyHeight returns the number of rows above the ground line.
func (g *Game) skyHeight() float64 {
	return float64(g.rt.ScreenH - groundRows)
}

// gapBand derives the pipe gap band from config and screen geometry.
func (g *Game) gapBand() GapBand {
	return GapBand{
		SkyHeight:    g.skyHeight(),
		MinGap:       float64(g.cfg.Obstacles.MinGap),
		MaxGap:       float64(g.cfg.Obstacles.MaxGap),
		TopMargin:    float64(g.cfg.Obstacles.TopMargin),
		BottomMargin: float64(g.cfg.Obstacles.BottomMargin),
	}
}

// speed returns the current scroll speed, ramping gently with score.
func (g *Game) speed() float64 {
	progress := math.Min(float64(g.score), rampMaxScore) / rampMaxScore
	return g.phys.BaseSpeed * (1 + progress*rampGain)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	g.applyTuning(in)

	if in.Has(core.ActionPause) && g.phase == core.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	flapped := in.Has(core.ActionFlap)

	switch g.phase {
	case core.PhaseReady:
		// Bird bobs on a sine wave while the ground keeps scrolling.
		g.bird.Y = g.skyHeight()*0.4 + math.Sin(float64(g.frame)*bobFreq)*bobAmp
		g.groundX += 0.5
		if flapped {
			g.phase = core.PhasePlaying
			g.tick = 0
			g.score = 0
			g.window.Reset(g.seed)
			g.bird.Vel = g.phys.FlapImpulse
			events = append(events, core.EventFlap)
		}

	case core.PhasePlaying:
		g.tick++
		if flapped {
			events = append(events, core.EventFlap)
		}
		g.bird = StepBird(g.bird, g.phys, dt, flapped)

		speed := g.speed()
		g.groundX += speed
		passed, spawned := g.window.Update(speed, g.bird.X)
		for i := 0; i < passed; i++ {
			g.score++
			events = append(events, core.EventScore)
		}
		if spawned {
			events = append(events, core.EventWhoosh)
		}

		if Collides(g.bird, g.box, g.window.Pipes(),
			g.skyHeight(), float64(g.cfg.Obstacles.PipeWidth)) {
			g.bird.Alive = false
			g.bird.Vel = g.phys.FlapImpulse * 0.6 // small death hop
			g.phase = core.PhaseDying
			if g.score > g.best {
				g.best = g.score
			}
			events = append(events, core.EventDeath)
		}

	case core.PhaseDying:
		// Tumble under gravity until the ground; input is ignored.
		g.bird = StepBird(g.bird, g.phys, dt, false)
		if g.bird.Y+g.box.HalfH >= g.skyHeight() {
			g.bird.Y = g.skyHeight() - g.box.HalfH
			g.bird.Vel = 0
			g.phase = core.PhaseDead
			g.deadTimer = 0
		}

	case core.PhaseDead:
		g.deadTimer++
		if in.Has(core.ActionRestart) || flapped {
			best := g.best
			g.Reset(g.rt) // same seed: identical pipe sequence
			g.best = best
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// applyTuning nudges physics values from the live tuning keys and turns
// the tuning HUD on the first time any of them is used.
func (g *Game) applyTuning(in core.InputFrame) {
	switch {
	case in.Has(core.ActionGravityUp):
		g.phys.Gravity += tuneGravityStep
	case in.Has(core.ActionGravityDown):
		g.phys.Gravity = math.Max(g.phys.Gravity-tuneGravityStep, minGravity)
	case in.Has(core.ActionImpulseUp):
		g.phys.FlapImpulse -= tuneImpulseStep
	case in.Has(core.ActionImpulseDown):
		g.phys.FlapImpulse = math.Min(g.phys.FlapImpulse+tuneImpulseStep, maxImpulse)
	case in.Has(core.ActionSpeedUp):
		g.phys.BaseSpeed += tuneSpeedStep
	case in.Has(core.ActionSpeedDown):
		g.phys.BaseSpeed = math.Max(g.phys.BaseSpeed-tuneSpeedStep, minBaseSpeed)
	default:
		return
	}
	g.showHUD = true
}

// State returns the current session status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseDying || g.phase == core.PhaseDead,
		Paused:   g.paused,
	}
}

// Render draws the current world into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawGround(dst)
	for _, p := range g.window.Pipes() {
		g.drawPipe(dst, p)
	}
	g.drawBird(dst)
	g.drawScore(dst)

	if g.showHUD {
		g.drawTuningHUD(dst)
	}
	switch {
	case g.phase == core.PhaseReady:
		g.drawTitle(dst)
	case g.phase == core.PhaseDead && g.deadTimer > deadPanelDelay:
		g.drawGameOver(dst)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawGround renders the scrolling two-row ground strip.
func (g *Game) drawGround(dst *core.Screen) {
	grassY := int(g.skyHeight())
	offset := int(g.groundX)
	for x := 0; x < dst.Width(); x++ {
		if (x+offset)/3%2 == 0 {
			dst.SetC(x, grassY, grassChar, core.ColorGrass)
		} else {
			dst.SetC(x, grassY, grassChar, core.ColorHill)
		}
	}
	for y := grassY + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			dst.SetC(x, y, dirtChar, core.ColorDirt)
		}
	}
}

// drawPipe renders a single pipe with caps around the gap.
func (g *Game) drawPipe(dst *core.Screen, p Pipe) {
	skyH := int(g.skyHeight())
	px := int(p.X)
	pw := g.cfg.Obstacles.PipeWidth
	gapTop := int(p.GapCenter - p.GapHeight/2)
	gapBot := int(p.GapCenter + p.GapHeight/2)

	// Top section
	for y := 0; y < gapTop-1 && y < skyH; y++ {
		for x := 0; x < pw; x++ {
			dst.SetC(px+x, y, pipeChar, core.ColorPipe)
		}
	}
	if gapTop > 0 {
		for x := 0; x < pw; x++ {
			dst.SetC(px+x, gapTop-1, pipeCapTop, core.ColorPipeDark)
		}
	}

	// Bottom section
	if gapBot < skyH {
		for x := 0; x < pw; x++ {
			dst.SetC(px+x, gapBot, pipeCapBottom, core.ColorPipeDark)
		}
	}
	for y := gapBot + 1; y < skyH; y++ {
		for x := 0; x < pw; x++ {
			dst.SetC(px+x, y, pipeChar, core.ColorPipe)
		}
	}
}

// drawBird renders the bird with a flapping wing and a beak.
func (g *Game) drawBird(dst *core.Screen) {
	cx := int(g.bird.X)
	cy := int(g.bird.Y)

	dst.SetC(cx-1, cy, birdBodyChar, core.ColorBird)
	dst.SetC(cx, cy, birdBodyChar, core.ColorBird)
	dst.SetC(cx+1, cy, birdBeakChar, core.ColorBeak)

	wing := birdWingDown
	if g.frame%8 < 4 {
		wing = birdWingUp
	}
	dst.SetC(cx-1, cy-1, wing, core.ColorBirdWing)
}

// drawScore renders the HUD score line.
func (g *Game) drawScore(dst *core.Screen) {
	dst.DrawTextC(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorWhite)
	if g.best > 0 {
		text := fmt.Sprintf(" Best: %d ", g.best)
		dst.DrawTextC(dst.Width()-len(text)-2, 0, text, core.ColorGray)
	}
}

// drawTuningHUD shows the live physics values at the bottom-right.
func (g *Game) drawTuningHUD(dst *core.Screen) {
	y := int(g.skyHeight()) - 1
	lines := []string{
		fmt.Sprintf("G %.2f  a/z", g.phys.Gravity),
		fmt.Sprintf("F %.1f  s/x", -g.phys.FlapImpulse),
		fmt.Sprintf("S %.2f  d/c", g.phys.BaseSpeed),
	}
	for i, line := range lines {
		dst.DrawTextC(dst.Width()-len(line)-2, y-len(lines)+i, line, core.ColorGray)
	}
}

// drawTitle renders the ready-screen banner.
func (g *Game) drawTitle(dst *core.Screen) {
	y := dst.Height() / 3
	dst.DrawTextCentered(y, "F L A P P Y", core.ColorBird)
	g.drawCenteredMessage(dst, "SPACE TO FLAP", "Q to quit")
}

// drawGameOver renders the game-over panel with score and session best.
func (g *Game) drawGameOver(dst *core.Screen) {
	g.drawCenteredMessage(dst, "GAME OVER",
		fmt.Sprintf("Score: %d  Best: %d  |  R to restart", g.score, g.best))
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextC(titleX, boxY+1, title, core.ColorWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawTextC(subtitleX, boxY+3, subtitle, core.ColorGray)
}
