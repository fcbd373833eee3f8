// Package audio synthesizes the game's sound effects and plays them
// through the system speaker. Every sound is generated procedurally;
// there are no sample assets.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player mixes event sounds into a single speaker stream. A Player with
// audio disabled (or one that failed to initialize) is a silent no-op,
// so the game never depends on a working sound device.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	enabled     bool
	initialized bool
}

// NewPlayer creates a player from the audio configuration. Init must be
// called before sounds play.
func NewPlayer(cfg config.Audio) *Player {
	return &Player{
		rate:    beep.SampleRate(cfg.SampleRate),
		mixer:   &beep.Mixer{},
		enabled: cfg.Enabled,
	}
}

// Init opens the speaker and starts the mixer. Safe to call more than
// once. When the speaker cannot be opened the player stays silent and
// the error is returned for logging.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(time.Millisecond*100)); err != nil {
		p.enabled = false
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer. The speaker itself has no close; clearing
// the mixer stops all playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Handle plays the sound for each simulation event of this tick.
func (p *Player) Handle(events []core.Event) {
	for _, e := range events {
		p.play(e)
	}
}

func (p *Player) play(e core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	var s beep.Streamer
	switch e {
	case core.EventFlap:
		s = FlapSound(p.rate)
	case core.EventScore:
		s = ScoreSound(p.rate)
	case core.EventWhoosh:
		s = WhooshSound(p.rate)
	case core.EventDeath:
		s = DeathSound(p.rate)
	default:
		return
	}

	// The speaker goroutine reads the mixer concurrently.
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
