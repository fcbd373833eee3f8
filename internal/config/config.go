// Package config provides YAML-based tuning configuration for the game.
// All physics and layout constants live here as named values rather than
// literals scattered through the simulation.
package config

// Config contains all tuning parameters for the game.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
	Audio     Audio     `yaml:"audio"`
}

// Physics defines the vertical motion model, in cells per tick.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // downward acceleration per tick
	FlapImpulse  float64 `yaml:"flap_impulse"`   // velocity set on flap (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity
	BaseSpeed    float64 `yaml:"base_speed"`     // horizontal scroll speed at score 0
}

// Obstacles defines pipe geometry. Gap sizes are in rows, spacing and
// width in columns.
type Obstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"`
	MinGap       int `yaml:"min_gap"`
	MaxGap       int `yaml:"max_gap"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// Player defines the bird's placement and hitbox half-extents.
type Player struct {
	XFraction  float64 `yaml:"x_fraction"`  // fixed x as a fraction of screen width
	MinX       float64 `yaml:"min_x"`       // lower bound for narrow terminals
	HalfWidth  float64 `yaml:"half_width"`  // hitbox half-width in columns
	HalfHeight float64 `yaml:"half_height"` // hitbox half-height in rows
}

// Audio defines the sound sink parameters.
type Audio struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sample_rate"`
}

// Normalize clamps nonsensical values into a playable range. A malformed
// config degrades to something usable rather than failing.
func (c *Config) Normalize() {
	if c.Physics.Gravity <= 0 {
		c.Physics.Gravity = defaultConfig().Physics.Gravity
	}
	if c.Physics.FlapImpulse >= 0 {
		c.Physics.FlapImpulse = defaultConfig().Physics.FlapImpulse
	}
	if c.Physics.MaxFallSpeed <= 0 {
		c.Physics.MaxFallSpeed = defaultConfig().Physics.MaxFallSpeed
	}
	if c.Physics.BaseSpeed <= 0 {
		c.Physics.BaseSpeed = defaultConfig().Physics.BaseSpeed
	}
	if c.Obstacles.PipeWidth < 1 {
		c.Obstacles.PipeWidth = 1
	}
	if c.Obstacles.MinGap < 3 {
		c.Obstacles.MinGap = 3
	}
	if c.Obstacles.MaxGap < c.Obstacles.MinGap {
		c.Obstacles.MaxGap = c.Obstacles.MinGap
	}
	if c.Obstacles.PipeSpacing < c.Obstacles.PipeWidth+8 {
		c.Obstacles.PipeSpacing = c.Obstacles.PipeWidth + 8
	}
	if c.Obstacles.TopMargin < 0 {
		c.Obstacles.TopMargin = 0
	}
	if c.Obstacles.BottomMargin < 0 {
		c.Obstacles.BottomMargin = 0
	}
	if c.Player.XFraction <= 0 || c.Player.XFraction >= 1 {
		c.Player.XFraction = defaultConfig().Player.XFraction
	}
	if c.Player.MinX <= 0 {
		c.Player.MinX = defaultConfig().Player.MinX
	}
	if c.Player.HalfWidth <= 0 {
		c.Player.HalfWidth = defaultConfig().Player.HalfWidth
	}
	if c.Player.HalfHeight <= 0 {
		c.Player.HalfHeight = defaultConfig().Player.HalfHeight
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = defaultConfig().Audio.SampleRate
	}
}
