package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// defaultConfig returns the hardcoded fallback, used only if the embedded
// YAML somehow fails to parse.
func defaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:      0.22,
			FlapImpulse:  -1.8,
			MaxFallSpeed: 2.8,
			BaseSpeed:    0.8,
		},
		Obstacles: Obstacles{
			PipeWidth:    6,
			PipeSpacing:  34,
			MinGap:       7,
			MaxGap:       11,
			TopMargin:    2,
			BottomMargin: 2,
		},
		Player: Player{
			XFraction:  0.22,
			MinX:       10,
			HalfWidth:  1.5,
			HalfHeight: 1.0,
		},
		Audio: Audio{
			Enabled:    true,
			SampleRate: 44100,
		},
	}
}

// Default returns the default configuration.
func Default() Config {
	cfg, err := parse(defaultYAML)
	if err != nil {
		return defaultConfig()
	}
	return cfg
}
