package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:      300,
			AscendSpeed:  160,
			ForwardSpeed: 50,
			Bounce:       0.2,
		},
		Flyer: FlappyFlyer{
			X:      84,
			Y:      284,
			Width:  32,
			Height: 32,
		},
		Ground: FlappyGround{
			Y:      568,
			Height: 32,
		},
		Course: CourseConfig{
			Name:      "classic",
			PipeWidth: 64,
			Pairs: []PairConfig{
				{X: 168, GapTop: 200, GapBottom: 350},
				{X: 468, GapTop: 200, GapBottom: 350},
			},
			Generator: GeneratorConfig{
				Count:   16,
				FirstX:  320,
				Spacing: 280,
				MinGap:  130,
				MaxGap:  190,
				Margin:  60,
			},
		},
		Messages: Messages{
			Start:   "Press space bar to start",
			Ascend:  "Use UP arrow to fly!",
			Restart: "Press R to restart",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
