// Package config provides YAML-based configuration loading for the
// simulation: playfield geometry, physics constants and course layout.
package config

// FlappyConfig contains all configuration for a flyer session.
type FlappyConfig struct {
	Playfield Playfield     `yaml:"playfield"`
	Physics   FlappyPhysics `yaml:"physics"`
	Flyer     FlappyFlyer   `yaml:"flyer"`
	Ground    FlappyGround  `yaml:"ground"`
	Course    CourseConfig  `yaml:"course"`
	Messages  Messages      `yaml:"messages"`
}

// Playfield defines the visible world size in world units.
// Courses longer than Width extend the world to the right.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines physics parameters. Velocities are in world
// units per second, gravity in world units per second squared.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	AscendSpeed  float64 `yaml:"ascend_speed"`
	ForwardSpeed float64 `yaml:"forward_speed"`
	Bounce       float64 `yaml:"bounce"`
}

// FlappyFlyer defines the flyer's spawn position (top-left) and extent.
type FlappyFlyer struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyGround defines the ground strip. It always spans the full world width.
type FlappyGround struct {
	Y      float64 `yaml:"y"`
	Height float64 `yaml:"height"`
}

// CourseConfig selects and parameterizes the obstacle course.
type CourseConfig struct {
	Name      string          `yaml:"name"` // Registered course ID
	PipeWidth float64         `yaml:"pipe_width"`
	Pairs     []PairConfig    `yaml:"pairs"`
	Generator GeneratorConfig `yaml:"generator"`
	TMX       string          `yaml:"tmx"` // Tiled map path for the "tmx" course
}

// PairConfig describes one obstacle pair sharing a horizontal offset.
// The upper barrier spans from the top of the playfield down to GapTop,
// the lower barrier from GapBottom down to the ground. A barrier with no
// height is omitted.
type PairConfig struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width,omitempty"` // 0 = course pipe_width
	GapTop    float64 `yaml:"gap_top"`
	GapBottom float64 `yaml:"gap_bottom"`
}

// GeneratorConfig parameterizes the seeded course generator.
type GeneratorConfig struct {
	Count   int     `yaml:"count"`
	FirstX  float64 `yaml:"first_x"`
	Spacing float64 `yaml:"spacing"`
	MinGap  float64 `yaml:"min_gap"`
	MaxGap  float64 `yaml:"max_gap"`
	Margin  float64 `yaml:"margin"` // Minimum barrier height at top and bottom
}

// Messages holds the advisory text shown by front-ends for each phase.
type Messages struct {
	Start   string `yaml:"start"`
	Ascend  string `yaml:"ascend"`
	Restart string `yaml:"restart"`
}
