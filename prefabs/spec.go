package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec tunes the archer. Speeds are in pixels per second, angles in
// radians.
type PlayerSpec struct {
	RunSpeed         float64 `yaml:"run_speed"`
	ClimbSpeed       float64 `yaml:"climb_speed"`
	JumpSpeed        float64 `yaml:"jump_speed"`
	JumpBoost        float64 `yaml:"jump_boost"`
	JumpHoldFrames   int     `yaml:"jump_hold_frames"`
	Gravity          float64 `yaml:"gravity"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	AimSpeed         float64 `yaml:"aim_speed"`
	StartAngle       float64 `yaml:"start_angle"`
	RunFrameDuration float64 `yaml:"run_frame_duration"`
	Bow              BowSpec `yaml:"bow"`
}

// BowSpec maps how long fire was held to the arrow's launch speed:
// clamp(held, MinDraw, MaxDraw) * Power.
type BowSpec struct {
	MinDraw float64 `yaml:"min_draw"`
	MaxDraw float64 `yaml:"max_draw"`
	Power   float64 `yaml:"power"`
}

type ArrowSpec struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	TipDistance  float64 `yaml:"tip_distance"`
	TipSize      int     `yaml:"tip_size"`
	WobbleRate   float64 `yaml:"wobble_rate"`
	WobbleAmount float64 `yaml:"wobble_amount"`
}

type BalloonSpec struct {
	Script string  `yaml:"script"`
	Bob    float64 `yaml:"bob"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

func LoadPlayerSpec() (PlayerSpec, error) {
	return LoadSpec[PlayerSpec]("player.yaml")
}

func LoadArrowSpec() (ArrowSpec, error) {
	return LoadSpec[ArrowSpec]("arrow.yaml")
}

func LoadBalloonSpec() (BalloonSpec, error) {
	return LoadSpec[BalloonSpec]("balloon.yaml")
}
