// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration describes an unplayable session.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all parameters of a Breakout session.
type BreakoutConfig struct {
	Canvas   BreakoutCanvas   `yaml:"canvas"`
	Ball     BreakoutBall     `yaml:"ball"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutCanvas defines the playfield size in pixels.
type BreakoutCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutBall defines ball size and serve parameters.
type BreakoutBall struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // Base serve speed, pixels per tick
	ServeOffset float64 `yaml:"serve_offset"` // Serve point distance above the bottom edge
}

// BreakoutPaddle defines paddle size and keyboard speed.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Pixels per tick while a direction is held
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// BreakoutGameplay defines session rules.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// Validate checks that the configuration describes a playable session.
// All errors wrap ErrInvalidConfig.
func (c BreakoutConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"canvas.width", c.Canvas.Width},
		{"canvas.height", c.Canvas.Height},
		{"ball.radius", c.Ball.Radius},
		{"ball.speed", c.Ball.Speed},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Bricks.Columns < 1 || c.Bricks.Rows < 1 {
		return fmt.Errorf("%w: brick grid must be at least 1x1, got %dx%d",
			ErrInvalidConfig, c.Bricks.Columns, c.Bricks.Rows)
	}
	if c.Gameplay.Lives < 1 {
		return fmt.Errorf("%w: gameplay.lives must be at least 1, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	}
	if c.Paddle.Width > c.Canvas.Width {
		return fmt.Errorf("%w: paddle.width %v exceeds canvas.width %v",
			ErrInvalidConfig, c.Paddle.Width, c.Canvas.Width)
	}
	if 2*c.Ball.Radius >= c.Canvas.Width || 2*c.Ball.Radius >= c.Canvas.Height {
		return fmt.Errorf("%w: ball does not fit the canvas", ErrInvalidConfig)
	}

	gridRight := c.Bricks.OffsetLeft + float64(c.Bricks.Columns)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
	gridBottom := c.Bricks.OffsetTop + float64(c.Bricks.Rows)*(c.Bricks.Height+c.Bricks.Padding) - c.Bricks.Padding
	if gridRight > c.Canvas.Width || gridBottom > c.Canvas.Height {
		return fmt.Errorf("%w: brick grid (%vx%v) overflows the canvas", ErrInvalidConfig, gridRight, gridBottom)
	}

	serveY := c.Canvas.Height - c.Ball.ServeOffset
	if serveY < c.Ball.Radius || serveY > c.Canvas.Height-c.Ball.Radius {
		return fmt.Errorf("%w: ball.serve_offset %v puts the serve point outside the canvas",
			ErrInvalidConfig, c.Ball.ServeOffset)
	}

	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. The empty string means
// "no preset" and is accepted.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
