package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the classic 480x320 session.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: BreakoutCanvas{
			Width:  480,
			Height: 320,
		},
		Ball: BreakoutBall{
			Radius:      10,
			Speed:       2,
			ServeOffset: 30,
		},
		Paddle: BreakoutPaddle{
			Width:  75,
			Height: 10,
			Speed:  7,
		},
		Bricks: BreakoutBricks{
			Columns:    5,
			Rows:       3,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
		},
		Gameplay: BreakoutGameplay{
			Lives: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
