package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Serve and bounce angles in degrees, measured so that 90° is straight up.
const (
	minServeAngle = 30.0
	maxServeAngle = 150.0

	// Paddle bounces leave within 90° ± bounceSpread.
	bounceSpread = 30.0
)

// Rand is the source of randomness for serves. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// velocityAt converts an angle and speed to a velocity that always points up
// (negative y in canvas coordinates).
func velocityAt(angleDeg, speed float64) (vx, vy float64) {
	rad := angleDeg * math.Pi / 180
	vx = speed * math.Cos(rad)
	vy = -math.Abs(speed * math.Sin(rad))
	return vx, vy
}

// ServeVelocity returns an upward velocity of the given speed at a uniformly
// random angle in [30°, 150°].
func ServeVelocity(rng Rand, speed float64) (vx, vy float64) {
	angle := minServeAngle + rng.Float64()*(maxServeAngle-minServeAngle)
	return velocityAt(angle, speed)
}

// PaddleBounceVelocity returns the outgoing velocity for a ball hitting the
// paddle at ballX. The centre sends the ball straight up; the edges send it up
// to 30° off vertical, towards the side that was hit.
func PaddleBounceVelocity(ballX, paddleX, paddleWidth, speed float64) (vx, vy float64) {
	half := paddleWidth / 2
	// -1 at the right edge, +1 at the left edge
	offset := -(ballX - (paddleX + half)) / half
	offset = core.ClampF(offset, -1, 1)

	return velocityAt(90+offset*bounceSpread, speed)
}

// Speed returns the magnitude of a velocity vector.
func Speed(vx, vy float64) float64 {
	return math.Hypot(vx, vy)
}

// brickRect returns the layout rectangle of the brick at (col, row).
func brickRect(cfg config.BreakoutConfig, col, row int) core.RectF {
	b := cfg.Bricks
	return core.NewRectF(
		float64(col)*(b.Width+b.Padding)+b.OffsetLeft,
		float64(row)*(b.Height+b.Padding)+b.OffsetTop,
		b.Width,
		b.Height,
	)
}

// paddleRect returns the paddle rectangle for a left edge at paddleX.
// The paddle sits on the bottom edge of the canvas.
func paddleRect(cfg config.BreakoutConfig, paddleX float64) core.RectF {
	return core.NewRectF(
		paddleX,
		cfg.Canvas.Height-cfg.Paddle.Height,
		cfg.Paddle.Width,
		cfg.Paddle.Height,
	)
}
