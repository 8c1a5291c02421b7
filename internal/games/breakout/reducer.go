package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Reducer computes the next State from the current State and an input event.
// It holds only the session parameters and the serve RNG; all game data
// lives in the State values it is given.
type Reducer struct {
	cfg config.BreakoutConfig
	rng Rand
}

// NewReducer creates a reducer for the given session parameters.
func NewReducer(cfg config.BreakoutConfig, rng Rand) *Reducer {
	return &Reducer{cfg: cfg, rng: rng}
}

// NewState returns the start of a session: a full grid, no score, all lives
// and a freshly served ball.
func (r *Reducer) NewState() State {
	b := r.cfg.Bricks
	bricks := make([][]Brick, b.Columns)
	for c := range bricks {
		bricks[c] = make([]Brick, b.Rows)
		for row := range bricks[c] {
			rect := brickRect(r.cfg, c, row)
			bricks[c][row] = Brick{X: rect.X, Y: rect.Y, Alive: true}
		}
	}

	s := State{
		Bricks: bricks,
		Lives:  r.cfg.Gameplay.Lives,
	}
	r.serve(&s)
	return s
}

// Apply returns the state that follows s after ev.
// Unknown events and keys leave the state unchanged.
func (r *Reducer) Apply(s State, ev core.Event) State {
	switch ev.Kind {
	case core.EventTick:
		return r.tick(s)

	case core.EventKeyDown, core.EventKeyUp:
		held := ev.Kind == core.EventKeyDown
		switch {
		case core.IsRightKey(ev.Key):
			s.RightHeld = held
		case core.IsLeftKey(ev.Key):
			s.LeftHeld = held
		}
		return s

	case core.EventPointerMove:
		s.PaddleX = core.ClampF(ev.X-r.cfg.Paddle.Width/2, 0, r.paddleMax())
		return s
	}

	return s
}

// tick advances the simulation by one step.
func (r *Reducer) tick(s State) State {
	if s.Lives <= 0 {
		return s
	}

	cfg := r.cfg
	next := s

	// Right wins when both directions are held.
	if s.RightHeld {
		next.PaddleX = math.Min(s.PaddleX+cfg.Paddle.Speed, r.paddleMax())
	} else if s.LeftHeld {
		next.PaddleX = math.Max(s.PaddleX-cfg.Paddle.Speed, 0)
	}

	// Reflections are decided against the position one step ahead and applied
	// before the ball moves.
	nextX := s.BallX + s.BallVX
	nextY := s.BallY + s.BallVY
	radius := cfg.Ball.Radius

	if nextX > cfg.Canvas.Width-radius || nextX < radius {
		next.BallVX = -next.BallVX
	}

	missed := false
	if nextY < radius {
		next.BallVY = -next.BallVY
	} else if nextY > cfg.Canvas.Height-radius {
		if paddleRect(cfg, next.PaddleX).SpanContains(s.BallX) {
			speed := Speed(next.BallVX, next.BallVY)
			next.BallVX, next.BallVY = PaddleBounceVelocity(s.BallX, next.PaddleX, cfg.Paddle.Width, speed)
		} else {
			missed = true
			next.Lives--
			if next.Lives > 0 {
				r.serve(&next)
			} else {
				// Frozen: the ball stays where it was missed.
				next.BallVX, next.BallVY = s.BallVX, s.BallVY
			}
		}
	}

	if !missed {
		next.BallX += next.BallVX
		next.BallY += next.BallVY
	}

	// Every overlapping brick flips the vertical velocity on its own.
	next.Bricks = cloneBricks(s.Bricks)
	for c, col := range next.Bricks {
		for row := range col {
			b := &col[row]
			if !b.Alive {
				continue
			}
			rect := brickRect(cfg, c, row)
			b.X, b.Y = rect.X, rect.Y
			if rect.Contains(next.BallX, next.BallY) {
				next.BallVY = -next.BallVY
				b.Alive = false
				next.Score++
			}
		}
	}

	return next
}

// serve puts the ball at the serve point with a random upward velocity and
// recentres the paddle.
func (r *Reducer) serve(s *State) {
	s.BallX = r.cfg.Canvas.Width / 2
	s.BallY = r.cfg.Canvas.Height - r.cfg.Ball.ServeOffset
	s.BallVX, s.BallVY = ServeVelocity(r.rng, r.cfg.Ball.Speed)
	s.PaddleX = (r.cfg.Canvas.Width - r.cfg.Paddle.Width) / 2
}

// paddleMax returns the largest legal paddle left edge.
func (r *Reducer) paddleMax() float64 {
	return r.cfg.Canvas.Width - r.cfg.Paddle.Width
}
