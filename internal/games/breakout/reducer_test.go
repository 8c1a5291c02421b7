package breakout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// fixedRand always returns the same value.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func newTestReducer(t *testing.T) *Reducer {
	t.Helper()
	return NewReducer(config.DefaultBreakoutConfig(), fixedRand(0.5))
}

func deadBricks(s State) int {
	return s.TotalBricks() - s.AliveBricks()
}

func TestNewState(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()

	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 240.0, s.BallX)
	assert.Equal(t, 290.0, s.BallY)
	assert.Less(t, s.BallVY, 0.0)
	assert.Equal(t, 202.5, s.PaddleX)
	assert.False(t, s.RightHeld)
	assert.False(t, s.LeftHeld)

	require.Len(t, s.Bricks, 5)
	for _, col := range s.Bricks {
		require.Len(t, col, 3)
	}
	assert.Equal(t, 15, s.AliveBricks())
	assert.Equal(t, Brick{X: 30, Y: 30, Alive: true}, s.Bricks[0][0])
	assert.Equal(t, Brick{X: 370, Y: 90, Alive: true}, s.Bricks[4][2])
	assert.False(t, s.Over())
}

func TestApplyKeys(t *testing.T) {
	r := newTestReducer(t)

	tests := []struct {
		name      string
		start     State
		ev        core.Event
		wantRight bool
		wantLeft  bool
	}{
		{"right down", State{}, core.KeyDown(core.KeyRight), true, false},
		{"arrow right down", State{}, core.KeyDown(core.KeyArrowRight), true, false},
		{"right down when held", State{RightHeld: true}, core.KeyDown(core.KeyRight), true, false},
		{"right up", State{RightHeld: true}, core.KeyUp(core.KeyRight), false, false},
		{"arrow right up when released", State{}, core.KeyUp(core.KeyArrowRight), false, false},
		{"left down", State{}, core.KeyDown(core.KeyLeft), false, true},
		{"arrow left down", State{RightHeld: true}, core.KeyDown(core.KeyArrowLeft), true, true},
		{"left up", State{LeftHeld: true}, core.KeyUp(core.KeyLeft), false, false},
		{"arrow left up", State{LeftHeld: true, RightHeld: true}, core.KeyUp(core.KeyArrowLeft), true, false},
		{"unknown key", State{LeftHeld: true}, core.KeyDown("Space"), false, true},
		{"empty key", State{RightHeld: true}, core.KeyUp(""), true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Apply(tc.start, tc.ev)
			assert.Equal(t, tc.wantRight, got.RightHeld)
			assert.Equal(t, tc.wantLeft, got.LeftHeld)
		})
	}
}

func TestApplyPointerMove(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()

	tests := []struct {
		x    float64
		want float64
	}{
		{240, 202.5},
		{100, 62.5},
		{0, 0},
		{-1000, 0},
		{37.5, 0},
		{442.5, 405},
		{480, 405},
		{1e9, 405},
	}

	for _, tc := range tests {
		got := r.Apply(s, core.PointerMove(tc.x))
		assert.Equal(t, tc.want, got.PaddleX, "x=%v", tc.x)
		assert.GreaterOrEqual(t, got.PaddleX, 0.0)
		assert.LessOrEqual(t, got.PaddleX, 480.0-75.0)
	}
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()
	before := s
	beforeBricks := cloneBricks(s.Bricks)

	s.BallX, s.BallY = 60, 42
	s.BallVX, s.BallVY = 0, -2
	_ = r.Apply(s, core.Tick())

	assert.Equal(t, beforeBricks, s.Bricks)
	assert.Equal(t, before.Score, s.Score)
}

func TestTickPaddleMovement(t *testing.T) {
	r := newTestReducer(t)
	base := r.NewState()

	tests := []struct {
		name  string
		start float64
		right bool
		left  bool
		want  float64
	}{
		{"idle", 100, false, false, 100},
		{"right", 100, true, false, 107},
		{"left", 100, false, true, 93},
		{"right wins", 100, true, true, 107},
		{"right clamps", 400, true, false, 405},
		{"left clamps", 3, false, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := base
			s.PaddleX = tc.start
			s.RightHeld = tc.right
			s.LeftHeld = tc.left

			got := r.Apply(s, core.Tick())
			assert.Equal(t, tc.want, got.PaddleX)
		})
	}
}

func TestTickMoves(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()
	s.BallX, s.BallY = 200, 200
	s.BallVX, s.BallVY = 1.5, -1

	got := r.Apply(s, core.Tick())
	assert.Equal(t, 201.5, got.BallX)
	assert.Equal(t, 199.0, got.BallY)
	assert.Equal(t, 1.5, got.BallVX)
	assert.Equal(t, -1.0, got.BallVY)
}

func TestTickSideWalls(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()

	s.BallX, s.BallY = 471, 200
	s.BallVX, s.BallVY = 2, 1
	got := r.Apply(s, core.Tick())
	assert.Equal(t, -2.0, got.BallVX)
	assert.Equal(t, 469.0, got.BallX)

	s.BallX = 11
	s.BallVX = -2
	got = r.Apply(s, core.Tick())
	assert.Equal(t, 2.0, got.BallVX)
	assert.Equal(t, 13.0, got.BallX)
}

func TestTickTopWall(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()
	s.BallX, s.BallY = 240, 9
	s.BallVX, s.BallVY = 0, -3

	got := r.Apply(s, core.Tick())
	assert.Equal(t, 3.0, got.BallVY)
	assert.Equal(t, 12.0, got.BallY)
	assert.Greater(t, got.BallY, s.BallY)
}

func TestTickMissServes(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()
	s.BallX, s.BallY = 240, 309
	s.BallVX, s.BallVY = 0, 2
	s.PaddleX = 0

	got := r.Apply(s, core.Tick())
	assert.Equal(t, 2, got.Lives)
	assert.Equal(t, 240.0, got.BallX)
	assert.Equal(t, 290.0, got.BallY)
	assert.Less(t, got.BallVY, 0.0)
	assert.InDelta(t, 2.0, Speed(got.BallVX, got.BallVY), 1e-9)
	assert.Equal(t, 202.5, got.PaddleX)
	assert.Equal(t, 0, got.Score)
}

func TestTickLastLifeFreezes(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()
	s.Lives = 1
	s.BallX, s.BallY = 240, 309
	s.BallVX, s.BallVY = 1, 2
	s.PaddleX = 0

	got := r.Apply(s, core.Tick())
	assert.Equal(t, 0, got.Lives)
	assert.Equal(t, 240.0, got.BallX)
	assert.Equal(t, 309.0, got.BallY)
	assert.Equal(t, 1.0, got.BallVX)
	assert.Equal(t, 2.0, got.BallVY)
	assert.Equal(t, 0.0, got.PaddleX)
	assert.True(t, got.Lost())

	for range 10 {
		next := r.Apply(got, core.Tick())
		assert.Equal(t, got, next)
		got = next
	}
}

func TestTickFixedPointWithoutLives(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()
	s.Lives = 0
	s.RightHeld = true
	s.Bricks[1][1].Alive = false
	s.Score = 1

	assert.Equal(t, s, r.Apply(s, core.Tick()))
}

func TestTickPaddleBounce(t *testing.T) {
	r := newTestReducer(t)
	base := r.NewState()

	tests := []struct {
		name   string
		ballX  float64
		wantVX float64
	}{
		{"centre", 240, 0},
		{"left edge", 202.5, -1},
		{"right edge", 277.5, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := base
			s.PaddleX = 202.5
			s.BallX, s.BallY = tc.ballX, 309
			s.BallVX, s.BallVY = 0, 2

			got := r.Apply(s, core.Tick())
			assert.Equal(t, 3, got.Lives)
			assert.InDelta(t, tc.wantVX, got.BallVX, 1e-9)
			assert.Less(t, got.BallVY, 0.0)
			assert.InDelta(t, 2.0, Speed(got.BallVX, got.BallVY), 1e-9)
			assert.InDelta(t, 309+got.BallVY, got.BallY, 1e-9)
		})
	}
}

func TestTickPaddleBounceUsesMovedPaddle(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()
	// The ball is 3px right of the paddle before it moves.
	s.PaddleX = 100
	s.BallX, s.BallY = 178, 309
	s.BallVX, s.BallVY = 0, 2
	s.RightHeld = true

	got := r.Apply(s, core.Tick())
	assert.Equal(t, 107.0, got.PaddleX)
	assert.Equal(t, 3, got.Lives)
	assert.Less(t, got.BallVY, 0.0)
}

func TestTickLastBrick(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()
	for c, col := range s.Bricks {
		for row := range col {
			if c != 0 || row != 0 {
				s.Bricks[c][row].Alive = false
			}
		}
	}
	s.Score = 14
	s.BallX, s.BallY = 60, 42
	s.BallVX, s.BallVY = 0, -2

	got := r.Apply(s, core.Tick())
	assert.False(t, got.Bricks[0][0].Alive)
	assert.Equal(t, 15, got.Score)
	assert.Equal(t, 2.0, got.BallVY)
	assert.Equal(t, 40.0, got.BallY)
	assert.True(t, got.Won())
	assert.True(t, s.Bricks[0][0].Alive)
}

func TestTickTwoBricksRestoreDirection(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Padding = 0
	r := NewReducer(cfg, fixedRand(0.5))

	tests := []struct {
		name      string
		ballX     float64
		wantScore int
		wantVY    float64
	}{
		// x=105 is the shared edge of (0,0) and (1,0).
		{"shared edge hits both", 105, 2, -2},
		{"inside one brick", 100, 1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := r.NewState()
			s.BallX, s.BallY = tc.ballX, 42
			s.BallVX, s.BallVY = 0, -2

			got := r.Apply(s, core.Tick())
			assert.Equal(t, tc.wantScore, got.Score)
			assert.Equal(t, tc.wantVY, got.BallVY)
			assert.False(t, got.Bricks[0][0].Alive)
			assert.Equal(t, tc.wantScore == 1, got.Bricks[1][0].Alive)
			assert.Equal(t, deadBricks(got), got.Score)
		})
	}
}

func TestTickBrickEdgeIsHit(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()
	// Lands exactly on the bottom-right corner of brick (0,0).
	s.BallX, s.BallY = 105, 52
	s.BallVX, s.BallVY = 0, -2

	got := r.Apply(s, core.Tick())
	assert.False(t, got.Bricks[0][0].Alive)
	assert.Equal(t, 1, got.Score)
}

func TestTickDeadBrickIgnored(t *testing.T) {
	r := newTestReducer(t)
	s := r.NewState()
	s.Bricks = cloneBricks(s.Bricks)
	s.Bricks[0][0].Alive = false
	s.Score = 1
	s.BallX, s.BallY = 60, 42
	s.BallVX, s.BallVY = 0, -2

	got := r.Apply(s, core.Tick())
	assert.Equal(t, 1, got.Score)
	assert.Equal(t, -2.0, got.BallVY)
}

func TestTickLongRun(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	r := NewReducer(cfg, rand.New(rand.NewSource(7))) //#nosec G404 -- test randomness
	s := r.NewState()
	rng := rand.New(rand.NewSource(99)) //#nosec G404 -- test randomness

	for i := range 20000 {
		// Track the ball most of the time so games run long.
		if rng.Intn(4) > 0 {
			s = r.Apply(s, core.PointerMove(s.BallX+rng.Float64()*60-30))
		}

		prev := s
		s = r.Apply(s, core.Tick())

		require.GreaterOrEqual(t, s.Score, prev.Score, "tick %d", i)
		require.LessOrEqual(t, s.Lives, prev.Lives, "tick %d", i)
		require.Equal(t, deadBricks(s), s.Score, "tick %d", i)
		require.GreaterOrEqual(t, s.PaddleX, 0.0)
		require.LessOrEqual(t, s.PaddleX, cfg.Canvas.Width-cfg.Paddle.Width)

		// The tick that takes the last life keeps the ball where it was missed.
		if prev.Lives > 0 && s.Lives > 0 {
			moved := s.BallX != prev.BallX || s.BallY != prev.BallY ||
				s.BallVX != prev.BallVX || s.BallVY != prev.BallVY
			require.True(t, moved, "tick %d", i)
		}

		if s.Over() {
			if s.Lost() {
				require.Equal(t, s, r.Apply(s, core.Tick()))
			}
			s = r.NewState()
		}
	}
}

func TestServeVelocityRange(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 0.999999} {
		vx, vy := ServeVelocity(fixedRand(v), 2)
		angle := math.Atan2(-vy, vx) * 180 / math.Pi

		assert.Less(t, vy, 0.0, "v=%v", v)
		assert.InDelta(t, 2.0, Speed(vx, vy), 1e-9, "v=%v", v)
		assert.GreaterOrEqual(t, angle, minServeAngle-1e-9, "v=%v", v)
		assert.LessOrEqual(t, angle, maxServeAngle+1e-9, "v=%v", v)
	}

	vx, vy := ServeVelocity(fixedRand(0), 2)
	assert.InDelta(t, math.Sqrt(3), vx, 1e-9)
	assert.InDelta(t, -1.0, vy, 1e-9)
}

func TestPaddleBounceVelocity(t *testing.T) {
	tests := []struct {
		name   string
		ballX  float64
		wantVX float64
		wantVY float64
	}{
		{"centre", 50, 0, -2},
		{"left edge", 0, -1, -math.Sqrt(3)},
		{"right edge", 100, 1, -math.Sqrt(3)},
		{"past right edge clamps", 140, 1, -math.Sqrt(3)},
		{"past left edge clamps", -40, -1, -math.Sqrt(3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vx, vy := PaddleBounceVelocity(tc.ballX, 0, 100, 2)
			assert.InDelta(t, tc.wantVX, vx, 1e-9)
			assert.InDelta(t, tc.wantVY, vy, 1e-9)
		})
	}
}
