package breakout

import "math"

// BrickSnapshot is the render-facing view of one brick.
type BrickSnapshot struct {
	Col, Row int
	X, Y     float64
	Alive    bool
}

// Snapshot is everything a renderer needs to paint one frame.
// It is a plain copy; changing it never affects the game.
type Snapshot struct {
	Tick    uint64
	BallX   float64
	BallY   float64
	PaddleX float64
	Bricks  []BrickSnapshot // Column-major, same order as State.Bricks
	Score   int
	Lives   int
	Won     bool
	Lost    bool
}

// NewSnapshot captures a State.
func NewSnapshot(s State, tick uint64) Snapshot {
	bricks := make([]BrickSnapshot, 0, s.TotalBricks())
	for c, col := range s.Bricks {
		for r, b := range col {
			bricks = append(bricks, BrickSnapshot{Col: c, Row: r, X: b.X, Y: b.Y, Alive: b.Alive})
		}
	}

	return Snapshot{
		Tick:    tick,
		BallX:   s.BallX,
		BallY:   s.BallY,
		PaddleX: s.PaddleX,
		Bricks:  bricks,
		Score:   s.Score,
		Lives:   s.Lives,
		Won:     s.Won(),
		Lost:    s.Lost(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation

	for _, b := range snap.Bricks {
		alive := uint64(0)
		if b.Alive {
			alive = 1
		}
		h = h*31 + alive
	}

	return h
}
