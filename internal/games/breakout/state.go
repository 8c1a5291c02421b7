// Package breakout implements a ball-and-paddle brick breaker as a pure
// transition function over an explicit State value.
package breakout

// Brick is one cell of the brick grid.
type Brick struct {
	X, Y  float64 // Cached layout position (top-left), refreshed on every tick
	Alive bool
}

// State is the complete state of a session.
//
// A State is never modified after it is returned: every transition builds a
// new value. States may share a brick grid when the grid did not change.
type State struct {
	BallX, BallY   float64 // Ball centre
	BallVX, BallVY float64 // Pixels per tick
	PaddleX        float64 // Left edge of the paddle

	RightHeld bool
	LeftHeld  bool

	Bricks [][]Brick // Indexed [column][row]

	Score int
	Lives int
}

// TotalBricks returns the size of the brick grid.
func (s State) TotalBricks() int {
	total := 0
	for _, col := range s.Bricks {
		total += len(col)
	}
	return total
}

// AliveBricks returns the number of bricks not yet destroyed.
func (s State) AliveBricks() int {
	alive := 0
	for _, col := range s.Bricks {
		for _, b := range col {
			if b.Alive {
				alive++
			}
		}
	}
	return alive
}

// Won reports whether every brick has been destroyed.
func (s State) Won() bool {
	return s.Score == s.TotalBricks()
}

// Lost reports whether no lives remain.
func (s State) Lost() bool {
	return s.Lives <= 0
}

// Over reports whether the session has ended either way.
func (s State) Over() bool {
	return s.Won() || s.Lost()
}

// cloneBricks returns a deep copy of a brick grid.
func cloneBricks(grid [][]Brick) [][]Brick {
	clone := make([][]Brick, len(grid))
	for c, col := range grid {
		clone[c] = make([]Brick, len(col))
		copy(clone[c], col)
	}
	return clone
}
