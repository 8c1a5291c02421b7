package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
)

// Minimum terminal size that still shows a recognisable board.
const (
	minScreenW = 30
	minScreenH = 12
)

// brickColors cycles by row.
var brickColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen, core.ColorCyan}

// viewport maps canvas pixels to screen cells.
// Row 0 holds the HUD; the canvas is drawn inside a box below it.
type viewport struct {
	frame   core.Rect
	inner   core.Rect
	canvasW float64
	canvasH float64
}

func newViewport(cfg config.BreakoutConfig, screenW, screenH int) viewport {
	frame := core.NewRect(0, 1, screenW, screenH-1)
	return viewport{
		frame:   frame,
		inner:   core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2),
		canvasW: cfg.Canvas.Width,
		canvasH: cfg.Canvas.Height,
	}
}

func (v viewport) cellX(px float64) int {
	col := v.inner.X + int(px*float64(v.inner.W)/v.canvasW)
	return core.Clamp(col, v.inner.X, v.inner.Right()-1)
}

func (v viewport) cellY(py float64) int {
	row := v.inner.Y + int(py*float64(v.inner.H)/v.canvasH)
	return core.Clamp(row, v.inner.Y, v.inner.Bottom()-1)
}

// span maps a canvas interval to at least one cell.
func (v viewport) span(from, length float64, cell func(float64) int) (start, size int) {
	start = cell(from)
	end := cell(from + length - 0.001)
	return start, core.Max(end-start+1, 1)
}

// canvasX maps a screen column back to the canvas x of the cell centre.
// ok is false when the column is outside the canvas.
func (v viewport) canvasX(col int) (x float64, ok bool) {
	if col < v.inner.X || col >= v.inner.Right() || v.inner.W <= 0 {
		return 0, false
	}
	x = (float64(col-v.inner.X) + 0.5) * v.canvasW / float64(v.inner.W)
	return x, x > 0 && x < v.canvasW
}

// Render paints a snapshot onto dst. It reads the snapshot only.
func Render(snap Snapshot, cfg config.BreakoutConfig, dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDefault)
		return
	}

	v := newViewport(cfg, dst.Width(), dst.Height())

	renderHUD(snap, dst)
	dst.DrawBox(v.frame, core.ColorGray)

	for _, b := range snap.Bricks {
		if !b.Alive {
			continue
		}
		x, w := v.span(b.X, cfg.Bricks.Width, v.cellX)
		y, h := v.span(b.Y, cfg.Bricks.Height, v.cellY)
		dst.FillRect(core.NewRect(x, y, w, h), BrickChar, brickColors[b.Row%len(brickColors)])
	}

	paddle := paddleRect(cfg, snap.PaddleX)
	px, pw := v.span(paddle.X, paddle.W, v.cellX)
	dst.FillRect(core.NewRect(px, v.inner.Bottom()-1, pw, 1), PaddleChar, core.ColorBrightBlue)

	dst.SetColored(v.cellX(snap.BallX), v.cellY(snap.BallY), BallChar, core.ColorWhite)

	switch {
	case snap.Won:
		drawCenteredBox(dst, "YOU WIN, CONGRATULATIONS!", fmt.Sprintf("Score: %d  |  Press R to play again", snap.Score))
	case snap.Lost:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to play again", snap.Score))
	}
}

// renderHUD draws score on the left and lives on the right of row 0.
func renderHUD(snap Snapshot, dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightCyan)

	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorBrightCyan)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}
