package shooter

import (
	"github.com/vovakirdan/balloon-shooter/internal/core"
)

// Visual characters for the terminal rendition
const (
	CannonChar  = '█'
	BalloonChar = '●'
	BulletChar  = '•'
)

// Render draws the current game state into a character screen, scaling the
// pixel playfield to the screen's size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == PhaseWon {
		dst.DrawTextCentered(dst.Height()/2, g.WonMessage(), core.ColorBlack)
		return
	}

	dst.FillRect(g.toCells(dst, g.cannon.Rect), CannonChar, core.ColorGray)
	dst.FillRect(g.toCells(dst, g.balloon.Rect), BalloonChar, core.ColorRed)
	for _, b := range g.bullets {
		dst.FillRect(g.toCells(dst, b.Rect), BulletChar, core.ColorYellow)
	}
}

// toCells maps a pixel rectangle onto screen cells. Every non-empty rectangle
// covers at least one cell so small sprites stay visible.
func (g *Game) toCells(dst *core.Screen, r core.Rect) core.Rect {
	pw, ph := g.cfg.Runtime.ScreenW, g.cfg.Runtime.ScreenH
	if pw <= 0 || ph <= 0 {
		return core.Rect{}
	}
	sw, sh := dst.Width(), dst.Height()

	x0 := r.X * sw / pw
	y0 := r.Y * sh / ph
	x1 := (r.Right()*sw + pw - 1) / pw
	y1 := (r.Bottom()*sh + ph - 1) / ph

	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
