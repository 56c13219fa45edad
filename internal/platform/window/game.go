// Package window provides the ebiten frontend for the game: an 800x600
// window with sprites, keyboard input and a fixed tick rate.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/balloon-shooter/internal/assets"
	"github.com/vovakirdan/balloon-shooter/internal/core"
	"github.com/vovakirdan/balloon-shooter/internal/games/shooter"
)

// baseFontSize is the pixel height of basicfont.Face7x13.
const baseFontSize = 13

// Options configures the window frontend.
type Options struct {
	Title    string
	TextSize float64 // Pixel height of the won message
	Logger   *log.Logger
}

// Game adapts a shooter.Game to the ebiten.Game interface.
type Game struct {
	game   *shooter.Game
	queue  *core.EventQueue
	keys   keySource
	logger *log.Logger

	cannon  *ebiten.Image
	balloon *ebiten.Image
	bullet  *ebiten.Image

	face      text.Face
	textScale float64
	width     int
	height    int
}

// New constructs a window adapter drawing the given sprites.
func New(game *shooter.Game, sprites *assets.Sprites, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	size := opts.TextSize
	if size <= 0 {
		size = baseFontSize
	}

	rt := game.Config().Runtime
	return &Game{
		game:      game,
		queue:     &core.EventQueue{},
		keys:      ebitenKeys{},
		logger:    logger,
		cannon:    ebiten.NewImageFromImage(sprites.Cannon),
		balloon:   ebiten.NewImageFromImage(sprites.Balloon),
		bullet:    ebiten.NewImageFromImage(sprites.Bullet),
		face:      text.NewGoXFace(basicfont.Face7x13),
		textScale: size / baseFontSize,
		width:     rt.ScreenW,
		height:    rt.ScreenH,
	}
}

// Update runs one simulation tick. A quit requested during the previous tick
// ends the run before any further work.
func (g *Game) Update() error {
	if g.game.State().Quit {
		g.logger.Info("quit", "missed_shots", g.game.State().MissedShots)
		return ebiten.Termination
	}

	pollEvents(g.keys, ebiten.IsWindowBeingClosed(), g.queue)
	shooter.LogStep(g.logger, g.game.Step(g.queue.Drain()))
	return nil
}

// Draw renders the current game state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	if g.game.State().Phase == shooter.PhaseWon {
		g.drawMessage(screen, g.game.WonMessage())
		return
	}

	drawSprite(screen, g.cannon, g.game.CannonRect())
	drawSprite(screen, g.balloon, g.game.BalloonRect())
	for _, r := range g.game.BulletRects() {
		drawSprite(screen, g.bullet, r)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// drawMessage draws black text centred on the screen.
func (g *Game) drawMessage(screen *ebiten.Image, msg string) {
	w, h := text.Measure(msg, g.face, 0)
	w *= g.textScale
	h *= g.textScale

	op := &text.DrawOptions{}
	op.GeoM.Scale(g.textScale, g.textScale)
	op.GeoM.Translate((float64(g.width)-w)/2, (float64(g.height)-h)/2)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, msg, g.face, op)
}

func drawSprite(screen, img *ebiten.Image, r core.Rect) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	screen.DrawImage(img, op)
}

// Run opens the window and blocks until the player quits.
func Run(game *shooter.Game, sprites *assets.Sprites, opts Options) error {
	rt := game.Config().Runtime

	ebiten.SetWindowSize(rt.ScreenW, rt.ScreenH)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(rt.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(New(game, sprites, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
