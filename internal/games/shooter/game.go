// Package shooter implements the balloon shooting game.
// The player moves a cannon up and down and fires bullets at a balloon that
// wanders vertically; the game is won when a bullet hits the balloon.
package shooter

import (
	"fmt"

	"github.com/vovakirdan/balloon-shooter/internal/config"
	"github.com/vovakirdan/balloon-shooter/internal/core"
)

// Default sprite sizes, matching the bundled images.
var (
	DefaultCannonSize  = core.Size{W: 64, H: 32}
	DefaultBalloonSize = core.Size{W: 48, H: 64}
	DefaultBulletSize  = core.Size{W: 16, H: 8}
)

// Config is the immutable configuration the game is constructed with.
type Config struct {
	Runtime core.RuntimeConfig

	CannonSpeed   int
	BalloonSpeed  int
	BulletSpeed   int
	RedirectEvery int // Ticks between random balloon redirects

	CannonSize  core.Size
	BalloonSize core.Size
	BulletSize  core.Size
}

// NewConfig builds a game configuration from the loaded game config.
// Sprite sizes start at the defaults; frontends that load images overwrite them.
func NewConfig(gc config.GameConfig, seed int64) Config {
	return Config{
		Runtime: core.RuntimeConfig{
			ScreenW:  gc.Screen.Width,
			ScreenH:  gc.Screen.Height,
			TickRate: gc.Tick.FPS,
			Seed:     seed,
		},
		CannonSpeed:   gc.Cannon.Speed,
		BalloonSpeed:  gc.Balloon.Speed,
		BulletSpeed:   gc.BulletSpeed(),
		RedirectEvery: gc.RedirectInterval(),
		CannonSize:    DefaultCannonSize,
		BalloonSize:   DefaultBalloonSize,
		BulletSize:    DefaultBulletSize,
	}
}

// DefaultConfig returns the configuration of the standard game.
func DefaultConfig() Config {
	return NewConfig(config.DefaultGameConfig(), 0)
}

// Phase is the state of the game loop.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// GameState summarises the game for the platform layer.
type GameState struct {
	Phase       Phase
	MissedShots int  // Bullets that left the frame without hitting the balloon
	ShotsFired  int  // Bullets spawned so far
	LiveBullets int  // Bullets currently on the playfield
	Quit        bool // A quit was requested; the platform stops before the next tick
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Fired  int  // Bullets spawned this tick
	Missed int  // Bullets that left the frame this tick
	Won    bool // The balloon was hit this tick
}

// Game owns the cannon, the balloon and the live bullets and advances them
// one fixed tick at a time.
type Game struct {
	cfg    Config
	bounds core.Bounds
	rng    *core.RNG

	cannon  Cannon
	balloon Balloon
	bullets []Bullet // Live set

	held   core.HeldKeys
	phase  Phase
	missed int
	fired  int
	tick   uint64
	quit   bool
}

// New creates a game ready to play.
func New(cfg Config) *Game {
	g := &Game{
		cfg:    cfg,
		bounds: cfg.Runtime.Bounds(),
		rng:    core.NewRNG(cfg.Runtime.Seed),
	}
	g.cannon = NewCannon(cfg)
	g.balloon = NewBalloon(cfg, g.rng)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "balloon"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Balloon Shooting Game"
}

// Step advances the game by one tick, draining the events queued since the
// previous tick.
func (g *Game) Step(events []core.Event) StepResult {
	g.tick++

	if g.phase == PhaseWon {
		for _, e := range events {
			if e.Kind == core.EventQuit {
				g.quit = true
			}
		}
		return StepResult{State: g.State()}
	}

	var res StepResult

	for _, e := range events {
		switch {
		case e.Kind == core.EventQuit:
			g.quit = true
		case e.Kind == core.EventKeyDown && e.Key == core.KeyFire:
			g.fire()
			res.Fired++
		default:
			g.held.Apply(e)
		}
	}

	if g.held.Up {
		g.cannon.MoveUp(g.bounds)
	} else if g.held.Down {
		g.cannon.MoveDown(g.bounds)
	}

	g.balloon.Move(g.bounds, g.rng)

	// Advance every bullet, keeping only those still in frame
	live := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.Shoot(g.bounds) {
			g.missed++
			res.Missed++
			continue
		}
		live = append(live, b)
	}
	g.bullets = live

	// Drop bullets that hit the balloon
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Rect.Intersects(g.balloon.Rect) {
			res.Won = true
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
	if res.Won {
		g.phase = PhaseWon
	}

	res.State = g.State()
	return res
}

// fire spawns a bullet at the cannon's center.
func (g *Game) fire() {
	cx, cy := g.cannon.Center()
	g.bullets = append(g.bullets, NewBullet(g.cfg, cx, cy))
	g.fired++
}

// State returns the current game state.
func (g *Game) State() GameState {
	return GameState{
		Phase:       g.phase,
		MissedShots: g.missed,
		ShotsFired:  g.fired,
		LiveBullets: len(g.bullets),
		Quit:        g.quit,
	}
}

// Config returns the configuration the game was created with.
func (g *Game) Config() Config {
	return g.cfg
}

// CannonRect returns the cannon's bounding rectangle.
func (g *Game) CannonRect() core.Rect {
	return g.cannon.Rect
}

// BalloonRect returns the balloon's bounding rectangle.
func (g *Game) BalloonRect() core.Rect {
	return g.balloon.Rect
}

// BulletRects returns the bounding rectangles of all live bullets.
func (g *Game) BulletRects() []core.Rect {
	rects := make([]core.Rect, len(g.bullets))
	for i, b := range g.bullets {
		rects[i] = b.Rect
	}
	return rects
}

// WonMessage returns the text shown once the balloon has been hit.
func (g *Game) WonMessage() string {
	return fmt.Sprintf("Game Won! Missed Shots: %d", g.missed)
}
