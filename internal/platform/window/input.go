package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/balloon-shooter/internal/core"
)

// keySource reports key transitions for the current frame.
type keySource interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// ebitenKeys reads key transitions from inpututil.
type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// binding maps a physical key to a game key.
type binding struct {
	key  ebiten.Key
	game core.Key
}

// bindings lists the keys the game reacts to, in the order their events are queued.
var bindings = []binding{
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeySpace, core.KeyFire},
}

// quitKeys end the game like closing the window does.
var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

// pollEvents queues the input events of one frame. Any release stops the
// cannon, so releases are queued before presses and a key pressed in the
// same frame still ends up held.
func pollEvents(src keySource, closing bool, q *core.EventQueue) {
	if closing {
		q.Push(core.QuitEvent())
	}
	for _, k := range quitKeys {
		if src.JustPressed(k) {
			q.Push(core.QuitEvent())
			break
		}
	}

	for _, b := range bindings {
		if src.JustReleased(b.key) {
			q.Push(core.KeyUpEvent(b.game))
		}
	}
	for _, b := range bindings {
		if src.JustPressed(b.key) {
			q.Push(core.KeyDownEvent(b.game))
		}
	}
}
