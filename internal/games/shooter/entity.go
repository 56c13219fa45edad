package shooter

import "github.com/vovakirdan/balloon-shooter/internal/core"

// Entity is the data shared by every sprite on the playfield: a bounding
// rectangle sized from the sprite image and a constant speed in pixels per tick.
type Entity struct {
	Rect  core.Rect
	Speed int
}

// newEntity creates an entity of the given size centered on (cx, cy).
func newEntity(cx, cy int, size core.Size, speed int) Entity {
	return Entity{
		Rect:  core.CenteredRect(cx, cy, size.W, size.H),
		Speed: speed,
	}
}

// Center returns the entity's center point.
func (e Entity) Center() (int, int) {
	return e.Rect.Center()
}

// Cannon is the player-controlled entity. It only moves vertically.
type Cannon struct {
	Entity
}

// NewCannon places the cannon at 4/5 of the screen width on the midline.
func NewCannon(cfg Config) Cannon {
	cx := cfg.Runtime.ScreenW * 4 / 5
	cy := cfg.Runtime.ScreenH / 2
	return Cannon{Entity: newEntity(cx, cy, cfg.CannonSize, cfg.CannonSpeed)}
}

// MoveUp moves the cannon up by its speed unless that would leave the frame.
func (c *Cannon) MoveUp(b core.Bounds) {
	if b.InFrame(c.Rect.Left(), c.Rect.Top()-c.Speed) {
		c.Rect = c.Rect.Translate(0, -c.Speed)
	}
}

// MoveDown moves the cannon down by its speed unless that would leave the frame.
func (c *Cannon) MoveDown(b core.Bounds) {
	if b.InFrame(c.Rect.Left(), c.Rect.Bottom()+c.Speed) {
		c.Rect = c.Rect.Translate(0, c.Speed)
	}
}

// Balloon wanders up and down on its own, changing direction at random every
// Interval ticks and whenever it reaches a screen edge.
type Balloon struct {
	Entity
	Down     bool // Travelling down when true, up otherwise
	Interval int  // Ticks between random redirects
	Count    int  // Ticks since the last random redirect
}

// NewBalloon places the balloon at 1/8 of the screen width on the midline,
// heading in a random direction.
func NewBalloon(cfg Config, rng *core.RNG) Balloon {
	cx := cfg.Runtime.ScreenW / 8
	cy := cfg.Runtime.ScreenH / 2
	return Balloon{
		Entity:   newEntity(cx, cy, cfg.BalloonSize, cfg.BalloonSpeed),
		Down:     rng.Coin(),
		Interval: cfg.RedirectEvery,
	}
}

// Move advances the balloon by one tick. On a redirect tick it picks a new
// direction and does not move. At an edge it reverses instead of moving; that
// tick still counts towards the next redirect.
func (bl *Balloon) Move(b core.Bounds, rng *core.RNG) {
	if bl.Count == bl.Interval {
		bl.Down = rng.Coin()
		bl.Count = 0
		return
	}

	if bl.Down {
		if b.InFrame(bl.Rect.Left(), bl.Rect.Bottom()+bl.Speed) {
			bl.Rect = bl.Rect.Translate(0, bl.Speed)
		} else {
			bl.Down = false
		}
	} else {
		if b.InFrame(bl.Rect.Left(), bl.Rect.Top()-bl.Speed) {
			bl.Rect = bl.Rect.Translate(0, -bl.Speed)
		} else {
			bl.Down = true
		}
	}
	bl.Count++
}

// Bullet travels left at constant speed from where it was fired.
type Bullet struct {
	Entity
	Dead bool // Set once the bullet has left the frame
}

// NewBullet creates a bullet centered on (cx, cy).
func NewBullet(cfg Config, cx, cy int) Bullet {
	return Bullet{Entity: newEntity(cx, cy, cfg.BulletSize, cfg.BulletSpeed)}
}

// Shoot moves the bullet left by its speed. It returns false, and marks the
// bullet dead, on the move that takes its center out of frame. A dead bullet
// no longer moves and always returns false.
func (bu *Bullet) Shoot(b core.Bounds) bool {
	if bu.Dead {
		return false
	}
	bu.Rect = bu.Rect.Translate(-bu.Speed, 0)
	if !b.InFrame(bu.Center()) {
		bu.Dead = true
		return false
	}
	return true
}
