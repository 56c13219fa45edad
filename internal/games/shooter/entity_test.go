package shooter

import (
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/balloon-shooter/internal/core"
)

func TestCannonInitialPosition(t *testing.T) {
	c := NewCannon(DefaultConfig())

	x, y := c.Center()
	if x != 640 || y != 300 {
		t.Errorf("cannon center = (%d, %d), expected (640, 300)", x, y)
	}
	if c.Speed != 5 {
		t.Errorf("cannon speed = %d, expected 5", c.Speed)
	}
}

func TestCannonStopsAtEdges(t *testing.T) {
	cfg := DefaultConfig()
	bounds := cfg.Runtime.Bounds()

	c := NewCannon(cfg)
	for i := 0; i < 1000; i++ {
		c.MoveUp(bounds)
	}
	if c.Rect.Top() < 0 || c.Rect.Top() >= c.Speed {
		t.Errorf("cannon top after moving up = %d, expected in [0, %d)", c.Rect.Top(), c.Speed)
	}

	for i := 0; i < 1000; i++ {
		c.MoveDown(bounds)
	}
	if c.Rect.Bottom() > 600 || c.Rect.Bottom() <= 600-c.Speed {
		t.Errorf("cannon bottom after moving down = %d, expected in (%d, 600]", c.Rect.Bottom(), 600-c.Speed)
	}

	x, _ := c.Center()
	if x != 640 {
		t.Errorf("cannon moved horizontally to %d", x)
	}
}

func TestCannonNeverLeavesFrame(t *testing.T) {
	cfg := DefaultConfig()
	bounds := cfg.Runtime.Bounds()
	r := rand.New(rand.NewPCG(7, 0))

	c := NewCannon(cfg)
	for i := 0; i < 5000; i++ {
		if r.IntN(2) == 0 {
			c.MoveUp(bounds)
		} else {
			c.MoveDown(bounds)
		}
		if c.Rect.Top() < 0 || c.Rect.Bottom() > 600 {
			t.Fatalf("step %d: cannon out of frame: %+v", i, c.Rect)
		}
	}
}

func TestBalloonInitialPosition(t *testing.T) {
	b := NewBalloon(DefaultConfig(), core.NewRNG(1))

	x, y := b.Center()
	if x != 100 || y != 300 {
		t.Errorf("balloon center = (%d, %d), expected (100, 300)", x, y)
	}
	if b.Interval != 60 {
		t.Errorf("redirect interval = %d, expected 60", b.Interval)
	}
	if b.Count != 0 {
		t.Errorf("initial count = %d, expected 0", b.Count)
	}
}

func TestBalloonFlipsAtEdgeWithoutMoving(t *testing.T) {
	cfg := DefaultConfig()
	bounds := cfg.Runtime.Bounds()
	rng := core.NewRNG(1)

	tests := []struct {
		name     string
		y        int
		down     bool
		wantDown bool
	}{
		{"top edge heading up", 1, false, true},
		{"bottom edge heading down", 600 - cfg.BalloonSize.H - 1, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBalloon(cfg, rng)
			b.Rect.Y = tc.y
			b.Down = tc.down

			before := b.Rect
			b.Move(bounds, rng)

			if b.Rect != before {
				t.Errorf("balloon moved on flip tick: %+v -> %+v", before, b.Rect)
			}
			if b.Down != tc.wantDown {
				t.Errorf("Down = %v, expected %v", b.Down, tc.wantDown)
			}
			if b.Count != 1 {
				t.Errorf("flip tick should still count, Count = %d", b.Count)
			}
		})
	}
}

func TestBalloonMovesBySpeed(t *testing.T) {
	cfg := DefaultConfig()
	bounds := cfg.Runtime.Bounds()
	rng := core.NewRNG(1)

	b := NewBalloon(cfg, rng)
	b.Down = true
	y0 := b.Rect.Y
	b.Move(bounds, rng)
	if b.Rect.Y != y0+2 {
		t.Errorf("moving down: Y = %d, expected %d", b.Rect.Y, y0+2)
	}

	b.Down = false
	b.Move(bounds, rng)
	b.Move(bounds, rng)
	if b.Rect.Y != y0-2 {
		t.Errorf("moving up: Y = %d, expected %d", b.Rect.Y, y0-2)
	}
}

func TestBalloonRedirectsEveryInterval(t *testing.T) {
	cfg := DefaultConfig()
	bounds := cfg.Runtime.Bounds()
	rng := core.NewRNG(3)

	b := NewBalloon(cfg, rng)
	for i := 0; i < b.Interval; i++ {
		b.Move(bounds, rng)
	}
	if b.Count != b.Interval {
		t.Fatalf("Count = %d after %d moves, expected %d", b.Count, b.Interval, b.Interval)
	}

	before := b.Rect
	b.Move(bounds, rng)
	if b.Count != 0 {
		t.Errorf("Count = %d after redirect, expected 0", b.Count)
	}
	if b.Rect != before {
		t.Errorf("balloon moved on redirect tick: %+v -> %+v", before, b.Rect)
	}

	// The cycle repeats
	for i := 0; i < b.Interval; i++ {
		b.Move(bounds, rng)
	}
	if b.Count != b.Interval {
		t.Errorf("second cycle Count = %d, expected %d", b.Count, b.Interval)
	}
}

func TestBalloonNeverLeavesFrame(t *testing.T) {
	cfg := DefaultConfig()
	bounds := cfg.Runtime.Bounds()
	rng := core.NewRNG(99)

	b := NewBalloon(cfg, rng)
	sawUp, sawDown := false, false
	for i := 0; i < 20000; i++ {
		b.Move(bounds, rng)
		if b.Rect.Top() < 0 || b.Rect.Bottom() > 600 {
			t.Fatalf("tick %d: balloon out of frame: %+v", i, b.Rect)
		}
		if b.Down {
			sawDown = true
		} else {
			sawUp = true
		}
	}
	if !sawUp || !sawDown {
		t.Errorf("balloon should travel both ways, up=%v down=%v", sawUp, sawDown)
	}
}

func TestBulletTravel(t *testing.T) {
	cfg := DefaultConfig()
	bounds := cfg.Runtime.Bounds()

	b := NewBullet(cfg, 640, 300)
	if b.Speed != 20 {
		t.Fatalf("bullet speed = %d, expected 20", b.Speed)
	}

	for k := 1; k <= 32; k++ {
		if !b.Shoot(bounds) {
			t.Fatalf("shot %d returned false at x=%d", k, b.Rect.X)
		}
		x, y := b.Center()
		if x != 640-k*20 || y != 300 {
			t.Fatalf("after %d shots center = (%d, %d), expected (%d, 300)", k, x, y, 640-k*20)
		}
	}

	// Center is now exactly 0, still in frame; the next move leaves it
	if b.Shoot(bounds) {
		t.Fatal("shot 33 should leave the frame")
	}
	if !b.Dead {
		t.Error("bullet should be dead after leaving the frame")
	}

	x, _ := b.Center()
	for i := 0; i < 3; i++ {
		if b.Shoot(bounds) {
			t.Error("dead bullet returned true")
		}
	}
	if nx, _ := b.Center(); nx != x {
		t.Errorf("dead bullet moved from %d to %d", x, nx)
	}
}
