package shooter

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	CannonX      int
	CannonY      int
	BalloonX     int
	BalloonY     int
	BalloonDown  bool
	BalloonCount int
	BulletXs     []int // Center x of each live bullet, in spawn order
	MissedShots  int
	ShotsFired   int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	cx, cy := g.cannon.Center()
	bx, by := g.balloon.Center()

	xs := make([]int, len(g.bullets))
	for i, b := range g.bullets {
		xs[i], _ = b.Center()
	}

	return Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		CannonX:      cx,
		CannonY:      cy,
		BalloonX:     bx,
		BalloonY:     by,
		BalloonDown:  g.balloon.Down,
		BalloonCount: g.balloon.Count,
		BulletXs:     xs,
		MissedShots:  g.missed,
		ShotsFired:   g.fired,
	}
}
