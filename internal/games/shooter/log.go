package shooter

import "github.com/charmbracelet/log"

// LogStep reports the notable events of one tick. Shots and misses are
// debug level; the hit is info.
func LogStep(logger *log.Logger, res StepResult) {
	if res.Fired > 0 {
		logger.Debug("shot fired", "count", res.Fired, "live", res.State.LiveBullets)
	}
	if res.Missed > 0 {
		logger.Debug("shot missed", "count", res.Missed, "missed_shots", res.State.MissedShots)
	}
	if res.Won {
		logger.Info("balloon hit", "missed_shots", res.State.MissedShots, "shots_fired", res.State.ShotsFired)
	}
}
