package brickgame

import "time"

const (
	MaxLevel      = 10
	InitialSpeed  = 700
	scorePerLevel = 600
)

// ScoreForRows maps the rows cleared by a single lock to the score gained.
func ScoreForRows(rows int) int {
	switch {
	case rows <= 0:
		return 0
	case rows == 1:
		return 100
	case rows == 2:
		return 300
	case rows == 3:
		return 700
	default:
		return 1500
	}
}

func LevelForScore(score int) int {
	level := score / scorePerLevel
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// SpeedForLevel returns the drop interval in milliseconds. Levels above 5 use
// a gentler step, so level 6 is slower than level 5.
func SpeedForLevel(level int) int {
	if level > 5 {
		return InitialSpeed - level*50
	}
	return InitialSpeed - level*60
}

// LockDelay is the pause the driver holds after a lock before accepting input.
func LockDelay(rows int) time.Duration {
	if rows >= 1 {
		return 400 * time.Millisecond
	}
	return 150 * time.Millisecond
}
