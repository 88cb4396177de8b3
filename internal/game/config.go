package game

import "time"

// Scoring
const (
	PointsAsteroid = 20
	PointsUfo      = 100
)

// Player
const (
	InitialLives = 3
)

// Level progression
const (
	BaseAsteroids         = 3
	MaxAsteroids          = 12
	BaseUfoSpawnInterval  = 20 * time.Second
	UfoSpawnIntervalStep  = 2 * time.Second
	MinUfoSpawnInterval   = 8 * time.Second
	BaseUfoShootFrequency = 5 * time.Second
	UfoShootFrequencyStep = 500 * time.Millisecond
	MinUfoShootFrequency  = 1500 * time.Millisecond
)

// Transitions
const (
	TransitionDelay = 3 * time.Second // Between a cleared/lost level and the next one
	TitleAsteroids  = 6               // Drifting in the background of the title screen
)

// Level describes the parameters a level is started with.
type Level struct {
	Asteroids         int
	UfoSpawnInterval  time.Duration
	UfoShootFrequency time.Duration
}

// LevelFunc returns the parameters of level n (1-based).
type LevelFunc func(n int) Level

// LevelParams is the default progression: one more asteroid per level and
// UFOs that come sooner and shoot faster, down to a floor.
func LevelParams(n int) Level {
	n = max(n, 1)
	step := time.Duration(n - 1)
	return Level{
		Asteroids:         min(BaseAsteroids+n, MaxAsteroids),
		UfoSpawnInterval:  max(BaseUfoSpawnInterval-step*UfoSpawnIntervalStep, MinUfoSpawnInterval),
		UfoShootFrequency: max(BaseUfoShootFrequency-step*UfoShootFrequencyStep, MinUfoShootFrequency),
	}
}

// Points returns the score for the given hit counters.
func Points(asteroidsHit, ufosHit int) int {
	return asteroidsHit*PointsAsteroid + ufosHit*PointsUfo
}
