package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Environment variables read by Load.
const (
	EnvSeed        = "PATATOIDS_SEED"
	EnvLogLevel    = "PATATOIDS_LOG_LEVEL"
	EnvWidth       = "PATATOIDS_WIDTH"
	EnvHeight      = "PATATOIDS_HEIGHT"
	EnvStartLevel  = "PATATOIDS_START_LEVEL"
	EnvIdleTimeout = "PATATOIDS_IDLE_TIMEOUT"
)

// Defaults for the logical world.
const (
	DefaultWidth       = 960
	DefaultHeight      = 640
	DefaultIdleTimeout = 2 * time.Minute
)

// Settings is the runtime configuration shared by every front end.
type Settings struct {
	Seed        uint64 // 0 picks a time-based seed
	LogLevel    log.Level
	Width       float64 // Logical world size
	Height      float64
	StartLevel  int
	IdleTimeout time.Duration // 0 disables the idle disconnect
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		LogLevel:    log.InfoLevel,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		StartLevel:  1,
		IdleTimeout: DefaultIdleTimeout,
	}
}

// Load reads Settings from the environment. Every malformed variable is
// reported; valid ones are still applied.
func Load() (Settings, error) {
	s := Default()
	var errs []error

	var err error
	if s.Seed, err = GetEnvUint64(EnvSeed, s.Seed); err != nil {
		errs = append(errs, err)
	}

	if value := GetEnv(EnvLogLevel, ""); value != "" {
		if s.LogLevel, err = log.ParseLevel(value); err != nil {
			s.LogLevel = log.InfoLevel
			errs = append(errs, fmt.Errorf("%s: %w", EnvLogLevel, err))
		}
	}

	width, err := GetEnvInt(EnvWidth, DefaultWidth)
	if err != nil {
		errs = append(errs, err)
	}
	height, err := GetEnvInt(EnvHeight, DefaultHeight)
	if err != nil {
		errs = append(errs, err)
	}
	if width <= 0 || height <= 0 {
		errs = append(errs, fmt.Errorf("world size %dx%d must be positive", width, height))
		width, height = DefaultWidth, DefaultHeight
	}
	s.Width, s.Height = float64(width), float64(height)

	if s.StartLevel, err = GetEnvInt(EnvStartLevel, s.StartLevel); err != nil {
		errs = append(errs, err)
	}
	s.StartLevel = max(s.StartLevel, 1)

	if s.IdleTimeout, err = GetEnvDuration(EnvIdleTimeout, s.IdleTimeout); err != nil {
		errs = append(errs, err)
	}
	s.IdleTimeout = max(s.IdleTimeout, 0)

	return s, errors.Join(errs...)
}

// SeedOrNow returns the configured seed, or one derived from now when unset.
func (s Settings) SeedOrNow(now time.Time) uint64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return uint64(now.UnixNano())
}
