package object

import (
	"time"

	"github.com/tomz197/patatoids/internal/interval"
	"github.com/tomz197/patatoids/internal/vector"
)

// UFO tuning. Speeds are per tick.
const (
	UfoSpeed         = 1.6
	UfoSteerForce    = 0.03
	UfoRadius        = 20.0
	UfoSpawnMargin   = 25.0 // Distance outside the edge a UFO appears at
	UfoLaserSpeed    = 5.0
	UfoLaserLifetime = 120
)

// ufoShape is the saucer outline in local coordinates.
var ufoShape = []vector.Vector{
	{X: -20, Y: 0},
	{X: -8, Y: -6},
	{X: 8, Y: -6},
	{X: 20, Y: 0},
	{X: 8, Y: 7},
	{X: -8, Y: 7},
}

// Ufo is a hostile saucer that hunts the ship and shoots at it on a timer.
type Ufo struct {
	Position       vector.Vector
	Velocity       vector.Vector
	ShootFrequency time.Duration

	shootTimer *interval.Interval // nil when the UFO never shoots
	lasers     []*Laser
	bounds     Bounds
}

// NewUfo creates a UFO. A non-positive shootFrequency disables shooting.
func NewUfo(bounds Bounds, position, velocity vector.Vector, shootFrequency time.Duration, clock interval.Clock) *Ufo {
	u := &Ufo{
		Position:       position,
		Velocity:       velocity,
		ShootFrequency: shootFrequency,
		bounds:         bounds,
	}
	if shootFrequency > 0 {
		u.shootTimer = interval.New(clock, shootFrequency)
	}
	return u
}

// Update steers toward target when hasTarget is set, moves the saucer,
// fires when the shoot timer elapses, and advances its lasers.
func (u *Ufo) Update(target vector.Vector, hasTarget bool) {
	if hasTarget {
		desired := target.Sub(u.Position).SetMag(UfoSpeed)
		steer := desired.Sub(u.Velocity).Limit(UfoSteerForce)
		u.Velocity = u.Velocity.Add(steer).Limit(UfoSpeed)
	}
	u.Position = u.bounds.Wrap(u.Position.Add(u.Velocity), UfoSpawnMargin)

	u.lasers = updateLasers(u.lasers, u.bounds)

	if hasTarget && u.shootTimer != nil && u.shootTimer.Elapsed() {
		velocity := target.Sub(u.Position).SetMag(UfoLaserSpeed)
		u.lasers = append(u.lasers, NewLaser(u.Position, velocity, UfoLaserLifetime))
	}
}

// Lasers returns the UFO's live lasers.
func (u *Ufo) Lasers() []*Laser {
	return u.lasers
}

// LasersHit reports whether one of the UFO's lasers hits target.
func (u *Ufo) LasersHit(target Collider) bool {
	return lasersHit(u.lasers, target)
}

// UfoOutline returns the saucer outline in world coordinates.
func UfoOutline(position vector.Vector) []vector.Vector {
	return localToWorld(position, 0, ufoShape)
}

// Hull returns the saucer outline.
func (u *Ufo) Hull() Hull {
	return Hull{
		Center:  u.Position,
		Radius:  UfoRadius,
		Outline: UfoOutline(u.Position),
	}
}

// Pause freezes the shoot timer.
func (u *Ufo) Pause() {
	if u.shootTimer != nil {
		u.shootTimer.Pause()
	}
}

// Unpause resumes the shoot timer.
func (u *Ufo) Unpause() {
	if u.shootTimer != nil {
		u.shootTimer.Unpause()
	}
}

// Paused reports whether the shoot timer is frozen.
func (u *Ufo) Paused() bool {
	return u.shootTimer != nil && u.shootTimer.Paused()
}

// Draw renders the saucer and its lasers.
func (u *Ufo) Draw(r Renderer) {
	for _, l := range u.lasers {
		l.Draw(r)
	}
	r.DrawUfo(u.Position)
}
