// Package simulation owns the entity population of one active level and
// advances it tick by tick.
//
// A Manager is driven by a single goroutine: one Update, then one Draw, per
// tick. Nothing in here blocks or returns an error; the absence of a ship is
// a regular state that every ship-dependent step checks for.
package simulation

import (
	"time"

	"github.com/tomz197/patatoids/internal/input"
	"github.com/tomz197/patatoids/internal/interval"
	"github.com/tomz197/patatoids/internal/object"
	"github.com/tomz197/patatoids/internal/random"
	"github.com/tomz197/patatoids/internal/vector"
)

const (
	// AsteroidMinDistanceToCenter keeps new asteroids away from the ship's
	// start position.
	AsteroidMinDistanceToCenter = 250.0

	// ShipRotationRate is applied while a turn key is held (radians per tick).
	ShipRotationRate = 0.1

	// spawnJitter widens the UFO spawn interval on both sides.
	spawnJitter = 5 * time.Second
	// minSpawnInterval bounds the jittered spawn interval from below.
	minSpawnInterval = time.Second
)

// Manager is the authoritative state of one level.
type Manager struct {
	bounds object.Bounds
	rng    *random.Source
	clock  interval.Clock

	ship       *object.Ship // nil when destroyed or before the first level
	asteroids  []*object.Asteroid
	fragments  []*object.Fragment
	ufos       []*object.Ufo
	explosions []*object.Explosion

	spawnTimer        *interval.Interval // nil when UFO spawning is disarmed
	ufoShootFrequency time.Duration

	countAsteroidsHit int
	countUfosHit      int
	paused            bool

	// Scratch buffers reused across ticks for side-buffered children.
	childBuf []*object.Asteroid
}

// New creates an empty manager. A nil clock uses the system clock.
func New(bounds object.Bounds, rng *random.Source, clock interval.Clock) *Manager {
	if clock == nil {
		clock = interval.SystemClock{}
	}
	return &Manager{
		bounds: bounds,
		rng:    rng,
		clock:  clock,
	}
}

// liveShip returns the ship when one exists.
func (m *Manager) liveShip() (*object.Ship, bool) {
	if m.ship == nil {
		return nil, false
	}
	return m.ship, true
}

// destroyShip breaks the ship into fragments and forgets it.
func (m *Manager) destroyShip(ship *object.Ship) {
	m.fragments = append(m.fragments, ship.BreakUp(m.rng)...)
	m.ship = nil
}

// Update advances the level by one tick.
func (m *Manager) Update() {
	// 1. Ship or its remains
	if ship, ok := m.liveShip(); ok {
		ship.Update()
	} else {
		for _, f := range m.fragments {
			f.Update()
		}
	}

	// 2-3. Asteroids, children joined after the pass
	m.updateAsteroids()

	// 4. UFOs
	m.updateUfos()

	// 5. Spawn timer
	if m.spawnTimer != nil && m.spawnTimer.Elapsed() {
		m.CreateUfo(m.ufoShootFrequency)
	}

	// 6. Explosions
	kept := m.explosions[:0]
	for _, e := range m.explosions {
		if e.Update() {
			kept = append(kept, e)
		}
	}
	clear(m.explosions[len(kept):])
	m.explosions = kept
}

func (m *Manager) updateAsteroids() {
	children := m.childBuf[:0]
	kept := m.asteroids[:0]

	for _, a := range m.asteroids {
		a.Update()

		ship, ok := m.liveShip()
		if !ok {
			kept = append(kept, a)
			continue
		}

		if ship.LasersHit(a) {
			m.countAsteroidsHit++
			if parts := a.BreakUp(m.rng); len(parts) > 0 {
				children = append(children, parts...)
			} else {
				m.explosions = append(m.explosions, object.NewExplosion(a.Position, m.rng))
			}
			continue
		}

		if ship.CollidesWith(a) {
			m.destroyShip(ship)
		}
		kept = append(kept, a)
	}
	clear(m.asteroids[len(kept):])

	m.asteroids = append(kept, children...)
	clear(children)
	m.childBuf = children[:0]
}

func (m *Manager) updateUfos() {
	kept := m.ufos[:0]

	for _, u := range m.ufos {
		ship, ok := m.liveShip()
		var target vector.Vector
		if ok {
			target = ship.Position
		}
		u.Update(target, ok)

		if !ok {
			kept = append(kept, u)
			continue
		}

		if ship.LasersHit(u) {
			m.countUfosHit++
			m.explosions = append(m.explosions, object.NewExplosion(u.Position, m.rng))
			continue
		}

		if ship.CollidesWith(u) || u.LasersHit(ship) {
			m.destroyShip(ship)
		}
		kept = append(kept, u)
	}
	clear(m.ufos[len(kept):])
	m.ufos = kept
}

// Draw renders every entity, back to front. It does not change any state.
func (m *Manager) Draw(r object.Renderer) {
	for _, e := range m.explosions {
		e.Draw(r)
	}
	if ship, ok := m.liveShip(); ok {
		ship.Draw(r)
	}
	for _, a := range m.asteroids {
		a.Draw(r)
	}
	for _, u := range m.ufos {
		u.Draw(r)
	}
	for _, f := range m.fragments {
		f.Draw(r)
	}
}

// StartLevel resets the population, places a fresh ship at the centre and
// arms UFO spawning with a jittered ufoSpawnInterval.
func (m *Manager) StartLevel(asteroidCount int, ufoSpawnInterval, ufoShootFrequency time.Duration) {
	m.ufoShootFrequency = max(ufoShootFrequency, 0)
	m.Reset()
	m.paused = false

	m.ship = object.NewShip(m.bounds, m.bounds.Center(), object.ShipDefaultHeading)
	m.CreateAsteroids(asteroidCount)

	jitter := time.Duration(m.rng.Float(-float64(spawnJitter), float64(spawnJitter)))
	m.spawnTimer = interval.New(m.clock, max(ufoSpawnInterval+jitter, minSpawnInterval))
}

// StopLevel disarms UFO spawning and removes the live UFOs. Asteroids, the
// ship and its fragments are left alone.
func (m *Manager) StopLevel() {
	m.spawnTimer = nil
	m.ufoShootFrequency = 0
	clear(m.ufos)
	m.ufos = m.ufos[:0]
}

// Reset clears every collection and both hit counters. The ship and the
// spawn timer are untouched.
func (m *Manager) Reset() {
	clear(m.asteroids)
	m.asteroids = m.asteroids[:0]
	clear(m.fragments)
	m.fragments = m.fragments[:0]
	clear(m.ufos)
	m.ufos = m.ufos[:0]
	clear(m.explosions)
	m.explosions = m.explosions[:0]

	m.countAsteroidsHit = 0
	m.countUfosHit = 0
}

// CreateAsteroids replaces the asteroids with count new ones, none closer
// than AsteroidMinDistanceToCenter to the centre. Negative counts create none.
func (m *Manager) CreateAsteroids(count int) {
	count = max(count, 0)
	center := m.bounds.Center()

	asteroids := make([]*object.Asteroid, 0, count)
	for range count {
		position := vector.New(
			m.rng.Float(0, m.bounds.Width),
			m.rng.Float(0, m.bounds.Height),
		)

		offset := position.Sub(center)
		if offset.Mag() < AsteroidMinDistanceToCenter {
			direction := offset.Normalize()
			if direction == (vector.Vector{}) {
				direction = m.rng.UnitVector()
			}
			position = center.Add(direction.Scale(AsteroidMinDistanceToCenter))
		}

		asteroids = append(asteroids, object.NewAsteroid(m.bounds, object.AsteroidParams{
			Position:     position,
			Direction:    m.rng.UnitVector(),
			Diameter:     m.rng.Float(object.AsteroidDiameterMin, object.AsteroidDiameterMax),
			RotationStep: m.rng.Float(-object.AsteroidRotationMax, object.AsteroidRotationMax),
			Sides:        m.rng.Int(object.AsteroidSidesMin, object.AsteroidSidesMax),
		}, m.rng))
	}

	clear(m.asteroids)
	m.asteroids = asteroids
}

// CreateUfo adds a UFO just outside a random screen edge, heading inwards.
// A non-positive shootFrequency gives a UFO that never shoots.
func (m *Manager) CreateUfo(shootFrequency time.Duration) {
	// Random unit vector mapped from [-1, 1] to a spot along the chosen edge.
	along := m.rng.UnitVector()
	alongX := (along.X + 1) / 2 * m.bounds.Width
	alongY := (along.Y + 1) / 2 * m.bounds.Height

	var position, heading vector.Vector
	switch m.rng.Int(0, 4) {
	case 0: // Left
		position = vector.New(-object.UfoSpawnMargin, alongY)
		heading = vector.New(1, 0)
	case 1: // Right
		position = vector.New(m.bounds.Width+object.UfoSpawnMargin, alongY)
		heading = vector.New(-1, 0)
	case 2: // Top
		position = vector.New(alongX, -object.UfoSpawnMargin)
		heading = vector.New(0, 1)
	default: // Bottom
		position = vector.New(alongX, m.bounds.Height+object.UfoSpawnMargin)
		heading = vector.New(0, -1)
	}

	ufo := object.NewUfo(m.bounds, position, heading.Scale(object.UfoSpeed), max(shootFrequency, 0), m.clock)
	if m.paused {
		ufo.Pause()
	}
	m.ufos = append(m.ufos, ufo)
}

// KeyPressed relays a key press to the ship. No-op without a ship.
func (m *Manager) KeyPressed(k input.Key) {
	ship, ok := m.liveShip()
	if !ok {
		return
	}
	switch k {
	case input.KeyLeft:
		ship.SetRotation(-ShipRotationRate)
	case input.KeyRight:
		ship.SetRotation(ShipRotationRate)
	case input.KeyUp:
		ship.SetBoost(true)
	case input.KeyFire:
		ship.Shoot()
	}
}

// KeyReleased relays a key release to the ship. No-op without a ship.
func (m *Manager) KeyReleased(k input.Key) {
	ship, ok := m.liveShip()
	if !ok {
		return
	}
	switch k {
	case input.KeyLeft:
		if ship.RotationRate < 0 {
			ship.SetRotation(0)
		}
	case input.KeyRight:
		if ship.RotationRate > 0 {
			ship.SetRotation(0)
		}
	case input.KeyUp:
		ship.SetBoost(false)
	}
}

// Pause freezes the spawn timer and every UFO's shoot timer.
func (m *Manager) Pause() {
	m.paused = true
	if m.spawnTimer != nil {
		m.spawnTimer.Pause()
	}
	for _, u := range m.ufos {
		u.Pause()
	}
}

// Unpause resumes the timers frozen by Pause.
func (m *Manager) Unpause() {
	m.paused = false
	if m.spawnTimer != nil {
		m.spawnTimer.Unpause()
	}
	for _, u := range m.ufos {
		u.Unpause()
	}
}

// Paused reports whether the manager is paused.
func (m *Manager) Paused() bool {
	return m.paused
}

// AsteroidsCount returns the number of live asteroids.
func (m *Manager) AsteroidsCount() int {
	return len(m.asteroids)
}

// UfosCount returns the number of live UFOs.
func (m *Manager) UfosCount() int {
	return len(m.ufos)
}

// ShipHit reports whether there is no ship.
func (m *Manager) ShipHit() bool {
	_, ok := m.liveShip()
	return !ok
}

// CountAsteroidsHit returns the asteroids shot since the last Reset.
func (m *Manager) CountAsteroidsHit() int {
	return m.countAsteroidsHit
}

// CountUfosHit returns the UFOs shot since the last Reset.
func (m *Manager) CountUfosHit() int {
	return m.countUfosHit
}

// Ship returns the ship, or nil when there is none.
func (m *Manager) Ship() *object.Ship {
	return m.ship
}

// Asteroids returns the live asteroids. Callers must not modify the slice.
func (m *Manager) Asteroids() []*object.Asteroid {
	return m.asteroids
}

// Ufos returns the live UFOs.
func (m *Manager) Ufos() []*object.Ufo {
	return m.ufos
}

// Fragments returns the debris of the destroyed ship.
func (m *Manager) Fragments() []*object.Fragment {
	return m.fragments
}

// Explosions returns the running explosions.
func (m *Manager) Explosions() []*object.Explosion {
	return m.explosions
}

// SpawnRemaining returns the time until the next UFO spawn, and false when
// spawning is disarmed.
func (m *Manager) SpawnRemaining() (time.Duration, bool) {
	if m.spawnTimer == nil {
		return 0, false
	}
	return m.spawnTimer.Remaining(), true
}

// Bounds returns the logical screen size.
func (m *Manager) Bounds() object.Bounds {
	return m.bounds
}
