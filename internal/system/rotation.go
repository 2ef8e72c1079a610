// internal/system/rotation.go
package system

import (
	"log"

	"go-knife-fight/internal/event"
	"go-knife-fight/internal/utils"
)

// RotationClock holds the disc angle and advances it at a constant angular
// velocity. Every accepted advance is published as event.AngleChanged.
type RotationClock struct {
	angle           float64 // degrees, always in [0,360)
	speed           float64 // rotations per second
	eventDispatcher *event.Dispatcher
}

func NewRotationClock(speed float64, eventDispatcher *event.Dispatcher) *RotationClock {
	if !utils.IsFinite(speed) || speed <= 0 {
		panic("rotation speed must be a positive finite number")
	}
	return &RotationClock{
		speed:           speed,
		eventDispatcher: eventDispatcher,
	}
}

// Advance moves the disc forward by dt seconds. Non-finite or negative dt is
// dropped so a broken time source can never poison the angle.
func (c *RotationClock) Advance(dt float64) {
	if !utils.IsFinite(dt) || dt < 0 {
		log.Printf("rotation clock: ignoring invalid time step %v", dt)
		return
	}
	c.angle = utils.NormalizeDegrees(c.angle + c.speed*dt*360)
	if c.eventDispatcher != nil {
		c.eventDispatcher.Dispatch(event.Event{Type: event.AngleChanged, Data: c.angle})
	}
}

// Angle returns the current disc angle in [0,360).
func (c *RotationClock) Angle() float64 {
	return c.angle
}

// Speed returns the angular velocity in rotations per second.
func (c *RotationClock) Speed() float64 {
	return c.speed
}

// Period is the time of one full turn, in seconds.
func (c *RotationClock) Period() float64 {
	return 1 / c.speed
}

// Reset puts the disc back at angle 0 without publishing.
func (c *RotationClock) Reset() {
	c.angle = 0
}
