// internal/system/collision.go
package system

import (
	"math"

	"go-knife-fight/internal/component"
	"go-knife-fight/internal/utils"
)

// Detector decides whether a new marker hits one already on the disc.
type Detector interface {
	Collides(placement component.Placement, existing []component.Placement, currentAngle float64) bool
}

// AngularDetector compares recorded angles directly. It ignores marker size and
// disc radius, so it only approximates overlap.
type AngularDetector struct {
	Threshold float64 // degrees
}

func (d AngularDetector) Collides(placement component.Placement, existing []component.Placement, _ float64) bool {
	for _, other := range existing {
		diff := math.Abs(utils.NormalizeDegrees(other.Angle) - utils.NormalizeDegrees(placement.Angle))
		if diff < d.Threshold || 360-diff < d.Threshold {
			return true
		}
	}
	return false
}

// GeometricDetector places markers on a circle and reports a hit when two
// marker centers are closer than one marker diameter.
type GeometricDetector struct {
	Radius   float64 // disc center to marker center
	Diameter float64 // marker diameter
}

func (d GeometricDetector) Collides(placement component.Placement, existing []component.Placement, currentAngle float64) bool {
	nx, ny := PointOnCircle(AbsoluteAngle(placement, currentAngle), d.Radius)
	for _, other := range existing {
		ox, oy := PointOnCircle(AbsoluteAngle(other, currentAngle), d.Radius)
		if math.Hypot(nx-ox, ny-oy) < d.Diameter {
			return true
		}
	}
	return false
}

// AbsoluteAngle converts a stored marker angle into the screen frame by
// applying the disc rotation it is drawn inside.
func AbsoluteAngle(p component.Placement, currentAngle float64) float64 {
	return utils.NormalizeDegrees(p.Angle + currentAngle)
}

// PointOnCircle maps an angle measured clockwise from "up" to an offset from
// the disc center, screen coordinates (y grows downwards).
func PointOnCircle(angle, radius float64) (x, y float64) {
	rad := utils.DegToRad(utils.NormalizeDegrees(angle))
	return radius * math.Sin(rad), -radius * math.Cos(rad)
}
