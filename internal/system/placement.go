package system

import "go-knife-fight/internal/component"

// Placer turns the live disc angle into the angle stored for a new marker.
type Placer interface {
	Place(currentAngle float64) component.Placement
}

// SimplePlacer stores the disc angle verbatim.
type SimplePlacer struct{}

func (SimplePlacer) Place(currentAngle float64) component.Placement {
	return component.Placement{Angle: currentAngle}
}

// CorrectedPlacer stores the marker in the disc's rotating frame. Drawn inside
// the rotated disc, the marker then lands straight above the indicator at tap
// time and rides along with the disc afterwards.
type CorrectedPlacer struct{}

func (CorrectedPlacer) Place(currentAngle float64) component.Placement {
	return component.Placement{Angle: -currentAngle}
}
