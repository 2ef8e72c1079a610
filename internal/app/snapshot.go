package app

import (
	"go-knife-fight/internal/component"
	"go-knife-fight/internal/defs"
	"go-knife-fight/internal/system"
)

// Snapshot is a consistent copy of the game for one frame.
type Snapshot struct {
	Angle      float64 // disc rotation, degrees in [0,360)
	Placements []component.Placement
	Score      int
	Best       int // best score of this session
	Phase      component.GamePhase
	Variant    defs.Variant
	Elapsed    float64 // seconds of accepted clock time
}

func (s Snapshot) IsOver() bool {
	return s.Phase == component.GameOver
}

// MarkerAngles returns where each marker is on screen, clockwise from "up".
// Markers are drawn inside the rotated disc, so the disc angle is added to
// the stored one.
func (s Snapshot) MarkerAngles() []float64 {
	out := make([]float64, len(s.Placements))
	for i, p := range s.Placements {
		out[i] = system.AbsoluteAngle(p, s.Angle)
	}
	return out
}
