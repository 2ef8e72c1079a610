package component

// Placement is a marker stuck into the disc. Angle is in degrees exactly as
// recorded at tap time: the live disc angle, or its negation when markers are
// stored in the disc's own rotating frame. It may be negative.
type Placement struct {
	Angle float64
}
