// internal/defs/types.go
package defs

import (
	"fmt"
	"math"
)

// Variant selects a placement rule together with its matching collision test.
type Variant string

const (
	// VariantClassic records the live disc angle and compares raw angles
	// against a fixed angular threshold.
	VariantClassic Variant = "classic"
	// VariantCorrected records the negated disc angle (disc frame) and
	// checks true marker overlap on the circle.
	VariantCorrected Variant = "corrected"
)

// ParseVariant accepts the variant names and a few aliases.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "classic", "simple", "angular":
		return VariantClassic, nil
	case "corrected", "geometric":
		return VariantCorrected, nil
	}
	return "", fmt.Errorf("unknown variant %q", s)
}

// Preset is a complete set of tunables for one game.
type Preset struct {
	ID             string  `json:"id"`
	Variant        Variant `json:"variant"`
	RotationSpeed  float64 `json:"rotation_speed"`  // rotations per second
	AngleThreshold float64 `json:"angle_threshold"` // degrees, classic only
	BlockSize      float64 `json:"block_size"`      // disc diameter
	DotSize        float64 `json:"dot_size"`        // marker diameter
}

// MarkerRadius is the distance from the disc center to marker centers.
func (p Preset) MarkerRadius() float64 {
	return p.BlockSize/2 - p.DotSize
}

// Validate checks the preset can drive a game.
func (p Preset) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("preset without id")
	}
	if _, err := ParseVariant(string(p.Variant)); err != nil {
		return fmt.Errorf("preset %s: %w", p.ID, err)
	}
	if !positive(p.RotationSpeed) {
		return fmt.Errorf("preset %s: rotation_speed must be positive, got %v", p.ID, p.RotationSpeed)
	}
	if !positive(p.DotSize) || !positive(p.BlockSize) {
		return fmt.Errorf("preset %s: block_size and dot_size must be positive", p.ID)
	}
	if p.MarkerRadius() <= 0 {
		return fmt.Errorf("preset %s: dot_size %v too large for block_size %v", p.ID, p.DotSize, p.BlockSize)
	}
	if p.Variant == VariantClassic && (!positive(p.AngleThreshold) || p.AngleThreshold > 180) {
		return fmt.Errorf("preset %s: angle_threshold must be in (0,180], got %v", p.ID, p.AngleThreshold)
	}
	return nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
