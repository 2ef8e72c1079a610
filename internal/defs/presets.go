package defs

import "go-knife-fight/internal/config"

// DefaultPresetID is used when no preset is requested.
const DefaultPresetID = "corrected"

// BuiltinPresets returns the presets shipped with the game.
func BuiltinPresets() map[string]Preset {
	base := Preset{
		RotationSpeed:  config.RotationSpeed,
		AngleThreshold: config.AngleThreshold,
		BlockSize:      config.BlockSize,
		DotSize:        config.DotSize,
	}

	classic := base
	classic.ID = "classic"
	classic.Variant = VariantClassic

	corrected := base
	corrected.ID = "corrected"
	corrected.Variant = VariantCorrected

	slow := corrected
	slow.ID = "slow"
	slow.RotationSpeed = 0.25

	return map[string]Preset{
		classic.ID:   classic,
		corrected.ID: corrected,
		slow.ID:      slow,
	}
}
