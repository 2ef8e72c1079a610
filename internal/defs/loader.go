// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-knife-fight/internal/config"
)

// LoadPresets reads a JSON array of presets and merges them over the builtins.
// Fields left out of a file entry are taken from the builtin preset of the same
// id, or from the default preset for new ids.
func LoadPresets(path string) (map[string]Preset, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(file, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presets: %w", err)
	}

	presets := BuiltinPresets()
	for i, msg := range raw {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(msg, &head); err != nil {
			return nil, fmt.Errorf("preset #%d: %w", i, err)
		}
		p, ok := presets[head.ID]
		if !ok {
			p = presets[DefaultPresetID]
		}
		if err := json.Unmarshal(msg, &p); err != nil {
			return nil, fmt.Errorf("preset #%d: %w", i, err)
		}
		v, err := ParseVariant(string(p.Variant))
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.ID, err)
		}
		p.Variant = v
		if err := p.Validate(); err != nil {
			return nil, err
		}
		presets[p.ID] = p
	}

	log.Printf("Loaded %d presets from %s", len(raw), path)
	return presets, nil
}

// ResolvePreset picks the preset named by the settings and applies the
// speed and variant overrides.
func ResolvePreset(s config.Settings) (Preset, error) {
	presets := BuiltinPresets()
	if s.PresetsFile != "" {
		loaded, err := LoadPresets(s.PresetsFile)
		if err != nil {
			return Preset{}, err
		}
		presets = loaded
	}

	id := s.Preset
	if id == "" {
		id = DefaultPresetID
	}
	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q", id)
	}

	if s.RotationSpeed > 0 {
		p.RotationSpeed = s.RotationSpeed
	}
	if s.Variant != "" {
		v, err := ParseVariant(s.Variant)
		if err != nil {
			return Preset{}, err
		}
		p.Variant = v
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}
