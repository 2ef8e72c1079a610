package defs

import (
	"os"
	"path/filepath"
	"testing"

	"go-knife-fight/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write presets: %v", err)
	}
	return path
}

func TestBuiltinPresetsAreValid(t *testing.T) {
	for id, p := range BuiltinPresets() {
		if p.ID != id {
			t.Errorf("preset keyed %q has id %q", id, p.ID)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("builtin preset %s invalid: %v", id, err)
		}
	}
	if _, ok := BuiltinPresets()[DefaultPresetID]; !ok {
		t.Fatalf("default preset %q missing", DefaultPresetID)
	}
}

func TestMarkerRadius(t *testing.T) {
	p := Preset{BlockSize: 200, DotSize: 10}
	if got := p.MarkerRadius(); got != 90 {
		t.Errorf("MarkerRadius = %v, want 90", got)
	}
}

func TestValidateRejects(t *testing.T) {
	good := BuiltinPresets()["classic"]
	cases := map[string]func(p *Preset){
		"no id":           func(p *Preset) { p.ID = "" },
		"bad variant":     func(p *Preset) { p.Variant = "spiral" },
		"zero speed":      func(p *Preset) { p.RotationSpeed = 0 },
		"dot too big":     func(p *Preset) { p.DotSize = p.BlockSize },
		"zero threshold":  func(p *Preset) { p.AngleThreshold = 0 },
		"huge threshold":  func(p *Preset) { p.AngleThreshold = 181 },
		"negative blocks": func(p *Preset) { p.BlockSize = -1 },
	}
	for name, mutate := range cases {
		p := good
		mutate(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestLoadPresetsMergesOverBuiltins(t *testing.T) {
	path := writeFile(t, `[
		{"id": "classic", "rotation_speed": 0.25},
		{"id": "tiny", "variant": "geometric", "dot_size": 4}
	]`)
	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}

	classic := presets["classic"]
	if classic.RotationSpeed != 0.25 || classic.Variant != VariantClassic {
		t.Errorf("classic not merged: %+v", classic)
	}
	if classic.AngleThreshold != config.AngleThreshold {
		t.Errorf("classic lost its threshold: %+v", classic)
	}

	tiny, ok := presets["tiny"]
	if !ok {
		t.Fatalf("new preset not added")
	}
	if tiny.Variant != VariantCorrected || tiny.DotSize != 4 || tiny.BlockSize != config.BlockSize {
		t.Errorf("tiny preset wrong: %+v", tiny)
	}
	if _, ok := presets["slow"]; !ok {
		t.Errorf("builtins dropped")
	}
}

func TestLoadPresetsErrors(t *testing.T) {
	if _, err := LoadPresets(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, err := LoadPresets(writeFile(t, `{not json`)); err == nil {
		t.Errorf("expected error for broken json")
	}
	if _, err := LoadPresets(writeFile(t, `[{"id": "x", "variant": "spiral"}]`)); err == nil {
		t.Errorf("expected error for unknown variant")
	}
	if _, err := LoadPresets(writeFile(t, `[{"id": "x", "rotation_speed": -2}]`)); err == nil {
		t.Errorf("expected error for negative speed")
	}
}

func TestResolvePreset(t *testing.T) {
	p, err := ResolvePreset(config.Settings{})
	if err != nil {
		t.Fatalf("ResolvePreset: %v", err)
	}
	if p.ID != DefaultPresetID || p.Variant != VariantCorrected {
		t.Errorf("default resolution wrong: %+v", p)
	}

	p, err = ResolvePreset(config.Settings{Preset: "slow", Variant: "classic", RotationSpeed: 1})
	if err != nil {
		t.Fatalf("ResolvePreset overrides: %v", err)
	}
	if p.Variant != VariantClassic || p.RotationSpeed != 1 {
		t.Errorf("overrides not applied: %+v", p)
	}

	if _, err := ResolvePreset(config.Settings{Preset: "nope"}); err == nil {
		t.Errorf("expected unknown preset error")
	}
	if _, err := ResolvePreset(config.Settings{Variant: "spiral"}); err == nil {
		t.Errorf("expected unknown variant error")
	}
}
