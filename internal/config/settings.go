// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings are the runtime overrides read from the environment and an optional .env file.
type Settings struct {
	Preset        string  // preset id, empty means the default preset
	PresetsFile   string  // optional JSON file with extra presets
	RotationSpeed float64 // 0 keeps the preset value
	Variant       string  // empty keeps the preset value
	StartFromGame bool
	PprofAddr     string
	Debug         bool
}

// Load reads envFile (missing file is not an error) and the process environment.
// Process variables win over values from the file, like godotenv.Load.
func Load(envFile string) (Settings, error) {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Settings{}, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
	return FromLookup(lookup)
}

// FromLookup builds Settings from an arbitrary key lookup.
func FromLookup(lookup func(string) (string, bool)) (Settings, error) {
	s := Settings{StartFromGame: true}

	if v, ok := lookup("PRESET"); ok {
		s.Preset = strings.TrimSpace(v)
	}
	if v, ok := lookup("PRESETS_FILE"); ok {
		s.PresetsFile = strings.TrimSpace(v)
	}
	if v, ok := lookup("VARIANT"); ok {
		s.Variant = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup("PPROF_ADDR"); ok {
		s.PprofAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup("ROTATION_SPEED"); ok && strings.TrimSpace(v) != "" {
		speed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid ROTATION_SPEED %q: %w", v, err)
		}
		if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
			return Settings{}, fmt.Errorf("invalid ROTATION_SPEED %q: must be a positive number", v)
		}
		s.RotationSpeed = speed
	}

	var err error
	if s.StartFromGame, err = lookupBool(lookup, "START_FROM_GAME", true); err != nil {
		return Settings{}, err
	}
	if s.Debug, err = lookupBool(lookup, "DEBUG", false); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func lookupBool(lookup func(string) (string, bool), key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
