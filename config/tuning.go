package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/bunnyhop/levels"
	"gopkg.in/yaml.v3"
)

// Tuned holds the overrides most recently applied.
var Tuned Tuning

// Tuning holds optional overrides for the gameplay constants.
// Nil fields keep the built-in value.
type Tuning struct {
	JumpSpeed       *float64 `yaml:"jumpSpeed"`
	SteerSpeed      *float64 `yaml:"steerSpeed"`
	Gravity         *float64 `yaml:"gravity"`
	RecycleDistance *float64 `yaml:"recycleDistance"`
	FailMargin      *float64 `yaml:"failMargin"`
	PlatformMinX    *int     `yaml:"platformMinX"`
	PlatformMaxX    *int     `yaml:"platformMaxX"`
}

// LoadTuning reads tuning overrides.
// Search order: customPath -> ~/.bunnyhop/tuning.yaml -> none.
// A missing custom path is an error; a missing user file is not.
func LoadTuning(customPath string) (Tuning, error) {
	var t Tuning

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return t, fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		return ParseTuning(data)
	}

	path := userTuningPath()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML tuning overrides and validates them.
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return t, err
	}
	return t, nil
}

func (t Tuning) validate() error {
	if t.RecycleDistance != nil && *t.RecycleDistance <= 0 {
		return fmt.Errorf("recycleDistance must be positive, got %v", *t.RecycleDistance)
	}
	if t.FailMargin != nil && *t.FailMargin < 0 {
		return fmt.Errorf("failMargin must not be negative, got %v", *t.FailMargin)
	}
	minX, maxX := Platform.MinX, Platform.MaxX
	if t.PlatformMinX != nil {
		minX = *t.PlatformMinX
	}
	if t.PlatformMaxX != nil {
		maxX = *t.PlatformMaxX
	}
	if minX > maxX {
		return fmt.Errorf("platformMinX %d is greater than platformMaxX %d", minX, maxX)
	}
	return nil
}

// Apply writes the overrides into the global configuration.
func (t Tuning) Apply() {
	Tuned = t
	if t.JumpSpeed != nil {
		Player.JumpSpeed = *t.JumpSpeed
	}
	if t.SteerSpeed != nil {
		Player.SteerSpeed = *t.SteerSpeed
	}
	if t.Gravity != nil {
		Physics.Gravity = *t.Gravity
	}
	if t.RecycleDistance != nil {
		Run.RecycleDistance = *t.RecycleDistance
	}
	if t.FailMargin != nil {
		Run.FailMargin = *t.FailMargin
	}
	if t.PlatformMinX != nil {
		Platform.MinX = *t.PlatformMinX
	}
	if t.PlatformMaxX != nil {
		Platform.MaxX = *t.PlatformMaxX
	}
}

func userTuningPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bunnyhop", "tuning.yaml")
}

// ApplyToLayout writes the platform range overrides into a loaded layout, so
// they win over the map's own properties. The layout is left unchanged when
// the result would be inverted.
func (t Tuning) ApplyToLayout(l *levels.Layout) error {
	minX, maxX := l.PlatformMinX, l.PlatformMaxX
	if t.PlatformMinX != nil {
		minX = *t.PlatformMinX
	}
	if t.PlatformMaxX != nil {
		maxX = *t.PlatformMaxX
	}
	if minX > maxX {
		return fmt.Errorf("platformMinX %d is greater than platformMaxX %d", minX, maxX)
	}
	l.PlatformMinX, l.PlatformMaxX = minX, maxX
	return nil
}
