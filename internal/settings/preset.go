package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EncodePreset serializes a settings value to YAML for use as a preset file.
func EncodePreset(a Adjustments) ([]byte, error) {
	data, err := yaml.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preset: %w", err)
	}
	return data, nil
}

// DecodePreset parses a YAML preset. Missing fields keep their defaults and
// every decoded value passes through Sanitize, so a hand-edited preset with
// out-of-range numbers loads with those fields clamped to their boundaries.
func DecodePreset(data []byte) (Adjustments, error) {
	a := Defaults()
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Adjustments{}, fmt.Errorf("failed to decode preset: %w", err)
	}
	return Sanitize(a), nil
}

// SavePreset writes a settings value to a YAML preset file.
func SavePreset(path string, a Adjustments) error {
	data, err := EncodePreset(a)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}

// LoadPreset reads and sanitizes a YAML preset file.
func LoadPreset(path string) (Adjustments, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Adjustments{}, fmt.Errorf("failed to read preset: %w", err)
	}
	return DecodePreset(data)
}
