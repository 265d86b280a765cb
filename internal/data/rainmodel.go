package data

import (
	"fmt"
	"os"
	"path/filepath"

	"solar-advisor/internal/model"

	"gopkg.in/yaml.v3"
)

// LoadRainModel loads and validates a rain model from a YAML file.
func LoadRainModel(filePath string) (*model.RainModel, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rain model: %w", err)
	}

	var m model.RainModel
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse rain model: %w", err)
	}
	// Keys are looked up normalized; accept hand-edited files that are not.
	normalized := make(map[string][]float64, len(m.States))
	for state, months := range m.States {
		normalized[model.NormalizeState(state)] = months
	}
	m.States = normalized

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rain model %s: %w", filePath, err)
	}
	return &m, nil
}

// SaveRainModel writes m to filePath as YAML, creating parent directories.
func SaveRainModel(m *model.RainModel, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal rain model: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write rain model: %w", err)
	}

	return nil
}

// DefaultRainModelPath returns the default path for the rain model file
func DefaultRainModelPath() string {
	if path := os.Getenv("RAIN_MODEL_FILE"); path != "" {
		return path
	}
	return "./data/rain_model.yaml"
}
