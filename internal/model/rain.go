package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Observation is one precipitation reading from the weather dataset.
type Observation struct {
	Time          time.Time
	State         string
	Precipitation float64 // mm
}

// RainModel holds, per state, the mean number of rainy days in each
// calendar month (index 0 = January).
type RainModel struct {
	UpdatedAt string               `yaml:"updated_at"`
	Source    string               `yaml:"source,omitempty"`
	States    map[string][]float64 `yaml:"states"`
}

func (m *RainModel) Validate() error {
	if m == nil || len(m.States) == 0 {
		return fmt.Errorf("rain model has no states")
	}
	for state, months := range m.States {
		if len(months) != 12 {
			return fmt.Errorf("state %q: want 12 monthly values, got %d", state, len(months))
		}
		for i, v := range months {
			if v < 0 || v > 31 {
				return fmt.Errorf("state %q month %d: rainy days %.2f out of range", state, i+1, v)
			}
		}
	}
	return nil
}

// MeanRainyDays looks up the mean rainy days for state in month.
func (m *RainModel) MeanRainyDays(state string, month time.Month) (float64, bool) {
	if m == nil {
		return 0, false
	}
	months, ok := m.States[NormalizeState(state)]
	if !ok || len(months) != 12 || month < time.January || month > time.December {
		return 0, false
	}
	return months[month-1], true
}

// StateNames returns the known states in sorted order.
func (m *RainModel) StateNames() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.States))
	for s := range m.States {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// NormalizeState maps "Kuala Lumpur" and "kuala-lumpur" to "kuala_lumpur".
func NormalizeState(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}
