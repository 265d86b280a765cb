package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ValidationError reports required fields that were zero or absent and
// numeric fields that were not finite (NaN, ±Inf).
type ValidationError struct {
	Fields  []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Fields) > 0 {
		parts = append(parts, fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", ")))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, fmt.Sprintf("not a finite number: %s", strings.Join(e.Invalid, ", ")))
	}
	return strings.Join(parts, "; ")
}

// MissingFields returns the field names carried by a *ValidationError in err's chain.
func MissingFields(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// InvalidFields returns the non-finite field names carried by a *ValidationError in err's chain.
func InvalidFields(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Invalid
	}
	return nil
}

// fieldCheck collects every failing field of one submission.
type fieldCheck struct {
	missing []string
	invalid []string
}

func (c *fieldCheck) text(name, v string) {
	if strings.TrimSpace(v) == "" {
		c.missing = append(c.missing, name)
	}
}

func (c *fieldCheck) required(name string, v float64) {
	switch {
	case !isFinite(v):
		c.invalid = append(c.invalid, name)
	case v == 0:
		c.missing = append(c.missing, name)
	}
}

func (c *fieldCheck) optional(name string, v float64) {
	if !isFinite(v) {
		c.invalid = append(c.invalid, name)
	}
}

func (c *fieldCheck) err() error {
	if len(c.missing) == 0 && len(c.invalid) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.missing, Invalid: c.invalid}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
