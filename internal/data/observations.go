package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"solar-advisor/internal/model"
)

// timeLayouts are the datetime formats seen in weather exports.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ReadObservations parses a CSV with a header containing datetime, state and
// precipitation_total columns (any order, extra columns ignored).
// Rows with an empty precipitation value are skipped.
func ReadObservations(r io.Reader) ([]model.Observation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty CSV")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	timeCol, ok1 := cols["datetime"]
	stateCol, ok2 := cols["state"]
	precipCol, ok3 := cols["precipitation_total"]
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("CSV header must contain datetime, state and precipitation_total, got %v", header)
	}

	var out []model.Observation
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) <= timeCol || len(rec) <= stateCol || len(rec) <= precipCol {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d", line, len(header), len(rec))
		}
		rawPrecip := strings.TrimSpace(rec[precipCol])
		if rawPrecip == "" {
			continue
		}
		precip, err := strconv.ParseFloat(rawPrecip, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: precipitation_total: %w", line, err)
		}
		ts, err := parseTime(rec[timeCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, model.Observation{
			Time:          ts,
			State:         model.NormalizeState(rec[stateCol]),
			Precipitation: precip,
		})
	}
	return out, nil
}

// ReadObservationsFile opens path and parses it with ReadObservations.
func ReadObservationsFile(path string) ([]model.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadObservations(f)
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", s)
}
